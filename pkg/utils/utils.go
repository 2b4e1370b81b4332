package utils

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const PDFExtension = ".pdf"

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func HasPDFExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), PDFExtension)
}

// PageNumberWidth is the number of digits in total, so that zero-padded page
// numbers sort the same way as strings and as integers.
func PageNumberWidth(total int) int {
	if total < 1 {
		return 1
	}
	return len(strconv.Itoa(total))
}

func PaddedPageNumber(page, total int) string {
	return fmt.Sprintf("%0*d", PageNumberWidth(total), page)
}
