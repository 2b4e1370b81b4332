// Package testutil builds fixtures for specs: small but well-formed PDFs and
// stand-in executables for external tools.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WritePDF writes a PDF with the given number of 200x200pt pages, each
// holding a filled rectangle so renderers have something to draw.
func WritePDF(path string, pages int) error {
	if pages < 1 {
		return fmt.Errorf("a PDF needs at least one page, got %d", pages)
	}

	var buf bytes.Buffer
	// offsets[i] is the byte offset of object i+1.
	var offsets []int

	startObj := func() {
		offsets = append(offsets, buf.Len())
	}

	buf.WriteString("%PDF-1.4\n")

	startObj()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	var kids bytes.Buffer
	for i := 0; i < pages; i++ {
		fmt.Fprintf(&kids, "%d 0 R ", 3+2*i)
	}
	startObj()
	fmt.Fprintf(&buf, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", bytes.TrimSpace(kids.Bytes()), pages)

	for i := 0; i < pages; i++ {
		pageObj := 3 + 2*i
		contentObj := pageObj + 1

		startObj()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Resources << >> /Contents %d 0 R >>\nendobj\n", pageObj, contentObj)

		content := fmt.Sprintf("0 0 1 rg %d 20 100 100 re f", 20+i%50)
		startObj()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", contentObj, len(content), content)
	}

	xrefOffset := buf.Len()
	size := len(offsets) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// WriteExecutable writes a /bin/sh script named name into dir.
func WriteExecutable(dir, name, body string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", err
	}
	return path, nil
}
