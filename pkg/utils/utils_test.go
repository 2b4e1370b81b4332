package utils_test

import (
	"sort"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfworkflow/pkg/utils"
)

var _ = Describe("Naming helpers", func() {
	DescribeTable("BaseName",
		func(path, expected string) {
			Expect(utils.BaseName(path)).To(Equal(expected))
		},
		Entry("simple", "/docs/report.pdf", "report"),
		Entry("upper case extension", "/docs/Report.PDF", "Report"),
		Entry("dots in name", "/docs/v1.2.final.pdf", "v1.2.final"),
		Entry("no extension", "/docs/notes", "notes"),
	)

	DescribeTable("HasPDFExtension",
		func(path string, expected bool) {
			Expect(utils.HasPDFExtension(path)).To(Equal(expected))
		},
		Entry("lower case", "a.pdf", true),
		Entry("mixed case", "a.Pdf", true),
		Entry("text file", "a.txt", false),
		Entry("pdf in name only", "pdf.txt", false),
	)

	DescribeTable("PageNumberWidth",
		func(total, expected int) {
			Expect(utils.PageNumberWidth(total)).To(Equal(expected))
		},
		Entry("single page", 1, 1),
		Entry("nine pages", 9, 1),
		Entry("ten pages", 10, 2),
		Entry("ninety nine pages", 99, 2),
		Entry("hundred and twenty pages", 120, 3),
		Entry("no pages", 0, 1),
	)

	It("should pad page numbers so string and numeric order agree", func() {
		total := 120
		var names []string
		for i := 1; i <= total; i++ {
			names = append(names, "doc_page_"+utils.PaddedPageNumber(i, total)+".pdf")
		}
		Expect(names[0]).To(Equal("doc_page_001.pdf"))
		Expect(names[total-1]).To(Equal("doc_page_120.pdf"))

		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		Expect(sorted).To(Equal(names))

		Expect(utils.PaddedPageNumber(7, 9)).To(Equal(strconv.Itoa(7)))
	})
})
