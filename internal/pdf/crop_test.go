package pdf_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfworkflow/internal/config"
	"github.com/kpauljoseph/pdfworkflow/internal/pdf"
	"github.com/kpauljoseph/pdfworkflow/internal/testutil"
	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

type fakeRunner struct {
	calls []pdf.Command
	run   func(cmd pdf.Command) (pdf.CommandResult, error)
}

func (r *fakeRunner) Run(_ context.Context, cmd pdf.Command) (pdf.CommandResult, error) {
	r.calls = append(r.calls, cmd)
	if r.run == nil {
		return pdf.CommandResult{}, nil
	}
	return r.run(cmd)
}

type fixedPageCounter int

func (n fixedPageCounter) CountPages(context.Context, string) int {
	return int(n)
}

func notOnPath(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

func envValue(env []string, key string) string {
	for _, kv := range env {
		if strings.HasPrefix(kv, key+"=") {
			return strings.TrimPrefix(kv, key+"=")
		}
	}
	return ""
}

var _ = Describe("Cropper", func() {
	var (
		testDir string
		binDir  string
		input   string
		binary  string
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "crop-test-*")
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()

		input = filepath.Join(testDir, "scan.pdf")
		Expect(testutil.WritePDF(input, 2)).To(Succeed())

		binDir = filepath.Join(testDir, "texbin")
		binary, err = testutil.WriteExecutable(binDir, "pdfcrop", `cp "$3" "$4"`)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	locatorFor := func(candidates ...string) *pdf.BinaryLocator {
		l := pdf.NewBinaryLocator("pdfcrop", candidates)
		l.LookPath = notOnPath
		return l
	}

	copyOutput := func(cmd pdf.Command) (pdf.CommandResult, error) {
		data, err := os.ReadFile(cmd.Args[2])
		if err != nil {
			return pdf.CommandResult{}, err
		}
		return pdf.CommandResult{Stdout: "==> 2 pages written"}, os.WriteFile(cmd.Args[3], data, 0644)
	}

	It("should describe itself as pdf_crop_margins", func() {
		c := pdf.NewCropper(config.Default().Crop, pdfTestLogger())
		Expect(c.Descriptor()).To(Equal(pdf.CropDescriptor))
	})

	It("should run pdfcrop with the margin and report the cropped file", func() {
		runner := &fakeRunner{run: copyOutput}
		cfg := config.Default().Crop
		cfg.Margin = "10"
		cropper := pdf.NewCropper(cfg, pdfTestLogger(),
			pdf.WithLocator(locatorFor(binary)),
			pdf.WithRunner(runner),
			pdf.WithPageCounter(fixedPageCounter(2)),
		)

		result := cropper.ProcessSingle(ctx, input, "")

		Expect(result.Status).To(Equal(models.StatusSuccess), result.Message)
		expected := filepath.Join(testDir, "scan_cropped.pdf")
		Expect(result.Outputs).To(Equal([]string{expected}))
		Expect(expected).To(BeAnExistingFile())
		Expect(result.PageCount).To(Equal(2))
		Expect(result.Message).To(Equal("Cropped 2 page(s)"))

		Expect(runner.calls).To(HaveLen(1))
		call := runner.calls[0]
		Expect(call.Path).To(Equal(binary))
		Expect(call.Args).To(Equal([]string{"--margins", "10", input, expected}))
		Expect(envValue(call.Env, "PATH")).To(HavePrefix(binDir + string(os.PathListSeparator)))
	})

	It("should fail with a missing dependency when pdfcrop cannot be found", func() {
		runner := &fakeRunner{}
		cropper := pdf.NewCropper(config.Default().Crop, pdfTestLogger(),
			pdf.WithLocator(locatorFor(filepath.Join(testDir, "nowhere", "pdfcrop"))),
			pdf.WithRunner(runner),
			pdf.WithPageCounter(fixedPageCounter(0)),
		)

		result := cropper.ProcessSingle(ctx, input, "")

		Expect(result.Status).To(Equal(models.StatusError))
		Expect(result.Kind).To(Equal(models.KindMissingDependency))
		Expect(result.Message).To(ContainSubstring("missing dependency"))
		Expect(result.Message).To(ContainSubstring("pdfcrop"))
		Expect(result.Outputs).To(BeEmpty())
		Expect(runner.calls).To(BeEmpty())
	})

	It("should not trust a zero exit status when no output was written", func() {
		runner := &fakeRunner{}
		cropper := pdf.NewCropper(config.Default().Crop, pdfTestLogger(),
			pdf.WithLocator(locatorFor(binary)),
			pdf.WithRunner(runner),
			pdf.WithPageCounter(fixedPageCounter(2)),
		)

		result := cropper.ProcessSingle(ctx, input, "")

		Expect(result.Status).To(Equal(models.StatusError))
		Expect(result.Kind).To(Equal(models.KindExternalTool))
		Expect(result.Message).To(ContainSubstring("was not created"))
		Expect(result.Outputs).To(BeEmpty())
	})

	It("should not mistake output from an earlier run for success", func() {
		stale := filepath.Join(testDir, "scan_cropped.pdf")
		Expect(os.WriteFile(stale, []byte("old"), 0644)).To(Succeed())

		cropper := pdf.NewCropper(config.Default().Crop, pdfTestLogger(),
			pdf.WithLocator(locatorFor(binary)),
			pdf.WithRunner(&fakeRunner{}),
			pdf.WithPageCounter(fixedPageCounter(2)),
		)

		result := cropper.ProcessSingle(ctx, input, "")
		Expect(result.Kind).To(Equal(models.KindExternalTool))
	})

	It("should report a nonzero exit with the tool's stderr", func() {
		runner := &fakeRunner{run: func(pdf.Command) (pdf.CommandResult, error) {
			return pdf.CommandResult{Stderr: "!!! Error: Cannot open scan.pdf\n", ExitCode: 1}, errors.New("exit status 1")
		}}
		cropper := pdf.NewCropper(config.Default().Crop, pdfTestLogger(),
			pdf.WithLocator(locatorFor(binary)),
			pdf.WithRunner(runner),
			pdf.WithPageCounter(fixedPageCounter(2)),
		)

		result := cropper.ProcessSingle(ctx, input, "")

		Expect(result.Status).To(Equal(models.StatusError))
		Expect(result.Kind).To(Equal(models.KindExternalTool))
		Expect(result.Message).To(ContainSubstring("Cannot open scan.pdf"))
		Expect(result.Outputs).To(BeEmpty())
	})

	It("should report zero pages rather than fail when the page count is unavailable", func() {
		cfg := config.Default().Crop
		cfg.PageCountBinary = "pdfinfo-that-does-not-exist"
		cfg.SearchPaths = []string{filepath.Join(testDir, "nowhere", "pdfcrop")}

		cropper := pdf.NewCropper(cfg, pdfTestLogger(),
			pdf.WithLocator(locatorFor(binary)),
			pdf.WithRunner(&fakeRunner{run: copyOutput}),
		)

		result := cropper.ProcessSingle(ctx, input, "")

		Expect(result.Status).To(Equal(models.StatusSuccess), result.Message)
		Expect(result.PageCount).To(Equal(0))
	})

	It("should run a real executable found in the candidate locations", func() {
		outputDir := filepath.Join(testDir, "cropped")
		cropper := pdf.NewCropper(config.Default().Crop, pdfTestLogger(),
			pdf.WithLocator(locatorFor(filepath.Join(testDir, "missing", "pdfcrop"), binary)),
			pdf.WithPageCounter(fixedPageCounter(2)),
		)

		result := cropper.ProcessSingle(ctx, input, outputDir)

		Expect(result.Status).To(Equal(models.StatusSuccess), result.Message)
		Expect(result.Outputs).To(Equal([]string{filepath.Join(outputDir, "scan_cropped.pdf")}))
		Expect(result.Outputs[0]).To(BeAnExistingFile())
	})
})
