package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	newLogger := func() *logger.Logger {
		return logger.New(
			logger.WithOutput(buf),
			logger.WithPrefix("[logger-test] "),
			logger.WithNoColor(true),
		)
	}

	It("should always write info messages", func() {
		log := newLogger()
		log.Info("processing %d files", 3)

		Expect(buf.String()).To(ContainSubstring("processing 3 files"))
		Expect(buf.String()).To(ContainSubstring("component=logger-test"))
	})

	It("should only write debug messages when verbose", func() {
		log := newLogger()
		log.Debug("hidden")
		Expect(buf.String()).NotTo(ContainSubstring("hidden"))

		log.SetVerbose(true)
		log.Debug("shown")
		Expect(buf.String()).To(ContainSubstring("shown"))
	})

	It("should only write trace messages at trace level", func() {
		log := newLogger()
		log.SetVerbose(true)
		log.Trace("too detailed")
		Expect(buf.String()).NotTo(ContainSubstring("too detailed"))

		log.SetLevel(logger.LevelTrace)
		log.Trace("detailed")
		Expect(buf.String()).To(ContainSubstring("detailed"))
	})

	It("should tag named children with their component", func() {
		log := newLogger()
		log.SetVerbose(true)
		child := log.Named("pdf_to_png")
		child.Debug("rendering page %d", 1)

		Expect(buf.String()).To(ContainSubstring("component=pdf_to_png"))
		Expect(buf.String()).To(ContainSubstring("rendering page 1"))
	})
})
