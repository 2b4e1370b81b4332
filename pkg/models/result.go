package models

type Status int

const (
	StatusSuccess Status = iota
	StatusError
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "error"
}

// FileResult is the outcome of processing one input file. It is not
// modified after it has been returned by an operation.
type FileResult struct {
	Status  Status
	Source  string
	Message string
	Outputs []string
	// PageCount is zero when the page count is unknown.
	PageCount int
	// OutputDir is set by operations that write into a dedicated directory.
	OutputDir string
	Kind      ErrorKind
	Err       error
}

func Succeeded(source, message string, outputs []string, pageCount int) FileResult {
	return FileResult{
		Status:    StatusSuccess,
		Source:    source,
		Message:   message,
		Outputs:   outputs,
		PageCount: pageCount,
		Kind:      KindNone,
	}
}

// Failed builds an error result. Outputs are never reported for a failed
// file, even if some were written before the error.
func Failed(source string, err error) FileResult {
	if err == nil {
		err = NewError(KindUnexpected, source, "unknown failure", nil)
	}
	return FileResult{
		Status:  StatusError,
		Source:  source,
		Message: err.Error(),
		Outputs: []string{},
		Kind:    KindOf(err),
		Err:     err,
	}
}

func (r FileResult) OK() bool {
	return r.Status == StatusSuccess
}

// BatchResult holds one FileResult per input, in input order.
type BatchResult []FileResult

func (b BatchResult) Succeeded() int {
	n := 0
	for _, r := range b {
		if r.OK() {
			n++
		}
	}
	return n
}

func (b BatchResult) Failed() int {
	return len(b) - b.Succeeded()
}
