package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kpauljoseph/pdfworkflow/internal/config"
	"github.com/kpauljoseph/pdfworkflow/internal/pdf"
	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Constructor builds a fresh operation for one batch run.
type Constructor func(cfg config.Config, log *logger.Logger) pdf.Operation

type Entry struct {
	Descriptor models.Descriptor
	New        Constructor
}

type Registry struct {
	entries map[string]Entry
	order   []string
}

// New builds a registry from entries. Identifiers must be non-empty and
// unique.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		id := e.Descriptor.ID
		if id == "" {
			return nil, errors.New("operation identifier cannot be empty")
		}
		if e.New == nil {
			return nil, fmt.Errorf("operation %q has no constructor", id)
		}
		if _, exists := r.entries[id]; exists {
			return nil, fmt.Errorf("operation %q is registered more than once", id)
		}
		r.entries[id] = e
		r.order = append(r.order, id)
	}

	return r, nil
}

// Builtin lists the operations shipped with pdfworkflow.
func Builtin() []Entry {
	return []Entry{
		{
			Descriptor: pdf.RasterizeDescriptor,
			New: func(cfg config.Config, log *logger.Logger) pdf.Operation {
				return pdf.NewRasterizer(cfg.Rasterize, log)
			},
		},
		{
			Descriptor: pdf.CropDescriptor,
			New: func(cfg config.Config, log *logger.Logger) pdf.Operation {
				return pdf.NewCropper(cfg.Crop, log)
			},
		},
		{
			Descriptor: pdf.SplitDescriptor,
			New: func(cfg config.Config, log *logger.Logger) pdf.Operation {
				return pdf.NewSplitter(log)
			},
		},
	}
}

func Default() *Registry {
	r, err := New(Builtin()...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Lookup(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// List returns descriptors in registration order. A non-empty query keeps
// only operations whose title contains it, ignoring case.
func (r *Registry) List(query string) []models.Descriptor {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Descriptor, 0, len(r.order))
	for _, id := range r.order {
		d := r.entries[id].Descriptor
		if query != "" && !strings.Contains(strings.ToLower(d.Title), query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Dispatch runs the operation registered under id over inputs.
func (r *Registry) Dispatch(ctx context.Context, id string, cfg config.Config, log *logger.Logger, inputs []string, outputDir string) (models.BatchResult, error) {
	entry, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, id)
	}

	op := entry.New(cfg, log)
	log.Debug("Running %s over %d file(s)", id, len(inputs))

	return pdf.ProcessMultiple(ctx, op, inputs, outputDir), nil
}
