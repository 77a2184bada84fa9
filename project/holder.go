package project

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/willibrandon/vcproj/folder"
	"github.com/willibrandon/vcproj/observability"
)

// Holder keeps the current model of one project file. Reload parses a complete new
// model before publishing it, so concurrent readers see either the old or the new model
// and never a partial one.
type Holder struct {
	path    string
	opts    []Option
	current atomic.Pointer[snapshot]

	// publish serializes swaps so generations follow publication order
	publish sync.Mutex
}

type snapshot struct {
	project    Project
	generation uint64
}

// ReloadResult describes a successful Reload.
type ReloadResult struct {
	// Project is the newly published model
	Project Project

	// Generation increases by one with every published model, starting at 1
	Generation uint64

	// Added and Removed compare Files() of the previous and new models
	Added   []string
	Removed []string
}

// Changed reports whether the file list changed.
func (r *ReloadResult) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// NewHolder creates a holder for the project at path. Nothing is loaded until Reload.
func NewHolder(path string, opts ...Option) *Holder {
	return &Holder{path: path, opts: opts}
}

// Path returns the project file path the holder reloads from.
func (h *Holder) Path() string {
	return h.path
}

// Project returns the current model, or nil before the first successful Reload.
func (h *Holder) Project() Project {
	if s := h.current.Load(); s != nil {
		return s.project
	}
	return nil
}

// Generation returns the number of models published so far.
func (h *Holder) Generation() uint64 {
	if s := h.current.Load(); s != nil {
		return s.generation
	}
	return 0
}

// Current returns the current model together with its generation, read atomically.
func (h *Holder) Current() (Project, uint64) {
	if s := h.current.Load(); s != nil {
		return s.project, s.generation
	}
	return nil, 0
}

// Store publishes p as the current model and returns the model it replaced.
func (h *Holder) Store(p Project) Project {
	old, _ := h.swap(p)
	return old
}

func (h *Holder) swap(p Project) (Project, uint64) {
	h.publish.Lock()
	defer h.publish.Unlock()

	old := h.current.Load()
	next := &snapshot{project: p, generation: 1}
	if old != nil {
		next.generation = old.generation + 1
	}
	h.current.Store(next)

	if old == nil {
		return nil, next.generation
	}
	return old.project, next.generation
}

// Reload parses the project file again and publishes the result. On failure the
// previous model stays current and the error is returned.
func (h *Holder) Reload(ctx context.Context) (*ReloadResult, error) {
	ctx, span := observability.StartModelReloadSpan(ctx, h.path)

	p, err := LoadContext(ctx, h.path, h.opts...)
	if err != nil {
		observability.ModelReloadsTotal.WithLabelValues(observability.StatusFailure).Inc()
		err = fmt.Errorf("failed to reload project: %w", err)
		observability.EndSpanWithError(span, err)
		return nil, err
	}

	previous, generation := h.swap(p)

	var oldFiles []string
	if previous != nil {
		oldFiles = previous.Files()
	}
	added, removed := folder.Diff(oldFiles, p.Files())

	observability.ModelReloadsTotal.WithLabelValues(observability.StatusSuccess).Inc()
	observability.EndSpanWithError(span, nil)

	return &ReloadResult{
		Project:    p,
		Generation: generation,
		Added:      added,
		Removed:    removed,
	}, nil
}
