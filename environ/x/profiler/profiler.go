package profiler

import (
	"fmt"

	"github.com/ligthyear/rurtle/environ"
)

// profiler is a minimal environ.Profiler
type profiler struct {
	env        *environ.Environment
	enabled    bool
	skipFilter SkipFilter
}

var _ environ.Profiler = &profiler{}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

type Option func(*profiler)

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) Complete() error {
	return nil
}

func (p *profiler) Start(name string) func() {
	return func() {}
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(name string) bool {
	return !p.enabled || p.skipFilter != nil && p.skipFilter(name)
}

// SkipFilter reports whether spans for the named builtin should be skipped.
type SkipFilter func(name string) bool

// WithSkipFilter sets the filter for tracing spans.
func WithSkipFilter(skipFilter SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = skipFilter
	}
}

// WithoutMovementFilter skips the high-frequency movement builtins so traces
// stay focused on the rest of a script.
func WithoutMovementFilter() Option {
	return WithSkipFilter(movementSkipFilter)
}

var movementBuiltins = map[string]bool{
	"forward":  true,
	"backward": true,
	"left":     true,
	"right":    true,
}

func movementSkipFilter(name string) bool {
	return movementBuiltins[name]
}
