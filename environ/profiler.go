// Copyright © 2019 The Rurtle authors

package environ

// Profiler hooks into builtin invocation.  Implementations annotate traces
// or collect timings; see the x/profiler package.
type Profiler interface {
	// Is the profiler enabled?
	IsEnabled() bool
	// Enable the profiler
	Enable() error
	// End the profiling session
	Complete() error
	// Start marks the start of a builtin call and returns the matching end
	// mark.
	Start(name string) func()
}
