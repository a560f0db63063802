package profile

// Tag is the build tag that enables profiling. It also names the default
// output subdirectory.
const Tag = "pprof"

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler configures a single profiling session.
type Profiler struct {
	// Mode selects the profile kind; empty disables profiling.
	Mode string
	// Path is the output directory.
	Path string
	// Quiet suppresses the profiler's own log lines.
	Quiet bool
}

// Start begins profiling and returns a [Stopper] for the session.
// Both Start and Stop are always safely callable: an empty or unknown mode,
// or a build without the pprof tag, yields a no-op.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
