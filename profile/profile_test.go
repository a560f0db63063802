package profile

import (
	"slices"
	"testing"
)

func TestProfiler_Start_EmptyModeIsNoop(t *testing.T) {
	stop := Profiler{}.Start()

	if _, ok := stop.(ignore); !ok {
		t.Fatalf("expected no-op stopper, got %T", stop)
	}

	stop.Stop()
	stop.Stop() // idempotent
}

func TestProfiler_Start_UnknownModeIsNoop(t *testing.T) {
	stop := Profiler{Mode: "bogus", Path: t.TempDir(), Quiet: true}.Start()
	defer stop.Stop()

	if _, ok := stop.(ignore); !ok {
		t.Fatalf("expected no-op stopper for unknown mode, got %T", stop)
	}
}

func TestModes_Sorted(t *testing.T) {
	modes := Modes()
	if !slices.IsSorted(modes) {
		t.Errorf("Modes() not sorted: %v", modes)
	}
}
