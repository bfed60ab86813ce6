package profiling

import (
	"strings"
	"testing"
)

func TestTrackAndReset(t *testing.T) {
	ResetTick()
	for range 3 {
		Track("a")()
	}
	Track("b")()

	if got := Calls("a"); got != 3 {
		t.Errorf("Calls(a) = %d, want 3", got)
	}
	if got := len(Snapshot()); got != 2 {
		t.Errorf("len(Snapshot) = %d, want 2", got)
	}
	if s := TopN(5); !strings.Contains(s, "a:") || !strings.Contains(s, "(x3)") {
		t.Errorf("TopN missing entry: %q", s)
	}

	ResetTick()
	if got := len(Snapshot()); got != 0 {
		t.Errorf("after reset len(Snapshot) = %d, want 0", got)
	}
	if TopN(3) != "" {
		t.Errorf("expected empty TopN after reset")
	}
}
