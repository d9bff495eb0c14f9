package gesture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointerTracker(t *testing.T) {
	var tr PointerTracker
	tr.Push(3)
	tr.Push(1)
	tr.Push(2)

	if i := tr.Remove(1); i != 1 {
		t.Errorf("Remove(1) = %d, want 1", i)
	}
	if i := tr.Remove(9); i != -1 {
		t.Errorf("Remove(9) = %d, want -1", i)
	}
	if diff := cmp.Diff([]int32{3, 2}, tr.IDs()); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if id, ok := tr.Primary(); !ok || id != 3 {
		t.Errorf("Primary() = %d, %v", id, ok)
	}

	tr.PopBack()
	tr.PopBack()
	tr.PopBack() // extra pop on empty tracker is harmless
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	if _, ok := tr.Primary(); ok {
		t.Error("Primary() should fail on empty tracker")
	}
}
