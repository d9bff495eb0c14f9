package gesture

// PointerTracker keeps the ids of the pointers a detector follows, in the
// order they went down.
type PointerTracker struct {
	ids []int32
}

// Push appends id as the most recently pressed pointer.
func (t *PointerTracker) Push(id int32) {
	t.ids = append(t.ids, id)
}

// PopBack drops the most recently pressed pointer. It is a no-op on an
// empty tracker.
func (t *PointerTracker) PopBack() {
	if len(t.ids) > 0 {
		t.ids = t.ids[:len(t.ids)-1]
	}
}

// Remove deletes id and returns the position it occupied, or -1 if the id
// was not tracked.
func (t *PointerTracker) Remove(id int32) int {
	for i, v := range t.ids {
		if v == id {
			copy(t.ids[i:], t.ids[i+1:])
			t.ids = t.ids[:len(t.ids)-1]
			return i
		}
	}
	return -1
}

// At returns the i-th tracked id.
func (t *PointerTracker) At(i int) (int32, bool) {
	if i < 0 || i >= len(t.ids) {
		return 0, false
	}
	return t.ids[i], true
}

// Primary returns the oldest tracked id.
func (t *PointerTracker) Primary() (int32, bool) {
	return t.At(0)
}

// Len returns the number of tracked ids.
func (t *PointerTracker) Len() int {
	return len(t.ids)
}

// IDs returns the tracked ids. The returned slice MUST NOT be mutated.
func (t *PointerTracker) IDs() []int32 {
	return t.ids
}

// Reset forgets every tracked id.
func (t *PointerTracker) Reset() {
	t.ids = t.ids[:0]
}
