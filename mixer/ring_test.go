// SPDX-License-Identifier: EPL-2.0

package mixer

import "testing"

func TestRingPushAndAvailable(t *testing.T) {
	t.Parallel()

	var rb ring

	if got := rb.available(); got != 0 {
		t.Fatalf("available() on empty ring = %d, want 0", got)
	}

	for i := 0; i < 10; i++ {
		rb.pushFrame(float32(i), -float32(i))
	}

	if got := rb.available(); got != 10 {
		t.Fatalf("available() after 10 pushes = %d, want 10", got)
	}

	l, r := rb.frameAt(3)
	if l != 3 || r != -3 {
		t.Errorf("frameAt(3) = (%v, %v), want (3, -3)", l, r)
	}
}

func TestRingAdvance(t *testing.T) {
	t.Parallel()

	var rb ring
	for i := 0; i < 10; i++ {
		rb.pushFrame(1, 1)
	}

	rb.advance(4)
	if got := rb.available(); got != 6 {
		t.Errorf("available() after advance(4) = %d, want 6", got)
	}

	rb.advance(6)
	if got := rb.available(); got != 0 {
		t.Errorf("available() after draining = %d, want 0", got)
	}
}

// TestRingOverrunSaturates verifies the drop-oldest policy: pushing more
// than the capacity never blocks and available() saturates at capacity.
func TestRingOverrunSaturates(t *testing.T) {
	t.Parallel()

	var rb ring
	for i := 0; i < ringFrames+50; i++ {
		rb.pushFrame(float32(i), float32(i))
	}

	if got := rb.available(); got != ringFrames {
		t.Fatalf("available() after overrun = %d, want %d", got, ringFrames)
	}

	// The oldest 50 frames were overwritten in place by the newest 50.
	l, _ := rb.frameAt(ringFrames)
	if l != float32(ringFrames) {
		t.Errorf("frame %d = %v, want %v", ringFrames, l, float32(ringFrames))
	}
	l, _ = rb.frameAt(0)
	if l != float32(ringFrames) {
		t.Errorf("slot of overwritten frame 0 = %v, want %v (newest lap)", l, float32(ringFrames))
	}
}

// TestRingCounterWrap verifies the monotonic counters keep working across
// the unsigned wrap point; only the masked value ever indexes storage.
func TestRingCounterWrap(t *testing.T) {
	t.Parallel()

	base := uint32(0xFFFFFFF0)

	var rb ring
	rb.writeIndex.Store(base)
	rb.readIndex.Store(base)

	for i := 0; i < 32; i++ {
		rb.pushFrame(float32(i), 0)
	}

	if got := rb.available(); got != 32 {
		t.Fatalf("available() across wrap = %d, want 32", got)
	}

	l, _ := rb.frameAt(base + 20)
	if l != 20 {
		t.Errorf("frameAt across wrap = %v, want 20", l)
	}
}
