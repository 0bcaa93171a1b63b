package sim

import (
	"testing"
	"time"
)

func TestFloorBoardEnqueueLatches(t *testing.T) {
	fb := newFloorBoard(Floors)
	now := time.Now()

	fb.enqueue(newPassenger(3, 1, now)) // dest < start, direction down

	if !fb.down[3] {
		t.Errorf("down[3] = false after enqueueing a down passenger")
	}
	if fb.up[3] {
		t.Errorf("up[3] = true, want false")
	}
	if !fb.hasAnyWaiting(3) {
		t.Errorf("hasAnyWaiting(3) = false, want true")
	}
	if fb.hasAnyWaiting(4) {
		t.Errorf("hasAnyWaiting(4) = true, want false")
	}
}

func TestFloorBoardDequeueFIFOAndLatchClear(t *testing.T) {
	fb := newFloorBoard(Floors)
	now := time.Now()

	p1 := newPassenger(2, 5, now)
	p2 := newPassenger(2, 4, now)
	fb.enqueue(p1)
	fb.enqueue(p2)

	boarded := fb.dequeueUpTo(2, dirUp, 1)
	if len(boarded) != 1 || boarded[0].ID != p1.ID {
		t.Fatalf("dequeueUpTo(n=1) = %v, want [p1] in FIFO order", boarded)
	}
	if !fb.up[2] {
		t.Errorf("up[2] latch cleared too early; one passenger still queued")
	}

	boarded = fb.dequeueUpTo(2, dirUp, 5)
	if len(boarded) != 1 || boarded[0].ID != p2.ID {
		t.Fatalf("dequeueUpTo(n=5) = %v, want [p2]", boarded)
	}
	if fb.up[2] {
		t.Errorf("up[2] latch should clear once the queue is drained")
	}
}

func TestFloorBoardDequeueCapsAtAvailable(t *testing.T) {
	fb := newFloorBoard(Floors)
	now := time.Now()

	for i := 0; i < 3; i++ {
		fb.enqueue(newPassenger(1, 4, now))
	}

	boarded := fb.dequeueUpTo(1, dirUp, 10)
	if len(boarded) != 3 {
		t.Errorf("dequeueUpTo with n > queue length returned %d, want 3", len(boarded))
	}
}
