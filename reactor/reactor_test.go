// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor_test

import (
	"sync"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/simtransport/reactor"
)

func newReactor(t *testing.T) *reactor.Reactor {
	t.Helper()
	r, err := reactor.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func socketpair(t *testing.T) (a, b int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair: %v", err)
	}
	t.Cleanup(func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

// TestWaitReportsReadable is scenario S6's companion: a real event
// fires through Wait like any other readiness.
func TestWaitReportsReadable(t *testing.T) {
	r := newReactor(t)
	a, b := socketpair(t)
	if err := r.Add(b, reactor.Readable); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := unix.Write(a, []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	events := make([]reactor.Event, 4)
	n, err := r.Wait(events, 1000)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if n != 1 || events[0].Fd != b || events[0].Events&reactor.Readable == 0 {
		t.Fatalf("got n=%d events=%+v", n, events[:n])
	}
}

// TestWakeWithNoRealEvents is scenario S6: Wake alone interrupts a
// blocked Wait and produces zero user-visible events.
func TestWakeWithNoRealEvents(t *testing.T) {
	r := newReactor(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(20 * time.Millisecond)
		if err := r.Wake(); err != nil {
			t.Errorf("Wake: %v", err)
		}
	}()

	events := make([]reactor.Event, 4)
	start := time.Now()
	n, err := r.Wait(events, 5000)
	elapsed := time.Since(start)
	wg.Wait()

	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if n != 0 {
		t.Fatalf("got n=%d, want 0 (wake produces no visible events)", n)
	}
	if elapsed >= 4*time.Second {
		t.Fatalf("Wait did not return promptly after Wake: elapsed=%v", elapsed)
	}
}

// TestWakeDoesNotAccumulate verifies invariant 9: multiple Wake calls
// before a single Wait coalesce into at most one drain, not a growing
// backlog of spurious wakeups on subsequent Wait calls.
func TestWakeDoesNotAccumulate(t *testing.T) {
	r := newReactor(t)
	for i := 0; i < 5; i++ {
		if err := r.Wake(); err != nil {
			t.Fatalf("Wake: %v", err)
		}
	}

	events := make([]reactor.Event, 4)
	n, err := r.Wait(events, 1000)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if n != 0 {
		t.Fatalf("first Wait: got n=%d, want 0", n)
	}

	n, err = r.Wait(events, 50)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if n != 0 {
		t.Fatalf("second Wait: got n=%d, want 0 (no leftover wakeups)", n)
	}
}

func TestTimedWaitTimesOut(t *testing.T) {
	r := newReactor(t)
	events := make([]reactor.Event, 4)
	start := time.Now()
	n, timedOut, err := r.TimedWait(events, 50)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("TimedWait: %v", err)
	}
	if !timedOut || n != 0 {
		t.Fatalf("got n=%d timedOut=%v, want 0/true", n, timedOut)
	}
	if elapsed < 40*time.Millisecond {
		t.Fatalf("returned too early: elapsed=%v", elapsed)
	}
}

func TestAddRejectsInvalidArgument(t *testing.T) {
	r := newReactor(t)
	if err := r.Add(0, reactor.Readable); err != reactor.ErrInvalidArgument {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if err := r.Add(3, 0); err != reactor.ErrInvalidArgument {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestOperationsAfterCloseFail(t *testing.T) {
	r, err := reactor.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := r.Wake(); err != reactor.ErrClosed {
		t.Fatalf("Wake after Close: got %v", err)
	}
	if _, err := r.Wait(make([]reactor.Event, 1), 0); err != reactor.ErrClosed {
		t.Fatalf("Wait after Close: got %v", err)
	}
}
