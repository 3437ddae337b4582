// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"time"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/atomix"
)

// Reactor is a single-threaded epoll event loop with a cross-thread
// wake channel.
type Reactor struct {
	epfd   int
	wakeFd int
	closed atomix.Bool
}

// New creates a Reactor backed by a fresh epoll instance and an
// internal eventfd used by Wake.
func New() (*Reactor, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, &opError{Op: "epoll_create1", Err: err}
	}
	wakeFd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		_ = unix.Close(epfd)
		return nil, &opError{Op: "eventfd", Err: err}
	}
	r := &Reactor{epfd: epfd, wakeFd: wakeFd}
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(wakeFd)}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, wakeFd, &ev); err != nil {
		_ = unix.Close(wakeFd)
		_ = unix.Close(epfd)
		return nil, &opError{Op: "epoll_ctl(wake)", Fd: wakeFd, Err: err}
	}
	return r, nil
}

// Add registers fd for the interests in mask.
func (r *Reactor) Add(fd int, mask EventMask) error {
	if fd <= 0 || mask == 0 {
		return ErrInvalidArgument
	}
	if r.closed.LoadAcquire() {
		return ErrClosed
	}
	ev := unix.EpollEvent{Events: mask.toEpoll(), Fd: int32(fd)}
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return &opError{Op: "epoll_ctl(add)", Fd: fd, Err: err}
	}
	return nil
}

// Modify changes the interest set for an already-registered fd. It is
// also how a caller re-arms a OneShot registration.
func (r *Reactor) Modify(fd int, mask EventMask) error {
	if fd <= 0 || mask == 0 {
		return ErrInvalidArgument
	}
	if r.closed.LoadAcquire() {
		return ErrClosed
	}
	ev := unix.EpollEvent{Events: mask.toEpoll(), Fd: int32(fd)}
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_MOD, fd, &ev); err != nil {
		return &opError{Op: "epoll_ctl(mod)", Fd: fd, Err: err}
	}
	return nil
}

// Remove unregisters fd. It is not an error to remove an fd that has
// already been closed out from under the reactor (EBADF is ignored),
// since close() implicitly drops epoll registration on most kernels.
func (r *Reactor) Remove(fd int) error {
	if fd <= 0 {
		return ErrInvalidArgument
	}
	if r.closed.LoadAcquire() {
		return ErrClosed
	}
	err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, fd, nil)
	if err != nil && err != unix.EBADF && err != unix.ENOENT {
		return &opError{Op: "epoll_ctl(del)", Fd: fd, Err: err}
	}
	return nil
}

// Wait blocks until at least one registered fd is ready, the reactor
// is woken via Wake, or timeoutMS elapses (-1 blocks indefinitely, 0
// polls without blocking). It returns the number of entries written
// into events. A signal interruption (EINTR) is reported as n == 0,
// err == nil rather than as an error, matching epoll_wait's own
// "spurious wakeup" contract.
func (r *Reactor) Wait(events []Event, timeoutMS int) (int, error) {
	n, _, err := r.wait(events, timeoutMS)
	return n, err
}

// wait is Wait that also reports whether the wake fd fired.
func (r *Reactor) wait(events []Event, timeoutMS int) (int, bool, error) {
	if r.closed.LoadAcquire() {
		return 0, false, ErrClosed
	}
	raw := make([]unix.EpollEvent, len(events)+1)
	n, err := unix.EpollWait(r.epfd, raw, timeoutMS)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, &opError{Op: "epoll_wait", Err: err}
	}
	out := 0
	woke := false
	for i := 0; i < n; i++ {
		fd := int(raw[i].Fd)
		if fd == r.wakeFd {
			r.drainWake()
			woke = true
			continue
		}
		if out >= len(events) {
			break
		}
		events[out] = Event{Fd: fd, Events: fromEpoll(raw[i].Events)}
		out++
	}
	return out, woke, nil
}

// TimedWait is Wait bounded by a wall-clock budget rather than a
// single epoll_wait timeout, re-entering epoll_wait after a spurious
// EINTR wakeup until the budget is exhausted. timedOut reports whether
// the budget ran out before any event (including a wake) arrived.
func (r *Reactor) TimedWait(events []Event, totalMS int) (n int, timedOut bool, err error) {
	deadline := time.Now().Add(time.Duration(totalMS) * time.Millisecond)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, true, nil
		}
		var woke bool
		n, woke, err = r.wait(events, int(remaining.Milliseconds())+1)
		if err != nil {
			return 0, false, err
		}
		if n > 0 || woke {
			return n, false, nil
		}
		if time.Now().After(deadline) {
			return 0, true, nil
		}
	}
}

// drainWake empties the eventfd counter so a single Wake (or many
// coalesced Wake calls) produces exactly one drain, never a growing
// backlog of spurious readiness.
func (r *Reactor) drainWake() {
	var buf [8]byte
	for {
		_, err := unix.Read(r.wakeFd, buf[:])
		if err == nil || err == unix.EAGAIN {
			return
		}
		if err == unix.EINTR {
			continue
		}
		return
	}
}

// Wake interrupts a blocked Wait/TimedWait call on another goroutine.
// Safe to call from any goroutine, including from inside a signal
// handler's goroutine.
func (r *Reactor) Wake() error {
	if r.closed.LoadAcquire() {
		return ErrClosed
	}
	var one [8]byte
	one[7] = 1
	_, err := unix.Write(r.wakeFd, one[:])
	if err != nil && err != unix.EAGAIN {
		return &opError{Op: "eventfd write", Fd: r.wakeFd, Err: err}
	}
	return nil
}

// Close releases the epoll and eventfd file descriptors. Close is
// idempotent; subsequent calls return nil.
func (r *Reactor) Close() error {
	if !r.closed.CompareAndSwapAcqRel(false, true) {
		return nil
	}
	err1 := unix.Close(r.wakeFd)
	err2 := unix.Close(r.epfd)
	if err1 != nil {
		return &opError{Op: "close(wake)", Fd: r.wakeFd, Err: err1}
	}
	if err2 != nil {
		return &opError{Op: "close(epoll)", Fd: r.epfd, Err: err2}
	}
	return nil
}
