// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "golang.org/x/sys/unix"

// EventMask is a bitset of interest/readiness flags for a watched file
// descriptor.
type EventMask uint32

const (
	// Readable interest fires when fd has data to read, or (for a
	// listening socket) a pending connection.
	Readable EventMask = 1 << iota
	// Writable interest fires when fd can accept a write without
	// blocking.
	Writable
	// EdgeTriggered requests edge- rather than level-triggered
	// notification: a readiness event fires once per transition, and
	// the caller must drain fd until it sees ErrWouldBlock.
	EdgeTriggered
	// OneShot disables further notification for fd after one event
	// fires, until Modify re-arms it. Useful for handing a ready fd off
	// to a worker without racing a second reactor wakeup.
	OneShot
)

func (m EventMask) toEpoll() uint32 {
	var e uint32
	if m&Readable != 0 {
		e |= unix.EPOLLIN
	}
	if m&Writable != 0 {
		e |= unix.EPOLLOUT
	}
	if m&EdgeTriggered != 0 {
		e |= unix.EPOLLET
	}
	if m&OneShot != 0 {
		e |= unix.EPOLLONESHOT
	}
	return e
}

func fromEpoll(e uint32) EventMask {
	var m EventMask
	if e&(unix.EPOLLIN|unix.EPOLLERR|unix.EPOLLHUP) != 0 {
		m |= Readable
	}
	if e&unix.EPOLLOUT != 0 {
		m |= Writable
	}
	return m
}

// Event reports the readiness observed for one watched file descriptor.
type Event struct {
	Fd     int
	Events EventMask
}
