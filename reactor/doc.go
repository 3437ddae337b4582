// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reactor wraps a Linux epoll instance into a readiness-event
// loop suitable for driving transport's SendMessage/RecvMessage from a
// single thread against many connections at once.
//
// A Reactor owns exactly one epoll file descriptor and exactly one
// eventfd used as a cross-thread wake channel: any goroutine may call
// Wake to interrupt a blocked Wait, e.g. after enqueuing work for the
// reactor's owning thread to pick up. The wake fd is registered like
// any other member but is never surfaced in the Event slice Wait fills
// in — it is drained and filtered out before Wait returns.
//
// Reactor is not safe for concurrent use by multiple goroutines calling
// Wait at the same time; it is intended to be driven by a single
// goroutine per instance, the same restriction epoll itself implies
// for level-triggered edge bookkeeping. Add, Modify, Remove and Wake
// may be called from any goroutine.
package reactor
