// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by any Reactor method other than Close called
// after Close.
var ErrClosed = errors.New("reactor: closed")

// ErrInvalidArgument is returned for a zero or negative fd, or an empty
// EventMask passed to Add.
var ErrInvalidArgument = errors.New("reactor: invalid argument")

// opError wraps an underlying syscall failure with the operation that
// triggered it.
type opError struct {
	Op  string
	Fd  int
	Err error
}

func (e *opError) Error() string {
	return fmt.Sprintf("reactor: %s(fd=%d): %v", e.Op, e.Fd, e.Err)
}

func (e *opError) Unwrap() error { return e.Err }
