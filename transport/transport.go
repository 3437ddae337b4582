// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/simtransport/bufpool"
	"code.hybscloud.com/simtransport/wire"
)

// Transport is a pair of buffer pools plus the acquire/
// release accounting Shutdown needs to retire them safely.
//
// The REDESIGN FLAGS note on the distilled spec's shutdown contract
// calls for "acquire, then re-check the shutting-down flag" rather
// than a single racy check-then-act; guard below implements exactly
// that pattern once, for both AcquireTX and AcquireRX.
type Transport struct {
	tx *bufpool.Pool
	rx *bufpool.Pool

	txUsers atomix.Uint32
	rxUsers atomix.Uint32

	txShutting atomix.Bool
	rxShutting atomix.Bool
}

// Init creates a Transport with txCount/rxCount buffers of bufSize
// bytes in its outbound/inbound pools respectively.
func Init(txCount, rxCount, bufSize int) (*Transport, error) {
	if txCount < 1 || rxCount < 1 || bufSize < 1 || bufSize > bufpool.MaxBufferSize {
		return nil, ErrInvalidArgument
	}
	tx, err := bufpool.New(txCount, bufSize)
	if err != nil {
		return nil, err
	}
	rx, err := bufpool.New(rxCount, bufSize)
	if err != nil {
		return nil, err
	}
	return &Transport{tx: tx, rx: rx}, nil
}

// guard implements the acquire-then-re-check-shutting pattern for one
// side (tx or rx) of a Transport: it increments the user counter
// first, then checks the shutting flag, so a Shutdown call that
// observed zero users before this increment cannot also miss this
// caller's presence once the increment is visible.
func guard(users *atomix.Uint32, shutting *atomix.Bool, release func()) error {
	users.AddAcqRel(1)
	if shutting.LoadAcquire() {
		release()
		return ErrShuttingDown
	}
	return nil
}

// AcquireTX reserves one buffer from the outbound pool for the
// caller to fill and hand to SendMessageZCP, or returns
// ErrShuttingDown if Shutdown has begun.
func (t *Transport) AcquireTX() (*bufpool.Buffer, error) {
	release := func() { t.txUsers.AddAcqRel(^uint32(0)) }
	if err := guard(&t.txUsers, &t.txShutting, release); err != nil {
		return nil, err
	}
	buf, err := t.tx.Acquire()
	if err != nil {
		release()
		return nil, err
	}
	return buf, nil
}

// ReleaseTX returns buf to the outbound pool.
func (t *Transport) ReleaseTX(buf *bufpool.Buffer) error {
	defer t.txUsers.AddAcqRel(^uint32(0))
	return t.tx.Release(buf)
}

// AcquireRX reserves one buffer from the inbound pool, or returns
// ErrShuttingDown if Shutdown has begun.
func (t *Transport) AcquireRX() (*bufpool.Buffer, error) {
	release := func() { t.rxUsers.AddAcqRel(^uint32(0)) }
	if err := guard(&t.rxUsers, &t.rxShutting, release); err != nil {
		return nil, err
	}
	buf, err := t.rx.Acquire()
	if err != nil {
		release()
		return nil, err
	}
	return buf, nil
}

// ReleaseRX returns buf to the inbound pool.
func (t *Transport) ReleaseRX(buf *bufpool.Buffer) error {
	defer t.rxUsers.AddAcqRel(^uint32(0))
	return t.rx.Release(buf)
}

// SendMessage copies payload into a pool buffer and writes one framed
// message to fd. A payload longer than the pool's buffer size is
// written straight from payload, without the copy. For a caller that
// already holds a pool buffer it filled in place, SendMessageZCP
// avoids this copy.
func (t *Transport) SendMessage(fd int, msgType uint8, flags wire.Flags, payload []byte) error {
	buf, err := t.AcquireTX()
	if err != nil {
		return err
	}
	defer func() { _ = t.ReleaseTX(buf) }()

	if len(payload) > buf.Len() {
		return wire.WriteMessage(fd, wire.Header{Version: wire.ProtocolVersion, MsgType: msgType, Flags: flags}, payload)
	}
	n := copy(buf.Bytes(), payload)
	return wire.WriteMessage(fd, wire.Header{Version: wire.ProtocolVersion, MsgType: msgType, Flags: flags}, buf.Slice(n))
}

// SendMessageZCP writes the first n bytes of buf directly to fd with
// no intermediate copy — the caller is expected to have filled buf in
// place via AcquireTX. Unlike SendMessage, ownership of buf is not
// transferred: the caller retains it and must call ReleaseTX exactly
// once, whether or not the write succeeded.
func (t *Transport) SendMessageZCP(fd int, msgType uint8, flags wire.Flags, buf *bufpool.Buffer, n int) error {
	return wire.WriteMessage(fd, wire.Header{Version: wire.ProtocolVersion, MsgType: msgType, Flags: flags}, buf.Slice(n))
}

// RecvMessage acquires an inbound pool buffer, reads one framed
// message from fd into it, and returns the buffer to the caller along
// with the header describing it. h.PayloadLen bytes of buf.Bytes()
// (equivalently buf.Slice(int(h.PayloadLen))) hold the payload; the
// rest of the fixed-size buffer is untouched. The caller must release
// the buffer with ReleaseRX once done with it.
func (t *Transport) RecvMessage(fd int) (wire.Header, *bufpool.Buffer, error) {
	buf, err := t.AcquireRX()
	if err != nil {
		return wire.Header{}, nil, err
	}
	h, _, err := wire.ReadMessageInto(fd, buf.Bytes())
	if err != nil {
		_ = t.ReleaseRX(buf)
		return wire.Header{}, nil, err
	}
	return h, buf, nil
}

// Shutdown marks both pools closed to new acquirers, then blocks until
// every in-flight AcquireTX/AcquireRX caller has released its buffer.
// Shutdown itself is idempotent but not safe to call concurrently with
// another Shutdown call.
func (t *Transport) Shutdown() {
	t.txShutting.StoreRelease(true)
	t.rxShutting.StoreRelease(true)

	sw := spin.Wait{}
	for t.txUsers.LoadAcquire() != 0 {
		sw.Once()
	}
	sw = spin.Wait{}
	for t.rxUsers.LoadAcquire() != 0 {
		sw.Once()
	}
}
