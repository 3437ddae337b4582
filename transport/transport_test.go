// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"code.hybscloud.com/simtransport/transport"
	"code.hybscloud.com/simtransport/wire"
)

func socketpair(t *testing.T) (a, b int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

// TestSendRecvRoundTrip checks send_message/receive_message composed
// end to end over a real socket pair.
func TestSendRecvRoundTrip(t *testing.T) {
	tr, err := transport.Init(4, 4, 256)
	require.NoError(t, err)
	a, b := socketpair(t)

	require.NoError(t, tr.SendMessage(a, 0x10, wire.FlagNone, []byte("hello")))

	h, buf, err := tr.RecvMessage(b)
	require.NoError(t, err)
	defer func() { _ = tr.ReleaseRX(buf) }()

	require.EqualValues(t, 0x10, h.MsgType)
	require.Equal(t, "hello", string(buf.Slice(int(h.PayloadLen))))
}

// TestSendRecvZeroCopy checks that a caller can fill a TX buffer in
// place and hands it to SendMessageZCP with no intermediate copy.
func TestSendRecvZeroCopy(t *testing.T) {
	tr, err := transport.Init(4, 4, 256)
	require.NoError(t, err)
	a, b := socketpair(t)

	txBuf, err := tr.AcquireTX()
	require.NoError(t, err)
	n := copy(txBuf.Bytes(), "zero-copy-payload")
	require.NoError(t, tr.SendMessageZCP(a, 0x20, wire.FlagCompressed, txBuf, n))
	require.NoError(t, tr.ReleaseTX(txBuf))

	h, rxBuf, err := tr.RecvMessage(b)
	require.NoError(t, err)
	defer func() { _ = tr.ReleaseRX(rxBuf) }()

	require.EqualValues(t, 0x20, h.MsgType)
	require.Equal(t, wire.FlagCompressed, h.Flags)
	require.Equal(t, "zero-copy-payload", string(rxBuf.Slice(int(h.PayloadLen))))
}

// TestShutdownWaitsForOutstandingUsers verifies invariant 8: Shutdown
// blocks until an in-flight acquire's matching release happens, and
// rejects any new acquire attempted meanwhile.
func TestShutdownWaitsForOutstandingUsers(t *testing.T) {
	tr, err := transport.Init(2, 2, 64)
	require.NoError(t, err)

	buf, err := tr.AcquireTX()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		tr.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Shutdown returned while a buffer was still outstanding")
	case <-time.After(30 * time.Millisecond):
	}

	_, err = tr.AcquireTX()
	require.ErrorIs(t, err, transport.ErrShuttingDown)

	require.NoError(t, tr.ReleaseTX(buf))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Shutdown did not return after the outstanding buffer was released")
	}
}

func TestInitRejectsInvalidArgument(t *testing.T) {
	_, err := transport.Init(0, 1, 64)
	require.ErrorIs(t, err, transport.ErrInvalidArgument)

	_, err = transport.Init(1, 0, 64)
	require.ErrorIs(t, err, transport.ErrInvalidArgument)
}
