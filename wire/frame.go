// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/spin"
)

// WriteMessage writes one framed message to fd: a length prefix, the
// header (with PayloadLen filled in from len(payload)), and payload.
//
// Fails with KindMessageTooLarge without writing any bytes if
// len(payload) exceeds MaxPayload().
func WriteMessage(fd int, h Header, payload []byte) error {
	return writeFrame(fd, h, [][]byte{payload}, len(payload))
}

// WriteMessageVec is WriteMessage for a payload split across multiple
// non-contiguous fragments (e.g. a pool buffer plus a trailer), joined
// into a single scatter write with no intermediate copy on the fast
// path.
func WriteMessageVec(fd int, h Header, parts ...[]byte) error {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	return writeFrame(fd, h, parts, total)
}

func writeFrame(fd int, h Header, parts [][]byte, payloadLen int) error {
	if payloadLen > MaxPayload() {
		currentMetrics().RecordWriteTooLarge()
		return kindErr(KindMessageTooLarge)
	}
	h.PayloadLen = uint32(payloadLen)

	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(HeaderSize+payloadLen))
	var headerBuf [HeaderSize]byte
	h.encode(headerBuf[:])

	iov := make([]unix.Iovec, 0, 2+len(parts))
	iov = append(iov, mkIovec(lenPrefix[:]), mkIovec(headerBuf[:]))
	for _, p := range parts {
		if len(p) > 0 {
			iov = append(iov, mkIovec(p))
		}
	}

	wireLen := 4 + HeaderSize + payloadLen
	n, err := unix.Writev(fd, iov)
	if err != nil {
		if isPeerClosed(err) {
			currentMetrics().RecordWritePeerClosed()
			return kindErr(KindPeerClosed)
		}
		currentMetrics().RecordWriteIOError()
		return ioErr(err)
	}
	if n < wireLen {
		if err := finishShortWrite(fd, lenPrefix[:], headerBuf[:], parts, n); err != nil {
			return err
		}
	}
	currentMetrics().RecordWriteOK(payloadLen)
	return nil
}

// finishShortWrite handles the rare case where the kernel did not
// accept the whole scatter write in one call. It linearizes the
// remaining bytes into one buffer — never on the fast path — and
// drives a blocking-style retry loop that absorbs EINTR.
func finishShortWrite(fd int, lenPrefix, headerBuf []byte, parts [][]byte, written int) error {
	full := make([]byte, 0, len(lenPrefix)+len(headerBuf)+sumLen(parts))
	full = append(full, lenPrefix...)
	full = append(full, headerBuf...)
	for _, p := range parts {
		full = append(full, p...)
	}

	remaining := full[written:]
	sw := spin.Wait{}
	for len(remaining) > 0 {
		n, err := unix.Write(fd, remaining)
		if err != nil {
			switch err {
			case unix.EINTR:
				continue
			case unix.EAGAIN:
				sw.Once()
				continue
			}
			if isPeerClosed(err) {
				currentMetrics().RecordWritePeerClosed()
				return kindErr(KindPeerClosed)
			}
			currentMetrics().RecordWriteIOError()
			return ioErr(err)
		}
		if n == 0 {
			currentMetrics().RecordWritePeerClosed()
			return kindErr(KindPeerClosed)
		}
		remaining = remaining[n:]
	}
	return nil
}

// ReadMessageInto reads one framed message from fd into buf.
//
// The length prefix is read atomically: on a non-blocking fd, if fewer
// than 4 bytes are currently available, ReadMessageInto returns
// ErrWouldBlock having consumed nothing (verified with a MSG_PEEK
// probe before the real read). Once the length prefix has started
// being consumed for real, the rest of the frame is read with an
// internal blocking-style retry loop — see the package doc for why
// this is not atomic across EAGAIN, and reactor for the driven path
// that never needs to care.
func ReadMessageInto(fd int, buf []byte) (Header, int, error) {
	var peek [4]byte
	for {
		n, _, err := unix.Recvfrom(fd, peek[:], unix.MSG_PEEK)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			if err == unix.EAGAIN {
				currentMetrics().RecordReadWouldBlock()
				return Header{}, 0, ErrWouldBlock
			}
			if isPeerClosed(err) {
				return Header{}, 0, kindErr(KindPeerClosed)
			}
			currentMetrics().RecordReadIOError()
			return Header{}, 0, ioErr(err)
		}
		if n == 0 {
			return Header{}, 0, kindErr(KindPeerClosed)
		}
		if n < 4 {
			// MSG_PEEK never consumes; it is safe to report WouldBlock
			// without retrying here, since a caller-visible operation
			// must not be left spinning on a partial prefix.
			currentMetrics().RecordReadWouldBlock()
			return Header{}, 0, ErrWouldBlock
		}
		break
	}

	var lenPrefix [4]byte
	if err := readFull(fd, lenPrefix[:]); err != nil {
		return Header{}, 0, err
	}

	total := binary.BigEndian.Uint32(lenPrefix[:])
	if total < HeaderSize {
		currentMetrics().RecordReadMalformed()
		return Header{}, 0, kindErr(KindMalformedFrame)
	}

	var headerBuf [HeaderSize]byte
	if err := readFull(fd, headerBuf[:]); err != nil {
		return Header{}, 0, err
	}
	h := decodeHeader(headerBuf[:])
	if h.Version != ProtocolVersion {
		currentMetrics().RecordReadUnsupportedVersion()
		return Header{}, 0, kindErr(KindUnsupportedVersion)
	}

	payloadLen := int(total) - HeaderSize
	if payloadLen > MaxPayload() {
		currentMetrics().RecordReadTooLarge()
		return Header{}, 0, kindErr(KindMessageTooLarge)
	}
	if payloadLen > len(buf) {
		currentMetrics().RecordReadBufferTooSmall()
		return Header{}, 0, kindErr(KindBufferTooSmall)
	}
	if payloadLen == 0 {
		currentMetrics().RecordReadOK(0)
		return h, 0, nil
	}
	if err := readFull(fd, buf[:payloadLen]); err != nil {
		return Header{}, 0, err
	}
	currentMetrics().RecordReadOK(payloadLen)
	return h, payloadLen, nil
}

func readFull(fd int, dst []byte) error {
	read := 0
	sw := spin.Wait{}
	for read < len(dst) {
		n, err := unix.Read(fd, dst[read:])
		if err != nil {
			switch err {
			case unix.EINTR:
				continue
			case unix.EAGAIN:
				sw.Once()
				continue
			}
			if isPeerClosed(err) {
				return kindErr(KindPeerClosed)
			}
			return ioErr(err)
		}
		if n == 0 {
			return kindErr(KindPeerClosed)
		}
		read += n
	}
	return nil
}

func isPeerClosed(err error) bool {
	return err == unix.EPIPE || err == unix.ECONNRESET
}

func mkIovec(b []byte) unix.Iovec {
	var iov unix.Iovec
	if len(b) > 0 {
		iov.Base = &b[0]
	}
	iov.SetLen(len(b))
	return iov
}

func sumLen(parts [][]byte) int {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	return n
}
