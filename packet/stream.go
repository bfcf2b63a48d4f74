package packet

import (
	"errors"
	"fmt"
	"io"

	"github.com/wiibridge/wiibridge/internal/log"
)

// Reader consumes packets from a byte stream such as a serial port.
type Reader struct {
	r   io.Reader
	raw log.RawLogger
	buf [Size]byte
	n   int
}

// NewReader returns a Reader on r. raw may be nil.
func NewReader(r io.Reader, raw log.RawLogger) *Reader {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Reader{r: r, raw: raw}
}

// Next returns the mask of the next complete packet. A read that returns no
// data ends the call with io.EOF, or io.ErrUnexpectedEOF when part of a
// packet is already buffered. Buffered bytes are kept, so the caller can
// call Next again once the line has data and the packet completes where it
// left off. Any other read error is returned as is.
func (pr *Reader) Next() (ButtonMask, error) {
	for pr.n < Size {
		n, err := pr.r.Read(pr.buf[pr.n:])
		pr.n += n
		if pr.n == Size {
			break
		}
		if err == nil && n == 0 {
			err = io.EOF
		}
		if err != nil {
			if errors.Is(err, io.EOF) && pr.n > 0 {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
	}
	pr.n = 0
	pr.raw.Log(true, pr.buf[:])
	return Decode(pr.buf[:])
}

// Buffered reports how many bytes of a partial packet are held.
func (pr *Reader) Buffered() int { return pr.n }

// Writer emits packets onto a byte stream.
type Writer struct {
	w   io.Writer
	raw log.RawLogger
}

// NewWriter returns a Writer on w. raw may be nil.
func NewWriter(w io.Writer, raw log.RawLogger) *Writer {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Writer{w: w, raw: raw}
}

// Write sends exactly one packet carrying m.
func (pw *Writer) Write(m ButtonMask) error {
	b := Encode(m)
	n, err := pw.w.Write(b)
	if err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	if n != len(b) {
		return fmt.Errorf("write packet: %w", io.ErrShortWrite)
	}
	pw.raw.Log(false, b)
	return nil
}
