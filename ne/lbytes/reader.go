package lbytes

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ErrShortRead reports that the source ran out, or failed, before Want bytes
// were read.
type ErrShortRead struct {
	Want int
	Got  int
	Err  error
}

func (r ErrShortRead) Error() string {
	return fmt.Sprintf("short read: got %d of %d bytes: %v", r.Got, r.Want, r.Err)
}

func (r ErrShortRead) Unwrap() error {
	return r.Err
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset is the number of bytes consumed from the underlying reader so far.
func (b *Reader) Offset() int64 {
	return b.offset
}

// ReadExact reads exactly n bytes. Anything less, including a clean EOF,
// is an ErrShortRead.
func (b *Reader) ReadExact(n int) ([]byte, error) {
	bs := make([]byte, n)
	// nothing to read, and io.ReadFull would not touch the source anyway
	if n == 0 {
		return bs, nil
	}
	got, err := io.ReadFull(b.r, bs)
	b.offset += int64(got)
	if err != nil {
		return nil, ErrShortRead{
			Want: n,
			Got:  got,
			Err:  errors.Wrapf(err, "ReadExact %d bytes at offset %d", n, b.offset-int64(got)),
		}
	}
	return bs, nil
}

func (b *Reader) ReadLu32() (Lu32, error) {
	bs, err := b.ReadExact(SizeLu32)
	if err != nil {
		return Lu32{}, err
	}
	return ToLu32(bs), nil
}
