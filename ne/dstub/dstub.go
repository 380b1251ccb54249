// Package dstub reads the MS-DOS stub in front of a segmented executable,
// which is where the offset of the NE header is recorded.
package dstub

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/neview/ne/lbytes"
)

type (
	Stub struct {
		Magic           [2]byte
		NewHeaderOffset lbytes.Lu32
	}
	ErrInvalidStub struct {
		Actual [2]byte
	}
)

const (
	Size = 0x40
	// OffsetNewHeader is e_lfanew, the last field of the DOS header.
	OffsetNewHeader = 0x3C
)

var Signature = [2]byte{'M', 'Z'}

func (r ErrInvalidStub) Error() string {
	return fmt.Sprintf(`invalid DOS stub signature: expected "%s", got "% X"`, Signature[:], r.Actual[:])
}

// Decode reads the 64-byte DOS header from r. The signature is checked as
// soon as it is read, so a non-MZ source is rejected without reading further.
func Decode(r io.Reader) (*Stub, error) {
	reader := lbytes.NewReader(r)
	magic, err := reader.ReadExact(len(Signature))
	if err != nil {
		return nil, errors.Wrap(err, "dstub.Decode error reading signature")
	}

	stub := Stub{Magic: [2]byte{magic[0], magic[1]}}
	if stub.Magic != Signature {
		return nil, ErrInvalidStub{Actual: stub.Magic}
	}

	// the rest of the DOS header up to e_lfanew is of no use here
	if _, err := reader.ReadExact(OffsetNewHeader - int(reader.Offset())); err != nil {
		return nil, errors.Wrap(err, "dstub.Decode error skipping to e_lfanew")
	}
	stub.NewHeaderOffset, err = reader.ReadLu32()
	if err != nil {
		return nil, errors.Wrap(err, "dstub.Decode error reading e_lfanew")
	}
	return &stub, nil
}

// Encode writes a DOS header that holds only the signature and e_lfanew.
func Encode(stub Stub) []byte {
	bs := lbytes.CreateZeroBytes(Size)
	copy(bs, stub.Magic[:])
	copy(bs[OffsetNewHeader:], stub.NewHeaderOffset[:])
	return bs
}
