// Package ne ties the DOS stub and the NE header decoders together for
// callers holding a whole executable rather than a positioned byte source.
package ne

import (
	"io"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/neview/ne/dstub"
	"github.com/thanhnguyen2187/neview/ne/nheader"
)

func IsNEHeader(bs []byte) bool {
	return nheader.IsValidSignature(bs)
}

// Locate returns the absolute offset of the NE header recorded in the DOS
// stub at the start of r.
func Locate(r io.ReadSeeker) (int64, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "ne.Locate seek error")
	}
	stub, err := dstub.Decode(r)
	if err != nil {
		return 0, errors.Wrap(err, "ne.Locate error")
	}
	return int64(stub.NewHeaderOffset.Value()), nil
}

// DecodeFile finds the NE header through the DOS stub, decodes it and
// checks its signature.
func DecodeFile(r io.ReadSeeker) (*nheader.Header, error) {
	offset, err := Locate(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "ne.DecodeFile seek to 0x%X error", offset)
	}

	header, err := nheader.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "ne.DecodeFile error at 0x%X", offset)
	}
	if err := header.ValidateSignature(); err != nil {
		return nil, errors.Wrapf(err, "ne.DecodeFile error at 0x%X", offset)
	}
	return header, nil
}

// DecodeAt decodes the header at an absolute offset chosen by the caller.
// The signature is left for the caller to check.
func DecodeAt(r io.ReaderAt, offset int64) (*nheader.Header, error) {
	return nheader.Decode(io.NewSectionReader(r, offset, nheader.Size))
}
