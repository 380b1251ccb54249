// Package nheader decodes and validates the fixed 64-byte New Executable
// header found in 16-bit Windows and OS/2 binaries.
package nheader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/neview/ne/lbytes"
)

type (
	// ErrRead means fewer than Size bytes could be read from the source.
	ErrRead struct {
		Caller string
		Err    error
	}
	ErrInvalidSignature struct {
		Actual [2]byte
	}
)

func (r ErrRead) Error() string {
	return fmt.Sprintf("%s: %v", r.Caller, r.Err)
}

func (r ErrRead) Unwrap() error {
	return r.Err
}

func (r ErrInvalidSignature) Error() string {
	return fmt.Sprintf(
		`invalid NE signature: expected "%s", got "% X"`,
		Signature[:], r.Actual[:],
	)
}

// Decode consumes exactly Size bytes from r and lays them out as a Header.
// The signature is not checked; call ValidateSignature before trusting the
// other fields.
func Decode(r io.Reader) (*Header, error) {
	reader := lbytes.NewReader(r)
	bs, err := reader.ReadExact(Size)
	if err != nil {
		return nil, ErrRead{
			Caller: "nheader.Decode",
			Err:    errors.Wrapf(err, "reading %d-byte NE header", Size),
		}
	}

	var raw [Size]byte
	copy(raw[:], bs)
	header := Unpack(raw)
	return &header, nil
}

func DecodeBytes(bs []byte) (*Header, error) {
	return Decode(bytes.NewReader(bs))
}

// Unpack never fails: any 64 bytes form a structurally valid Header.
func Unpack(bs [Size]byte) Header {
	return Header{
		Magic:                       [2]byte{bs[OffsetMagic], bs[OffsetMagic+1]},
		MajorLinkerVersion:          bs[OffsetMajorLinkerVersion],
		MinorLinkerVersion:          bs[OffsetMinorLinkerVersion],
		EntryTableOffset:            lbytes.ToLu16(bs[OffsetEntryTableOffset:]),
		EntryTableLength:            lbytes.ToLu16(bs[OffsetEntryTableLength:]),
		FileLoadCRC:                 lbytes.ToLu32(bs[OffsetFileLoadCRC:]),
		Flags:                       lbytes.ToLu16(bs[OffsetFlags:]),
		AutoDataSegmentIndex:        lbytes.ToLu16(bs[OffsetAutoDataSegmentIndex:]),
		InitHeapSize:                lbytes.ToLu16(bs[OffsetInitHeapSize:]),
		InitStackSize:               lbytes.ToLu16(bs[OffsetInitStackSize:]),
		EntryPoint:                  lbytes.ToLu32(bs[OffsetEntryPoint:]),
		InitStack:                   lbytes.ToLu32(bs[OffsetInitStack:]),
		SegmentCount:                lbytes.ToLu16(bs[OffsetSegmentCount:]),
		ModuleReferences:            lbytes.ToLu16(bs[OffsetModuleReferences:]),
		NonResidentNamesSize:        lbytes.ToLu16(bs[OffsetNonResidentNamesSize:]),
		SegmentTableOffset:          lbytes.ToLu16(bs[OffsetSegmentTableOffset:]),
		ResourceTableOffset:         lbytes.ToLu16(bs[OffsetResourceTableOffset:]),
		ResidentNamesTableOffset:    lbytes.ToLu16(bs[OffsetResidentNamesTableOffset:]),
		ModuleReferenceTableOffset:  lbytes.ToLu16(bs[OffsetModuleReferenceTableOffset:]),
		ImportNameTableOffset:       lbytes.ToLu16(bs[OffsetImportNameTableOffset:]),
		NonResidentNamesTableOffset: lbytes.ToLu32(bs[OffsetNonResidentNamesTableOffset:]),
		MovableEntryPointCount:      lbytes.ToLu16(bs[OffsetMovableEntryPointCount:]),
		FileAlignmentShiftCount:     lbytes.ToLu16(bs[OffsetFileAlignmentShiftCount:]),
		ResourceTableEntries:        lbytes.ToLu16(bs[OffsetResourceTableEntries:]),
		TargetOS:                    bs[OffsetTargetOS],
		OS2ExeFlags:                 bs[OffsetOS2ExeFlags],
		ReturnThunkOffset:           lbytes.ToLu16(bs[OffsetReturnThunkOffset:]),
		SegmentRefThunkOffset:       lbytes.ToLu16(bs[OffsetSegmentRefThunkOffset:]),
		MinCodeSwap:                 lbytes.ToLu16(bs[OffsetMinCodeSwap:]),
		ExpectedWinVer:              [2]byte{bs[OffsetExpectedWinVer], bs[OffsetExpectedWinVer+1]},
	}
}

func IsValidSignature(bs []byte) bool {
	return len(bs) >= len(Signature) && bytes.Equal(bs[:len(Signature)], Signature[:])
}

// ValidateSignature reports whether h starts with "NE". It has no side
// effects and gives the same answer every time for the same Header.
func (h *Header) ValidateSignature() error {
	if h.Magic != Signature {
		return ErrInvalidSignature{Actual: h.Magic}
	}
	return nil
}
