// Package lbytes holds the little-endian building blocks shared by the NE
// decoders: fixed-width tagged integers and a counting byte reader.
package lbytes

import (
	"io"
	"unsafe"
)

type (
	// Lu16 is a 16-bit unsigned integer kept as the two bytes found on disk,
	// least significant byte first.
	Lu16 [2]byte
	// Lu32 is a 32-bit unsigned integer kept as the four bytes found on disk,
	// least significant byte first.
	Lu32 [4]byte

	// Reader reads exact-length chunks and keeps count of what it consumed.
	Reader struct {
		r      io.Reader
		offset int64
	}
)

const (
	SizeLu16 = 2
	SizeLu32 = 4
)

// The array length is the only thing backing the width invariant, so pin it.
var (
	_ [SizeLu16]byte = [unsafe.Sizeof(Lu16{})]byte{}
	_ [SizeLu32]byte = [unsafe.Sizeof(Lu32{})]byte{}
)
