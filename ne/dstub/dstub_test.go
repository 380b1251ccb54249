package dstub

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/neview/ne/lbytes"
)

func TestDecode(t *testing.T) {
	bs := Encode(Stub{Magic: Signature, NewHeaderOffset: lbytes.NewLu32(0x80)})
	require.Len(t, bs, Size)

	source := bytes.NewReader(append(bs, 0x4E, 0x45))
	stub, err := Decode(source)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x80), stub.NewHeaderOffset.Value())
	// exactly the DOS header is consumed
	assert.Equal(t, 2, source.Len())
}

func TestDecode_BadSignature(t *testing.T) {
	bs := Encode(Stub{Magic: [2]byte{'N', 'E'}})

	_, err := Decode(bytes.NewReader(bs))
	var errStub ErrInvalidStub
	require.ErrorAs(t, err, &errStub)
	assert.Equal(t, [2]byte{'N', 'E'}, errStub.Actual)

	// a short non-MZ source is still a signature problem, not a short read
	_, err = Decode(bytes.NewReader([]byte("NE")))
	assert.ErrorAs(t, err, &errStub)
}

func TestDecode_Truncated(t *testing.T) {
	tests := map[string][]byte{
		"signature": []byte("M"),
		"body":      []byte("MZ\x00\x00"),
		"e_lfanew":  Encode(Stub{Magic: Signature})[:OffsetNewHeader+2],
	}
	for name, bs := range tests {
		_, err := Decode(bytes.NewReader(bs))
		var errShortRead lbytes.ErrShortRead
		require.ErrorAs(t, err, &errShortRead, name)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF, name)
	}
}
