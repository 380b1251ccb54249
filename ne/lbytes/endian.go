package lbytes

// Value returns the native integer stored in u.
func (u Lu16) Value() uint16 {
	return uint16(u[0]) | uint16(u[1])<<8
}

// Value returns the native integer stored in u.
func (u Lu32) Value() uint32 {
	return uint32(u[0]) |
		uint32(u[1])<<8 |
		uint32(u[2])<<16 |
		uint32(u[3])<<24
}

// NewLu16 stores v least significant byte first.
func NewLu16(v uint16) Lu16 {
	return Lu16{byte(v), byte(v >> 8)}
}

// NewLu32 stores v least significant byte first.
func NewLu32(v uint32) Lu32 {
	return Lu32{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func ToLu16(bs []byte) Lu16 {
	var u Lu16
	copy(u[:], bs)
	return u
}

func ToLu32(bs []byte) Lu32 {
	var u Lu32
	copy(u[:], bs)
	return u
}
