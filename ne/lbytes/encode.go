package lbytes

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
