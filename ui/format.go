package ui

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

func FormatHex[T constraints.Unsigned](v T, width int) string {
	return fmt.Sprintf("0x%0*X", width*2, v)
}

func FormatRaw(raw []byte) string {
	return strings.Join(
		lo.Map(raw, func(b byte, _ int) string { return fmt.Sprintf("%02X", b) }),
		" ",
	)
}

// FormatValue renders a value produced by nheader.Field.Value.
func FormatValue(value any) string {
	switch v := value.(type) {
	case uint8:
		return fmt.Sprintf("%d", v)
	case uint16:
		return fmt.Sprintf("%s (%d)", FormatHex(v, 2), v)
	case uint32:
		return fmt.Sprintf("%s (%d)", FormatHex(v, 4), v)
	case [2]byte:
		return fmt.Sprintf("%q", string(v[:]))
	default:
		return fmt.Sprintf("%v", v)
	}
}
