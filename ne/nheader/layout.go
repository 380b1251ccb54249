package nheader

import (
	"github.com/thanhnguyen2187/neview/ds"
	"github.com/thanhnguyen2187/neview/ne/lbytes"
)

type (
	FieldKind int
	// Field describes where one header field lives inside the 64 raw bytes.
	Field struct {
		Key    string
		Offset int
		Width  int
		Kind   FieldKind
	}
)

const (
	KindBytes FieldKind = iota
	KindByte
	KindLu16
	KindLu32
)

// Layout lists every header field in on-disk order.
var Layout = []Field{
	{"magic", OffsetMagic, 2, KindBytes},
	{"major_linker_version", OffsetMajorLinkerVersion, 1, KindByte},
	{"minor_linker_version", OffsetMinorLinkerVersion, 1, KindByte},
	{"entry_table_offset", OffsetEntryTableOffset, 2, KindLu16},
	{"entry_table_length", OffsetEntryTableLength, 2, KindLu16},
	{"file_load_crc", OffsetFileLoadCRC, 4, KindLu32},
	{"flags", OffsetFlags, 2, KindLu16},
	{"auto_data_segment_index", OffsetAutoDataSegmentIndex, 2, KindLu16},
	{"init_heap_size", OffsetInitHeapSize, 2, KindLu16},
	{"init_stack_size", OffsetInitStackSize, 2, KindLu16},
	{"entry_point", OffsetEntryPoint, 4, KindLu32},
	{"init_stack", OffsetInitStack, 4, KindLu32},
	{"segment_count", OffsetSegmentCount, 2, KindLu16},
	{"module_references", OffsetModuleReferences, 2, KindLu16},
	{"non_resident_names_size", OffsetNonResidentNamesSize, 2, KindLu16},
	{"segment_table_offset", OffsetSegmentTableOffset, 2, KindLu16},
	{"resource_table_offset", OffsetResourceTableOffset, 2, KindLu16},
	{"resident_names_table_offset", OffsetResidentNamesTableOffset, 2, KindLu16},
	{"module_reference_table_offset", OffsetModuleReferenceTableOffset, 2, KindLu16},
	{"import_name_table_offset", OffsetImportNameTableOffset, 2, KindLu16},
	{"non_resident_names_table_offset", OffsetNonResidentNamesTableOffset, 4, KindLu32},
	{"movable_entry_point_count", OffsetMovableEntryPointCount, 2, KindLu16},
	{"file_alignment_shift_count", OffsetFileAlignmentShiftCount, 2, KindLu16},
	{"resource_table_entries", OffsetResourceTableEntries, 2, KindLu16},
	{"target_os", OffsetTargetOS, 1, KindByte},
	{"os2_exe_flags", OffsetOS2ExeFlags, 1, KindByte},
	{"return_thunk_offset", OffsetReturnThunkOffset, 2, KindLu16},
	{"segment_ref_thunk_offset", OffsetSegmentRefThunkOffset, 2, KindLu16},
	{"min_code_swap", OffsetMinCodeSwap, 2, KindLu16},
	{"expected_win_ver", OffsetExpectedWinVer, 2, KindBytes},
}

func (f Field) Raw(bs []byte) []byte {
	return bs[f.Offset : f.Offset+f.Width]
}

// Value reads the field out of an encoded header. Byte pairs come back as
// [2]byte so they marshal to a JSON array rather than base64.
func (f Field) Value(bs []byte) any {
	raw := f.Raw(bs)
	switch f.Kind {
	case KindByte:
		return raw[0]
	case KindLu16:
		return lbytes.ToLu16(raw).Value()
	case KindLu32:
		return lbytes.ToLu32(raw).Value()
	default:
		return [2]byte{raw[0], raw[1]}
	}
}

// ToLinkedHashMap keeps the on-disk field order, which a plain map or the
// View struct tags would not give a reader scanning for offsets.
func ToLinkedHashMap(header Header) *ds.LinkedHashMap[string, any] {
	bs := Encode(header)
	lhm := ds.NewLinkedHashMap[string, any]()
	for _, field := range Layout {
		lhm.Put(field.Key, field.Value(bs))
	}
	return lhm
}
