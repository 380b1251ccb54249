package nheader

import (
	"unsafe"

	"github.com/thanhnguyen2187/neview/ne/lbytes"
)

type (
	// Header is the New Executable header exactly as laid out on disk. Every
	// field is a byte or an array of bytes, so the struct has no padding and
	// multi-byte integers stay little-endian until their Value is taken.
	Header struct {
		Magic                       [2]byte
		MajorLinkerVersion          byte
		MinorLinkerVersion          byte
		EntryTableOffset            lbytes.Lu16
		EntryTableLength            lbytes.Lu16
		FileLoadCRC                 lbytes.Lu32
		Flags                       lbytes.Lu16
		AutoDataSegmentIndex        lbytes.Lu16
		InitHeapSize                lbytes.Lu16
		InitStackSize               lbytes.Lu16
		EntryPoint                  lbytes.Lu32
		InitStack                   lbytes.Lu32
		SegmentCount                lbytes.Lu16
		ModuleReferences            lbytes.Lu16
		NonResidentNamesSize        lbytes.Lu16
		SegmentTableOffset          lbytes.Lu16
		ResourceTableOffset         lbytes.Lu16
		ResidentNamesTableOffset    lbytes.Lu16
		ModuleReferenceTableOffset  lbytes.Lu16
		ImportNameTableOffset       lbytes.Lu16
		NonResidentNamesTableOffset lbytes.Lu32
		MovableEntryPointCount      lbytes.Lu16
		FileAlignmentShiftCount     lbytes.Lu16
		ResourceTableEntries        lbytes.Lu16
		TargetOS                    byte
		OS2ExeFlags                 byte
		ReturnThunkOffset           lbytes.Lu16
		SegmentRefThunkOffset       lbytes.Lu16
		MinCodeSwap                 lbytes.Lu16
		ExpectedWinVer              [2]byte
	}

	// View is the host-independent reading of a Header, with every integer
	// converted to its native value.
	View struct {
		Magic                       [2]byte `json:"magic"`
		MajorLinkerVersion          uint8   `json:"major_linker_version"`
		MinorLinkerVersion          uint8   `json:"minor_linker_version"`
		EntryTableOffset            uint16  `json:"entry_table_offset"`
		EntryTableLength            uint16  `json:"entry_table_length"`
		FileLoadCRC                 uint32  `json:"file_load_crc"`
		Flags                       uint16  `json:"flags"`
		AutoDataSegmentIndex        uint16  `json:"auto_data_segment_index"`
		InitHeapSize                uint16  `json:"init_heap_size"`
		InitStackSize               uint16  `json:"init_stack_size"`
		EntryPoint                  uint32  `json:"entry_point"`
		InitStack                   uint32  `json:"init_stack"`
		SegmentCount                uint16  `json:"segment_count"`
		ModuleReferences            uint16  `json:"module_references"`
		NonResidentNamesSize        uint16  `json:"non_resident_names_size"`
		SegmentTableOffset          uint16  `json:"segment_table_offset"`
		ResourceTableOffset         uint16  `json:"resource_table_offset"`
		ResidentNamesTableOffset    uint16  `json:"resident_names_table_offset"`
		ModuleReferenceTableOffset  uint16  `json:"module_reference_table_offset"`
		ImportNameTableOffset       uint16  `json:"import_name_table_offset"`
		NonResidentNamesTableOffset uint32  `json:"non_resident_names_table_offset"`
		MovableEntryPointCount      uint16  `json:"movable_entry_point_count"`
		FileAlignmentShiftCount     uint16  `json:"file_alignment_shift_count"`
		ResourceTableEntries        uint16  `json:"resource_table_entries"`
		TargetOS                    uint8   `json:"target_os"`
		OS2ExeFlags                 uint8   `json:"os2_exe_flags"`
		ReturnThunkOffset           uint16  `json:"return_thunk_offset"`
		SegmentRefThunkOffset       uint16  `json:"segment_ref_thunk_offset"`
		MinCodeSwap                 uint16  `json:"min_code_swap"`
		ExpectedWinVer              [2]byte `json:"expected_win_ver"`
	}
)

const (
	Size = 0x40

	OffsetMagic                       = 0x00
	OffsetMajorLinkerVersion          = 0x02
	OffsetMinorLinkerVersion          = 0x03
	OffsetEntryTableOffset            = 0x04
	OffsetEntryTableLength            = 0x06
	OffsetFileLoadCRC                 = 0x08
	OffsetFlags                       = 0x0C
	OffsetAutoDataSegmentIndex        = 0x0E
	OffsetInitHeapSize                = 0x10
	OffsetInitStackSize               = 0x12
	OffsetEntryPoint                  = 0x14
	OffsetInitStack                   = 0x18
	OffsetSegmentCount                = 0x1C
	OffsetModuleReferences            = 0x1E
	OffsetNonResidentNamesSize        = 0x20
	OffsetSegmentTableOffset          = 0x22
	OffsetResourceTableOffset         = 0x24
	OffsetResidentNamesTableOffset    = 0x26
	OffsetModuleReferenceTableOffset  = 0x28
	OffsetImportNameTableOffset       = 0x2A
	OffsetNonResidentNamesTableOffset = 0x2C
	OffsetMovableEntryPointCount      = 0x30
	OffsetFileAlignmentShiftCount     = 0x32
	OffsetResourceTableEntries        = 0x34
	OffsetTargetOS                    = 0x36
	OffsetOS2ExeFlags                 = 0x37
	OffsetReturnThunkOffset           = 0x38
	OffsetSegmentRefThunkOffset       = 0x3A
	OffsetMinCodeSwap                 = 0x3C
	OffsetExpectedWinVer              = 0x3E
)

// Fails to compile if the in-memory layout ever stops being the 64 on-disk bytes.
var _ [Size]byte = [unsafe.Sizeof(Header{})]byte{}

var Signature = [2]byte{'N', 'E'}
