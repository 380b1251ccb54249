package nheader

import (
	"fmt"
)

var targetOSNames = map[byte]string{
	0: "unknown",
	1: "OS/2",
	2: "Windows",
	3: "European MS-DOS 4.x",
	4: "Windows 386",
	5: "BOSS",
}

// TargetOSName is informational only; the decoder never rejects a target.
func TargetOSName(targetOS byte) string {
	name, ok := targetOSNames[targetOS]
	if !ok {
		return fmt.Sprintf("unknown (0x%02X)", targetOS)
	}
	return name
}

func (h *Header) ToView() View {
	return View{
		Magic:                       h.Magic,
		MajorLinkerVersion:          h.MajorLinkerVersion,
		MinorLinkerVersion:          h.MinorLinkerVersion,
		EntryTableOffset:            h.EntryTableOffset.Value(),
		EntryTableLength:            h.EntryTableLength.Value(),
		FileLoadCRC:                 h.FileLoadCRC.Value(),
		Flags:                       h.Flags.Value(),
		AutoDataSegmentIndex:        h.AutoDataSegmentIndex.Value(),
		InitHeapSize:                h.InitHeapSize.Value(),
		InitStackSize:               h.InitStackSize.Value(),
		EntryPoint:                  h.EntryPoint.Value(),
		InitStack:                   h.InitStack.Value(),
		SegmentCount:                h.SegmentCount.Value(),
		ModuleReferences:            h.ModuleReferences.Value(),
		NonResidentNamesSize:        h.NonResidentNamesSize.Value(),
		SegmentTableOffset:          h.SegmentTableOffset.Value(),
		ResourceTableOffset:         h.ResourceTableOffset.Value(),
		ResidentNamesTableOffset:    h.ResidentNamesTableOffset.Value(),
		ModuleReferenceTableOffset:  h.ModuleReferenceTableOffset.Value(),
		ImportNameTableOffset:       h.ImportNameTableOffset.Value(),
		NonResidentNamesTableOffset: h.NonResidentNamesTableOffset.Value(),
		MovableEntryPointCount:      h.MovableEntryPointCount.Value(),
		FileAlignmentShiftCount:     h.FileAlignmentShiftCount.Value(),
		ResourceTableEntries:        h.ResourceTableEntries.Value(),
		TargetOS:                    h.TargetOS,
		OS2ExeFlags:                 h.OS2ExeFlags,
		ReturnThunkOffset:           h.ReturnThunkOffset.Value(),
		SegmentRefThunkOffset:       h.SegmentRefThunkOffset.Value(),
		MinCodeSwap:                 h.MinCodeSwap.Value(),
		ExpectedWinVer:              h.ExpectedWinVer,
	}
}

// ExpectedWindowsVersion formats the (major, minor) pair, e.g. "3.0".
func (v View) ExpectedWindowsVersion() string {
	return fmt.Sprintf("%d.%d", v.ExpectedWinVer[1], v.ExpectedWinVer[0])
}
