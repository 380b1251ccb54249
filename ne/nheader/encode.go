package nheader

// Encode lays header back out as the 64 bytes it was decoded from.
func Encode(header Header) []byte {
	bs := make([]byte, Size)
	copy(bs[OffsetMagic:], header.Magic[:])
	bs[OffsetMajorLinkerVersion] = header.MajorLinkerVersion
	bs[OffsetMinorLinkerVersion] = header.MinorLinkerVersion
	copy(bs[OffsetEntryTableOffset:], header.EntryTableOffset[:])
	copy(bs[OffsetEntryTableLength:], header.EntryTableLength[:])
	copy(bs[OffsetFileLoadCRC:], header.FileLoadCRC[:])
	copy(bs[OffsetFlags:], header.Flags[:])
	copy(bs[OffsetAutoDataSegmentIndex:], header.AutoDataSegmentIndex[:])
	copy(bs[OffsetInitHeapSize:], header.InitHeapSize[:])
	copy(bs[OffsetInitStackSize:], header.InitStackSize[:])
	copy(bs[OffsetEntryPoint:], header.EntryPoint[:])
	copy(bs[OffsetInitStack:], header.InitStack[:])
	copy(bs[OffsetSegmentCount:], header.SegmentCount[:])
	copy(bs[OffsetModuleReferences:], header.ModuleReferences[:])
	copy(bs[OffsetNonResidentNamesSize:], header.NonResidentNamesSize[:])
	copy(bs[OffsetSegmentTableOffset:], header.SegmentTableOffset[:])
	copy(bs[OffsetResourceTableOffset:], header.ResourceTableOffset[:])
	copy(bs[OffsetResidentNamesTableOffset:], header.ResidentNamesTableOffset[:])
	copy(bs[OffsetModuleReferenceTableOffset:], header.ModuleReferenceTableOffset[:])
	copy(bs[OffsetImportNameTableOffset:], header.ImportNameTableOffset[:])
	copy(bs[OffsetNonResidentNamesTableOffset:], header.NonResidentNamesTableOffset[:])
	copy(bs[OffsetMovableEntryPointCount:], header.MovableEntryPointCount[:])
	copy(bs[OffsetFileAlignmentShiftCount:], header.FileAlignmentShiftCount[:])
	copy(bs[OffsetResourceTableEntries:], header.ResourceTableEntries[:])
	bs[OffsetTargetOS] = header.TargetOS
	bs[OffsetOS2ExeFlags] = header.OS2ExeFlags
	copy(bs[OffsetReturnThunkOffset:], header.ReturnThunkOffset[:])
	copy(bs[OffsetSegmentRefThunkOffset:], header.SegmentRefThunkOffset[:])
	copy(bs[OffsetMinCodeSwap:], header.MinCodeSwap[:])
	copy(bs[OffsetExpectedWinVer:], header.ExpectedWinVer[:])
	return bs
}
