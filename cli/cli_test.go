package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/thanhnguyen2187/neview/ds"
	"github.com/thanhnguyen2187/neview/ne/dstub"
	"github.com/thanhnguyen2187/neview/ne/lbytes"
	"github.com/thanhnguyen2187/neview/ne/nheader"
)

var headerBytes = []byte{
	0x4E, 0x45, 0x05, 0x0A, 0x6C, 0x01, 0x02, 0x00, 0x46, 0x45, 0x52, 0x47, 0x12, 0x03, 0x02, 0x00,
	0x00, 0x10, 0x00, 0x50, 0x10, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x09, 0x00, 0x01, 0x00,
	0x1C, 0x00, 0x40, 0x00, 0x90, 0x00, 0x54, 0x01, 0x60, 0x01, 0x62, 0x01, 0x6E, 0x07, 0x00, 0x00,
	0x00, 0x00, 0x08, 0x00, 0xFF, 0xFF, 0x02, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
}

type CLITestSuite struct {
	Dir       string
	ExePath   string
	MZOnlyExe string
	R         *require.Assertions
	suite.Suite
}

func (suite *CLITestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()

	stub := dstub.Encode(dstub.Stub{Magic: dstub.Signature, NewHeaderOffset: lbytes.NewLu32(dstub.Size)})
	suite.ExePath = filepath.Join(suite.Dir, "app.exe")
	suite.R.NoError(os.WriteFile(suite.ExePath, append(stub, headerBytes...), 0644))

	mzOnly := append(append([]byte{}, stub...), headerBytes...)
	copy(mzOnly[dstub.Size:], "PE")
	suite.MZOnlyExe = filepath.Join(suite.Dir, "win32.exe")
	suite.R.NoError(os.WriteFile(suite.MZOnlyExe, mzOnly, 0644))
}

func (suite *CLITestSuite) TestDumpToStdout() {
	stdout := bytes.Buffer{}
	err := Run(Args{Dump: &DumpCmd{From: suite.ExePath, Raw: true}}, &stdout)
	suite.R.NoError(err)

	var dump struct {
		Offset       int64        `json:"offset"`
		Header       nheader.View `json:"header"`
		TargetOSName string       `json:"target_os_name"`
		WinVersion   string       `json:"expected_windows_version"`
		Raw          []string     `json:"raw"`
	}
	suite.R.NoError(json.Unmarshal(stdout.Bytes(), &dump))
	suite.Equal(int64(0x40), dump.Offset)
	suite.Equal(uint32(0x47524546), dump.Header.FileLoadCRC)
	suite.Equal(uint16(0xFFFF), dump.Header.ResourceTableEntries)
	suite.Equal("Windows", dump.TargetOSName)
	suite.Equal("3.0", dump.WinVersion)
	suite.Len(dump.Raw, 4)
	suite.Equal("0x00: 4E 45 05 0A 6C 01 02 00 46 45 52 47 12 03 02 00", dump.Raw[0])
}

func (suite *CLITestSuite) TestDumpToFile() {
	to := filepath.Join(suite.Dir, "out.json")
	cmd := DumpCmd{From: suite.ExePath, To: to}
	suite.R.NoError(Run(Args{Dump: &cmd}, &bytes.Buffer{}))
	suite.True(CheckExistence(to))

	err := Run(Args{Dump: &cmd}, &bytes.Buffer{})
	suite.ErrorAs(err, &ErrDestinationExists{})

	cmd.Force = true
	suite.NoError(Run(Args{Dump: &cmd}, &bytes.Buffer{}))
}

func (suite *CLITestSuite) TestDumpAtOffset() {
	stdout := bytes.Buffer{}
	err := Run(Args{Dump: &DumpCmd{From: suite.ExePath, Offset: "0x40"}}, &stdout)
	suite.R.NoError(err)
	suite.Contains(stdout.String(), `"segment_count": 9`)

	err = Run(Args{Dump: &DumpCmd{From: suite.ExePath, Offset: "0"}}, &stdout)
	suite.ErrorAs(err, &nheader.ErrInvalidSignature{})

	err = Run(Args{Dump: &DumpCmd{From: suite.ExePath, Offset: "0x70"}}, &stdout)
	suite.ErrorAs(err, &nheader.ErrRead{})
}

func (suite *CLITestSuite) TestDumpBareHeader() {
	barePath := filepath.Join(suite.Dir, "header.bin")
	suite.R.NoError(os.WriteFile(barePath, headerBytes, 0644))

	stdout := bytes.Buffer{}
	suite.R.NoError(Run(Args{Dump: &DumpCmd{From: barePath}}, &stdout))
	suite.Contains(stdout.String(), `"offset": 0,`)
	suite.Contains(stdout.String(), `"segment_count": 9`)

	garbagePath := filepath.Join(suite.Dir, "garbage.bin")
	suite.R.NoError(os.WriteFile(garbagePath, append([]byte("ZZ"), headerBytes[2:]...), 0644))
	err := Run(Args{Dump: &DumpCmd{From: garbagePath}}, &stdout)
	suite.ErrorAs(err, &dstub.ErrInvalidStub{})
}

func (suite *CLITestSuite) TestCheck() {
	stdout := bytes.Buffer{}
	suite.R.NoError(Run(Args{Check: &CheckCmd{From: suite.ExePath}}, &stdout))
	suite.Contains(stdout.String(), "NE header ok, linker 5.10, 9 segments, target Windows")

	err := Run(Args{Check: &CheckCmd{From: suite.MZOnlyExe}}, &stdout)
	suite.ErrorAs(err, &nheader.ErrInvalidSignature{})

	err = Run(Args{Check: &CheckCmd{From: suite.MZOnlyExe, Offset: "0x40"}}, &stdout)
	suite.ErrorAs(err, &nheader.ErrInvalidSignature{})

	err = Run(Args{Check: &CheckCmd{From: filepath.Join(suite.Dir, "missing.exe")}}, &stdout)
	suite.ErrorIs(err, os.ErrNotExist)
}

func (suite *CLITestSuite) TestNoSubcommand() {
	err := Run(Args{}, &bytes.Buffer{})
	suite.ErrorAs(err, &ds.ErrUnreachableCode{})
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func TestParseArgs(t *testing.T) {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: "neview"}, &args)
	require.NoError(t, err)

	require.NoError(t, parser.Parse([]string{"dump", "--from", "app.exe", "--offset", "0x400", "--raw"}))
	require.NotNil(t, args.Dump)
	assert.Equal(t, "app.exe", args.Dump.From)
	assert.Equal(t, "0x400", args.Dump.Offset)
	assert.True(t, args.Dump.Raw)
	assert.Equal(t, "warn", args.LogLevel)

	assert.Error(t, parser.Parse([]string{"check"}))
}

func TestParseOffset(t *testing.T) {
	tests := map[string]int64{
		"0x400": 0x400,
		"64":    64,
		"0":     0,
	}
	for in, out := range tests {
		offset, err := ParseOffset(in)
		assert.NoError(t, err)
		assert.Equal(t, out, offset)
	}

	_, err := ParseOffset("-1")
	assert.Error(t, err)
	_, err = ParseOffset("NE")
	assert.Error(t, err)
}

func TestHexDump(t *testing.T) {
	lines := HexDump(headerBytes)
	assert.Equal(t, []string{
		"0x00: 4E 45 05 0A 6C 01 02 00 46 45 52 47 12 03 02 00",
		"0x10: 00 10 00 50 10 00 01 00 00 00 02 00 09 00 01 00",
		"0x20: 1C 00 40 00 90 00 54 01 60 01 62 01 6E 07 00 00",
		"0x30: 00 00 08 00 FF FF 02 08 00 00 00 00 00 00 00 03",
	}, lines)
}
