package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/neview/ds"
	"github.com/thanhnguyen2187/neview/logs"
	"github.com/thanhnguyen2187/neview/ne"
	"github.com/thanhnguyen2187/neview/ne/dstub"
	"github.com/thanhnguyen2187/neview/ne/nheader"
	"github.com/thanhnguyen2187/neview/ui"
	"go.uber.org/zap"
)

type (
	Args struct {
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"decode the NE header to JSON"`
		Check       *CheckCmd       `arg:"subcommand:check" help:"only check the NE signature"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the header fields"`
		LogLevel    string          `arg:"--log-level,env:NEVIEW_LOG_LEVEL" default:"warn" help:"debug, info, warn or error"`
	}
	DumpCmd struct {
		From   string `arg:"required" help:"path to executable" placeholder:"app.exe"`
		Offset string `help:"absolute header offset, skips the DOS stub" placeholder:"0x400"`
		To     string `help:"path to destination file, stdout if empty" placeholder:"out.json"`
		Force  bool   `help:"overwrite the destination file"`
		Raw    bool   `help:"include a hex dump of the 64 header bytes"`
	}
	CheckCmd struct {
		From   string `arg:"required" help:"path to executable" placeholder:"app.exe"`
		Offset string `help:"absolute header offset, skips the DOS stub" placeholder:"0x400"`
	}
	InteractiveCmd struct {
		From   string `arg:"required" help:"path to executable" placeholder:"app.exe"`
		Offset string `help:"absolute header offset, skips the DOS stub" placeholder:"0x400"`
	}

	ErrDestinationExists struct {
		Path string
	}
)

func (r ErrDestinationExists) Error() string {
	return fmt.Sprintf(`destination "%s" exists, pass --force to overwrite it`, r.Path)
}

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Reads the New Executable header of 16-bit Windows and OS/2 binaries.\n",
			"The header is found through the MS-DOS stub unless --offset is given.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func ParseOffset(offset string) (int64, error) {
	value, err := strconv.ParseInt(offset, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, `ParseOffset invalid offset "%s"`, offset)
	}
	if value < 0 {
		return 0, errors.Errorf(`ParseOffset negative offset "%s"`, offset)
	}
	return value, nil
}

// ReadHeader decodes the header without checking its signature, so that
// callers can still show a header that turns out not to be NE.
func ReadHeader(path string, offset string) (*nheader.Header, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ReadHeader open error")
	}
	defer file.Close()

	headerOffset := int64(0)
	if offset == "" {
		headerOffset, err = locate(file)
	} else {
		headerOffset, err = ParseOffset(offset)
	}
	if err != nil {
		return nil, 0, err
	}
	logs.Debug("decoding header", zap.String("path", path), zap.Int64("offset", headerOffset))

	header, err := ne.DecodeAt(file, headerOffset)
	if err != nil {
		return nil, 0, errors.Wrapf(err, `ReadHeader error reading "%s"`, path)
	}
	return header, headerOffset, nil
}

// locate goes through the DOS stub, except for bare header dumps that start
// with the NE signature themselves.
func locate(file *os.File) (int64, error) {
	headerOffset, err := ne.Locate(file)
	var errStub dstub.ErrInvalidStub
	if !errors.As(err, &errStub) {
		return headerOffset, err
	}
	if ne.IsNEHeader(errStub.Actual[:]) {
		logs.Debug("no DOS stub, reading a bare NE header", zap.String("path", file.Name()))
		return 0, nil
	}
	return 0, err
}

func HexDump(bs []byte) []string {
	rows := ds.MakeChunks(bs, 16)
	offsets := ds.MakeRange(0, len(bs), 16)
	return lo.Map(
		lo.Zip2(offsets, rows),
		func(tuple lo.Tuple2[int, []byte], _ int) string {
			return fmt.Sprintf("0x%02X: %s", tuple.A, ui.FormatRaw(tuple.B))
		},
	)
}

func EncodeDump(header nheader.Header, headerOffset int64, raw bool) ([]byte, error) {
	dump := ds.NewLinkedHashMap[string, any]()
	dump.Put("offset", headerOffset)
	dump.Put("header", nheader.ToLinkedHashMap(header))
	dump.Put("target_os_name", nheader.TargetOSName(header.TargetOS))
	dump.Put("expected_windows_version", header.ToView().ExpectedWindowsVersion())
	if raw {
		dump.Put("raw", HexDump(nheader.Encode(header)))
	}

	bs, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "EncodeDump marshal error")
	}
	return append(bs, '\n'), nil
}

func StartDumping(cmd DumpCmd, stdout io.Writer) error {
	if cmd.To != "" && CheckExistence(cmd.To) && !cmd.Force {
		return ErrDestinationExists{Path: cmd.To}
	}

	header, headerOffset, err := ReadHeader(cmd.From, cmd.Offset)
	if err != nil {
		return err
	}
	if err := header.ValidateSignature(); err != nil {
		return errors.Wrapf(err, `StartDumping "%s"`, cmd.From)
	}

	bs, err := EncodeDump(*header, headerOffset, cmd.Raw)
	if err != nil {
		return err
	}

	if cmd.To == "" {
		_, err = stdout.Write(bs)
		return errors.Wrap(err, "StartDumping write error")
	}
	if err := os.WriteFile(cmd.To, bs, 0644); err != nil {
		return errors.Wrapf(err, `StartDumping error writing to "%s"`, cmd.To)
	}
	logs.Info("header dumped", zap.String("from", cmd.From), zap.String("to", cmd.To))
	return nil
}

func StartChecking(cmd CheckCmd, stdout io.Writer) error {
	var header *nheader.Header
	var err error
	if cmd.Offset == "" {
		var file *os.File
		file, err = os.Open(cmd.From)
		if err != nil {
			return errors.Wrap(err, "StartChecking open error")
		}
		defer file.Close()
		header, err = ne.DecodeFile(file)
	} else {
		header, _, err = ReadHeader(cmd.From, cmd.Offset)
		if err == nil {
			err = header.ValidateSignature()
		}
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		stdout, "%s: NE header ok, linker %d.%d, %d segments, target %s\n",
		cmd.From,
		header.MajorLinkerVersion, header.MinorLinkerVersion,
		header.SegmentCount.Value(),
		nheader.TargetOSName(header.TargetOS),
	)
	return errors.Wrap(err, "StartChecking write error")
}

func StartInteractive(cmd InteractiveCmd) error {
	header, headerOffset, err := ReadHeader(cmd.From, cmd.Offset)
	if err != nil {
		return err
	}
	return ui.Start(cmd.From, headerOffset, *header)
}

func Run(args Args, stdout io.Writer) error {
	switch {
	case args.Dump != nil:
		return StartDumping(*args.Dump, stdout)
	case args.Check != nil:
		return StartChecking(*args.Check, stdout)
	case args.Interactive != nil:
		return StartInteractive(*args.Interactive)
	}
	return ds.ErrUnreachableCode{Caller: "cli.Run"}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.Fail("missing subcommand: dump, check or interactive")
	}

	if err := logs.Init(args.LogLevel); err != nil {
		parser.Fail(err.Error())
	}
	defer logs.Logger.Sync()

	if err := Run(args, os.Stdout); err != nil {
		logs.Error("neview failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		logs.Logger.Sync()
		os.Exit(1)
	}
}
