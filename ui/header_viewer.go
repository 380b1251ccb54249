package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/neview/ds"
	"github.com/thanhnguyen2187/neview/logs"
	"github.com/thanhnguyen2187/neview/ne/nheader"
	"go.uber.org/zap"
)

type (
	Row struct {
		Field nheader.Field
		Raw   []byte
		Value any
	}
	HeaderViewer struct {
		path         string
		offset       int64
		rows         []Row
		view         nheader.View
		cursor       int
		signatureErr error
		quitting     bool
	}
)

func CreateHeaderViewer(path string, offset int64, header nheader.Header) HeaderViewer {
	bs := nheader.Encode(header)
	rows := lo.Map(
		nheader.Layout,
		func(field nheader.Field, _ int) Row {
			return Row{
				Field: field,
				Raw:   field.Raw(bs),
				Value: field.Value(bs),
			}
		},
	)
	return HeaderViewer{
		path:         path,
		offset:       offset,
		rows:         rows,
		view:         header.ToView(),
		signatureErr: header.ValidateSignature(),
	}
}

func (s HeaderViewer) Cursor() int {
	return s.cursor
}

func (s HeaderViewer) Selected() Row {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		logs.Logger.Panic(
			"cursor out of range",
			zap.Error(ds.ErrUnreachableCode{Caller: "HeaderViewer.Selected"}),
			zap.Int("cursor", s.cursor),
		)
	}
	return s.rows[s.cursor]
}

func (s HeaderViewer) View() string {
	if s.quitting {
		return ""
	}

	output := "NEVIEW\n\n"
	output += fmt.Sprintf("File: %s (header at 0x%X)\n", s.path, s.offset)
	output += "Signature: " + lo.Ternary(s.signatureErr == nil, "ok", fmt.Sprint(s.signatureErr)) + "\n\n"

	for i, row := range s.rows {
		marker := lo.Ternary(i == s.cursor, ">", " ")
		output += fmt.Sprintf(
			"%s 0x%02X  %-32s %-12s %s\n",
			marker, row.Field.Offset, row.Field.Key, FormatRaw(row.Raw), FormatValue(row.Value),
		)
	}

	output += "\n" + s.describe(s.Selected()) + "\n"
	output += "up/down or k/j to move, q to quit\n"
	return output
}

func (s HeaderViewer) describe(row Row) string {
	switch row.Field.Key {
	case "target_os":
		return "Target OS: " + nheader.TargetOSName(s.view.TargetOS)
	case "expected_win_ver":
		return "Expected Windows version: " + s.view.ExpectedWindowsVersion()
	default:
		return strings.ReplaceAll(row.Field.Key, "_", " ")
	}
}

func (s HeaderViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		s.quitting = true
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = len(s.rows) - 1
	}
	return s, nil
}

func (s HeaderViewer) Init() tea.Cmd {
	return nil
}
