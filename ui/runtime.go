package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/neview/ne/nheader"
)

func Start(path string, offset int64, header nheader.Header) error {
	headerViewer := CreateHeaderViewer(path, offset, header)
	if err := tea.NewProgram(headerViewer).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
