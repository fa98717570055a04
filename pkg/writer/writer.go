/*
Package writer serializes a parsed data file back into the canonical
plain-text layout: canonical section headers, canonical order for
settings, and consistent whitespace between cells and sections.

The output is deterministic for a given (File, Options) pair and is
always UTF-8.

Basic usage:

	w := writer.New(writer.Options{SpaceCount: 4, LineSeparator: "\n"}, log)
	err := w.Write(data, &buf)
*/
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/luomingzhi/robotframework/pkg/logger"
	"github.com/luomingzhi/robotframework/pkg/model"
)

// DefaultSpaceCount is the cell separator width used when no explicit
// space count is configured.
const DefaultSpaceCount = 4

// Options control the serialization style.
type Options struct {
	// PipeSeparated selects pipe cell separators instead of spaces
	PipeSeparated bool

	// SpaceCount is the number of spaces between cells in the
	// space-separated style. Zero means DefaultSpaceCount.
	SpaceCount int

	// LineSeparator terminates every output line. Must be "\n" or
	// "\r\n".
	LineSeparator string
}

// Writer serializes parsed data files.
type Writer struct {
	opts Options
	log  logger.Logger
}

// New creates a Writer with the given options.
func New(opts Options, log logger.Logger) *Writer {
	if opts.SpaceCount == 0 {
		opts.SpaceCount = DefaultSpaceCount
	}
	if opts.LineSeparator == "" {
		opts.LineSeparator = "\n"
	}

	return &Writer{opts: opts, log: log}
}

// canonicalHeaders maps section types to the headers the canonical
// layout uses.
var canonicalHeaders = map[model.SectionType]string{
	model.SettingsSection:  "*** Settings ***",
	model.VariablesSection: "*** Variables ***",
	model.TestCasesSection: "*** Test Cases ***",
	model.KeywordsSection:  "*** Keywords ***",
	model.CommentsSection:  "*** Comments ***",
}

// Write serializes the file into w. Sections keep their original
// order; rows of the settings section are reordered canonically.
func (w *Writer) Write(f *model.File, out io.Writer) error {
	w.log.WithFields(logger.Fields{
		"path":     f.Path,
		"sections": len(f.Sections),
		"pipes":    w.opts.PipeSeparated,
	}).Debug("Writing data file")

	for i, section := range f.Sections {
		if i > 0 {
			if err := w.writeLine(out, ""); err != nil {
				return err
			}
		}
		if err := w.writeSection(out, section); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeSection(out io.Writer, section *model.Section) error {
	if err := w.writeLine(out, canonicalHeaders[section.Type]); err != nil {
		return err
	}

	rows := section.Rows
	if section.Type == model.SettingsSection {
		rows = sortSettings(rows)
	}

	for _, row := range rows {
		if err := w.writeLine(out, w.formatRow(row)); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) formatRow(row model.Row) string {
	if len(row) == 0 {
		return ""
	}
	if w.opts.PipeSeparated {
		return "| " + strings.Join(row, " | ") + " |"
	}

	cells := make([]string, len(row))
	for i, cell := range row {
		// Empty cells other than the indentation cell must survive a
		// re-parse, so they are written escaped.
		if cell == "" && i > 0 {
			cell = `\`
		}
		cells[i] = cell
	}

	return strings.Join(cells, strings.Repeat(" ", w.opts.SpaceCount))
}

func (w *Writer) writeLine(out io.Writer, line string) error {
	if _, err := io.WriteString(out, line+w.opts.LineSeparator); err != nil {
		return fmt.Errorf("writing output failed: %w", err)
	}

	return nil
}
