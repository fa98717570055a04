/*
Package model contains the parsed representation of a plain-text test
data file and the parser producing it.

A data file is a sequence of sections. Every section starts with a
header row such as `*** Settings ***` and holds rows of cells. Cells
are separated either by runs of two or more spaces (or tabs) or, in the
pipe style, by ` | `.

Basic usage:

	data, err := model.Parse(fs, "tests/login.robot", log)
	if err != nil {
	    return err
	}
*/
package model

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/luomingzhi/robotframework/pkg/logger"
)

// SectionType identifies the kind of a data file section.
type SectionType int

const (
	// SettingsSection holds suite-level settings such as Documentation
	// and Library imports
	SettingsSection SectionType = iota
	// VariablesSection holds variable definitions
	VariablesSection
	// TestCasesSection holds test case tables
	TestCasesSection
	// KeywordsSection holds user keyword tables
	KeywordsSection
	// CommentsSection holds free-form comment rows
	CommentsSection
)

// Row is one line of a section, split into cells. Body rows of tests
// and keywords carry a leading empty cell for their indentation.
type Row []string

// Section is a single `*** Name ***` table of a data file.
type Section struct {
	Type SectionType
	Rows []Row
}

// File is the parsed representation of one test data file.
type File struct {
	// Path is the location the file was parsed from
	Path string

	// Sections in original file order
	Sections []*Section
}

// ParseError reports an input file whose content is not well-formed
// test data syntax.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing '%s' failed: %s (line %d)", e.Path, e.Msg, e.Line)
}

// sectionAliases maps normalized header names to section types. The
// singular and plural spellings are both accepted on input.
var sectionAliases = map[string]SectionType{
	"setting":    SettingsSection,
	"settings":   SettingsSection,
	"metadata":   SettingsSection,
	"variable":   VariablesSection,
	"variables":  VariablesSection,
	"test case":  TestCasesSection,
	"test cases": TestCasesSection,
	"task":       TestCasesSection,
	"tasks":      TestCasesSection,
	"keyword":    KeywordsSection,
	"keywords":   KeywordsSection,
	"comment":    CommentsSection,
	"comments":   CommentsSection,
}

// Parse reads and parses the test data file at path. The returned File
// is independent of the filesystem; callers may remove or rewrite the
// original file afterwards.
func Parse(fs afero.Fs, path string, log logger.Logger) (*File, error) {
	log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Parsing data file")

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}

	return parseContent(path, string(content))
}

func parseContent(path, content string) (*File, error) {
	// Outputs are always UTF-8; a UTF-8 BOM on input is tolerated.
	content = strings.TrimPrefix(content, "\ufeff")

	file := &File{Path: path}
	var current *Section

	for i, line := range splitLines(content) {
		lineno := i + 1
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}

		cells := SplitRow(line)
		if len(cells) == 0 {
			continue
		}

		if name, ok := headerName(cells); ok {
			typ, known := sectionAliases[strings.ToLower(name)]
			if !known {
				return nil, &ParseError{
					Path: path,
					Line: lineno,
					Msg:  fmt.Sprintf("unrecognized section '%s'", name),
				}
			}
			current = &Section{Type: typ}
			file.Sections = append(file.Sections, current)
			continue
		}

		if current == nil {
			return nil, &ParseError{
				Path: path,
				Line: lineno,
				Msg:  "data before first section header",
			}
		}
		current.Rows = append(current.Rows, cells)
	}

	if len(file.Sections) == 0 {
		return nil, &ParseError{
			Path: path,
			Line: 1,
			Msg:  "no test data sections found",
		}
	}

	return file, nil
}

// headerName extracts the section name from a header row like
// `*** Settings ***`. Any number of surrounding asterisks is accepted.
func headerName(cells Row) (string, bool) {
	first := cells[0]
	if first == "" && len(cells) > 1 {
		first = cells[1]
	}
	if !strings.HasPrefix(first, "*") {
		return "", false
	}

	return strings.TrimSpace(strings.Trim(first, "*")), true
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	return strings.Split(content, "\n")
}
