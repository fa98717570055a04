package tidy

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/luomingzhi/robotframework/pkg/logger"
)

// RawOptions carries the user input exactly as the CLI shell collected
// it, before any resolution.
type RawOptions struct {
	Recursive     bool
	Inplace       bool
	Format        string
	UsePipes      bool
	SpaceCount    string
	LineSeparator string
}

// ArgumentValidator turns raw, possibly contradictory user input into
// a validated (Mode, OptionSet) pair. The existence checks done for
// mode resolution are its only filesystem access, and they are
// read-only.
type ArgumentValidator struct {
	fs  afero.Fs
	log logger.Logger
}

// NewArgumentValidator creates a validator checking paths through the
// given filesystem.
func NewArgumentValidator(fs afero.Fs, log logger.Logger) *ArgumentValidator {
	return &ArgumentValidator{fs: fs, log: log}
}

// Validate runs every sub-validation and returns the first failure in
// the fixed order: mode, format, line separator, space count. Nothing
// downstream re-resolves any of these values.
func (v *ArgumentValidator) Validate(args []string, raw RawOptions) (Mode, OptionSet, error) {
	mode, modeErr := v.modeAndArgs(args, raw.Recursive, raw.Inplace)

	format, formatErr := v.format(args, raw)
	lineSep, lineSepErr := v.lineSeparator(raw.LineSeparator)
	spaceCount, spaceCountErr := v.spaceCount(raw.SpaceCount)

	for _, err := range []error{modeErr, formatErr, lineSepErr, spaceCountErr} {
		if err != nil {
			v.log.WithFields(logger.Fields{
				"error": err,
			}).Debug("Argument validation failed")
			return 0, OptionSet{}, err
		}
	}

	opts := OptionSet{
		Format:        format,
		PipeSeparated: raw.UsePipes,
		SpaceCount:    spaceCount,
		LineSeparator: lineSep,
	}

	v.log.WithFields(logger.Fields{
		"mode":       mode.String(),
		"format":     string(format),
		"usePipes":   opts.PipeSeparated,
		"spaceCount": opts.SpaceCount,
	}).Debug("Arguments validated")

	return mode, opts, nil
}

// modeAndArgs resolves the four (recursive, inplace) combinations.
func (v *ArgumentValidator) modeAndArgs(args []string, recursive, inplace bool) (Mode, error) {
	switch {
	case recursive && inplace:
		return 0, &ValidationError{
			Kind:    ConflictingModes,
			Message: "--recursive and --inplace can not be used together.",
		}
	case recursive:
		return ModeRecursive, v.recursiveModeArgs(args)
	case inplace:
		return ModeInplace, v.inplaceModeArgs(args)
	default:
		return ModeDefault, v.defaultModeArgs(args)
	}
}

func (v *ArgumentValidator) recursiveModeArgs(args []string) error {
	if len(args) != 1 {
		return &ValidationError{
			Kind:    InvalidRecursiveArgs,
			Message: "--recursive requires exactly one argument.",
		}
	}
	if !v.isDir(args[0]) {
		return &ValidationError{
			Kind:    InvalidRecursiveArgs,
			Message: "--recursive requires input to be a directory.",
		}
	}

	return nil
}

func (v *ArgumentValidator) inplaceModeArgs(args []string) error {
	for _, path := range args {
		if !v.isFile(path) {
			return &ValidationError{
				Kind:    InvalidInplaceArgs,
				Message: "--inplace requires inputs to be files.",
			}
		}
	}

	return nil
}

func (v *ArgumentValidator) defaultModeArgs(args []string) error {
	if len(args) != 1 && len(args) != 2 {
		return &ValidationError{
			Kind:    InvalidDefaultArgs,
			Message: "Default mode requires 1 or 2 arguments.",
		}
	}
	if !v.isFile(args[0]) {
		return &ValidationError{
			Kind:    InvalidDefaultArgs,
			Message: "Default mode requires input to be a file.",
		}
	}

	return nil
}

// format resolves the output format exactly once. Without an explicit
// format the result is unspecified under inplace/recursive mode or
// when no output path is present; otherwise the output path's
// extension decides.
func (v *ArgumentValidator) format(args []string, raw RawOptions) (Format, error) {
	name := raw.Format
	if name == "" {
		if raw.Inplace || raw.Recursive || len(args) < 2 {
			return FormatUnspecified, nil
		}
		name = strings.TrimPrefix(filepath.Ext(args[1]), ".")
	}

	switch format := Format(strings.ToUpper(name)); format {
	case FormatTXT, FormatROBOT:
		return format, nil
	default:
		return FormatUnspecified, &ValidationError{
			Kind:    InvalidFormat,
			Message: fmt.Sprintf("Invalid format '%s'.", name),
		}
	}
}

// lineSeparator maps the symbolic name to the literal byte sequence.
func (v *ArgumentValidator) lineSeparator(name string) (string, error) {
	if name == "" {
		name = "native"
	}

	switch strings.ToLower(name) {
	case "native":
		return nativeLineSeparator(), nil
	case "windows":
		return "\r\n", nil
	case "unix":
		return "\n", nil
	default:
		return "", &ValidationError{
			Kind:    InvalidLineSeparator,
			Message: fmt.Sprintf("Invalid line separator '%s'.", name),
		}
	}
}

// spaceCount parses the cell spacing override. Absent or zero input
// means the writer default stays in effect.
func (v *ArgumentValidator) spaceCount(raw string) (int, error) {
	if raw == "" || raw == "0" {
		return 0, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 2 {
		return 0, &ValidationError{
			Kind:    InvalidSpaceCount,
			Message: "--spacecount must be an integer greater than 1.",
		}
	}

	return count, nil
}

func (v *ArgumentValidator) isFile(path string) bool {
	info, err := v.fs.Stat(path)

	return err == nil && !info.IsDir()
}

func (v *ArgumentValidator) isDir(path string) bool {
	info, err := v.fs.Stat(path)

	return err == nil && info.IsDir()
}

func nativeLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}
