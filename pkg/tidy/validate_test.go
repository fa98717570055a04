package tidy

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luomingzhi/robotframework/pkg/logger"
)

func validatorFixture(t *testing.T) *ArgumentValidator {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tests.robot", []byte("*** Settings ***\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "more.txt", []byte("*** Settings ***\n"), 0644))
	require.NoError(t, fs.MkdirAll("suites", 0755))

	return NewArgumentValidator(fs, logger.NewNopLogger())
}

func requireValidationError(t *testing.T, err error, kind ValidationKind) {
	t.Helper()

	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, kind, valErr.Kind)
}

func TestModeResolutionTruthTable(t *testing.T) {
	tests := []struct {
		name      string
		recursive bool
		inplace   bool
		args      []string
		wantMode  Mode
		wantKind  ValidationKind
		wantErr   bool
	}{
		{
			name:      "recursive and inplace conflict",
			recursive: true,
			inplace:   true,
			args:      []string{"suites"},
			wantErr:   true,
			wantKind:  ConflictingModes,
		},
		{
			name:      "recursive with a directory",
			recursive: true,
			args:      []string{"suites"},
			wantMode:  ModeRecursive,
		},
		{
			name:     "inplace with files",
			inplace:  true,
			args:     []string{"tests.robot", "more.txt"},
			wantMode: ModeInplace,
		},
		{
			name:     "default with one file",
			args:     []string{"tests.robot"},
			wantMode: ModeDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validatorFixture(t)

			mode, _, err := v.Validate(tt.args, RawOptions{
				Recursive: tt.recursive,
				Inplace:   tt.inplace,
			})

			if tt.wantErr {
				requireValidationError(t, err, tt.wantKind)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, mode)
		})
	}
}

func TestModeArgumentChecks(t *testing.T) {
	tests := []struct {
		name      string
		recursive bool
		inplace   bool
		args      []string
		wantKind  ValidationKind
		wantMsg   string
	}{
		{
			name:      "recursive needs exactly one argument",
			recursive: true,
			args:      []string{"suites", "extra"},
			wantKind:  InvalidRecursiveArgs,
			wantMsg:   "--recursive requires exactly one argument.",
		},
		{
			name:      "recursive argument must be a directory",
			recursive: true,
			args:      []string{"tests.robot"},
			wantKind:  InvalidRecursiveArgs,
			wantMsg:   "--recursive requires input to be a directory.",
		},
		{
			name:     "inplace arguments must exist",
			inplace:  true,
			args:     []string{"tests.robot", "missing.robot"},
			wantKind: InvalidInplaceArgs,
			wantMsg:  "--inplace requires inputs to be files.",
		},
		{
			name:     "inplace argument must not be a directory",
			inplace:  true,
			args:     []string{"suites"},
			wantKind: InvalidInplaceArgs,
		},
		{
			name:     "default mode rejects three arguments",
			args:     []string{"a", "b", "c"},
			wantKind: InvalidDefaultArgs,
			wantMsg:  "Default mode requires 1 or 2 arguments.",
		},
		{
			name:     "default mode input must exist",
			args:     []string{"missing.robot"},
			wantKind: InvalidDefaultArgs,
			wantMsg:  "Default mode requires input to be a file.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validatorFixture(t)

			_, _, err := v.Validate(tt.args, RawOptions{
				Recursive: tt.recursive,
				Inplace:   tt.inplace,
			})

			requireValidationError(t, err, tt.wantKind)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestFormatResolution(t *testing.T) {
	tests := []struct {
		name       string
		raw        RawOptions
		args       []string
		wantFormat Format
		wantErr    bool
	}{
		{
			name:       "explicit format is case insensitive",
			raw:        RawOptions{Format: "robot"},
			args:       []string{"tests.robot"},
			wantFormat: FormatROBOT,
		},
		{
			name:       "explicit uppercase format",
			raw:        RawOptions{Format: "TXT"},
			args:       []string{"tests.robot"},
			wantFormat: FormatTXT,
		},
		{
			name:    "unknown format is rejected",
			raw:     RawOptions{Format: "html"},
			args:    []string{"tests.robot"},
			wantErr: true,
		},
		{
			name:       "derived from output extension",
			args:       []string{"tests.robot", "out.txt"},
			wantFormat: FormatTXT,
		},
		{
			name:       "single argument leaves format unspecified",
			args:       []string{"tests.robot"},
			wantFormat: FormatUnspecified,
		},
		{
			name:       "inplace leaves format unspecified",
			raw:        RawOptions{Inplace: true},
			args:       []string{"tests.robot"},
			wantFormat: FormatUnspecified,
		},
		{
			name:       "recursive leaves format unspecified",
			raw:        RawOptions{Recursive: true},
			args:       []string{"suites"},
			wantFormat: FormatUnspecified,
		},
		{
			name:    "unknown output extension is rejected",
			args:    []string{"tests.robot", "out.html"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validatorFixture(t)

			_, opts, err := v.Validate(tt.args, tt.raw)

			if tt.wantErr {
				requireValidationError(t, err, InvalidFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, opts.Format)
		})
	}
}

func TestFormatAutoDerivation(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("*** Settings ***\n"), 0644))
	v := NewArgumentValidator(fs, logger.NewNopLogger())

	_, opts, err := v.Validate([]string{"a.txt", "b.robot"}, RawOptions{})

	require.NoError(t, err)
	assert.Equal(t, FormatROBOT, opts.Format)
}

func TestLineSeparatorResolution(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		wantSep string
		wantErr bool
	}{
		{name: "unix", symbol: "unix", wantSep: "\n"},
		{name: "windows", symbol: "windows", wantSep: "\r\n"},
		{name: "case insensitive", symbol: "WINDOWS", wantSep: "\r\n"},
		{name: "default is native", symbol: "", wantSep: nativeLineSeparator()},
		{name: "native explicitly", symbol: "native", wantSep: nativeLineSeparator()},
		{name: "bogus symbol", symbol: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validatorFixture(t)

			_, opts, err := v.Validate([]string{"tests.robot"}, RawOptions{
				LineSeparator: tt.symbol,
			})

			if tt.wantErr {
				requireValidationError(t, err, InvalidLineSeparator)
				assert.Equal(t, "Invalid line separator 'bogus'.", err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSep, opts.LineSeparator)
		})
	}
}

func TestSpaceCountResolution(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantErr   bool
	}{
		{name: "absent means writer default", raw: "", wantCount: 0},
		{name: "zero means writer default", raw: "0", wantCount: 0},
		{name: "valid count", raw: "4", wantCount: 4},
		{name: "minimum count", raw: "2", wantCount: 2},
		{name: "one is too small", raw: "1", wantErr: true},
		{name: "negative is rejected", raw: "-3", wantErr: true},
		{name: "non-numeric is rejected", raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validatorFixture(t)

			_, opts, err := v.Validate([]string{"tests.robot"}, RawOptions{
				SpaceCount: tt.raw,
			})

			if tt.wantErr {
				requireValidationError(t, err, InvalidSpaceCount)
				assert.Equal(t, "--spacecount must be an integer greater than 1.", err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, opts.SpaceCount)
		})
	}
}

func TestModeFailureWinsOverOptionFailures(t *testing.T) {
	v := validatorFixture(t)

	// Every sub-validation fails; the mode conflict must be reported.
	_, _, err := v.Validate([]string{"suites"}, RawOptions{
		Recursive:     true,
		Inplace:       true,
		Format:        "html",
		LineSeparator: "bogus",
		SpaceCount:    "abc",
	})

	requireValidationError(t, err, ConflictingModes)
	assert.Equal(t, "--recursive and --inplace can not be used together.", err.Error())
}

func TestValidationHasNoSideEffects(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tests.robot", []byte("*** Settings ***\n"), 0644))
	v := NewArgumentValidator(fs, logger.NewNopLogger())

	_, _, err := v.Validate([]string{"tests.robot", "out.html"}, RawOptions{})
	require.Error(t, err)

	// The output path named in the failed invocation must not exist.
	exists, statErr := afero.Exists(fs, "out.html")
	require.NoError(t, statErr)
	assert.False(t, exists)

	content, readErr := afero.ReadFile(fs, "tests.robot")
	require.NoError(t, readErr)
	assert.Equal(t, "*** Settings ***\n", string(content))
}
