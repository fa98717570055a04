package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luomingzhi/robotframework/pkg/logger"
	"github.com/luomingzhi/robotframework/pkg/model"
)

func render(t *testing.T, f *model.File, opts Options) string {
	t.Helper()

	var buf bytes.Buffer
	w := New(opts, logger.NewNopLogger())
	require.NoError(t, w.Write(f, &buf))

	return buf.String()
}

func TestWriteCanonicalHeaders(t *testing.T) {
	f := &model.File{
		Path: "data.robot",
		Sections: []*model.Section{
			{Type: model.SettingsSection},
			{Type: model.TestCasesSection},
		},
	}

	out := render(t, f, Options{})

	assert.Equal(t, "*** Settings ***\n\n*** Test Cases ***\n", out)
}

func TestWriteSpaceSeparated(t *testing.T) {
	f := &model.File{
		Path: "data.robot",
		Sections: []*model.Section{
			{
				Type: model.TestCasesSection,
				Rows: []model.Row{
					{"Login"},
					{"", "Open Browser", "http://example.com"},
				},
			},
		},
	}

	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{
			name:     "default spacing",
			opts:     Options{},
			expected: "*** Test Cases ***\nLogin\n    Open Browser    http://example.com\n",
		},
		{
			name:     "two spaces",
			opts:     Options{SpaceCount: 2},
			expected: "*** Test Cases ***\nLogin\n  Open Browser  http://example.com\n",
		},
		{
			name:     "windows line separator",
			opts:     Options{LineSeparator: "\r\n"},
			expected: "*** Test Cases ***\r\nLogin\r\n    Open Browser    http://example.com\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(t, f, tt.opts))
		})
	}
}

func TestWritePipeSeparated(t *testing.T) {
	f := &model.File{
		Path: "data.robot",
		Sections: []*model.Section{
			{
				Type: model.TestCasesSection,
				Rows: []model.Row{
					{"Login"},
					{"", "Keyword", "", "arg"},
				},
			},
		},
	}

	out := render(t, f, Options{PipeSeparated: true})

	assert.Equal(t,
		"*** Test Cases ***\n| Login |\n|  | Keyword |  | arg |\n",
		out)
}

func TestWriteEscapesEmptyCells(t *testing.T) {
	f := &model.File{
		Path: "data.robot",
		Sections: []*model.Section{
			{
				Type: model.TestCasesSection,
				Rows: []model.Row{
					{"Login"},
					{"", "Keyword", "", "arg"},
				},
			},
		},
	}

	out := render(t, f, Options{})

	assert.Contains(t, out, `    Keyword    \    arg`)
}

func TestWriteSettingsCanonicalOrder(t *testing.T) {
	f := &model.File{
		Path: "data.robot",
		Sections: []*model.Section{
			{
				Type: model.SettingsSection,
				Rows: []model.Row{
					{"Library", "Second"},
					{"suite setup", "Prepare"},
					{"documentation", "Example suite"},
					{"Library", "First"},
				},
			},
		},
	}

	out := render(t, f, Options{})

	assert.Equal(t,
		"*** Settings ***\n"+
			"Documentation    Example suite\n"+
			"Suite Setup    Prepare\n"+
			"Library    Second\n"+
			"Library    First\n",
		out)
}

func TestWriteUnknownSettingsKeepOrderAfterKnown(t *testing.T) {
	f := &model.File{
		Path: "data.robot",
		Sections: []*model.Section{
			{
				Type: model.SettingsSection,
				Rows: []model.Row{
					{"Custom Two", "y"},
					{"Resource", "common.robot"},
					{"Custom One", "x"},
				},
			},
		},
	}

	out := render(t, f, Options{})

	assert.Equal(t,
		"*** Settings ***\n"+
			"Resource    common.robot\n"+
			"Custom Two    y\n"+
			"Custom One    x\n",
		out)
}
