package writer

import (
	"sort"
	"strings"

	"github.com/luomingzhi/robotframework/pkg/model"
)

// settingOrder is the canonical order of rows inside the settings
// section. Settings not listed here keep their relative order after
// the known ones.
var settingOrder = []string{
	"documentation",
	"metadata",
	"suite setup",
	"suite teardown",
	"test setup",
	"test teardown",
	"test template",
	"test timeout",
	"force tags",
	"default tags",
	"library",
	"resource",
	"variables",
}

// canonicalSettingNames maps the lowercase setting name to its
// canonical spelling.
var canonicalSettingNames = map[string]string{
	"documentation":  "Documentation",
	"metadata":       "Metadata",
	"suite setup":    "Suite Setup",
	"suite teardown": "Suite Teardown",
	"test setup":     "Test Setup",
	"test teardown":  "Test Teardown",
	"test template":  "Test Template",
	"test timeout":   "Test Timeout",
	"force tags":     "Force Tags",
	"default tags":   "Default Tags",
	"library":        "Library",
	"resource":       "Resource",
	"variables":      "Variables",
}

func settingRank(name string) int {
	for i, known := range settingOrder {
		if known == name {
			return i
		}
	}

	return len(settingOrder)
}

// sortSettings returns the rows of a settings section in canonical
// order, with known setting names normalized to canonical casing. The
// sort is stable: rows sharing a rank keep their input order, so
// repeated settings such as Library imports are not shuffled.
func sortSettings(rows []model.Row) []model.Row {
	sorted := make([]model.Row, len(rows))
	for i, row := range rows {
		sorted[i] = normalizeSettingName(row)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return settingRank(settingKey(sorted[i])) < settingRank(settingKey(sorted[j]))
	})

	return sorted
}

func settingKey(row model.Row) string {
	if len(row) == 0 {
		return ""
	}

	return strings.ToLower(strings.TrimSpace(row[0]))
}

func normalizeSettingName(row model.Row) model.Row {
	canonical, ok := canonicalSettingNames[settingKey(row)]
	if !ok {
		return row
	}

	normalized := make(model.Row, len(row))
	copy(normalized, row)
	normalized[0] = canonical

	return normalized
}
