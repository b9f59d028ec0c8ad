// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"

	"github.com/codemeta/propmerge/pkg/properties"
	"github.com/codemeta/propmerge/pkg/sources"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// descriptionWidth bounds descriptions in the narrow table view.
const descriptionWidth = 60

// ItemsToTableData converts merged items to table format.
// The wide view adds the Parent Type column and full descriptions.
func ItemsToTableData(items []properties.Item, wide bool) Data {
	headers := []string{"Property", "Type", "Versions", "Description"}
	if wide {
		headers = []string{"Parent Type", "Property", "Type", "Versions", "Description"}
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		if wide {
			rows = append(rows, []string{
				item.ParentType,
				item.Property,
				item.Type,
				JoinVersions(item.Versions),
				item.Description,
			})
			continue
		}
		rows = append(rows, []string{
			item.Property,
			item.Type,
			JoinVersions(item.Versions),
			Truncate(item.Description, descriptionWidth),
		})
	}

	return Data{Headers: headers, Rows: rows}
}

// Source is a discovered properties table and the number of rows it holds.
type Source struct {
	File sources.File
	Rows int
}

// SourcesToTableData converts discovered properties tables to table format.
func SourcesToTableData(srcs []Source) Data {
	rows := make([][]string, 0, len(srcs))
	for _, s := range srcs {
		rows = append(rows, []string{
			s.File.Version.String(),
			strconv.FormatFloat(s.File.Number, 'f', -1, 64),
			strconv.Itoa(s.Rows),
			s.File.Path,
		})
	}

	return Data{
		Headers:         []string{"Version", "Number", "Rows", "File"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight, AlignLeft},
	}
}

// JoinVersions renders a version list as a comma separated string.
func JoinVersions(versions []properties.Version) string {
	parts := make([]string, len(versions))
	for i, v := range versions {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// Truncate shortens s to at most width runes, ending it with "..." when cut.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
