// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/staranto/tplcache/internal/filters"
)

// Formats lists the accepted values of the --output flag.
var Formats = []string{"text", "json", "raw", "yaml"}

// Colors holds the foreground colors of a text table.
type Colors struct {
	Title string
	Even  string
	Odd   string
}

// DefaultColors are used for any color the config file does not set.
var DefaultColors = Colors{Title: "#f6be00", Even: "#ffffff", Odd: "#00c8f0"}

// Format describes how a dataset is shaped and rendered.
type Format struct {
	Output  string
	Filter  string
	Sort    string
	Titles  bool
	Color   bool
	Colors  Colors
	Padding int
}

// Spit filters, sorts and renders raw, a JSON array of row objects, to w.
// Only the given keys are kept, in that order for text output. The raw format
// writes raw untouched.
func Spit(raw []byte, keys []string, f Format, w io.Writer) error {
	if f.Output == "raw" {
		_, err := w.Write(raw)
		return err
	}

	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("invalid dataset")
	}

	dataset := filters.FilterDataset(gjson.ParseBytes(raw), keys, f.Filter)
	SortDataset(dataset, f.Sort)
	log.Debugf("emitting %d rows as %s", len(dataset), f.Output)

	switch f.Output {
	case "json":
		if dataset == nil {
			dataset = []map[string]interface{}{}
		}
		jsonOutput, err := json.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		return TableWriter(dataset, keys, f, w)
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(resultSet []map[string]interface{}, keys []string, f Format, w io.Writer) error {
	if len(resultSet) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if f.Color {
		colors := f.Colors
		if colors == (Colors{}) {
			colors = DefaultColors
		}
		headerStyle = headerStyle.Foreground(lipgloss.Color(colors.Title))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(colors.Even))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(colors.Odd))
	}

	rows := make([][]string, 0, len(resultSet))
	for _, result := range resultSet {
		row := make([]string, 0, len(keys))
		for _, key := range keys {
			row = append(row, InterfaceToString(result[key], "-"))
		}
		rows = append(rows, row)
	}

	pad := f.Padding
	if pad <= 0 {
		pad = 1
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if f.Titles {
		t = t.Headers(keys...).BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided for nil and zero values.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
