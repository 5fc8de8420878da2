package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
	yamlOutputFormat  = "yaml"
)

var outputFormats = []string{tableOutputFormat, jsonOutputFormat, yamlOutputFormat}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table, json or yaml")
}

// outputFormat returns the validated value of the output flag.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if !slices.Contains(outputFormats, format) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", format, outputFormats)
	}
	return format, nil
}

// render writes data as json or yaml, or calls table for the table format.
func render(w io.Writer, format string, data any, table func() fmt.Stringer) error {
	switch format {
	case jsonOutputFormat:
		return outputJSON(w, data)
	case yamlOutputFormat:
		return outputYAML(w, data)
	default:
		_, err := fmt.Fprintln(w, table())
		return err
	}
}

func outputJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func outputYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

func createStyledTable(headers ...string) *table.Table {
	var (
		accent    = lipgloss.Color("#ffd644")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
