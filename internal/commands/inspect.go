package commands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"spend-insights/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// schemaGeneric marks a plain date/description/amount table with no bank layout.
const schemaGeneric = "generic"

// fileInspection is what inspect reports for one input file.
type fileInspection struct {
	Path     string `json:"path"`
	Schema   string `json:"schema,omitempty"`
	Rows     int    `json:"rows"`
	Expenses int    `json:"expenses"`
	Error    string `json:"error,omitempty"`
}

func newInspectCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <files...>",
		Short: "Show the detected layout and usable rows of each CSV export",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a, err := newApp(cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			inspections := make([]fileInspection, 0, len(args))
			for _, path := range args {
				inspections = append(inspections, a.inspectFile(path))
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), inspections)
			}
			return writeInspections(cmd.OutOrStdout(), inspections)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the inspection as JSON")

	return cmd
}

// inspectFile parses one export. Files in no known bank layout are retried as
// a generic table keyed by lower-case column names.
func (a *app) inspectFile(path string) fileInspection {
	result := fileInspection{Path: path}

	raw, err := a.ingestion.ParseFile(path)
	if errors.Is(err, services.ErrUnknownSchema) {
		return a.inspectGeneric(path)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Rows = raw.Len()
	if raw.Len() > 0 {
		result.Schema = string(raw.Rows[0].Schema)
	}

	cleaned, err := a.cleaner.Clean(raw)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Expenses = cleaned.Len()
	return result
}

func (a *app) inspectGeneric(path string) fileInspection {
	result := fileInspection{Path: path}

	columns, rows, err := readTable(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Rows = len(rows)

	cleaned, err := a.cleaner.CleanTable(columns, rows)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Schema = schemaGeneric
	result.Expenses = cleaned.Len()
	return result
}

func readTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("reading %s: %w", path, services.ErrEmptyFile)
	}
	return records[0], records[1:], nil
}

func writeInspections(w io.Writer, inspections []fileInspection) error {
	failed := color.New(color.FgRed)
	for _, in := range inspections {
		if in.Error != "" {
			if _, err := failed.Fprintf(w, "%s: %s\n", in.Path, in.Error); err != nil {
				return err
			}
			continue
		}
		schema := in.Schema
		if schema == "" {
			schema = "-"
		}
		if _, err := fmt.Fprintf(w, "%s: schema=%s rows=%d expenses=%d\n",
			in.Path, schema, in.Rows, in.Expenses); err != nil {
			return err
		}
	}
	return nil
}
