// package formatter provides functions to export the station list to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/dkarlsson/radiodeck/internal/models"
)

// StationsToCSV converts a station list to CSV with columns: ID, Name, URL
func StationsToCSV(stations []models.Station) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Name", "URL"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, st := range stations {
		record := []string{strconv.Itoa(st.ID), st.Name, st.URL}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// StationsToMarkdown converts a station list to a Markdown table.
func StationsToMarkdown(title string, stations []models.Station) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("%d stations\n\n", len(stations)))
	buf.WriteString("| ID | Name | URL |\n")
	buf.WriteString("|---|---|---|\n")

	for _, st := range stations {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s |\n", st.ID, st.Name, st.URL))
	}

	return buf.Bytes()
}

// StationsToText converts a station list to aligned plain text for terminal output.
func StationsToText(stations []models.Station) []byte {
	var buf bytes.Buffer

	width := 0
	for _, st := range stations {
		if len(st.Name) > width {
			width = len(st.Name)
		}
	}

	for _, st := range stations {
		buf.WriteString(fmt.Sprintf("%3d  %-*s  %s\n", st.ID, width, st.Name, st.URL))
	}

	return buf.Bytes()
}
