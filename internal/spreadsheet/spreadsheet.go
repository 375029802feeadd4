// Package spreadsheet converts deck cards to and from xlsx workbooks.
//
// A workbook holds one sheet whose first row names the columns. The entry and
// value columns may appear in any position; other columns are ignored.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// ContentType is the media type of an xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Column headers
const (
	ColumnEntry = "entry"
	ColumnValue = "value"
)

const maxSheetNameLen = 31

// ErrMissingColumns is returned by Parse when the header lacks entry or value.
var ErrMissingColumns = errors.New("entry and value columns are required")

// Export renders cards into an xlsx workbook with a single sheet named after
// the deck and returns the workbook with its download file name.
func Export(deckName string, cards []models.CardInput) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(deckName)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{ColumnEntry, ColumnValue}); err != nil {
		return nil, "", fmt.Errorf("failed to write header: %w", err)
	}
	for i, c := range cards {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{c.Entry, c.Value}); err != nil {
			return nil, "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), deckName + "_cards.xlsx", nil
}

// Parse reads cards from the first sheet of an xlsx workbook. Rows with an
// empty entry or value are skipped; values are trimmed.
func Parse(r io.Reader) ([]models.CardInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrMissingColumns
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	entryCol, valueCol := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case ColumnEntry:
			if entryCol < 0 {
				entryCol = i
			}
		case ColumnValue:
			if valueCol < 0 {
				valueCol = i
			}
		}
	}
	if entryCol < 0 || valueCol < 0 {
		return nil, ErrMissingColumns
	}

	cards := make([]models.CardInput, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entry, value := cell(row, entryCol), cell(row, valueCol)
		if entry == "" || value == "" {
			continue
		}
		cards = append(cards, models.CardInput{
			Entry: strings.TrimSpace(entry),
			Value: strings.TrimSpace(value),
		})
	}
	return cards, nil
}

// SheetName makes name usable as a worksheet name: forbidden characters are
// replaced, and the result is cut to 31 characters.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")

	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	if strings.TrimSpace(name) == "" {
		return "Sheet1"
	}
	return name
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
