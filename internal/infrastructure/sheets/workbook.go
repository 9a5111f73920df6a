package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkbookSource reads tables from a local .xlsx export of the content
// spreadsheet, one worksheet per table. The first row holds the headers.
//
// Filters are ignored: the content access layer filters rows itself.
type WorkbookSource struct {
	path string
}

func NewWorkbookSource(path string) *WorkbookSource {
	return &WorkbookSource{path: path}
}

// Query opens the workbook on every call so edits show up without a restart.
func (s *WorkbookSource) Query(ctx context.Context, table string, _ Filters) ([]Row, error) {
	if s.path == "" {
		return nil, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(table)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, table)
	}

	cells, err := f.GetRows(table)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", table, err)
	}
	if len(cells) == 0 {
		return []Row{}, nil
	}

	headers := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(cells)-1)
	for j, line := range cells[1:] {
		if isBlank(line) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(line) {
				row[h] = boolCell(f, table, i+1, j+2, line[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// boolCell lower-cases boolean cells, which excelize renders as TRUE/FALSE,
// so they read like the web app's JSON booleans. Text that merely spells
// TRUE or FALSE is left alone.
func boolCell(f *excelize.File, sheet string, col, rowNum int, value string) string {
	if value != "TRUE" && value != "FALSE" {
		return value
	}
	cell, err := excelize.CoordinatesToCellName(col, rowNum)
	if err != nil {
		return value
	}
	if typ, err := f.GetCellType(sheet, cell); err == nil && typ == excelize.CellTypeBool {
		return strings.ToLower(value)
	}
	return value
}

func isBlank(line []string) bool {
	for _, v := range line {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
