package nextnano

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table is a column-oriented numeric table parsed from a nextnano output
// file. Columns[c][r] is row r of column c; all columns share the same
// length.
type Table struct {
	Columns [][]float64
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}

	return len(t.Columns[0])
}

// ParseTable reads a whitespace-separated numeric table from r. Blank
// lines and lines starting with '#' are skipped; the first numeric row
// fixes the column count and every later row must match it.
func ParseTable(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cols [][]float64
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if cols == nil {
			cols = make([][]float64, len(fields))
		} else if len(fields) != len(cols) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrRaggedRow, line, len(fields), len(cols))
		}
		for c, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q",
					ErrBadValue, line, c+1, field)
			}
			cols[c] = append(cols[c], val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("nextnano: reading table: %w", err)
	}
	if len(cols) == 0 {
		return nil, ErrEmptyTable
	}

	return &Table{Columns: cols}, nil
}
