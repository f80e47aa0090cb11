package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avagyan/daygrid/internal/domain/model"
)

// Timestamp cells are written the way the downstream plotting layer parses
// them back; dates use the ISO day form.
const timestampLayout = "2006-01-02 15:04:05"

// Output file permissions.
const outputFilePermission = 0o644

// WriteTSV encodes the table as tab-separated values with a header row.
// Nil cells encode as empty fields. Fields are assumed to contain no tab or
// newline characters.
func WriteTSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(t.cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(t.cols))
	for _, row := range t.rows {
		for i, col := range t.cols {
			s, err := formatCell(row[col])
			if err != nil {
				return fmt.Errorf("column %q: %w", col, err)
			}
			record[i] = s
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, creating parent directories as needed.
// The file is regenerated wholesale; a rerun over unchanged input produces
// identical bytes.
func WriteFile(path string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTSV(f, t); err != nil {
		return err
	}
	return f.Close()
}

func formatCell(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", nil
	case model.Date:
		return c.String(), nil
	case time.Time:
		return c.Format(timestampLayout), nil
	case string:
		return c, nil
	case int:
		return strconv.Itoa(c), nil
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64), nil
	case decimal.Decimal:
		return c.String(), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedCell, v)
}
