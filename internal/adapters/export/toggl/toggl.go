// Package toggl reads Toggl timesheet CSV exports. One file per year is the
// usual partitioning but the reader takes whatever Toggl-prefixed files the
// directory holds, in filename-sorted order.
package toggl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avagyan/daygrid/internal/domain/model"
)

// Export file and column conventions.
const (
	filePrefix = "Toggl"

	startDateHeader = "Start date"
	durationHeader  = "Duration"
	clientHeader    = "Client"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	secondsPerHour = decimal.NewFromInt(3600)
)

// Reader loads timesheet entries from one export directory.
type Reader struct {
	dir string
}

// NewReader creates a Reader over the directory holding the Toggl CSVs.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// Entries reads every export file into raw timesheet entries. An absent
// directory yields an empty result; a malformed file is a hard error.
func (r *Reader) Entries() ([]model.TimesheetEntry, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) {
			continue
		}
		files = append(files, filepath.Join(r.dir, e.Name()))
	}
	sort.Strings(files)

	var out []model.TimesheetEntry
	for _, file := range files {
		rows, err := readFile(file)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

func readFile(path string) ([]model.TimesheetEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	dateIdx, ok := cols[startDateHeader]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", path, ErrMissingColumn, startDateHeader)
	}
	durationIdx, ok := cols[durationHeader]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", path, ErrMissingColumn, durationHeader)
	}
	clientIdx, hasClient := cols[clientHeader]

	out := make([]model.TimesheetEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		date, err := model.ParseDate(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		hours, err := ParseDuration(rec[durationIdx])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		entry := model.TimesheetEntry{Date: date, Hours: hours}
		if hasClient {
			entry.Client = rec[clientIdx]
		}
		out = append(out, entry)
	}
	return out, nil
}

// ParseDuration converts the export's HH:MM:SS text into decimal hours.
// Decimal keeps sums of :15/:20 entries exact over a year of rows.
func ParseDuration(s string) (decimal.Decimal, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}
	nums := make([]decimal.Decimal, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrBadDuration, s)
		}
		nums[i] = decimal.NewFromInt(int64(n))
	}
	hours := nums[0].
		Add(nums[1].Div(minutesPerHour)).
		Add(nums[2].Div(secondsPerHour))
	return hours, nil
}
