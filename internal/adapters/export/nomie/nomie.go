// Package nomie reads Nomie habit-tracker exports.
//
// Two export generations exist. The n3 JSON dump carries epoch-millisecond
// start timestamps and encodes the tracked item inside the free-text note as
// a #tracker(value) marker. The older CSV export already has tracker, emoji
// and value columns verbatim. The format is selected by file extension only;
// a JSON export whose start is not numeric is an error, never a fallback
// into string parsing.
package nomie

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avagyan/daygrid/internal/domain/model"
)

// CSV column headers of the older export generation.
const (
	startHeader   = "start"
	noteHeader    = "note"
	trackerHeader = "tracker"
	emojiHeader   = "emoji"
	valueHeader   = "value"
)

// CSV start timestamps are ISO text, with or without a zone.
var csvTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// noteMarker matches the #tracker(value) token inside an event note.
var noteMarker = regexp.MustCompile(`#([A-Za-z0-9_]+)\((\d+(?:\.\d+)?)\)`)

// trackerEmojis maps recognized tracker names to their calendar symbol.
// Unrecognized trackers keep their row with a nil symbol.
var trackerEmojis = map[string]string{
	"beer":      "\U0001F37A", // 🍺
	"champagne": "\U0001F942", // 🥂
	"wine":      "\U0001F377", // 🍷
	"whiskey":   "\U0001F943", // 🥃
	"cocktail":  "\U0001F378", // 🍸
	"cigarette": "\U0001F6AC", // 🚬
}

// DefaultSubstanceEmojis returns the symbol set the substance calendars
// filter on when the caller supplies none.
func DefaultSubstanceEmojis() []string {
	return []string{
		trackerEmojis["beer"],
		trackerEmojis["champagne"],
		trackerEmojis["wine"],
		trackerEmojis["whiskey"],
		trackerEmojis["cigarette"],
		trackerEmojis["cocktail"],
	}
}

// EmojiFor returns the calendar symbol for a tracker name, or nil for
// trackers outside the lookup table.
func EmojiFor(tracker string) *string {
	if e, ok := trackerEmojis[tracker]; ok {
		return &e
	}
	return nil
}

// ParseNote extracts the first #tracker(value) marker from a note. Both
// results are nil when the note carries no marker.
func ParseNote(note string) (tracker *string, value *float64) {
	m := noteMarker.FindStringSubmatch(note)
	if m == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, nil
	}
	return &m[1], &v
}

// Reader loads habit events from one export file.
type Reader struct {
	path string
}

// NewReader creates a Reader over a .json or .csv export file.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Events reads the export. An absent file yields an empty result; a present
// but malformed file is a hard error.
func (r *Reader) Events() ([]model.HabitEvent, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".json":
		return r.readJSON()
	case ".csv":
		return r.readCSV()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, r.path)
}

type jsonEvent struct {
	Start *int64 `json:"start"` // epoch milliseconds; numeric by contract
	Note  string `json:"note"`
}

func (r *Reader) readJSON() ([]model.HabitEvent, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	var events []jsonEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}

	out := make([]model.HabitEvent, 0, len(events))
	for i, ev := range events {
		if ev.Start == nil {
			return nil, fmt.Errorf("%s: event %d: %w", r.path, i, ErrMissingStart)
		}
		tracker, value := ParseNote(ev.Note)
		event := model.HabitEvent{
			Start:   time.UnixMilli(*ev.Start).UTC(),
			Note:    ev.Note,
			Tracker: tracker,
			Value:   value,
		}
		if tracker != nil {
			event.Emoji = EmojiFor(*tracker)
		}
		out = append(out, event)
	}
	return out, nil
}

func (r *Reader) readCSV() ([]model.HabitEvent, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	startIdx, ok := cols[startHeader]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", r.path, ErrMissingColumn, startHeader)
	}

	out := make([]model.HabitEvent, 0, len(records)-1)
	for _, rec := range records[1:] {
		start, err := parseCSVTime(rec[startIdx])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.path, err)
		}
		event := model.HabitEvent{Start: start}
		if i, ok := cols[noteHeader]; ok {
			event.Note = rec[i]
		}
		if i, ok := cols[trackerHeader]; ok && rec[i] != "" {
			t := rec[i]
			event.Tracker = &t
		}
		if i, ok := cols[emojiHeader]; ok && rec[i] != "" {
			e := rec[i]
			event.Emoji = &e
		}
		if i, ok := cols[valueHeader]; ok && rec[i] != "" {
			v, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: value %q: %w", r.path, rec[i], err)
			}
			event.Value = &v
		}
		out = append(out, event)
	}
	return out, nil
}

func parseCSVTime(s string) (time.Time, error) {
	for _, layout := range csvTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
}
