// Package timezone converts the wearable's naive GMT timestamps to local
// calendar time. The export carries no zone information, so conversion is a
// whole-hour offset, either fixed or selected per record by a historical
// relocation rule.
package timezone

import (
	"time"

	"github.com/avagyan/daygrid/internal/domain/model"
)

// Offsets and cutover for the auto-detect rule. The owner lived on Moscow
// time (UTC+3) until 2022-01-05 and on US Eastern (UTC-5) from that day on.
// The rule is a step function; it is deliberately not interpolated.
const (
	MoscowOffsetHours  = 3
	EasternOffsetHours = -5
)

// Cutover is the first measurement date that uses the Eastern offset.
var Cutover = model.Date{Year: 2022, Month: time.January, Day: 5}

// Corrector maps GMT timestamps to local time.
type Corrector struct {
	auto  bool
	fixed int
}

// Fixed returns a corrector applying the same hour offset to every record.
func Fixed(hours int) Corrector {
	return Corrector{fixed: hours}
}

// Auto returns a corrector applying the historical relocation rule.
func Auto() Corrector {
	return Corrector{auto: true}
}

// Auto reports whether the corrector uses the relocation rule.
func (c Corrector) Auto() bool {
	return c.auto
}

// OffsetHours returns the offset applied to a record measured on the given
// date. The measurement date decides the offset, not the timestamp's own
// date: a session spanning midnight around the cutover still uses the single
// offset its assigned calendar date selects.
func (c Corrector) OffsetHours(measured model.Date) int {
	if !c.auto {
		return c.fixed
	}
	if measured.Before(Cutover) {
		return MoscowOffsetHours
	}
	return EasternOffsetHours
}

// ToLocal shifts a GMT timestamp into local time for a record measured on
// the given date.
func (c Corrector) ToLocal(gmt time.Time, measured model.Date) time.Time {
	return gmt.Add(time.Duration(c.OffsetHours(measured)) * time.Hour)
}
