package chillerlog

import (
	"fmt"
	"strings"
	"time"

	chillerlogerrors "go-logbook/internal/chillerlog/errors"
)

const (
	StatusOn  = "ON"
	StatusOff = "OFF"
)

type statusField struct {
	name  string
	label string
	value func(*EquipmentStatus) *string
}

var statusFields = []statusField{
	{"cooling_tower_pump_status", "Cooling Tower Pump", func(s *EquipmentStatus) *string { return &s.CoolingTowerPump }},
	{"chilled_water_pump_status", "Chilled Water Pump", func(s *EquipmentStatus) *string { return &s.ChilledWaterPump }},
	{"cooling_tower_fan_status", "Cooling Tower Fan", func(s *EquipmentStatus) *string { return &s.CoolingTowerFan }},
	{"cooling_tower_blowoff_valve_status", "Cooling Tower Blowoff Valve", func(s *EquipmentStatus) *string { return &s.CoolingTowerBlowoffValve }},
}

// normalize upper-cases every flag in place and returns per-field errors.
func (s *EquipmentStatus) normalize() map[string]string {
	invalid := map[string]string{}
	for _, f := range statusFields {
		v := f.value(s)
		*v = strings.ToUpper(strings.TrimSpace(*v))
		if *v != "" && *v != StatusOn && *v != StatusOff {
			invalid[f.name] = chillerlogerrors.ErrInvalidEquipmentStatus.Message
		}
	}
	return invalid
}

type deviation struct {
	Field string
	Label string
	Old   string
	New   string
}

// deviations compares next against the baseline. Only flags supplied on next
// are compared.
func deviations(baseline, next EquipmentStatus) []deviation {
	var out []deviation
	for _, f := range statusFields {
		newValue := *f.value(&next)
		oldValue := *f.value(&baseline)
		if newValue == "" || newValue == oldValue {
			continue
		}
		out = append(out, deviation{Field: f.name, Label: f.label, Old: oldValue, New: newValue})
	}
	return out
}

func displayStatus(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// changeNote renders one line such as
// "[Status change] Cooling Tower Pump: ON -> OFF at 14:05".
func changeNote(d deviation, at time.Time) string {
	return fmt.Sprintf("[Status change] %s: %s -> %s at %s",
		d.Label, displayStatus(d.Old), displayStatus(d.New), at.Format("15:04"))
}

func appendChangeNotes(remarks string, devs []deviation, at time.Time) string {
	lines := make([]string, 0, len(devs)+1)
	if remarks != "" {
		lines = append(lines, remarks)
	}
	for _, d := range devs {
		lines = append(lines, changeNote(d, at))
	}
	return strings.Join(lines, "\n")
}

// dayBounds returns the calendar day containing t in loc as [start, end).
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
