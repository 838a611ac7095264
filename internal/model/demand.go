package model

import (
	"errors"
	"fmt"
	"time"
)

// DemandReading is one timestamped demand sample from the source dataset.
// DemandKW is the instantaneous import demand in kilowatts.
type DemandReading struct {
	Timestamp time.Time
	DemandKW  float64
}

// MonthSelector picks one calendar month out of the raw dataset.
type MonthSelector struct {
	Year  int
	Month time.Month
}

func (s MonthSelector) String() string {
	return fmt.Sprintf("%04d-%02d", s.Year, int(s.Month))
}

// Window is the daily analysis window [StartHour, EndHour), in hours of day.
type Window struct {
	StartHour int
	EndHour   int
}

func (w Window) Validate() error {
	if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
		return errors.New("window must satisfy 0 <= StartHour < EndHour <= 24")
	}
	return nil
}

// Contains reports whether a timestamp's hour of day falls inside the window.
func (w Window) Contains(t time.Time) bool {
	h := t.Hour()
	return h >= w.StartHour && h < w.EndHour
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", w.StartHour, w.EndHour)
}

// DaySeries holds one calendar day's qualifying demand samples, in
// chronological order. DemandKW and Labels always have equal length.
// A DaySeries is never empty: days with no qualifying samples are dropped
// by the loader rather than represented as empty series.
type DaySeries struct {
	Date     time.Time
	DemandKW []float64
	Labels   []string
}

// DateOf truncates a timestamp to its calendar date (midnight, same location).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
