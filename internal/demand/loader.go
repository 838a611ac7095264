// Package demand turns raw timestamped readings into per-day series
// restricted to the daily analysis window.
package demand

import (
	"fmt"
	"sort"
	"time"

	"github.com/BanAutomation/battery-api/internal/model"
)

// NoDataError means a month selector matched zero readings in the source.
type NoDataError struct {
	Selector model.MonthSelector
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no readings for %s in source dataset", e.Selector)
}

// NoQualifyingDaysError means a month had readings, but none inside the
// analysis window.
type NoQualifyingDaysError struct {
	Selector model.MonthSelector
	Window   model.Window
}

func (e *NoQualifyingDaysError) Error() string {
	return fmt.Sprintf("all days of %s empty after applying %s filter", e.Selector, e.Window)
}

// LoadMonth filters readings down to one calendar month, groups them by
// calendar date, and restricts each day to the analysis window. Days left
// empty by the window filter are dropped. The result is sorted by date.
func LoadMonth(readings []model.DemandReading, sel model.MonthSelector, win model.Window) ([]model.DaySeries, error) {
	if err := win.Validate(); err != nil {
		return nil, err
	}

	monthRows := make([]model.DemandReading, 0, len(readings))
	for _, r := range readings {
		if r.Timestamp.Year() == sel.Year && r.Timestamp.Month() == sel.Month {
			monthRows = append(monthRows, r)
		}
	}
	if len(monthRows) == 0 {
		return nil, &NoDataError{Selector: sel}
	}

	sort.SliceStable(monthRows, func(i, j int) bool {
		return monthRows[i].Timestamp.Before(monthRows[j].Timestamp)
	})

	var days []model.DaySeries
	var cur *model.DaySeries
	for _, r := range monthRows {
		if !win.Contains(r.Timestamp) {
			continue
		}
		date := model.DateOf(r.Timestamp)
		if cur == nil || !cur.Date.Equal(date) {
			days = append(days, model.DaySeries{Date: date})
			cur = &days[len(days)-1]
		}
		cur.DemandKW = append(cur.DemandKW, r.DemandKW)
		cur.Labels = append(cur.Labels, r.Timestamp.Format("15:04"))
	}
	if len(days) == 0 {
		return nil, &NoQualifyingDaysError{Selector: sel, Window: win}
	}
	return days, nil
}

// LoadMonths runs LoadMonth per selector and concatenates the results,
// re-sorted by date ascending. Selectors are expected to be disjoint;
// overlapping months are not deduplicated. Any selector failure aborts the
// whole load: a multi-month analysis with a silently missing month would be
// misleading.
func LoadMonths(readings []model.DemandReading, sels []model.MonthSelector, win model.Window) ([]model.DaySeries, error) {
	var all []model.DaySeries
	for _, sel := range sels {
		days, err := LoadMonth(readings, sel, win)
		if err != nil {
			return nil, err
		}
		all = append(all, days...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all, nil
}

// Span returns the first and last date of a loaded day sequence.
func Span(days []model.DaySeries) (time.Time, time.Time) {
	if len(days) == 0 {
		return time.Time{}, time.Time{}
	}
	return days[0].Date, days[len(days)-1].Date
}
