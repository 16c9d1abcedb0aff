// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mealclock

import "time"

// Period is one of the dining hall's four daily serving windows.
type Period int

const (
	Breakfast Period = iota
	Brunch
	Lunch
	Dinner
)

// facilityOffset shifts the authoritative clock to the dining hall's local
// time, so the dinner window never straddles a UTC midnight boundary.
const facilityOffset = -4 * time.Hour

// String returns the stable lowercase token used in API responses.
func (p Period) String() string {
	switch p {
	case Breakfast:
		return "breakfast"
	case Brunch:
		return "brunch"
	case Lunch:
		return "lunch"
	case Dinner:
		return "dinner"
	}
	return "unknown"
}

// Code returns the integer stored in the meal_period column.
func (p Period) Code() int {
	return int(p)
}

// PeriodFromCode is the inverse of Code. The bool is false for values
// outside the known periods.
func PeriodFromCode(code int) (Period, bool) {
	if code < int(Breakfast) || code > int(Dinner) {
		return 0, false
	}
	return Period(code), true
}

func minute(hr, min int) int {
	return hr*60 + min
}

// CurrentPeriod resolves an instant to the serving window active at that
// moment, if any. Window bounds are inclusive; checks run in fixed order
// (breakfast, brunch, lunch, dinner) and the first match wins.
func CurrentPeriod(t time.Time) (Period, bool) {
	local := t.UTC().Add(facilityOffset)
	weekday := local.Weekday()
	m := minute(local.Hour(), local.Minute())

	weekend := weekday == time.Saturday || weekday == time.Sunday

	// breakfast
	if !weekend && m >= minute(7, 0) && m <= minute(10, 30) {
		return Breakfast, true
	}

	// brunch
	if weekend && m >= minute(9, 30) && m <= minute(14, 30) {
		return Brunch, true
	}

	// lunch runs an hour longer on Fridays
	if weekday == time.Friday {
		if m >= minute(11, 0) && m <= minute(17, 0) {
			return Lunch, true
		}
	} else if m >= minute(11, 0) && m <= minute(16, 0) {
		return Lunch, true
	}

	// dinner
	if m >= minute(17, 0) && m <= minute(20, 0) {
		return Dinner, true
	}

	return 0, false
}

// ServiceDay returns the calendar date of the shifted service day.
func ServiceDay(t time.Time) (year, month, day int) {
	local := t.UTC().Add(facilityOffset)
	return local.Year(), int(local.Month()), local.Day()
}
