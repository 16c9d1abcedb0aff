// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mealclock resolves wall-clock time to the dining hall's serving
windows. It is pure: no clocks are read and no state is held, so callers
inject the instant and tests can pin any moment.

# Service Day

All resolution happens on the "service day": the instant shifted by the
facility's fixed -4h offset from UTC. This keeps the dinner window on one
calendar date even when it crosses UTC midnight.

# Serving Windows

Windows are inclusive on both ends and depend on the weekday:

	Breakfast  Mon-Fri  07:00-10:30
	Brunch     Sat-Sun  09:30-14:30
	Lunch      Sat-Thu  11:00-16:00, Fri 11:00-17:00
	Dinner     daily    17:00-20:00

Checks run breakfast, brunch, lunch, dinner; the first match wins, so the
long Friday lunch claims the 17:00 boundary shared with dinner.

# Usage

	if period, ok := mealclock.CurrentPeriod(time.Now()); ok {
		year, month, day := mealclock.ServiceDay(time.Now())
		// period is being served on that service day
	}
*/
package mealclock
