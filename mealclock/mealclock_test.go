// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mealclock

import (
	"testing"
	"time"
)

// local builds an instant whose service-day clock reads the given values.
// The service day runs 4 hours behind UTC, so UTC = local + 4h.
func local(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour+4, min, 0, 0, time.UTC)
}

func TestCurrentPeriod(t *testing.T) {
	// 2025-03-04 is a Tuesday, 2025-03-07 a Friday, 2025-03-08 a Saturday.
	tests := []struct {
		name   string
		at     time.Time
		want   Period
		active bool
	}{
		{"breakfast opens at 07:00", local(2025, time.March, 4, 7, 0), Breakfast, true},
		{"one minute before breakfast", local(2025, time.March, 4, 6, 59), 0, false},
		{"breakfast closes at 10:30", local(2025, time.March, 4, 10, 30), Breakfast, true},
		{"one minute after breakfast", local(2025, time.March, 4, 10, 31), 0, false},
		{"no weekday breakfast on Saturday", local(2025, time.March, 8, 8, 0), 0, false},

		{"brunch opens Saturday 09:30", local(2025, time.March, 8, 9, 30), Brunch, true},
		{"Saturday noon is brunch, not lunch", local(2025, time.March, 8, 12, 0), Brunch, true},
		{"brunch closes at 14:30", local(2025, time.March, 9, 14, 30), Brunch, true},
		{"one minute after brunch", local(2025, time.March, 8, 14, 31), 0, false},

		{"weekday lunch", local(2025, time.March, 4, 11, 0), Lunch, true},
		{"weekday lunch closes at 16:00", local(2025, time.March, 4, 16, 0), Lunch, true},
		{"weekday 16:30 gap", local(2025, time.March, 4, 16, 30), 0, false},
		{"Friday lunch runs late", local(2025, time.March, 7, 16, 30), Lunch, true},
		{"Friday 17:00 is still lunch", local(2025, time.March, 7, 17, 0), Lunch, true},

		{"dinner opens at 17:00", local(2025, time.March, 4, 17, 0), Dinner, true},
		{"Saturday dinner", local(2025, time.March, 8, 18, 0), Dinner, true},
		{"dinner closes at 20:00", local(2025, time.March, 4, 20, 0), Dinner, true},
		{"one minute after dinner", local(2025, time.March, 4, 20, 1), 0, false},
		{"midnight", local(2025, time.March, 4, 0, 0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentPeriod(tt.at)
			if ok != tt.active {
				t.Fatalf("active = %v, want %v", ok, tt.active)
			}
			if ok && got != tt.want {
				t.Errorf("period = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentPeriodWeekdayUsesServiceDay(t *testing.T) {
	// 23:30 UTC Friday is 19:30 Friday on the service day, so Friday dinner
	// still applies even though a naive UTC weekday would agree; push past
	// midnight UTC to make the shift observable: 02:00 UTC Saturday is 22:00
	// Friday locally - outside every window, not Saturday brunch territory.
	at := time.Date(2025, time.March, 8, 2, 0, 0, 0, time.UTC)
	if _, ok := CurrentPeriod(at); ok {
		t.Error("22:00 on the service day should not be in any window")
	}
}

func TestServiceDay(t *testing.T) {
	// 02:00 UTC on March 5 is still March 4 on the service day
	year, month, day := ServiceDay(time.Date(2025, time.March, 5, 2, 0, 0, 0, time.UTC))
	if year != 2025 || month != 3 || day != 4 {
		t.Errorf("expected 2025-03-04, got %04d-%02d-%02d", year, month, day)
	}

	year, month, day = ServiceDay(local(2025, time.March, 4, 12, 0))
	if year != 2025 || month != 3 || day != 4 {
		t.Errorf("expected 2025-03-04, got %04d-%02d-%02d", year, month, day)
	}
}

func TestPeriodTokens(t *testing.T) {
	tests := []struct {
		period Period
		token  string
	}{
		{Breakfast, "breakfast"},
		{Brunch, "brunch"},
		{Lunch, "lunch"},
		{Dinner, "dinner"},
	}

	for _, tt := range tests {
		if tt.period.String() != tt.token {
			t.Errorf("String() = %q, want %q", tt.period.String(), tt.token)
		}
		got, ok := PeriodFromCode(tt.period.Code())
		if !ok || got != tt.period {
			t.Errorf("PeriodFromCode(%d) = %v, %v", tt.period.Code(), got, ok)
		}
	}

	if _, ok := PeriodFromCode(4); ok {
		t.Error("expected PeriodFromCode(4) to fail")
	}
	if _, ok := PeriodFromCode(-1); ok {
		t.Error("expected PeriodFromCode(-1) to fail")
	}
}
