//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package demand maps calendar dates to demand intensity, discount
// bands, and the online/store channel mix. All functions are pure;
// dates are treated at day precision in UTC.
package demand

import "time"

// Band is a half-open discount range [Lo, Hi).
type Band struct {
	Lo float64
	Hi float64
}

// Event is a promotional window. Start and End are inclusive dates.
// Inside the window the event multiplies demand by Boost and replaces
// the active discount band with Band.
type Event struct {
	Name  string
	Start time.Time
	End   time.Time
	Boost float64
	Band  Band
}

// Active reports whether d falls inside the event window.
func (e Event) Active(d time.Time) bool {
	return !d.Before(e.Start) && !d.After(e.End)
}

// Shaper combines baseline seasonality with a promotional calendar.
type Shaper struct {
	// Events is the promotional calendar, in iteration order. When
	// windows overlap their boosts compose multiplicatively and the
	// band of the last matching event wins.
	Events []Event

	// Baseline is the discount band outside all event windows.
	Baseline Band

	// MixFloor and MixCeil clamp the online share of orders so no day
	// degenerates to all-online or all-store.
	MixFloor float64
	MixCeil  float64
}

// BaselineBand is the discount band in effect outside all events.
var BaselineBand = Band{Lo: 0, Hi: 0.15}

// Date builds a day-precision UTC time, the shaper's working currency.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DefaultCalendar returns the built-in promotional calendar: Cyber days,
// Fiestas Patrias, and the Navidad run-up for 2024 and 2025.
func DefaultCalendar() []Event {
	return []Event{
		{"Cyber", Date(2024, time.June, 3), Date(2024, time.June, 5), 1.8, Band{0.15, 0.45}},
		{"Fiestas Patrias", Date(2024, time.September, 10), Date(2024, time.September, 22), 1.2, Band{0.05, 0.20}},
		{"Navidad", Date(2024, time.December, 1), Date(2024, time.December, 24), 1.5, Band{0.05, 0.25}},
		{"Cyber", Date(2025, time.June, 2), Date(2025, time.June, 4), 1.9, Band{0.15, 0.50}},
		{"Fiestas Patrias", Date(2025, time.September, 10), Date(2025, time.September, 22), 1.2, Band{0.05, 0.20}},
		{"Navidad", Date(2025, time.December, 1), Date(2025, time.December, 24), 1.6, Band{0.05, 0.30}},
	}
}

// NewShaper builds a shaper over the given calendar with the default
// baseline band and mix clamp.
func NewShaper(events []Event) *Shaper {
	return &Shaper{
		Events:   events,
		Baseline: BaselineBand,
		MixFloor: 0.45,
		MixCeil:  0.85,
	}
}

// DefaultShaper returns a shaper over the built-in calendar.
func DefaultShaper() *Shaper {
	return NewShaper(DefaultCalendar())
}

// Seasonal returns the month/weekend demand multiplier for d. The
// result is always positive: seasonality scales a non-negative
// baseline, it never zeroes it.
func (s *Shaper) Seasonal(d time.Time) float64 {
	m := 1.0
	switch d.Month() {
	case time.January, time.February:
		m *= 1.10
	case time.March:
		m *= 1.08
	case time.November:
		m *= 1.10
	}
	if isWeekend(d) {
		m *= 1.06
	}
	return m
}

// EventEffect returns the composed boost of all events active on d and
// the discount band in effect. Outside all windows the boost is 1.0
// and the baseline band applies.
func (s *Shaper) EventEffect(d time.Time) (float64, Band) {
	boost := 1.0
	band := s.Baseline
	for _, e := range s.Events {
		if e.Active(d) {
			boost *= e.Boost
			band = e.Band
		}
	}
	return boost, band
}

// Multiplier returns the total demand multiplier for d: seasonal times
// composed event boosts.
func (s *Shaper) Multiplier(d time.Time) float64 {
	boost, _ := s.EventEffect(d)
	return s.Seasonal(d) * boost
}

// DiscountBand returns the discount band active on d.
func (s *Shaper) DiscountBand(d time.Time) Band {
	_, band := s.EventEffect(d)
	return band
}

// OnlineShare returns the probability that an order on d goes through
// the Online channel. The share shifts online on weekends and inside
// event windows, clamped to [MixFloor, MixCeil].
func (s *Shaper) OnlineShare(d time.Time) float64 {
	online := 0.62
	if isWeekend(d) {
		online += 0.08
	}
	for _, e := range s.Events {
		if e.Active(d) {
			online += 0.10
			break
		}
	}
	if online < s.MixFloor {
		online = s.MixFloor
	}
	if online > s.MixCeil {
		online = s.MixCeil
	}
	return online
}

// KeepProbability returns the Bernoulli acceptance rate for a candidate
// order on d, used by the thinning strategy. The annual demand peak
// maps to 1.0; online weekend orders get a small uplift.
func (s *Shaper) KeepProbability(d time.Time, online bool) float64 {
	peak := maxSeasonal * s.maxBoost()
	keep := s.Multiplier(d) / peak
	if online && isWeekend(d) {
		keep *= 1.10
	}
	if keep > 1 {
		keep = 1
	}
	return keep
}

// maxSeasonal is the largest value Seasonal can return: the strongest
// month uplift on a weekend.
const maxSeasonal = 1.10 * 1.06

func (s *Shaper) maxBoost() float64 {
	mb := 1.0
	for _, e := range s.Events {
		if e.Boost > mb {
			mb = e.Boost
		}
	}
	return mb
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
