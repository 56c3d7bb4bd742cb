// Package banner holds the pure rules of banner advertising: zone types,
// durations and prices, banner formats and page positions, booking statuses
// and the date arithmetic behind availability.
package banner

import (
	"errors"
	"fmt"
	"sort"
)

// ZoneType is the kind of sellable advertising surface.
type ZoneType string

const (
	ZoneTypeHomeCountry ZoneType = "home_country"
	ZoneTypeCity        ZoneType = "city"
)

// ErrInvalidZoneType is returned when a zone type string is not recognized.
var ErrInvalidZoneType = errors.New("invalid zone type")

// ErrInvalidDuration is returned for durations outside the sellable set.
var ErrInvalidDuration = errors.New("invalid booking duration")

// ParseZoneType validates s as a zone type.
func ParseZoneType(s string) (ZoneType, error) {
	switch zt := ZoneType(s); zt {
	case ZoneTypeHomeCountry, ZoneTypeCity:
		return zt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidZoneType, s)
}

// Valid reports whether zt is a known zone type.
func (zt ZoneType) Valid() bool {
	_, err := ParseZoneType(string(zt))
	return err == nil
}

// RequiresRegion reports whether zones of this type are scoped to a region.
func (zt ZoneType) RequiresRegion() bool {
	return zt == ZoneTypeCity
}

// Duration is a sellable booking length in days.
type Duration int

const (
	Duration7   Duration = 7
	Duration15  Duration = 15
	Duration30  Duration = 30
	Duration90  Duration = 90
	Duration180 Duration = 180
)

// Durations lists every sellable duration in increasing order.
var Durations = []Duration{Duration7, Duration15, Duration30, Duration90, Duration180}

// ParseDuration validates a day count coming from a request or the database.
func ParseDuration(days int) (Duration, error) {
	d := Duration(days)
	if _, ok := cityPrices[d]; !ok {
		return 0, fmt.Errorf("%w: %d days", ErrInvalidDuration, days)
	}
	return d, nil
}

// Days returns the duration as a plain day count.
func (d Duration) Days() int {
	return int(d)
}

var cityPrices = map[Duration]int{
	Duration7:   5,
	Duration15:  10,
	Duration30:  15,
	Duration90:  40,
	Duration180: 70,
}

var homeCountryPrices = map[Duration]int{
	Duration7:   10,
	Duration15:  20,
	Duration30:  30,
	Duration90:  80,
	Duration180: 140,
}

// PriceFor returns the USD price for booking a zone type for d days.
// Durations must come from ParseDuration or the Duration constants.
func PriceFor(zt ZoneType, d Duration) int {
	if zt == ZoneTypeHomeCountry {
		return homeCountryPrices[d]
	}
	return cityPrices[d]
}

// PriceEntry is one row of a displayed price table.
type PriceEntry struct {
	DurationDays int `json:"duration_days" example:"30"`
	PriceUSD     int `json:"price_usd" example:"15"`
}

// PriceTable returns every duration and its price for zt, shortest first.
func PriceTable(zt ZoneType) []PriceEntry {
	entries := make([]PriceEntry, 0, len(Durations))
	for _, d := range Durations {
		entries = append(entries, PriceEntry{DurationDays: d.Days(), PriceUSD: PriceFor(zt, d)})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DurationDays < entries[j].DurationDays
	})
	return entries
}
