package banner_test

import (
	"bannerdesk/internal/banner"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFor(t *testing.T) {
	tests := []struct {
		name     string
		zoneType banner.ZoneType
		duration banner.Duration
		want     int
	}{
		{name: "City 7 days", zoneType: banner.ZoneTypeCity, duration: banner.Duration7, want: 5},
		{name: "City 30 days", zoneType: banner.ZoneTypeCity, duration: banner.Duration30, want: 15},
		{name: "City 180 days", zoneType: banner.ZoneTypeCity, duration: banner.Duration180, want: 70},
		{name: "Home country 30 days", zoneType: banner.ZoneTypeHomeCountry, duration: banner.Duration30, want: 30},
		{name: "Home country 90 days", zoneType: banner.ZoneTypeHomeCountry, duration: banner.Duration90, want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, banner.PriceFor(tt.zoneType, tt.duration))
			// Same inputs, same price
			assert.Equal(t, banner.PriceFor(tt.zoneType, tt.duration), banner.PriceFor(tt.zoneType, tt.duration))
		})
	}
}

func TestPriceFor_HomeCountryNeverCheaper(t *testing.T) {
	for _, d := range banner.Durations {
		home := banner.PriceFor(banner.ZoneTypeHomeCountry, d)
		city := banner.PriceFor(banner.ZoneTypeCity, d)
		assert.GreaterOrEqual(t, home, city, "duration %d", d)
		assert.Positive(t, city, "duration %d", d)
	}
}

func TestPriceTable(t *testing.T) {
	table := banner.PriceTable(banner.ZoneTypeCity)
	require.Len(t, table, len(banner.Durations))

	for i := 1; i < len(table); i++ {
		assert.Less(t, table[i-1].DurationDays, table[i].DurationDays)
	}
	assert.Equal(t, banner.PriceEntry{DurationDays: 30, PriceUSD: 15}, table[2])
}

func TestParseDuration(t *testing.T) {
	for _, days := range []int{7, 15, 30, 90, 180} {
		d, err := banner.ParseDuration(days)
		require.NoError(t, err)
		assert.Equal(t, days, d.Days())
	}

	for _, days := range []int{0, -7, 1, 14, 31, 365} {
		_, err := banner.ParseDuration(days)
		assert.ErrorIs(t, err, banner.ErrInvalidDuration, "days %d", days)
	}
}

func TestParseZoneType(t *testing.T) {
	zt, err := banner.ParseZoneType("city")
	require.NoError(t, err)
	assert.Equal(t, banner.ZoneTypeCity, zt)
	assert.True(t, zt.RequiresRegion())

	zt, err = banner.ParseZoneType("home_country")
	require.NoError(t, err)
	assert.False(t, zt.RequiresRegion())

	_, err = banner.ParseZoneType("continent")
	assert.ErrorIs(t, err, banner.ErrInvalidZoneType)
}
