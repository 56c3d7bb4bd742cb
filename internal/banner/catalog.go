package banner

import (
	"errors"
	"fmt"
)

// Position is a page slot that can carry a banner.
type Position string

const (
	PositionHeader        Position = "header"
	PositionSidebarTop    Position = "sidebar_top"
	PositionSidebarBottom Position = "sidebar_bottom"
	PositionFooter        Position = "footer"
	PositionContent       Position = "content"
)

// Positions lists every page position in display order.
var Positions = []Position{
	PositionHeader,
	PositionSidebarTop,
	PositionSidebarBottom,
	PositionFooter,
	PositionContent,
}

// Format identifies banner pixel dimensions, e.g. "728x90".
type Format string

const (
	FormatLeaderboard     Format = "728x90"
	FormatMediumRectangle Format = "300x250"
)

// FormatSpec describes a banner format and where it may be placed.
type FormatSpec struct {
	Format           Format     `json:"format" example:"728x90"`
	Width            int        `json:"width" example:"728"`
	Height           int        `json:"height" example:"90"`
	Label            string     `json:"label" example:"Leaderboard"`
	AllowedPositions []Position `json:"allowed_positions"`
}

// ErrInvalidFormat is returned when a format/position pair cannot be booked.
var ErrInvalidFormat = errors.New("invalid banner format for position")

// Formats is the static catalog of bookable banner formats.
var Formats = []FormatSpec{
	{
		Format:           FormatLeaderboard,
		Width:            728,
		Height:           90,
		Label:            "Leaderboard",
		AllowedPositions: []Position{PositionHeader, PositionFooter, PositionContent},
	},
	{
		Format:           FormatMediumRectangle,
		Width:            300,
		Height:           250,
		Label:            "Medium rectangle",
		AllowedPositions: []Position{PositionSidebarTop, PositionSidebarBottom},
	},
}

// ParsePosition validates s as a page position.
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown position %q", ErrInvalidFormat, s)
}

// LookupFormat returns the catalog entry for f.
func LookupFormat(f Format) (FormatSpec, bool) {
	for _, spec := range Formats {
		if spec.Format == f {
			return spec, true
		}
	}
	return FormatSpec{}, false
}

// Allows reports whether the format may be placed at p.
func (s FormatSpec) Allows(p Position) bool {
	for _, allowed := range s.AllowedPositions {
		if allowed == p {
			return true
		}
	}
	return false
}

// FormatForPosition returns the single format a position accepts.
func FormatForPosition(p Position) (FormatSpec, bool) {
	for _, spec := range Formats {
		if spec.Allows(p) {
			return spec, true
		}
	}
	return FormatSpec{}, false
}

// ValidatePlacement checks that format f may be booked at position p.
func ValidatePlacement(f Format, p Position) error {
	spec, ok := LookupFormat(f)
	if !ok {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidFormat, f)
	}
	if _, err := ParsePosition(string(p)); err != nil {
		return err
	}
	if !spec.Allows(p) {
		return fmt.Errorf("%w: %s banners cannot be placed in %s", ErrInvalidFormat, f, p)
	}
	return nil
}
