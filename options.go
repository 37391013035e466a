// Package ringcheck defines the acceptance configuration and its defaults.
package ringcheck

import (
	"github.com/katalvlaran/ringcheck/shape"
	"github.com/katalvlaran/ringcheck/textgrid"
)

// Options contains every tunable acceptance threshold. All fields are
// optional: non-positive numeric fields and unrecognized connectivity
// values fall back to the defaults, so a partially filled Options (for
// example one decoded from YAML) behaves sensibly.
type Options struct {
	// MarkRunes, when non-empty, is the exhaustive set of characters
	// counted as marks. See textgrid.MarkerSpec.
	MarkRunes string `json:"mark_runes,omitempty" yaml:"mark_runes,omitempty"`
	// BlankRunes lists background glyphs beyond whitespace.
	BlankRunes string `json:"blank_runes,omitempty" yaml:"blank_runes,omitempty"`
	// Connectivity is 4 or 8 (default 8 — diagonal arc segments are part
	// of any text circle).
	Connectivity int `json:"connectivity,omitempty" yaml:"connectivity,omitempty"`
	// MinCoverageFraction is the share of all marks the largest connected
	// component must contain (default 1.0: no stray marks at all).
	MinCoverageFraction float64 `json:"min_coverage_fraction,omitempty" yaml:"min_coverage_fraction,omitempty"`
	// MinRadius is the smallest acceptable fitted radius in cells
	// (default 2.0, exclusive).
	MinRadius float64 `json:"min_radius,omitempty" yaml:"min_radius,omitempty"`
	// RoundnessTolerance bounds deviation from the circumference: every
	// |residual| must stay within RoundnessTolerance × radius (default 0.2).
	RoundnessTolerance float64 `json:"roundness_tolerance,omitempty" yaml:"roundness_tolerance,omitempty"`
	// AngularSectors is the number of angular bins used for ring-coverage
	// measurement (default 36); the effective count is clamped so each
	// sector's arc spans at least one diagonal cell step.
	AngularSectors int `json:"angular_sectors,omitempty" yaml:"angular_sectors,omitempty"`
	// MinSectorFraction is the share of sectors that must contain a mark
	// (default 0.9).
	MinSectorFraction float64 `json:"min_sector_fraction,omitempty" yaml:"min_sector_fraction,omitempty"`
	// ThicknessAllowance is how far inside the fitted circumference a mark
	// may sit (in cells) before counting as interior fill (default 1.5).
	ThicknessAllowance float64 `json:"thickness_allowance,omitempty" yaml:"thickness_allowance,omitempty"`
	// SkipEnclosure disables the leak-path probe that requires the ring to
	// fully enclose its interior.
	SkipEnclosure bool `json:"skip_enclosure,omitempty" yaml:"skip_enclosure,omitempty"`
}

// DefaultOptions returns the challenge's default acceptance thresholds:
// whitespace background, 8-connectivity, single-component rings, radius
// above 2 cells, residuals within 20% of the radius, 90% of (at most 36)
// angular sectors covered, 1.5 cells of ring thickness, enclosure on.
func DefaultOptions() Options {
	return Options{
		Connectivity:        8,
		MinCoverageFraction: 1.0,
		MinRadius:           2.0,
		RoundnessTolerance:  0.2,
		AngularSectors:      36,
		MinSectorFraction:   0.9,
		ThicknessAllowance:  1.5,
	}
}

// normalized merges opts with the defaults: nil selects the defaults
// wholesale, and individual zero/invalid fields fall back per field.
func normalized(opts *Options) Options {
	def := DefaultOptions()
	if opts == nil {
		return def
	}
	o := *opts
	if o.Connectivity != 4 && o.Connectivity != 8 {
		o.Connectivity = def.Connectivity
	}
	if o.MinCoverageFraction <= 0 || o.MinCoverageFraction > 1 {
		o.MinCoverageFraction = def.MinCoverageFraction
	}
	if o.MinRadius <= 0 {
		o.MinRadius = def.MinRadius
	}
	if o.RoundnessTolerance <= 0 {
		o.RoundnessTolerance = def.RoundnessTolerance
	}
	if o.AngularSectors <= 0 {
		o.AngularSectors = def.AngularSectors
	}
	if o.MinSectorFraction <= 0 || o.MinSectorFraction > 1 {
		o.MinSectorFraction = def.MinSectorFraction
	}
	if o.ThicknessAllowance <= 0 {
		o.ThicknessAllowance = def.ThicknessAllowance
	}

	return o
}

// markerSpec converts the character options into a textgrid predicate.
func (o Options) markerSpec() textgrid.MarkerSpec {
	return textgrid.MarkerSpec{MarkRunes: o.MarkRunes, BlankRunes: o.BlankRunes}
}

// connectivity converts the numeric option into a shape mode.
func (o Options) connectivity() shape.Connectivity {
	if o.Connectivity == 4 {
		return shape.Conn4
	}

	return shape.Conn8
}
