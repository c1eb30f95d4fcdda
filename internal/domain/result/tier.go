// internal/domain/result/tier.go
package result

import (
	"errors"
	"fmt"
	"math"
)

// Tier is a qualitative feedback band keyed by average percentage.
type Tier string

const (
	TierExcellent Tier = "EXCELLENT"
	TierVeryGood  Tier = "VERY_GOOD"
	TierGood      Tier = "GOOD"
	TierAverage   Tier = "AVERAGE"
	TierLow       Tier = "LOW"
)

// Tiers lists the five tiers from highest to lowest.
func Tiers() []Tier {
	return []Tier{TierExcellent, TierVeryGood, TierGood, TierAverage, TierLow}
}

var ErrInvalidTierTable = errors.New("invalid tier table")

// TierBound selects Tier for every average >= Min that no higher bound selected.
type TierBound struct {
	Min  float64
	Tier Tier
}

// TierTable is ordered from highest to lowest bound. The last entry catches every
// average below the previous bound, so classification is total.
type TierTable []TierBound

// DefaultTierTable returns the thresholds used by the exam bot.
func DefaultTierTable() TierTable {
	return TierTable{
		{Min: 83, Tier: TierExcellent},
		{Min: 75, Tier: TierVeryGood},
		{Min: 65, Tier: TierGood},
		{Min: 50, Tier: TierAverage},
		{Min: 0, Tier: TierLow},
	}
}

// Validate checks that the table names each tier once, in Tiers() order, with
// strictly descending bounds.
func (t TierTable) Validate() error {
	want := Tiers()
	if len(t) != len(want) {
		return fmt.Errorf("%w: expected %d tiers, got %d", ErrInvalidTierTable, len(want), len(t))
	}
	for i, b := range t {
		if b.Tier != want[i] {
			return fmt.Errorf("%w: position %d must be %s, got %q", ErrInvalidTierTable, i, want[i], b.Tier)
		}
		if math.IsNaN(b.Min) || math.IsInf(b.Min, 0) {
			return fmt.Errorf("%w: bound for %s is not finite", ErrInvalidTierTable, b.Tier)
		}
		if i > 0 && !(b.Min < t[i-1].Min) {
			return fmt.Errorf("%w: bound for %s (%.1f) must be below %s (%.1f)",
				ErrInvalidTierTable, b.Tier, b.Min, t[i-1].Tier, t[i-1].Min)
		}
	}
	return nil
}

// Classify returns the first tier, scanning from the top, whose bound the average reaches.
func (t TierTable) Classify(average float64) Tier {
	for i, b := range t {
		if i == len(t)-1 || average >= b.Min {
			return b.Tier
		}
	}
	return TierLow
}

// Bound returns the lower bound configured for tier.
func (t TierTable) Bound(tier Tier) (float64, bool) {
	for _, b := range t {
		if b.Tier == tier {
			return b.Min, true
		}
	}
	return 0, false
}
