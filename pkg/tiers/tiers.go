package tiers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/optio/loyalty-rewards/pkg/models"
)

// ErrMisconfiguredTierTable is returned when the tier reference data does not
// have strictly increasing levels and thresholds. Promotion evaluation must
// never proceed against a table that fails validation.
var ErrMisconfiguredTierTable = errors.New("tier table misconfigured")

// Table is a validated, ordered tier definition set.
type Table struct {
	tiers []models.RewardTier
}

// NewTable validates the given tier definitions and returns an ordered Table.
// Levels and minimum-points thresholds must both be strictly increasing, and
// the lowest tier must start at zero points so every user maps onto a tier.
func NewTable(defs []models.RewardTier) (*Table, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no tiers defined", ErrMisconfiguredTierTable)
	}

	ordered := make([]models.RewardTier, len(defs))
	copy(ordered, defs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].TierLevel < ordered[j].TierLevel })

	if ordered[0].MinPoints != 0 {
		return nil, fmt.Errorf("%w: lowest tier %q must have min_points 0, got %d",
			ErrMisconfiguredTierTable, ordered[0].TierName, ordered[0].MinPoints)
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].TierLevel == ordered[i-1].TierLevel {
			return nil, fmt.Errorf("%w: duplicate tier level %d", ErrMisconfiguredTierTable, ordered[i].TierLevel)
		}
		if ordered[i].MinPoints <= ordered[i-1].MinPoints {
			return nil, fmt.Errorf("%w: tier %q (level %d) min_points %d is not above tier %q min_points %d",
				ErrMisconfiguredTierTable, ordered[i].TierName, ordered[i].TierLevel,
				ordered[i].MinPoints, ordered[i-1].TierName, ordered[i-1].MinPoints)
		}
	}

	return &Table{tiers: ordered}, nil
}

// Lowest returns the lowest-ordered tier, the default for new users.
func (t *Table) Lowest() models.RewardTier {
	return t.tiers[0]
}

// ByLevel returns the tier with the given level.
func (t *Table) ByLevel(level int) (models.RewardTier, bool) {
	for _, tier := range t.tiers {
		if tier.TierLevel == level {
			return tier, true
		}
	}
	return models.RewardTier{}, false
}

// Next returns the tier above the given level, if any.
func (t *Table) Next(level int) (models.RewardTier, bool) {
	for _, tier := range t.tiers {
		if tier.TierLevel > level {
			return tier, true
		}
	}
	return models.RewardTier{}, false
}

// HighestFor returns the highest tier whose threshold is met by totalEarned.
// A single call handles multi-level jumps: a large credit lands directly on
// the correct final tier instead of advancing one level at a time.
func (t *Table) HighestFor(totalEarned int64) models.RewardTier {
	best := t.tiers[0]
	for _, tier := range t.tiers {
		if tier.MinPoints <= totalEarned {
			best = tier
		}
	}
	return best
}

// All returns the tiers in ascending level order.
func (t *Table) All() []models.RewardTier {
	out := make([]models.RewardTier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Progress describes how far a user has advanced toward the next tier.
type Progress struct {
	CurrentTier  models.RewardTier  `json:"current_tier"`
	NextTier     *models.RewardTier `json:"next_tier,omitempty"`
	Percentage   float64            `json:"progress_percentage"`
	PointsToNext int64              `json:"points_to_next_tier"`
	IsMaxTier    bool               `json:"is_max_tier"`
}

// ProgressFor computes tier progress for the given state. The computation is
// read-only; strictly increasing thresholds (enforced by NewTable) make the
// divisor non-zero.
func (t *Table) ProgressFor(state *models.TierState) Progress {
	current, ok := t.ByLevel(state.CurrentTierLevel)
	if !ok {
		// State rows written before a tier was removed still need an answer;
		// fall back to the tier the lifetime total actually maps to.
		current = t.HighestFor(state.TotalPointsEarned)
	}

	next, ok := t.Next(current.TierLevel)
	if !ok {
		return Progress{CurrentTier: current, Percentage: 100, IsMaxTier: true}
	}

	pct := float64(state.TotalPointsEarned-current.MinPoints) / float64(next.MinPoints-current.MinPoints) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	toNext := next.MinPoints - state.TotalPointsEarned
	if toNext < 0 {
		toNext = 0
	}

	return Progress{
		CurrentTier:  current,
		NextTier:     &next,
		Percentage:   pct,
		PointsToNext: toNext,
	}
}
