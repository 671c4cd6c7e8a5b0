// Package progress defines the milestone events emitted by the hashtag
// scrape pipeline and the emitter interface used to publish them. Events are
// a diagnostic side-channel: they describe which tier produced what, but are
// not part of the output data contract.
package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage denotes the type of milestone represented by an Event.
type Stage string

// Supported progress stages.
const (
	StageRunStart       Stage = "RUN_START"
	StageRunDone        Stage = "RUN_DONE"
	StageTierStart      Stage = "TIER_START"
	StageTierDone       Stage = "TIER_DONE"
	StageCategoryMerged Stage = "CATEGORY_MERGED"
	StageCategoryFilled Stage = "CATEGORY_FILLED"
)

// Tier names the data-acquisition strategy an event refers to.
type Tier string

// Acquisition tiers in priority order.
const (
	TierAPI      Tier = "api"
	TierHTML     Tier = "html"
	TierFallback Tier = "fallback"
)

// Event captures a single milestone of a scrape run.
type Event struct {
	// RunID uniquely identifies one pipeline invocation.
	RunID uuid.UUID
	// TS is the UTC timestamp recorded by the emitter.
	TS time.Time
	// Stage denotes which lifecycle or tier milestone occurred.
	Stage Stage
	// Tier scopes tier and category events to an acquisition strategy.
	Tier Tier
	// Category is the website bucket a category event refers to.
	Category string
	// Count carries the number of hashtags involved in the milestone.
	Count int
	// Dur captures execution latency for tier completions.
	Dur time.Duration
	// Note lets emitters attach low-volume debug context (e.g. error text).
	Note string
}

// Validate performs coarse validation on Event payloads.
func (e Event) Validate() error {
	if e.RunID == uuid.Nil {
		return errors.New("run id is required")
	}
	if e.TS.IsZero() {
		return errors.New("timestamp is required")
	}
	switch e.Stage {
	case StageRunStart, StageRunDone:
	case StageTierStart, StageTierDone:
		if e.Tier == "" {
			return errors.New("tier events require a tier")
		}
	case StageCategoryMerged, StageCategoryFilled:
		if e.Tier == "" {
			return errors.New("category events require a tier")
		}
		if e.Category == "" {
			return errors.New("category events require a category")
		}
	default:
		return fmt.Errorf("unknown stage %q", e.Stage)
	}
	if e.Count < 0 {
		return errors.New("count must be >= 0")
	}
	if e.Dur < 0 {
		return errors.New("duration must be >= 0")
	}
	return nil
}
