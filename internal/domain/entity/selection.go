package entity

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SelectionPhase is the derived phase of a registration's stand-selection
// workflow. It is computed, never stored: callers re-evaluate on every tick
// and after every refresh, so expiry needs no background job.
type SelectionPhase string

const (
	// PhaseIdle means the registration is not in the selection flow.
	PhaseIdle SelectionPhase = "idle"
	// PhasePending means selection is open but no window has been scheduled yet.
	PhasePending SelectionPhase = "pending"
	// PhaseActive means the window is open and the deadline has not passed.
	PhaseActive SelectionPhase = "active"
	// PhaseExpired means the window deadline passed without a submission.
	PhaseExpired SelectionPhase = "expired"
	// PhaseCompleted means choices were submitted. Terminal.
	PhaseCompleted SelectionPhase = "completed"
)

// ComputePhase is a pure function of a registration snapshot and the current
// time. A non-empty choice set always wins, even over an expired or missing
// window.
func ComputePhase(r *Registration, now time.Time) SelectionPhase {
	if len(r.Choices) > 0 {
		return PhaseCompleted
	}
	if r.Status != StatusStandSelection {
		return PhaseIdle
	}
	if r.WindowStartedAt == nil || r.WindowExpiresAt == nil {
		return PhasePending
	}
	if !now.After(*r.WindowExpiresAt) {
		return PhaseActive
	}

	return PhaseExpired
}

// StandRange returns the inclusive integer range between the two bounds,
// ascending. The bounds may be given in either order; a nil bound yields an
// empty range. The result is recomputed on every call.
func StandRange(start, end *int) []int {
	if start == nil || end == nil {
		return nil
	}

	lo, hi := *start, *end
	if lo > hi {
		lo, hi = hi, lo
	}

	stands := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		stands = append(stands, n)
	}

	return stands
}

// SerializeChoices renders stand choices in the canonical storage form:
// ascending numeric order, comma separated. Canonical ordering makes equality
// and idempotence checks a plain string compare.
func SerializeChoices(choices []int) string {
	sorted := make([]int, len(choices))
	copy(sorted, choices)
	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for _, n := range sorted {
		parts = append(parts, strconv.Itoa(n))
	}

	return strings.Join(parts, ",")
}

// ParseChoices parses the canonical serialized form back to a slice. An empty
// string means no submission yet.
func ParseChoices(serialized string) ([]int, error) {
	if strings.TrimSpace(serialized) == "" {
		return nil, nil
	}

	parts := strings.Split(serialized, ",")
	choices := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		choices = append(choices, n)
	}

	return choices, nil
}
