package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func TestStandRange_OrderIndependent(t *testing.T) {
	tests := []struct {
		name string
		a, b int
	}{
		{name: "ascending", a: 10, b: 14},
		{name: "descending", a: 14, b: 10},
		{name: "single", a: 7, b: 7},
		{name: "negative span", a: -2, b: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward := StandRange(intPtr(tt.a), intPtr(tt.b))
			backward := StandRange(intPtr(tt.b), intPtr(tt.a))

			assert.Equal(t, forward, backward)
			diff := tt.a - tt.b
			if diff < 0 {
				diff = -diff
			}
			assert.Len(t, forward, diff+1)

			for i := 1; i < len(forward); i++ {
				assert.Equal(t, forward[i-1]+1, forward[i])
			}
		})
	}
}

func TestStandRange_NilBounds(t *testing.T) {
	assert.Empty(t, StandRange(nil, nil))
	assert.Empty(t, StandRange(intPtr(3), nil))
	assert.Empty(t, StandRange(nil, intPtr(3)))
}

func TestComputePhase(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		reg  Registration
		want SelectionPhase
	}{
		{
			name: "choices win over expired window",
			reg: Registration{
				Status:          StatusStandSelection,
				Choices:         []int{11, 13},
				WindowStartedAt: timePtr(now.Add(-2 * time.Hour)),
				WindowExpiresAt: timePtr(now.Add(-time.Hour)),
			},
			want: PhaseCompleted,
		},
		{
			name: "choices win over missing window",
			reg:  Registration{Status: StatusApproved, Choices: []int{5}},
			want: PhaseCompleted,
		},
		{
			name: "not in selection status",
			reg:  Registration{Status: StatusApproved},
			want: PhaseIdle,
		},
		{
			name: "selection open without window",
			reg:  Registration{Status: StatusStandSelection},
			want: PhasePending,
		},
		{
			name: "inside window",
			reg: Registration{
				Status:          StatusStandSelection,
				WindowStartedAt: timePtr(now.Add(-10 * time.Minute)),
				WindowExpiresAt: timePtr(now.Add(50 * time.Minute)),
			},
			want: PhaseActive,
		},
		{
			name: "exactly at expiry is still active",
			reg: Registration{
				Status:          StatusStandSelection,
				WindowStartedAt: timePtr(now.Add(-time.Hour)),
				WindowExpiresAt: timePtr(now),
			},
			want: PhaseActive,
		},
		{
			name: "past expiry",
			reg: Registration{
				Status:          StatusStandSelection,
				WindowStartedAt: timePtr(now.Add(-2 * time.Hour)),
				WindowExpiresAt: timePtr(now.Add(-time.Minute)),
			},
			want: PhaseExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePhase(&tt.reg, now)
			assert.Equal(t, tt.want, got)
			// Pure function: identical inputs, identical result.
			assert.Equal(t, got, ComputePhase(&tt.reg, now))
		})
	}
}

func TestSerializeChoices_AscendingRegardlessOfInput(t *testing.T) {
	assert.Equal(t, "1,3,5", SerializeChoices([]int{5, 1, 3}))
	assert.Equal(t, "1,3,5", SerializeChoices([]int{1, 3, 5}))
	assert.Equal(t, "", SerializeChoices(nil))
	assert.Equal(t, "42", SerializeChoices([]int{42}))
}

func TestParseChoices_RoundTrip(t *testing.T) {
	choices, err := ParseChoices("1,3,5")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, choices)

	choices, err = ParseChoices("")
	require.NoError(t, err)
	assert.Nil(t, choices)

	_, err = ParseChoices("1,x,3")
	assert.Error(t, err)
}
