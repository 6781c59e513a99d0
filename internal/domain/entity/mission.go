package entity

import (
	"time"

	"github.com/google/uuid"
)

// MissionFrequency controls when mission counters reset.
type MissionFrequency string

const (
	// MissionFrequencyOneOff never resets and locks once completed.
	MissionFrequencyOneOff MissionFrequency = "one-off"
	// MissionFrequencyDaily resets on the first event of each new day.
	MissionFrequencyDaily MissionFrequency = "daily"
	// MissionFrequencyAccumulated keeps counting; completes again only after a re-arm.
	MissionFrequencyAccumulated MissionFrequency = "accumulated"
)

// String returns the string representation of the MissionFrequency.
func (f MissionFrequency) String() string {
	return string(f)
}

// IsValid checks if the MissionFrequency is a valid value.
func (f MissionFrequency) IsValid() bool {
	switch f {
	case MissionFrequencyOneOff, MissionFrequencyDaily, MissionFrequencyAccumulated:
		return true
	default:
		return false
	}
}

// MissionGoal is the count of one event needed to complete a mission.
type MissionGoal struct {
	EventName string `json:"event_name"`
	Goal      int64  `json:"goal"`
}

// MissionReward is credited on completion.
type MissionReward struct {
	Points     int64             `json:"points"`
	Components []ComponentAmount `json:"components,omitempty"`
}

// Mission defines tracked events, their goals and the reward.
type Mission struct {
	ID                  uuid.UUID
	Name                string
	Frequency           MissionFrequency
	Goals               []MissionGoal
	Reward              MissionReward
	AutoDisburseRewards bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Tracks reports whether the mission counts the event.
func (m *Mission) Tracks(eventName string) bool {
	for _, g := range m.Goals {
		if g.EventName == eventName {
			return true
		}
	}

	return false
}

// UserMission is a user's progress on a mission.
type UserMission struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	MissionID       uuid.UUID
	CurrentValues   map[string]int64
	IsCompleted     bool
	CompletedAt     *time.Time
	IsDisbursed     bool
	DisbursedAt     *time.Time
	PeriodStart     *time.Time
	CompletionCount int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GoalsReached reports whether every goal of the mission is met by the counters.
func (um *UserMission) GoalsReached(mission *Mission) bool {
	if len(mission.Goals) == 0 {
		return false
	}
	for _, g := range mission.Goals {
		if um.CurrentValues[g.EventName] < g.Goal {
			return false
		}
	}

	return true
}

// ResetProgress clears counters and completion state for a new period.
func (um *UserMission) ResetProgress(periodStart time.Time) {
	um.CurrentValues = map[string]int64{}
	um.IsCompleted = false
	um.CompletedAt = nil
	um.IsDisbursed = false
	um.DisbursedAt = nil
	um.PeriodStart = &periodStart
}

// UserMissionView pairs a mission with the user's progress, which may be nil.
type UserMissionView struct {
	Mission  *Mission
	Progress *UserMission
}
