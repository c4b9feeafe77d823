package entity

import (
	"slices"
	"time"
)

// Goal is the training objective chosen on the profile page.
type Goal string

const (
	GoalHypertrophy Goal = "hipertrofia"
	GoalWeightLoss  Goal = "perda-peso"
	GoalFitness     Goal = "condicao-fisica"
	GoalEndurance   Goal = "resistencia"
	GoalStrength    Goal = "forca"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalHypertrophy, GoalWeightLoss, GoalFitness, GoalEndurance, GoalStrength:
		return true
	default:
		return false
	}
}

// UserProfile is the one-to-one settings record of a user.
type UserProfile struct {
	UserID       string    `json:"userId"`
	Height       *int      `json:"height"` // Centimeters.
	Weight       *int      `json:"weight"` // Kilograms.
	Goal         *Goal     `json:"goal"`
	TrainingDays []string  `json:"trainingDays"` // Weekday indices "0" (Sunday) .. "6".
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfilePatch is a partial profile update. Nil fields keep their stored value.
type ProfilePatch struct {
	Height       *int
	Weight       *int
	Goal         *Goal
	TrainingDays *[]string
}

// Apply copies the set fields onto p and refreshes UpdatedAt.
func (patch *ProfilePatch) Apply(p *UserProfile, now time.Time) {
	if patch.Height != nil {
		p.Height = patch.Height
	}
	if patch.Weight != nil {
		p.Weight = patch.Weight
	}
	if patch.Goal != nil {
		p.Goal = patch.Goal
	}
	if patch.TrainingDays != nil {
		p.TrainingDays = slices.Clone(*patch.TrainingDays)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
