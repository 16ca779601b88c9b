package model

import "github.com/okian/scorecard/internal/domain/timeline"

// Competition is a time-bounded competition or season. Timeline is the
// upstream's own derivation, if it sent one.
type Competition struct {
	ID        ID                 `json:"id"`
	Name      string             `json:"name,omitempty"`
	StartDate Instant            `json:"startDate"`
	EndDate   Instant            `json:"endDate"`
	Timeline  *timeline.Timeline `json:"timeline,omitempty"`
}

// CompetitionView is a competition with its reconciled timeline.
type CompetitionView struct {
	ID        ID                `json:"id"`
	Name      string            `json:"name,omitempty"`
	StartDate Instant           `json:"startDate"`
	EndDate   Instant           `json:"endDate"`
	Timeline  timeline.Timeline `json:"timeline"`
}

// Club groups teams.
type Club struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	TeamCount *int   `json:"teamCount"`
}

// Association groups clubs and runs competitions across grades.
type Association struct {
	ID               ID     `json:"id"`
	Name             string `json:"name"`
	ClubCount        *int   `json:"clubCount"`
	TeamCount        *int   `json:"teamCount"`
	GradeCount       *int   `json:"gradeCount"`
	CompetitionCount *int   `json:"competitionCount"`
}

// AssociationView is an association annotated with its percentile rank per
// weighting dimension and the mean of those ranks.
type AssociationView struct {
	Association
	Percentiles       map[string]int `json:"percentiles"`
	CombinedWeighting int            `json:"combinedWeighting"`
}

// Account is a person with access to the dashboard.
type Account struct {
	ID        ID     `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}
