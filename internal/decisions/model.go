package decisions

import "time"

type Decision struct {
	ID           int64     `json:"id"`
	Revenue      float64   `json:"revenue"`
	Sector       *string   `json:"sector"`
	BehaviorData *string   `json:"behaviorData"`
	Score        float64   `json:"score"`
	Tier         string    `json:"tier"`
	Rationale    string    `json:"rationale"`
	Visuals      string    `json:"visuals"`
	CreatedAt    time.Time `json:"created_at"`
}

// Input is the applicant-supplied triple; every derived field is recomputed
// from it on create and update.
type Input struct {
	Revenue      float64 `json:"revenue"`
	Sector       *string `json:"sector"`
	BehaviorData *string `json:"behaviorData"`
}
