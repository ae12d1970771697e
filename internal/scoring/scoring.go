// Package scoring computes credit scores, tiers, and rationale for applicant
// inputs. Score is pure: identical inputs always produce identical outputs.
package scoring

import "strings"

const (
	MinScore = 300
	MaxScore = 900
)

const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

type Result struct {
	Score     float64
	Tier      string
	Rationale string
	Visuals   string
}

// Score rates an applicant from revenue, sector, and behavioral notes.
// Nil sector and behaviorData mean the input was absent, which is distinct
// from an empty string for the sector adjustment.
func Score(revenue float64, sector, behaviorData *string) Result {
	score := 500.0

	switch {
	case revenue > 1_000_000:
		score += 300
	case revenue > 500_000:
		score += 200
	case revenue > 100_000:
		score += 100
	default:
		score += 50
	}

	if sector != nil {
		switch strings.ToLower(*sector) {
		case "technology":
			score += 100
		case "finance":
			score += 80
		case "retail":
			score += 60
		default:
			score += 40
		}
	}

	if behaviorData != nil {
		lower := strings.ToLower(*behaviorData)
		// "good" wins when both markers are present.
		if strings.Contains(lower, "good") {
			score += 50
		} else if strings.Contains(lower, "bad") {
			score -= 50
		}
	}

	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}

	return Result{
		Score:     score,
		Tier:      Tier(score),
		Rationale: rationale(score, sector, behaviorData),
		Visuals:   visuals(score, sector),
	}
}

// Tier maps a clamped score to its creditworthiness band.
func Tier(score float64) string {
	switch {
	case score >= 800:
		return TierPlatinum
	case score >= 700:
		return TierGold
	case score >= 600:
		return TierSilver
	default:
		return TierBronze
	}
}

func rationale(score float64, sector, behaviorData *string) string {
	return "Rationale based on score, sector, and behavior data."
}

func visuals(score float64, sector *string) string {
	return "https://example.com/credit-decision-visuals.png"
}
