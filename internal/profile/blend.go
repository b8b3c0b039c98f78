package profile

import "time"

// SessionOutcome is what a completed assessment session hands back for merging
// into the profile.
type SessionOutcome struct {
	Scores    Scores   // already clamped by the session controller; clamped again here regardless
	Questions []string // questions asked during the session, in order
	Daily     bool     // true for a daily micro-task, false for a full audit
}

// BlendScores merges a session's fresh scores into the prior cumulative
// scores. Dimensions with a prior score take the rounded mean of prior and
// fresh; first-time dimensions take the fresh score unchanged. The halving is
// deliberately recency-weighted rather than a true running mean.
func BlendScores(prior, fresh Scores) Scores {
	out := make(Scores, len(Dimensions))
	for _, dim := range Dimensions {
		n := clampScore(fresh[dim])
		p := clampScore(prior[dim])
		if p > 0 {
			out[dim] = (p + n + 1) / 2
		} else {
			out[dim] = n
		}
	}
	return out
}

// ApplySession blends a completed session into the profile: scores are
// blended, a dated snapshot is appended (history trimmed to the newest 10),
// asked questions are recorded without duplicates, and the streak counter
// advances for daily tasks only.
func (p *Profile) ApplySession(outcome SessionOutcome, now time.Time) {
	blended := BlendScores(p.Scores, outcome.Scores)
	p.Scores = blended

	p.ScoreHistory = append(p.ScoreHistory, Snapshot{
		Date:   now.Format("Jan 2"),
		Scores: blended.clone(),
	})
	if len(p.ScoreHistory) > maxHistory {
		p.ScoreHistory = p.ScoreHistory[len(p.ScoreHistory)-maxHistory:]
	}

	if outcome.Daily {
		p.Streak++
	}

	p.AskedQuestions = appendUnique(p.AskedQuestions, outcome.Questions)
}

func appendUnique(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[q] = true
	}
	for _, q := range extra {
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		existing = append(existing, q)
	}
	return existing
}
