package strength

type FeedbackType string

const (
	Success FeedbackType = "success"
	Warning FeedbackType = "warning"
	Error   FeedbackType = "error"
)

type Feedback struct {
	Message string       `json:"message"`
	Type    FeedbackType `json:"type"`
}

type Level string

const (
	VeryWeak   Level = "Very Weak"
	Weak       Level = "Weak"
	Medium     Level = "Medium"
	Strong     Level = "Strong"
	VeryStrong Level = "Very Strong"
)

// Levels lists every level from weakest to strongest.
var Levels = []Level{VeryWeak, Weak, Medium, Strong, VeryStrong}

type Analysis struct {
	Score     int        `json:"score"`
	Level     Level      `json:"level"`
	Entropy   int        `json:"entropy"`
	CrackTime string     `json:"crack_time"`
	Feedback  []Feedback `json:"feedback"`
}

// Contribution is what a single check adds to an Analysis.
type Contribution struct {
	ScoreDelta int
	Feedback   []Feedback
}

func contribute(delta int, message string, t FeedbackType) Contribution {
	return Contribution{
		ScoreDelta: delta,
		Feedback:   []Feedback{{Message: message, Type: t}},
	}
}

func Clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

// Classify expects a clamped score.
func Classify(score int) Level {
	switch {
	case score >= 90:
		return VeryStrong
	case score >= 75:
		return Strong
	case score >= 50:
		return Medium
	case score >= 25:
		return Weak
	default:
		return VeryWeak
	}
}
