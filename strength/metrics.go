package strength

import (
	"fmt"
	"math"
)

const GuessesPerSecond = 1e10

type Metrics struct {
	PoolSize   int
	Entropy    int
	CrackTime  string
	ScoreDelta int
}

// Measure estimates entropy as length × log2(pool size) and derives an
// offline crack time from it. It never produces feedback.
func Measure(password string) Metrics {
	m := Metrics{
		PoolSize: ClassesOf(password).PoolSize(),
	}

	if m.PoolSize > 0 {
		m.Entropy = roundHalfUp(float64(Length(password)) * math.Log2(float64(m.PoolSize)))

		switch {
		case m.Entropy > 100:
			m.ScoreDelta = 25
		case m.Entropy > 75:
			m.ScoreDelta = 15
		case m.Entropy > 50:
			m.ScoreDelta = 5
		}
	}

	m.CrackTime = CrackTime(m.Entropy)

	return m
}

const (
	minute  = 60.0
	hour    = 3600.0
	day     = 86400.0
	year    = 31536000.0
	century = 3153600000.0
)

func CrackTime(entropy int) string {
	seconds := math.Pow(2, float64(entropy)) / GuessesPerSecond

	switch {
	case seconds < minute:
		return "instantly"
	case seconds < hour:
		return fmt.Sprintf("%d minutes", roundHalfUp(seconds/minute))
	case seconds < day:
		return fmt.Sprintf("%d hours", roundHalfUp(seconds/hour))
	case seconds < year:
		return fmt.Sprintf("%d days", roundHalfUp(seconds/day))
	case seconds < century:
		return fmt.Sprintf("%d years", roundHalfUp(seconds/year))
	default:
		return "centuries"
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
