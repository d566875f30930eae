package strength

import (
	"fmt"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/sniff"
)

func CheckPatterns(sniffer sniff.Sniffer, logger lager.Logger, password string) Contribution {
	var c Contribution

	for _, violation := range sniffer.Sniff(logger, password) {
		var delta int
		var message string

		switch violation.Kind {
		case sniff.CommonWord:
			delta, message = -25, fmt.Sprintf("Contains a common word: %q", violation.Match)
		case sniff.Sequence:
			delta, message = -15, `Avoid sequential characters (e.g., "abc", "123")`
		case sniff.KeyboardPattern:
			delta, message = -20, `Avoid common keyboard patterns (e.g., "qwerty")`
		default:
			continue
		}

		c.ScoreDelta += delta
		c.Feedback = append(c.Feedback, Feedback{Message: message, Type: Error})
	}

	return c
}
