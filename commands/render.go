package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/pivotal-cf/pw-alert/strength"
)

const meterWidth = 20

var icons = map[strength.FeedbackType]string{
	strength.Success: "✅",
	strength.Warning: "⚠️",
	strength.Error:   "❌",
}

func meter(score int) string {
	filled := score * meterWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled) + "]"
}

func renderAnalysis(w io.Writer, analysis strength.Analysis) {
	color := levelColor(analysis.Level)

	fmt.Fprintf(w, "Strength:      %s %s %d/100\n", color(meter(analysis.Score)), color(string(analysis.Level)), analysis.Score)
	fmt.Fprintf(w, "Time to crack: %s\n", analysis.CrackTime)
	fmt.Fprintf(w, "Entropy:       %d bits\n", analysis.Entropy)

	if len(analysis.Feedback) == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, f := range analysis.Feedback {
		fmt.Fprintf(w, "%s %s\n", icons[f.Type], f.Message)
	}
}

func renderEmpty(w io.Writer) {
	fmt.Fprintf(w, "Strength:      %s %s\n", gray(meter(0)), gray("Enter a password"))
	fmt.Fprintln(w, "Time to crack: N/A")
	fmt.Fprintln(w, "Entropy:       N/A")
}
