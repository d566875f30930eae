package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pw-alert/strength"
)

var (
	red    = ansi.ColorFunc("red+b")
	orange = ansi.ColorFunc("208+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
	cyan   = ansi.ColorFunc("cyan+b")
	gray   = ansi.ColorFunc("black+h")
)

var levelColors = map[strength.Level]func(string) string{
	strength.VeryWeak:   red,
	strength.Weak:       orange,
	strength.Medium:     yellow,
	strength.Strong:     green,
	strength.VeryStrong: cyan,
}

func levelColor(level strength.Level) func(string) string {
	if color, ok := levelColors[level]; ok {
		return color
	}

	return gray
}
