package cli

import (
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/fatih/color"
)

// Semantic print helpers shared by every screen. Each wraps its arguments in
// the color with a trailing reset, so fragments can be concatenated freely.
var (
	success = color.New(color.FgHiGreen).SprintFunc()
	errText = color.New(color.FgHiRed).SprintFunc()
	warn    = color.New(color.FgHiYellow).SprintFunc()
	info    = color.New(color.FgHiCyan).SprintFunc()

	title  = color.New(color.FgHiYellow, color.Bold).SprintFunc()
	border = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	ask    = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()

	red     = color.New(color.FgHiRed).SprintFunc()
	green   = color.New(color.FgHiGreen).SprintFunc()
	yellow  = color.New(color.FgHiYellow).SprintFunc()
	blue    = color.New(color.FgHiBlue).SprintFunc()
	magenta = color.New(color.FgHiMagenta).SprintFunc()
	cyan    = color.New(color.FgHiCyan).SprintFunc()
	white   = color.New(color.FgHiWhite).SprintFunc()
)

// priorityColor picks the list color for a task priority.
func priorityColor(p models.Priority) func(a ...interface{}) string {
	switch p {
	case models.PriorityHigh:
		return red
	case models.PriorityMedium:
		return yellow
	default:
		return green
	}
}

// rateColor grades a completion percentage.
func rateColor(rate float64) func(a ...interface{}) string {
	switch {
	case rate >= 80:
		return green
	case rate >= 50:
		return yellow
	default:
		return red
	}
}

// rankColor highlights the top three category ranks.
func rankColor(rank int) func(a ...interface{}) string {
	switch rank {
	case 1:
		return yellow
	case 2:
		return green
	default:
		return blue
	}
}
