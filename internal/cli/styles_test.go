package cli

import (
	"testing"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

// forceColor turns escape sequences on so the pickers can be told apart.
func forceColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })
}

func TestPriorityColor(t *testing.T) {
	forceColor(t)

	if got := priorityColor(models.PriorityHigh)("x"); got != red("x") {
		t.Fatalf("high priority: got %q, want red", got)
	}
	if got := priorityColor(models.PriorityMedium)("x"); got != yellow("x") {
		t.Fatalf("medium priority: got %q, want yellow", got)
	}
	if got := priorityColor(models.PriorityLow)("x"); got != green("x") {
		t.Fatalf("low priority: got %q, want green", got)
	}
}

func TestRateColor(t *testing.T) {
	forceColor(t)

	tests := []struct {
		rate float64
		want string
	}{
		{100, green("x")},
		{80, green("x")},
		{79.9, yellow("x")},
		{50, yellow("x")},
		{49.9, red("x")},
		{0, red("x")},
	}
	for _, tc := range tests {
		if got := rateColor(tc.rate)("x"); got != tc.want {
			t.Fatalf("rate %.1f: got %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestRankColor(t *testing.T) {
	forceColor(t)

	if got := rankColor(1)("x"); got != yellow("x") {
		t.Fatalf("rank 1: got %q", got)
	}
	if got := rankColor(2)("x"); got != green("x") {
		t.Fatalf("rank 2: got %q", got)
	}
	if got := rankColor(3)("x"); got != blue("x") {
		t.Fatalf("rank 3: got %q", got)
	}
}

func TestCategoryWord(t *testing.T) {
	if got := categoryWord(1); got != "y" {
		t.Fatalf("got %q, want %q", got, "y")
	}
	if got := categoryWord(2); got != "ies" {
		t.Fatalf("got %q, want %q", got, "ies")
	}
}
