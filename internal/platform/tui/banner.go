package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// countUpDuration is how long the final score takes to count up, in seconds.
const countUpDuration = 0.8

// scoreCounter animates the final score from zero on the game over banner.
type scoreCounter struct {
	final   int
	shown   int
	tween   *gween.Tween
	settled bool
}

func newScoreCounter(final int) *scoreCounter {
	c := &scoreCounter{final: final}
	if final <= 0 {
		c.settled = true
		return c
	}
	c.tween = gween.New(0, float32(final), countUpDuration, ease.OutCubic)
	return c
}

// Advance moves the animation forward by dt seconds and reports whether
// it still needs frames.
func (c *scoreCounter) Advance(dt float32) bool {
	if c.settled {
		return false
	}
	v, done := c.tween.Update(dt)
	c.shown = int(v + 0.5)
	if done || c.shown >= c.final {
		c.shown = c.final
		c.settled = true
	}
	return !c.settled
}

// Value returns the score currently displayed.
func (c *scoreCounter) Value() int {
	return c.shown
}

// Settled reports whether the displayed score reached the final score.
func (c *scoreCounter) Settled() bool {
	return c.settled
}

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 4).
			Align(lipgloss.Center)

	bannerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9"))

	bannerScoreStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	bannerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderBanner draws the modal game over box.
func renderBanner(score int) string {
	body := strings.Join([]string{
		bannerTitleStyle.Render("GAME OVER"),
		"",
		bannerScoreStyle.Render(fmt.Sprintf("Score: %d", score)),
		"",
		bannerHintStyle.Render("press any key to play again · q to quit"),
	}, "\n")
	return bannerStyle.Render(body)
}
