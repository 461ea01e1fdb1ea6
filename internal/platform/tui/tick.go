// Package tui hosts a dodge session in a Bubble Tea program, locally or
// over SSH. It owns the frame cadence, maps keys and mouse drags to
// actions, and draws the game over banner.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Gen identifies the session that
// scheduled it so ticks from a previous session are dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// bannerMsg advances the game over score animation.
type bannerMsg struct {
	Time time.Time
	Gen  uint64
}

const bannerFrame = time.Second / 30

// tickCmd schedules the next simulation tick at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// bannerCmd schedules the next banner animation frame.
func bannerCmd(gen uint64) tea.Cmd {
	return tea.Tick(bannerFrame, func(t time.Time) tea.Msg {
		return bannerMsg{Time: t, Gen: gen}
	})
}
