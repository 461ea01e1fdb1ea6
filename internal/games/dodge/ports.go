package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// RenderPort is the display surface the loop issues commands to.
// Commands are fire-and-forget; only CreateEntity returns a value.
type RenderPort interface {
	CreateEntity(shape core.Shape, mat core.Material, pos core.Vec3) core.Handle
	MoveEntity(h core.Handle, pos core.Vec3)
	RemoveEntity(h core.Handle)
	Render()
	Resize(aspect float64, width, height int)
}

// Notifier receives the terminal notification when a session ends.
type Notifier interface {
	GameOver(finalScore int)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(finalScore int)

// GameOver calls f(finalScore).
func (f NotifierFunc) GameOver(finalScore int) {
	f(finalScore)
}

// Entity appearance, matching the classic green player and red cubes.
var (
	playerShape    = core.Box(1, 1, 1)
	playerMaterial = core.Material{Glyph: '█', Color: core.ColorBrightGreen}

	obstacleShape    = core.Box(1, 1, 1)
	obstacleMaterial = core.Material{Glyph: '▓', Color: core.ColorBrightRed}

	groundShape    = core.Plane(20, 1000)
	groundMaterial = core.Material{Glyph: '░', Color: core.ColorGray}
)
