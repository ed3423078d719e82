package render

import (
	"fmt"
	"strings"

	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
}

// NewTerminalRenderer creates a new terminal renderer with the specified dimensions
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := int((pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2)
	return screenX, screenY
}

func (r *TerminalRenderer) plot(x, y int, symbol rune) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = symbol
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Print("\033[H\033[2J")
	fmt.Print(r.Frame())
}

// Frame returns the current buffer as a bordered string.
func (r *TerminalRenderer) Frame() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", r.width) + "+\n"

	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		for x := range r.buffer[y] {
			sb.WriteRune(r.buffer[y][x])
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// RenderRocket implements entity.Renderer
func (r *TerminalRenderer) RenderRocket(rocket *entity.Rocket) {
	x, y := r.worldToScreen(rocket.Body.Position)
	symbol := '^'
	if rocket.Landed() {
		symbol = 'v'
	} else if rocket.Thrusting {
		symbol = 'A'
	}
	r.plot(x, y, symbol)
}

// RenderCelestial implements entity.Renderer
func (r *TerminalRenderer) RenderCelestial(body *entity.Celestial) {
	x, y := r.worldToScreen(body.Body.Position)
	r.plot(x, y, celestialSymbol(body.Class))
}

func celestialSymbol(class entity.BodyClass) rune {
	switch class {
	case entity.Star:
		return '*'
	case entity.Planet:
		return 'O'
	case entity.Asteroid:
		return 'o'
	case entity.Station:
		return '#'
	case entity.BlackHole:
		return '@'
	default:
		return '?'
	}
}

// RenderEnemy implements entity.Renderer
func (r *TerminalRenderer) RenderEnemy(enemy *entity.Enemy) {
	x, y := r.worldToScreen(enemy.Body.Position)
	r.plot(x, y, 'E')
}

// RenderProjectile implements entity.Renderer
func (r *TerminalRenderer) RenderProjectile(projectile *entity.Projectile) {
	x, y := r.worldToScreen(projectile.Body.Position)
	r.plot(x, y, '.')
}

// RenderTrajectory implements entity.Renderer
func (r *TerminalRenderer) RenderTrajectory(points []physics.Vector2D) {
	for _, p := range points {
		x, y := r.worldToScreen(p)
		if x >= 0 && x < r.width && y >= 0 && y < r.height && r.buffer[y][x] == ' ' {
			r.buffer[y][x] = '\''
		}
	}
}
