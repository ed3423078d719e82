package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/stardrift/go-stardrift/pkg/engine"
	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// TcellDisplay draws game state snapshots onto a tcell screen with a
// one-line HUD. The camera follows the rocket. It consumes
// engine.GameState rather than live entities, so drawing never holds
// the entity lock.
type TcellDisplay struct {
	screen tcell.Screen
	scale  float64
}

// NewTcellDisplay wraps an initialized tcell screen. Callers own the
// screen lifecycle; tests inject a SimulationScreen.
func NewTcellDisplay(screen tcell.Screen, scale float64) *TcellDisplay {
	return &TcellDisplay{
		screen: screen,
		scale:  scale,
	}
}

var (
	styleDefault    = tcell.StyleDefault
	styleStar       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlanet     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAsteroid   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStation    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBlackHole  = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleRocket     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShot       = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleTrajectory = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
)

// Render draws one frame from a state snapshot.
func (d *TcellDisplay) Render(state *engine.GameState) {
	d.screen.Clear()

	center := state.Rocket.Position
	for _, p := range state.Rocket.Trajectory {
		d.plot(center, p, '\'', styleTrajectory)
	}
	for _, c := range state.Celestials {
		symbol, style := celestialGlyph(c.Class)
		d.plot(center, c.Position, symbol, style)
	}
	for _, p := range state.Projectiles {
		d.plot(center, p.Position, '.', styleShot)
	}
	for _, en := range state.Enemies {
		d.plot(center, en.Position, 'E', styleEnemy)
	}
	if state.Rocket.Active {
		symbol := '^'
		if state.Rocket.Landed {
			symbol = 'v'
		} else if state.Rocket.Thrusting {
			symbol = 'A'
		}
		d.plot(center, center, symbol, styleRocket)
	}

	d.drawHUD(state)
	d.screen.Show()
}

func celestialGlyph(class entity.BodyClass) (rune, tcell.Style) {
	switch class {
	case entity.Star:
		return '*', styleStar
	case entity.Planet:
		return 'O', stylePlanet
	case entity.Asteroid:
		return 'o', styleAsteroid
	case entity.Station:
		return '#', styleStation
	case entity.BlackHole:
		return '@', styleBlackHole
	default:
		return '?', styleDefault
	}
}

func (d *TcellDisplay) plot(center, pos physics.Vector2D, symbol rune, style tcell.Style) {
	width, height := d.screen.Size()
	x := int((pos.X-center.X)/d.scale) + width/2
	y := int((pos.Y-center.Y)/d.scale) + height/2

	// Row 0 is the HUD.
	if x >= 0 && x < width && y >= 1 && y < height {
		d.screen.SetContent(x, y, symbol, nil, style)
	}
}

func (d *TcellDisplay) drawHUD(state *engine.GameState) {
	width, _ := d.screen.Size()

	status := fmt.Sprintf(" FUEL %4.0f  HULL %3.0f  SHLD %3.0f  SPD %5.1f  TICK %d",
		state.Rocket.Fuel,
		state.Rocket.Health,
		state.Rocket.Shield,
		state.Rocket.Velocity.Length(),
		state.Tick,
	)
	if state.Rocket.Landed {
		status += fmt.Sprintf("  LANDED (hold space %3.0f%%)", state.Rocket.TakeoffProgress*100)
	}
	if state.Status == engine.GameStatusEnded {
		status += "  GAME OVER"
	}

	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		d.screen.SetContent(x, 0, ch, nil, styleHUD)
	}
}

// IntentFromKey folds a key event into the running control intent and
// reports whether the simulation should fire or quit. Movement keys
// toggle on key-down and are cleared by the caller's key-up handling
// or per-frame reset, matching terminal key repeat behavior.
func IntentFromKey(ev *tcell.EventKey, intent physics.ControlIntent) (physics.ControlIntent, bool, bool) {
	fire := false
	quit := false

	switch ev.Key() {
	case tcell.KeyUp:
		intent.Thrust = true
	case tcell.KeyDown:
		intent.Brake = true
	case tcell.KeyLeft:
		intent.RotateCCW = true
	case tcell.KeyRight:
		intent.RotateCW = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			intent.Thrust = true
		case 's':
			intent.Brake = true
		case 'a':
			intent.RotateCCW = true
		case 'd':
			intent.RotateCW = true
		case ' ':
			intent.TakeoffHold = true
		case 'f':
			fire = true
		case 'q':
			quit = true
		}
	}

	return intent, fire, quit
}
