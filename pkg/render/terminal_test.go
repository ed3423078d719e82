package render

import (
	"strings"
	"testing"

	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

func newTestTerminal() *TerminalRenderer {
	r := NewTerminalRenderer(21, 11, 10)
	r.Clear()
	return r
}

func TestTerminalRenderer_WorldToScreen(t *testing.T) {
	r := newTestTerminal()

	tests := []struct {
		name  string
		pos   physics.Vector2D
		wantX int
		wantY int
	}{
		{"center", physics.Vector2D{}, 10, 5},
		{"right of center", physics.Vector2D{X: 50}, 15, 5},
		{"above center", physics.Vector2D{Y: -30}, 10, 2},
		{"off screen", physics.Vector2D{X: 1e6}, 100010, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.worldToScreen(tt.pos)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("worldToScreen(%v) = (%d, %d), expected (%d, %d)", tt.pos, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTerminalRenderer_CelestialSymbols(t *testing.T) {
	r := newTestTerminal()

	tests := []struct {
		class  entity.BodyClass
		symbol rune
	}{
		{entity.Star, '*'},
		{entity.Planet, 'O'},
		{entity.Asteroid, 'o'},
		{entity.Station, '#'},
		{entity.BlackHole, '@'},
	}

	for _, tt := range tests {
		r.Clear()
		c := entity.NewCelestial(entity.GenerateID(), "body", tt.class, physics.Vector2D{}, 1e5, 20)
		r.RenderCelestial(c)

		if r.buffer[5][10] != tt.symbol {
			t.Errorf("class %v drew %q, expected %q", tt.class, r.buffer[5][10], tt.symbol)
		}
	}
}

func TestTerminalRenderer_RocketStates(t *testing.T) {
	r := newTestTerminal()
	rocket := entity.NewRocket(entity.GenerateID(), physics.Vector2D{}, entity.DefaultRocketStats(), physics.LandingState{})

	r.RenderRocket(rocket)
	if r.buffer[5][10] != '^' {
		t.Errorf("coasting rocket drew %q, expected '^'", r.buffer[5][10])
	}

	r.Clear()
	rocket.Thrusting = true
	r.RenderRocket(rocket)
	if r.buffer[5][10] != 'A' {
		t.Errorf("thrusting rocket drew %q, expected 'A'", r.buffer[5][10])
	}
}

func TestTerminalRenderer_OffScreenEntitiesIgnored(t *testing.T) {
	r := newTestTerminal()

	c := entity.NewCelestial(entity.GenerateID(), "far", entity.Star, physics.Vector2D{X: 1e6}, 1e5, 20)
	r.RenderCelestial(c)

	if strings.Contains(r.Frame(), "*") {
		t.Error("off-screen body drawn")
	}
}

func TestTerminalRenderer_TrajectoryNeverOverdraws(t *testing.T) {
	r := newTestTerminal()

	c := entity.NewCelestial(entity.GenerateID(), "sun", entity.Star, physics.Vector2D{}, 1e5, 20)
	r.RenderCelestial(c)
	r.RenderTrajectory([]physics.Vector2D{{}, {X: 50}})

	if r.buffer[5][10] != '*' {
		t.Errorf("trajectory overdrew the star: %q", r.buffer[5][10])
	}
	if r.buffer[5][15] != '\'' {
		t.Errorf("trajectory point not drawn: %q", r.buffer[5][15])
	}
}

func TestTerminalRenderer_FrameBorders(t *testing.T) {
	r := newTestTerminal()
	frame := r.Frame()

	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	if len(lines) != 13 { // 11 rows + 2 borders
		t.Fatalf("frame has %d lines, expected 13", len(lines))
	}
	if lines[0] != "+"+strings.Repeat("-", 21)+"+" {
		t.Errorf("bad top border: %q", lines[0])
	}
	for i, line := range lines[1:12] {
		if len(line) != 23 || line[0] != '|' || line[22] != '|' {
			t.Errorf("row %d malformed: %q", i, line)
		}
	}
}

func TestTerminalRenderer_SetCenterFollowsCamera(t *testing.T) {
	r := newTestTerminal()
	r.SetCenter(physics.Vector2D{X: 1000})

	c := entity.NewCelestial(entity.GenerateID(), "sun", entity.Star, physics.Vector2D{X: 1000}, 1e5, 20)
	r.RenderCelestial(c)

	if r.buffer[5][10] != '*' {
		t.Error("camera center not applied")
	}
}
