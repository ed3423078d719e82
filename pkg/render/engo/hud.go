// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/stardrift/go-stardrift/pkg/engine"
)

// messageDuration is how long a transient HUD message stays visible.
const messageDuration = 3 * time.Second

// HUDSystem draws the flight readouts: fuel, hull, shield, speed, and
// the hold-to-launch progress bar while the rocket sits on a surface.
type HUDSystem struct {
	hudEntities []*ecs.BasicEntity

	// Latest snapshot fields the HUD cares about
	rocket engine.RocketState
	status engine.GameStatus
	tick   uint64

	// Transient message line, written from event handlers
	messageMu    sync.Mutex
	message      string
	messageUntil time.Time

	font *common.Font

	hudColor     color.Color
	warningColor color.Color
	landedColor  color.Color
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{
		hudColor:     color.RGBA{255, 255, 255, 255},
		warningColor: color.RGBA{255, 64, 64, 255},
		landedColor:  color.RGBA{64, 255, 128, 255},
	}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for HUD system
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Update redraws the HUD from the latest snapshot
func (hud *HUDSystem) Update(dt float32) {
	hud.clearHUDEntities()

	hud.renderFlightStatus()
	hud.renderMessage()

	if hud.rocket.Landed {
		hud.renderTakeoffBar()
	}
	if hud.status == engine.GameStatusEnded {
		hud.renderGameOver()
	}
}

// ShowMessage displays a transient line above the status panel.
// Safe to call from event handlers on other goroutines.
func (hud *HUDSystem) ShowMessage(text string) {
	hud.messageMu.Lock()
	defer hud.messageMu.Unlock()
	hud.message = text
	hud.messageUntil = time.Now().Add(messageDuration)
}

// renderMessage renders the transient message if one is still live
func (hud *HUDSystem) renderMessage() {
	hud.messageMu.Lock()
	text := hud.message
	live := time.Now().Before(hud.messageUntil)
	hud.messageMu.Unlock()

	if !live || text == "" {
		return
	}
	hud.renderText(text, 10, 90, hud.landedColor)
}

// clearHUDEntities removes previous HUD entities
func (hud *HUDSystem) clearHUDEntities() {
	hud.hudEntities = hud.hudEntities[:0]
}

// renderFlightStatus renders the top-left readout panel
func (hud *HUDSystem) renderFlightStatus() {
	statusText := fmt.Sprintf(
		"Fuel: %.0f\nHull: %.0f\nShield: %.0f\nSpeed: %.1f",
		hud.rocket.Fuel,
		hud.rocket.Health,
		hud.rocket.Shield,
		hud.rocket.Velocity.Length(),
	)

	textColor := hud.hudColor
	if hud.rocket.Fuel < 100 || hud.rocket.Health < 25 {
		textColor = hud.warningColor
	}

	hud.renderText(statusText, 10, 10, textColor)
}

// renderTakeoffBar renders the hold-to-launch progress bar
func (hud *HUDSystem) renderTakeoffBar() {
	barWidth := float32(200)
	barHeight := float32(16)
	x := float32(engo.GameWidth())/2 - barWidth/2
	y := float32(engo.GameHeight()) - 60

	hud.renderRectOutline(x, y, barWidth, barHeight, hud.hudColor)
	fill := barWidth * float32(hud.rocket.TakeoffProgress)
	if fill > 0 {
		hud.renderRect(x, y, fill, barHeight, hud.landedColor)
	}

	hud.renderText("LANDED - hold space to launch", x, y-20, hud.landedColor)
}

// renderGameOver renders the end-of-session banner
func (hud *HUDSystem) renderGameOver() {
	hud.renderText(
		"GAME OVER",
		float32(engo.GameWidth())/2-60,
		float32(engo.GameHeight())/2,
		hud.warningColor,
	)
}

// renderText renders text at the specified position
func (hud *HUDSystem) renderText(text string, x, y float32, textColor color.Color) {
	basic := ecs.NewBasic()

	renderComponent := common.RenderComponent{
		Drawable: common.Text{
			Font: hud.font,
			Text: text,
		},
		Color: textColor,
	}

	spaceComponent := common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    float32(len(text) * 8),
		Height:   16,
	}

	hud.hudEntities = append(hud.hudEntities, &basic)

	_ = renderComponent
	_ = spaceComponent
}

// renderRect renders a filled rectangle
func (hud *HUDSystem) renderRect(x, y, width, height float32, rectColor color.Color) {
	basic := ecs.NewBasic()

	renderComponent := common.RenderComponent{
		Drawable: common.Rectangle{
			BorderWidth: 0,
			BorderColor: color.Transparent,
		},
		Color: rectColor,
	}

	spaceComponent := common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    width,
		Height:   height,
	}

	hud.hudEntities = append(hud.hudEntities, &basic)

	_ = renderComponent
	_ = spaceComponent
}

// renderRectOutline renders a rectangle outline
func (hud *HUDSystem) renderRectOutline(x, y, width, height float32, outlineColor color.Color) {
	basic := ecs.NewBasic()

	renderComponent := common.RenderComponent{
		Drawable: common.Rectangle{
			BorderWidth: 2,
			BorderColor: outlineColor,
		},
		Color: color.Transparent,
	}

	spaceComponent := common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    width,
		Height:   height,
	}

	hud.hudEntities = append(hud.hudEntities, &basic)

	_ = renderComponent
	_ = spaceComponent
}

// UpdateGameState feeds the HUD the fields it displays
func (hud *HUDSystem) UpdateGameState(state *engine.GameState) {
	hud.rocket = state.Rocket
	hud.status = state.Status
	hud.tick = state.Tick
}

// SetFont sets the font used for HUD text rendering
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}
