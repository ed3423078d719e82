// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"

	"github.com/stardrift/go-stardrift/pkg/entity"
)

// AssetManager builds and caches the procedurally generated sprites
// used by the renderer. There are no image files on disk; every
// drawable is rasterized from a pixel pattern at load time.
type AssetManager struct {
	// Rocket sprites: coasting and with the engine lit
	rocketSprite common.Drawable
	thrustSprite common.Drawable

	// Celestial sprites by body class
	celestialSprites map[entity.BodyClass]common.Drawable

	enemySprite common.Drawable

	// Shot sprites by kind
	shotSprites map[string]common.Drawable

	// UI textures
	backgroundTexture common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		celestialSprites: make(map[entity.BodyClass]common.Drawable),
		shotSprites:      make(map[string]common.Drawable),
	}
}

// LoadAssets rasterizes all sprites. Requires a live OpenGL context.
func (am *AssetManager) LoadAssets() error {
	if err := am.loadRocketSprites(); err != nil {
		return err
	}

	if err := am.loadCelestialSprites(); err != nil {
		return err
	}

	if err := am.loadCombatSprites(); err != nil {
		return err
	}

	return am.loadUIAssets()
}

// loadRocketSprites creates the player craft sprites
func (am *AssetManager) loadRocketSprites() error {
	// Coasting: narrow arrow pointing up
	am.rocketSprite = am.createSprite(12, 16, [][]int{
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 0},
		{1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
		{1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	})

	// Thrusting: same hull with an exhaust plume
	am.thrustSprite = am.createSprite(12, 16, [][]int{
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 0},
		{1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1},
		{1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 1},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	})

	return nil
}

// loadCelestialSprites creates one sprite per body class
func (am *AssetManager) loadCelestialSprites() error {
	disc := [][]int{
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	}

	// Star: disc with a corona of spikes
	am.celestialSprites[entity.Star] = am.createSprite(16, 16, [][]int{
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	})

	am.celestialSprites[entity.Planet] = am.createSprite(12, 12, disc)

	// Asteroid: lumpy blob
	am.celestialSprites[entity.Asteroid] = am.createSprite(8, 8, [][]int{
		{0, 0, 1, 1, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 0, 0, 0},
	})

	// Station: boxy hull with docking arms
	am.celestialSprites[entity.Station] = am.createSprite(12, 12, [][]int{
		{1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0},
		{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1},
		{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1},
		{0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1},
	})

	// Black hole: hollow ring
	am.celestialSprites[entity.BlackHole] = am.createSprite(12, 12, [][]int{
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0},
		{1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1},
		{0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	})

	return nil
}

// loadCombatSprites creates the enemy and shot sprites
func (am *AssetManager) loadCombatSprites() error {
	// Enemy: diamond hull
	am.enemySprite = am.createSprite(12, 12, [][]int{
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	})

	// Blaster bolt: small dot
	am.shotSprites["blaster"] = am.createSprite(4, 4, [][]int{
		{0, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 1, 1, 0},
	})

	// Enemy fire: slightly elongated bolt
	am.shotSprites["hostile"] = am.createSprite(4, 6, [][]int{
		{0, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 1, 1, 0},
	})

	return nil
}

// loadUIAssets loads UI-related assets
func (am *AssetManager) loadUIAssets() error {
	// Sparse starfield background
	backgroundPattern := make([][]int, 64)
	for i := range backgroundPattern {
		backgroundPattern[i] = make([]int, 64)
		if i%8 == 0 && (i/8)%3 == 0 {
			backgroundPattern[i][i%64] = 1
		}
	}

	am.backgroundTexture = am.createSprite(64, 64, backgroundPattern)

	return nil
}

// createSprite creates a drawable from a 2D pixel pattern
func (am *AssetManager) createSprite(width, height int, pattern [][]int) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// GetRocketSprite returns the player craft sprite, lit when thrusting
func (am *AssetManager) GetRocketSprite(thrusting bool) common.Drawable {
	if thrusting {
		return am.thrustSprite
	}
	return am.rocketSprite
}

// GetCelestialSprite returns the sprite for a body class
func (am *AssetManager) GetCelestialSprite(class entity.BodyClass) common.Drawable {
	if sprite, exists := am.celestialSprites[class]; exists {
		return sprite
	}
	return am.celestialSprites[entity.Planet] // Default fallback
}

// GetEnemySprite returns the enemy ship sprite
func (am *AssetManager) GetEnemySprite() common.Drawable {
	return am.enemySprite
}

// GetShotSprite returns the sprite for a projectile
func (am *AssetManager) GetShotSprite(hostile bool) common.Drawable {
	key := "blaster"
	if hostile {
		key = "hostile"
	}
	if sprite, exists := am.shotSprites[key]; exists {
		return sprite
	}
	return am.shotSprites["blaster"] // Default fallback
}

// GetBackgroundTexture returns the background texture
func (am *AssetManager) GetBackgroundTexture() common.Drawable {
	return am.backgroundTexture
}
