package gamearea

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// Terrain palette, one entry per elevation band
var terrainCells = []graphics.Cell{
	graphics.NewCell('~', tcell.NewRGBColor(122, 162, 247), tcell.NewRGBColor(26, 40, 80)),
	graphics.NewCell('.', tcell.NewRGBColor(224, 175, 104), tcell.NewRGBColor(70, 60, 40)),
	graphics.NewCell(',', tcell.NewRGBColor(158, 206, 106), tcell.NewRGBColor(40, 70, 35)),
	graphics.NewCell('^', tcell.NewRGBColor(169, 177, 214), tcell.NewRGBColor(65, 72, 104)),
	graphics.NewCell('A', tcell.NewRGBColor(192, 202, 245), tcell.NewRGBColor(90, 96, 130)),
}

var treeCell = graphics.NewCell('T', tcell.NewRGBColor(115, 218, 202), tcell.ColorDefault)

// GenerateTerrain builds a deterministic two-layer heightmap area
// Layer 0 holds ground, layer 1 holds sparse trees on the surface level
func GenerateTerrain(size core.Size3D, seed int64) (*MemoryArea, error) {
	a, err := NewMemoryArea(size, 2)
	if err != nil {
		return nil, err
	}
	if size.Width == 0 || size.Height == 0 || size.Levels == 0 {
		return a, nil
	}

	rng := rand.New(rand.NewSource(seed))
	heights := smoothHeights(size.Width, size.Height, size.Levels, rng)

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			h := heights[y*size.Width+x]
			for z := 0; z <= h; z++ {
				band := z * len(terrainCells) / size.Levels
				b := NewBlock(terrainCells[band])
				if z == h && band == 2 && rng.Intn(12) == 0 {
					b.Layers = append(b.Layers, treeCell)
				}
				if err := a.SetBlockAt(core.Point3D{X: x, Y: y, Z: z}, b); err != nil {
					return nil, err
				}
			}
		}
	}
	return a, nil
}

// smoothHeights produces a height per column in [0, levels) by box-blurring noise
func smoothHeights(w, h, levels int, rng *rand.Rand) []int {
	noise := make([]float64, w*h)
	for i := range noise {
		noise[i] = rng.Float64()
	}

	const radius = 3
	out := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum, n := 0.0, 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					sum += noise[ny*w+nx]
					n++
				}
			}
			// Blur compresses toward 0.5; stretch back over the level range
			v := (sum/float64(n)-0.5)*3 + 0.5
			lvl := int(v * float64(levels))
			if lvl < 0 {
				lvl = 0
			}
			if lvl >= levels {
				lvl = levels - 1
			}
			out[y*w+x] = lvl
		}
	}
	return out
}
