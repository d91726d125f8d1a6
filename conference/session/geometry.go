package session

type canvas struct {
	width, height float64
}

var resolutions = map[string]canvas{
	"cif":  {352, 240},
	"vga":  {640, 480},
	"720p": {1280, 720},
}

// tile bounds are fractions of the canvas, inclusive on every edge; the
// first tile containing a point wins on shared edges.
type tile struct {
	region         int
	x0, y0, x1, y1 float64
}

const (
	third     = .33
	twoThirds = .66
	half      = .50
)

// Tiles are numbered down each column before moving right.
var layoutTiles = map[int][]tile{
	1: {
		{1, 0, 0, 1, 1},
	},
	2: {
		{1, 0, 0, half, 1},
		{2, half, 0, 1, 1},
	},
	4: {
		{1, 0, 0, half, half},
		{2, 0, half, half, 1},
		{3, half, 0, 1, half},
		{4, half, half, 1, 1},
	},
	6: {
		{1, 0, 0, twoThirds, twoThirds},
		{2, twoThirds, 0, 1, third},
		{3, twoThirds, third, 1, twoThirds},
		{4, twoThirds, twoThirds, 1, 1},
		{5, third, twoThirds, twoThirds, 1},
		{6, 0, twoThirds, third, 1},
	},
	9: {
		{1, 0, 0, third, third},
		{2, 0, third, third, twoThirds},
		{3, 0, twoThirds, third, 1},
		{4, third, 0, twoThirds, third},
		{5, third, third, twoThirds, twoThirds},
		{6, third, twoThirds, twoThirds, 1},
		{7, twoThirds, 0, 1, third},
		{8, twoThirds, third, 1, twoThirds},
		{9, twoThirds, twoThirds, 1, 1},
	},
}

// FindClickedRegion maps a pixel position on a canvas of the given
// resolution to the region under it, or 0 when the resolution or layout is
// unknown or the point lies outside the canvas.
func FindClickedRegion(resolution string, layout, x, y int) int {
	c, ok := resolutions[resolution]
	if !ok {
		return 0
	}
	px, py := float64(x), float64(y)
	for _, t := range layoutTiles[layout] {
		if px >= t.x0*c.width && px <= t.x1*c.width &&
			py >= t.y0*c.height && py <= t.y1*c.height {
			return t.region
		}
	}
	return 0
}
