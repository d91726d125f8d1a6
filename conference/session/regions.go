package session

// MaxRegions is the number of display regions a conference can have.
const MaxRegions = 9

const defaultLayout = 4

// RegionAllocator tracks which display regions are occupied, plus the
// scratch "processed" marks used during a rotation pass. Region 0 means
// "no region" everywhere and is never marked.
type RegionAllocator struct {
	used      [MaxRegions + 1]bool
	processed [MaxRegions + 1]bool
}

func NewRegionAllocator() *RegionAllocator {
	return &RegionAllocator{}
}

func validRegion(r int) bool {
	return r >= 1 && r <= MaxRegions
}

// NextOpenRegion marks and returns the lowest free region, or 0 when all
// regions are taken.
func (a *RegionAllocator) NextOpenRegion() int {
	for r := 1; r <= MaxRegions; r++ {
		if !a.used[r] {
			a.used[r] = true
			return r
		}
	}
	return 0
}

func (a *RegionAllocator) Mark(r int) {
	if validRegion(r) {
		a.used[r] = true
	}
}

func (a *RegionAllocator) Clear(r int) {
	if validRegion(r) {
		a.used[r] = false
	}
}

func (a *RegionAllocator) IsUsed(r int) bool {
	return validRegion(r) && a.used[r]
}

// Used lists occupied regions in ascending order.
func (a *RegionAllocator) Used() []int {
	out := []int{}
	for r := 1; r <= MaxRegions; r++ {
		if a.used[r] {
			out = append(out, r)
		}
	}
	return out
}

func (a *RegionAllocator) ResetProcessed() {
	a.processed = [MaxRegions + 1]bool{}
}

func (a *RegionAllocator) MarkProcessed(r int) {
	if validRegion(r) {
		a.processed[r] = true
	}
}

func (a *RegionAllocator) IsProcessed(r int) bool {
	return validRegion(r) && a.processed[r]
}

// Reset frees every region and clears the processed marks.
func (a *RegionAllocator) Reset() {
	a.used = [MaxRegions + 1]bool{}
	a.processed = [MaxRegions + 1]bool{}
}

// LayoutTileCount is the number of tiles shown by layout, 0 if unsupported.
func LayoutTileCount(layout int) int {
	switch layout {
	case 1, 2, 4, 6, 9:
		return layout
	default:
		return 0
	}
}

func IsRegionMaxForLayout(region, layout int) bool {
	return region > 0 && region == LayoutTileCount(layout)
}

// NextRegion is region+1, wrapping to 1 at the layout's last tile.
func NextRegion(region, layout int) int {
	if IsRegionMaxForLayout(region, layout) {
		return 1
	}
	return region + 1
}

// NextLayout cycles 4 -> 6 -> 9 -> 4. Any other value restarts at 4.
func NextLayout(layout int) int {
	switch layout {
	case 4:
		return 6
	case 6:
		return 9
	default:
		return 4
	}
}
