package session

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RegionAllocatorSuite struct {
	suite.Suite
	alloc *RegionAllocator
}

func TestRegionAllocatorSuite(t *testing.T) {
	suite.Run(t, new(RegionAllocatorSuite))
}

func (s *RegionAllocatorSuite) SetupTest() {
	s.alloc = NewRegionAllocator()
}

func (s *RegionAllocatorSuite) TestNextOpenRegionAscending() {
	for want := 1; want <= MaxRegions; want++ {
		s.Equal(want, s.alloc.NextOpenRegion())
	}
	s.Equal(0, s.alloc.NextOpenRegion())
}

func (s *RegionAllocatorSuite) TestReusesLowestFreed() {
	for i := 0; i < 4; i++ {
		s.alloc.NextOpenRegion()
	}
	s.alloc.Clear(2)
	s.alloc.Clear(3)
	s.Equal(2, s.alloc.NextOpenRegion())
	s.Equal([]int{1, 2, 4}, s.alloc.Used())
}

func (s *RegionAllocatorSuite) TestOutOfRangeIgnored() {
	s.alloc.Mark(0)
	s.alloc.Mark(10)
	s.alloc.MarkProcessed(-1)
	s.Empty(s.alloc.Used())
	s.False(s.alloc.IsUsed(0))
	s.False(s.alloc.IsProcessed(-1))
}

func (s *RegionAllocatorSuite) TestProcessedMarks() {
	s.alloc.Mark(3)
	s.alloc.MarkProcessed(3)
	s.True(s.alloc.IsProcessed(3))

	s.alloc.ResetProcessed()
	s.False(s.alloc.IsProcessed(3))
	s.True(s.alloc.IsUsed(3))

	s.alloc.MarkProcessed(3)
	s.alloc.Reset()
	s.False(s.alloc.IsUsed(3))
	s.False(s.alloc.IsProcessed(3))
}

func (s *RegionAllocatorSuite) TestLayoutHelpers() {
	for _, l := range []int{1, 2, 4, 6, 9} {
		s.Equal(l, LayoutTileCount(l))
		s.True(IsRegionMaxForLayout(l, l))
		s.Equal(1, NextRegion(l, l))
	}
	s.Equal(0, LayoutTileCount(5))
	s.False(IsRegionMaxForLayout(0, 5))
	s.Equal(4, NextRegion(3, 4))
	s.Equal(5, NextRegion(4, 6))
}

func (s *RegionAllocatorSuite) TestNextLayout() {
	s.Equal(6, NextLayout(4))
	s.Equal(9, NextLayout(6))
	s.Equal(4, NextLayout(9))
	s.Equal(4, NextLayout(2))
}
