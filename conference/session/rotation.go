package session

import (
	"context"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/log"
	"github.com/imtaco/xms-confctl/internal/utils"
)

// occupant is whatever fills a region: a caller or a region play.
type occupant struct {
	callID string
	playID string
	muted  bool
	hidden bool
}

func (o occupant) isCall() bool {
	return o.callID != ""
}

func (o occupant) id() string {
	if o.isCall() {
		return o.callID
	}
	return o.playID
}

// occupantAt prefers a caller when a caller and a play share region.
func (c *Controller) occupantAt(region int) (occupant, bool) {
	if leg, ok := c.calls.FindByRegion(region); ok {
		return occupant{callID: leg.CallID, muted: leg.AudioMuted, hidden: leg.VideoHidden}, true
	}
	if p, ok := c.plays.FindByRegion(region); ok {
		return occupant{playID: p.PlayID}, true
	}
	return occupant{}, false
}

// rotate shifts every on-screen occupant to the next region, scanning from
// the highest region down. The occupant wrapping from the last tile takes
// region 1, and whoever held region 1 before the wrap lands in region 2.
func (c *Controller) rotate(ctx context.Context) error {
	layout := c.state.Layout
	tiles := LayoutTileCount(layout)

	if c.state.CaptionsOn {
		c.removeAllCaptions(ctx)
	}

	c.regions.ResetProcessed()
	var displaced *occupant
	wrapped := false

	for cur := MaxRegions; cur >= 1; cur-- {
		if !c.regions.IsUsed(cur) || c.regions.IsProcessed(cur) {
			continue
		}
		if cur > tiles {
			c.logger.Debug("occupant off screen, not rotated", log.Region(cur), log.Int("layout", layout))
			continue
		}
		if cur == 1 && wrapped {
			if displaced != nil {
				c.place(ctx, *displaced, 2)
				c.syncRegionOverlays(ctx, 1)
				c.syncRegionOverlays(ctx, 2)
			}
			break
		}

		occ, ok := c.occupantAt(cur)
		if !ok {
			c.logger.Warn("region marked used without occupant", log.Region(cur))
			c.regions.Clear(cur)
			continue
		}
		if IsRegionMaxForLayout(cur, layout) {
			wrapped = true
			if first, ok := c.occupantAt(1); ok {
				displaced = &first
			}
		}
		c.move(ctx, occ, cur, NextRegion(cur, layout))
		c.regions.MarkProcessed(cur)
	}

	if c.state.CaptionsOn {
		c.applyAllCaptions(ctx)
	}
	rotations.Add(ctx, 1)
	c.logger.Info("regions rotated", log.Ints("used", c.regions.Used()))
	return nil
}

// move relocates occ, carrying its mute/hide overlays along.
func (c *Controller) move(ctx context.Context, occ occupant, from, to int) {
	if occ.isCall() {
		if occ.muted {
			c.overlay(ctx, deleteOverlay(from, overlayMicMute))
			c.overlay(ctx, c.overlays.showMicMute(to))
		}
		if occ.hidden {
			c.overlay(ctx, deleteOverlay(from, overlayBaghead))
			c.overlay(ctx, c.overlays.showBaghead(to))
		}
	}
	c.regions.Clear(from)
	c.assign(ctx, occ, to, conference.PartyUpdate{Region: utils.Ptr(to)})
}

// place puts the displaced region-1 occupant into region, restating its
// media directions. Overlays are fixed up by the caller.
func (c *Controller) place(ctx context.Context, occ occupant, region int) {
	upd := conference.PartyUpdate{
		Audio:  audioDirection(occ.muted),
		Video:  conference.DirectionSendRecv,
		Region: utils.Ptr(region),
	}
	c.assign(ctx, occ, region, upd)
}

func (c *Controller) assign(ctx context.Context, occ occupant, region int, upd conference.PartyUpdate) {
	c.regions.Mark(region)

	var err error
	if occ.isCall() {
		c.calls.SetRegion(occ.callID, region)
		err = c.issuer.UpdateParty(ctx, occ.callID, c.state.ConfID, upd)
	} else {
		c.plays.SetRegion(occ.playID, region)
		err = c.issuer.UpdatePlay(ctx, c.state.ConfID, occ.playID, region)
	}
	if err != nil {
		c.logger.Error("move to region failed",
			log.String("occupant", occ.id()),
			log.Region(region),
			log.Error(err))
	}
}

// syncRegionOverlays makes the mute/hide overlays of region match whoever
// occupies it now.
func (c *Controller) syncRegionOverlays(ctx context.Context, region int) {
	leg, ok := c.calls.FindByRegion(region)
	if ok && leg.AudioMuted {
		c.overlay(ctx, c.overlays.showMicMute(region))
	} else {
		c.overlay(ctx, deleteOverlay(region, overlayMicMute))
	}
	if ok && leg.VideoHidden {
		c.overlay(ctx, c.overlays.showBaghead(region))
	} else {
		c.overlay(ctx, deleteOverlay(region, overlayBaghead))
	}
}

func audioDirection(muted bool) conference.MediaDirection {
	if muted {
		return conference.DirectionRecvOnly
	}
	return conference.DirectionSendRecv
}
