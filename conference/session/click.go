package session

import (
	"context"
	"strconv"
	"strings"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

const clickMarker = "CLICK"

const (
	clickMute = "mute"
	clickHide = "hide"
)

// Usernames allowed to act on any region.
var controllerNames = map[string]bool{
	"c":          true,
	"controller": true,
	"ctrlr":      true,
}

// Click is a pointer action from a caller's client: CLICK <x> <y> <function> <username>.
type Click struct {
	X, Y     int
	Function string
	Username string
}

func ParseClick(content string) (Click, error) {
	f := strings.Fields(content)
	if len(f) < 5 || f[0] != clickMarker {
		return Click{}, errors.Newf(ErrPreconditionFailed, "malformed click %q", content)
	}
	x, errX := strconv.Atoi(f[1])
	y, errY := strconv.Atoi(f[2])
	if errX != nil || errY != nil {
		return Click{}, errors.Newf(ErrPreconditionFailed, "bad click position %q", content)
	}
	return Click{X: x, Y: y, Function: f[3], Username: f[4]}, nil
}

func (c *Controller) onInfo(ctx context.Context, ev *conference.Event) error {
	content := ev.Get(conference.FieldContent)
	if !strings.Contains(content, clickMarker) {
		c.logger.Debug("info without click", log.CallID(ev.CallID()), log.String("content", content))
		return nil
	}
	if err := c.requireActive(); err != nil {
		return err
	}

	click, err := ParseClick(strings.TrimSpace(content[strings.Index(content, clickMarker):]))
	if err != nil {
		return err
	}

	region := FindClickedRegion(c.cfg.Resolution, c.state.Layout, click.X, click.Y)
	if region == 0 {
		return errors.Newf(ErrNotFound, "click (%d,%d) outside layout %d", click.X, click.Y, c.state.Layout)
	}
	leg, ok := c.calls.FindByRegion(region)
	if !ok {
		return errors.Newf(ErrNotFound, "no caller in region %d", region)
	}
	if !controllerNames[click.Username] && ev.CallID() != leg.CallID {
		return errors.Newf(ErrUnauthorized, "%s may not %s region %d", click.Username, click.Function, region)
	}

	switch click.Function {
	case clickMute:
		c.toggleMute(ctx, leg)
	case clickHide:
		c.toggleHide(ctx, leg)
	default:
		return errors.Newf(ErrPreconditionFailed, "unknown click function %q", click.Function)
	}
	clicksApplied.Add(ctx, 1)
	return nil
}

func (c *Controller) toggleMute(ctx context.Context, leg CallLeg) {
	muted := !leg.AudioMuted
	if muted {
		c.overlay(ctx, c.overlays.showMicMute(leg.Region))
	} else {
		c.overlay(ctx, deleteOverlay(leg.Region, overlayMicMute))
	}
	c.calls.SetAudioMuted(leg.CallID, muted)

	err := c.issuer.UpdateParty(ctx, leg.CallID, c.state.ConfID, conference.PartyUpdate{
		Audio: audioDirection(muted),
		Video: conference.DirectionSendRecv,
	})
	if err != nil {
		c.logger.Error("update audio direction failed", log.CallID(leg.CallID), log.Error(err))
	}
	c.logger.Info("caller mute toggled", log.CallID(leg.CallID), log.Bool("muted", muted))
}

func (c *Controller) toggleHide(ctx context.Context, leg CallLeg) {
	hidden := !leg.VideoHidden
	if hidden {
		c.overlay(ctx, c.overlays.showBaghead(leg.Region))
	} else {
		c.overlay(ctx, deleteOverlay(leg.Region, overlayBaghead))
	}
	c.calls.SetVideoHidden(leg.CallID, hidden)
	c.logger.Info("caller video hide toggled", log.CallID(leg.CallID), log.Bool("hidden", hidden))
}
