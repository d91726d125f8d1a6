package session

import (
	"context"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

func (c *Controller) onIncoming(ctx context.Context, ev *conference.Event) error {
	callID := ev.CallID()
	if callID == "" {
		return errors.New(ErrNotFound, "incoming call without id")
	}
	if _, ok := c.calls.FindByID(callID); ok {
		return errors.Newf(ErrPreconditionFailed, "call %s already admitted", callID)
	}

	if !c.state.Active() {
		if err := c.createConference(ctx); err != nil {
			c.hangup(ctx, callID)
			return err
		}
	}

	c.state.NumCallers++
	if c.state.NumCallers > MaxCallers {
		c.state.NumCallers--
		callsRejected.Add(ctx, 1)
		c.hangup(ctx, callID)
		return errors.Newf(ErrCapacityExceeded, "conference full, rejected call %s", callID)
	}

	if err := c.issuer.Answer(ctx, callID, c.dtmfMode); err != nil {
		c.state.NumCallers--
		if c.state.NumCallers == 0 {
			c.teardown(ctx)
		}
		return transportError(err, "answer call %s", callID)
	}
	c.calls.Add(callID, ev.Get(conference.FieldAppID))
	callsAdmitted.Add(ctx, 1)
	activeCallers.Add(ctx, 1)

	c.logger.Info("call admitted",
		log.CallID(callID),
		log.Int("callers", c.state.NumCallers))
	return nil
}

func (c *Controller) createConference(ctx context.Context) error {
	confID, err := c.issuer.CreateConference(ctx, conference.ConferenceOptions{
		Reserve:    0,
		MaxParties: maxParties,
		Layout:     defaultLayout,
		Resolution: c.cfg.Resolution,
	})
	if err != nil {
		return transportError(err, "create conference")
	}
	if confID == "" {
		return errors.New(ErrTransportFailure, "create conference returned no id")
	}

	c.state.ConfID = confID
	c.state.FirstCall = false
	conferencesCreated.Add(ctx, 1)
	c.logger.Info("conference created", log.ConfID(confID))
	return nil
}

func (c *Controller) hangup(ctx context.Context, callID string) {
	if err := c.issuer.Hangup(ctx, callID); err != nil {
		c.logger.Error("hangup failed", log.CallID(callID), log.Error(err))
	}
}

func (c *Controller) onAnswered(ctx context.Context, ev *conference.Event) error {
	callID := ev.CallID()
	leg, ok := c.calls.FindByID(callID)
	if !ok {
		return errors.Newf(ErrNotFound, "answered unknown call %s", callID)
	}
	if leg.Region != 0 {
		return errors.Newf(ErrPreconditionFailed, "call %s already in region %d", callID, leg.Region)
	}

	region := c.regions.NextOpenRegion()
	if region == 0 {
		return errors.Newf(ErrResourceExhausted, "no open region for call %s", callID)
	}
	c.calls.SetRegion(callID, region)

	if err := c.issuer.AddParty(ctx, callID, c.state.ConfID, region); err != nil {
		c.calls.ClearRegion(callID)
		c.regions.Clear(region)
		return transportError(err, "add call %s to region %d", callID, region)
	}

	if c.state.CaptionsOn {
		c.showCaption(ctx, callID, region)
	}
	c.logger.Info("call joined conference", log.CallID(callID), log.Region(region))
	return nil
}

// onHangup ignores calls that were never admitted (rejected callers) or
// were already dropped by a grand reset.
func (c *Controller) onHangup(ctx context.Context, ev *conference.Event) error {
	callID := ev.CallID()
	leg, ok := c.calls.FindByID(callID)
	if !ok {
		return errors.Newf(ErrNotFound, "hangup of unknown call %s", callID)
	}

	c.state.NumCallers--
	activeCallers.Add(ctx, -1)

	if region := leg.Region; region > 0 {
		if leg.AudioMuted {
			c.overlay(ctx, deleteOverlay(region, overlayMicMute))
		}
		if leg.VideoHidden {
			c.overlay(ctx, deleteOverlay(region, overlayBaghead))
		}
		c.regions.Clear(region)
		if c.state.CaptionsOn {
			c.overlay(ctx, deleteOverlay(region, overlayCaption))
		}
	}
	c.calls.Remove(callID)
	c.logger.Info("call left", log.CallID(callID), log.Int("callers", c.state.NumCallers))

	if c.state.NumCallers <= 0 {
		c.teardown(ctx)
	}
	return nil
}

// teardown runs when the last caller has gone.
func (c *Controller) teardown(ctx context.Context) {
	if c.state.ScrollingOverlayOn {
		c.overlay(ctx, c.overlays.deleteTicker(fullScreen))
		c.state.ScrollingOverlayOn = false
	}
	if c.state.SlideShowOn {
		c.overlay(ctx, deleteOverlay(fullScreen, overlaySlide))
		c.state.SlideShowOn = false
	}
	if op := c.state.ExclusiveOp; op != "" {
		if err := c.issuer.Stop(ctx, c.state.ConfID, op); err != nil {
			c.logger.Warn("stop exclusive operation failed", log.String("op", op), log.Error(err))
		}
	}
	c.destroyConference(ctx)
	c.resetState()
}

func (c *Controller) destroyConference(ctx context.Context) {
	confID := c.state.ConfID
	if confID == "" {
		return
	}
	if err := c.issuer.DestroyConference(ctx, confID); err != nil {
		c.logger.Error("destroy conference failed", log.ConfID(confID), log.Error(err))
		return
	}
	conferencesDestroyed.Add(ctx, 1)
	c.logger.Info("conference destroyed", log.ConfID(confID))
}

// Reset stops all plays, destroys the conference, hangs up every call and
// returns the session to idle.
func (c *Controller) Reset(ctx context.Context) {
	for _, p := range c.plays.All() {
		if err := c.issuer.Stop(ctx, p.ConfID, p.PlayID); err != nil {
			c.logger.Warn("stop play failed", log.String("play_id", p.PlayID), log.Error(err))
		}
	}
	c.destroyConference(ctx)
	for _, leg := range c.calls.All() {
		c.hangup(ctx, leg.CallID)
	}
	activeCallers.Add(ctx, -int64(c.calls.Len()))
	grandResets.Add(ctx, 1)
	c.resetState()
	c.logger.Info("session reset")
}

func (c *Controller) resetState() {
	c.calls.Clear()
	c.plays.Clear()
	c.regions.Reset()
	c.state = initialState()
}
