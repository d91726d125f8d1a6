package session

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

func (c *Controller) exclusiveGuard() error {
	if op := c.state.ExclusiveOp; op != "" {
		return errors.Newf(ErrPreconditionFailed, "exclusive operation %s outstanding", op)
	}
	return nil
}

func (c *Controller) mediaGuard(clip Clip) error {
	if err := c.exclusiveGuard(); err != nil {
		return err
	}
	if !c.media.Exists(clip) {
		return errors.Newf(ErrPreconditionFailed, "media %s missing", clip)
	}
	return nil
}

func (c *Controller) startRecording(ctx context.Context) error {
	if err := c.exclusiveGuard(); err != nil {
		return err
	}

	id, err := c.issuer.RecordConference(ctx, c.state.ConfID, c.media.RecordRequest())
	if err != nil {
		return transportError(err, "record conference")
	}
	if id == "" {
		return errors.New(ErrTransportFailure, "record returned no transaction id")
	}

	c.state.ExclusiveOp = id
	c.state.RecordInProgress = true
	recordings.Add(ctx, 1)

	c.overlay(ctx, c.overlays.showRecordingDot(fullScreen))
	c.notifyAll(ctx, c.cfg.Resolution+" Conference now being recorded...")
	c.logger.Info("recording started", log.String("op", id))
	return nil
}

func (c *Controller) stopRecording(ctx context.Context) error {
	if !c.state.RecordInProgress {
		return errors.New(ErrPreconditionFailed, "no recording in progress")
	}
	if c.state.ExclusiveOp == "" {
		c.state.RecordInProgress = false
		return errors.New(ErrPreconditionFailed, "recording operation already cleared")
	}
	if err := c.issuer.Stop(ctx, c.state.ConfID, c.state.ExclusiveOp); err != nil {
		return transportError(err, "stop recording %s", c.state.ExclusiveOp)
	}
	c.state.RecordInProgress = false
	return nil
}

func (c *Controller) onEndRecord(ctx context.Context, _ *conference.Event) error {
	c.state.ExclusiveOp = ""
	c.state.RecordInProgress = false
	if err := c.requireActive(); err != nil {
		return err
	}
	c.notifyAll(ctx, c.cfg.Resolution+" Conference recording terminated")
	c.overlay(ctx, deleteOverlay(fullScreen, overlayRecDot))
	c.logger.Info("recording ended")
	return nil
}

// playInRegion starts clip in the lowest free region, like a participant.
func (c *Controller) playInRegion(ctx context.Context, clip Clip, repeat string) error {
	if err := c.mediaGuard(clip); err != nil {
		return err
	}
	region := c.regions.NextOpenRegion()
	if region == 0 {
		return errors.Newf(ErrResourceExhausted, "no open region for %s", clip)
	}

	id, err := c.issuer.PlayIntoConference(ctx, c.state.ConfID, c.media.PlayRequest(clip, region, repeat))
	if err == nil && id == "" {
		err = errors.New(ErrTransportFailure, "play returned no transaction id")
	}
	if err != nil {
		c.regions.Clear(region)
		return transportError(err, "play %s in region %d", clip, region)
	}

	c.plays.Add(c.state.ConfID, id, region)
	if c.state.CaptionsOn {
		c.overlay(ctx, c.overlays.showVideoLabel(region))
	}
	playsStarted.Add(ctx, 1, metric.WithAttributes(attribute.String("clip", string(clip))))
	c.logger.Info("region play started", log.String("play_id", id), log.Region(region))
	return nil
}

// playFullScreen covers the whole canvas and becomes the exclusive operation.
func (c *Controller) playFullScreen(ctx context.Context, clip Clip, repeat string, label bool) error {
	if err := c.mediaGuard(clip); err != nil {
		return err
	}

	id, err := c.issuer.PlayIntoConference(ctx, c.state.ConfID, c.media.PlayRequest(clip, fullScreen, repeat))
	if err == nil && id == "" {
		err = errors.New(ErrTransportFailure, "play returned no transaction id")
	}
	if err != nil {
		return transportError(err, "play %s full screen", clip)
	}

	c.state.ExclusiveOp = id
	if label && c.state.CaptionsOn {
		c.overlay(ctx, c.overlays.showVideoLabel(fullScreen))
	}
	playsStarted.Add(ctx, 1, metric.WithAttributes(attribute.String("clip", string(clip))))
	c.logger.Info("full screen play started", log.String("play_id", id))
	return nil
}

func (c *Controller) promoTakeover(ctx context.Context) error {
	if err := c.mediaGuard(ClipPromo); err != nil {
		return err
	}
	c.stopRegionPlays(ctx)
	return c.playFullScreen(ctx, ClipPromo, repeatInfinite, false)
}

// stopRegionPlays only asks the server to stop; entries leave the registry
// when their end_play arrives.
func (c *Controller) stopRegionPlays(ctx context.Context) {
	for _, p := range c.plays.All() {
		if err := c.issuer.Stop(ctx, c.state.ConfID, p.PlayID); err != nil {
			c.logger.Warn("stop play failed", log.String("play_id", p.PlayID), log.Error(err))
		}
	}
}

func (c *Controller) stopAllPlays(ctx context.Context) error {
	c.stopRegionPlays(ctx)
	if op := c.state.ExclusiveOp; op != "" {
		if err := c.issuer.Stop(ctx, c.state.ConfID, op); err != nil {
			c.logger.Warn("stop exclusive operation failed", log.String("op", op), log.Error(err))
		}
	}
	if c.state.CaptionsOn {
		for _, p := range c.plays.All() {
			if p.Region > 0 {
				c.overlay(ctx, deleteOverlay(p.Region, overlayLabel))
			}
		}
		c.overlay(ctx, deleteOverlay(fullScreen, overlayLabel))
	}
	return nil
}

// onEndPlay also treats any outstanding exclusive operation as finished,
// whichever play actually ended.
func (c *Controller) onEndPlay(ctx context.Context, ev *conference.Event) error {
	id := ev.Get(conference.FieldTransactionID)

	var err error
	if c.plays.Len() > 0 {
		if p, ok := c.plays.FindByID(id); ok {
			c.regions.Clear(p.Region)
			c.plays.Remove(id)
			if c.state.CaptionsOn && p.Region > 0 {
				c.overlay(ctx, deleteOverlay(p.Region, overlayLabel))
			}
			c.logger.Info("region play ended", log.String("play_id", id), log.Region(p.Region))
		} else if id != c.state.ExclusiveOp {
			err = errors.Newf(ErrNotFound, "end of unknown play %s", id)
		}
	}

	if op := c.state.ExclusiveOp; op != "" {
		c.logger.Info("exclusive operation cleared", log.String("op", op), log.String("ended", id))
		c.state.ExclusiveOp = ""
	}
	return err
}
