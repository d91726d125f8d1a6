package session

import (
	"context"
	"strconv"
	"strings"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

func (c *Controller) newKeypad() map[string]keyAction {
	return map[string]keyAction{
		"1": c.startRecording,
		"C": c.stopRecording,
		"2": func(ctx context.Context) error {
			return c.playInRegion(ctx, ClipRecording, repeatOnce)
		},
		"3": func(ctx context.Context) error {
			return c.playFullScreen(ctx, ClipRecording, repeatOnce, true)
		},
		"4": func(ctx context.Context) error {
			return c.playInRegion(ctx, ClipPromo, repeatInfinite)
		},
		"5": func(ctx context.Context) error {
			return c.playInRegion(ctx, ClipDemo, repeatInfinite)
		},
		"6": c.promoTakeover,
		"7": func(ctx context.Context) error {
			return c.playFullScreen(ctx, ClipDemo, repeatInfinite, false)
		},
		"8": c.stopAllPlays,
		"9": c.captionsOn,
		"0": c.captionsOff,
		"B": c.tickerOn,
		"E": c.tickerOff,
		"F": c.slideShowOn,
		"G": c.slideShowOff,
		"#": c.cycleLayout,
		"*": c.rotate,
		"D": func(ctx context.Context) error {
			c.Reset(ctx)
			return nil
		},
		"A": func(context.Context) error { return nil },
	}
}

func (c *Controller) onDTMF(ctx context.Context, ev *conference.Event) error {
	if err := c.requireActive(); err != nil {
		return err
	}
	digits := ev.Get(conference.FieldDigits)
	action, ok := c.keypad[digits]
	if !ok {
		c.logger.Info("unhandled digit", log.String("digits", digits), log.CallID(ev.CallID()))
		return nil
	}
	c.logger.Debug("keypad", log.String("digits", digits), log.CallID(ev.CallID()))
	return action(ctx)
}

func (c *Controller) cycleLayout(ctx context.Context) error {
	next := NextLayout(c.state.Layout)
	err := c.issuer.UpdateConference(ctx, c.state.ConfID, conference.ConferenceUpdate{
		Layout: strconv.Itoa(next),
	})
	if err != nil {
		return transportError(err, "switch layout to %d", next)
	}
	c.logger.Info("layout changed", log.Int("from", c.state.Layout), log.Int("to", next))
	c.state.Layout = next
	layoutChanges.Add(ctx, 1)
	return nil
}

func (c *Controller) captionsOn(ctx context.Context) error {
	c.state.CaptionsOn = true
	c.applyAllCaptions(ctx)
	return nil
}

func (c *Controller) captionsOff(ctx context.Context) error {
	c.state.CaptionsOn = false
	c.removeAllCaptions(ctx)
	return nil
}

func (c *Controller) showCaption(ctx context.Context, callID string, region int) {
	name := "Conferee #" + strconv.Itoa(c.calls.Position(callID))
	c.overlay(ctx, c.overlays.showCaption(region, name))
}

// applyAllCaptions names every placed caller and labels every region play.
func (c *Controller) applyAllCaptions(ctx context.Context) {
	for _, leg := range c.calls.All() {
		if leg.Region > 0 {
			c.showCaption(ctx, leg.CallID, leg.Region)
		}
	}
	for _, p := range c.plays.All() {
		if p.Region > 0 {
			c.overlay(ctx, c.overlays.showVideoLabel(p.Region))
		}
	}
}

func (c *Controller) removeAllCaptions(ctx context.Context) {
	for _, leg := range c.calls.All() {
		if leg.Region > 0 {
			c.overlay(ctx, deleteOverlay(leg.Region, overlayCaption))
		}
	}
	for _, p := range c.plays.All() {
		if p.Region > 0 {
			c.overlay(ctx, deleteOverlay(p.Region, overlayLabel))
		}
	}
}

func (c *Controller) tickerOn(ctx context.Context) error {
	if c.state.ScrollingOverlayOn {
		return errors.New(ErrPreconditionFailed, "ticker already shown")
	}
	c.overlay(ctx, c.overlays.showTicker(fullScreen))
	c.state.ScrollingOverlayOn = true
	return nil
}

func (c *Controller) tickerOff(ctx context.Context) error {
	if !c.state.ScrollingOverlayOn {
		return errors.New(ErrPreconditionFailed, "ticker not shown")
	}
	c.overlay(ctx, c.overlays.deleteTicker(fullScreen))
	c.state.ScrollingOverlayOn = false
	return nil
}

func (c *Controller) slideShowOn(ctx context.Context) error {
	if c.state.SlideShowOn {
		return errors.New(ErrPreconditionFailed, "slide show already running")
	}
	c.state.SlideShowOn = true
	c.showSlide(ctx, 1)
	return nil
}

func (c *Controller) slideShowOff(ctx context.Context) error {
	if !c.state.SlideShowOn {
		return errors.New(ErrPreconditionFailed, "slide show not running")
	}
	c.overlay(ctx, deleteOverlay(fullScreen, overlaySlide))
	c.state.SlideShowOn = false
	c.state.Slide = 0
	return nil
}

func (c *Controller) showSlide(ctx context.Context, slide int) {
	c.state.Slide = slide
	c.overlay(ctx, c.overlays.showSlide(fullScreen, slide))
}

// onOverlayExpired advances the slide show when the current slide times out.
func (c *Controller) onOverlayExpired(ctx context.Context, ev *conference.Event) error {
	contentID := ev.Get(conference.FieldContentID)
	if !c.state.SlideShowOn || !c.state.Active() {
		c.logger.Debug("overlay expired outside slide show", log.String("content_id", contentID))
		return nil
	}

	switch contentID {
	case slideContentID(1):
		c.showSlide(ctx, 2)
	case slideContentID(2):
		c.showSlide(ctx, slideCount)
	default:
		if !strings.HasPrefix(contentID, "slide") {
			c.logger.Debug("overlay expired", log.String("content_id", contentID))
			return nil
		}
		c.overlay(ctx, deleteOverlay(fullScreen, overlaySlide))
		c.showSlide(ctx, 1)
	}
	return nil
}
