package session

import (
	"context"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

type handlerFunc func(ctx context.Context, ev *conference.Event) error

type keyAction func(ctx context.Context) error

// Controller is the conference state machine. It is not safe for concurrent
// use: every method must be called from the goroutine that owns it.
type Controller struct {
	issuer   conference.Issuer
	calls    *CallRegistry
	plays    *PlayRegistry
	regions  *RegionAllocator
	media    *MediaLibrary
	overlays overlayBuilder
	cfg      Config
	dtmfMode conference.DTMFMode
	state    State
	handlers map[string]handlerFunc
	keypad   map[string]keyAction
	logger   *log.Logger
}

func NewController(
	cfg Config,
	issuer conference.Issuer,
	calls *CallRegistry,
	plays *PlayRegistry,
	regions *RegionAllocator,
	media *MediaLibrary,
	logger *log.Logger,
) *Controller {
	if logger == nil {
		panic("logger is required")
	}

	c := &Controller{
		issuer:   issuer,
		calls:    calls,
		plays:    plays,
		regions:  regions,
		media:    media,
		overlays: newOverlayBuilder(cfg.MediaDir),
		cfg:      cfg,
		dtmfMode: conference.ParseDTMFMode(cfg.DTMFMode),
		state:    initialState(),
		logger:   logger,
	}
	c.handlers = map[string]handlerFunc{
		conference.EventIncoming:       c.onIncoming,
		conference.EventAnswered:       c.onAnswered,
		conference.EventHangup:         c.onHangup,
		conference.EventDTMF:           c.onDTMF,
		conference.EventEndPlay:        c.onEndPlay,
		conference.EventEndRecord:      c.onEndRecord,
		conference.EventOverlayExpired: c.onOverlayExpired,
		conference.EventInfo:           c.onInfo,
		conference.EventAlarm:          c.onAlarm,
		conference.EventAccepted:       c.onIgnored,
		conference.EventStream:         c.onIgnored,
		conference.EventKeepalive:      c.onIgnored,
	}
	c.keypad = c.newKeypad()
	return c
}

// New wires a controller with fresh registries and the OS file system.
func New(cfg Config, issuer conference.Issuer, logger *log.Logger) *Controller {
	return NewController(
		cfg,
		issuer,
		NewCallRegistry(logger.Module("Calls")),
		NewPlayRegistry(logger.Module("Plays")),
		NewRegionAllocator(),
		NewMediaLibrary(afero.NewOsFs(), cfg.MediaDir, cfg.MediaURI),
		logger,
	)
}

// HandleEvent applies one media server event to completion. The returned
// error only explains why the event was ignored or partly applied; the
// session is consistent either way.
func (c *Controller) HandleEvent(ctx context.Context, ev *conference.Event) error {
	if ev == nil {
		return nil
	}
	eventsHandled.Add(ctx, 1, metric.WithAttributes(attribute.String("type", ev.Type)))

	h, ok := c.handlers[ev.Type]
	if !ok {
		c.logger.Warn("unhandled event type", log.EventType(ev.Type))
		return nil
	}

	err := h(ctx, ev)
	if err != nil {
		eventsRejected.Add(ctx, 1, metric.WithAttributes(
			attribute.String("type", ev.Type),
			attribute.String("reason", string(errors.CodeOf(err)))))
		c.logger.Warn("event not applied",
			log.EventType(ev.Type),
			log.CallID(ev.CallID()),
			log.Error(err))
	}
	return err
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:    c.state,
		DTMFMode: c.dtmfMode,
		Regions:  c.regions.Used(),
		Calls:    c.calls.All(),
		Plays:    c.plays.All(),
	}
}

func (c *Controller) onIgnored(_ context.Context, ev *conference.Event) error {
	c.logger.Debug("event ignored", log.EventType(ev.Type), log.CallID(ev.CallID()))
	return nil
}

func (c *Controller) onAlarm(_ context.Context, ev *conference.Event) error {
	c.logger.Warn("media server alarm",
		log.String("alarm", ev.Get(conference.FieldAlarm)),
		log.String("state", ev.Get(conference.FieldState)))
	return nil
}

func (c *Controller) requireActive() error {
	if !c.state.Active() {
		return errors.New(ErrPreconditionFailed, "no active conference")
	}
	return nil
}

func transportError(err error, format string, args ...any) error {
	return errors.Wrapf(ErrTransportFailure, err, format, args...)
}

// overlay sends one region_overlays update. Failures are logged and the
// caller carries on.
func (c *Controller) overlay(ctx context.Context, spec string) {
	err := c.issuer.UpdateConference(ctx, c.state.ConfID, conference.ConferenceUpdate{Overlays: spec})
	if err != nil {
		c.logger.Error("overlay update failed", log.ConfID(c.state.ConfID), log.Error(err))
	}
}

func (c *Controller) notifyAll(ctx context.Context, message string) {
	for _, leg := range c.calls.All() {
		if err := c.issuer.SendInfo(ctx, leg.CallID, "text/plain", message); err != nil {
			c.logger.Warn("send info failed", log.CallID(leg.CallID), log.Error(err))
		}
	}
}
