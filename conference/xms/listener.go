package xms

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
	"github.com/imtaco/xms-confctl/internal/retry"
)

const unsubscribeTimeout = 5 * time.Second

// Sink receives decoded events in arrival order. An error stops the stream.
type Sink func(ctx context.Context, ev *conference.Event) error

// Listener keeps an event handler open on the media server and forwards
// everything it delivers to a Sink.
type Listener struct {
	client *Client
	poll   *resty.Client
	retry  retry.Retry
	sink   Sink
	logger *log.Logger
}

func NewListener(cfg Config, client *Client, sink Sink, logger *log.Logger) *Listener {
	if logger == nil {
		panic("logger is required")
	}
	return &Listener{
		client: client,
		// long-poll: no client timeout, the context ends it
		poll:   resty.New().SetBaseURL(strings.TrimRight(cfg.Addr, "/")),
		retry:  retry.New(logger, cfg.Retry),
		sink:   sink,
		logger: logger,
	}
}

// Run streams events until ctx is done. Whenever the stream breaks, the
// event handler is deleted and a new one subscribed after a backoff.
func (l *Listener) Run(ctx context.Context) error {
	err := l.retry.Do(ctx, func() error {
		err := l.session(ctx)
		if ctx.Err() != nil {
			return retry.Permanent(ctx.Err())
		}
		if err == nil {
			err = errors.New(ErrStreamClosed, "event stream ended")
		}
		resubscribes.Add(ctx, 1)
		return err
	})
	if ctx.Err() != nil {
		l.logger.Info("event listener stopped")
		return nil
	}
	return err
}

func (l *Listener) session(ctx context.Context) error {
	h, err := l.client.subscribe(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("event handler created", log.String("id", h.Identifier), log.String("href", h.Href))

	defer func() {
		uctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unsubscribeTimeout)
		defer cancel()
		if err := l.client.unsubscribe(uctx, h.Identifier); err != nil {
			l.logger.Warn("delete event handler failed", log.String("id", h.Identifier), log.Error(err))
		}
	}()

	return l.stream(ctx, h.Href)
}

func (l *Listener) stream(ctx context.Context, href string) error {
	resp, err := l.poll.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetQueryParam("appid", l.client.appID).
		Get(href)
	if err != nil {
		return errors.Wrap(ErrFailedRequest, err, "event long-poll")
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return errors.Newf(ErrNoneSuccessResponse, "event long-poll: (code: %d)", resp.StatusCode())
	}

	return decodeEvents(body, func(ev *conference.Event) error {
		eventsReceived.Add(ctx, 1, metric.WithAttributes(attribute.String("type", ev.Type)))
		l.logger.Debug("xms event", log.EventType(ev.Type), log.CallID(ev.CallID()))
		return l.sink(ctx, ev)
	})
}

// decodeEvents reads consecutive web_service documents from r. It returns
// nil at a clean end of stream.
func decodeEvents(r io.Reader, emit func(*conference.Event) error) error {
	dec := xml.NewDecoder(r)
	for {
		var doc webService
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrap(ErrInvalidResponse, err, "decode event")
		}
		if doc.Event == nil || doc.Event.Type == "" {
			continue
		}
		if err := emit(doc.Event.toEvent()); err != nil {
			return err
		}
	}
}
