package xms

import (
	"context"
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

const (
	conferencesPath   = "/default/conferences"
	callsPath         = "/default/calls"
	eventHandlersPath = "/default/eventhandlers"
)

var _ conference.Issuer = (*Client)(nil)

// Client issues conference and call commands to the XMS REST interface.
// Commands are synchronous; each blocks until the server replied.
type Client struct {
	http    *resty.Client
	appID   string
	limiter *rate.Limiter
	logger  *log.Logger
}

func NewClient(cfg Config, logger *log.Logger) *Client {
	if logger == nil {
		panic("logger is required")
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.Addr, "/")).
			SetHeader("Content-Type", "application/xml").
			SetTimeout(cfg.Timeout),
		appID:   cfg.AppID,
		limiter: rate.NewLimiter(limit, max(cfg.Burst, 1)),
		logger:  logger,
	}
}

func (c *Client) CreateConference(ctx context.Context, opts conference.ConferenceOptions) (string, error) {
	reply, err := c.do(ctx, "create_conference", http.MethodPost, conferencesPath, createConferenceBody(opts), http.StatusCreated)
	if err != nil {
		return "", err
	}
	if reply.ConferenceResponse == nil || reply.ConferenceResponse.Identifier == "" {
		return "", errors.New(ErrEmptyResult, "create conference reply has no identifier")
	}
	return reply.ConferenceResponse.Identifier, nil
}

func (c *Client) DestroyConference(ctx context.Context, confID string) error {
	_, err := c.do(ctx, "destroy_conference", http.MethodDelete, conferencesPath+"/"+confID, nil, http.StatusNoContent)
	return err
}

func (c *Client) Answer(ctx context.Context, callID string, mode conference.DTMFMode) error {
	_, err := c.do(ctx, "answer", http.MethodPut, callsPath+"/"+callID, answerBody(mode), http.StatusOK)
	return err
}

// Hangup drops the call by deleting the call resource.
func (c *Client) Hangup(ctx context.Context, callID string) error {
	_, err := c.do(ctx, "hangup", http.MethodDelete, callsPath+"/"+callID, nil, http.StatusNoContent)
	return err
}

func (c *Client) AddParty(ctx context.Context, callID, confID string, region int) error {
	_, err := c.do(ctx, "add_party", http.MethodPut, callsPath+"/"+callID, addPartyBody(confID, region), http.StatusOK)
	return err
}

func (c *Client) UpdateParty(ctx context.Context, callID, confID string, upd conference.PartyUpdate) error {
	c.logger.Debug("update party", log.CallID(callID), log.ConfID(confID))
	_, err := c.do(ctx, "update_party", http.MethodPut, callsPath+"/"+callID, updatePartyBody(upd), http.StatusOK)
	return err
}

func (c *Client) UpdateConference(ctx context.Context, confID string, upd conference.ConferenceUpdate) error {
	_, err := c.do(ctx, "update_conference", http.MethodPut, conferencesPath+"/"+confID, updateConferenceBody(upd), http.StatusOK)
	return err
}

func (c *Client) PlayIntoConference(ctx context.Context, confID string, req conference.PlayRequest) (string, error) {
	reply, err := c.do(ctx, "play", http.MethodPut, conferencesPath+"/"+confID, playBody(req), http.StatusOK)
	if err != nil {
		return "", err
	}
	if r := reply.ConferenceResponse; r == nil || r.Play == nil || r.Play.TransactionID == "" {
		return "", errors.New(ErrEmptyResult, "play reply has no transaction id")
	}
	return reply.ConferenceResponse.Play.TransactionID, nil
}

func (c *Client) UpdatePlay(ctx context.Context, confID, playID string, region int) error {
	_, err := c.do(ctx, "update_play", http.MethodPut, conferencesPath+"/"+confID, updatePlayBody(playID, region), http.StatusOK)
	return err
}

func (c *Client) RecordConference(ctx context.Context, confID string, req conference.RecordRequest) (string, error) {
	reply, err := c.do(ctx, "record", http.MethodPut, conferencesPath+"/"+confID, recordBody(req), http.StatusOK)
	if err != nil {
		return "", err
	}
	if r := reply.ConferenceResponse; r == nil || r.Record == nil || r.Record.TransactionID == "" {
		return "", errors.New(ErrEmptyResult, "record reply has no transaction id")
	}
	return reply.ConferenceResponse.Record.TransactionID, nil
}

func (c *Client) Stop(ctx context.Context, confID, operationID string) error {
	_, err := c.do(ctx, "stop", http.MethodPut, conferencesPath+"/"+confID, stopBody(operationID), http.StatusOK)
	return err
}

func (c *Client) SendInfo(ctx context.Context, callID, contentType, content string) error {
	_, err := c.do(ctx, "send_info", http.MethodPut, callsPath+"/"+callID, sendInfoBody(contentType, content), http.StatusOK)
	return err
}

// subscribe creates an event handler for every resource of the application.
func (c *Client) subscribe(ctx context.Context) (*eventHandlerResponse, error) {
	reply, err := c.do(ctx, "create_eventhandler", http.MethodPost, eventHandlersPath, subscribeBody(), http.StatusCreated)
	if err != nil {
		return nil, err
	}
	h := reply.EventHandlerResponse
	if h == nil || h.Href == "" || h.Identifier == "" {
		return nil, errors.New(ErrEmptyResult, "event handler reply has no href")
	}
	return h, nil
}

func (c *Client) unsubscribe(ctx context.Context, handlerID string) error {
	_, err := c.do(ctx, "delete_eventhandler", http.MethodDelete, eventHandlersPath+"/"+handlerID, nil, http.StatusNoContent)
	return err
}

// do sends one command and decodes the reply document, if any.
func (c *Client) do(
	ctx context.Context,
	op, method, path string,
	body *webService,
	expect int,
) (*webService, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(ErrFailedRequest, err, "rate limiter")
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("appid", c.appID)
	if body != nil {
		payload, err := xml.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidPayload, err, "marshal request")
		}
		c.logger.Debug("xms req", log.String("op", op), log.String("path", path), log.String("body", string(payload)))
		req.SetBody(payload)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	requestDuration.Record(ctx, float64(time.Since(start).Milliseconds()),
		metric.WithAttributes(attribute.String("op", op)))
	requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("status", strconv.Itoa(status))))

	if err != nil {
		return nil, errors.Wrapf(ErrFailedRequest, err, "xms %s", op)
	}
	if status != expect {
		return nil, errors.Newf(ErrNoneSuccessResponse, "xms %s: (code: %d, resp %s)", op, status, resp.String())
	}
	c.logger.Debug("xms resp", log.String("op", op), log.Int("status", status))

	reply := &webService{}
	if len(resp.Body()) == 0 {
		return reply, nil
	}
	if err := xml.Unmarshal(resp.Body(), reply); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, err, "xms %s reply", op)
	}
	return reply, nil
}
