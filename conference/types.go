package conference

import (
	"context"
	"strings"
)

// Event types delivered by the media server.
const (
	EventIncoming       = "incoming"
	EventAnswered       = "answered"
	EventAccepted       = "accepted"
	EventHangup         = "hangup"
	EventDTMF           = "dtmf"
	EventEndPlay        = "end_play"
	EventEndRecord      = "end_record"
	EventOverlayExpired = "conf_overlay_expired"
	EventInfo           = "info"
	EventAlarm          = "alarm"
	EventStream         = "stream"
	EventKeepalive      = "keepalive"
)

// Event data keys.
const (
	FieldCallID        = "call_id"
	FieldResourceID    = "resource_id"
	FieldResourceType  = "resource_type"
	FieldDigits        = "digits"
	FieldTransactionID = "transaction_id"
	FieldContentID     = "content_id"
	FieldContent       = "content"
	FieldContentType   = "content_type"
	FieldAppID         = "appid"
	FieldAlarm         = "alarm"
	FieldState         = "state"
)

// Event is one notification from the media server: a type and a flat bag of
// named string fields.
type Event struct {
	Type string            `json:"type"`
	Data map[string]string `json:"data"`
}

func NewEvent(typ string, data map[string]string) *Event {
	if data == nil {
		data = map[string]string{}
	}
	return &Event{Type: typ, Data: data}
}

// Get returns the named field or "" when it is absent.
func (e *Event) Get(name string) string {
	if e == nil || e.Data == nil {
		return ""
	}
	return e.Data[name]
}

// CallID is the call the event refers to; call events carry it as
// resource_id, info events additionally as call_id.
func (e *Event) CallID() string {
	if id := e.Get(FieldCallID); id != "" {
		return id
	}
	return e.Get(FieldResourceID)
}

// DTMFMode selects how callers' key presses are signalled.
type DTMFMode string

const (
	DTMFModeRFC2833 DTMFMode = "rfc2833"
	DTMFModeSIPInfo DTMFMode = "sipinfo"
)

// ParseDTMFMode falls back to SIP INFO for anything unrecognised.
func ParseDTMFMode(s string) DTMFMode {
	if strings.EqualFold(s, string(DTMFModeRFC2833)) {
		return DTMFModeRFC2833
	}
	return DTMFModeSIPInfo
}

type MediaDirection string

const (
	DirectionSendRecv MediaDirection = "sendrecv"
	DirectionRecvOnly MediaDirection = "recvonly"
	DirectionSendOnly MediaDirection = "sendonly"
	DirectionInactive MediaDirection = "inactive"
)

// ConferenceOptions are the creation parameters of a conference.
type ConferenceOptions struct {
	Reserve    int
	MaxParties int
	Layout     int
	Resolution string
}

// PartyUpdate changes a party's media directions and/or display region.
// Empty directions and a nil Region are left untouched.
type PartyUpdate struct {
	Audio  MediaDirection
	Video  MediaDirection
	Region *int
}

// ConferenceUpdate changes layout parameters and/or the overlay set.
// Empty fields are left untouched.
type ConferenceUpdate struct {
	Layout        string
	LayoutRegions string
	Overlays      string
}

type MediaSource struct {
	URI     string
	BaseURI string
	Type    string
}

type PlayRequest struct {
	Audio  MediaSource
	Video  MediaSource
	Region int
	// Repeat is "0" for a single pass or "infinite".
	Repeat string
}

type RecordRequest struct {
	AudioURI  string
	AudioType string
	VideoURI  string
	VideoType string
	// MaxTime like "60s".
	MaxTime string
}

// Issuer sends commands to the media server. Every call blocks until the
// server has replied; an error means the command had no effect.
//
//go:generate mockgen -source=types.go -destination=mocks/mock_issuer.go -package=mocks Issuer
type Issuer interface {
	CreateConference(ctx context.Context, opts ConferenceOptions) (string, error)
	DestroyConference(ctx context.Context, confID string) error
	Answer(ctx context.Context, callID string, mode DTMFMode) error
	Hangup(ctx context.Context, callID string) error
	AddParty(ctx context.Context, callID, confID string, region int) error
	UpdateParty(ctx context.Context, callID, confID string, upd PartyUpdate) error
	UpdateConference(ctx context.Context, confID string, upd ConferenceUpdate) error
	PlayIntoConference(ctx context.Context, confID string, req PlayRequest) (string, error)
	UpdatePlay(ctx context.Context, confID, playID string, region int) error
	RecordConference(ctx context.Context, confID string, req RecordRequest) (string, error)
	Stop(ctx context.Context, confID, operationID string) error
	SendInfo(ctx context.Context, callID, contentType, content string) error
}
