package xms

import (
	"encoding/xml"
	"strconv"

	"github.com/imtaco/xms-confctl/conference"
)

const wireVersion = "1.0"

// webService is the envelope of every request, reply and event document.
type webService struct {
	XMLName      xml.Name         `xml:"web_service"`
	Version      string           `xml:"version,attr,omitempty"`
	Conference   *conferenceXML   `xml:"conference,omitempty"`
	Call         *callXML         `xml:"call,omitempty"`
	EventHandler *eventHandlerXML `xml:"eventhandler,omitempty"`

	ConferenceResponse   *conferenceResponse   `xml:"conference_response,omitempty"`
	EventHandlerResponse *eventHandlerResponse `xml:"eventhandler_response,omitempty"`
	Event                *eventXML             `xml:"event,omitempty"`
}

type conferenceXML struct {
	Type             string      `xml:"type,attr,omitempty"`
	Beep             string      `xml:"beep,attr,omitempty"`
	ClampDTMF        string      `xml:"clamp_dtmf,attr,omitempty"`
	AutoGainControl  string      `xml:"auto_gain_control,attr,omitempty"`
	EchoCancellation string      `xml:"echo_cancellation,attr,omitempty"`
	Caption          string      `xml:"caption,attr,omitempty"`
	Reserve          string      `xml:"reserve,attr,omitempty"`
	MaxParties       string      `xml:"max_parties,attr,omitempty"`
	Layout           string      `xml:"layout,attr,omitempty"`
	LayoutSize       string      `xml:"layout_size,attr,omitempty"`
	LayoutRegions    string      `xml:"layout_regions,attr,omitempty"`
	RegionOverlays   string      `xml:"region_overlays,attr,omitempty"`
	Action           *confAction `xml:"conf_action,omitempty"`
}

type confAction struct {
	Play       *playXML       `xml:"play,omitempty"`
	Record     *recordXML     `xml:"record,omitempty"`
	Stop       *stopXML       `xml:"stop,omitempty"`
	UpdatePlay *updatePlayXML `xml:"update_play,omitempty"`
}

type playXML struct {
	Region string        `xml:"region,attr"`
	Repeat string        `xml:"repeat,attr,omitempty"`
	Source playSourceXML `xml:"play_source"`
}

type playSourceXML struct {
	AudioURI     string `xml:"audio_uri,attr,omitempty"`
	BaseAudioURI string `xml:"base_audio_uri,attr,omitempty"`
	AudioType    string `xml:"audio_type,attr,omitempty"`
	VideoURI     string `xml:"video_uri,attr,omitempty"`
	BaseVideoURI string `xml:"base_video_uri,attr,omitempty"`
	VideoType    string `xml:"video_type,attr,omitempty"`
}

type recordXML struct {
	MaxTime   string             `xml:"max_time,attr,omitempty"`
	AudioURI  string             `xml:"recording_audio_uri,attr,omitempty"`
	AudioType string             `xml:"recording_audio_type,attr,omitempty"`
	VideoURI  string             `xml:"recording_video_uri,attr,omitempty"`
	VideoType string             `xml:"recording_video_type,attr,omitempty"`
	AudioMime *audioMimeParamXML `xml:"recording_audio_mime_params,omitempty"`
	VideoMime *videoMimeParamXML `xml:"recording_video_mime_params,omitempty"`
}

type audioMimeParamXML struct {
	Codec string `xml:"codec,attr"`
	Rate  string `xml:"rate,attr"`
}

type videoMimeParamXML struct {
	Codec      string `xml:"codec,attr"`
	Level      string `xml:"level,attr"`
	Height     string `xml:"height,attr"`
	Width      string `xml:"width,attr"`
	Framerate  string `xml:"framerate,attr"`
	MaxBitrate string `xml:"maxbitrate,attr"`
}

type stopXML struct {
	TransactionID string `xml:"transaction_id,attr"`
}

type updatePlayXML struct {
	TransactionID string `xml:"transaction_id,attr"`
	Region        string `xml:"region,attr"`
}

type callXML struct {
	Answer      string      `xml:"answer,attr,omitempty"`
	Media       string      `xml:"media,attr,omitempty"`
	InfoAckMode string      `xml:"info_ack_mode,attr,omitempty"`
	AsyncDTMF   string      `xml:"async_dtmf,attr,omitempty"`
	AsyncTone   string      `xml:"async_tone,attr,omitempty"`
	DTMFMode    string      `xml:"dtmf_mode,attr,omitempty"`
	Action      *callAction `xml:"call_action,omitempty"`
}

type callAction struct {
	AddParty    *addPartyXML    `xml:"add_party,omitempty"`
	UpdateParty *updatePartyXML `xml:"update_party,omitempty"`
	SendInfo    *sendInfoXML    `xml:"send_info,omitempty"`
}

type addPartyXML struct {
	ConfID           string `xml:"conf_id,attr"`
	Audio            string `xml:"audio,attr"`
	Video            string `xml:"video,attr"`
	AutoGainControl  string `xml:"auto_gain_control,attr"`
	EchoCancellation string `xml:"echo_cancellation,attr"`
	Mode             string `xml:"mode,attr"`
	Mute             string `xml:"mute,attr"`
	Privilege        string `xml:"privilege,attr"`
	ClampDTMF        string `xml:"clamp_dtmf,attr"`
	Region           string `xml:"region,attr,omitempty"`
}

type updatePartyXML struct {
	Audio  string `xml:"audio,attr,omitempty"`
	Video  string `xml:"video,attr,omitempty"`
	Region string `xml:"region,attr,omitempty"`
}

type sendInfoXML struct {
	ContentType string `xml:"content_type,attr"`
	Content     string `xml:"content,attr"`
}

type eventHandlerXML struct {
	Subscribe []eventSubscribeXML `xml:"eventsubscribe"`
}

type eventSubscribeXML struct {
	Action       string `xml:"action,attr"`
	Type         string `xml:"type,attr"`
	ResourceID   string `xml:"resource_id,attr"`
	ResourceType string `xml:"resource_type,attr"`
}

type conferenceResponse struct {
	Identifier string       `xml:"identifier,attr"`
	Play       *operationID `xml:"play"`
	Record     *operationID `xml:"record"`
}

type operationID struct {
	TransactionID string `xml:"transaction_id,attr"`
}

type eventHandlerResponse struct {
	Href       string `xml:"href,attr"`
	Identifier string `xml:"identifier,attr"`
}

type eventXML struct {
	Type string         `xml:"type,attr"`
	Data []eventDataXML `xml:"event_data"`
}

type eventDataXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

func (e *eventXML) toEvent() *conference.Event {
	data := make(map[string]string, len(e.Data))
	for _, d := range e.Data {
		data[d.Name] = d.Value
	}
	return conference.NewEvent(e.Type, data)
}

func envelope() *webService {
	return &webService{Version: wireVersion}
}

func createConferenceBody(opts conference.ConferenceOptions) *webService {
	ws := envelope()
	ws.Conference = &conferenceXML{
		Type:             "audiovideo",
		Beep:             "yes",
		ClampDTMF:        "yes",
		AutoGainControl:  "yes",
		EchoCancellation: "yes",
		Caption:          "no",
		Reserve:          strconv.Itoa(opts.Reserve),
		MaxParties:       strconv.Itoa(opts.MaxParties),
		Layout:           strconv.Itoa(opts.Layout),
		LayoutSize:       opts.Resolution,
	}
	return ws
}

func answerBody(mode conference.DTMFMode) *webService {
	// XMS calls SIP INFO signalling "outofband"
	dtmf := "rfc2833"
	if mode == conference.DTMFModeSIPInfo {
		dtmf = "outofband"
	}
	ws := envelope()
	ws.Call = &callXML{
		Answer:      "yes",
		Media:       "audiovideo",
		InfoAckMode: "manual",
		AsyncDTMF:   "yes",
		AsyncTone:   "yes",
		DTMFMode:    dtmf,
	}
	return ws
}

func addPartyBody(confID string, region int) *webService {
	ws := envelope()
	ws.Call = &callXML{Action: &callAction{AddParty: &addPartyXML{
		ConfID:           confID,
		Audio:            string(conference.DirectionSendRecv),
		Video:            string(conference.DirectionSendRecv),
		AutoGainControl:  "yes",
		EchoCancellation: "yes",
		Mode:             "normal",
		Mute:             "no",
		Privilege:        "no",
		ClampDTMF:        "no",
		Region:           regionAttr(region),
	}}}
	return ws
}

func updatePartyBody(upd conference.PartyUpdate) *webService {
	p := &updatePartyXML{
		Audio: string(upd.Audio),
		Video: string(upd.Video),
	}
	if upd.Region != nil {
		p.Region = strconv.Itoa(*upd.Region)
	}
	ws := envelope()
	ws.Call = &callXML{Action: &callAction{UpdateParty: p}}
	return ws
}

func sendInfoBody(contentType, content string) *webService {
	ws := envelope()
	ws.Call = &callXML{Action: &callAction{SendInfo: &sendInfoXML{
		ContentType: contentType,
		Content:     content,
	}}}
	return ws
}

func updateConferenceBody(upd conference.ConferenceUpdate) *webService {
	ws := envelope()
	ws.Conference = &conferenceXML{
		Layout:         upd.Layout,
		LayoutRegions:  upd.LayoutRegions,
		RegionOverlays: upd.Overlays,
	}
	return ws
}

func confActionBody(action *confAction) *webService {
	ws := envelope()
	ws.Conference = &conferenceXML{Action: action}
	return ws
}

func playBody(req conference.PlayRequest) *webService {
	return confActionBody(&confAction{Play: &playXML{
		Region: strconv.Itoa(req.Region),
		Repeat: req.Repeat,
		Source: playSourceXML{
			AudioURI:     req.Audio.URI,
			BaseAudioURI: req.Audio.BaseURI,
			AudioType:    req.Audio.Type,
			VideoURI:     req.Video.URI,
			BaseVideoURI: req.Video.BaseURI,
			VideoType:    req.Video.Type,
		},
	}})
}

// Recording format is fixed: 16 kHz linear audio and 720x1280 H.264.
func recordBody(req conference.RecordRequest) *webService {
	return confActionBody(&confAction{Record: &recordXML{
		MaxTime:   req.MaxTime,
		AudioURI:  req.AudioURI,
		AudioType: req.AudioType,
		VideoURI:  req.VideoURI,
		VideoType: req.VideoType,
		AudioMime: &audioMimeParamXML{Codec: "L16", Rate: "16000"},
		VideoMime: &videoMimeParamXML{
			Codec:      "h264",
			Level:      "3.1",
			Height:     "720",
			Width:      "1280",
			Framerate:  "30",
			MaxBitrate: "1536000",
		},
	}})
}

func stopBody(operationID string) *webService {
	return confActionBody(&confAction{Stop: &stopXML{TransactionID: operationID}})
}

func updatePlayBody(playID string, region int) *webService {
	return confActionBody(&confAction{UpdatePlay: &updatePlayXML{
		TransactionID: playID,
		Region:        strconv.Itoa(region),
	}})
}

func subscribeBody() *webService {
	ws := envelope()
	ws.EventHandler = &eventHandlerXML{Subscribe: []eventSubscribeXML{{
		Action:       "add",
		Type:         "any",
		ResourceID:   "any",
		ResourceType: "any",
	}}}
	return ws
}

func regionAttr(region int) string {
	if region <= 0 {
		return ""
	}
	return strconv.Itoa(region)
}
