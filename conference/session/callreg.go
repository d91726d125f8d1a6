package session

import (
	"github.com/imtaco/xms-confctl/internal/log"
)

// CallLeg is one caller known to the conference.
type CallLeg struct {
	CallID      string `json:"call_id"`
	AppName     string `json:"app_name,omitempty"`
	Region      int    `json:"region"`
	AudioMuted  bool   `json:"audio_muted"`
	VideoHidden bool   `json:"video_hidden"`
}

// CallRegistry keeps call legs in admission order. Lookups scan linearly;
// the registry never holds more than a handful of calls.
type CallRegistry struct {
	calls  []*CallLeg
	logger *log.Logger
}

func NewCallRegistry(logger *log.Logger) *CallRegistry {
	return &CallRegistry{logger: logger}
}

// Add appends a call with no region. Duplicate ids are ignored.
func (r *CallRegistry) Add(callID, appName string) bool {
	if r.find(callID) >= 0 {
		r.logger.Warn("call already registered", log.CallID(callID))
		return false
	}
	r.calls = append(r.calls, &CallLeg{CallID: callID, AppName: appName})
	return true
}

func (r *CallRegistry) Remove(callID string) bool {
	i := r.find(callID)
	if i < 0 {
		r.logger.Warn("remove unknown call", log.CallID(callID))
		return false
	}
	r.calls = append(r.calls[:i], r.calls[i+1:]...)
	return true
}

func (r *CallRegistry) find(callID string) int {
	for i, c := range r.calls {
		if c.CallID == callID {
			return i
		}
	}
	return -1
}

func (r *CallRegistry) get(callID string) *CallLeg {
	i := r.find(callID)
	if i < 0 {
		r.logger.Debug("call not found", log.CallID(callID))
		return nil
	}
	return r.calls[i]
}

// FindByID returns a copy of the call leg.
func (r *CallRegistry) FindByID(callID string) (CallLeg, bool) {
	c := r.get(callID)
	if c == nil {
		return CallLeg{}, false
	}
	return *c, true
}

// FindByRegion returns the first call shown in region (region > 0).
func (r *CallRegistry) FindByRegion(region int) (CallLeg, bool) {
	if region <= 0 {
		return CallLeg{}, false
	}
	for _, c := range r.calls {
		if c.Region == region {
			return *c, true
		}
	}
	return CallLeg{}, false
}

// Position is the 1-based admission rank of the call, 0 if unknown.
func (r *CallRegistry) Position(callID string) int {
	return r.find(callID) + 1
}

func (r *CallRegistry) SetRegion(callID string, region int) bool {
	c := r.get(callID)
	if c == nil {
		return false
	}
	c.Region = region
	return true
}

func (r *CallRegistry) ClearRegion(callID string) bool {
	return r.SetRegion(callID, 0)
}

func (r *CallRegistry) IsAudioMuted(callID string) bool {
	c := r.get(callID)
	return c != nil && c.AudioMuted
}

func (r *CallRegistry) IsVideoHidden(callID string) bool {
	c := r.get(callID)
	return c != nil && c.VideoHidden
}

func (r *CallRegistry) SetAudioMuted(callID string, muted bool) bool {
	c := r.get(callID)
	if c == nil {
		return false
	}
	c.AudioMuted = muted
	return true
}

func (r *CallRegistry) SetVideoHidden(callID string, hidden bool) bool {
	c := r.get(callID)
	if c == nil {
		return false
	}
	c.VideoHidden = hidden
	return true
}

// All returns copies in admission order.
func (r *CallRegistry) All() []CallLeg {
	out := make([]CallLeg, len(r.calls))
	for i, c := range r.calls {
		out[i] = *c
	}
	return out
}

func (r *CallRegistry) Len() int {
	return len(r.calls)
}

func (r *CallRegistry) Clear() {
	r.calls = nil
}
