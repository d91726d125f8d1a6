package session

import (
	"github.com/imtaco/xms-confctl/internal/log"
)

// VideoPlay is a clip playing inside one region of the conference.
type VideoPlay struct {
	ConfID string `json:"conf_id"`
	PlayID string `json:"play_id"`
	Region int    `json:"region"`
}

type PlayRegistry struct {
	plays  []*VideoPlay
	logger *log.Logger
}

func NewPlayRegistry(logger *log.Logger) *PlayRegistry {
	return &PlayRegistry{logger: logger}
}

func (r *PlayRegistry) Add(confID, playID string, region int) bool {
	if r.find(playID) >= 0 {
		r.logger.Warn("play already registered", log.String("play_id", playID))
		return false
	}
	r.plays = append(r.plays, &VideoPlay{ConfID: confID, PlayID: playID, Region: region})
	return true
}

func (r *PlayRegistry) Remove(playID string) bool {
	i := r.find(playID)
	if i < 0 {
		r.logger.Warn("remove unknown play", log.String("play_id", playID))
		return false
	}
	r.plays = append(r.plays[:i], r.plays[i+1:]...)
	return true
}

func (r *PlayRegistry) find(playID string) int {
	for i, p := range r.plays {
		if p.PlayID == playID {
			return i
		}
	}
	return -1
}

func (r *PlayRegistry) FindByID(playID string) (VideoPlay, bool) {
	i := r.find(playID)
	if i < 0 {
		r.logger.Debug("play not found", log.String("play_id", playID))
		return VideoPlay{}, false
	}
	return *r.plays[i], true
}

func (r *PlayRegistry) FindByRegion(region int) (VideoPlay, bool) {
	if region <= 0 {
		return VideoPlay{}, false
	}
	for _, p := range r.plays {
		if p.Region == region {
			return *p, true
		}
	}
	return VideoPlay{}, false
}

func (r *PlayRegistry) SetRegion(playID string, region int) bool {
	i := r.find(playID)
	if i < 0 {
		r.logger.Warn("set region of unknown play", log.String("play_id", playID))
		return false
	}
	r.plays[i].Region = region
	return true
}

func (r *PlayRegistry) ClearRegion(playID string) bool {
	return r.SetRegion(playID, 0)
}

func (r *PlayRegistry) All() []VideoPlay {
	out := make([]VideoPlay, len(r.plays))
	for i, p := range r.plays {
		out[i] = *p
	}
	return out
}

func (r *PlayRegistry) Len() int {
	return len(r.plays)
}

func (r *PlayRegistry) Clear() {
	r.plays = nil
}
