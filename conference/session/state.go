package session

import "github.com/imtaco/xms-confctl/conference"

// MaxCallers is the admission cap, independent of the layout's tile count.
const MaxCallers = 6

const maxParties = 9

// State is everything the controller knows about the one conference.
type State struct {
	ConfID     string `json:"conf_id"`
	Layout     int    `json:"layout"`
	NumCallers int    `json:"num_callers"`
	// FirstCall stays true until a conference has been created.
	FirstCall bool `json:"first_call"`
	// ExclusiveOp is the id of the outstanding screen-filling operation.
	ExclusiveOp        string `json:"exclusive_op,omitempty"`
	RecordInProgress   bool   `json:"record_in_progress"`
	CaptionsOn         bool   `json:"captions_on"`
	ScrollingOverlayOn bool   `json:"scrolling_overlay_on"`
	SlideShowOn        bool   `json:"slide_show_on"`
	Slide              int    `json:"slide,omitempty"`
}

func initialState() State {
	return State{
		Layout:    defaultLayout,
		FirstCall: true,
	}
}

func (s State) Active() bool {
	return s.ConfID != ""
}

// Snapshot is a copy of the controller for status reporting.
type Snapshot struct {
	State
	DTMFMode conference.DTMFMode `json:"dtmf_mode"`
	Regions  []int               `json:"regions_used"`
	Calls    []CallLeg           `json:"calls"`
	Plays    []VideoPlay         `json:"plays"`
}
