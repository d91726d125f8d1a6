package transport

// InjectEventBody is an event posted by an operator as if the media server
// had sent it.
type InjectEventBody struct {
	Type string            `json:"type" binding:"required,eventtype"`
	Data map[string]string `json:"data"`
}

type CallURI struct {
	CallID string `uri:"callId" binding:"required,callid"`
}

// KeypadBody is a single key press on behalf of a call.
type KeypadBody struct {
	Digits string `json:"digits" binding:"required,keypad"`
}
