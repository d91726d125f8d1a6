package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
)

const errFake errors.Code = "fake failure"

// fakeIssuer records every command as a short line and hands out
// predictable ids: conf-1, play-1.., rec-1..
type fakeIssuer struct {
	cmds  []string
	fail  map[string]bool
	confs int
	ops   int
}

func newFakeIssuer() *fakeIssuer {
	return &fakeIssuer{fail: map[string]bool{}}
}

func (f *fakeIssuer) record(verb, format string, args ...any) error {
	line := verb
	if format != "" {
		line += " " + fmt.Sprintf(format, args...)
	}
	f.cmds = append(f.cmds, line)
	if f.fail[verb] {
		return errors.Newf(errFake, "%s failed", verb)
	}
	return nil
}

func (f *fakeIssuer) reset() {
	f.cmds = nil
}

// with returns recorded lines starting with prefix.
func (f *fakeIssuer) with(prefix string) []string {
	out := []string{}
	for _, c := range f.cmds {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeIssuer) CreateConference(_ context.Context, opts conference.ConferenceOptions) (string, error) {
	if err := f.record("create", "parties=%d layout=%d size=%s", opts.MaxParties, opts.Layout, opts.Resolution); err != nil {
		return "", err
	}
	f.confs++
	return fmt.Sprintf("conf-%d", f.confs), nil
}

func (f *fakeIssuer) DestroyConference(_ context.Context, confID string) error {
	return f.record("destroy", "%s", confID)
}

func (f *fakeIssuer) Answer(_ context.Context, callID string, mode conference.DTMFMode) error {
	return f.record("answer", "%s %s", callID, mode)
}

func (f *fakeIssuer) Hangup(_ context.Context, callID string) error {
	return f.record("hangup", "%s", callID)
}

func (f *fakeIssuer) AddParty(_ context.Context, callID, _ string, region int) error {
	return f.record("add", "%s %d", callID, region)
}

func (f *fakeIssuer) UpdateParty(_ context.Context, callID, _ string, upd conference.PartyUpdate) error {
	region := "-"
	if upd.Region != nil {
		region = fmt.Sprint(*upd.Region)
	}
	return f.record("party", "%s audio=%s video=%s region=%s", callID, upd.Audio, upd.Video, region)
}

func (f *fakeIssuer) UpdateConference(_ context.Context, _ string, upd conference.ConferenceUpdate) error {
	if upd.Layout != "" {
		return f.record("layout", "%s", upd.Layout)
	}
	return f.record("overlay", "%s", upd.Overlays)
}

func (f *fakeIssuer) PlayIntoConference(_ context.Context, _ string, req conference.PlayRequest) (string, error) {
	if err := f.record("play", "%s region=%d repeat=%s", req.Audio.URI, req.Region, req.Repeat); err != nil {
		return "", err
	}
	f.ops++
	return fmt.Sprintf("play-%d", f.ops), nil
}

func (f *fakeIssuer) UpdatePlay(_ context.Context, _, playID string, region int) error {
	return f.record("moveplay", "%s %d", playID, region)
}

func (f *fakeIssuer) RecordConference(_ context.Context, _ string, req conference.RecordRequest) (string, error) {
	if err := f.record("record", "%s %s", req.AudioURI, req.MaxTime); err != nil {
		return "", err
	}
	f.ops++
	return fmt.Sprintf("rec-%d", f.ops), nil
}

func (f *fakeIssuer) Stop(_ context.Context, _, operationID string) error {
	return f.record("stop", "%s", operationID)
}

func (f *fakeIssuer) SendInfo(_ context.Context, callID, _, content string) error {
	return f.record("info", "%s %s", callID, content)
}
