package session

import (
	"context"
	"fmt"
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/imtaco/xms-confctl/conference"
	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

const testMediaDir = "/media/demo"

var testConfig = Config{
	DTMFMode:   "sipinfo",
	Resolution: "720p",
	MediaDir:   testMediaDir,
	MediaURI:   "file://demo",
}

type ControllerTestSuite struct {
	suite.Suite
	ctx    context.Context
	fs     afero.Fs
	issuer *fakeIssuer
	ctrl   *Controller
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fs = afero.NewMemMapFs()
	for _, clip := range []Clip{ClipRecording, ClipPromo, ClipDemo} {
		s.addClip(clip)
	}
	s.issuer = newFakeIssuer()

	logger := log.NewTest(s.T())
	s.ctrl = NewController(
		testConfig,
		s.issuer,
		NewCallRegistry(logger),
		NewPlayRegistry(logger),
		NewRegionAllocator(),
		NewMediaLibrary(s.fs, testMediaDir, testConfig.MediaURI),
		logger,
	)
}

func (s *ControllerTestSuite) addClip(clip Clip) {
	for _, ext := range []string{".wav", ".vid"} {
		s.Require().NoError(afero.WriteFile(s.fs, path.Join(testMediaDir, string(clip)+ext), []byte("x"), 0o644))
	}
}

func (s *ControllerTestSuite) send(typ string, kv ...string) error {
	data := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		data[kv[i]] = kv[i+1]
	}
	return s.ctrl.HandleEvent(s.ctx, conference.NewEvent(typ, data))
}

func (s *ControllerTestSuite) join(callIDs ...string) {
	for _, id := range callIDs {
		s.Require().NoError(s.send(conference.EventIncoming, conference.FieldResourceID, id))
		s.Require().NoError(s.send(conference.EventAnswered, conference.FieldResourceID, id))
	}
}

func (s *ControllerTestSuite) leave(callID string) {
	s.Require().NoError(s.send(conference.EventHangup, conference.FieldResourceID, callID))
}

func (s *ControllerTestSuite) key(digit string) error {
	return s.send(conference.EventDTMF, conference.FieldResourceID, "c1", conference.FieldDigits, digit)
}

func (s *ControllerTestSuite) region(callID string) int {
	leg, ok := s.ctrl.calls.FindByID(callID)
	s.Require().True(ok, callID)
	return leg.Region
}

func (s *ControllerTestSuite) assertCmds(want ...string) {
	s.T().Helper()
	if diff := cmp.Diff(want, s.issuer.cmds); diff != "" {
		s.Failf("unexpected commands", "(-want +got):\n%s", diff)
	}
}

func (s *ControllerTestSuite) assertIdle() {
	st := s.ctrl.State()
	s.Equal(initialState(), st)
	s.Empty(st.ConfID)
	s.Equal(4, st.Layout)
	s.Zero(st.NumCallers)
	s.False(st.CaptionsOn || st.RecordInProgress || st.ScrollingOverlayOn || st.SlideShowOn)
	s.Zero(s.ctrl.calls.Len())
	s.Zero(s.ctrl.plays.Len())
	s.Empty(s.ctrl.regions.Used())
}

func (s *ControllerTestSuite) TestFirstCallCreatesConference() {
	s.Require().NoError(s.send(conference.EventIncoming, conference.FieldResourceID, "c1"))

	s.assertCmds("create parties=9 layout=4 size=720p", "answer c1 sipinfo")
	st := s.ctrl.State()
	s.Equal("conf-1", st.ConfID)
	s.False(st.FirstCall)
	s.Equal(1, st.NumCallers)
	s.Equal(0, s.region("c1"))

	s.Require().NoError(s.send(conference.EventAnswered, conference.FieldResourceID, "c1"))
	s.Equal(1, s.region("c1"))
	s.Equal("add c1 1", s.issuer.cmds[len(s.issuer.cmds)-1])
}

func (s *ControllerTestSuite) TestSecondCallReusesConference() {
	s.join("c1", "c2")
	s.Len(s.issuer.with("create"), 1)
	s.Equal(2, s.region("c2"))
}

func (s *ControllerTestSuite) TestSeventhCallerRejected() {
	s.join("c1", "c2", "c3", "c4", "c5", "c6")
	before := s.ctrl.Snapshot()
	s.issuer.reset()

	err := s.send(conference.EventIncoming, conference.FieldResourceID, "c7")
	s.True(errors.Is(err, ErrCapacityExceeded))
	s.assertCmds("hangup c7")
	s.Equal(before, s.ctrl.Snapshot())

	// the server reports the rejected call's hangup; nothing changes
	s.issuer.reset()
	err = s.send(conference.EventHangup, conference.FieldResourceID, "c7")
	s.True(errors.Is(err, ErrNotFound))
	s.assertCmds()
	s.Equal(6, s.ctrl.State().NumCallers)
}

func (s *ControllerTestSuite) TestCreateFailureStaysIdle() {
	s.issuer.fail["create"] = true

	err := s.send(conference.EventIncoming, conference.FieldResourceID, "c1")
	s.True(errors.Is(err, ErrTransportFailure))
	s.assertCmds("create parties=9 layout=4 size=720p", "hangup c1")
	s.assertIdle()
}

func (s *ControllerTestSuite) TestAddPartyFailureFreesRegion() {
	s.Require().NoError(s.send(conference.EventIncoming, conference.FieldResourceID, "c1"))
	s.issuer.fail["add"] = true

	err := s.send(conference.EventAnswered, conference.FieldResourceID, "c1")
	s.True(errors.Is(err, ErrTransportFailure))
	s.Equal(0, s.region("c1"))
	s.Empty(s.ctrl.regions.Used())
}

func (s *ControllerTestSuite) TestHangupFreesRegion() {
	s.join("c1", "c2", "c3")
	s.leave("c2")

	s.Equal(2, s.ctrl.State().NumCallers)
	s.Equal([]int{1, 3}, s.ctrl.regions.Used())

	s.join("c4")
	s.Equal(2, s.region("c4"))
}

func (s *ControllerTestSuite) TestLastHangupTearsDown() {
	s.join("c1")
	s.Require().NoError(s.key("B"))
	s.Require().NoError(s.key("F"))
	s.Require().NoError(s.key("9"))
	s.Require().NoError(s.key("4"))
	s.issuer.reset()

	s.leave("c1")

	s.Contains(s.issuer.cmds, "overlay "+deleteOverlay(1, overlayCaption))
	s.Contains(s.issuer.cmds, "overlay "+s.ctrl.overlays.deleteTicker(fullScreen))
	s.Contains(s.issuer.cmds, "overlay "+deleteOverlay(fullScreen, overlaySlide))
	s.Equal("destroy conf-1", s.issuer.cmds[len(s.issuer.cmds)-1])
	s.assertIdle()

	// a new caller starts a fresh conference
	s.join("c2")
	s.Equal("conf-2", s.ctrl.State().ConfID)
	s.Equal(1, s.region("c2"))
}

func (s *ControllerTestSuite) TestHangupRemovesMuteAndHideOverlays() {
	s.join("c1", "c2")
	s.Require().NoError(s.click("c1", 100, 100, "mute", "c1"))
	s.Require().NoError(s.click("c1", 100, 100, "hide", "c1"))
	s.issuer.reset()

	s.leave("c1")
	s.assertCmds(
		"overlay "+deleteOverlay(1, overlayMicMute),
		"overlay "+deleteOverlay(1, overlayBaghead),
	)
}

func (s *ControllerTestSuite) TestGrandReset() {
	s.join("c1", "c2")
	s.Require().NoError(s.key("4"))
	s.Require().NoError(s.key("9"))
	s.Require().NoError(s.key("#"))
	s.issuer.reset()

	s.Require().NoError(s.key("D"))
	s.assertCmds("stop play-1", "destroy conf-1", "hangup c1", "hangup c2")
	s.assertIdle()

	// late hangups for the calls we dropped are ignored
	s.Error(s.send(conference.EventHangup, conference.FieldResourceID, "c1"))
	s.assertIdle()
}

func (s *ControllerTestSuite) TestResetWhenIdle() {
	s.ctrl.Reset(s.ctx)
	s.assertCmds()
	s.assertIdle()
}

func (s *ControllerTestSuite) TestKeypadNeedsConference() {
	err := s.key("#")
	s.True(errors.Is(err, ErrPreconditionFailed))
	s.assertCmds()
}

func (s *ControllerTestSuite) TestUnknownDigitIgnored() {
	s.join("c1")
	s.issuer.reset()
	s.NoError(s.key("Z"))
	s.NoError(s.key("A"))
	s.assertCmds()
}

func (s *ControllerTestSuite) TestLayoutCycle() {
	s.join("c1")
	s.issuer.reset()

	for _, want := range []int{6, 9, 4, 6} {
		s.Require().NoError(s.key("#"))
		s.Equal(want, s.ctrl.State().Layout)
	}
	s.assertCmds("layout 6", "layout 9", "layout 4", "layout 6")
}

func (s *ControllerTestSuite) TestLayoutFailureKeepsLayout() {
	s.join("c1")
	s.issuer.fail["layout"] = true

	s.True(errors.Is(s.key("#"), ErrTransportFailure))
	s.Equal(4, s.ctrl.State().Layout)
}

func (s *ControllerTestSuite) TestRecording() {
	s.join("c1", "c2")
	s.issuer.reset()

	s.Require().NoError(s.key("1"))
	s.assertCmds(
		"record file://demo/conf_recording.wav 60s",
		"overlay "+s.ctrl.overlays.showRecordingDot(fullScreen),
		"info c1 720p Conference now being recorded...",
		"info c2 720p Conference now being recorded...",
	)
	st := s.ctrl.State()
	s.Equal("rec-1", st.ExclusiveOp)
	s.True(st.RecordInProgress)

	s.True(errors.Is(s.key("1"), ErrPreconditionFailed))
	s.True(errors.Is(s.key("3"), ErrPreconditionFailed))

	s.issuer.reset()
	s.Require().NoError(s.key("C"))
	s.assertCmds("stop rec-1")
	s.False(s.ctrl.State().RecordInProgress)

	s.issuer.reset()
	s.Require().NoError(s.send(conference.EventEndRecord, conference.FieldTransactionID, "rec-1"))
	s.assertCmds(
		"info c1 720p Conference recording terminated",
		"info c2 720p Conference recording terminated",
		"overlay "+deleteOverlay(fullScreen, overlayRecDot),
	)
	s.Empty(s.ctrl.State().ExclusiveOp)
}

func (s *ControllerTestSuite) TestStopRecordingWithoutRecording() {
	s.join("c1")
	s.issuer.reset()
	s.True(errors.Is(s.key("C"), ErrPreconditionFailed))
	s.assertCmds()
}

func (s *ControllerTestSuite) TestRegionPlayLifecycle() {
	s.join("c1")
	s.Require().NoError(s.key("9"))
	s.issuer.reset()

	s.Require().NoError(s.key("4"))
	s.assertCmds(
		"play Dialogic_NetworkFuel.wav region=2 repeat=infinite",
		"overlay "+s.ctrl.overlays.showVideoLabel(2),
	)
	p, ok := s.ctrl.plays.FindByRegion(2)
	s.Require().True(ok)
	s.Equal("play-1", p.PlayID)
	s.Equal("conf-1", p.ConfID)

	s.Require().NoError(s.key("2"))
	s.Equal([]int{1, 2, 3}, s.ctrl.regions.Used())

	s.issuer.reset()
	s.Require().NoError(s.send(conference.EventEndPlay, conference.FieldTransactionID, "play-1"))
	s.assertCmds("overlay " + deleteOverlay(2, overlayLabel))
	s.Equal([]int{1, 3}, s.ctrl.regions.Used())
	s.Equal(1, s.ctrl.plays.Len())
}

func (s *ControllerTestSuite) TestPlayNeedsMedia() {
	s.join("c1")
	s.Require().NoError(s.fs.Remove(path.Join(testMediaDir, "conf_recording.vid")))
	s.issuer.reset()

	s.True(errors.Is(s.key("2"), ErrPreconditionFailed))
	s.True(errors.Is(s.key("3"), ErrPreconditionFailed))
	s.assertCmds()
	s.Equal([]int{1}, s.ctrl.regions.Used())
}

func (s *ControllerTestSuite) TestPlayFailureFreesRegion() {
	s.join("c1")
	s.issuer.fail["play"] = true

	s.True(errors.Is(s.key("5"), ErrTransportFailure))
	s.Equal([]int{1}, s.ctrl.regions.Used())
	s.Zero(s.ctrl.plays.Len())
}

func (s *ControllerTestSuite) TestPlayWithoutOpenRegion() {
	s.join("c1", "c2", "c3", "c4", "c5", "c6")
	s.Require().NoError(s.key("4"))
	s.Require().NoError(s.key("5"))
	s.Require().NoError(s.key("2"))
	s.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, s.ctrl.regions.Used())
	s.issuer.reset()

	s.True(errors.Is(s.key("4"), ErrResourceExhausted))
	s.assertCmds()
	s.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, s.ctrl.regions.Used())
	s.Equal(3, s.ctrl.plays.Len())
}

func (s *ControllerTestSuite) TestFullScreenIsExclusive() {
	s.join("c1")
	s.Require().NoError(s.key("9"))
	s.issuer.reset()

	s.Require().NoError(s.key("3"))
	s.assertCmds(
		"play conf_recording.wav region=0 repeat=0",
		"overlay "+s.ctrl.overlays.showVideoLabel(fullScreen),
	)
	s.Equal("play-1", s.ctrl.State().ExclusiveOp)
	s.Zero(s.ctrl.plays.Len())

	for _, d := range []string{"1", "2", "4", "5", "6", "7"} {
		s.True(errors.Is(s.key(d), ErrPreconditionFailed), d)
	}

	s.Require().NoError(s.send(conference.EventEndPlay, conference.FieldTransactionID, "play-1"))
	s.Empty(s.ctrl.State().ExclusiveOp)
	s.NoError(s.key("7"))
}

func (s *ControllerTestSuite) TestPromoTakeoverStopsRegionPlays() {
	s.join("c1")
	s.Require().NoError(s.key("4"))
	s.Require().NoError(s.key("5"))
	s.issuer.reset()

	s.Require().NoError(s.key("6"))
	s.assertCmds(
		"stop play-1",
		"stop play-2",
		"play Dialogic_NetworkFuel.wav region=0 repeat=infinite",
	)
	s.Equal("play-3", s.ctrl.State().ExclusiveOp)
}

func (s *ControllerTestSuite) TestStopAllPlays() {
	s.join("c1")
	s.Require().NoError(s.key("9"))
	s.Require().NoError(s.key("5"))
	s.Require().NoError(s.key("7"))
	s.issuer.reset()

	s.Require().NoError(s.key("8"))
	s.assertCmds(
		"stop play-1",
		"stop play-2",
		"overlay "+deleteOverlay(2, overlayLabel),
		"overlay "+deleteOverlay(fullScreen, overlayLabel),
	)
	// registry entries go away with their end_play events
	s.Equal(1, s.ctrl.plays.Len())
}

// A small region play ending also releases an unrelated exclusive operation.
func (s *ControllerTestSuite) TestEndPlayClearsUnrelatedExclusiveOp() {
	s.join("c1")
	s.Require().NoError(s.key("4"))
	s.Require().NoError(s.key("1"))
	s.Equal("rec-2", s.ctrl.State().ExclusiveOp)

	s.Require().NoError(s.send(conference.EventEndPlay, conference.FieldTransactionID, "play-1"))
	st := s.ctrl.State()
	s.Empty(st.ExclusiveOp)
	s.True(st.RecordInProgress)
}

func (s *ControllerTestSuite) TestEndPlayUnknown() {
	s.join("c1")
	s.Require().NoError(s.key("4"))

	err := s.send(conference.EventEndPlay, conference.FieldTransactionID, "nope")
	s.True(errors.Is(err, ErrNotFound))
	s.Equal(1, s.ctrl.plays.Len())
}

func (s *ControllerTestSuite) TestCaptions() {
	s.join("c1", "c2")
	s.Require().NoError(s.key("4"))
	s.issuer.reset()

	s.Require().NoError(s.key("9"))
	s.assertCmds(
		"overlay "+s.ctrl.overlays.showCaption(1, "Conferee #1"),
		"overlay "+s.ctrl.overlays.showCaption(2, "Conferee #2"),
		"overlay "+s.ctrl.overlays.showVideoLabel(3),
	)

	s.issuer.reset()
	s.join("c3")
	s.Equal("overlay "+s.ctrl.overlays.showCaption(4, "Conferee #3"), s.issuer.cmds[len(s.issuer.cmds)-1])

	s.issuer.reset()
	s.Require().NoError(s.key("0"))
	s.assertCmds(
		"overlay "+deleteOverlay(1, overlayCaption),
		"overlay "+deleteOverlay(2, overlayCaption),
		"overlay "+deleteOverlay(4, overlayCaption),
		"overlay "+deleteOverlay(3, overlayLabel),
	)
	s.False(s.ctrl.State().CaptionsOn)
}

func (s *ControllerTestSuite) TestTicker() {
	s.join("c1")
	s.issuer.reset()

	s.Require().NoError(s.key("B"))
	s.True(errors.Is(s.key("B"), ErrPreconditionFailed))
	s.Require().NoError(s.key("E"))
	s.True(errors.Is(s.key("E"), ErrPreconditionFailed))
	s.assertCmds(
		"overlay "+s.ctrl.overlays.showTicker(fullScreen),
		"overlay "+s.ctrl.overlays.deleteTicker(fullScreen),
	)
}

func (s *ControllerTestSuite) TestSlideShow() {
	s.join("c1")
	s.issuer.reset()

	s.Require().NoError(s.key("F"))
	s.True(errors.Is(s.key("F"), ErrPreconditionFailed))
	for _, id := range []string{"slide1", "slide2", "slide3", "r2-1"} {
		s.Require().NoError(s.send(conference.EventOverlayExpired, conference.FieldContentID, id))
	}
	s.assertCmds(
		"overlay "+s.ctrl.overlays.showSlide(fullScreen, 1),
		"overlay "+s.ctrl.overlays.showSlide(fullScreen, 2),
		"overlay "+s.ctrl.overlays.showSlide(fullScreen, 3),
		"overlay "+deleteOverlay(fullScreen, overlaySlide),
		"overlay "+s.ctrl.overlays.showSlide(fullScreen, 1),
	)
	s.Equal(1, s.ctrl.State().Slide)

	s.issuer.reset()
	s.Require().NoError(s.key("G"))
	s.Require().NoError(s.send(conference.EventOverlayExpired, conference.FieldContentID, "slide1"))
	s.assertCmds("overlay " + deleteOverlay(fullScreen, overlaySlide))
	s.False(s.ctrl.State().SlideShowOn)
}

func (s *ControllerTestSuite) TestIgnoredEvents() {
	for _, typ := range []string{
		conference.EventAccepted,
		conference.EventAlarm,
		conference.EventStream,
		conference.EventKeepalive,
		"something_new",
	} {
		s.NoError(s.send(typ))
	}
	s.assertCmds()
	s.assertIdle()
}

func (s *ControllerTestSuite) TestSnapshot() {
	s.join("c1")
	s.Require().NoError(s.key("4"))

	snap := s.ctrl.Snapshot()
	s.Equal(conference.DTMFModeSIPInfo, snap.DTMFMode)
	s.Equal([]int{1, 2}, snap.Regions)
	s.Equal([]CallLeg{{CallID: "c1", Region: 1}}, snap.Calls)
	s.Equal([]VideoPlay{{ConfID: "conf-1", PlayID: "play-1", Region: 2}}, snap.Plays)
}

func (s *ControllerTestSuite) click(from string, x, y int, function, user string) error {
	content := fmt.Sprintf("CLICK %d %d %s %s", x, y, function, user)
	return s.send(conference.EventInfo,
		conference.FieldCallID, from,
		conference.FieldResourceID, from,
		conference.FieldContent, content)
}

func (s *ControllerTestSuite) TestClickMuteToggles() {
	s.join("c1", "c2")
	s.issuer.reset()

	s.Require().NoError(s.click("c1", 100, 100, "mute", "alice"))
	s.True(s.ctrl.calls.IsAudioMuted("c1"))
	s.Require().NoError(s.click("c1", 100, 100, "mute", "alice"))
	s.False(s.ctrl.calls.IsAudioMuted("c1"))

	s.Equal([]string{
		"overlay " + s.ctrl.overlays.showMicMute(1),
		"overlay " + deleteOverlay(1, overlayMicMute),
	}, s.issuer.with("overlay"))
	s.Equal([]string{
		"party c1 audio=recvonly video=sendrecv region=-",
		"party c1 audio=sendrecv video=sendrecv region=-",
	}, s.issuer.with("party"))
}

func (s *ControllerTestSuite) TestClickHideByController() {
	s.join("c1", "c2")
	s.issuer.reset()

	// (100,700) is the lower left tile, region 2
	s.Require().NoError(s.click("c1", 100, 700, "hide", "controller"))
	s.True(s.ctrl.calls.IsVideoHidden("c2"))
	s.assertCmds("overlay " + s.ctrl.overlays.showBaghead(2))
}

func (s *ControllerTestSuite) TestClickUnauthorized() {
	s.join("c1", "c2")
	s.issuer.reset()

	err := s.click("c1", 100, 700, "mute", "alice")
	s.True(errors.Is(err, ErrUnauthorized))
	s.False(s.ctrl.calls.IsAudioMuted("c2"))
	s.assertCmds()
}

func (s *ControllerTestSuite) TestClickMisses() {
	s.join("c1")
	s.issuer.reset()

	s.True(errors.Is(s.click("c1", -5, 100, "mute", "c"), ErrNotFound))
	// region 3 is empty
	s.True(errors.Is(s.click("c1", 1200, 100, "mute", "c"), ErrNotFound))
	s.True(errors.Is(s.click("c1", 100, 100, "wave", "c"), ErrPreconditionFailed))
	s.assertCmds()
}

func (s *ControllerTestSuite) TestInfoWithoutClick() {
	s.join("c1")
	s.issuer.reset()

	s.NoError(s.send(conference.EventInfo, conference.FieldCallID, "c1", conference.FieldContent, "hello"))
	s.True(errors.Is(s.send(conference.EventInfo, conference.FieldContent, "CLICK 1"), ErrPreconditionFailed))
	s.assertCmds()
}

func (s *ControllerTestSuite) TestRotateSingleCall() {
	s.join("c1")
	s.issuer.reset()

	s.Require().NoError(s.key("*"))
	s.Equal(2, s.region("c1"))
	s.Equal([]int{2}, s.ctrl.regions.Used())
	s.assertCmds("party c1 audio= video= region=2")
}

func (s *ControllerTestSuite) TestRotateDisplacesRegionOne() {
	s.join("c1", "c2", "c3", "c4")
	s.leave("c2")
	s.leave("c3")
	s.issuer.reset()

	s.Require().NoError(s.key("*"))
	s.Equal(1, s.region("c4"))
	s.Equal(2, s.region("c1"))
	s.Equal([]int{1, 2}, s.ctrl.regions.Used())
	s.assertCmds(
		"party c4 audio= video= region=1",
		"party c1 audio=sendrecv video=sendrecv region=2",
		"overlay "+deleteOverlay(1, overlayMicMute),
		"overlay "+deleteOverlay(1, overlayBaghead),
		"overlay "+deleteOverlay(2, overlayMicMute),
		"overlay "+deleteOverlay(2, overlayBaghead),
	)
}

func (s *ControllerTestSuite) TestRotateMovesPlays() {
	s.join("c1")
	s.Require().NoError(s.key("4"))
	s.issuer.reset()

	s.Require().NoError(s.key("*"))
	s.Equal(2, s.region("c1"))
	p, ok := s.ctrl.plays.FindByID("play-1")
	s.Require().True(ok)
	s.Equal(3, p.Region)
	s.assertCmds("moveplay play-1 3", "party c1 audio= video= region=2")
}

func (s *ControllerTestSuite) TestRotateCarriesMuteOverlay() {
	s.join("c1", "c2")
	s.Require().NoError(s.click("c2", 100, 700, "mute", "bob"))
	s.issuer.reset()

	s.Require().NoError(s.key("*"))
	s.Equal(3, s.region("c2"))
	s.True(s.ctrl.calls.IsAudioMuted("c2"))
	s.Equal([]string{
		"overlay " + deleteOverlay(2, overlayMicMute),
		"overlay " + s.ctrl.overlays.showMicMute(3),
	}, s.issuer.with("overlay"))
}

func (s *ControllerTestSuite) TestRotateSkipsOffscreenRegions() {
	s.join("c1", "c2", "c3", "c4", "c5")
	s.issuer.reset()

	s.Require().NoError(s.key("*"))
	s.Equal(5, s.region("c5"))
	s.Equal(1, s.region("c4"))
	s.Equal(2, s.region("c1"))
	s.Equal(3, s.region("c2"))
	s.Equal(4, s.region("c3"))
	s.Equal([]int{1, 2, 3, 4, 5}, s.ctrl.regions.Used())
}

func (s *ControllerTestSuite) TestRotateReappliesCaptions() {
	s.join("c1")
	s.Require().NoError(s.key("9"))
	s.issuer.reset()

	s.Require().NoError(s.key("*"))
	s.assertCmds(
		"overlay "+deleteOverlay(1, overlayCaption),
		"party c1 audio= video= region=2",
		"overlay "+s.ctrl.overlays.showCaption(2, "Conferee #1"),
	)
}
