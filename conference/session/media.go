package session

import (
	"path"

	"github.com/spf13/afero"

	"github.com/imtaco/xms-confctl/conference"
)

// Clip names a pair of <name>.wav / <name>.vid files in the media directory.
type Clip string

const (
	ClipRecording Clip = "conf_recording"
	ClipPromo     Clip = "Dialogic_NetworkFuel"
	ClipDemo      Clip = "sintel_short_clip"
)

const (
	audioType = "audio/x-wav"
	videoType = "video/x-vid"

	repeatOnce     = "0"
	repeatInfinite = "infinite"

	recordMaxTime = "60s"
)

// MediaLibrary resolves clips against the media directory on the local
// file system (as seen by the controller) and against the media server's
// URI namespace.
type MediaLibrary struct {
	fs      afero.Fs
	dir     string
	baseURI string
}

func NewMediaLibrary(fs afero.Fs, dir, baseURI string) *MediaLibrary {
	return &MediaLibrary{fs: fs, dir: dir, baseURI: baseURI}
}

// Exists reports whether both halves of the clip are present.
func (m *MediaLibrary) Exists(clip Clip) bool {
	for _, ext := range []string{".wav", ".vid"} {
		ok, err := afero.Exists(m.fs, path.Join(m.dir, string(clip)+ext))
		if err != nil || !ok {
			return false
		}
	}
	return true
}

func (m *MediaLibrary) PlayRequest(clip Clip, region int, repeat string) conference.PlayRequest {
	return conference.PlayRequest{
		Audio: conference.MediaSource{
			URI:     string(clip) + ".wav",
			BaseURI: m.baseURI,
			Type:    audioType,
		},
		Video: conference.MediaSource{
			URI:     string(clip) + ".vid",
			BaseURI: m.baseURI,
			Type:    videoType,
		},
		Region: region,
		Repeat: repeat,
	}
}

func (m *MediaLibrary) RecordRequest() conference.RecordRequest {
	return conference.RecordRequest{
		AudioURI:  m.baseURI + "/" + string(ClipRecording) + ".wav",
		AudioType: audioType,
		VideoURI:  m.baseURI + "/" + string(ClipRecording) + ".vid",
		VideoType: videoType,
		MaxTime:   recordMaxTime,
	}
}
