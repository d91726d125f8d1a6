package session

import (
	"github.com/spf13/viper"
)

type Config struct {
	DTMFMode string `mapstructure:"dtmf_mode" validate:"oneof=rfc2833 sipinfo"`
	// Resolution is both the conference layout size and the click canvas.
	Resolution string `mapstructure:"resolution" validate:"oneof=cif vga 720p"`
	// MediaDir is where the media server keeps demo clips and overlay images.
	MediaDir string `mapstructure:"media_dir" validate:"required"`
	// MediaURI is MediaDir as addressed in play and record commands.
	MediaURI string `mapstructure:"media_uri" validate:"required"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("dtmf_mode"), "sipinfo")
	v.SetDefault(p("resolution"), "720p")
	v.SetDefault(p("media_dir"), "/var/lib/xms/media/en-US/restconfdemo")
	v.SetDefault(p("media_uri"), "file://restconfdemo")
}
