package xms

import (
	"time"

	"github.com/spf13/viper"

	"github.com/imtaco/xms-confctl/internal/retry"
)

type Config struct {
	// Addr is the REST base URL of the media server, e.g. http://10.0.0.5:81.
	Addr  string `mapstructure:"addr" validate:"required,url"`
	AppID string `mapstructure:"app_id" validate:"required"`
	// Timeout bounds each command; the event long-poll has no timeout.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	// RateLimit is commands per second; 0 disables pacing.
	RateLimit float64      `mapstructure:"rate_limit" validate:"gte=0"`
	Burst     int          `mapstructure:"burst" validate:"gte=1"`
	Retry     retry.Config `mapstructure:"retry"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("addr"), "http://127.0.0.1:81")
	v.SetDefault(p("app_id"), "app")
	v.SetDefault(p("timeout"), "10s")
	v.SetDefault(p("rate_limit"), 50)
	v.SetDefault(p("burst"), 10)
	retry.Setup(v, p("retry"))
}
