package config

import (
	"time"

	"github.com/spf13/viper"
)

type App struct {
	LogConfigFile   string        `mapstructure:"log_config_file"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// QueueSize bounds the event queue between the XMS listener and the reactor.
	QueueSize int `mapstructure:"queue_size" validate:"gt=0"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("log_config_file"), "") // empty means console logger
	v.SetDefault(p("shutdown_timeout"), "10s")
	v.SetDefault(p("queue_size"), 256)
}
