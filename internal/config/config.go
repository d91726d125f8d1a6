package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFileEnv names an optional yaml/json/toml file read before env and flags.
const ConfigFileEnv = "CONFIG_FILE"

var validate = validator.New(validator.WithRequiredStructEnabled())

func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	return v
}

// Load applies defaults through configure, then the optional config file,
// then flags, and finally validates c with its `validate` tags.
// Precedence follows viper: flag > env > file > default.
func Load[T any](c *T, flags *pflag.FlagSet, configure func(v *viper.Viper)) (*T, error) {
	v := NewViper()
	configure(v)

	if file := os.Getenv(ConfigFileEnv); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", file)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := validate.Struct(c); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return c, nil
}
