package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type testConfig struct {
	App  App    `mapstructure:"app"`
	Mode string `mapstructure:"mode" validate:"oneof=rfc2833 sipinfo"`
	Port int    `mapstructure:"port"`
}

func setupTest(v *viper.Viper) {
	Setup(v, "app")
	v.SetDefault("mode", "sipinfo")
	v.SetDefault("port", 81)
}

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load(&testConfig{}, nil, setupTest)
	s.Require().NoError(err)
	s.Equal("sipinfo", cfg.Mode)
	s.Equal(81, cfg.Port)
	s.Equal(10*time.Second, cfg.App.ShutdownTimeout)
	s.Equal(256, cfg.App.QueueSize)
}

func (s *ConfigTestSuite) TestEnvOverrides() {
	s.T().Setenv("MODE", "rfc2833")
	s.T().Setenv("APP_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(&testConfig{}, nil, setupTest)
	s.Require().NoError(err)
	s.Equal("rfc2833", cfg.Mode)
	s.Equal(3*time.Second, cfg.App.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestFlagOverridesEnv() {
	s.T().Setenv("PORT", "82")
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 81, "")
	s.Require().NoError(flags.Parse([]string{"--port=83"}))

	cfg, err := Load(&testConfig{}, flags, setupTest)
	s.Require().NoError(err)
	s.Equal(83, cfg.Port)
}

func (s *ConfigTestSuite) TestConfigFile() {
	file := filepath.Join(s.T().TempDir(), "confctl.yaml")
	s.Require().NoError(os.WriteFile(file, []byte("port: 90\napp:\n  queue_size: 8\n"), 0o600))
	s.T().Setenv(ConfigFileEnv, file)

	cfg, err := Load(&testConfig{}, nil, setupTest)
	s.Require().NoError(err)
	s.Equal(90, cfg.Port)
	s.Equal(8, cfg.App.QueueSize)
}

func (s *ConfigTestSuite) TestValidationFails() {
	s.T().Setenv("MODE", "inband")

	_, err := Load(&testConfig{}, nil, setupTest)
	s.Error(err)
}
