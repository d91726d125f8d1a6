package log

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type ModuleLevelTestSuite struct {
	suite.Suite
	originalEnvFunc func(string) (string, bool)
	testEnv         map[string]string
}

func TestModuleLevelTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleLevelTestSuite))
}

func (s *ModuleLevelTestSuite) SetupTest() {
	s.originalEnvFunc = envFunc
	s.testEnv = map[string]string{}
	envFunc = func(key string) (string, bool) {
		v := strings.TrimSpace(s.testEnv[key])
		return v, v != ""
	}
}

func (s *ModuleLevelTestSuite) TearDownTest() {
	envFunc = s.originalEnvFunc
}

func (s *ModuleLevelTestSuite) TestDefaultsToInfo() {
	s.Equal(zapcore.InfoLevel, moduleLevel([]string{"Session"}))
	s.Equal(zapcore.InfoLevel, moduleLevel(nil))
}

func (s *ModuleLevelTestSuite) TestGlobalLevel() {
	s.testEnv["LOG_LEVEL"] = "debug"
	s.Equal(zapcore.DebugLevel, moduleLevel([]string{"Session"}))
}

func (s *ModuleLevelTestSuite) TestMostSpecificWins() {
	s.testEnv["LOG_LEVEL"] = "warn"
	s.testEnv["LOG_LEVEL__XMS_CLIENT"] = "info"
	s.testEnv["LOG_LEVEL__XMS_CLIENT__EVENT_LISTENER"] = "debug"

	s.Equal(zapcore.DebugLevel, moduleLevel([]string{"XmsClient", "EventListener"}))
	s.Equal(zapcore.InfoLevel, moduleLevel([]string{"XmsClient", "Commands"}))
	s.Equal(zapcore.WarnLevel, moduleLevel([]string{"Reactor"}))
}

func (s *ModuleLevelTestSuite) TestInvalidLevelFallsBack() {
	s.testEnv["LOG_LEVEL__SESSION"] = "chatty"
	s.testEnv["LOG_LEVEL"] = "error"
	s.Equal(zapcore.ErrorLevel, moduleLevel([]string{"Session"}))
}

func (s *ModuleLevelTestSuite) TestWhitespaceAndCase() {
	s.testEnv["LOG_LEVEL__SESSION"] = "  DEBUG "
	s.Equal(zapcore.DebugLevel, moduleLevel([]string{"Session"}))
}

func (s *ModuleLevelTestSuite) TestParseLevel() {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		lv, ok := parseLevel(in)
		s.True(ok, in)
		s.Equal(want, lv, in)
	}
	_, ok := parseLevel("trace")
	s.False(ok)
}

func (s *ModuleLevelTestSuite) TestModuleAndWith() {
	logger := NewTest(s.T())
	child := logger.With(ConfID("conf-1")).Module("Session")
	s.Equal([]string{"Session"}, child.names)
	s.NotNil(child.Module("Rotation").Logger)
}
