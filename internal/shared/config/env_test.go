package config

import (
	"os"
	"testing"
	"time"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/stretchr/testify/assert"
)

func buildTestConfig() *EnvConfig {
	return NewEnvConfig(logutil.NewStderrLog("test"))
}

func TestGetStringUppercasesKey(t *testing.T) {
	os.Setenv("TEST_CONFIG_KEY", "v")
	defer os.Unsetenv("TEST_CONFIG_KEY")

	cfg := buildTestConfig()
	assert.Equal(t, "v", cfg.GetString("test_config_key"))
	assert.Equal(t, "v", cfg.GetString("TEST_CONFIG_KEY"))
}

func TestGetStringList(t *testing.T) {
	os.Setenv("TEST_CONFIG_LIST", "a, b,,c")
	defer os.Unsetenv("TEST_CONFIG_LIST")

	cfg := buildTestConfig()
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetStringList("test_config_list"))
	assert.Nil(t, cfg.GetStringList("test_config_list_missing"))
}

func TestGetIntFallsBackToDefault(t *testing.T) {
	os.Setenv("TEST_CONFIG_INT", "not an int")
	defer os.Unsetenv("TEST_CONFIG_INT")

	cfg := buildTestConfig()
	assert.Equal(t, 42, cfg.GetInt("test_config_int", 42))
	assert.Equal(t, 7, cfg.GetInt("test_config_int_missing", 7))

	os.Setenv("TEST_CONFIG_INT", "13")
	assert.Equal(t, 13, cfg.GetInt("test_config_int", 42))
}

func TestGetDuration(t *testing.T) {
	os.Setenv("TEST_CONFIG_DURATION", "15m")
	defer os.Unsetenv("TEST_CONFIG_DURATION")

	cfg := buildTestConfig()
	assert.Equal(t, 15*time.Minute, cfg.GetDuration("test_config_duration", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("test_config_duration_missing", time.Second))
}

func TestGetBool(t *testing.T) {
	os.Setenv("TEST_CONFIG_BOOL", "1")
	defer os.Unsetenv("TEST_CONFIG_BOOL")

	cfg := buildTestConfig()
	assert.True(t, cfg.GetBool("test_config_bool", false))

	os.Setenv("TEST_CONFIG_BOOL", "false")
	assert.False(t, cfg.GetBool("test_config_bool", true))

	os.Setenv("TEST_CONFIG_BOOL", "garbage")
	assert.True(t, cfg.GetBool("test_config_bool", true))
}
