package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleSection struct {
	OutputDir  string   `json:"output_dir"`
	Recipients []string `json:"recipients"`
	Threshold  float64  `json:"threshold"`
}

func TestSection_DecodesJSONTags(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"report": {"output_dir": "./files", "recipients": ["a@example.com", "b@example.com"], "threshold": 8.5}}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	InitializeConfig(configPath)
	t.Cleanup(func() { settings = nil })

	section := Section[sampleSection]("report")
	require.NotNil(t, section)
	assert.Equal(t, "./files", section.OutputDir)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, section.Recipients)
	assert.Equal(t, 8.5, section.Threshold)

	assert.Nil(t, Section[sampleSection]("missing"))
}

func TestInitializeConfig_MissingFileKeepsDefaults(t *testing.T) {
	InitializeConfig(filepath.Join(t.TempDir(), "absent.json"))

	assert.Nil(t, Section[sampleSection]("report"))
}

func TestEnv(t *testing.T) {
	t.Setenv("REMOTE_REPORT_TEST_VALUE", "  value ")
	assert.Equal(t, "value", Env("REMOTE_REPORT_TEST_VALUE", "fallback"))

	t.Setenv("REMOTE_REPORT_TEST_VALUE", "")
	assert.Equal(t, "fallback", Env("REMOTE_REPORT_TEST_VALUE", "fallback"))
}
