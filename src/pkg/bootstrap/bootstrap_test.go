package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remote-report/src/pkg/businessday"
	echomw "remote-report/src/pkg/echo-middleware"
	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/report"
)

func TestInitializePackages(t *testing.T) {
	previousReport, previousRemotes, previousPreview := report.Cfg, remotes.Cfg, echomw.Cfg
	t.Cleanup(func() {
		report.Cfg, remotes.Cfg, echomw.Cfg = previousReport, previousRemotes, previousPreview
	})

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"report": {"recipients": ["jefe@example.com"], "threshold": 10},
		"remotes": {"labels": {"name": "Funcionario"}},
		"preview": {"port": 9000}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	InitializePackages(path)

	assert.Equal(t, []string{"jefe@example.com"}, report.Cfg.Recipients)
	assert.Equal(t, 10.0, report.Cfg.Threshold)
	assert.Equal(t, "files", report.Cfg.OutputDir)
	assert.Equal(t, "Funcionario", remotes.Cfg.Labels.Name)
	assert.Equal(t, "Rut", remotes.Cfg.Labels.EmployeeID)
	assert.NotEmpty(t, remotes.Cfg.TodayQuery)
	assert.Equal(t, 9000, echomw.Cfg.Port)
	assert.Equal(t, "127.0.0.1", echomw.Cfg.Address)
	assert.Equal(t, businessday.DefaultValueConfig(), businessday.Cfg)
}
