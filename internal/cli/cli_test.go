package cli

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/porquinho-server/internal/projection"
	"github.com/carson-networks/porquinho-server/internal/service"
)

func localOnlyEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PORQUINHO_SQLITE_PATH", filepath.Join(dir, "porquinho.db"))
	t.Setenv("PORQUINHO_POSTGRES_ADDRESS", "")
	t.Setenv("PORQUINHO_REDIS_ADDRESS", "")
	t.Setenv("PORQUINHO_GEMINI_API_KEY", "")
	t.Setenv("PORQUINHO_CONFIG_FILE", "")
	t.Setenv("PORQUINHO_LOG_LEVEL", "error")
	return dir
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableStyling()
	t.Cleanup(func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableStyling()
	})
	return &buf
}

func TestProjectionTableData(t *testing.T) {
	svc := service.NewProjectionService(nil, projection.DefaultRates())

	data := projectionTableData(svc.SimulateFrom(1000, 100, 3))

	require.Len(t, data, 4)
	assert.Equal(t, []string{"Mês", "Saldo", "Rendimento", "Total investido"}, data[0])
	assert.Equal(t, []string{"1", "R$ 1.108,47", "R$ 8,47", "R$ 1.100,00"}, data[1])
	assert.Equal(t, []string{"3", "R$ 1.328,17", "R$ 10,31", "R$ 1.300,00"}, data[3])
}

func TestProjectFlags_Validate(t *testing.T) {
	assert.NoError(t, projectFlags{contribution: 100, months: 12}.validate())
	assert.NoError(t, projectFlags{months: 0}.validate())
	assert.Error(t, projectFlags{contribution: -1, months: 12}.validate())
	assert.Error(t, projectFlags{months: -1}.validate())
	assert.Error(t, projectFlags{months: service.MaxProjectionMonths + 1}.validate())
	assert.Error(t, projectFlags{initial: -10, months: 12}.validate())
	assert.Error(t, projectFlags{contribution: math.NaN(), months: 12}.validate())
	assert.Error(t, projectFlags{contribution: math.Inf(1), months: 12}.validate())
	assert.Error(t, projectFlags{contribution: service.MaxMonthlyContribution + 1, months: 12}.validate())
	assert.Error(t, projectFlags{initial: math.NaN(), months: 12}.validate())
	assert.Error(t, projectFlags{initial: math.Inf(1), months: 12}.validate())
}

func TestProjectCommand_RejectsNaNContribution(t *testing.T) {
	localOnlyEnv(t)

	app := NewApp("test")
	app.SetArgs([]string{"project", "--contribution", "NaN", "--initial", "100"})

	assert.Error(t, app.Execute())
}

func TestProjectCommand_ExplicitInitial(t *testing.T) {
	localOnlyEnv(t)
	out := captureOutput(t)

	app := NewApp("test")
	app.SetArgs([]string{"project", "--initial", "1000", "--contribution", "100", "--months", "3"})

	require.NoError(t, app.Execute())
	assert.Contains(t, out.String(), "R$ 1.328,17")
	assert.Contains(t, out.String(), "0,85%")
}

func TestProjectCommand_RejectsBadMonths(t *testing.T) {
	localOnlyEnv(t)

	app := NewApp("test")
	app.SetArgs([]string{"project", "--months", "601"})

	assert.Error(t, app.Execute())
}

func TestSyncCommand_NoRemote(t *testing.T) {
	localOnlyEnv(t)

	app := NewApp("test")
	app.SetArgs([]string{"sync"})

	err := app.Execute()

	assert.ErrorIs(t, err, service.ErrRemoteUnavailable)
}

func TestReportCommand(t *testing.T) {
	dir := localOnlyEnv(t)
	captureOutput(t)
	out := filepath.Join(dir, "report.pdf")

	app := NewApp("test")
	app.SetArgs([]string{"report", "--out", out, "--contribution", "200", "--months", "6"})

	require.NoError(t, app.Execute())
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}
