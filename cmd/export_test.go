package cmd

import (
	"encoding/json"
	"testing"

	"github.com/josephgoksu/todo/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestExportCmd_StdoutJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	mustRun(t, fs, "add", "Groceries", "Buy milk", "incomplete")
	mustRun(t, fs, "add", "Work", "Report", "complete")

	out := mustRun(t, fs, "export")

	var got models.TaskList
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.TotalCount)
	assert.Equal(t, "Report", got.Tasks[1].Description)
}

func TestExportCmd_MissingListKeepsStdoutClean(t *testing.T) {
	out := mustRun(t, afero.NewMemMapFs(), "export")

	assert.JSONEq(t, `{"totalCount":0,"tasks":[]}`, out)
}

func TestExportCmd_OutputFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	mustRun(t, fs, "add", "Groceries", "Buy milk", "in progress")

	out := mustRun(t, fs, "export", "--format", "yaml", "--output", "backup/tasks.yaml")

	assert.Equal(t, "Exported 1 tasks to 'backup/tasks.yaml'.\n", out)
	data, err := afero.ReadFile(fs, "backup/tasks.yaml")
	require.NoError(t, err)
	var got models.TaskList
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, models.StatusInProgress, got.Tasks[0].Status)
}

func TestExportCmd_UnsupportedFormat(t *testing.T) {
	res := runCLI(t, afero.NewMemMapFs(), "export", "--format", "csv")

	require.Error(t, res.err)
	assert.Equal(t, 2, exitCode(res.err))
	assert.Contains(t, res.err.Error(), "unsupported export format")
}
