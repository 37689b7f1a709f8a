package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/todo/models"
	yaml "gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ExportFormats lists the names accepted by Export.
func ExportFormats() []string {
	return []string{FormatJSON, FormatYAML, FormatTOML}
}

// Export marshals tasks as a models.TaskList in the named format.
// JSON uses 2-space indentation; every format ends with a newline.
func Export(tasks []models.Task, format string) ([]byte, error) {
	taskList := models.NewTaskList(tasks)

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err = json.MarshalIndent(taskList, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(taskList)
	case FormatTOML:
		buf := new(bytes.Buffer)
		err = toml.NewEncoder(buf).Encode(taskList)
		data = buf.Bytes()
	default:
		return nil, fmt.Errorf("%w: %s. Supported formats are %s", ErrUnsupportedFormat, format, strings.Join(ExportFormats(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks to %s: %w", format, err)
	}
	return data, nil
}
