package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestTable_Render(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Name"},
		Rows: [][]string{
			{"1", "Alice"},
			{"2", "Bob"},
		},
		Widths: []int{3, 6},
		Rule:   "----------",
	}

	output := table.Render()

	want := "ID  Name  \n" +
		"----------\n" +
		"1   Alice \n" +
		"2   Bob   \n"
	assert.Equal(t, want, output)
}

func TestTable_Render_Empty(t *testing.T) {
	table := &Table{
		Headers: []string{},
		Rows:    [][]string{},
	}

	output := table.Render()
	assert.Empty(t, output)
}

func TestTable_Render_NoTruncation(t *testing.T) {
	table := &Table{
		Headers: []string{"Text", "Next"},
		Rows:    [][]string{{"This is way too long", "x"}},
		Widths:  []int{6, 4},
	}

	output := table.Render()

	assert.Contains(t, output, "This is way too long x   \n")
	assert.NotContains(t, output, "…")
}

func TestTable_Render_NoRule(t *testing.T) {
	table := &Table{
		Headers: []string{"A"},
		Rows:    [][]string{{"1"}},
	}

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	assert.Equal(t, []string{"A", "1"}, lines)
}

func TestTable_Render_RowsHaveFewerColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Name", "Status"},
		Rows: [][]string{
			{"1", "Alice"}, // Missing Status column
		},
		Rule: "--",
	}

	output := table.Render()

	// Should not panic and should render what's available
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Alice")
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, 3, len(lines))
}

func TestTable_Render_Styled(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.ANSI256)

	table := &Table{
		Headers:  []string{"ID"},
		Rows:     [][]string{{"1"}},
		Widths:   []int{4},
		Renderer: r,
	}

	output := table.Render()

	assert.Contains(t, output, "\x1b[")
	assert.Contains(t, output, "ID  ")
	assert.Contains(t, output, "1   ")
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 5, "abc  "},
		{"hello", 5, "hello"},
		{"longer", 3, "longer"},
		{"", 3, "   "},
		{"café", 6, "café  "},
	}

	for _, tc := range tests {
		result := padRight(tc.input, tc.width)
		assert.Equal(t, tc.expected, result)
	}
}
