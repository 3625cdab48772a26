package viewer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const content = "schemaVersion: 2.2.0\nmetadata:\n  name: devfile-sample\n"

func writeDevfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".devfile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTerminal_PlainWhenColorDisabled(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	v := NewTerminal(&buf, "")

	require.NoError(t, v.Open(context.Background(), writeDevfile(t)))
	assert.Equal(t, content, buf.String())
}

func TestTerminal_Highlighted(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	v := NewTerminal(&buf, "monokai")

	require.NoError(t, v.Open(context.Background(), writeDevfile(t)))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "devfile-sample")
}

func TestTerminal_MissingFile(t *testing.T) {
	v := NewTerminal(&bytes.Buffer{}, "")

	err := v.Open(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEditor_Open(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on cat")
	}
	var stdout bytes.Buffer
	e := NewEditor("cat")
	e.stdout = &stdout

	require.NoError(t, e.Open(context.Background(), writeDevfile(t)))
	assert.Equal(t, content, stdout.String())
}

func TestEditor_Failure(t *testing.T) {
	e := NewEditor("definitely-not-an-editor-binary")

	assert.Error(t, e.Open(context.Background(), writeDevfile(t)))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &Editor{}, New("vim", "", &buf))
	assert.IsType(t, &Terminal{}, New("  ", "", &buf))

	terminal := New("", "", &buf).(*Terminal)
	assert.Equal(t, DefaultStyle, terminal.style)
	assert.Same(t, &buf, terminal.w)
}
