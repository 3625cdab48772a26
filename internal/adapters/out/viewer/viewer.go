// Package viewer implements the DocumentViewer port, either by printing the
// devfile with syntax highlighting or by handing it to an external editor.
package viewer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// New returns an Editor when editor is set, otherwise a Terminal viewer
// writing to w.
func New(editor, style string, w io.Writer) out.DocumentViewer {
	if strings.TrimSpace(editor) != "" {
		return NewEditor(editor)
	}
	return NewTerminal(w, style)
}

// Terminal prints a devfile with YAML syntax highlighting.
type Terminal struct {
	w     io.Writer
	style string
}

var _ out.DocumentViewer = (*Terminal)(nil)

// NewTerminal creates a viewer printing to w.
func NewTerminal(w io.Writer, style string) *Terminal {
	if style == "" {
		style = DefaultStyle
	}
	return &Terminal{w: w, style: style}
}

// Open prints the file at path.
func (t *Terminal) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t.Render(data)
}

// Render prints raw devfile content.
func (t *Terminal) Render(data []byte) error {
	if color.NoColor {
		_, err := t.w.Write(data)
		return err
	}

	var buf strings.Builder
	if err := quick.Highlight(&buf, string(data), "yaml", "terminal256", t.style); err != nil {
		logger.Debug("Highlighting failed, printing plain text", "style", t.style, "error", err)
		_, err := t.w.Write(data)
		return err
	}
	_, err := io.WriteString(t.w, buf.String())
	return err
}

// Editor opens a devfile in an external program, such as "code --wait" or
// "vim". The path is appended as the last argument.
type Editor struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

var _ out.DocumentViewer = (*Editor)(nil)

// NewEditor creates a viewer running command attached to the process stdio.
func NewEditor(command string) *Editor {
	return &Editor{command: command, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Open runs the editor on path and waits for it to exit.
func (e *Editor) Open(ctx context.Context, path string) error {
	fields := strings.Fields(e.command)
	if len(fields) == 0 {
		return fmt.Errorf("no editor configured")
	}

	args := append(fields[1:], path)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	logger.Debug("Opening devfile in editor", "editor", fields[0], "path", path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", fields[0], err)
	}
	return nil
}
