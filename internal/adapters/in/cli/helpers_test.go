package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
)

// defaultsPrompter accepts every input default and answers selections from a
// queue. An empty queue dismisses the prompt.
type defaultsPrompter struct {
	selects []int
	infos   []string
}

func (p *defaultsPrompter) Input(_ context.Context, cfg out.InputConfig) (string, error) {
	if cfg.Validate != nil {
		if err := cfg.Validate(cfg.Default); err != nil {
			return "", fmt.Errorf("default %q of %q rejected: %w", cfg.Default, cfg.Message, err)
		}
	}
	return cfg.Default, nil
}

func (p *defaultsPrompter) Select(_ context.Context, _ out.SelectConfig) (int, error) {
	if len(p.selects) == 0 {
		return 0, domain.ErrUserCancelled
	}
	idx := p.selects[0]
	p.selects = p.selects[1:]
	return idx, nil
}

func (p *defaultsPrompter) Info(_ context.Context, msg string) error {
	p.infos = append(p.infos, msg)
	return nil
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// project creates an isolated project directory and returns its path.
func project(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DEVWORKSPACE_NAME", "")
	t.Setenv("DEVFILE_LOG_LEVEL", "error")
	root := filepath.Join(t.TempDir(), "webapp")
	require.NoError(t, os.Mkdir(root, 0755))
	t.Chdir(root)
	return root
}

func execute(t *testing.T, prompter out.Prompter, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(prompter)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return ansi.ReplaceAllString(buf.String(), ""), err
}

func readDevfile(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, ".devfile.yaml"))
	require.NoError(t, err)
	return string(data)
}
