package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/version"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"new", "container", "endpoint", "env", "command", "save", "status", "show", "version"}, names)

	for _, flag := range []string{"config", "root", "log-level", "open"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCmd(t *testing.T) {
	version.Set("1.2.3", "abc123", "2026-10-01")
	defer version.Set("dev", "unknown", "unknown")

	output, err := execute(t, &defaultsPrompter{}, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "devfile 1.2.3")
	assert.Contains(t, output, "Commit: abc123")

	output, err = execute(t, &defaultsPrompter{}, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", output)
}

func TestStatusCmd_FreshProject(t *testing.T) {
	root := project(t)

	output, err := execute(t, &defaultsPrompter{}, "status")
	require.NoError(t, err)

	assert.Contains(t, output, filepath.Join(root, ".devfile.yaml"))
	assert.Contains(t, output, "not-exist")
	assert.Contains(t, output, "silent")
	assert.Contains(t, output, "webapp")
	assert.Contains(t, output, "2.2.0")
	assert.Contains(t, output, "Not written yet")
}

func TestStatusCmd_InvalidDevfile(t *testing.T) {
	root := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "devfile.yaml"), []byte("schemaVersion: 1.0.0\n"), 0644))

	output, err := execute(t, &defaultsPrompter{}, "status")
	require.NoError(t, err)

	assert.Contains(t, output, "forbidden")
	assert.Contains(t, output, "devfile validation failed")
}

func TestStatusCmd_RootFlag(t *testing.T) {
	project(t)
	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, ".devfile.yaml"), []byte(`schemaVersion: 2.2.0
metadata:
  name: other
components:
  - name: dev
    container:
      image: golang:1.24
commands:
  - id: build
    exec:
      component: dev
      commandLine: go build ./...
`), 0644))

	output, err := execute(t, &defaultsPrompter{}, "status", "--root", other)
	require.NoError(t, err)

	assert.Contains(t, output, "exist")
	assert.Contains(t, output, "loaded from disk")
	assert.Contains(t, output, "golang:1.24")
	assert.Contains(t, output, "go build ./...")
}

func TestShowCmd(t *testing.T) {
	project(t)

	output, err := execute(t, &defaultsPrompter{}, "show")
	require.NoError(t, err)

	assert.Contains(t, output, "schemaVersion: 2.2.0")
	assert.Contains(t, output, "name: webapp")
}

func TestShowCmd_Blocked(t *testing.T) {
	root := project(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, ".devfile.yaml"), 0755))

	_, err := execute(t, &defaultsPrompter{}, "show")
	assert.True(t, errors.Is(err, domain.ErrNotAFile))
}

func TestSaveCmd_WritesFreshDevfile(t *testing.T) {
	root := project(t)
	prompter := &defaultsPrompter{}

	_, err := execute(t, prompter, "save")
	require.NoError(t, err)

	assert.Contains(t, readDevfile(t, root), "name: webapp")
	require.Len(t, prompter.infos, 1)
	assert.Contains(t, prompter.infos[0], "Devfile saved to")
}

func TestSaveCmd_CancelledUpdate(t *testing.T) {
	root := project(t)
	original := "schemaVersion: 2.2.0\nmetadata:\n  name:   spaced\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".devfile.yaml"), []byte(original), 0644))

	_, err := execute(t, &defaultsPrompter{selects: []int{1}}, "save")
	require.NoError(t, err)

	assert.Equal(t, original, readDevfile(t, root))
}

func TestSaveCmd_ConfirmedUpdate(t *testing.T) {
	root := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".devfile.yaml"), []byte("schemaVersion: 2.2.0\nmetadata:\n  name:   spaced\n"), 0644))

	_, err := execute(t, &defaultsPrompter{selects: []int{0}}, "save")
	require.NoError(t, err)

	assert.Equal(t, "schemaVersion: 2.2.0\nmetadata:\n  name: spaced\n", readDevfile(t, root))
}

func TestSaveCmd_RefusesInvalidDevfile(t *testing.T) {
	root := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".devfile.yaml"), []byte("not: [valid"), 0644))

	_, err := execute(t, &defaultsPrompter{}, "save")

	assert.True(t, errors.Is(err, domain.ErrSaveForbidden))
	assert.True(t, errors.Is(err, domain.ErrValidationFailed))
	assert.Equal(t, "not: [valid", readDevfile(t, root))
}

func TestContainerCmd_Defaults(t *testing.T) {
	root := project(t)
	prompter := &defaultsPrompter{}

	_, err := execute(t, prompter, "container")
	require.NoError(t, err)

	content := readDevfile(t, root)
	assert.Contains(t, content, "name: dev")
	assert.Contains(t, content, "image: quay.io/devfile/universal-developer-image:latest")
	assert.Contains(t, content, "memoryLimit: '2048Mi'")
	assert.Contains(t, content, "mountSources: true")
	assert.Equal(t, []string{"Container 'dev' has been created successfully"}, prompter.infos)
}

func TestEnvCmd_CancelledWithoutContainer(t *testing.T) {
	root := project(t)

	_, err := execute(t, &defaultsPrompter{selects: []int{1}}, "env")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(root, ".devfile.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCommandCmd_CreatesContainerFirst(t *testing.T) {
	root := project(t)
	// New Container, then decline a second command.
	prompter := &defaultsPrompter{selects: []int{0, 1}}

	_, err := execute(t, prompter, "command")
	require.NoError(t, err)

	content := readDevfile(t, root)
	assert.Contains(t, content, "id: command-1")
	assert.Contains(t, content, "label: Sample Command")
	assert.Contains(t, content, "component: dev")
	assert.Len(t, prompter.infos, 2)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, domain.ErrValidationFailed)

	assert.Contains(t, buf.String(), "Error: devfile validation failed")
	assert.Contains(t, buf.String(), "left untouched")

	buf.Reset()
	PrintError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", ansi.ReplaceAllString(buf.String(), ""))
}
