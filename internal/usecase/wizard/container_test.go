package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/internal/usecase/devfile"
)

func TestNewContainer_FirstContainerDefaults(t *testing.T) {
	store := newMemoryStore(domain.NewDevfile("devfile-sample"))
	prompter := script(accept(), accept(), accept(), accept())
	svc := NewService(store, prompter, Options{OpenAfterSave: true})

	require.NoError(t, svc.NewContainer(context.Background()))

	require.True(t, prompter.done())
	assert.Equal(t, DefaultContainerName, prompter.inputs[0].Default)
	assert.Equal(t, DefaultContainerImage, prompter.inputs[1].Default)
	assert.Equal(t, "2048Mi", prompter.inputs[2].Default)
	assert.Equal(t, "0.5", prompter.inputs[3].Default)

	c := store.doc.Component("dev")
	require.NotNil(t, c)
	require.NotNil(t, c.Container)
	assert.Equal(t, DefaultContainerImage, c.Container.Image)
	assert.True(t, c.Container.MountSources)
	assert.Equal(t, "2048Mi", c.Container.MemoryLimit)
	assert.Equal(t, "0.5", c.Container.CPULimit)

	require.Len(t, store.saves, 1)
	assert.Equal(t, "Container 'dev' has been created successfully", store.saves[0].Message)
	assert.True(t, store.saves[0].Open)
}

func TestNewContainer_SecondContainer(t *testing.T) {
	store := newMemoryStore(withContainer("dev", DefaultContainerImage))
	prompter := script(answer("tools"), answer("golang:1.24"), accept(), answer("1"))
	svc := NewService(store, prompter, Options{})

	require.NoError(t, svc.NewContainer(context.Background()))

	assert.Empty(t, prompter.inputs[0].Default)
	assert.Empty(t, prompter.inputs[1].Default)
	assert.Equal(t, "512Mi", prompter.inputs[2].Default)

	c := store.doc.Component("tools").Container
	assert.Equal(t, "golang:1.24", c.Image)
	assert.Equal(t, "512Mi", c.MemoryLimit)
	assert.Equal(t, "1", c.CPULimit)
	assert.False(t, store.saves[0].Open)
}

func TestNewContainer_SkippedLimits(t *testing.T) {
	store := newMemoryStore(domain.NewDevfile("devfile-sample"))
	prompter := script(accept(), accept(), cancel(), cancel())
	svc := NewService(store, prompter, Options{})

	require.NoError(t, svc.NewContainer(context.Background()))
	require.Len(t, store.saves, 1)

	out, err := devfile.Serialize(store.doc)
	require.NoError(t, err)

	assert.Contains(t, string(out), "  - name: dev\n")
	assert.Contains(t, string(out), "image: quay.io/devfile/universal-developer-image:latest\n")
	assert.Contains(t, string(out), "mountSources: true\n")
	assert.NotContains(t, string(out), "memoryLimit")
	assert.NotContains(t, string(out), "cpuLimit")
}

func TestNewContainer_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		steps    []step
		expected error
	}{
		{name: "empty name", steps: []step{answer("")}, expected: domain.ErrEmptyValue},
		{name: "duplicate name", steps: []step{answer("dev")}, expected: domain.ErrComponentExists},
		{name: "invalid name", steps: []step{answer("My Container")}, expected: domain.ErrInvalidName},
		{name: "empty image", steps: []step{answer("tools"), answer("")}, expected: domain.ErrEmptyValue},
		{name: "duplicate image", steps: []step{answer("tools"), answer(DefaultContainerImage)}, expected: domain.ErrImageExists},
		{name: "same image without tag", steps: []step{answer("tools"), answer("quay.io/devfile/universal-developer-image")}, expected: domain.ErrImageExists},
		{name: "cancelled name", steps: []step{cancel()}, expected: domain.ErrUserCancelled},
		{name: "cancelled image", steps: []step{answer("tools"), cancel()}, expected: domain.ErrUserCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore(withContainer("dev", DefaultContainerImage))
			svc := NewService(store, script(tt.steps...), Options{})

			err := svc.NewContainer(context.Background())

			assert.ErrorIs(t, err, tt.expected)
			assert.Len(t, store.doc.Components, 1)
			assert.Empty(t, store.saves)
		})
	}
}

func TestNewContainer_WithoutDocument(t *testing.T) {
	store := newMemoryStore(nil)
	store.blocked = domain.ErrValidationFailed
	prompter := script()
	svc := NewService(store, prompter, Options{})

	err := svc.NewContainer(context.Background())

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.Empty(t, prompter.inputs)
}

func TestNewContainer_NoDocument(t *testing.T) {
	svc := NewService(newMemoryStore(nil), script(), Options{})

	assert.ErrorIs(t, svc.NewContainer(context.Background()), domain.ErrNoDevfile)
}

func TestNewContainer_SaveFailure(t *testing.T) {
	store := newMemoryStore(domain.NewDevfile("devfile-sample"))
	store.saveErr = domain.ErrSaveForbidden
	svc := NewService(store, script(accept(), accept(), accept(), accept()), Options{})

	err := svc.NewContainer(context.Background())

	assert.ErrorIs(t, err, domain.ErrSaveForbidden)
	// The mutation stays in memory.
	assert.NotNil(t, store.doc.Component("dev"))
}
