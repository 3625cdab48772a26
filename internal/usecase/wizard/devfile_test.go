package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devfile-wizard/internal/domain"
)

func TestNewDevfile_Fresh(t *testing.T) {
	store := newMemoryStore(domain.NewDevfile("devfile-sample"))
	store.defaultName = "my-project"
	prompter := script(accept())
	svc := NewService(store, prompter, Options{})

	require.NoError(t, svc.NewDevfile(context.Background()))

	assert.Empty(t, prompter.selects)
	assert.Equal(t, "my-project", prompter.inputs[0].Default)
	assert.Equal(t, "my-project", store.doc.Metadata.Name)
	assert.Equal(t, []string{"Devfile 'my-project' has been created successfully"}, store.messages())
}

func TestNewDevfile_ReplacesLoadedDocument(t *testing.T) {
	loaded := withContainer("dev", DefaultContainerImage)
	store := newMemoryStore(loaded)
	store.loaded = true
	prompter := script(choose(0), answer("other"))
	svc := NewService(store, prompter, Options{})

	require.NoError(t, svc.NewDevfile(context.Background()))

	assert.Equal(t, "Create New", prompter.selects[0].Options[0].Label)
	assert.NotSame(t, loaded, store.doc)
	assert.Equal(t, "other", store.doc.Metadata.Name)
	assert.Empty(t, store.doc.Components)
	assert.Len(t, store.saves, 1)
}

func TestNewDevfile_Cancelled(t *testing.T) {
	tests := []struct {
		name  string
		steps []step
	}{
		{name: "declined", steps: []step{choose(1)}},
		{name: "dismissed", steps: []step{cancel()}},
		{name: "name dismissed", steps: []step{choose(0), cancel()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded := withContainer("dev", DefaultContainerImage)
			store := newMemoryStore(loaded)
			store.loaded = true
			svc := NewService(store, script(tt.steps...), Options{})

			err := svc.NewDevfile(context.Background())

			assert.ErrorIs(t, err, domain.ErrUserCancelled)
			assert.Same(t, loaded, store.doc)
			assert.Empty(t, store.saves)
		})
	}
}

func TestNewDevfile_Blocked(t *testing.T) {
	store := newMemoryStore(nil)
	store.blocked = domain.ErrNotAFile
	prompter := script()
	svc := NewService(store, prompter, Options{})

	assert.ErrorIs(t, svc.NewDevfile(context.Background()), domain.ErrNotAFile)
	assert.Empty(t, prompter.inputs)
	assert.Nil(t, store.doc)
}
