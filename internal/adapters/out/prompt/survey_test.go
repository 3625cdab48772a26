package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
)

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("terminal gone")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "interrupt", in: terminal.InterruptErr, want: domain.ErrUserCancelled},
		{name: "wrapped interrupt", in: fmt.Errorf("ask: %w", terminal.InterruptErr), want: domain.ErrUserCancelled},
		{name: "closed input", in: io.EOF, want: domain.ErrUserCancelled},
		{name: "other", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateSurveyErr(tt.in), tt.want)
		})
	}
}

func TestSurvey_Info(t *testing.T) {
	var buf bytes.Buffer
	s := &Survey{info: &buf, render: renderInfo}

	require.NoError(t, s.Info(context.Background(), "Endpoint 'http' has been created successfully"))

	assert.Contains(t, buf.String(), "Endpoint 'http' has been created successfully")
}

func TestSurvey_InfoRenderer(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurvey(WithInfoRenderer(func(msg string) string { return "[ok] " + msg }))
	s.info = &buf

	require.NoError(t, s.Info(context.Background(), "saved"))

	assert.Equal(t, "[ok] saved\n", buf.String())
}

func TestSuggestionHelp(t *testing.T) {
	assert.Equal(t, `Press Tab for "Hello World". An empty answer is kept empty.`, suggestionHelp("", "Hello World"))
	assert.Equal(t, `Any text. Press Tab for "x". An empty answer is kept empty.`, suggestionHelp("Any text.", "x"))
}

func TestSurvey_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSurvey()

	_, err := s.Input(ctx, out.InputConfig{Message: "name"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Select(ctx, out.SelectConfig{Message: "pick", Options: out.Labels("a")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSurvey_SelectWithoutOptions(t *testing.T) {
	_, err := NewSurvey().Select(context.Background(), out.SelectConfig{Message: "pick"})

	assert.Error(t, err)
}
