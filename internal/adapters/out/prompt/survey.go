// Package prompt implements the Prompter port with survey.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
)

// Survey implements out.Prompter on an interactive terminal.
type Survey struct {
	opts   []survey.AskOpt
	info   io.Writer
	render func(string) string
}

var _ out.Prompter = (*Survey)(nil)

// Option configures a Survey.
type Option func(*Survey)

// WithStdio binds the prompter to the given terminal streams.
func WithStdio(stdio terminal.Stdio) Option {
	return func(s *Survey) {
		s.opts = append(s.opts, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
		s.info = stdio.Out
	}
}

// WithInfoRenderer styles the messages shown by Info.
func WithInfoRenderer(render func(string) string) Option {
	return func(s *Survey) {
		s.render = render
	}
}

// NewSurvey creates a prompter reading from stdin and writing to stdout.
func NewSurvey(opts ...Option) *Survey {
	s := &Survey{info: os.Stdout, render: renderInfo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSurveyWithStdio creates a prompter bound to the given terminal streams.
func NewSurveyWithStdio(stdio terminal.Stdio, opts ...Option) *Survey {
	return NewSurvey(append([]Option{WithStdio(stdio)}, opts...)...)
}

func renderInfo(msg string) string {
	return color.GreenString("✓ %s", msg)
}

// Input asks for free text. The validator runs on every submitted answer and
// the prompt is repeated until it passes. An empty line answers Default,
// unless cfg.AllowEmpty is set: the answer is then empty and Default is only
// completed on Tab.
func (s *Survey) Input(ctx context.Context, cfg out.InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var answer string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if cfg.AllowEmpty && cfg.Default != "" {
		suggestion := cfg.Default
		prompt.Default = ""
		prompt.Help = suggestionHelp(cfg.Help, suggestion)
		prompt.Suggest = func(string) []string { return []string{suggestion} }
	}

	opts := append([]survey.AskOpt{}, s.opts...)
	if cfg.Validate != nil {
		validate := cfg.Validate
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			value, ok := ans.(string)
			if !ok {
				return fmt.Errorf("unexpected answer type %T", ans)
			}
			return validate(value)
		}))
	}

	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return answer, nil
}

// Select asks for one of cfg.Options and returns its index. Option details
// are shown as descriptions.
func (s *Survey) Select(ctx context.Context, cfg out.SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(cfg.Options) == 0 {
		return 0, fmt.Errorf("select %q: no options", cfg.Message)
	}

	labels := make([]string, 0, len(cfg.Options))
	for _, o := range cfg.Options {
		labels = append(labels, o.Label)
	}

	prompt := &survey.Select{
		Message: cfg.Message,
		Options: labels,
		Description: func(_ string, index int) string {
			return cfg.Options[index].Detail
		},
	}
	if cfg.Default > 0 && cfg.Default < len(labels) {
		prompt.Default = labels[cfg.Default]
	}

	var index int
	if err := survey.AskOne(prompt, &index, s.opts...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return index, nil
}

// Info prints a success message.
func (s *Survey) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.info, s.render(msg))
	return err
}

func suggestionHelp(help, suggestion string) string {
	hint := fmt.Sprintf("Press Tab for %q. An empty answer is kept empty.", suggestion)
	if help == "" {
		return hint
	}
	return help + " " + hint
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return domain.ErrUserCancelled
	}
	return err
}
