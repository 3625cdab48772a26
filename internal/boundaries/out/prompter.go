package out

import "context"

// InputConfig configures a free-text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string

	// AllowEmpty keeps an empty answer instead of replacing it with Default.
	// Default is then only offered as a suggestion.
	AllowEmpty bool

	// Validate is called synchronously with the current answer. A non-nil
	// error is shown to the user and the answer is not accepted.
	Validate func(string) error
}

// Option is one labeled entry of a selection list.
type Option struct {
	Label  string
	Detail string
}

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message string
	Options []Option
	Default int
}

// Prompter defines the contract for interactive user input. Every method
// returns domain.ErrUserCancelled when the user dismisses the prompt.
type Prompter interface {
	// Input asks for free text.
	Input(ctx context.Context, cfg InputConfig) (string, error)

	// Select asks the user to pick one option and returns its index.
	Select(ctx context.Context, cfg SelectConfig) (int, error)

	// Info shows an informational message.
	Info(ctx context.Context, msg string) error
}

// Labels builds options from plain labels.
func Labels(labels ...string) []Option {
	options := make([]Option, 0, len(labels))
	for _, l := range labels {
		options = append(options, Option{Label: l})
	}
	return options
}
