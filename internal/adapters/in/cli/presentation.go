package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bnema/devfile-wizard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/devfile-wizard/internal/domain"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

// PrintError reports a command failure on w, with a hint for the failures
// the user can fix by hand.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintf(w, "Error: %v\n", err)

	if hint := errorHint(err); hint != "" {
		_ = cliWriteLine(w, styles.RenderWarning(hint))
	}
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidationFailed):
		return "The devfile on disk is left untouched. Fix it by hand or remove it, then run the command again."
	case errors.Is(err, domain.ErrNotAFile):
		return "A directory or special file is in the way of the devfile. Move it away, then run the command again."
	case errors.Is(err, domain.ErrNoProjectOpen):
		return "Run the command inside a project directory or pass --root."
	default:
		return ""
	}
}
