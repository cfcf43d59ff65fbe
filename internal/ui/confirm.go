package ui

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// Confirm asks a yes/no question. Aborting the prompt returns ErrUserAborted.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	confirm := huh.NewConfirm().
		Title(title).
		Value(&confirmed)
	if description != "" {
		confirm = confirm.Description(description)
	}

	form := huh.NewForm(huh.NewGroup(confirm)).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}
