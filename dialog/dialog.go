// Package dialog asks where an exported component should be saved.
package dialog

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/sfcgen/errors"
)

// Request carries the texts shown to the user.
type Request struct {
	Title          string
	Message        string
	NameFieldLabel string
}

// Func adapts a function to the export dialog interface.
type Func func(ctx context.Context, req Request) (path string, ok bool, err error)

// ChooseDestination calls f.
func (f Func) ChooseDestination(ctx context.Context, req Request) (string, bool, error) {
	return f(ctx, req)
}

// Fixed always answers with the same destination. An empty Fixed cancels.
type Fixed string

// ChooseDestination returns the fixed path, home-expanded.
func (f Fixed) ChooseDestination(ctx context.Context, _ Request) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if strings.TrimSpace(string(f)) == "" {
		return "", false, nil
	}
	path, err := expandHome(strings.TrimSpace(string(f)))
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// Prompt asks on the terminal. Submitting an empty answer cancels.
type Prompt struct {
	input func(label string) (string, error)
}

// NewPrompt creates a terminal prompt backed by pterm.
func NewPrompt() *Prompt {
	return &Prompt{
		input: func(label string) (string, error) {
			return pterm.DefaultInteractiveTextInput.Show(label)
		},
	}
}

// ChooseDestination shows the title and message, then reads a folder path.
func (p *Prompt) ChooseDestination(ctx context.Context, req Request) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	pterm.DefaultSection.Println(req.Title)
	if req.Message != "" && req.Message != req.Title {
		pterm.Info.Println(req.Message)
	}

	answer, err := p.input(req.NameFieldLabel)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read destination")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false, nil
	}
	path, err := expandHome(answer)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// expandHome resolves a leading ~ to the user's home directory
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
