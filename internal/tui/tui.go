// Package tui renders parameter forms and credential prompts as interactive
// terminal forms built on charmbracelet/huh.
package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Theme represents the visual theme for forms.
type Theme string

const (
	// ThemeDefault uses the default huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// ParseTheme maps a configured theme name to a Theme. Unknown names use
// ThemeDefault.
func ParseTheme(name string) Theme {
	switch t := Theme(strings.ToLower(strings.TrimSpace(name))); t {
	case ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return t
	default:
		return ThemeDefault
	}
}

// Config holds the settings shared by every form the renderer shows.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible enables accessible mode for screen readers.
	Accessible bool
	// Strict blocks submission while a field violates its constraints.
	Strict bool
	// Input and Output override the terminal streams (nil for stdin/stdout).
	Input  io.Reader
	Output io.Writer
	// Logger receives flow decisions; nil discards them.
	Logger *log.Logger
}

// IsInputTerminal returns true if stdin is connected to a terminal.
// Returns false when running inside command substitution ($()) or pipes.
func IsInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// getHuhTheme converts a Theme to a huh.Theme.
func getHuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
