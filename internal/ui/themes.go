// Package ui holds terminal color themes shared by the CLI and TUI output
// paths.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output. Each field contains an ANSI
// escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all escape codes (piped output, NO_COLOR).
	NoColorTheme = Theme{Name: "none"}
)

var (
	themeMu sync.RWMutex
	current = DarkTheme
)

// InitTheme selects the active theme. When noColor is set (or the NO_COLOR
// environment convention applies), all escape codes are suppressed;
// otherwise the terminal background decides between dark and light.
func InitTheme(noColor bool) {
	themeMu.Lock()
	defer themeMu.Unlock()

	if noColor || os.Getenv("NO_COLOR") != "" {
		current = NoColorTheme
		return
	}
	if lipgloss.HasDarkBackground() {
		current = DarkTheme
	} else {
		current = LightTheme
	}
}

// ActiveTheme returns the currently selected theme.
func ActiveTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return current
}

// ColorPrimary returns the active primary escape code.
func ColorPrimary() string { return ActiveTheme().Primary }

// ColorSuccess returns the active success escape code.
func ColorSuccess() string { return ActiveTheme().Success }

// ColorWarning returns the active warning escape code.
func ColorWarning() string { return ActiveTheme().Warning }

// ColorError returns the active error escape code.
func ColorError() string { return ActiveTheme().Error }

// ColorInfo returns the active info escape code.
func ColorInfo() string { return ActiveTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return ActiveTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return ActiveTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return ActiveTheme().Reset }
