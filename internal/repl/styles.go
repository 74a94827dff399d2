package repl

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type paint func(strs ...string) string

type styles struct {
	Prompt  paint
	Kind    paint
	Literal paint
	Error   paint
	Muted   paint
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

func newStyles(out io.Writer, color bool) styles {
	if !color {
		return styles{Prompt: plain, Kind: plain, Literal: plain, Error: plain, Muted: plain}
	}

	r := lipgloss.NewRenderer(out)
	return styles{
		Prompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Render,
		Kind:    r.NewStyle().Foreground(lipgloss.Color("#04B575")).Render,
		Literal: r.NewStyle().Foreground(lipgloss.Color("#F1C40F")).Render,
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87")).Render,
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#626262")).Render,
	}
}
