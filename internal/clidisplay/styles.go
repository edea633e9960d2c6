// Package clidisplay renders engine output for the CLI's human-facing
// surfaces (plan/current/lease/notes commands, "scatterbrain watch"): a
// plan tree, a cursor summary, level guidance, and a plan list table.
// There is no equivalent package in the teacher; its styling conventions
// are grounded on internal/ui/styles.go and internal/ui/table.go, adapted
// from a chat-assistant palette to a task-tree one.
package clidisplay

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("205")
	ColorSecondary = lipgloss.Color("241")
	ColorSuccess   = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorText      = lipgloss.Color("252")
	ColorCursor    = lipgloss.Color("87")

	StyleTitle      = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle     = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleCompleted  = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleCursor     = lipgloss.NewStyle().Foreground(ColorCursor).Bold(true)
	StyleLevelName  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleReminder   = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleSectionTag = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
)
