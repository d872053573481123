package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorBgBar     = lipgloss.Color("#21252B")
	ColorBgMenu    = lipgloss.Color("#2C313C")
	ColorBgActive  = lipgloss.Color("#3E4451")
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#5C6370")
	ColorAccent    = lipgloss.Color("#61AFEF")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBorder    = lipgloss.Color("#3F4451")
)

var (
	// Menu bar
	MenuBarStyle = lipgloss.NewStyle().
			Background(ColorBgBar).
			Foreground(ColorFgPrimary)

	MenuTitleStyle = lipgloss.NewStyle().
			Background(ColorBgBar).
			Foreground(ColorFgPrimary).
			Padding(0, 1)

	MenuTitleActiveStyle = MenuTitleStyle.
				Background(ColorBgActive).
				Bold(true)

	WindowTitleStyle = lipgloss.NewStyle().
				Background(ColorBgBar).
				Foreground(ColorAccent).
				Bold(true).
				PaddingRight(1)

	// Drop-down menus
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBgMenu)

	MenuItemStyle = lipgloss.NewStyle().
			Background(ColorBgMenu).
			Foreground(ColorFgPrimary)

	MenuItemSelectedStyle = MenuItemStyle.
				Background(ColorBgActive).
				Foreground(ColorAccent)

	MenuItemDisabledStyle = MenuItemStyle.
				Foreground(ColorFgMuted)

	// Dialogs
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	ErrorDialogStyle = DialogStyle.
				BorderForeground(ColorRed)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Padding(0, 2)

	ButtonActiveStyle = ButtonStyle.
				Background(ColorAccent).
				Foreground(lipgloss.Color("#282C34")).
				Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	StatusMessageStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)
)
