package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	// Primary colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	// Background colors
	BgSecondary = lipgloss.Color("#1F2937")

	// Border colors
	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	// Toast foregrounds
	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")
)

// Panel styles
var (
	// Active panel with highlighted border
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	// Inactive panel with subtle border
	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	// Panel header
	PanelHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			MarginBottom(1)
)

// Note list styles
var (
	ListItem = lipgloss.NewStyle().
			Foreground(TextSecondary)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BgSecondary).
				Bold(true)

	ListItemPinned = lipgloss.NewStyle().
			Foreground(Accent)

	ListItemArchived = lipgloss.NewStyle().
				Foreground(TextMuted).
				Italic(true)

	ListTimestamp = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// Footer and toast styles
var (
	Footer = lipgloss.NewStyle().
		Foreground(TextMuted)

	FooterKey = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ToastSuccess = lipgloss.NewStyle().
			Foreground(ToastSuccessTextColor).
			Background(Success).
			Padding(0, 1).
			Bold(true)

	ToastError = lipgloss.NewStyle().
			Foreground(ToastErrorTextColor).
			Background(Error).
			Padding(0, 1).
			Bold(true)
)

// Search styles
var (
	SearchPrompt = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SearchMatch = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)
