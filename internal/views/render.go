package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Form       string
	Board      string
	Overlay    string
	Indicator  string
	Toast      string
	StatusLine string
	StatusErr  bool
	Footer     string
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	indicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	toastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
)

// RenderApp stacks the screen. The header and the add form take exactly one
// line each so the board always starts at BoardTop.
func RenderApp(data AppData) string {
	lines := []string{
		headerStyle.Render(data.Header),
		data.Form,
	}
	if data.Overlay != "" {
		lines = append(lines, panelStyle.Render(data.Overlay))
	} else {
		lines = append(lines, data.Board)
	}
	if data.Indicator != "" {
		lines = append(lines, indicatorStyle.Render(data.Indicator))
	}
	if data.Toast != "" {
		lines = append(lines, toastStyle.Render(data.Toast))
	}
	if data.StatusLine != "" {
		if data.StatusErr {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
