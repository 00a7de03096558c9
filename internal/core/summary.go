package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
	"github.com/inovacc/dadandiaoming/internal/application"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	headStyle   = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

const bannerFont = "standard"

// banner renders the tool name as figlet art.
func banner() string {
	lines := figure.NewFigure(application.AppName, bannerFont, true).Slicify()

	return strings.TrimRight(strings.Join(lines, "\n"), "\n ")
}

// PrintSummary writes the post-create report for a project at path.
func PrintSummary(w io.Writer, name, path string) {
	var b strings.Builder

	b.WriteString("\n" + titleStyle.Render("🎉 Project created successfully!") + "\n")
	b.WriteString("\n" + headStyle.Render("📦 Project") + "\n")
	b.WriteString(keyStyle.Render("   Name: ") + valueStyle.Render(name) + "\n")
	b.WriteString(keyStyle.Render("   Path: ") + valueStyle.Render(path) + "\n")
	b.WriteString("\n" + mutedStyle.Render(strings.Repeat("─", 50)) + "\n\n")
	b.WriteString(bannerStyle.Render(banner()) + "\n")
	b.WriteString(titleStyle.UnsetBold().Render("  "+application.Tagline) + "\n\n")
	b.WriteString(headStyle.Render("🚀 Next steps") + "\n")
	b.WriteString(keyStyle.Render(fmt.Sprintf("   cd %s", path)) + "\n")
	b.WriteString(keyStyle.Render("   npm install") + mutedStyle.Render(" (or pnpm)") + "\n")
	b.WriteString(keyStyle.Render("   npm run dev") + mutedStyle.Render(" (or pnpm dev)") + "\n\n")

	_, _ = io.WriteString(w, b.String())
}
