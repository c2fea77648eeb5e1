package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"sysreport/internal/conf"
	"sysreport/internal/system"
)

// Layout describes the banner around the report body
type Layout struct {
	Title string
	Width int
	Rule  string
}

// FromConf builds a Layout from the report section of the config
func FromConf(r conf.Report) Layout {
	return Layout{Title: r.Title, Width: r.Width, Rule: r.Rule}
}

// Render formats the report as fixed-width text
func Render(r system.SystemReport, l Layout) string {
	rule, width := l.rule(), l.width()

	var b strings.Builder
	fmt.Fprintln(&b, banner(l.Title, rule, width))
	fmt.Fprintf(&b, "OS: %s\n", r.OSName)
	fmt.Fprintf(&b, "Kernel: %s %s\n", r.KernelName, r.KernelRelease)
	fmt.Fprintf(&b, "Architecture: %s (%s)\n", r.Architecture, r.Machine)
	fmt.Fprintf(&b, "Hostname: %s\n", r.Hostname)
	fmt.Fprintf(&b, "User: %s\n", r.User)
	fmt.Fprintf(&b, "Go Version: %s\n", r.RuntimeVersion)
	fmt.Fprintln(&b, strings.Repeat(rule, width))
	fmt.Fprintf(&b, "CPU: %s\n", r.CPUModel)
	fmt.Fprintf(&b, "CPU Cores: %d (logical), %d (physical)\n", r.LogicalCores, r.PhysicalCores)
	fmt.Fprintf(&b, "RAM: %s GB\n", system.Float2string(r.RAMGiB, 2))
	fmt.Fprintf(&b, "Uptime: %d hours, %d minutes\n", r.Uptime.Hours, r.Uptime.Minutes)
	fmt.Fprintln(&b, strings.Repeat(rule, width))
	return b.String()
}

// Write renders the report to w
func Write(w io.Writer, r system.SystemReport, l Layout) error {
	_, err := io.WriteString(w, Render(r, l))
	return err
}

// rule returns the first character of Rule, "=" when empty
func (l Layout) rule() string {
	if c, size := utf8.DecodeRuneInString(l.Rule); size > 0 && c != utf8.RuneError {
		return string(c)
	}
	return "="
}

// width is never narrower than the title plus one rule char each side
func (l Layout) width() int {
	title := titleText(l.Title)
	if least := utf8.RuneCountInString(title) + 2; l.Width < least {
		return least
	}
	return l.Width
}

func titleText(title string) string {
	if title == "" {
		return ""
	}
	return " " + title + " "
}

func banner(title, rule string, width int) string {
	title = titleText(title)
	pad := width - utf8.RuneCountInString(title)
	left := pad / 2
	return strings.Repeat(rule, left) + title + strings.Repeat(rule, pad-left)
}
