// Package format renders provider.EndpointHealth and connector call results
// for terminal display: semantic color coding plus the ANSI-aware padding
// table rendering needs to keep columns aligned.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	Green  = color.New(color.FgGreen).SprintFunc()  // Fast / healthy
	Red    = color.New(color.FgRed).SprintFunc()    // Slow / failing
	Yellow = color.New(color.FgYellow).SprintFunc() // Warning / moderate
	Bold   = color.New(color.Bold).SprintFunc()     // Labels and emphasis
	Dim    = color.New(color.Faint).SprintFunc()    // Secondary info
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes, leaving only visible characters.
func stripANSI(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

// padRight pads a possibly-colored string to width visible characters.
// fmt's own width verbs count bytes, which over-counts ANSI codes.
func padRight(str string, width int) string {
	visibleLen := len(stripANSI(str))
	if visibleLen < width {
		return str + strings.Repeat(" ", width-visibleLen)
	}
	return str
}

// PadRight exports padRight for callers outside this package building
// their own table layouts.
func PadRight(str string, width int) string { return padRight(str, width) }

// ColorLatency applies traffic-light coloring to a latency value in
// milliseconds: green under 100ms, yellow under 300ms, red beyond.
func ColorLatency(ms int64) string {
	switch {
	case ms < 100:
		return Green(fmt.Sprintf("%dms", ms))
	case ms < 300:
		return Yellow(fmt.Sprintf("%dms", ms))
	default:
		return Red(fmt.Sprintf("%dms", ms))
	}
}

// ColorLag colors a block-height lag: dim dash at the tip, yellow at one
// block behind, red beyond that.
func ColorLag(lag int) string {
	if lag <= 0 {
		return Dim("—")
	}
	if lag == 1 {
		return Yellow(fmt.Sprintf("-%d", lag))
	}
	return Red(fmt.Sprintf("-%d", lag))
}

// ColorSuccess colors a success-rate percentage: green at 100%, yellow
// from 80-99%, red below 80%.
func ColorSuccess(pct float64) string {
	str := fmt.Sprintf("%.0f%%", pct)
	switch {
	case pct >= 100:
		return Green(str)
	case pct >= 80:
		return Yellow(str)
	default:
		return Red(str)
	}
}

// ColorStatus colors an EndpointHealth.Status label.
func ColorStatus(status string) string {
	switch status {
	case "UP":
		return Green(status)
	case "SLOW", "DEGRADED":
		return Yellow(status)
	default:
		return Red(status)
	}
}
