// Package version carries the build fingerprint of the feelscope CLI.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with its major, minor and patch parts coloured.
// Pre-release and build suffixes stay plain.
func Colored(enabled bool) string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	paint := func(c *color.Color, s string) string {
		if !enabled {
			return s
		}
		cc := *c
		cc.EnableColor()
		return cc.Sprint(s)
	}
	return paint(versionMajorColor, parts[0]) + "." +
		paint(versionMinorColor, parts[1]) + "." +
		paint(versionPatchColor, parts[2]) + suffix
}

// Fingerprint returns the multi-line build description printed by
// `feelscope version`.
func Fingerprint(enabled bool) string {
	var b strings.Builder
	b.WriteString("feelscope ")
	b.WriteString(Colored(enabled))
	b.WriteByte('\n')
	if GitCommit != "" {
		b.WriteString("commit: " + GitCommit)
		if GitMessage != "" {
			b.WriteString(" (" + GitMessage + ")")
		}
		b.WriteByte('\n')
	}
	if BuildDate != "" {
		b.WriteString("built:  " + BuildDate + "\n")
	}
	return b.String()
}
