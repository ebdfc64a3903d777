// Package version centralizes the versions of the chatbot's logical components.
//
// The versions are folded into the keys of the usage statistics, so a change
// to the menu, a tool or the prompt starts a fresh set of counters instead of
// mixing numbers from before and after the change.
package version

import "fmt"

// ComponentVersions holds the version strings for each logical part of the bot.
// Bump the matching field before deploying a change to that part.
var ComponentVersions = struct {
	// Menu changes whenever a dish or price in the menu tables changes.
	Menu string

	// Tools changes whenever a tool is added, removed or its output changes.
	Tools string

	// Prompt changes whenever the default system prompt changes.
	Prompt string
}{
	Menu:   "v1.0",
	Tools:  "v1.0",
	Prompt: "v1.0",
}

// Tag returns a compact string describing the current component versions,
// e.g. "mv1.0_tv1.0_pv1.0".
func Tag() string {
	return fmt.Sprintf("m%s_t%s_p%s",
		ComponentVersions.Menu,
		ComponentVersions.Tools,
		ComponentVersions.Prompt,
	)
}

// GenerateVersionedKey builds a key of the form "prefix:name:tag".
func GenerateVersionedKey(prefix, name string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, name, Tag())
}
