// Package templates embeds the rule2hook command template shipped with
// the CLI.
package templates

import "embed"

//go:embed commands
var FS embed.FS
