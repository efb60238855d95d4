// Package locales embeds the translation files served by the API.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
