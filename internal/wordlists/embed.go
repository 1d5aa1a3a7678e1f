package wordlists

import "embed"

// FS embeds the curated word and phrase lists shipped with the library.
//
//go:embed data/*.yaml
var FS embed.FS
