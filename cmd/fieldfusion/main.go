// Package main provides the entry point for the fieldfusion CLI tool.
package main

import "github.com/normafin/fieldfusion/cmd/fieldfusion/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
