// Package main is the entry point for the fbmetrics CLI tool, which scores
// football players from per-match stat tables and ranks them per category.
package main

import "github.com/pable/go-fb-metrics/cmd"

func main() {
	cmd.Execute()
}
