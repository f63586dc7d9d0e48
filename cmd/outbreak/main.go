// Package main is the entry point for the Outbreak Engine CLI.
package main

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}
