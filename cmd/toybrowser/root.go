package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "toybrowser",
	Short: "A minimal document-ingestion pipeline: URL, HTTP response, HTML, CSS",
	Long: `toybrowser parses a raw HTTP response into a DOM tree: it splits the
status line and headers from the body, tokenizes and tree-constructs the
body as HTML. Text inside <style> is kept verbatim in the tree; the CLI does
not run the CSS tokenizer over it.

It has no event loop, no layout or paint, and no network transport of its
own — it operates on text already captured to a file or piped in on stdin.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
