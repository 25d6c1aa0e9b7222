package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"toybrowser"
	"toybrowser/html"
)

var verbose bool

var renderCmd = &cobra.Command{
	Use:   "render [response-file]",
	Short: "Parse a raw HTTP response and print the resulting DOM tree",
	Long: `render reads a raw HTTP response (status line, headers, blank line, body)
from the given file, or from stdin if no file is given, and prints the
resulting DOM tree as an indented outline — one line per node.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "toybrowser: %v\n", err)
			os.Exit(1)
		}

		var opts []html.Option
		if verbose {
			opts = append(opts, html.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
		}

		win, err := toybrowser.Fetch(raw, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "toybrowser: %v\n", err)
			os.Exit(1)
		}

		dumpNode(os.Stdout, win.Document, 0)
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

func dumpNode(w io.Writer, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case html.DocumentNode:
		fmt.Fprintln(w, indent+"#document")
	case html.ElementNode:
		fmt.Fprintf(w, "%s<%s>", indent, n.Kind)
		for _, a := range n.Attrs {
			fmt.Fprintf(w, " %s=%q", a.Name, a.Value)
		}
		fmt.Fprintln(w)
	case html.TextNode:
		fmt.Fprintf(w, "%s%q\n", indent, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNode(w, c, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log discarded tags and attribute redeclarations to stderr")
}
