package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	apppkg "github.com/kk-code-lab/mdview/internal/app"
	"github.com/kk-code-lab/mdview/internal/layout"
	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/source"
	renderui "github.com/kk-code-lab/mdview/internal/ui/render"
)

const fallbackDumpWidth = 80

func printHelp() {
	fmt.Print(`mdview - Terminal markdown viewer

USAGE:
    mdview [OPTIONS] FILE

OPTIONS:
    -h, --help           Show this help message and exit
        --dump           Print the rendered document to stdout and exit
        --width COLUMNS  Layout width for --dump (default: terminal width)
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	help := flag.BoolP("help", "h", false, "show help")
	dump := flag.Bool("dump", false, "print rendered document to stdout")
	width := flag.Int("width", 0, "layout width for --dump")
	flag.Parse()

	if *help {
		printHelp()
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		printHelp()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *dump {
		if err := dumpDocument(path, *width); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	app, err := apppkg.NewApplication(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app.Run()
}

// dumpDocument renders the file once at the given width and prints it.
// Width zero means use the terminal width, or a fixed fallback when stdout
// is not a terminal.
func dumpDocument(path string, width int) error {
	if width < 1 {
		width = terminalWidth()
	}

	content, err := source.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := markdown.Parse(content)
	if err != nil {
		return err
	}
	lines := layout.Layout(doc, width)
	return renderui.Dump(os.Stdout, lines)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackDumpWidth
}
