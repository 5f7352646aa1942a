// Command mython runs a Mython source file, writing every print
// statement's output to a second file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mythonlang/mython/mython"
)

var (
	errorColor = lipgloss.Color("#EF4444")
	mutedColor = lipgloss.Color("#6B7280")

	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

func main() {
	os.Exit(run(os.Args))
}

// run implements the CLI contract: wrong argument count exits 1
// after printing usage to stderr, a failure to open either file exits
// 2, and any error propagating out of the engine's Run exits 1 with a
// styled diagnostic.
func run(args []string) int {
	if len(args) != 3 {
		printUsage()
		return 1
	}
	inputPath, outputPath := args[1], args[2]

	in, err := os.Open(inputPath)
	if err != nil {
		printDiagnostic(fmt.Sprintf("failed to open input file: %s", inputPath))
		return 2
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		printDiagnostic(fmt.Sprintf("failed to open output file: %s", outputPath))
		return 2
	}
	defer out.Close()

	engine := mython.NewEngine(mython.Config{})
	if err := engine.Run(context.Background(), in, out); err != nil {
		printDiagnostic(err.Error())
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, mutedStyle.Render("Usage: mython <input_file> <output_file>"))
}

func printDiagnostic(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
}
