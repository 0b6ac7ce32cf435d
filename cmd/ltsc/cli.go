// Package main is the thin CLI front end for this module: it reads a
// source file, calls driver.Compile, and prints either the JSON result
// or a colourised diagnostic. It is the sole caller-side consumer that
// exercises the core from a real process boundary and owns no
// process-wide state of its own beyond flag parsing.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/pflow-xyz/go-lts/driver"
	"github.com/pflow-xyz/go-lts/interp"
	"github.com/pflow-xyz/go-lts/parser"
)

// Version is set at build time via ldflags.
var Version = "dev"

// CLI is the root Kong command structure: a single leaf command since
// this module exposes exactly one operation to the outside world.
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`

	Path            string `arg:"" help:"Path to a source file to compile"`
	LiveBuilding    bool   `help:"Render the compiled automata for live display" default:"true"`
	FairAbstraction bool   `help:"Use fair (vs unfair) weak abstraction" default:"true"`
}

// NewCLI returns an empty CLI ready for Execute.
func NewCLI() *CLI {
	return &CLI{}
}

// Execute parses args and runs the selected command, writing output to
// out and diagnostics to errOut.
func (c *CLI) Execute(args []string, out, errOut io.Writer) error {
	k, err := kong.New(c,
		kong.Name("ltsc"),
		kong.Description("Compile a process-algebra source file into labelled transition systems"),
		kong.Vars{"version": Version},
	)
	if err != nil {
		return err
	}
	if _, err := k.Parse(args); err != nil {
		return err
	}

	return c.run(out, errOut)
}

func (c *CLI) run(out, errOut io.Writer) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Path, err)
	}

	result, err := driver.Compile(string(data), c.LiveBuilding, c.FairAbstraction)
	if err != nil {
		printDiagnostic(errOut, err)
		return err
	}

	return printResult(out, result)
}

// printDiagnostic writes a colourised diagnostic distinguishing a
// syntax error from an interpreter error, never by sniffing the error
// message, per the error-handling design this module follows
// throughout.
func printDiagnostic(w io.Writer, err error) {
	switch e := err.(type) {
	case *parser.ParseError:
		color.New(color.FgRed, color.Bold).Fprint(w, "Syntax error ")
		fmt.Fprintf(w, "%d:%d: %s\n", e.Location.Start.Line, e.Location.Start.Column, e.Message)
	case *interp.InterpreterError:
		color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
		fmt.Fprintf(w, "%s (at %d:%d)\n", e.Message, e.Location.Start.Line, e.Location.Start.Column)
	default:
		color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
		fmt.Fprintf(w, "%s\n", err)
	}
}

func printResult(w io.Writer, result *driver.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
