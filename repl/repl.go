/*
File    : go-scheme/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter. The
REPL provides an interactive environment where users can:
- Enter Scheme expressions line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
*/
package repl

import (
	"io"

	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/eval"
	"github.com/akashmaji946/go-scheme/parser"
	"github.com/akashmaji946/go-scheme/printer"
	"github.com/akashmaji946/go-scheme/schemeerr"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// farewell is printed when the input stream is exhausted (EOF).
const farewell = "End of input stream reached.\nMoriturus te saluto."

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to go-scheme!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop against a fresh global environment:
// displays the banner, reads lines via readline until EOF, parses each line
// as a sequence of top-level expressions, and evaluates them one at a time,
// printing each result (or error) before reading the next line.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := eval.NewGlobalEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte(farewell + "\n"))
			return
		}

		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses line as a sequence of top-level expressions and
// evaluates each against env, printing results or errors as it goes. A
// panic raised while parsing or evaluating is recovered and printed as
// "RuntimeError: <value>"; the REPL keeps running. Exhausting the Go stack
// is a fatal runtime error rather than a panic, so it is not recovered here.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "RuntimeError: %v\n", recovered)
		}
	}()

	forms, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", schemeerr.Format(err))
		return
	}

	for _, form := range forms {
		result, err := eval.Eval(form, env)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", schemeerr.Format(err))
			continue
		}
		yellowColor.Fprintf(writer, "%s\n", printer.Repr(result))
	}
}
