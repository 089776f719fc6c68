/*
File    : go-scheme/cmd/goscheme/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-scheme interpreter. It provides
four modes of operation:
1. REPL Mode (default, no args): interactive Read-Eval-Print Loop
2. File Mode (<path>): run a Scheme source file top to bottom
3. Server Mode (server <port>): TCP REPL server, one session per connection
4. --help/-h, --version/-v: informational output
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/go-scheme/eval"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/parser"
	"github.com/akashmaji946/go-scheme/printer"
	"github.com/akashmaji946/go-scheme/repl"
	"github.com/akashmaji946/go-scheme/schemeerr"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// VERSION is the current version of the go-scheme interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ____  ___     ____      __
  / __ \/ _ \___/ __/____ / /  ___ __ _  ___
 / /_/ / // /___\ \/ __/ / _ \/ -_)  ' \/ -_)
 \____/____/   /___/\__/ /_//_/\__/_/_/_/\__/
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main dispatches to one of the four modes based on os.Args, exactly in the
// shape of the teacher's own main: a flag/subcommand check on os.Args[1],
// falling back to REPL mode when no arguments are given.
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: goscheme server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays usage information for the go-scheme interpreter.
func showHelp() {
	cyanColor.Println("go-scheme - A Scheme Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  goscheme                    Start interactive REPL mode")
	cyanColor.Println("  goscheme <path-to-file>     Run a Scheme source file")
	cyanColor.Println("  goscheme server <port>      Start REPL server on specified port")
	cyanColor.Println("  goscheme --help             Display this help message")
	cyanColor.Println("  goscheme --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	cyanColor.Println("  goscheme")
	cyanColor.Println("  goscheme samples/factorial.scm")
	cyanColor.Println("  goscheme server 8080")
}

// showVersion displays version information for the go-scheme interpreter.
func showVersion() {
	cyanColor.Println("go-scheme - A Scheme Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName in full, parses it, and evaluates every top-level
// form against a fresh global environment in order. Unlike the load
// builtin, fileName is taken exactly as given on the command line and is
// not suffixed with ".scm".
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(source))
}

// startServer listens on port and hands each accepted connection to its own
// goroutine running a full REPL session against that connection.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("go-scheme REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient runs a REPL session over conn, tagged with a session id that
// stays stable for the connection's lifetime regardless of remote address
// (a reconnect from behind a NAT/proxy can reuse the same address).
func handleClient(conn net.Conn) {
	defer conn.Close()
	sessionID := uuid.New()
	cyanColor.Printf("session %s connected from %s\n", sessionID, conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("session %s disconnected\n", sessionID)
}

// executeFileWithRecovery parses source and evaluates every top-level form
// against a fresh global environment, printing the last result if it is not
// expr.Undefined. A panic raised while parsing or evaluating is recovered
// and printed as "RuntimeError: <value>", then the process exits non-zero,
// matching the teacher's executeFileWithRecovery. Exhausting the Go stack is
// a fatal runtime error rather than a panic, so it is not recovered here.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "RuntimeError: %v\n", recovered)
			os.Exit(1)
		}
	}()

	forms, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", schemeerr.Format(err))
		os.Exit(1)
	}

	env := eval.NewGlobalEnvironment()

	var result expr.Expr
	for _, form := range forms {
		result, err = eval.Eval(form, env)
		if err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", schemeerr.Format(err))
			os.Exit(1)
		}
	}

	if result != nil && result != expr.Undefined {
		cyanColor.Fprintf(os.Stdout, "%s\n", printer.Repr(result))
	}
}
