package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leinonen/go-mal/pkg/core"
	"github.com/leinonen/go-mal/pkg/repl"
)

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		eval     = flag.String("e", "", "Evaluate code directly instead of reading from a file")
		filename = flag.String("f", "", "File to execute")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                     # Start interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f script.mal       # Execute a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2 3)'      # Evaluate code directly\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s script.mal a b c    # Execute a file, binding *ARGV* to (\"a\" \"b\" \"c\")\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -help               # Show this help message\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	session, err := core.NewREPL()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating interpreter: %v\n", err)
		os.Exit(1)
	}

	if *eval != "" {
		session.BindArgv(flag.Args())
		result, err := session.EvalString(*eval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating code: %v\n", err)
			os.Exit(1)
		}
		if result != nil {
			fmt.Println(core.PrStr(result, true))
		}
		return
	}

	if *filename != "" {
		session.BindArgv(flag.Args())
		if err := session.LoadFile(*filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing file %s: %v\n", *filename, err)
			os.Exit(1)
		}
		return
	}

	if args := flag.Args(); len(args) > 0 {
		session.BindArgv(args[1:])
		if err := session.LoadFile(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing file %s: %v\n", args[0], err)
			os.Exit(1)
		}
		return
	}

	session.BindArgv(nil)
	if err := repl.Run(session, session.Env); err != nil {
		fmt.Fprintf(os.Stderr, "REPL error: %v\n", err)
		os.Exit(1)
	}
}
