package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/leinonen/go-mal/pkg/core"
)

const historyFile = ".mal-history"

// Interpreter is the dependency the REPL shell needs from the
// evaluator; satisfied by *core.REPL.
type Interpreter interface {
	Interpret(input string) (core.Value, error)
}

// readlineEnabled reports whether the READLINE environment variable
// requests the terminal-editor reader (default true; any falsey
// value per strconv.ParseBool falls back to a plain line reader).
func readlineEnabled() bool {
	val, ok := os.LookupEnv("READLINE")
	if !ok {
		return true
	}
	enabled, err := strconv.ParseBool(val)
	if err != nil {
		return true
	}
	return enabled
}

// Run starts the interactive read-eval-print loop: one line in, one
// form evaluated, result printed readably, errors printed without
// ending the session, EOF ends it cleanly.
func Run(interp Interpreter, env *core.Environment) error {
	if readlineEnabled() {
		return runWithReadline(interp, env)
	}
	runWithScanner(interp, bufio.NewScanner(os.Stdin))
	return nil
}

func runWithReadline(interp Interpreter, env *core.Environment) error {
	var completer readline.AutoCompleter
	if env != nil {
		completer = NewLispCompleter(NewCompletionProvider(env))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          color.New(color.FgBlue, color.Bold).Sprint("user> "),
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		runWithScanner(interp, bufio.NewScanner(os.Stdin))
		return nil
	}
	defer rl.Close()

	formatter := NewErrorFormatter()
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}
		evalAndPrint(interp, formatter, line)
	}
}

func runWithScanner(interp Interpreter, scanner *bufio.Scanner) {
	formatter := NewErrorFormatter()
	for {
		fmt.Print("user> ")
		if !scanner.Scan() {
			return
		}
		evalAndPrint(interp, formatter, scanner.Text())
	}
}

func evalAndPrint(interp Interpreter, formatter *ErrorFormatter, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	result, err := interp.Interpret(line)
	if err != nil {
		if core.IsBlankInput(err) {
			return
		}
		fmt.Println(formatter.FormatError(err))
		return
	}
	fmt.Println(core.PrStr(result, true))
}
