// Package repl provides completion functionality for the REPL
package repl

import (
	"sort"
	"strings"

	"github.com/leinonen/go-mal/pkg/core"
)

// CompletionProvider provides tab completion functionality for the REPL.
type CompletionProvider struct {
	env *core.Environment
}

// NewCompletionProvider creates a new completion provider.
func NewCompletionProvider(env *core.Environment) *CompletionProvider {
	return &CompletionProvider{env: env}
}

// GetCompletions returns possible completions for the word at pos,
// provided the word sits in function position (right after an open
// paren, possibly with a partial symbol already typed).
func (cp *CompletionProvider) GetCompletions(line string, pos int) []string {
	if !cp.afterOpenParen(line, pos) {
		return nil
	}
	prefix := cp.extractCurrentWord(line, pos)

	var completions []string
	for _, name := range cp.env.Names() {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	sort.Strings(completions)
	return completions
}

// extractCurrentWord extracts the word being completed from the input line.
func (cp *CompletionProvider) extractCurrentWord(line string, pos int) string {
	if pos > len(line) {
		pos = len(line)
	}

	start := pos
	for start > 0 && cp.isSymbolChar(rune(line[start-1])) {
		start--
	}
	return line[start:pos]
}

// afterOpenParen reports whether the word starting before pos is
// immediately preceded by '(' (ignoring whitespace).
func (cp *CompletionProvider) afterOpenParen(line string, pos int) bool {
	wordStart := pos
	for wordStart > 0 && cp.isSymbolChar(rune(line[wordStart-1])) {
		wordStart--
	}
	search := wordStart - 1
	for search >= 0 && (line[search] == ' ' || line[search] == '\t') {
		search--
	}
	return search >= 0 && line[search] == '('
}

// isSymbolChar checks if a character can be part of a MAL symbol.
func (cp *CompletionProvider) isSymbolChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '-' || ch == '_' || ch == '?' || ch == '!' ||
		ch == '+' || ch == '*' || ch == '/' || ch == '=' ||
		ch == '<' || ch == '>' || ch == '.' || ch == '%' || ch == '&'
}

// lispCompleter implements readline.AutoCompleter for symbol completion.
type lispCompleter struct {
	provider *CompletionProvider
}

// NewLispCompleter creates a new Lisp-aware completer.
func NewLispCompleter(provider *CompletionProvider) *lispCompleter {
	return &lispCompleter{provider: provider}
}

// Do implements the readline.AutoCompleter interface.
func (lc *lispCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line)
	completions := lc.provider.GetCompletions(lineStr, pos)
	if len(completions) == 0 {
		return nil, 0
	}

	currentWord := lc.provider.extractCurrentWord(lineStr, pos)
	replaceLength := len(currentWord)

	var suggestions [][]rune
	for _, completion := range completions {
		if len(completion) > len(currentWord) {
			suggestions = append(suggestions, []rune(completion[len(currentWord):]))
		} else if completion == currentWord {
			suggestions = append(suggestions, []rune(completion))
		}
	}

	return suggestions, replaceLength
}
