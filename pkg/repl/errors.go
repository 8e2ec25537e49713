package repl

import (
	"errors"

	"github.com/fatih/color"
	"github.com/leinonen/go-mal/pkg/core"
)

// ErrorFormatter handles colored error output for the REPL, keyed off
// the exact MalError.Kind rather than sniffing the error message.
type ErrorFormatter struct {
	parseColor     *color.Color
	undefinedColor *color.Color
	typeColor      *color.Color
	arityColor     *color.Color
	ioColor        *color.Color
	thrownColor    *color.Color
	generalColor   *color.Color
	prefixColor    *color.Color
}

// NewErrorFormatter creates a new error formatter with predefined colors.
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		parseColor:     color.New(color.FgRed, color.Bold),
		undefinedColor: color.New(color.FgYellow, color.Bold),
		typeColor:      color.New(color.FgCyan, color.Bold),
		arityColor:     color.New(color.FgMagenta, color.Bold),
		ioColor:        color.New(color.FgBlue, color.Bold),
		thrownColor:    color.New(color.FgGreen, color.Bold),
		generalColor:   color.New(color.FgWhite, color.Bold),
		prefixColor:    color.New(color.FgRed, color.Bold),
	}
}

func (ef *ErrorFormatter) colorAndLabel(kind core.ErrorKind) (*color.Color, string) {
	switch kind {
	case core.KindParseError, core.KindBlankInput:
		return ef.parseColor, "Parse error"
	case core.KindUndefinedSymbol:
		return ef.undefinedColor, "Undefined symbol"
	case core.KindNotAFunction, core.KindNotANumber:
		return ef.typeColor, "Type error"
	case core.KindWrongArguments:
		return ef.arityColor, "Wrong arguments"
	case core.KindDivideByZero, core.KindIndexOutOfBounds:
		return ef.arityColor, "Runtime error"
	case core.KindIOError:
		return ef.ioColor, "IO error"
	case core.KindUserThrown:
		return ef.thrownColor, "Exception"
	default:
		return ef.generalColor, "Error"
	}
}

// FormatError formats an error with colors and a kind-specific label.
// Thrown MAL values print via the reader-readable form, not Go's
// error string, since the payload may not be a string at all.
func (ef *ErrorFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var malErr *core.MalError
	if errors.As(err, &malErr) {
		errorColor, label := ef.colorAndLabel(malErr.Kind)
		prefix := ef.prefixColor.Sprintf("%s:", label)
		if malErr.Kind == core.KindUserThrown {
			message := errorColor.Sprintf(" %s", core.PrStr(malErr.ErrorValue(), true))
			return prefix + message
		}
		message := errorColor.Sprintf(" %s", malErr.Message)
		return prefix + message
	}

	prefix := ef.prefixColor.Sprint("Error:")
	message := ef.generalColor.Sprintf(" %s", err.Error())
	return prefix + message
}
