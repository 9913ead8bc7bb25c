package syntax

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse diagnostic.
type ErrorKind uint8

const (
	UnexpectedToken ErrorKind = iota
	MissingSemicolon
	MissingIdentifier
	MissingEquals
	InvalidExpression
	MissingLeftParen
	MissingRightParen
	MissingCondition
	MissingLeftBrace
	MissingRightBrace
	InvalidOperator
	FunctionCallNoArguments
	FunctionCallInvalidArgument
	FunctionCallTooManyArguments
	FunctionCallTooFewArguments
	FunctionUndefined
	NestingTooDeep

	errorKindCount
)

var errorKindNames = [...]string{
	UnexpectedToken:              "UnexpectedToken",
	MissingSemicolon:             "MissingSemicolon",
	MissingIdentifier:            "MissingIdentifier",
	MissingEquals:                "MissingEquals",
	InvalidExpression:            "InvalidExpression",
	MissingLeftParen:             "MissingLeftParen",
	MissingRightParen:            "MissingRightParen",
	MissingCondition:             "MissingCondition",
	MissingLeftBrace:             "MissingLeftBrace",
	MissingRightBrace:            "MissingRightBrace",
	InvalidOperator:              "InvalidOperator",
	FunctionCallNoArguments:      "FunctionCallNoArguments",
	FunctionCallInvalidArgument:  "FunctionCallInvalidArgument",
	FunctionCallTooManyArguments: "FunctionCallTooManyArguments",
	FunctionCallTooFewArguments:  "FunctionCallTooFewArguments",
	FunctionUndefined:            "FunctionUndefined",
	NestingTooDeep:               "NestingTooDeep",
}

// messages holds the format for each kind; %s is the context token's literal.
var messages = [...]string{
	UnexpectedToken:              "Unexpected token '%s'",
	MissingSemicolon:             "Missing semicolon after '%s'",
	MissingIdentifier:            "Expected identifier after '%s'",
	MissingEquals:                "Expected '=' after '%s'",
	InvalidExpression:            "Invalid expression after '%s'",
	MissingLeftParen:             "Missing opening parenthesis after '%s'",
	MissingRightParen:            "Missing closing parenthesis for expression starting with '%s'",
	MissingCondition:             "Missing condition after '%s'",
	MissingLeftBrace:             "Missing opening brace '{' after '%s'",
	MissingRightBrace:            "Missing closing brace '}' for block starting with '%s'",
	InvalidOperator:              "Invalid operator '%s'",
	FunctionCallNoArguments:      "Function '%s' called with no arguments but requires some",
	FunctionCallInvalidArgument:  "Invalid argument in call to function '%s'",
	FunctionCallTooManyArguments: "Too many arguments in call to function '%s'",
	FunctionCallTooFewArguments:  "Too few arguments in call to function '%s'",
	FunctionUndefined:            "Call to undefined function '%s'",
	NestingTooDeep:               "Nesting too deep at '%s'",
}

func (k ErrorKind) String() string {
	if k < errorKindCount {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Code returns a stable identifier for k, e.g. "P0001" for MissingSemicolon.
func (k ErrorKind) Code() string {
	return fmt.Sprintf("P%04d", uint8(k))
}

// Diagnostic is a parse error: what was expected and the token that gives
// the error its context. It implements error.
type Diagnostic struct {
	Kind ErrorKind
	Tok  Token // context token named in the message
	At   Token // token the parser was looking at when it gave up
}

// Line returns the line number the diagnostic is reported on.
func (d *Diagnostic) Line() uint32 {
	return d.Tok.Line()
}

// Message returns the message without the line prefix.
func (d *Diagnostic) Message() string {
	if d.Kind >= errorKindCount {
		return "Unknown error"
	}
	return fmt.Sprintf(messages[d.Kind], d.Tok.Lit)
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("Parse Error at line %d: %s", d.Line(), d.Message())
}

// Is reports whether target is a *Diagnostic of the same kind, so that
// errors.Is(err, &Diagnostic{Kind: MissingSemicolon}) matches any token.
func (d *Diagnostic) Is(target error) bool {
	t, ok := target.(*Diagnostic)
	return ok && t.Kind == d.Kind
}

// IsIncomplete reports whether diags describe input that merely ended too
// early, so that appending more text could still make it parse.
func IsIncomplete(diags []*Diagnostic) bool {
	if len(diags) == 0 {
		return false
	}
	for _, d := range diags {
		if d.At.Kind != _EOF {
			return false
		}
	}
	return true
}

// AsDiagnostic extracts a *Diagnostic from err.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
