// Package diagnostics defines the error codes and reporting surface
// shared by the canonicalization stages.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agrafix/elm-compiler/internal/ast"
)

// Code identifies an error kind for tooling and documentation.
type Code string

const (
	ErrC001 Code = "C001" // import of a module absent from the dependency dictionary
	ErrC002 Code = "C002" // exposed name missing from the imported interface
	ErrC003 Code = "C003" // self-recursive type alias
	ErrC004 Code = "C004" // mutually recursive type aliases
)

// Diagnostic is implemented by every canonicalization error. At
// returns the source region the error should be reported against.
type Diagnostic interface {
	error
	Code() Code
	At() ast.Region
}

// Reporter renders diagnostics for humans. Output is colorized when
// the destination is a terminal.
type Reporter struct {
	out   io.Writer
	color bool
}

func NewReporter(out io.Writer) *Reporter {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{out: out, color: color}
}

// Report writes one diagnostic as "file:line:col: error[CODE]: message".
func (r *Reporter) Report(file string, d Diagnostic) {
	pos := d.At().Start
	label := fmt.Sprintf("error[%s]", d.Code())
	if r.color {
		label = "\x1b[31m" + label + "\x1b[0m"
	}
	fmt.Fprintf(r.out, "%s:%d:%d: %s: %s\n", file, pos.Line, pos.Column, label, d.Error())
}
