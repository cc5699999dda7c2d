package environment

import (
	"fmt"
	"strings"

	"github.com/agrafix/elm-compiler/internal/ast"
	"github.com/agrafix/elm-compiler/internal/diagnostics"
)

// Every error here is terminal for the module being canonicalized:
// the caller reports it and aborts compilation of the module and its
// dependents. Suggestions are advisory only.

var (
	_ diagnostics.Diagnostic = (*ModuleNotFoundError)(nil)
	_ diagnostics.Diagnostic = (*ValueNotFoundError)(nil)
	_ diagnostics.Diagnostic = (*SelfRecursiveAliasError)(nil)
	_ diagnostics.Diagnostic = (*MutuallyRecursiveAliasesError)(nil)
)

// ModuleNotFoundError means an import names a module absent from the
// dependency dictionary and not recognized as a native module.
type ModuleNotFoundError struct {
	Region      ast.Region
	Name        string
	Suggestions []string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module not found: %s%s", e.Name, didYouMean(e.Suggestions))
}

func (e *ModuleNotFoundError) Code() diagnostics.Code { return diagnostics.ErrC001 }
func (e *ModuleNotFoundError) At() ast.Region         { return e.Region }

// ValueNotFoundError means an explicit exposing entry (value, alias,
// union or constructor) does not exist in the restricted interface of
// the module it is imported from.
type ValueNotFoundError struct {
	Region      ast.Region
	Name        string
	Module      string
	Suggestions []string
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("%s does not expose %s%s", e.Module, e.Name, didYouMean(e.Suggestions))
}

func (e *ValueNotFoundError) Code() diagnostics.Code { return diagnostics.ErrC002 }
func (e *ValueNotFoundError) At() ast.Region         { return e.Region }

// SelfRecursiveAliasError means a local type alias expands into
// itself. Aliases are macro-like substitutions, so this would require
// infinite expansion.
type SelfRecursiveAliasError struct {
	Region ast.Region
	Name   string
	Vars   []string
	Type   ast.Type
}

func (e *SelfRecursiveAliasError) Error() string {
	return fmt.Sprintf("type alias %s is recursive: aliases are expanded in place and cannot refer to themselves", e.Name)
}

func (e *SelfRecursiveAliasError) Code() diagnostics.Code { return diagnostics.ErrC003 }
func (e *SelfRecursiveAliasError) At() ast.Region         { return e.Region }

// MutuallyRecursiveAliasesError means two or more local type aliases
// form an expansion cycle. Aliases holds the cycle's members in their
// original declaration order.
type MutuallyRecursiveAliasesError struct {
	Aliases []*AliasNode
}

func (e *MutuallyRecursiveAliasesError) Error() string {
	names := make([]string, len(e.Aliases))
	for i, node := range e.Aliases {
		names[i] = node.Name
	}
	return fmt.Sprintf("type aliases %s are mutually recursive: aliases are expanded in place and cannot form cycles", strings.Join(names, ", "))
}

func (e *MutuallyRecursiveAliasesError) Code() diagnostics.Code { return diagnostics.ErrC004 }

func (e *MutuallyRecursiveAliasesError) At() ast.Region {
	if len(e.Aliases) > 0 {
		return e.Aliases[0].Region
	}
	return ast.Region{}
}

func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
}
