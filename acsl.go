// Package acsl implements the Alexandria Common Shader Language compiler:
// lexing, parsing, and semantic analysis of ACSL source, and two code
// generation backends emitting HLSL and GLSL.
package acsl

import (
	"fmt"

	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/glsl"
	"github.com/shipsimfan/acsl/hlsl"
	"github.com/shipsimfan/acsl/lexer"
	"github.com/shipsimfan/acsl/parser"
	"github.com/shipsimfan/acsl/sema"
)

// Stage identifies which pipeline stage produced a CompilationError.
type Stage uint8

const (
	StageLex Stage = iota
	StageParse
	StageSemantic
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageSemantic:
		return "semantic analysis"
	default:
		return "unknown stage"
	}
}

// CompilationError wraps a stage-specific error (a *acslerr.LexError,
// *acslerr.ParseError, or *acslerr.SemanticError) with the stage it came
// from, mirroring the source's top-level error enum.
type CompilationError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *CompilationError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Err)
}

// Unwrap exposes the underlying stage error for errors.As/errors.Is.
func (e *CompilationError) Unwrap() error {
	return e.Err
}

// analyze runs the lex/parse/semantic pipeline common to both backends.
func analyze(source string) (*annotated.TranslationUnit, *CompilationError) {
	tokens, lexErr := lexer.Lex(source)
	if lexErr != nil {
		return nil, &CompilationError{Stage: StageLex, Err: lexErr}
	}

	tree, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		return nil, &CompilationError{Stage: StageParse, Err: parseErr}
	}

	unit, semErr := sema.Analyze(tree)
	if semErr != nil {
		return nil, &CompilationError{Stage: StageSemantic, Err: semErr}
	}

	return unit, nil
}

// CompileHLSL compiles ACSL source into a single HLSL shader containing both
// vertex_main and fragment_main.
func CompileHLSL(source string) (string, error) {
	unit, err := analyze(source)
	if err != nil {
		return "", err
	}

	out, genErr := hlsl.Generate(unit)
	if genErr != nil {
		return "", &CompilationError{Stage: StageSemantic, Err: genErr}
	}
	return out, nil
}

// CompileGLSL compiles ACSL source into separate vertex and fragment GLSL
// shaders, rewriting the shared pixel-input struct into per-member
// layout(location=i) declarations.
func CompileGLSL(source string) (vertex string, fragment string, err error) {
	unit, cerr := analyze(source)
	if cerr != nil {
		return "", "", cerr
	}

	vertex, fragment, genErr := glsl.Generate(unit)
	if genErr != nil {
		return "", "", &CompilationError{Stage: StageSemantic, Err: genErr}
	}
	return vertex, fragment, nil
}

// assertErrorTypes documents, at compile time, which concrete error types a
// CompilationError.Err may hold.
var (
	_ error = (*acslerr.LexError)(nil)
	_ error = (*acslerr.ParseError)(nil)
	_ error = (*acslerr.SemanticError)(nil)
)
