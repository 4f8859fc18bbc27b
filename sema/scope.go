// Package sema implements semantic analysis: it walks an untyped
// ast.TranslationUnit in source order and produces a fully typed
// annotated.TranslationUnit, enforcing every invariant of §3/§4.6.
package sema

import (
	"strings"

	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/types"
)

type binding struct {
	Type    types.Type
	Mutable bool
}

// Scope is a lexical scope: a parent-linked chain where function-local
// scopes inherit from the global scope (constants, cbuffer and texture
// bindings). Child writes never leak upward.
type Scope struct {
	parent *Scope
	vars   map[string]binding
}

// NewGlobalScope returns an empty root scope.
func NewGlobalScope() *Scope {
	return &Scope{vars: make(map[string]binding)}
}

// NewChild produces a fresh child scope rooted at s.
func (s *Scope) NewChild() *Scope {
	return &Scope{parent: s, vars: make(map[string]binding)}
}

// GetVariable resolves name up the parent chain.
func (s *Scope) GetVariable(name string, pos acslerr.Position) (types.Type, bool, *acslerr.SemanticError) {
	for scope := s; scope != nil; scope = scope.parent {
		if b, ok := scope.vars[name]; ok {
			return b.Type, b.Mutable, nil
		}
	}
	return nil, false, acslerr.NewUnknownVariable(name, pos)
}

// hasReservedPrefix reports whether name begins with a prefix reserved for
// generated identifiers.
func hasReservedPrefix(name string) bool {
	return strings.HasPrefix(name, "acsl_") || strings.HasPrefix(name, "gl_")
}

// DefineVariable introduces name into this scope (not any ancestor),
// rejecting reserved prefixes and redefinition within the same scope.
func (s *Scope) DefineVariable(name string, t types.Type, mutable bool, pos acslerr.Position) *acslerr.SemanticError {
	if hasReservedPrefix(name) {
		return acslerr.NewInvalidVariableName(name, pos)
	}
	if _, exists := s.vars[name]; exists {
		return acslerr.NewMultipleDefinition(name, pos)
	}
	s.vars[name] = binding{Type: t, Mutable: mutable}
	return nil
}
