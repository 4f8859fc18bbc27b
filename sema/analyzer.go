package sema

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/types"
)

type analyzer struct {
	unit *annotated.TranslationUnit

	structsByName map[string]*types.Struct
	aliasesByName map[string]*types.Alias

	global *Scope
}

// Analyze walks decl in source order, producing a fully typed translation
// unit or the first semantic error encountered.
func Analyze(tree *ast.TranslationUnit) (*annotated.TranslationUnit, *acslerr.SemanticError) {
	a := &analyzer{
		unit:          annotated.NewTranslationUnit(),
		structsByName: make(map[string]*types.Struct),
		aliasesByName: make(map[string]*types.Alias),
		global:        NewGlobalScope(),
	}

	for _, decl := range tree.Declarations {
		if err := a.analyzeDeclaration(decl); err != nil {
			return nil, err
		}
	}

	if a.unit.VertexInputType == nil {
		return nil, acslerr.NewNoVertexMain()
	}
	if a.unit.FragmentInputType == nil {
		return nil, acslerr.NewNoFragmentMain()
	}
	if _, ok := a.unit.Functions["vertex_main"]; !ok {
		return nil, acslerr.NewNoVertexMain()
	}
	if _, ok := a.unit.Functions["fragment_main"]; !ok {
		return nil, acslerr.NewNoFragmentMain()
	}

	return a.unit, nil
}

func (a *analyzer) analyzeDeclaration(decl ast.Declaration) *acslerr.SemanticError {
	switch d := decl.(type) {
	case *ast.Struct:
		return a.analyzeStruct(d)
	case *ast.ConstantBuffer:
		return a.analyzeConstantBuffer(d)
	case *ast.Texture:
		return a.analyzeTexture(d)
	case *ast.TypeAlias:
		return a.analyzeTypeAlias(d)
	case *ast.Constant:
		return a.analyzeConstant(d)
	case *ast.Function:
		return a.analyzeFunction(d)
	default:
		return nil
	}
}

// checkNameAvailable enforces the global name-uniqueness rule of §4.6:
// every pushed name must be distinct from all previously pushed names and
// from every reserved built-in/target type name.
func (a *analyzer) checkNameAvailable(name string, pos acslerr.Position) *acslerr.SemanticError {
	if hasReservedPrefix(name) {
		return acslerr.NewInvalidVariableName(name, pos)
	}
	if builtinTypeNames[name] {
		return acslerr.NewMultipleDefinition(name, pos)
	}
	if _, ok := a.structsByName[name]; ok {
		return acslerr.NewMultipleDefinition(name, pos)
	}
	if _, ok := a.aliasesByName[name]; ok {
		return acslerr.NewMultipleDefinition(name, pos)
	}
	if _, ok := a.unit.Functions[name]; ok {
		return acslerr.NewMultipleDefinition(name, pos)
	}
	if _, ok := a.unit.Constants[name]; ok {
		return acslerr.NewMultipleDefinition(name, pos)
	}
	if _, ok := builtins()[name]; ok {
		return acslerr.NewMultipleDefinition(name, pos)
	}
	return nil
}
