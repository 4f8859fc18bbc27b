package sema

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/types"
)

func (a *analyzer) analyzeFunction(d *ast.Function) *acslerr.SemanticError {
	if err := a.checkNameAvailable(d.Name, d.Pos); err != nil {
		return err
	}

	scope := a.global.NewChild()
	params := make([]annotated.Param, len(d.Params))
	for i, p := range d.Params {
		t, err := a.resolveTypeName(p.Type, p.Pos)
		if err != nil {
			return err
		}
		params[i] = annotated.Param{Name: p.Name, Type: t, Mutable: p.Mutable}
		if err := scope.DefineVariable(p.Name, t, p.Mutable, p.Pos); err != nil {
			return err
		}
	}

	returnType := types.Type(types.TVoid)
	if d.ReturnType != "" {
		t, err := a.resolveTypeName(d.ReturnType, d.Pos)
		if err != nil {
			return err
		}
		returnType = t
	}

	fn := &annotated.Function{Name: d.Name, Params: params, ReturnType: returnType, Pos: d.Pos}

	switch d.Name {
	case "vertex_main":
		if err := a.checkVertexMainContract(fn, d.Pos); err != nil {
			return err
		}
	case "fragment_main":
		if err := a.checkFragmentMainContract(fn, d.Pos); err != nil {
			return err
		}
	}

	body, err := a.analyzeCodeBlock(d.Body, scope, returnType)
	if err != nil {
		return err
	}
	fn.Body = body

	a.unit.Functions[d.Name] = fn
	a.unit.DeclOrder = append(a.unit.DeclOrder, annotated.DeclRef{Kind: annotated.DeclFunction, Name: d.Name})
	return nil
}

// checkVertexMainContract enforces: exactly one struct parameter with full
// semantics, a struct return type with full semantics and an SV_POSITION
// member, and — if fragment_main was already seen — that its parameter
// equals this return type.
func (a *analyzer) checkVertexMainContract(fn *annotated.Function, pos acslerr.Position) *acslerr.SemanticError {
	if len(fn.Params) != 1 {
		return acslerr.NewVertexMainParameterCount(pos)
	}
	paramStruct, ok := types.Underlying(fn.Params[0].Type).(*types.Struct)
	if !ok || !paramStruct.HasSemantics() {
		return acslerr.NewInvalidVertexMainParameterType(fn.Params[0].Type.String(), pos)
	}

	retStruct, ok := types.Underlying(fn.ReturnType).(*types.Struct)
	if !ok || !retStruct.HasSemantics() {
		return acslerr.NewInvalidVertexMainReturnType(fn.ReturnType.String(), pos)
	}
	if _, ok := retStruct.SemanticMember("SV_POSITION"); !ok {
		return acslerr.NewInvalidVertexMainReturnType(fn.ReturnType.String(), pos)
	}

	if a.unit.FragmentInputType != nil && a.unit.FragmentInputType != retStruct {
		return acslerr.NewVertexMainReturnTypeMismatch(retStruct.String(), a.unit.FragmentInputType.String(), pos)
	}

	a.unit.VertexInputType = paramStruct
	a.unit.FragmentInputType = retStruct
	return nil
}

// checkFragmentMainContract enforces: exactly one parameter equal to
// fragment_input_type (set by whichever main was analyzed first) and a
// return type of exactly float4.
func (a *analyzer) checkFragmentMainContract(fn *annotated.Function, pos acslerr.Position) *acslerr.SemanticError {
	if len(fn.Params) != 1 {
		return acslerr.NewFragmentMainParameterCount(pos)
	}
	paramStruct, ok := types.Underlying(fn.Params[0].Type).(*types.Struct)
	if !ok {
		return acslerr.NewInvalidFragmentMainParameterType(fn.Params[0].Type.String(), pos)
	}

	if !types.Equal(fn.ReturnType, types.FloatVecN(4)) {
		return acslerr.NewInvalidFragmentMainReturnType(fn.ReturnType.String(), pos)
	}

	if a.unit.FragmentInputType != nil && a.unit.FragmentInputType != paramStruct {
		return acslerr.NewFragmentMainParameterTypeMismatch(paramStruct.String(), a.unit.FragmentInputType.String(), pos)
	}

	a.unit.FragmentInputType = paramStruct
	return nil
}
