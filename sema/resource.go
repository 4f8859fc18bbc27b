package sema

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/types"
)

func (a *analyzer) analyzeConstantBuffer(d *ast.ConstantBuffer) *acslerr.SemanticError {
	if err := a.checkNameAvailable(d.Name, d.Pos); err != nil {
		return err
	}

	slot := int(d.Slot)
	if slot >= annotated.CBufferSlots {
		return acslerr.NewSlotOutOfRange("cbuffer", slot, annotated.CBufferSlots, d.Pos)
	}
	if a.unit.CBuffers[slot] != nil {
		return acslerr.NewSlotOutOfRange("cbuffer", slot, annotated.CBufferSlots, d.Pos)
	}

	t, err := a.resolveTypeName(d.Type, d.Pos)
	if err != nil {
		return err
	}

	cb := &annotated.ConstantBuffer{Name: d.Name, Slot: slot, Type: t, Pos: d.Pos}
	a.unit.CBuffers[slot] = cb

	if err := a.global.DefineVariable(d.Name, t, false, d.Pos); err != nil {
		return err
	}

	a.unit.DeclOrder = append(a.unit.DeclOrder, annotated.DeclRef{Kind: annotated.DeclCBuffer, Name: d.Name})
	return nil
}

func (a *analyzer) analyzeTexture(d *ast.Texture) *acslerr.SemanticError {
	if err := a.checkNameAvailable(d.Name, d.Pos); err != nil {
		return err
	}

	slot := int(d.Slot)
	if slot >= annotated.TextureSlots {
		return acslerr.NewSlotOutOfRange("texture", slot, annotated.TextureSlots, d.Pos)
	}
	if a.unit.Textures[slot] != nil {
		return acslerr.NewSlotOutOfRange("texture", slot, annotated.TextureSlots, d.Pos)
	}

	elem, err := a.resolveTypeName(d.ElementType, d.Pos)
	if err != nil {
		return err
	}
	if !isValidTextureElement(elem) {
		return acslerr.NewInvalidTextureType(elem.String(), d.Pos)
	}

	tex := &annotated.Texture{Name: d.Name, Slot: slot, ElementType: elem, Pos: d.Pos}
	a.unit.Textures[slot] = tex

	if err := a.global.DefineVariable(d.Name, types.TTexture, false, d.Pos); err != nil {
		return err
	}

	a.unit.DeclOrder = append(a.unit.DeclOrder, annotated.DeclRef{Kind: annotated.DeclTexture, Name: d.Name})
	return nil
}

func isValidTextureElement(t types.Type) bool {
	u := types.Underlying(t)
	p, ok := u.(*types.Primitive)
	if !ok {
		return false
	}
	return p.Kind == types.Float || p.Kind == types.FloatVec || p.Kind == types.Uint
}

func (a *analyzer) analyzeTypeAlias(d *ast.TypeAlias) *acslerr.SemanticError {
	if err := a.checkNameAvailable(d.Name, d.Pos); err != nil {
		return err
	}

	inner, err := a.resolveTypeName(d.Type, d.Pos)
	if err != nil {
		return err
	}

	alias := &types.Alias{Name: d.Name, Inner: inner}
	a.aliasesByName[d.Name] = alias
	a.unit.Aliases = append(a.unit.Aliases, alias)
	// Aliases are erased at emission; they never enter DeclOrder (§4.7/§4.8).
	return nil
}

func (a *analyzer) analyzeConstant(d *ast.Constant) *acslerr.SemanticError {
	if err := a.checkNameAvailable(d.Name, d.Pos); err != nil {
		return err
	}

	expr, err := a.analyzeExpr(d.Expr, a.global)
	if err != nil {
		return err
	}

	c := &annotated.Constant{Name: d.Name, Type: expr.Type(), Expr: expr, Pos: d.Pos}
	a.unit.Constants[d.Name] = c

	if err := a.global.DefineVariable(d.Name, expr.Type(), false, d.Pos); err != nil {
		return err
	}

	a.unit.DeclOrder = append(a.unit.DeclOrder, annotated.DeclRef{Kind: annotated.DeclConstant, Name: d.Name})
	return nil
}
