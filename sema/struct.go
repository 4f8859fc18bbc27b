package sema

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/types"
)

func (a *analyzer) analyzeStruct(d *ast.Struct) *acslerr.SemanticError {
	if err := a.checkNameAvailable(d.Name, d.Pos); err != nil {
		return err
	}

	seen := make(map[string]bool, len(d.Members))
	members := make([]types.StructMember, 0, len(d.Members))
	semanticCount := 0

	for _, m := range d.Members {
		if seen[m.Name] {
			return acslerr.NewMultipleDefinition(m.Name, m.Pos)
		}
		seen[m.Name] = true

		t, err := a.resolveTypeName(m.Type, m.Pos)
		if err != nil {
			return err
		}

		if m.Semantic != "" {
			semanticCount++
		}
		members = append(members, types.StructMember{Name: m.Name, Type: t, Semantic: m.Semantic})
	}

	if semanticCount != 0 && semanticCount != len(members) {
		return acslerr.NewAllFieldsNeedSemantics(d.Name, d.Pos)
	}

	s := &types.Struct{Name: d.Name, Members: members}
	a.structsByName[d.Name] = s
	a.unit.UserStructs = append(a.unit.UserStructs, s)
	a.unit.DeclOrder = append(a.unit.DeclOrder, annotated.DeclRef{Kind: annotated.DeclStruct, Name: d.Name})
	return nil
}
