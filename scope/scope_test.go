package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofend/fend/ast"
)

func TestLookupFindsOwnFrame(t *testing.T) {
	body := ast.Num{}
	s := Push("x", body, nil, nil)
	got, defn, found := s.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, body, got)
	assert.Nil(t, defn)
}

func TestLookupFallsBackToParent(t *testing.T) {
	outer := Push("x", ast.Ident{Name: "outer-x"}, nil, nil)
	inner := Push("y", ast.Ident{Name: "inner-y"}, nil, outer)
	got, _, found := inner.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, ast.Ident{Name: "outer-x"}, got)
}

func TestLookupMissingReturnsNotFound(t *testing.T) {
	s := Push("x", ast.Num{}, nil, nil)
	_, _, found := s.Lookup("z")
	assert.False(t, found)
}

func TestLookupInnerShadowsOuter(t *testing.T) {
	outer := Push("x", ast.Ident{Name: "outer"}, nil, nil)
	inner := Push("x", ast.Ident{Name: "inner"}, nil, outer)
	got, _, found := inner.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, ast.Ident{Name: "inner"}, got)
}

func TestLookupOnNilScope(t *testing.T) {
	var s *Scope
	_, _, found := s.Lookup("x")
	assert.False(t, found)
}
