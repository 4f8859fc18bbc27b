// Package cache memoizes ACSL compilations keyed by source text and target
// language, so a driver re-compiling an unchanged file (e.g. in watch mode)
// avoids repeating the lex/parse/analyze/emit pipeline.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/shipsimfan/acsl"
)

// Target identifies which backend a cached result was produced by.
type Target uint8

const (
	TargetHLSL Target = iota
	TargetGLSL
)

// Result is a cached compilation outcome: either a backend output or a
// CompilationError, never both.
type Result struct {
	HLSL     string
	Vertex   string
	Fragment string
	Err      error
}

// Cache is an LRU cache of compiled shader sources. The zero value is not
// usable; construct with New.
type Cache struct {
	lru *lru.Cache
}

// New returns a cache holding at most size compiled results.
func New(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{lru: l}, nil
}

type key struct {
	hash   string
	target Target
}

func hashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// CompileHLSL returns the cached HLSL compilation of source, compiling and
// storing it on first use.
func (c *Cache) CompileHLSL(source string) (string, error) {
	k := key{hash: hashSource(source), target: TargetHLSL}
	if v, ok := c.lru.Get(k); ok {
		r := v.(Result)
		return r.HLSL, r.Err
	}

	out, err := acsl.CompileHLSL(source)
	c.lru.Add(k, Result{HLSL: out, Err: err})
	return out, err
}

// CompileGLSL returns the cached GLSL compilation of source, compiling and
// storing it on first use.
func (c *Cache) CompileGLSL(source string) (vertex, fragment string, err error) {
	k := key{hash: hashSource(source), target: TargetGLSL}
	if v, ok := c.lru.Get(k); ok {
		r := v.(Result)
		return r.Vertex, r.Fragment, r.Err
	}

	vertex, fragment, err = acsl.CompileGLSL(source)
	c.lru.Add(k, Result{Vertex: vertex, Fragment: fragment, Err: err})
	return vertex, fragment, err
}
