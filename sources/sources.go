// Package sources defines the pluggable post-fetching contract and keeps the
// set of adapters wired into the pipeline.
package sources

import (
	"context"
	"errors"

	"social-pulse/models"
)

// ErrMissingCredential 은 어댑터 생성 시점에 필수 자격증명이 없을 때 반환된다.
// 네트워크 호출 이전에 반드시 드러나야 하는 설정 오류다.
var ErrMissingCredential = errors.New("missing required credential")

// Source fetches posts for a structured query from one platform.
// Implementations must return posts normalized to models.Post.
type Source interface {
	Kind() models.SourceKind
	Fetch(ctx context.Context, query models.StructuredQuery, opts models.FetchOptions) ([]models.Post, error)
}

// Registry maps source kinds to their wired adapters.
type Registry struct {
	adapters map[models.SourceKind]Source
}

func NewRegistry(adapters ...Source) *Registry {
	r := &Registry{adapters: make(map[models.SourceKind]Source)}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

func (r *Registry) Register(s Source) {
	r.adapters[s.Kind()] = s
}

// Lookup returns the adapter for kind, or false when the kind is declared
// but not wired.
func (r *Registry) Lookup(kind models.SourceKind) (Source, bool) {
	s, ok := r.adapters[kind]
	return s, ok
}
