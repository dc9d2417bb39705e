// Package aggregator fans a fetch out across the enabled source adapters and
// concatenates their results in declared order.
package aggregator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"social-pulse/logger"
	"social-pulse/models"
	"social-pulse/sources"
)

type Aggregator struct {
	registry *sources.Registry
}

func New(registry *sources.Registry) *Aggregator {
	return &Aggregator{registry: registry}
}

// Aggregate invokes every enabled source concurrently.
//
// 결과는 완료 순서와 무관하게 소스 선언 순서대로 이어붙인다. 소스 간 중복
// 제거는 하지 않는다. 어댑터가 연결되지 않은 kind 는 로그만 남기고 건너뛴다.
// 어느 한 어댑터의 전송 실패는 전체 Aggregate 의 실패다.
func (a *Aggregator) Aggregate(ctx context.Context, query models.StructuredQuery, enabled []models.SourceKind, opts models.FetchOptions) ([]models.Post, models.Metadata, error) {
	opts = opts.Normalize(time.Now())

	type slot struct {
		kind  models.SourceKind
		posts []models.Post
	}

	var active []sources.Source
	for _, kind := range enabled {
		src, ok := a.registry.Lookup(kind)
		if !ok {
			logger.InfoWithFields("source not implemented yet, skipping", logger.Fields{
				"source": string(kind),
			})
			continue
		}
		active = append(active, src)
	}

	results := make([]slot, len(active))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range active {
		g.Go(func() error {
			posts, err := src.Fetch(gctx, query, opts)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Kind(), err)
			}
			results[i] = slot{kind: src.Kind(), posts: posts}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, models.Metadata{}, err
	}

	var all []models.Post
	var used []models.SourceKind
	for _, r := range results {
		all = append(all, r.posts...)
		used = append(used, r.kind)
	}
	if all == nil {
		all = []models.Post{}
	}
	if used == nil {
		used = []models.SourceKind{}
	}

	meta := models.Metadata{
		DateRange:    models.DateRange{Since: opts.Since, Until: opts.Until},
		Sources:      used,
		Options:      opts,
		TotalResults: len(all),
	}
	logger.InfoWithFields("aggregation complete", logger.Fields{
		"sources": used,
		"total":   len(all),
	})
	return all, meta, nil
}
