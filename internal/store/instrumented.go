package store

import (
	"context"

	"github.com/Spok95/shopdesk/internal/infra/metrics"
)

type instrumented struct {
	next Store
	m    *metrics.Metrics
}

// WithMetrics оборачивает Store счётчиком операций.
func WithMetrics(next Store, m *metrics.Metrics) Store {
	if m == nil {
		return next
	}
	return &instrumented{next: next, m: m}
}

func (s *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok, err := s.next.Get(ctx, key)
	s.m.StoreOp("get", err)
	return v, ok, err
}

func (s *instrumented) Set(ctx context.Context, key string, value []byte) error {
	err := s.next.Set(ctx, key, value)
	s.m.StoreOp("set", err)
	return err
}

func (s *instrumented) Remove(ctx context.Context, key string) error {
	err := s.next.Remove(ctx, key)
	s.m.StoreOp("remove", err)
	return err
}
