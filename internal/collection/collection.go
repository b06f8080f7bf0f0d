package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/Spok95/shopdesk/internal/infra/metrics"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Record: запись коллекции. WithID возвращает копию с проставленным id.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
	Validate() error
}

// preparer пересчитывает производные поля (итоги) перед валидацией.
type preparer[T any] interface {
	Prepare() T
}

type Options struct {
	Log     *slog.Logger
	Metrics *metrics.Metrics
}

// Collection: упорядоченная последовательность записей одного типа.
// Каждая успешная мутация целиком перезаписывает ключ в Store;
// если запись не удалась, память остаётся в прежнем состоянии.
type Collection[T Record[T]] struct {
	key     string
	st      store.Store
	log     *slog.Logger
	metrics *metrics.Metrics

	mu      sync.RWMutex
	records []T
}

func New[T Record[T]](key string, st store.Store, opts Options) *Collection[T] {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Collection[T]{
		key:     key,
		st:      st,
		log:     log.With("collection", key),
		metrics: opts.Metrics,
	}
}

func (c *Collection[T]) Key() string { return c.key }

// Load читает ключ из Store. Отсутствующий или битый JSON даёт пустую коллекцию.
// Выданные при загрузке id сразу записываются обратно, чтобы не меняться между запусками.
func (c *Collection[T]) Load(ctx context.Context) error {
	raw, ok, err := c.st.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.key, err)
	}
	var records []T
	if ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &records); err != nil {
			c.log.Warn("malformed collection, starting empty", "err", err)
			records = nil
		}
	}
	minted := 0
	for i, r := range records {
		if r.RecordID() == "" {
			records[i] = r.WithID(newID())
			minted++
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if minted > 0 {
		if err := c.commit(ctx, records); err != nil {
			return err
		}
		c.log.Info("ids assigned to legacy records", "count", minted)
		return nil
	}
	c.records = records
	c.metrics.SetRecords(c.key, len(records))
	return nil
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.records)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, _, ok := lo.FindIndexOf(c.records, func(r T) bool { return r.RecordID() == id })
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
	}
	return r, nil
}

func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Find(c.records, pred)
}

func (c *Collection[T]) Add(ctx context.Context, candidate T) (T, error) {
	candidate, err := prepare(candidate)
	if err != nil {
		var zero T
		return zero, err
	}
	rec := candidate.WithID(newID())

	c.mu.Lock()
	defer c.mu.Unlock()
	next := append(slices.Clone(c.records), rec)
	if err := c.commit(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	c.metrics.Mutation(c.key, "add")
	c.log.Debug("record added", "id", rec.RecordID(), "len", len(next))
	return rec, nil
}

// Update заменяет запись целиком, id сохраняется.
func (c *Collection[T]) Update(ctx context.Context, id string, candidate T) (T, error) {
	candidate, err := prepare(candidate)
	if err != nil {
		var zero T
		return zero, err
	}
	rec := candidate.WithID(id)

	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
	}
	next := slices.Clone(c.records)
	next[idx] = rec
	if err := c.commit(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	c.metrics.Mutation(c.key, "update")
	c.log.Debug("record updated", "id", id)
	return rec, nil
}

func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
	}
	next := slices.Delete(slices.Clone(c.records), idx, idx+1)
	if err := c.commit(ctx, next); err != nil {
		return err
	}
	c.metrics.Mutation(c.key, "remove")
	c.log.Debug("record removed", "id", id, "len", len(next))
	return nil
}

// Replace: деструктивная перезапись (импорт бэкапа). Без валидации,
// записям без id выдаются новые.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	next := make([]T, len(records))
	for i, r := range records {
		if r.RecordID() == "" {
			r = r.WithID(newID())
		}
		next[i] = r
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.commit(ctx, next); err != nil {
		return err
	}
	c.metrics.Mutation(c.key, "replace")
	return nil
}

// Reset удаляет ключ из Store и очищает память.
func (c *Collection[T]) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.st.Remove(ctx, c.key); err != nil {
		return fmt.Errorf("reset %s: %w", c.key, err)
	}
	c.records = nil
	c.metrics.Mutation(c.key, "reset")
	c.metrics.SetRecords(c.key, 0)
	return nil
}

// commit вызывается под c.mu.
func (c *Collection[T]) commit(ctx context.Context, next []T) error {
	if next == nil {
		next = []T{}
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.st.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	c.records = next
	c.metrics.SetRecords(c.key, len(next))
	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.records, func(r T) bool { return r.RecordID() == id })
}

func prepare[T Record[T]](candidate T) (T, error) {
	if p, ok := any(candidate).(preparer[T]); ok {
		candidate = p.Prepare()
	}
	if err := candidate.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return candidate, nil
}

func newID() string { return uuid.NewString() }
