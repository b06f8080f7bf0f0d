// Package theme хранит цвета интерфейса одним JSON-объектом.
package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"sync"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
)

const Key = "themeColors"

type Slot string

const (
	SlotPrimary    Slot = "primary"
	SlotSecondary  Slot = "secondary"
	SlotAccent     Slot = "accent"
	SlotBackground Slot = "background"
	SlotSurface    Slot = "surface"
	SlotText       Slot = "text"
	SlotSuccess    Slot = "success"
	SlotWarning    Slot = "warning"
	SlotDanger     Slot = "danger"
)

var defaults = map[Slot]string{
	SlotPrimary:    "#3b6e8f",
	SlotSecondary:  "#8f6e3b",
	SlotAccent:     "#d9822b",
	SlotBackground: "#f7f5f2",
	SlotSurface:    "#ffffff",
	SlotText:       "#222222",
	SlotSuccess:    "#2e7d32",
	SlotWarning:    "#ed6c02",
	SlotDanger:     "#c62828",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Colors map[Slot]string

func Defaults() Colors { return maps.Clone(defaults) }

type Repo struct {
	st  store.Store
	log *slog.Logger

	mu     sync.RWMutex
	colors Colors
}

func NewRepo(st store.Store, log *slog.Logger) *Repo {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repo{st: st, log: log, colors: Defaults()}
}

// Load накладывает сохранённые цвета на значения по умолчанию.
// Неизвестные слоты и битый JSON игнорируются.
func (r *Repo) Load(ctx context.Context) error {
	raw, ok, err := r.st.Get(ctx, Key)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	colors := Defaults()
	if ok {
		var saved map[Slot]string
		if err := json.Unmarshal(raw, &saved); err != nil {
			r.log.Warn("malformed theme, using defaults", "err", err)
		}
		for slot, v := range saved {
			if _, known := defaults[slot]; known && hexColor.MatchString(v) {
				colors[slot] = v
			}
		}
	}
	r.mu.Lock()
	r.colors = colors
	r.mu.Unlock()
	return nil
}

func (r *Repo) Colors() Colors {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.colors)
}

func (r *Repo) Set(ctx context.Context, slot Slot, value string) (Colors, error) {
	if _, ok := defaults[slot]; !ok {
		return nil, collection.Invalid("unknown theme slot %q", slot)
	}
	if !hexColor.MatchString(value) {
		return nil, collection.Invalid("color must be #rrggbb, got %q", value)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := maps.Clone(r.colors)
	next[slot] = value
	raw, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	if err := r.st.Set(ctx, Key, raw); err != nil {
		return nil, fmt.Errorf("save theme: %w", err)
	}
	r.colors = next
	return maps.Clone(next), nil
}

// Reset удаляет сохранённую тему и возвращает значения по умолчанию.
func (r *Repo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.st.Remove(ctx, Key); err != nil {
		return fmt.Errorf("reset theme: %w", err)
	}
	r.colors = Defaults()
	return nil
}
