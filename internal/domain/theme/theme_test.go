package theme

import (
	"context"
	"testing"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/stretchr/testify/require"
)

func TestSetAndReload(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	r := NewRepo(st, nil)
	require.NoError(t, r.Load(ctx))
	require.Equal(t, Defaults(), r.Colors())

	colors, err := r.Set(ctx, SlotAccent, "#112233")
	require.NoError(t, err)
	require.Equal(t, "#112233", colors[SlotAccent])

	again := NewRepo(st, nil)
	require.NoError(t, again.Load(ctx))
	require.Equal(t, "#112233", again.Colors()[SlotAccent])
	require.Equal(t, Defaults()[SlotText], again.Colors()[SlotText])
}

func TestSet_Validation(t *testing.T) {
	ctx := context.Background()
	r := NewRepo(store.NewMemory(), nil)
	require.NoError(t, r.Load(ctx))

	_, err := r.Set(ctx, "sidebar", "#000000")
	require.ErrorIs(t, err, collection.ErrValidation)
	_, err = r.Set(ctx, SlotText, "red")
	require.ErrorIs(t, err, collection.ErrValidation)
	require.Equal(t, Defaults(), r.Colors())
}

func TestLoad_IgnoresGarbage(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, Key, []byte(`{"primary":"#abcdef","sidebar":"#000000","text":"blue"}`)))
	r := NewRepo(st, nil)
	require.NoError(t, r.Load(ctx))
	c := r.Colors()
	require.Equal(t, "#abcdef", c[SlotPrimary])
	require.Equal(t, Defaults()[SlotText], c[SlotText])
	require.Len(t, c, len(Defaults()))

	require.NoError(t, st.Set(ctx, Key, []byte(`nope`)))
	require.NoError(t, r.Load(ctx))
	require.Equal(t, Defaults(), r.Colors())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	r := NewRepo(st, nil)
	require.NoError(t, r.Load(ctx))
	_, err := r.Set(ctx, SlotPrimary, "#000000")
	require.NoError(t, err)

	require.NoError(t, r.Reset(ctx))
	require.Equal(t, Defaults(), r.Colors())
	_, ok, err := st.Get(ctx, Key)
	require.NoError(t, err)
	require.False(t, ok)
}
