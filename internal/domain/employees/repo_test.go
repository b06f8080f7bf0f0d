package employees

import (
	"context"
	"testing"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()
	r := NewRepo(store.NewMemory(), collection.Options{})
	require.NoError(t, r.Load(ctx))

	eva, err := r.Add(ctx, Employee{Name: "Eva", HourlyRate: decimal.NewFromInt(15), Active: true})
	require.NoError(t, err)

	got, ok := r.Resolve(eva.ID, "")
	require.True(t, ok)
	require.Equal(t, "Eva", got.Name)

	// переименование не ломает ссылку по id
	renamed := eva
	renamed.Name = "Eva M."
	_, err = r.Update(ctx, eva.ID, renamed)
	require.NoError(t, err)

	got, ok = r.Resolve(eva.ID, "Eva")
	require.True(t, ok)
	require.Equal(t, "Eva M.", got.Name)

	// а старое имя без id больше не находится
	_, ok = r.Resolve("", "Eva")
	require.False(t, ok)

	require.True(t, decimal.Zero.Equal(RateFor(r.List(), "", "Nobody")))
	require.True(t, decimal.NewFromInt(15).Equal(RateFor(r.List(), "", "Eva M.")))
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, Employee{}.Validate(), collection.ErrValidation)
}
