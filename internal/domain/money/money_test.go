package money

import (
	"encoding/json"
	"testing"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTotalAndDetails(t *testing.T) {
	lines := []Line{
		{Name: "Tasse", Qty: decimal.NewFromInt(2), Price: decimal.RequireFromString("20")},
		{Name: "Teller", Qty: decimal.RequireFromString("1.5"), Price: decimal.RequireFromString("4.10")},
	}
	require.True(t, decimal.RequireFromString("46.15").Equal(Total(lines)))
	require.Equal(t, "Tasse x2, Teller x1.5", Details(lines))
	require.True(t, Total(nil).IsZero())
}

func TestValidateLines(t *testing.T) {
	require.ErrorIs(t, ValidateLines("items", nil), collection.ErrValidation)
	require.ErrorIs(t, ValidateLines("items", []Line{{Name: " "}}), collection.ErrValidation)
	require.NoError(t, ValidateLines("items", []Line{{Name: "x"}}))
}

func TestLineJSONUsesNumbers(t *testing.T) {
	raw, err := json.Marshal(Line{Name: "a", Qty: decimal.NewFromInt(2), Price: decimal.RequireFromString("1.5")})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a","qty":2,"price":1.5}`, string(raw))

	var l Line
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","qty":"3","price":2.25}`), &l))
	require.True(t, decimal.NewFromInt(3).Equal(l.Qty))
}
