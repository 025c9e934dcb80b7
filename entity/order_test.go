package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderJSON(t *testing.T) {
	crew := uint(5)
	o := Order{
		ID:             3,
		CreatedAt:      time.Now(),
		UserID:         2,
		DeliveryCrewID: &crew,
		Status:         OrderStatusPending,
		Total:          decimal.RequireFromString("31.00"),
		Date:           time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
		OrderItems:     []OrderItem{{ID: 7, OrderID: 3, MenuItemID: 1, Quantity: 2}},
	}

	b, err := json.Marshal(&o)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.JSONEq(t, `3`, string(raw["id"]))
	assert.JSONEq(t, `"2026-10-14"`, string(raw["date"]))
	assert.JSONEq(t, `5`, string(raw["delivery_crew"]))
	for _, k := range []string{"ID", "CreatedAt", "UpdatedAt", "DeletedAt"} {
		assert.NotContains(t, raw, k)
	}

	var back Order
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, o.ID, back.ID)
	assert.True(t, o.Date.Equal(back.Date))
	assert.True(t, o.Total.Equal(back.Total))
	require.Len(t, back.OrderItems, 1)
	assert.EqualValues(t, 7, back.OrderItems[0].ID)
}

func TestMenuItemJSONUsesLowercaseID(t *testing.T) {
	b, err := json.Marshal(MenuItem{ID: 9, Title: "Pizza", Category: Category{ID: 1, Slug: "mains"}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":9`)
	assert.NotContains(t, string(b), `"ID"`)
	assert.NotContains(t, string(b), `DeletedAt`)
}
