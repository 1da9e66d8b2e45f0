package lemonsqueezy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

func TestPageMeta_HasNextPage(t *testing.T) {
	t.Parallel()

	assert.True(t, lemonsqueezy.PageMeta{CurrentPage: 1, LastPage: 2}.HasNextPage())
	assert.False(t, lemonsqueezy.PageMeta{CurrentPage: 2, LastPage: 2}.HasNextPage())
	assert.False(t, lemonsqueezy.PageMeta{}.HasNextPage())
}

func TestIncluded_DecodeAttributes(t *testing.T) {
	t.Parallel()

	t.Run("typed attributes", func(t *testing.T) {
		t.Parallel()

		included := lemonsqueezy.Included{
			Type:       lemonsqueezy.TypeStores,
			ID:         "1",
			Attributes: json.RawMessage(`{"name": "My Store", "currency": "USD"}`),
		}

		var store lemonsqueezy.StoreAttributes
		require.NoError(t, included.DecodeAttributes(&store))
		assert.Equal(t, "My Store", store.Name)
		assert.Equal(t, "USD", store.Currency)
	})

	t.Run("no attributes", func(t *testing.T) {
		t.Parallel()

		included := lemonsqueezy.Included{Type: lemonsqueezy.TypeStores, ID: "1"}

		var store lemonsqueezy.StoreAttributes
		require.ErrorIs(t, included.DecodeAttributes(&store), lemonsqueezy.ErrMissingData)
	})

	t.Run("mismatched attributes", func(t *testing.T) {
		t.Parallel()

		included := lemonsqueezy.Included{
			Type:       lemonsqueezy.TypeStores,
			ID:         "1",
			Attributes: json.RawMessage(`{"name": 5}`),
		}

		var store lemonsqueezy.StoreAttributes
		require.Error(t, included.DecodeAttributes(&store))
	})
}

func TestEnvelope_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("links", func(t *testing.T) {
		t.Parallel()

		var env lemonsqueezy.ListResponse[lemonsqueezy.Store, lemonsqueezy.Included]

		err := json.Unmarshal([]byte(`{
			"data": [{"type": "stores", "id": "1"}],
			"links": {"first": "https://api.lemonsqueezy.com/v1/stores?page[number]=1", "last": "https://api.lemonsqueezy.com/v1/stores?page[number]=1"}
		}`), &env)
		require.NoError(t, err)
		assert.Len(t, env.Data, 1)
		assert.Contains(t, env.Links, "first")
	})

	t.Run("missing data", func(t *testing.T) {
		t.Parallel()

		var env lemonsqueezy.Response[lemonsqueezy.Store, lemonsqueezy.Included]

		err := json.Unmarshal([]byte(`{"links": {}}`), &env)
		require.ErrorIs(t, err, lemonsqueezy.ErrMissingData)
	})
}

func TestSubscriptionUpdate_Encoding(t *testing.T) {
	t.Parallel()

	cancelled := false
	anchor := 15

	body, err := json.Marshal(lemonsqueezy.UpdateDocument[lemonsqueezy.SubscriptionUpdate]{
		Data: lemonsqueezy.UpdateData[lemonsqueezy.SubscriptionUpdate]{
			Type: lemonsqueezy.TypeSubscriptions,
			ID:   "1",
			Attributes: lemonsqueezy.SubscriptionUpdate{
				Cancelled:     &cancelled,
				BillingAnchor: &anchor,
			},
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"data": {
			"type": "subscriptions",
			"id": "1",
			"attributes": {"cancelled": false, "billing_anchor": 15}
		}
	}`, string(body))
}

func TestSubscriptionUpdate_ClearPause(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(lemonsqueezy.SubscriptionUpdate{ClearPause: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pause": null}`, string(body))

	body, err = json.Marshal(lemonsqueezy.SubscriptionUpdate{
		Pause:      &lemonsqueezy.SubscriptionPause{Mode: lemonsqueezy.PauseModeVoid},
		ClearPause: true,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pause": null}`, string(body))

	body, err = json.Marshal(lemonsqueezy.SubscriptionUpdate{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}
