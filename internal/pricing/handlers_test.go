package pricing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/silvergold-id/backend-silvergold/internal/pricing"
	"github.com/silvergold-id/backend-silvergold/internal/repo"
)

type fakePriceStore struct {
	current repo.MarketPrice
	updates int
}

func (f *fakePriceStore) Get(context.Context) (repo.MarketPrice, error) {
	return f.current, nil
}

func (f *fakePriceStore) Update(_ context.Context, gold, silver int64) (repo.MarketPrice, error) {
	f.updates++
	f.current = repo.MarketPrice{GoldPrice: gold, SilverPrice: silver, LastUpdated: time.Now()}
	return f.current, nil
}

func newHandler(store *fakePriceStore) *pricing.Handler {
	return &pricing.Handler{
		Service:  &pricing.Service{Store: store},
		Validate: validator.New(),
	}
}

func TestUpdateThenGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := &fakePriceStore{current: repo.MarketPrice{GoldPrice: 1, SilverPrice: 1}}
	handler := newHandler(store)

	before := time.Now()
	req := httptest.NewRequest(http.MethodPut, "/v1/market-prices", strings.NewReader(`{"gold":2360000,"silver":32000}`))
	rec := httptest.NewRecorder()
	handler.Update(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	grec := httptest.NewRecorder()
	handler.Get(grec, httptest.NewRequest(http.MethodGet, "/v1/market-prices", nil))
	require.Equal(t, http.StatusOK, grec.Code)

	var price repo.MarketPrice
	require.NoError(t, json.Unmarshal(grec.Body.Bytes(), &price))
	require.Equal(t, int64(2360000), price.GoldPrice)
	require.Equal(t, int64(32000), price.SilverPrice)
	require.False(t, price.LastUpdated.Before(before), "last_updated must be no older than the write")
}

func TestUpdateRejectsNonPositiveValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"zero gold", `{"gold":0,"silver":32000}`},
		{"zero silver", `{"gold":2360000,"silver":0}`},
		{"missing gold", `{"silver":32000}`},
		{"negative silver", `{"gold":2360000,"silver":-5}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &fakePriceStore{current: repo.MarketPrice{GoldPrice: 100, SilverPrice: 10}}
			handler := newHandler(store)

			req := httptest.NewRequest(http.MethodPut, "/v1/market-prices", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.Update(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Zero(t, store.updates, "rejected update must not touch the store")

			grec := httptest.NewRecorder()
			handler.Get(grec, httptest.NewRequest(http.MethodGet, "/v1/market-prices", nil))
			var price repo.MarketPrice
			require.NoError(t, json.Unmarshal(grec.Body.Bytes(), &price))
			require.Equal(t, int64(100), price.GoldPrice)
			require.Equal(t, int64(10), price.SilverPrice)
		})
	}
}

func TestUpdateRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	handler := newHandler(&fakePriceStore{})
	req := httptest.NewRequest(http.MethodPut, "/v1/market-prices", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handler.Update(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
