package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/silvergold-id/backend-silvergold/internal/catalog"
	"github.com/silvergold-id/backend-silvergold/internal/repo"
)

type fakeProductStore struct {
	products []repo.Product
	stock    map[string]map[string]int
	failWith error
}

func (f *fakeProductStore) List(context.Context) ([]repo.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.products, nil
}

func (f *fakeProductStore) WarehouseStock(_ context.Context, id string) (map[string]int, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	stock, ok := f.stock[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return stock, nil
}

type fakeKnowledgeStore struct {
	articles []repo.KnowledgeArticle
}

func (f *fakeKnowledgeStore) List(context.Context) ([]repo.KnowledgeArticle, error) {
	return f.articles, nil
}

func product(metal, name string) repo.Product {
	return repo.Product{
		ID:        fmt.Sprintf("id-%s-%s", metal, name),
		Metal:     metal,
		Name:      name,
		Weight:    1,
		Purity:    "999.9",
		Price:     1_000_000,
		Condition: "New",
	}
}

func TestFeaturedTruncation(t *testing.T) {
	t.Parallel()

	store := &fakeProductStore{products: []repo.Product{
		product("Gold", "Antam 1g"),
		product("Gold", "Antam 2g"),
		product("Gold", "Antam 5g"),
		product("Gold", "Antam 10g"),
		product("Gold", "UBS 1g"),
		product("Silver", "Bar 100g"),
	}}
	handler := &catalog.Handler{Service: &catalog.Service{Products: store}}

	req := httptest.NewRequest(http.MethodGet, "/v1/product", nil)
	rec := httptest.NewRecorder()
	handler.Featured(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var featured []repo.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	require.Len(t, featured, 3, "2 gold + 1 silver, never padded")
	require.Equal(t, "Antam 1g", featured[0].Name)
	require.Equal(t, "Antam 2g", featured[1].Name)
	require.Equal(t, "Bar 100g", featured[2].Name)
}

func TestFeaturedKeepsStoreOrder(t *testing.T) {
	t.Parallel()

	store := &fakeProductStore{products: []repo.Product{
		product("Silver", "Bar 250g"),
		product("Gold", "Antam 1g"),
		product("Silver", "Bar 100g"),
		product("Gold", "UBS 2g"),
		product("Silver", "Bar 500g"),
	}}
	handler := &catalog.Handler{Service: &catalog.Service{Products: store}}

	rec := httptest.NewRecorder()
	handler.Featured(rec, httptest.NewRequest(http.MethodGet, "/v1/product", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var featured []repo.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	names := make([]string, 0, len(featured))
	for _, p := range featured {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"Antam 1g", "UBS 2g", "Bar 250g", "Bar 100g"}, names)
}

func TestProductsList(t *testing.T) {
	t.Parallel()

	store := &fakeProductStore{products: []repo.Product{
		product("Gold", "Antam 1g"),
		product("Silver", "Bar 100g"),
	}}
	handler := &catalog.Handler{Service: &catalog.Service{Products: store}}

	rec := httptest.NewRecorder()
	handler.Products(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var products []repo.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	require.Equal(t, int64(1_000_000), products[0].Price)
}

func TestProductsStoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeProductStore{failWith: errors.New("connection refused")}
	handler := &catalog.Handler{Service: &catalog.Service{Products: store}}

	rec := httptest.NewRecorder()
	handler.Products(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "DEPENDENCY_ERROR", body.Error.Code)
	require.NotContains(t, body.Error.Message, "connection refused")
}

func TestWarehouseStock(t *testing.T) {
	t.Parallel()

	store := &fakeProductStore{stock: map[string]map[string]int{
		"abc": {"Jakarta": 4, "Surabaya": 1},
	}}
	handler := &catalog.Handler{Service: &catalog.Service{Products: store}}

	router := chi.NewRouter()
	router.Get("/v1/warehouse/{id}", handler.Warehouse)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/warehouse/abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stock map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stock))
	require.Equal(t, map[string]int{"Jakarta": 4, "Surabaya": 1}, stock)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/warehouse/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKnowledgeList(t *testing.T) {
	t.Parallel()

	handler := &catalog.Handler{Service: &catalog.Service{
		Products: &fakeProductStore{},
		Knowledge: &fakeKnowledgeStore{articles: []repo.KnowledgeArticle{
			{ID: "k1", Title: "Cara menyimpan emas", Content: "..."},
		}},
	}}

	rec := httptest.NewRecorder()
	handler.Knowledge(rec, httptest.NewRequest(http.MethodGet, "/v1/knowledge", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var articles []repo.KnowledgeArticle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
	require.Len(t, articles, 1)
	require.Equal(t, "Cara menyimpan emas", articles[0].Title)
}
