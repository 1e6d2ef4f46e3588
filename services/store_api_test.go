package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Migueeel08/focoshop-sub000/models"
)

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/productos", r.URL.Path)
		assert.Equal(t, "Tecnología", r.URL.Query().Get("categoria"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "nombre": "Teléfono Nova", "precio": 299.99, "categoria": "Tecnología",
			 "marca": "Nokia", "condicion": "nuevo", "calificacion": 4.5,
			 "num_calificaciones": 20, "ventas": 120, "stock": 7, "disponible": true, "estado": "activo"}
		]`))
	}))
	defer srv.Close()

	api := NewStoreAPI(srv.URL)
	items, err := api.FetchCatalog(context.Background(), "Tecnología")
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "Teléfono Nova", items[0].Name)
	assert.Equal(t, 299.99, items[0].Price)
	assert.Equal(t, "nuevo", items[0].Condition)
	assert.Equal(t, 20, items[0].ReviewCount)
	assert.True(t, items[0].Available)
}

func TestFetchCatalogNoCategoryOmitsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	api := NewStoreAPI(srv.URL)
	items, err := api.FetchCatalog(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpstreamErrorMessagePassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Producto no encontrado"}`))
	}))
	defer srv.Close()

	api := NewStoreAPI(srv.URL)
	_, err := api.FetchProduct(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Producto no encontrado", apiErr.Message)
}

func TestUpstreamErrorMensajeShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"mensaje": "Se necesitan al menos 2 productos"}`))
	}))
	defer srv.Close()

	api := NewStoreAPI(srv.URL)
	_, err := api.Compare(context.Background(), models.CompareRequest{ProductIDs: []int{1}})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Se necesitan al menos 2 productos", apiErr.Message)
}

func TestUpstreamErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	api := NewStoreAPI(srv.URL)
	_, err := api.FetchCatalog(context.Background(), "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "502")
}

func TestCompareEncodesFractionalWeights(t *testing.T) {
	var captured models.CompareRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/topsis/comparar", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{
			"ranking": [
				{"producto_id": 2, "nombre": "Laptop Pro", "posicion": 1, "puntaje_cercania": 0.82},
				{"producto_id": 1, "nombre": "Teléfono Nova", "posicion": 2, "puntaje_cercania": 0.41}
			],
			"ganador": {"producto_id": 2, "nombre": "Laptop Pro", "posicion": 1, "puntaje_cercania": 0.82}
		}`))
	}))
	defer srv.Close()

	api := NewStoreAPI(srv.URL)
	result, err := api.Compare(context.Background(), models.CompareRequest{
		ProductIDs: []int{1, 2},
		Criteria: map[string]models.CriterionSpec{
			"precio":       {Weight: 0.34, Kind: "cost"},
			"calificacion": {Weight: 0.66, Kind: "benefit"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, captured.ProductIDs)
	assert.Equal(t, 0.34, captured.Criteria["precio"].Weight)
	assert.Equal(t, "cost", captured.Criteria["precio"].Kind)
	assert.Equal(t, "benefit", captured.Criteria["calificacion"].Kind)

	require.Len(t, result.Ranking, 2)
	require.NotNil(t, result.Winner)
	assert.Equal(t, 2, result.Winner.ProductID)
	assert.Equal(t, 1, result.Ranking[0].Position)
}

func TestToggleFavorite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/favoritos/sess-1/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"producto_id": 42, "agregado": true}`))
	}))
	defer srv.Close()

	api := NewStoreAPI(srv.URL)
	result, err := api.ToggleFavorite(context.Background(), "sess-1", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, result.ProductID)
	assert.True(t, result.Added)
}
