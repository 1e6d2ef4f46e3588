package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/Migueeel08/focoshop-sub000/cache"
	"github.com/Migueeel08/focoshop-sub000/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/store/products", GetProducts)
	return r
}

func seedCatalog() {
	catalog_cache.Set([]models.Product{
		{ID: 1, Name: "Teléfono Nova", Category: "Tecnología", Brand: "Nokia", Condition: "nuevo",
			Price: 299, Rating: 4.5, ReviewCount: 20, Stock: 7, Available: true, Status: "activo"},
		{ID: 2, Name: "Laptop Pro", Category: "Tecnología", Brand: "Lenovo", Condition: "usado",
			Price: 999, Rating: 4.8, ReviewCount: 5, Stock: 3, Available: true, Status: "activo"},
		{ID: 3, Name: "Zapatilla X-Run", Category: "Calzado", Brand: "Adidas", Condition: "nuevo",
			Price: 80, Rating: 3.9, ReviewCount: 40, Stock: 12, Available: true, Status: "activo"},
		{ID: 4, Name: "Agotado", Category: "Calzado", Condition: "nuevo",
			Price: 50, Stock: 0, Available: true, Status: "activo"},
	})
}

type productsResponse struct {
	Message string            `json:"message"`
	Data    []models.Product  `json:"data"`
	Meta    models.Pagination `json:"meta"`
}

func TestGetProductsFiltersAndPaginates(t *testing.T) {
	seedCatalog()
	defer catalog_cache.Invalidate()
	router := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/products?category=Tecnolog%C3%ADa&sortBy=lowest-price", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Data[0].ID) // cheapest first
	assert.Equal(t, 2, resp.Data[1].ID)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestGetProductsSearchCrossesCategories(t *testing.T) {
	seedCatalog()
	defer catalog_cache.Invalidate()
	router := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/products?q=zapatilla&category=Tecnolog%C3%ADa", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Zapatilla X-Run", resp.Data[0].Name)
}

func TestGetProductsExcludesOutOfStock(t *testing.T) {
	seedCatalog()
	defer catalog_cache.Invalidate()
	router := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/products", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	for _, p := range resp.Data {
		assert.NotEqual(t, 4, p.ID, "sold-out product must not be listed")
	}
	assert.Equal(t, 3, resp.Meta.Total)
}

func TestGetProductsPaginationBounds(t *testing.T) {
	seedCatalog()
	defer catalog_cache.Invalidate()
	router := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/products?page=2&limit=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}
