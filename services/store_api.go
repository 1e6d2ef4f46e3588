package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Migueeel08/focoshop-sub000/models"
)

// APIError is an upstream failure. Message carries the service-provided text
// when the body had one, so handlers can surface it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// upstreamError covers the error body shapes the FocoShop API uses.
type upstreamError struct {
	Detail  string `json:"detail"`
	Message string `json:"mensaje"`
}

// StoreAPI is the client for the FocoShop REST API. No retries and no
// backoff: a failed call is terminal and reported to the storefront as-is.
type StoreAPI struct {
	baseURL string
	client  *http.Client
}

func NewStoreAPI(baseURL string) *StoreAPI {
	return &StoreAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

var storeAPI *StoreAPI

// InitStoreAPI wires the package-level client used by controllers.
func InitStoreAPI(baseURL string) {
	storeAPI = NewStoreAPI(baseURL)
}

func Store() *StoreAPI {
	return storeAPI
}

func (a *StoreAPI) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	endpoint := a.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("focoshop api unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ue upstreamError
		message := ""
		if json.Unmarshal(data, &ue) == nil {
			if ue.Detail != "" {
				message = ue.Detail
			} else if ue.Message != "" {
				message = ue.Message
			}
		}
		if message == "" {
			message = fmt.Sprintf("focoshop api returned status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// ── Catalog ──────────────────────────────────────────────────────────────────

// FetchCatalog retrieves the browsable product list, optionally narrowed to a
// category upstream-side.
func (a *StoreAPI) FetchCatalog(ctx context.Context, category string) ([]models.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("categoria", category)
	}
	var items []models.Product
	if err := a.do(ctx, http.MethodGet, "/productos", query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *StoreAPI) FetchProduct(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := a.do(ctx, http.MethodGet, "/productos/"+strconv.Itoa(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ── TOPSIS comparator ────────────────────────────────────────────────────────

// DefaultCriteria fetches the comparator's default criteria/weight map.
func (a *StoreAPI) DefaultCriteria(ctx context.Context) (map[string]models.CriterionSpec, error) {
	var specs map[string]models.CriterionSpec
	if err := a.do(ctx, http.MethodGet, "/topsis/criterios-default", nil, nil, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// Compare submits candidate ids plus weighted criteria; all TOPSIS arithmetic
// happens upstream.
func (a *StoreAPI) Compare(ctx context.Context, req models.CompareRequest) (*models.ComparisonResult, error) {
	var result models.ComparisonResult
	if err := a.do(ctx, http.MethodPost, "/topsis/comparar", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ── Cart ─────────────────────────────────────────────────────────────────────

func (a *StoreAPI) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := a.do(ctx, http.MethodGet, "/carrito/"+sessionID, nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (a *StoreAPI) AddCartItem(ctx context.Context, sessionID string, req models.AddCartItemRequest) (*models.Cart, error) {
	var cart models.Cart
	if err := a.do(ctx, http.MethodPost, "/carrito/"+sessionID+"/items", nil, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (a *StoreAPI) UpdateCartItem(ctx context.Context, sessionID string, productID, quantity int) (*models.Cart, error) {
	var cart models.Cart
	path := "/carrito/" + sessionID + "/items/" + strconv.Itoa(productID)
	body := models.UpdateCartItemRequest{Quantity: quantity}
	if err := a.do(ctx, http.MethodPut, path, nil, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (a *StoreAPI) RemoveCartItem(ctx context.Context, sessionID string, productID int) (*models.Cart, error) {
	var cart models.Cart
	path := "/carrito/" + sessionID + "/items/" + strconv.Itoa(productID)
	if err := a.do(ctx, http.MethodDelete, path, nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (a *StoreAPI) ClearCart(ctx context.Context, sessionID string) error {
	return a.do(ctx, http.MethodDelete, "/carrito/"+sessionID, nil, nil, nil)
}

// ── Favorites ────────────────────────────────────────────────────────────────

func (a *StoreAPI) GetFavorites(ctx context.Context, sessionID string) ([]models.Product, error) {
	var items []models.Product
	if err := a.do(ctx, http.MethodGet, "/favoritos/"+sessionID, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *StoreAPI) ToggleFavorite(ctx context.Context, sessionID string, productID int) (*models.FavoriteToggleResult, error) {
	var result models.FavoriteToggleResult
	path := "/favoritos/" + sessionID + "/" + strconv.Itoa(productID)
	if err := a.do(ctx, http.MethodPut, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ── Reviews ──────────────────────────────────────────────────────────────────

func (a *StoreAPI) FetchReviews(ctx context.Context, productID int) ([]models.Review, error) {
	var reviews []models.Review
	path := "/productos/" + strconv.Itoa(productID) + "/resenas"
	if err := a.do(ctx, http.MethodGet, path, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (a *StoreAPI) CreateReview(ctx context.Context, productID int, sessionID string, req models.ReviewRequest) (*models.Review, error) {
	var review models.Review
	path := "/productos/" + strconv.Itoa(productID) + "/resenas"
	query := url.Values{"sesion": {sessionID}}
	if err := a.do(ctx, http.MethodPost, path, query, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

func (a *StoreAPI) CreateOrder(ctx context.Context, sessionID string, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	query := url.Values{"sesion": {sessionID}}
	if err := a.do(ctx, http.MethodPost, "/pedidos", query, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *StoreAPI) FetchOrders(ctx context.Context, sessionID string) ([]models.Order, error) {
	var orders []models.Order
	query := url.Values{"sesion": {sessionID}}
	if err := a.do(ctx, http.MethodGet, "/pedidos", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *StoreAPI) FetchOrder(ctx context.Context, sessionID string, orderID int) (*models.Order, error) {
	var order models.Order
	query := url.Values{"sesion": {sessionID}}
	if err := a.do(ctx, http.MethodGet, "/pedidos/"+strconv.Itoa(orderID), query, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ── Seller product management ────────────────────────────────────────────────

func (a *StoreAPI) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	var p models.Product
	if err := a.do(ctx, http.MethodPost, "/productos", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *StoreAPI) UpdateProduct(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	var p models.Product
	if err := a.do(ctx, http.MethodPut, "/productos/"+strconv.Itoa(id), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *StoreAPI) DeleteProduct(ctx context.Context, id int) error {
	return a.do(ctx, http.MethodDelete, "/productos/"+strconv.Itoa(id), nil, nil, nil)
}
