// File: services/square/client.go
package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"brewflow/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the Square REST API. It implements both the catalog
// provider and the order backend collaborators. When switching to
// production, point BaseURL away from the sandbox.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Logger     *zap.Logger

	mu         sync.Mutex
	locationID string
}

// NewClient builds a Square client. locationID may be empty, in which case
// the first location of the account is looked up and cached on first use.
func NewClient(baseURL, token, locationID string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{},
		Logger:     logger,
		locationID: locationID,
	}
}

// BackendError is a rejection reported by Square. It is always recoverable
// from the session's point of view.
type BackendError struct {
	Code   string
	Detail string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("square: %s: %s", e.Code, e.Detail)
}

type apiError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

type catalogListResponse struct {
	Errors  []apiError      `json:"errors,omitempty"`
	Cursor  string          `json:"cursor,omitempty"`
	Objects []catalogObject `json:"objects"`
}

type catalogObject struct {
	Type     string    `json:"type"`
	ID       string    `json:"id"`
	ItemData *itemData `json:"item_data,omitempty"`
}

type itemData struct {
	Name       string            `json:"name"`
	Variations []variationObject `json:"variations"`
}

type variationObject struct {
	ID            string         `json:"id"`
	VariationData *variationData `json:"item_variation_data"`
}

type variationData struct {
	Name       string     `json:"name"`
	PriceMoney priceMoney `json:"price_money"`
}

type priceMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// FetchCatalog lists all ITEM objects with their variations and prices.
func (c *Client) FetchCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	cursor := ""
	for {
		endpoint := c.BaseURL + "/v2/catalog/list?types=ITEM"
		if cursor != "" {
			endpoint += "&cursor=" + url.QueryEscape(cursor)
		}

		var listResp catalogListResponse
		if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &listResp); err != nil {
			return nil, err
		}
		if err := firstError(listResp.Errors); err != nil {
			return nil, err
		}

		for _, obj := range listResp.Objects {
			if obj.Type != "ITEM" || obj.ItemData == nil {
				continue
			}
			item := models.CatalogItem{ID: obj.ID, Name: obj.ItemData.Name}
			for _, v := range obj.ItemData.Variations {
				if v.VariationData == nil {
					continue
				}
				item.Variations = append(item.Variations, models.Variation{
					ID:    v.ID,
					Label: v.VariationData.Name,
					Price: v.VariationData.PriceMoney.Amount,
				})
			}
			items = append(items, item)
		}

		if listResp.Cursor == "" {
			return items, nil
		}
		cursor = listResp.Cursor
	}
}

type createOrderRequest struct {
	IdempotencyKey string    `json:"idempotency_key"`
	Order          orderBody `json:"order"`
}

type orderBody struct {
	LocationID string          `json:"location_id"`
	LineItems  []orderLineItem `json:"line_items"`
}

type orderLineItem struct {
	CatalogObjectID string `json:"catalog_object_id"`
	Quantity        string `json:"quantity"`
}

type createOrderResponse struct {
	Errors []apiError `json:"errors,omitempty"`
	Order  *struct {
		ID string `json:"id"`
	} `json:"order,omitempty"`
}

// CreateOrder places an order for the given line items and returns the
// Square order id. Each call carries a fresh idempotency key.
func (c *Client) CreateOrder(ctx context.Context, lines []models.LineItem) (string, error) {
	locationID, err := c.resolveLocationID(ctx)
	if err != nil {
		return "", err
	}

	reqBody := createOrderRequest{
		IdempotencyKey: uuid.New().String(),
		Order:          orderBody{LocationID: locationID},
	}
	for _, l := range lines {
		reqBody.Order.LineItems = append(reqBody.Order.LineItems, orderLineItem{
			CatalogObjectID: l.VariationID,
			Quantity:        strconv.Itoa(l.Quantity),
		})
	}

	var resp createOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, c.BaseURL+"/v2/orders", reqBody, &resp); err != nil {
		return "", err
	}
	if err := firstError(resp.Errors); err != nil {
		return "", err
	}
	if resp.Order == nil || resp.Order.ID == "" {
		return "", &BackendError{Code: "MISSING_ORDER", Detail: "order create response carried no order id"}
	}

	c.Logger.Info("order placed", zap.String("orderId", resp.Order.ID), zap.Int("lines", len(lines)))
	return resp.Order.ID, nil
}

type locationsResponse struct {
	Errors    []apiError `json:"errors,omitempty"`
	Locations []struct {
		ID string `json:"id"`
	} `json:"locations"`
}

// resolveLocationID returns the configured location, falling back to the
// first location on the account.
func (c *Client) resolveLocationID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locationID != "" {
		return c.locationID, nil
	}

	var resp locationsResponse
	if err := c.doJSON(ctx, http.MethodGet, c.BaseURL+"/v2/locations", nil, &resp); err != nil {
		return "", err
	}
	if err := firstError(resp.Errors); err != nil {
		return "", err
	}
	if len(resp.Locations) == 0 {
		return "", &BackendError{Code: "NO_LOCATIONS", Detail: "no locations found for this Square account"}
	}
	c.locationID = resp.Locations[0].ID
	return c.locationID, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out any) error {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode square request: %w", err)
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build square request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("square request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode square response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}

func firstError(errs []apiError) error {
	if len(errs) == 0 {
		return nil
	}
	return &BackendError{Code: errs[0].Code, Detail: errs[0].Detail}
}
