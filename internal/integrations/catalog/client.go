package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

const productsPath = "/api/v1/products"

// Client клиент сервиса каталога (товары и услуги бизнеса)
type Client struct {
	http *resty.Client
	log  Logger
}

// NewClient создает клиент каталога. retryCount повторов делается только на сетевых ошибках.
func NewClient(baseURL string, timeout time.Duration, retryCount int, log Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{http: http, log: log}
}

// GetProducts возвращает все позиции каталога бизнеса
func (c *Client) GetProducts(ctx context.Context, businessID string) ([]domain.Product, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("businessId", businessID).
		Get(productsPath)
	if err != nil {
		c.log.Error("Catalog request failed for business_id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: business_id=%s: %v", ErrRemoteFailure, businessID, err)
	}

	if !resp.IsSuccess() {
		var apiErr errorResponse
		_ = json.Unmarshal(resp.Body(), &apiErr)
		c.log.Warn("Catalog responded %d for business_id=%s: %s", resp.StatusCode(), businessID, apiErr.Message)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrRemoteFailure, resp.StatusCode(), apiErr.Message)
	}

	// Каталог отвечает массивом позиций
	var products []domain.Product
	if err := json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
