package printful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"atelier-catalog/pkg/apierrors"
)

const defaultBaseURL = "https://api.printful.com"

// Client is a thin wrapper over the Printful REST API. A missing key turns
// every call into an explicit not-configured error.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type apiResponse struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if !c.Configured() {
		return fmt.Errorf("printful: %w", apierrors.ErrNotConfigured)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode printful request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("printful request: %w", err)
	}
	defer resp.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil && resp.StatusCode < 300 {
		return fmt.Errorf("decode printful response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Error.Message != "" {
			return fmt.Errorf("printful api error: %s", parsed.Error.Message)
		}
		return fmt.Errorf("printful api error: status %d", resp.StatusCode)
	}
	if out != nil && parsed.Result != nil {
		if err := json.Unmarshal(parsed.Result, out); err != nil {
			return fmt.Errorf("decode printful result: %w", err)
		}
	}
	return nil
}

type StoreInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (c *Client) GetStoreInfo(ctx context.Context) (*StoreInfo, error) {
	var info StoreInfo
	if err := c.do(ctx, http.MethodGet, "/store", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

type syncVariantFile struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type syncVariant struct {
	VariantID   int               `json:"variant_id"`
	RetailPrice string            `json:"retail_price"`
	Files       []syncVariantFile `json:"files"`
}

type syncProductRequest struct {
	SyncProduct struct {
		Name      string `json:"name"`
		Thumbnail string `json:"thumbnail"`
	} `json:"sync_product"`
	SyncVariants []syncVariant `json:"sync_variants"`
}

type SyncProduct struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateSyncProduct registers one artwork as a store product of the given
// type, with the image as the single print file.
func (c *Client) CreateSyncProduct(ctx context.Context, title, imageURL string, retailPrice float64, productType string) (*SyncProduct, error) {
	product, ok := Products[productType]
	if !ok {
		return nil, apierrors.Validation("unknown product type %q", productType)
	}

	var req syncProductRequest
	req.SyncProduct.Name = title
	req.SyncProduct.Thumbnail = imageURL
	req.SyncVariants = []syncVariant{{
		VariantID:   product.Variant,
		RetailPrice: strconv.FormatFloat(retailPrice, 'f', 2, 64),
		Files:       []syncVariantFile{{Type: "default", URL: imageURL}},
	}}

	var created SyncProduct
	if err := c.do(ctx, http.MethodPost, "/store/products", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListSyncProducts(ctx context.Context) ([]SyncProduct, error) {
	var products []SyncProduct
	if err := c.do(ctx, http.MethodGet, "/store/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) DeleteSyncProduct(ctx context.Context, productID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/store/products/%d", productID), nil, nil)
}

type mockupFilePosition struct {
	AreaWidth  int `json:"area_width"`
	AreaHeight int `json:"area_height"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	Top        int `json:"top"`
	Left       int `json:"left"`
}

type mockupFile struct {
	Placement string             `json:"placement"`
	ImageURL  string             `json:"image_url"`
	Position  mockupFilePosition `json:"position"`
}

type mockupTaskRequest struct {
	VariantIDs []int        `json:"variant_ids"`
	Files      []mockupFile `json:"files"`
}

type MockupTask struct {
	TaskKey string `json:"task_key"`
	Status  string `json:"status"`
}

// CreateMockupTask starts mockup generation for one product type.
func (c *Client) CreateMockupTask(ctx context.Context, imageURL, productType string) (*MockupTask, error) {
	product, ok := Products[productType]
	if !ok {
		return nil, apierrors.Validation("unknown product type %q", productType)
	}

	req := mockupTaskRequest{
		VariantIDs: []int{product.Variant},
		Files: []mockupFile{{
			Placement: "default",
			ImageURL:  imageURL,
			Position:  mockupFilePosition{AreaWidth: 1800, AreaHeight: 2400, Width: 1800, Height: 2400},
		}},
	}

	var task MockupTask
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/mockup-generator/create-task/%d", product.ID), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) GetMockupTask(ctx context.Context, taskKey string) (*MockupTask, error) {
	var task MockupTask
	path := "/mockup-generator/task?task_key=" + url.QueryEscape(taskKey)
	if err := c.do(ctx, http.MethodGet, path, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}
