// Package client is a smoke-test client for the CRUD service.
// It lists users and products and checks that unknown paths answer 404.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/abgdnv/crudapi/internal/service"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "http://localhost:1234"
	defaultTimeout = 10 * time.Second

	invalidEndpoint = "/invalid-endpoint"
)

// Client talks to a running CRUD service.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// Report summarizes one Run. Errors are logged, not returned.
type Report struct {
	Users         []service.UserDto
	Products      []service.ProductDto
	NotFoundCheck bool
}

// New creates a client for baseURL. An empty baseURL means DefaultBaseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: cli, logger: logger.With("component", "client")}
}

// Users fetches every user.
func (c *Client) Users(ctx context.Context) ([]service.UserDto, error) {
	var users []service.UserDto
	if err := c.getList(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Products fetches every product.
func (c *Client) Products(ctx context.Context) ([]service.ProductDto, error) {
	var products []service.ProductDto
	if err := c.getList(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) getList(ctx context.Context, path string, result any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d: %s", path, resp.StatusCode(), resp.String())
	}
	return nil
}

// CheckNotFound requests a path the service does not route and expects 404.
func (c *Client) CheckNotFound(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(invalidEndpoint)
	if err != nil {
		return fmt.Errorf("GET %s: %w", invalidEndpoint, err)
	}
	if resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("GET %s: expected status %d, got %d", invalidEndpoint, http.StatusNotFound, resp.StatusCode())
	}
	return nil
}

// Run performs the requests in order: users, products, then the 404 check.
// A failed step is logged and the next one still runs.
func (c *Client) Run(ctx context.Context) Report {
	var report Report

	users, err := c.Users(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Error fetching users", "error", err)
	} else {
		report.Users = users
		c.logger.InfoContext(ctx, "Fetched users", "count", len(users), "users", users)
	}

	products, err := c.Products(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Error fetching products", "error", err)
	} else {
		report.Products = products
		c.logger.InfoContext(ctx, "Fetched products", "count", len(products), "products", products)
	}

	if err := c.CheckNotFound(ctx); err != nil {
		c.logger.ErrorContext(ctx, "Not found check failed", "error", err)
	} else {
		report.NotFoundCheck = true
		c.logger.InfoContext(ctx, "Not found check passed", "path", invalidEndpoint)
	}

	return report
}
