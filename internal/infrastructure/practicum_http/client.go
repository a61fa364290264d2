package practicum_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/davarch/homework-watcher/internal/domain"
)

const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

type Client struct {
	endpoint string
	token    string
	hc       *http.Client
}

func New(endpoint string, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	tr := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		endpoint: endpoint,
		token:    token,
		hc:       &http.Client{Transport: tr, Timeout: timeout},
	}
}

// Statuses issues exactly one GET per call. Every failure mode —
// transport error, non-200 status, undecodable body — comes back as
// *domain.FetchError. The token travels in a header only and is kept
// out of the error and anything logged from it.
func (c *Client) Statuses(ctx context.Context, fromDate int64) (domain.RawResponse, error) {
	reqURL := c.endpoint + "?from_date=" + strconv.FormatInt(fromDate, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, c.fail(fromDate, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, c.fail(fromDate, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.fail(fromDate, fmt.Errorf("%s (status code %d)", statusText(resp.StatusCode), resp.StatusCode))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, c.fail(fromDate, fmt.Errorf("decode body: %w", err))
	}

	return raw, nil
}

func (c *Client) fail(fromDate int64, err error) error {
	return &domain.FetchError{Endpoint: c.endpoint, FromDate: fromDate, Err: err}
}

func statusText(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return "not authenticated"
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "not found"
	default:
		return "request error"
	}
}
