// Package customerclient клиент сервиса клиентов банка.
package customerclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
)

const RouteCustomer = "/api/customers/%d"

const (
	DefaultTimeout    = 5 * time.Second
	defaultRetryAfter = 60 * time.Second
)

type customerResponse struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	NationalID   string    `json:"nationalId"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// HTTPClient ищет клиентов через HTTP API сервиса клиентов.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FindCustomer возвращает клиента по id. На 404 вернется domain.ErrCustomerNotFound, на 429 TooManyRequestError,
// на любой другой статус отличный от http.StatusOK - StatusCodeError.
//
//nolint:nonamedreturns
func (c *HTTPClient) FindCustomer(ctx context.Context, id int64) (customer *domain.Customer, err error) {
	url := c.baseURL + fmt.Sprintf(RouteCustomer, id)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrCustomerNotFound)
	case http.StatusTooManyRequests:
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	default:
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}

	var dto customerResponse
	if jsonErr := json.Unmarshal(body, &dto); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}

	return &domain.Customer{
		ID:           dto.ID,
		RegisteredAt: dto.RegisteredAt,
		FullName:     dto.FullName,
		NationalID:   dto.NationalID,
		Phone:        dto.Phone,
		Email:        dto.Email,
	}, nil
}

func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 1 || seconds > 120 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
