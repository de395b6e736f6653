package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/service/orderevents"
	retrierconfig "github.com/Skllit/GreenSource-v2/pkg/retrier"
	"github.com/Skllit/GreenSource-v2/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "order-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// statusError не-2xx ответ order-service, сохраняем код для ретраев и метрик.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("order-service responded %d", e.code)
}

type OrderGateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &OrderGateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (o *OrderGateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp orderResponse

	err := o.executeWithMetrics(ctx, "GetOrderById", func(ctx context.Context) error {
		url := fmt.Sprintf("%s/api/orders/%s", o.baseURL, orderID)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		return o.doJSON(req, &resp)
	})
	if err != nil {
		var stErr *statusError
		if errors.As(err, &stErr) && stErr.code == http.StatusNotFound {
			return nil, fmt.Errorf("get order %s: %w", orderID, orderevents.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, err)
	}

	return toDomain(&resp), nil
}

func (o *OrderGateway) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	body, err := json.Marshal(updateStatusRequest{Status: status.String()})
	if err != nil {
		return fmt.Errorf("gateway order, marshal status: %w", err)
	}

	err = o.executeWithMetrics(ctx, "UpdateOrderStatus", func(ctx context.Context) error {
		url := fmt.Sprintf("%s/api/orders/%s/status", o.baseURL, orderID)
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		return o.doJSON(req, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway order, update order %s status: %w", orderID, err)
	}

	return nil
}

func (o *OrderGateway) doJSON(req *http.Request, out interface{}) error {
	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var stErr *statusError
	if errors.As(err, &stErr) {
		switch stErr.code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	// сетевые ошибки транспорта
	return true
}

func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	var stErr *statusError
	if errors.As(err, &stErr) {
		return strconv.Itoa(stErr.code)
	}
	return "transport_error"
}
