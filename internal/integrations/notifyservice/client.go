package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с NotificationService.
// Для букинг-флоу уведомления fire-and-forget: ошибки доставки
// логируются вызывающей стороной и никогда не роняют бронирование.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotificationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// BookingConfirmed отправляет уведомление о подтвержденном бронировании
func (c *Client) BookingConfirmed(ctx context.Context, event BookingEvent) error {
	return c.post(ctx, "/internal/notifications/booking-confirmed", event)
}

// BookingCancelled отправляет уведомление об отмене бронирования
func (c *Client) BookingCancelled(ctx context.Context, event BookingEvent) error {
	return c.post(ctx, "/internal/notifications/booking-cancelled", event)
}

// BookingRescheduled отправляет уведомление о переносе бронирования
func (c *Client) BookingRescheduled(ctx context.Context, event BookingEvent) error {
	return c.post(ctx, "/internal/notifications/booking-rescheduled", event)
}

func (c *Client) post(ctx context.Context, path string, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
