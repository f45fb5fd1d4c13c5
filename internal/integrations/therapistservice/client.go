package therapistservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Client клиент справочника терапевтов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника терапевтов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTherapist получает терапевта по ID
func (c *Client) GetTherapist(ctx context.Context, therapistID int64) (*Therapist, error) {
	url := fmt.Sprintf("%s/internal/therapists/%d", c.baseURL, therapistID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrTherapistNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var therapist Therapist
	if err := json.NewDecoder(resp.Body).Decode(&therapist); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &therapist, nil
}

// GetTherapistWithGracefulDegradation получает терапевта с graceful degradation.
// ErrTherapistNotFound пробрасывается как есть, любая другая ошибка превращается в ErrServiceDegraded.
func (c *Client) GetTherapistWithGracefulDegradation(ctx context.Context, therapistID int64) (*Therapist, error) {
	therapist, err := c.GetTherapist(ctx, therapistID)
	if err != nil {
		if errors.Is(err, ErrTherapistNotFound) {
			c.log.Info("Therapist not found in directory: therapist_id=%d", therapistID)
			return nil, err
		}

		c.log.Error("TherapistService unavailable, applying graceful degradation for therapist_id=%d: %v", therapistID, err)
		return nil, fmt.Errorf("%w: therapist_id=%d, error=%v", ErrServiceDegraded, therapistID, err)
	}

	return therapist, nil
}
