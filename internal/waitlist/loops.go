package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/metrics"
)

// Fixed metadata tagging every contact with its acquisition source.
const (
	contactSource    = "scope_landing_page"
	contactUserGroup = "scope_browser_waitlist"
)

// Provider is the upstream contact-list API. CreateContact returns the
// provider's HTTP status; transport failures return an error.
type Provider interface {
	CreateContact(ctx context.Context, email string) (int, error)
}

// LoopsClient registers contacts with the Loops contacts/create API.
type LoopsClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewLoopsClient(apiKey, url string, timeout time.Duration, logger *zap.Logger) *LoopsClient {
	return &LoopsClient{
		apiKey:     apiKey,
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type createContactRequest struct {
	Email      string `json:"email"`
	Source     string `json:"source"`
	Subscribed bool   `json:"subscribed"`
	UserGroup  string `json:"userGroup"`
}

func (c *LoopsClient) CreateContact(ctx context.Context, email string) (int, error) {
	body, err := json.Marshal(createContactRequest{
		Email:      email,
		Source:     contactSource,
		Subscribed: true,
		UserGroup:  contactUserGroup,
	})
	if err != nil {
		return 0, fmt.Errorf("marshal contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ProviderLatency.WithLabelValues("loops").
		Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return 0, fmt.Errorf("contact request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		c.logger.Warn("provider rejected contact", zap.Int("status", resp.StatusCode))
	}
	return resp.StatusCode, nil
}
