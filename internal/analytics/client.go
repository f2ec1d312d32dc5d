package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/metrics"
)

const (
	batchSize     = 20
	flushInterval = 5 * time.Second
	queueCapacity = 1024
	deliverWithin = 5 * time.Second
)

// Client ships events to a PostHog-compatible /batch endpoint from a
// single background worker. Delivery is fire-and-forget: a full queue
// or a failed batch drops events after a debug log, never an error to
// the caller.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewClient creates a client and starts its delivery worker. An empty
// apiKey yields a disabled client that counts and drops every capture,
// which is the local-development default.
func NewClient(apiKey, host string, logger *zap.Logger) *Client {
	c := &Client{
		apiKey:     apiKey,
		endpoint:   host + "/batch/",
		httpClient: &http.Client{Timeout: deliverWithin},
		logger:     logger,
		events:     make(chan Event, queueCapacity),
		done:       make(chan struct{}),
	}
	if c.Enabled() {
		c.wg.Add(1)
		go c.run()
	}
	return c
}

// Enabled reports whether a collector key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Capture enqueues an event. Never blocks; a zero timestamp is stamped
// here so delivery delay does not skew event time.
func (c *Client) Capture(ev Event) {
	if !c.Enabled() {
		metrics.AnalyticsEventsTotal.WithLabelValues("disabled").Inc()
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	select {
	case c.events <- ev:
		metrics.AnalyticsEventsTotal.WithLabelValues("queued").Inc()
		metrics.AnalyticsQueueDepth.Set(float64(len(c.events)))
	default:
		metrics.AnalyticsEventsTotal.WithLabelValues("dropped").Inc()
	}
}

// Close stops the worker after a final flush of whatever is queued.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}

func (c *Client) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]Event, 0, batchSize)
	for {
		select {
		case ev := <-c.events:
			batch = append(batch, ev)
			if len(batch) >= batchSize {
				c.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				c.flush(batch)
				batch = batch[:0]
			}
		case <-c.done:
			// Drain anything still queued, then deliver once.
			for {
				select {
				case ev := <-c.events:
					batch = append(batch, ev)
				default:
					if len(batch) > 0 {
						c.flush(batch)
					}
					return
				}
			}
		}
	}
}

type batchRequest struct {
	APIKey string  `json:"api_key"`
	Batch  []Event `json:"batch"`
}

func (c *Client) flush(batch []Event) {
	metrics.AnalyticsQueueDepth.Set(float64(len(c.events)))

	body, err := json.Marshal(batchRequest{APIKey: c.apiKey, Batch: batch})
	if err != nil {
		c.logger.Debug("analytics batch marshal failed", zap.Error(err))
		metrics.AnalyticsBatchesTotal.WithLabelValues("error").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliverWithin)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		metrics.AnalyticsBatchesTotal.WithLabelValues("error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("analytics delivery failed", zap.Int("events", len(batch)), zap.Error(err))
		metrics.AnalyticsBatchesTotal.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("analytics collector rejected batch",
			zap.Int("status", resp.StatusCode),
			zap.Int("events", len(batch)),
		)
		metrics.AnalyticsBatchesTotal.WithLabelValues("rejected").Inc()
		return
	}

	metrics.AnalyticsEventsTotal.WithLabelValues("delivered").Add(float64(len(batch)))
	metrics.AnalyticsBatchesTotal.WithLabelValues("ok").Inc()
}
