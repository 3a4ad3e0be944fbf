package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// instruction is the JSON shape posted to the bridge for both render and
// toast operations.
type instruction struct {
	Learner   int64      `json:"learner_id"`
	Kind      string     `json:"kind"` // "render" or "toast"
	Text      string     `json:"text"`
	Grid      [][]Button `json:"grid,omitempty"`
	Emphasize bool       `json:"emphasize,omitempty"`
}

// WebhookSurface delivers render instructions to the bridge process that owns
// the actual chat transport.
type WebhookSurface struct {
	url    string
	client *http.Client
	logger *logrus.Logger
}

func NewWebhookSurface(url string, logger *logrus.Logger) *WebhookSurface {
	return &WebhookSurface{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (s *WebhookSurface) Render(ctx context.Context, learner int64, text string, grid [][]Button) error {
	return s.post(ctx, instruction{Learner: learner, Kind: "render", Text: text, Grid: grid})
}

func (s *WebhookSurface) Toast(ctx context.Context, learner int64, text string, emphasize bool) error {
	return s.post(ctx, instruction{Learner: learner, Kind: "toast", Text: text, Emphasize: emphasize})
}

func (s *WebhookSurface) post(ctx context.Context, inst instruction) error {
	body, err := json.Marshal(inst)
	if err != nil {
		return fmt.Errorf("encode %s instruction: %w", inst.Kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", inst.Kind, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver %s instruction: %w", inst.Kind, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("deliver %s instruction: bridge returned %s", inst.Kind, resp.Status)
	}
	return nil
}
