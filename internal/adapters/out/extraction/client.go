// Package extraction calls the external AI workflow engine that reads
// uploaded documents. The engine answers later on the callback URL.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"doctrack/internal/core/ports"

	"go.uber.org/zap"
)

// SecretHeader carries the shared secret in both directions.
const SecretHeader = "X-Extraction-Secret"

const defaultTimeout = 15 * time.Second

type Config struct {
	WebhookURL string
	Secret     string
	Timeout    time.Duration
}

// WebhookClient implements ports.ExtractionClient.
type WebhookClient struct {
	url    string
	secret string
	http   *http.Client
	logger *zap.Logger
}

func NewWebhookClient(cfg Config, logger *zap.Logger) (*WebhookClient, error) {
	if cfg.WebhookURL == "" {
		return nil, errors.New("extraction webhook url is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &WebhookClient{
		url:    cfg.WebhookURL,
		secret: cfg.Secret,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

type requestBody struct {
	DocumentID   string `json:"document_id"`
	Reference    string `json:"reference"`
	DocumentType string `json:"document_type,omitempty"`
	Filename     string `json:"filename"`
	FileURL      string `json:"file_url"`
	CallbackURL  string `json:"callback_url"`
}

// RequestExtraction posts the job. Any non-2xx answer is an error; the body
// is not read beyond a short excerpt for the message.
func (c *WebhookClient) RequestExtraction(ctx context.Context, req ports.ExtractionRequest) error {
	payload, err := json.Marshal(requestBody{
		DocumentID:   req.DocumentID,
		Reference:    req.Reference,
		DocumentType: req.DocumentType,
		Filename:     req.Filename,
		FileURL:      req.FileURL,
		CallbackURL:  req.CallbackURL,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		httpReq.Header.Set(SecretHeader, c.secret)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call extraction webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("extraction webhook answered %d: %s", resp.StatusCode, bytes.TrimSpace(excerpt))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Info("extraction requested",
		zap.String("document_id", req.DocumentID),
		zap.String("reference", req.Reference))
	return nil
}
