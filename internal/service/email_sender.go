package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPEmailSender posts {address, template, params} to an email gateway that
// owns template rendering and actual SMTP delivery.
type HTTPEmailSender struct {
	url  string
	http *http.Client
}

func NewHTTPEmailSender(url string) *HTTPEmailSender {
	return &HTTPEmailSender{
		url:  url,
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

type emailMessage struct {
	Address  string            `json:"address"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

func (s *HTTPEmailSender) Send(ctx context.Context, address, template string, params map[string]string) error {
	const maxRetries = 3

	body, err := json.Marshal(emailMessage{Address: address, Template: template, Params: params})
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("email gateway returned %s", resp.Status)
			_ = resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
		}
	}

	return lastErr
}
