package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sender delivers one message to the push provider.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// HTTPSender posts FCM-style payloads to a configured endpoint.
type HTTPSender struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

func NewHTTPSender(endpoint, serverKey string) *HTTPSender {
	return &HTTPSender{
		endpoint:  endpoint,
		serverKey: serverKey,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type pushPayload struct {
	To           string `json:"to"`
	Notification struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	} `json:"notification"`
}

func (s *HTTPSender) Send(ctx context.Context, msg *Message) error {
	var p pushPayload
	p.To = msg.Token
	p.Notification.Title = msg.Title
	p.Notification.Body = msg.Body

	buf, err := json.Marshal(p)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.serverKey != "" {
		req.Header.Set("Authorization", "key="+s.serverKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("push endpoint returned %d", resp.StatusCode)
	}
	return nil
}
