package formrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"blogboard/cmd/api/httpclient"
	"blogboard/config"
)

// Client is a thin client for the external form relay service that turns
// contact form submissions into emails. The relay authenticates with an
// access key carried in the request body, not a header.
type Client struct {
	base      *httpclient.BaseClient
	accessKey string
}

// ErrRelayRejected is returned when the relay answers success=false.
var ErrRelayRejected = fmt.Errorf("form relay rejected the submission")

func New() *Client {
	endpoint := config.GetConfig().FormRelay.Endpoint
	if endpoint == "" {
		endpoint = "https://api.web3forms.com/submit"
	}
	return &Client{
		base:      httpclient.NewBaseClient(endpoint),
		accessKey: os.Getenv("FORM_RELAY_ACCESS_KEY"),
	}
}

type relayPayload struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send relays one contact message. The relay's JSON success flag decides
// the outcome, not just the HTTP status.
func (c *Client) Send(ctx context.Context, name, email, message string) error {
	if c.accessKey == "" {
		return fmt.Errorf("FORM_RELAY_ACCESS_KEY environment variable is not set")
	}

	body, err := json.Marshal(relayPayload{
		AccessKey: c.accessKey,
		Name:      name,
		Email:     email,
		Message:   message,
	})
	if err != nil {
		return err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "", nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var parsed relayResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return fmt.Errorf("form relay: status=%d body=%s", resp.StatusCode, string(respBody))
	}
	if !parsed.Success {
		return fmt.Errorf("%w: %s", ErrRelayRejected, parsed.Message)
	}
	return nil
}
