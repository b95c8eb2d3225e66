// Package notify sends the transactional "we received your submission"
// email via an HTTP POST to the internal email-sending endpoint.
//
// Delivery is strictly best effort: the submission is already persisted
// before Send is attempted, a failure is logged and never retried, and
// nothing rolls back. Data durability wins over notification
// durability.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Submission is the payload for a submission-received notification.
type Submission struct {
	Email            string // recipient
	Name             string
	ProjectName      string
	Title            string
	ContributionType string
}

// wire shapes for the email endpoint.
type payload struct {
	Type  string      `json:"type"`
	Email string      `json:"email"`
	Data  payloadData `json:"data"`
}

type payloadData struct {
	Name             string `json:"name"`
	ProjectName      string `json:"projectName"`
	Title            string `json:"title"`
	ContributionType string `json:"contributionType"`
}

// Client posts notifications to the configured endpoint. A Client with
// an empty endpoint is valid and silently drops everything, so callers
// never need to nil-check.
type Client struct {
	endpoint string
	hc       *http.Client
	log      *zap.Logger
}

// NewClient builds a Client. endpoint may be empty to disable
// notifications entirely.
func NewClient(endpoint string, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{},
		log:      logger,
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

// Send posts one submission notification and returns the transport or
// status error, if any. Callers that must not block use SendAsync.
func (c *Client) Send(ctx context.Context, sub Submission) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload{
		Type:  "submission",
		Email: sub.Email,
		Data: payloadData{
			Name:             sub.Name,
			ProjectName:      sub.ProjectName,
			Title:            sub.Title,
			ContributionType: sub.ContributionType,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email endpoint returned %s", resp.Status)
	}
	return nil
}

// SendAsync fires the notification on its own goroutine with its own
// timeout, detached from the request that triggered it. Failures are
// logged with a notification id and otherwise swallowed.
func (c *Client) SendAsync(sub Submission) {
	if !c.Enabled() {
		return
	}

	id := uuid.NewString()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
		defer cancel()

		if err := c.Send(ctx, sub); err != nil {
			c.log.Warn("submission notification failed",
				zap.String("notification_id", id),
				zap.String("email", sub.Email),
				zap.String("title", sub.Title),
				zap.Error(err))
			return
		}
		c.log.Debug("submission notification sent",
			zap.String("notification_id", id),
			zap.String("email", sub.Email))
	}()
}
