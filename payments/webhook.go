package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSignature marks a webhook delivery whose signature header does
// not check out. Such payloads are never decoded.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Event is a decoded webhook notification for a checkout session.
type Event struct {
	SessionID     string            `json:"session_id"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// signatureTolerance bounds how stale a signed timestamp may be before the
// delivery is rejected as a possible replay.
const signatureTolerance = 5 * time.Minute

// VerifyAndDecode checks the provider signature header ("t=<unix>,v1=<hex>",
// where v1 is HMAC-SHA256 of "<t>.<body>" under the webhook secret) and
// decodes the event. The payload is not trusted until the signature matches.
func (c *Client) VerifyAndDecode(payload []byte, sigHeader string) (*Event, error) {
	if err := c.verifySignature(payload, sigHeader, time.Now()); err != nil {
		return nil, err
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decode webhook event: %w", err)
	}
	if event.SessionID == "" {
		return nil, fmt.Errorf("webhook event has no session id")
	}
	return &event, nil
}

func (c *Client) verifySignature(payload []byte, sigHeader string, now time.Time) error {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return err
	}

	if now.Sub(time.Unix(timestamp, 0)) > signatureTolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(expected, decoded) {
			return nil
		}
	}
	return ErrInvalidSignature
}

func parseSignatureHeader(header string) (int64, []string, error) {
	if header == "" {
		return 0, nil, fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}

	var timestamp int64
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return 0, nil, fmt.Errorf("%w: malformed signature header", ErrInvalidSignature)
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: malformed timestamp", ErrInvalidSignature)
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, value)
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return 0, nil, fmt.Errorf("%w: signature header incomplete", ErrInvalidSignature)
	}
	return timestamp, signatures, nil
}
