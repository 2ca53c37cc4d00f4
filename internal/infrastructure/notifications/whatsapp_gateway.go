package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"notaria_backoffice/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrMissingWhatsAppCredentials = errors.New("missing WHATSAPP_ACCESS_TOKEN or WHATSAPP_PHONE_NUMBER_ID")

const defaultGraphAPIBaseURL = "https://graph.facebook.com/v19.0"

// WhatsAppGateway delivers receipt messages through the WhatsApp Cloud API.
//
// Mock mode (NOTIFICATIONS_MOCK/WHATSAPP_MOCK) logs the message and reports
// success, which keeps local development working without credentials.
type WhatsAppGateway struct {
	httpClient    *http.Client
	accessToken   string
	phoneNumberID string
	baseURL       string
	mockMode      bool
}

var _ interfaces.IReceiptNotifier = (*WhatsAppGateway)(nil)

func NewWhatsAppGateway(accessToken, phoneNumberID string) (*WhatsAppGateway, error) {
	if isNotificationsMockEnabled() {
		log.Info("[receipt][gateway] mock mode enabled")
		return &WhatsAppGateway{mockMode: true}, nil
	}

	if accessToken == "" || phoneNumberID == "" {
		log.Warn("[receipt][gateway] missing WhatsApp credentials")
		return nil, ErrMissingWhatsAppCredentials
	}

	return &WhatsAppGateway{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		baseURL:       getenvDefault("WHATSAPP_API_BASE_URL", defaultGraphAPIBaseURL),
	}, nil
}

type textPayload struct {
	Body string `json:"body"`
}

type messagePayload struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

func (g *WhatsAppGateway) DeliverReceipt(ctx context.Context, phoneNumber, message string) error {
	if g != nil && g.mockMode {
		log.WithFields(log.Fields{"to": phoneNumber, "message_len": len(message)}).
			Info("[receipt][gateway] mock delivery success")
		return nil
	}
	if g == nil || g.httpClient == nil {
		return errors.New("whatsapp gateway not configured")
	}

	body, err := json.Marshal(messagePayload{
		MessagingProduct: "whatsapp",
		To:               normalizePhone(phoneNumber),
		Type:             "text",
		Text:             textPayload{Body: message},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", g.baseURL, g.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("[receipt][gateway] delivery request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.WithFields(log.Fields{"status": resp.StatusCode, "body": string(respBody)}).
			Warn("[receipt][gateway] delivery rejected")
		return fmt.Errorf("whatsapp api returned status %d", resp.StatusCode)
	}

	log.WithField("to", phoneNumber).Info("[receipt][gateway] delivery success")
	return nil
}

// normalizePhone strips the formatting users type into the participant form
// ("55 2345 9988") down to digits, which is what the Cloud API expects.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isNotificationsMockEnabled() bool {
	for _, key := range []string{"NOTIFICATIONS_MOCK", "WHATSAPP_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
