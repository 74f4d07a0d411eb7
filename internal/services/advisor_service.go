package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kwadjo-mensah/shopledger-backend/internal/config"
	"gorm.io/gorm"
)

var ErrAdvisorUnavailable = errors.New("advisor is not configured")

// AdvisorService turns a tenant revenue snapshot plus a free-form
// question into business advice via an OpenAI-compatible completion
// endpoint. The completion service is opaque to us: text in, text out.
type AdvisorService struct {
	db           *gorm.DB
	salesService *SalesService
	cfg          *config.Config
	httpClient   *http.Client
}

func NewAdvisorService(db *gorm.DB, salesService *SalesService, cfg *config.Config) *AdvisorService {
	return &AdvisorService{
		db:           db,
		salesService: salesService,
		cfg:          cfg,
		httpClient:   &http.Client{Timeout: cfg.AITimeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask answers a business question grounded on the tenant's revenue. The
// outbound call is bounded by the configured timeout via ctx so a hung
// provider surfaces as a retryable failure instead of blocking.
func (s *AdvisorService) Ask(ctx context.Context, businessID uint, question string) (string, error) {
	if s.cfg.OpenAIAPIKey == "" {
		return "", ErrAdvisorUnavailable
	}

	revenue, err := s.salesService.RevenueTotal(businessID)
	if err != nil {
		return "", fmt.Errorf("load revenue: %w", err)
	}

	prompt := fmt.Sprintf(
		"Business revenue: %s\nUser question: %s\nGive smart business advice.",
		revenue.StringFixed(2), question,
	)

	body, err := json.Marshal(chatRequest{
		Model:    s.cfg.OpenAIModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.AITimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.OpenAIAPIURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIAPIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("decode advisor response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("advisor returned no choices")
	}

	return chat.Choices[0].Message.Content, nil
}
