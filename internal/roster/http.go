package roster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"workstatus-engine/internal/model"
)

const DefaultHTTPTimeout = 2 * time.Second

// HTTPSource fetches the roster from an upstream service at GET <base>/members.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewHTTPSource(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger.With().Str("component", "roster_http").Logger(),
	}
}

func (s *HTTPSource) Members(ctx context.Context) ([]model.Member, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/members", nil)
	if err != nil {
		return nil, fmt.Errorf("building roster request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetching roster: upstream status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding roster response: %w", err)
	}

	s.logger.Debug().Int("members", len(doc.Members)).Msg("roster fetched")
	return sanitize(doc.Members, s.logger), nil
}
