package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// HTTPProfileFetcher gets the current user profile from the profile provider.
type HTTPProfileFetcher struct {
	profileURL string
	token      string
	httpClient *http.Client
}

func NewHTTPProfileFetcher(profileURL, token string, httpClient *http.Client) *HTTPProfileFetcher {
	return &HTTPProfileFetcher{
		profileURL: profileURL,
		token:      token,
		httpClient: httpClient,
	}
}

func (f *HTTPProfileFetcher) FetchProfile(ctx context.Context) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.fetch-profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get profile: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read profile response: %w", err)
	}
	log.Tracef("profile response: %s", respBytes)

	profile := &Profile{}
	if err := json.Unmarshal(respBytes, profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile response: %w", err)
	}
	if profile.ID == 0 {
		return nil, errors.New("profile response without user id")
	}

	return profile, nil
}
