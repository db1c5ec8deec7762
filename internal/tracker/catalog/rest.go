package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/model"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	exercisesPath = "/exercises"
	workoutsPath  = "/workouts"
	friendsPath   = "/users/friends"

	megabyte        = 1024 * 1024
	defaultCacheTTL = 5 * 60 // seconds
)

var _ Source = (*RestSource)(nil)

// RestSource reads the catalog from the backend REST API. Raw responses are kept in
// a freecache for cacheTTL seconds, so re-seeding does not hammer the backend.
type RestSource struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
	cacheTTL   int
}

func NewRestSource(baseURL string, httpClient *http.Client, cacheSizeMB, cacheTTLSec int) *RestSource {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 10
	}
	if cacheTTLSec <= 0 {
		cacheTTLSec = defaultCacheTTL
	}
	return &RestSource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSizeMB * megabyte),
		cacheTTL:   cacheTTLSec,
	}
}

func (s *RestSource) Exercises(ctx context.Context) ([]model.Exercise, error) {
	var exercises []model.Exercise
	if err := s.get(ctx, exercisesPath, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *RestSource) Workouts(ctx context.Context) ([]model.Workout, error) {
	var workouts []model.Workout
	if err := s.get(ctx, workoutsPath, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *RestSource) Friends(ctx context.Context) ([]model.Friend, error) {
	var friends []model.Friend
	if err := s.get(ctx, friendsPath, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (s *RestSource) get(ctx context.Context, path string, dst any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.rest.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("catalog.path", path))

	cacheKey := []byte("catalog::" + path)
	if cached, cacheErr := s.cache.Get(cacheKey); cacheErr == nil {
		span.SetAttributes(attribute.Bool("catalog.from-cache", true))
		unmarshalErr := json.Unmarshal(cached, dst)
		if unmarshalErr == nil {
			return nil
		}
		log.Errorf("unmarshal cached catalog response for [%s]: %s", path, unmarshalErr)
		s.cache.Del(cacheKey)
	}
	span.SetAttributes(attribute.Bool("catalog.from-cache", false))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("new request [%s]: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get [%s]: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get [%s]: %w: %d", path, ErrUnexpectedStatus, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response [%s]: %w", path, err)
	}

	if err := json.Unmarshal(respBytes, dst); err != nil {
		return fmt.Errorf("unmarshal response [%s]: %w", path, err)
	}

	if err := s.cache.Set(cacheKey, respBytes, s.cacheTTL); err != nil {
		log.Warnf("cache catalog response for [%s]: %s", path, err)
	}

	return nil
}
