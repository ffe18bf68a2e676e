package exercises

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dstevanovic/fitrack/internal/telemetry/metrics"
	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const catalogCacheKey = "exercises::catalog"

// Client talks to the remote exercises API. The catalog barely ever
// changes, so responses are cached for cacheExpireSeconds and served
// from memory until they expire.
type Client struct {
	cache              *freecache.Cache
	exercisesApiUrl    string
	cacheExpireSeconds int
	httpClient         *http.Client
	metrics            *metrics.Manager
}

func NewClient(
	exercisesApiUrl string,
	cacheExpireSeconds int,
	httpClient *http.Client,
	metricsManager *metrics.Manager,
) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Client{
		cache:              freecache.NewCache(cacheSize),
		exercisesApiUrl:    exercisesApiUrl,
		cacheExpireSeconds: cacheExpireSeconds,
		httpClient:         httpClient,
		metrics:            metricsManager,
	}
}

func (c *Client) List(ctx context.Context) (catalog []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisesApi.list")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("got %d exercises", len(catalog)))
		}
	}()

	if catalogBytes, err := c.cache.Get([]byte(catalogCacheKey)); err == nil {
		log.Tracef("found exercises catalog in cache")
		if err = json.Unmarshal(catalogBytes, &catalog); err == nil {
			c.metrics.CounterCatalogCacheHits.Inc()
			return catalog, nil
		} else {
			log.Errorf("failed to unmarshal exercises catalog from cache: %s", err)
		}
	} else {
		log.Debugf("exercises catalog not in cache: %s; will get the data from the exercises api", err)
	}

	c.metrics.CounterCatalogFetches.Inc()

	catalogUrl := fmt.Sprintf("%s/exercises", c.exercisesApiUrl)
	log.Debugf("calling exercises api: %s", catalogUrl)

	req, err := http.NewRequestWithContext(ctx, "GET", catalogUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{StatusCode: resp.StatusCode}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercises api response bytes: %w", err)
	}

	if err := json.Unmarshal(respBytes, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exercises api response bytes: %w", err)
	}

	if err = c.cache.Set([]byte(catalogCacheKey), respBytes, c.cacheExpireSeconds); err != nil {
		log.Errorf("failed to write exercises catalog cache: %s", err)
	} else {
		log.Debugf("exercises catalog cache set, %d exercises", len(catalog))
	}

	return catalog, nil
}
