package nobel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/lepinkainen/nobelfetch/internal/errors"
	"github.com/lepinkainen/nobelfetch/internal/ratelimit"
	"github.com/spf13/viper"
)

const defaultBaseURL = "https://api.nobelprize.org/2.1/laureates"

// Global HTTP client and rate limiter for reuse
var (
	httpClient      *http.Client
	clientOnce      sync.Once
	apiRateLimiter  *ratelimit.Limiter
	rateLimiterOnce sync.Once
	httpClientNew   = func() *http.Client {
		timeout := viper.GetDuration("api.timeout")
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		return &http.Client{
			Timeout: timeout,
		}
	}
)

// getHTTPClient returns a singleton HTTP client
func getHTTPClient() *http.Client {
	clientOnce.Do(func() {
		httpClient = httpClientNew()
	})
	return httpClient
}

// getAPIRateLimiter returns a singleton rate limiter for the Nobel Prize API (2 req/sec)
func getAPIRateLimiter() *ratelimit.Limiter {
	rateLimiterOnce.Do(func() {
		apiRateLimiter = ratelimit.New("NobelAPI", 2)
	})
	return apiRateLimiter
}

func apiBaseURL() string {
	if u := viper.GetString("api.base_url"); u != "" {
		return u
	}
	return defaultBaseURL
}

// fetchLaureatesPage retrieves one page of laureate data from the API
func fetchLaureatesPage(ctx context.Context, yearFrom, yearTo, offset, limit int) ([]RawLaureate, error) {
	client := getHTTPClient()
	limiter := getAPIRateLimiter()

	// Wait for rate limiter
	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{}
	params.Add("nobelPrizeYear", strconv.Itoa(yearFrom))
	params.Add("yearTo", strconv.Itoa(yearTo))
	params.Add("offset", strconv.Itoa(offset))
	params.Add("limit", strconv.Itoa(limit))

	fullURL := apiBaseURL() + "?" + params.Encode()
	slog.Debug("GET API request", "url", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewFetchError(0, fmt.Sprintf("Nobel API request failed: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.NewFetchError(resp.StatusCode, string(body))
	}

	var result LaureatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewParseError("failed to decode Nobel API response", err)
	}

	return result.Laureates, nil
}

// FetchLaureates pages through the laureate listing endpoint for the given
// award-year range and returns the raw entries in API order. Pagination
// stops on the first empty page or when the configured page cap is hit.
func FetchLaureates(ctx context.Context, yearFrom, yearTo int) ([]RawLaureate, error) {
	pageSize := viper.GetInt("api.page_size")
	if pageSize <= 0 {
		pageSize = 50
	}
	maxPages := viper.GetInt("api.max_pages")
	if maxPages <= 0 {
		maxPages = 25
	}

	slog.Info("Fetching Nobel laureates", "yearFrom", yearFrom, "yearTo", yearTo)

	var fetched []RawLaureate
	for page := 0; page < maxPages; page++ {
		offset := page * pageSize
		slog.Debug("Fetching laureate page", "page", page+1, "offset", offset)

		laureates, err := fetchLaureatesPage(ctx, yearFrom, yearTo, offset, pageSize)
		if err != nil {
			return nil, err
		}
		if len(laureates) == 0 {
			slog.Debug("All data for the configured parameters has been fetched")
			break
		}

		fetched = append(fetched, laureates...)

		// A short page is the last one, no need for another round trip
		if len(laureates) < pageSize {
			break
		}
	}

	slog.Info("Fetched laureates", "count", len(fetched))
	return fetched, nil
}
