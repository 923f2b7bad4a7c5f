package fetch

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/evu/sat-stac/internal/sigv4"
)

// Fetcher downloads files over HTTP, signing requests against the storage
// service when credentials are configured.
type Fetcher struct {
	log       zerolog.Logger
	signer    sigv4.Signer
	forwarder Forwarder
	retry     func() retryStrategy
	threads   int
}

// New returns an initialized Fetcher based on the settings.
func New(s *Settings) (*Fetcher, error) {
	return &Fetcher{
		log:       s.Log,
		signer:    sigv4.New(s.Region, s.Credentials),
		forwarder: s.Forwarder,
		retry:     s.Retry,
		threads:   s.Threads,
	}, nil
}

// open performs the GET for a URL. Storage URLs are signed first; a rejected
// signed attempt falls back to a single unauthenticated try, matching the
// behaviour expected of public requester-pays buckets.
func (f *Fetcher) open(ctx context.Context, rawURL string) (*http.Response, error) {
	if strings.Contains(rawURL, sigv4.DomainSuffix) {
		signed, err := f.signer.Sign(rawURL)
		if err != nil {
			return nil, err
		}

		if signed.Signed {
			res, err := f.attempt(ctx, signed.URL, signed.Headers)
			if err == nil {
				return res, nil
			}
			f.log.Warn().Err(err).Msgf("signed request rejected for %s", rawURL)
		}
	}
	return f.attempt(ctx, rawURL, nil)
}

func (f *Fetcher) attempt(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	retries := f.retry()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return nil, err
		}

		for k, v := range headers {
			req.Header.Add(k, v)
		}

		res, err := f.forwarder(req)
		if err == nil {
			return res, nil
		}

		if delay := retries.retry(err); delay > 0 {
			f.log.Warn().Err(err).Msg("retrying request")
			time.Sleep(delay)
		} else {
			return nil, err
		}
	}
}
