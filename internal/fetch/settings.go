package fetch

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evu/sat-stac/internal/sigv4"
)

// Threads is the default number of concurrent downloads.
const Threads = 4

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SetOption allows overriding of settings.
type SetOption func(*Settings) error

// Settings provide a set of options used to instantiate a Fetcher.
type Settings struct {
	Log         zerolog.Logger
	Region      string
	Threads     int
	Credentials sigv4.Credentials
	Forwarder   Forwarder
	Retry       func() retryStrategy
}

// NewSettings creates default settings and then applies any given overrides.
func NewSettings(overrides ...SetOption) (s *Settings, err error) {
	s = &Settings{
		Log: log.Logger,
	}

	for _, override := range overrides {
		if err := override(s); err != nil {
			return nil, err
		}
	}

	s.applyDefaults()

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	if len(s.Region) == 0 {
		s.Region = sigv4.DefaultRegion
	}

	if s.Threads == 0 {
		s.Threads = Threads
	}

	if s.Forwarder == nil {
		s.Forwarder = NewForwarder(s.Threads)
	}

	if s.Retry == nil {
		s.Retry = func() retryStrategy {
			return &fixedRetry{
				count:     3,
				delay:     time.Second,
				retryable: []int{408, 429, 500, 502, 503, 504},
				fatal:     []error{context.Canceled},
			}
		}
	}
}

func (s *Settings) validate() error {
	if s.Threads < 1 {
		return fmt.Errorf("at least one thread is required")
	}
	return nil
}

// Load overlays values from a JSON encoded configuration file.
func (s *Settings) Load(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("unable to load settings from %s (%w)", file, err)
	}

	defer f.Close()

	raw, err := ioutil.ReadAll(f)
	if err != nil {
		return fmt.Errorf("unable to read settings from %s (%w)", file, err)
	}

	loaded := struct {
		Region  string
		Threads int
		Account string
		Secret  string
	}{}

	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("unable to unmarshal settings from %s (%w)", file, err)
	}

	if len(loaded.Region) > 0 {
		s.Region = loaded.Region
	}
	if loaded.Threads > 0 {
		s.Threads = loaded.Threads
	}
	if len(loaded.Account) > 0 {
		s.Credentials.Account = loaded.Account
	}
	if len(loaded.Secret) > 0 {
		s.Credentials.Secret = loaded.Secret
	}
	return nil
}

// FromFile loads settings from a JSON encoded configuration file.
func FromFile(file string) SetOption {
	return func(s *Settings) error {
		return s.Load(file)
	}
}

// WithCredentials sets the credentials used for signing.
func WithCredentials(credentials sigv4.Credentials) SetOption {
	return func(s *Settings) error {
		s.Credentials = credentials
		return nil
	}
}

// WithRegion sets the region used in the signing scope.
func WithRegion(region string) SetOption {
	return func(s *Settings) error {
		s.Region = region
		return nil
	}
}

// WithThreads sets the number of concurrent downloads.
func WithThreads(threads int) SetOption {
	return func(s *Settings) error {
		s.Threads = threads
		return nil
	}
}

// WithForwarder sets the forwarder used to perform requests.
func WithForwarder(forwarder Forwarder) SetOption {
	return func(s *Settings) error {
		s.Forwarder = forwarder
		return nil
	}
}

// WithLogger sets the logger used.
func WithLogger(log zerolog.Logger) SetOption {
	return func(s *Settings) error {
		s.Log = log
		return nil
	}
}
