package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/evu/sat-stac/internal/fetch"
	"github.com/evu/sat-stac/internal/sigv4"
)

var output string
var region string
var configuration string
var threads int
var debug bool

func init() {
	flag.StringVar(&output, "output", ".", "The directory downloads are written to")
	flag.StringVar(&region, "region", "", "The region used in the signing scope")
	flag.StringVar(&configuration, "configuration", "", "Specify an optional configuration file")
	flag.IntVar(&threads, "threads", fetch.Threads, "The number of concurrent downloads")
	flag.BoolVar(&debug, "debug", false, "Sets log level to debug")
}

func main() {
	flag.Parse()
	logger()

	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := newContext()

	urls := flag.Args()
	if len(urls) == 0 {
		return fmt.Errorf("no urls specified")
	}

	overrides := []fetch.SetOption{
		fetch.WithCredentials(sigv4.FromEnvironment()),
		fetch.WithRegion(region),
		fetch.WithThreads(threads),
		fetch.WithLogger(log.Logger),
	}

	if configuration != "" {
		overrides = append(overrides, fetch.FromFile(configuration))
	}

	settings, err := fetch.NewSettings(overrides...)
	if err != nil {
		return err
	}

	f, err := fetch.New(settings)
	if err != nil {
		return err
	}

	files, err := f.DownloadAll(ctx, urls, output)
	if err != nil {
		return err
	}

	log.Info().Msgf("downloaded %d files to %s", len(files), output)
	return nil
}

func logger() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals
		cancel()
	}()
	return ctx
}
