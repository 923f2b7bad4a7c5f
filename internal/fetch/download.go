package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

// Download fetches a URL into filename, creating directories as needed. An
// empty filename defaults to the base name of the URL. The written path is
// returned.
func (f *Fetcher) Download(ctx context.Context, rawURL, filename string) (string, error) {
	if len(filename) == 0 {
		filename = path.Base(rawURL)
	}

	f.log.Info().Msgf("downloading %s as %s", rawURL, filename)

	res, err := f.open(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("unable to download %s (%w)", rawURL, err)
	}

	defer res.Body.Close()

	if err := Mkdirp(filepath.Dir(filename)); err != nil {
		return "", err
	}

	out, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("unable to create %s (%w)", filename, err)
	}

	n, err := io.Copy(out, res.Body)
	if err != nil {
		out.Close()
		return "", fmt.Errorf("unable to write %s (%w)", filename, err)
	}

	if err := out.Close(); err != nil {
		return "", err
	}

	f.log.Debug().Msgf("downloaded %s (%s bytes)", filename, numbers.Sprintf("%d", n))
	return filename, nil
}

// DownloadAll fetches every URL into dir using the configured number of
// threads. Each file is named after the base name of its URL.
func (f *Fetcher) DownloadAll(ctx context.Context, urls []string, dir string) ([]string, error) {
	work := make(chan string)
	results := make(chan string, len(urls))

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(work)
		for _, rawURL := range urls {
			select {
			case work <- rawURL:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < f.threads; i++ {
		eg.Go(func() error {
			for rawURL := range work {
				filename, err := f.Download(ctx, rawURL, filepath.Join(dir, path.Base(rawURL)))
				if err != nil {
					return err
				}
				results <- filename
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	close(results)
	files := make([]string, 0, len(urls))
	for filename := range results {
		files = append(files, filename)
	}
	return files, nil
}
