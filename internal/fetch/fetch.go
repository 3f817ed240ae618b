package fetch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"

	"github.com/frederic-klein/altcmp/internal/log"
)

// ErrNotText is returned when a listing does not decode as UTF-8 text.
var ErrNotText = errors.New("listing is not valid UTF-8 text")

// Config controls how listings are retrieved.
type Config struct {
	Workers  int
	Retries  int
	Timeout  time.Duration
	CacheDir string // empty disables the cache
	CacheTTL time.Duration
}

// Job describes one listing to retrieve.
type Job struct {
	Label string // e.g., "ALT"
	URL   string // http(s) URL, file:// URL or local path
	File  string // file name used for the cache and by Save
}

// Result represents a fetch result.
type Result struct {
	Job    Job
	Data   string
	Cached bool
	Error  error
}

// Fetcher retrieves package listings in parallel.
type Fetcher struct {
	cfg    Config
	fs     afero.Fs
	client *retryablehttp.Client
}

// New creates a fetcher. Local paths, the cache and Save all go through fs.
func New(cfg Config, fs afero.Fs) *Fetcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.HTTPClient.Timeout = cfg.Timeout
	client.RetryMax = cfg.Retries
	client.Logger = retryLogger{}

	return &Fetcher{
		cfg:    cfg,
		fs:     fs,
		client: client,
	}
}

// Fetch retrieves all jobs and returns one result per job, in job order.
func (f *Fetcher) Fetch(ctx context.Context, jobs []Job) []Result {
	type indexed struct {
		i   int
		job Job
	}

	jobChan := make(chan indexed, len(jobs))
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < f.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				data, cached, err := f.fetchOne(ctx, j.job)
				results[j.i] = Result{Job: j.job, Data: data, Cached: cached, Error: err}
			}
		}()
	}

	for i, job := range jobs {
		jobChan <- indexed{i: i, job: job}
	}
	close(jobChan)
	wg.Wait()

	return results
}

// Errors combines the failures of results, or returns nil.
func Errors(results []Result) error {
	var errs *multierror.Error
	for _, r := range results {
		if r.Error != nil {
			errs = multierror.Append(errs, fmt.Errorf("fetching %s: %w", r.Job.Label, r.Error))
		}
	}
	return errs.ErrorOrNil()
}

func (f *Fetcher) fetchOne(ctx context.Context, job Job) (string, bool, error) {
	if !isRemote(job.URL) {
		data, err := f.readLocal(job.URL)
		return data, false, err
	}

	if data, ok := f.readCache(job); ok {
		log.Infof("using cached %s listing (%s)", job.Label, humanize.Bytes(uint64(len(data))))
		return data, true, nil
	}

	raw, err := f.download(ctx, job.URL)
	if err != nil {
		return "", false, err
	}
	data, err := decode(job.URL, raw)
	if err != nil {
		return "", false, err
	}
	log.Infof("fetched %s listing: %s (%s decoded)", job.Label, humanize.Bytes(uint64(len(raw))), humanize.Bytes(uint64(len(data))))

	if err := f.writeCache(job, data); err != nil {
		log.Warnf("caching %s listing: %v", job.Label, err)
	}
	return data, false, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}

func (f *Fetcher) readLocal(location string) (string, error) {
	path := strings.TrimPrefix(location, "file://")
	raw, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return decode(path, raw)
}

// decode decompresses .xz listings and checks the result is text.
func decode(location string, raw []byte) (string, error) {
	data := raw
	if strings.HasSuffix(location, ".xz") {
		r, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return "", fmt.Errorf("decompressing %s: %w", location, err)
		}
		if data, err = io.ReadAll(r); err != nil {
			return "", fmt.Errorf("decompressing %s: %w", location, err)
		}
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", location, ErrNotText)
	}
	return string(data), nil
}

// cachePath keys the cache entry by location, so two jobs sharing a File never
// read each other's listing.
func (f *Fetcher) cachePath(job Job) string {
	sum := sha256.Sum256([]byte(job.URL))
	return filepath.Join(f.cfg.CacheDir, hex.EncodeToString(sum[:8])+"-"+job.File)
}

func (f *Fetcher) readCache(job Job) (string, bool) {
	if f.cfg.CacheDir == "" || job.File == "" {
		return "", false
	}

	info, err := f.fs.Stat(f.cachePath(job))
	if err != nil || time.Since(info.ModTime()) >= f.cfg.CacheTTL {
		return "", false
	}

	data, err := afero.ReadFile(f.fs, f.cachePath(job))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (f *Fetcher) writeCache(job Job, data string) error {
	if f.cfg.CacheDir == "" || job.File == "" {
		return nil
	}
	return writeFile(f.fs, f.cachePath(job), data)
}

// Save writes each successfully fetched listing to dir/<job.File>.
func (f *Fetcher) Save(dir string, results []Result) error {
	if err := f.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	var errs *multierror.Error
	for _, r := range results {
		if r.Error != nil {
			continue
		}
		path := filepath.Join(dir, r.Job.File)
		if err := writeFile(f.fs, path, r.Data); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("saving %s listing: %w", r.Job.Label, err))
			continue
		}
		log.Infof("saved %s listing to %s", r.Job.Label, path)
	}
	return errs.ErrorOrNil()
}

// writeFile writes to a temp file first, then renames.
func writeFile(fs afero.Fs, path, data string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := afero.WriteFile(fs, tmpPath, []byte(data), 0644); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("writing file: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("renaming file: %w", err)
	}
	return nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// retryLogger routes retryablehttp messages into the package logger.
type retryLogger struct{}

func (retryLogger) Error(msg string, kv ...interface{}) { log.Errorf("%s %v", msg, kv) }
func (retryLogger) Warn(msg string, kv ...interface{})  { log.Warnf("%s %v", msg, kv) }
func (retryLogger) Info(msg string, kv ...interface{})  { log.Debugf("%s %v", msg, kv) }
func (retryLogger) Debug(msg string, kv ...interface{}) { log.Tracef("%s %v", msg, kv) }

var _ retryablehttp.LeveledLogger = retryLogger{}
