// Package resume triggers the resume download after checking the file is
// actually served.
package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/logging"
)

// ErrNotFound means the resume could not be fetched.
var ErrNotFound = errors.New("resume not found")

// Link is a temporary download anchor.
type Link struct {
	Href     string
	Filename string
}

// LinkHost owns the page's temporary link elements.
type LinkHost interface {
	Append(l Link)
	Click(l Link)
	Remove(l Link)
}

// Alerter shows a blocking user alert.
type Alerter interface {
	Alert(msg string)
}

// Downloader checks and downloads the resume.
type Downloader struct {
	href         string
	filename     string
	contactEmail string
	client       *http.Client
	links        LinkHost
	alerter      Alerter
	logger       *zap.Logger
}

// Options configures a Downloader. BaseURL is the page origin; Path is the
// served file path and Filename the name the browser saves it under.
type Options struct {
	BaseURL      string
	Path         string
	Filename     string
	ContactEmail string
	Client       *http.Client
}

// NewDownloader builds a Downloader.
func NewDownloader(opts Options, links LinkHost, alerter Alerter, logger *zap.Logger) (*Downloader, error) {
	href := opts.Path
	if opts.BaseURL != "" {
		base, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
		ref, err := url.Parse(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("parse resume path: %w", err)
		}
		href = base.ResolveReference(ref).String()
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{
		href:         href,
		filename:     opts.Filename,
		contactEmail: opts.ContactEmail,
		client:       client,
		links:        links,
		alerter:      alerter,
		logger:       logging.OrNop(logger),
	}, nil
}

// NotFoundAlert is shown when the file cannot be fetched.
func (d *Downloader) NotFoundAlert() string {
	return "Resume file not found. Please contact me directly at " + d.contactEmail
}

// Download appends a temporary link, verifies the file responds 2xx and
// clicks the link. The link is removed whatever happens. A cancelled ctx
// skips the alert.
func (d *Downloader) Download(ctx context.Context) error {
	link := Link{Href: d.href, Filename: d.filename}
	d.links.Append(link)
	defer d.links.Remove(link)

	if err := d.check(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		d.logger.Warn("resume unavailable", zap.String("href", d.href), zap.Error(err))
		d.alerter.Alert(d.NotFoundAlert())
		return err
	}

	d.links.Click(link)
	d.logger.Info("resume download started", zap.String("filename", d.filename))
	return nil
}

func (d *Downloader) check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.href, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	}
	return nil
}
