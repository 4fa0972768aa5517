//go:build js && wasm

// Command portfolio-wasm is the in-browser presentation engine. It reads
// the config embedded in the page, mounts the engine against the DOM and
// runs until the page is hidden.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/portfolio-wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" static/
package main

import (
	"context"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/field"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/view"
)

func main() {
	logger, err := logging.New("info")
	if err != nil {
		logger = zap.NewNop()
	}

	w := dom.NewWindow()

	cfg := config.Default().ClientConfig()
	if raw := w.ConfigJSON(); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			logger.Warn("failed to parse engine config, using defaults", zap.Error(err))
		}
	}

	endpoint := cfg.Relay.Endpoint
	if strings.HasPrefix(endpoint, "/") {
		endpoint = w.Origin() + endpoint
	}

	sections := w.FindSections()
	form, hasForm := w.ContactForm()

	ports := page.Ports{
		Events:   w,
		Stars:    w.Stars,
		Progress: w.ProgressBar(),
		Reveal:   sections.Apply,
		Toasts:   w.NewToasts(),
		Alerter:  w,
		Links:    w.NewLinks(),
	}
	if hasForm {
		ports.SubmitState = form.SubmitState
	}

	p, err := page.New(page.Options{
		Config:     cfg,
		Groups:     sections.Groups(),
		Relay:      contact.NewEmailJS(endpoint, &http.Client{Timeout: cfg.Relay.Timeout}),
		BaseURL:    w.Origin(),
		HTTPClient: http.DefaultClient,
		Logger:     logger,
	}, ports)
	if err != nil {
		logger.Fatal("failed to build page", zap.Error(err))
	}

	if err := p.Mount(context.Background(), w.Viewport()); err != nil {
		logger.Fatal("failed to mount page", zap.Error(err))
	}

	// Reveal whatever is already in view, then re-check on every scroll
	// and resize.
	sections.Observe(p.Observe)
	releases := []func(){
		w.OnScroll(func(float64, float64) { sections.Observe(p.Observe) }),
		w.OnResize(func(field.Viewport) { sections.Observe(p.Observe) }),
		w.OnClick(view.ResumeButtonID, func() {
			go func() { _ = p.DownloadResume() }()
		}),
	}
	if hasForm {
		releases = append(releases, form.OnSubmit(w, func() {
			go func() { _, _ = p.Submit(form) }()
		}))
	}

	done := make(chan struct{})
	releases = append(releases, w.OnPageHide(func() {
		// Unmount waits on the spring goroutine, which cannot run while
		// this callback holds the event loop.
		go func() {
			p.Unmount()
			close(done)
		}()
	}))

	<-done
	for _, release := range releases {
		release()
	}
	_ = logger.Sync()
}
