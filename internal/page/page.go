// Package page is the page-level component: it owns every piece of engine
// state for as long as the page is mounted and tears it all down on
// Unmount.
package page

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/field"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/resume"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/Zachkp/portfolio/internal/toast"
)

var (
	ErrMounted    = errors.New("page already mounted")
	ErrNotMounted = errors.New("page not mounted")
)

// Events subscribes to window events. Each release func removes its
// listener.
type Events interface {
	OnScroll(fn func(offset, maxOffset float64)) (release func())
	OnResize(fn func(vp field.Viewport)) (release func())
}

// Alerter shows a blocking alert.
type Alerter interface {
	Alert(msg string)
}

// Ports are the rendering-side collaborators.
type Ports struct {
	Events Events
	// Stars looks up the star container; false means it is not in the
	// render tree yet.
	Stars    func() (field.Container, bool)
	Progress func(scaleX float64)
	Reveal   func(g reveal.Group, steps []reveal.Step)
	Toasts   toast.Display
	Alerter  Alerter
	Links    resume.LinkHost
	// SubmitState observes the contact flow, optional.
	SubmitState func(contact.State)
	// Clock drives toast timers; nil uses the real clock.
	Clock toast.Clock
}

// Options are the page's configuration and outbound dependencies.
type Options struct {
	Config     config.Client
	Groups     []reveal.Group
	Relay      contact.Relay
	BaseURL    string
	HTTPClient *http.Client
	Rand       field.Source
	Logger     *zap.Logger
}

// Page wires the field, scroll, reveal, toast, contact and resume
// components together.
type Page struct {
	ports  Ports
	logger *zap.Logger

	field     *field.Field
	scroll    *scroll.Synchronizer
	reveal    *reveal.Orchestrator
	toasts    *toast.Manager
	submitter *contact.Submitter
	resume    *resume.Downloader

	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	releases []func()
	done     bool
	wg       sync.WaitGroup
}

// New builds a page from its options and ports. Nothing runs until Mount.
func New(opts Options, ports Ports) (*Page, error) {
	logger := logging.OrNop(opts.Logger)
	cfg := opts.Config

	gen := field.NewGenerator(opts.Rand)
	if cfg.Field.Max > 0 {
		gen.Density, gen.Min, gen.Max = cfg.Field.Density, cfg.Field.Min, cfg.Field.Max
	}

	spring := scroll.DefaultSpring
	if cfg.Scroll.Stiffness > 0 {
		spring = scroll.Spring{Stiffness: cfg.Scroll.Stiffness, Damping: cfg.Scroll.Damping, Mass: cfg.Scroll.Mass}
	}

	timing := reveal.DefaultTiming
	if cfg.Reveal.Duration > 0 {
		timing = reveal.Timing{Stagger: cfg.Reveal.Stagger, Duration: cfg.Reveal.Duration, Offset: cfg.Reveal.Offset}
	}

	toastTiming := toast.DefaultTiming
	if cfg.Toast.Visible > 0 {
		toastTiming = toast.Timing{EnterDelay: cfg.Toast.EnterDelay, Visible: cfg.Toast.Visible, Exit: cfg.Toast.Exit}
	}
	toasts := toast.NewManager(ports.Toasts, ports.Clock, toastTiming, logger.Named("toast"))

	submitter := contact.NewSubmitter(cfg.Relay, opts.Relay, toasts, ports.Alerter, logger.Named("contact"))
	submitter.OnState = ports.SubmitState

	dl, err := resume.NewDownloader(resume.Options{
		BaseURL:      opts.BaseURL,
		Path:         cfg.Resume.Path,
		Filename:     cfg.Resume.Filename,
		ContactEmail: cfg.Resume.ContactEmail,
		Client:       opts.HTTPClient,
	}, ports.Links, ports.Alerter, logger.Named("resume"))
	if err != nil {
		return nil, err
	}

	return &Page{
		ports:     ports,
		logger:    logger,
		field:     field.New(gen, logger.Named("field")),
		scroll:    scroll.New(spring, cfg.Scroll.FPS),
		reveal:    reveal.New(timing, opts.Groups, ports.Reveal, logger.Named("reveal")),
		toasts:    toasts,
		submitter: submitter,
		resume:    dl,
	}, nil
}

// Mount renders the initial field, subscribes to scroll and resize and
// starts the progress spring. parent bounds the page's lifetime.
func (p *Page) Mount(parent context.Context, vp field.Viewport) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx != nil {
		return ErrMounted
	}
	p.ctx, p.cancel = context.WithCancel(parent)

	p.regenerate(vp)
	p.releases = append(p.releases,
		p.ports.Events.OnResize(p.regenerate),
		p.ports.Events.OnScroll(p.scroll.Update),
	)
	if p.ports.Progress != nil {
		p.releases = append(p.releases, p.scroll.Subscribe(p.ports.Progress))
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.scroll.Run(p.ctx)
	}()

	p.logger.Info("page mounted", zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
	return nil
}

// Unmount releases listeners, cancels in-flight requests, stops the spring
// and clears toast timers. It is safe to call more than once.
func (p *Page) Unmount() {
	p.mu.Lock()
	if p.ctx == nil || p.done {
		p.mu.Unlock()
		return
	}
	p.done = true
	for _, release := range p.releases {
		release()
	}
	p.releases = nil
	p.cancel()
	p.mu.Unlock()

	p.wg.Wait()
	p.toasts.Close()
	p.logger.Info("page unmounted")
}

func (p *Page) regenerate(vp field.Viewport) {
	var c field.Container
	if p.ports.Stars != nil {
		if found, ok := p.ports.Stars(); ok {
			c = found
		}
	}
	p.field.Regenerate(c, vp)
}

// Observe forwards a group's position to the reveal orchestrator.
func (p *Page) Observe(group string, r reveal.Rect, viewportHeight float64) bool {
	return p.reveal.Observe(group, r, viewportHeight)
}

// Submit runs the contact flow bound to the page's lifetime.
func (p *Page) Submit(form contact.Form) (contact.Outcome, error) {
	ctx, err := p.lifetime()
	if err != nil {
		return contact.OutcomeCanceled, err
	}
	return p.submitter.Submit(ctx, form)
}

// DownloadResume runs the resume check and download bound to the page's
// lifetime.
func (p *Page) DownloadResume() error {
	ctx, err := p.lifetime()
	if err != nil {
		return err
	}
	return p.resume.Download(ctx)
}

// Scroll exposes the progress synchronizer.
func (p *Page) Scroll() *scroll.Synchronizer { return p.scroll }

// Reveal exposes the reveal orchestrator.
func (p *Page) Reveal() *reveal.Orchestrator { return p.reveal }

// Toasts exposes the toast manager.
func (p *Page) Toasts() *toast.Manager { return p.toasts }

func (p *Page) lifetime() (context.Context, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx == nil {
		return nil, ErrNotMounted
	}
	if err := p.ctx.Err(); err != nil {
		return nil, err
	}
	return p.ctx, nil
}
