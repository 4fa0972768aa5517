package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/view"
)

// RelayPath is where the self-hosted relay listens. It takes the same JSON
// body as the EmailJS send API, so pointing relay.endpoint here swaps
// providers without touching the browser client.
const RelayPath = "/api/v1.0/email/send"

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	r, err := newRouter(cfg, logger, Portfolio, nil)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("portfolio listening", zap.Bool("relay", cfg.SMTP.Enabled()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newRouter builds the host. sendMail overrides SMTP delivery; nil uses
// smtp.SendMail.
func newRouter(cfg *config.Config, logger *zap.Logger, content view.Content, sendMail contact.SendMailFunc) (*gin.Engine, error) {
	hasher, err := newVisitorHasher()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger.Named("http"), hasher))

	r.Static("/images", cfg.Server.ImagesDir)
	r.Static("/static", cfg.Server.StaticDir)
	r.StaticFile(cfg.Resume.Path, cfg.Resume.File)

	client := cfg.ClientConfig()
	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := view.Render(c.Writer, content, client); err != nil {
			_ = c.Error(err)
		}
	})

	if cfg.SMTP.Enabled() {
		relay := contact.NewSMTPRelay(cfg.SMTP, sendMail, logger.Named("relay"))
		r.POST(RelayPath, relayHandler(cfg.Relay, relay, logger.Named("relay")))
	}

	return r, nil
}

// relayHandler accepts EmailJS-shaped requests and delivers them through
// relay. Identifiers must match the configured ones.
func relayHandler(ids config.RelayConfig, relay contact.Relay, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.SendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ServiceID != ids.ServiceID || req.TemplateID != ids.TemplateID || req.UserID != ids.PublicKey {
			c.String(http.StatusForbidden, "unknown service, template or public key")
			return
		}

		form := contact.MapForm(req.TemplateParams)
		if err := contact.FromValues(form.Values()).Validate(); err != nil {
			c.String(http.StatusUnprocessableEntity, err.Error())
			return
		}

		if err := relay.Send(c.Request.Context(), req.ServiceID, req.TemplateID, form, req.UserID); err != nil {
			logger.Error("relay delivery failed", zap.Error(err))
			c.String(http.StatusBadGateway, "delivery failed")
			return
		}
		c.String(http.StatusOK, "OK")
	}
}
