package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PlaceholderPrefix marks relay identifiers that were never filled in.
const PlaceholderPrefix = "YOUR_"

// Config holds the portfolio host and presentation engine settings.
type Config struct {
	LogLevel string `yaml:"log_level"`

	Server ServerConfig `yaml:"server"`
	Relay  RelayConfig  `yaml:"relay"`
	SMTP   SMTPConfig   `yaml:"smtp"`
	Resume ResumeConfig `yaml:"resume"`

	Field  FieldConfig  `yaml:"field"`
	Scroll ScrollConfig `yaml:"scroll"`
	Reveal RevealConfig `yaml:"reveal"`
	Toast  ToastConfig  `yaml:"toast"`
}

// ServerConfig configures the gin host.
type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
	ImagesDir string `yaml:"images_dir"`
}

// RelayConfig holds the three identifiers handed to the email relay.
type RelayConfig struct {
	ServiceID  string        `yaml:"service_id" json:"service_id"`
	TemplateID string        `yaml:"template_id" json:"template_id"`
	PublicKey  string        `yaml:"public_key" json:"public_key"`
	Endpoint   string        `yaml:"endpoint" json:"endpoint"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
}

// Configured reports whether every identifier is set to a real value.
func (r RelayConfig) Configured() bool {
	for _, id := range []string{r.ServiceID, r.TemplateID, r.PublicKey} {
		if id == "" || strings.HasPrefix(id, PlaceholderPrefix) {
			return false
		}
	}
	return true
}

// SMTPConfig configures the optional self-hosted relay.
type SMTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	To   string `yaml:"to"`
}

// Enabled reports whether credentials are present.
func (s SMTPConfig) Enabled() bool {
	return s.User != "" && s.Pass != ""
}

// ResumeConfig describes the static resume asset.
type ResumeConfig struct {
	Path         string `yaml:"path" json:"path"`
	Filename     string `yaml:"filename" json:"filename"`
	File         string `yaml:"file" json:"-"`
	ContactEmail string `yaml:"contact_email" json:"contact_email"`
}

// FieldConfig tunes the background field density.
type FieldConfig struct {
	Density float64 `yaml:"density" json:"density"`
	Min     int     `yaml:"min" json:"min"`
	Max     int     `yaml:"max" json:"max"`
}

// ScrollConfig holds the progress spring parameters.
type ScrollConfig struct {
	Stiffness float64 `yaml:"stiffness" json:"stiffness"`
	Damping   float64 `yaml:"damping" json:"damping"`
	Mass      float64 `yaml:"mass" json:"mass"`
	FPS       int     `yaml:"fps" json:"fps"`
}

// RevealConfig holds the staggered enter animation timing.
type RevealConfig struct {
	Stagger  time.Duration `yaml:"stagger" json:"stagger"`
	Duration time.Duration `yaml:"duration" json:"duration"`
	Offset   float64       `yaml:"offset" json:"offset"`
}

// ToastConfig holds the toast lifecycle timing.
type ToastConfig struct {
	EnterDelay time.Duration `yaml:"enter_delay" json:"enter_delay"`
	Visible    time.Duration `yaml:"visible" json:"visible"`
	Exit       time.Duration `yaml:"exit" json:"exit"`
}

// Client is the subset of the configuration shipped to the browser.
type Client struct {
	Relay  RelayConfig  `json:"relay"`
	Resume ResumeConfig `json:"resume"`
	Field  FieldConfig  `json:"field"`
	Scroll ScrollConfig `json:"scroll"`
	Reveal RevealConfig `json:"reveal"`
	Toast  ToastConfig  `json:"toast"`
}

// Default returns the built-in configuration. Relay identifiers ship as
// placeholders so a fresh checkout never sends mail.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port:      "8080",
			StaticDir: "./static",
			ImagesDir: "./images",
		},
		Relay: RelayConfig{
			ServiceID:  "YOUR_SERVICE_ID",
			TemplateID: "YOUR_TEMPLATE_ID",
			PublicKey:  "YOUR_PUBLIC_KEY",
			Endpoint:   "https://api.emailjs.com/api/v1.0/email/send",
			Timeout:    15 * time.Second,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Resume: ResumeConfig{
			Path:         "/files/resume.pdf",
			Filename:     "Zach_Resume.pdf",
			File:         "./static/resume.pdf",
			ContactEmail: "zachkordaspotter@gmail.com",
		},
		Field: FieldConfig{
			Density: 0.00012,
			Min:     120,
			Max:     300,
		},
		Scroll: ScrollConfig{
			Stiffness: 120,
			Damping:   20,
			Mass:      0.2,
			FPS:       60,
		},
		Reveal: RevealConfig{
			Stagger:  120 * time.Millisecond,
			Duration: 800 * time.Millisecond,
			Offset:   30,
		},
		Toast: ToastConfig{
			EnterDelay: 10 * time.Millisecond,
			Visible:    2500 * time.Millisecond,
			Exit:       300 * time.Millisecond,
		},
	}
}

// Load reads a YAML config file on top of the defaults, then applies
// .env and environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()
	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	overrides := []struct {
		key string
		dst *string
	}{
		{"PORT", &c.Server.Port},
		{"LOG_LEVEL", &c.LogLevel},
		{"RELAY_SERVICE_ID", &c.Relay.ServiceID},
		{"RELAY_TEMPLATE_ID", &c.Relay.TemplateID},
		{"RELAY_PUBLIC_KEY", &c.Relay.PublicKey},
		{"RELAY_ENDPOINT", &c.Relay.Endpoint},
		{"SMTP_HOST", &c.SMTP.Host},
		{"SMTP_PORT", &c.SMTP.Port},
		{"SMTP_USER", &c.SMTP.User},
		{"SMTP_PASS", &c.SMTP.Pass},
		{"TO_EMAIL", &c.SMTP.To},
		{"RESUME_FILE", &c.Resume.File},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.dst = v
		}
	}
	if c.SMTP.To == "" {
		c.SMTP.To = c.Resume.ContactEmail
	}
}

// Validate checks the values the engine cannot run without.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	if c.Field.Min < 0 || c.Field.Max < c.Field.Min {
		return fmt.Errorf("invalid field bounds [%d, %d]", c.Field.Min, c.Field.Max)
	}
	if c.Field.Density <= 0 {
		return fmt.Errorf("field density must be positive, got %v", c.Field.Density)
	}
	if c.Scroll.Stiffness <= 0 || c.Scroll.Mass <= 0 || c.Scroll.Damping < 0 {
		return errors.New("scroll spring needs positive stiffness and mass")
	}
	if c.Scroll.FPS <= 0 {
		return fmt.Errorf("scroll fps must be positive, got %d", c.Scroll.FPS)
	}
	if !strings.HasPrefix(c.Resume.Path, "/") {
		return fmt.Errorf("resume path must be absolute, got %q", c.Resume.Path)
	}
	return nil
}

// ClientConfig returns the browser-facing subset.
func (c *Config) ClientConfig() Client {
	return Client{
		Relay:  c.Relay,
		Resume: c.Resume,
		Field:  c.Field,
		Scroll: c.Scroll,
		Reveal: c.Reveal,
		Toast:  c.Toast,
	}
}
