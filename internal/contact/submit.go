// Package contact runs the contact form submission flow against an email
// relay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
)

const (
	SuccessMessage = "Thanks! Your message has been sent."
	FailureMessage = "Oops, something went wrong. Please try again."

	UnconfiguredAlert = "The contact form is not configured yet. Please add the relay Service, Template, and Public keys."
	InvalidAlert      = "Please fill in your name, a valid email, a subject and a message."
)

var (
	ErrUnconfigured = errors.New("relay is not configured")
	ErrInvalid      = errors.New("submission is incomplete")
)

// Relay delivers a form's values through a third-party email service.
type Relay interface {
	Send(ctx context.Context, serviceID, templateID string, form Form, publicKey string) error
}

// Notifier shows a transient toast.
type Notifier interface {
	Show(text string)
}

// Alerter shows a blocking user alert.
type Alerter interface {
	Alert(msg string)
}

// State is a step of the submission state machine.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSending:
		return "sending"
	default:
		return "unknown"
	}
}

// Outcome is how a submission attempt ended.
type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeFailed
	OutcomeUnconfigured
	OutcomeInvalid
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	case OutcomeUnconfigured:
		return "unconfigured"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Submitter runs submission attempts. Attempts share no state beyond the
// in-flight counter used for logging.
type Submitter struct {
	relayCfg config.RelayConfig
	relay    Relay
	notifier Notifier
	alerter  Alerter
	logger   *zap.Logger

	// OnState, if set, observes every state transition, e.g. to disable
	// the submit button while sending.
	OnState func(State)

	inFlight atomic.Int32
}

// NewSubmitter wires a submitter to its relay and UI ports.
func NewSubmitter(cfg config.RelayConfig, relay Relay, notifier Notifier, alerter Alerter, logger *zap.Logger) *Submitter {
	return &Submitter{
		relayCfg: cfg,
		relay:    relay,
		notifier: notifier,
		alerter:  alerter,
		logger:   logging.OrNop(logger),
	}
}

// Submit runs one attempt to completion and always returns to idle.
func (s *Submitter) Submit(ctx context.Context, form Form) (Outcome, error) {
	defer s.transition(StateIdle)
	s.transition(StateValidating)

	if !s.relayCfg.Configured() {
		s.alerter.Alert(UnconfiguredAlert)
		return OutcomeUnconfigured, ErrUnconfigured
	}

	sub := FromValues(form.Values())
	if err := sub.Validate(); err != nil {
		s.alerter.Alert(InvalidAlert)
		return OutcomeInvalid, err
	}

	s.transition(StateSending)
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	s.logger.Info("sending contact message",
		zap.String("subject", sub.Subject),
		zap.Int32("in_flight", n))

	err := s.relay.Send(ctx, s.relayCfg.ServiceID, s.relayCfg.TemplateID, form, s.relayCfg.PublicKey)
	switch {
	case err != nil && ctx.Err() != nil:
		// the page went away; nothing is left to update
		s.logger.Debug("contact send abandoned", zap.Error(err))
		return OutcomeCanceled, fmt.Errorf("send contact message: %w", ctx.Err())
	case err != nil:
		s.logger.Error("contact send failed", zap.Error(err))
		s.notifier.Show(FailureMessage)
		return OutcomeFailed, fmt.Errorf("send contact message: %w", err)
	}

	form.Reset()
	s.notifier.Show(SuccessMessage)
	return OutcomeSent, nil
}

func (s *Submitter) transition(st State) {
	if s.OnState != nil {
		s.OnState(st)
	}
}
