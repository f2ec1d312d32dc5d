// Package waitlist accepts a single email address, validates it, and
// registers it with the mailing-list provider, normalizing the
// provider's responses into a closed set of outcomes.
package waitlist

import (
	"context"
	"net/http"
	"regexp"

	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/metrics"
)

// Outcome is the closed result set of a submission.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeAlreadySubscribed Outcome = "already_subscribed"
	OutcomeValidationError   Outcome = "validation_error"
	OutcomeServerError       Outcome = "server_error"
)

// Result carries the outcome plus the user-facing message.
type Result struct {
	Outcome Outcome
	Message string
}

// User-facing messages, fixed by the public API contract.
const (
	MsgEmailRequired      = "Email is required"
	MsgInvalidEmail       = "Invalid email format"
	MsgSubscribed         = "Successfully subscribed"
	MsgAlreadySubscribed  = "Already subscribed"
	MsgDevCaptured        = "Email captured (dev mode)"
	MsgNotConfigured      = "Server configuration error"
	MsgSubscribeFailed    = "Failed to subscribe"
	MsgInternalError      = "Internal server error"
)

// Shape check only: local@domain.tld with no whitespace. Deliverability
// is the provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service validates submissions and forwards them upstream. A nil
// provider means no credential is configured: development mode then
// short-circuits to success, production reports a server error.
type Service struct {
	provider    Provider
	development bool
	logger      *zap.Logger
}

func NewService(provider Provider, development bool, logger *zap.Logger) *Service {
	return &Service{provider: provider, development: development, logger: logger}
}

// Submit runs validation, the configuration fallback, and the provider
// call, in that order. It never returns an error; every failure mode is
// an Outcome.
func (s *Service) Submit(ctx context.Context, email string) Result {
	res := s.submit(ctx, email)
	metrics.WaitlistSubmissionsTotal.WithLabelValues(string(res.Outcome)).Inc()
	return res
}

func (s *Service) submit(ctx context.Context, email string) Result {
	if email == "" {
		return Result{Outcome: OutcomeValidationError, Message: MsgEmailRequired}
	}
	if !emailPattern.MatchString(email) {
		return Result{Outcome: OutcomeValidationError, Message: MsgInvalidEmail}
	}

	if s.provider == nil {
		if s.development {
			s.logger.Info("waitlist dev mode, not forwarding", zap.String("email", email))
			return Result{Outcome: OutcomeSuccess, Message: MsgDevCaptured}
		}
		s.logger.Error("waitlist provider key not configured")
		return Result{Outcome: OutcomeServerError, Message: MsgNotConfigured}
	}

	status, err := s.provider.CreateContact(ctx, email)
	if err != nil {
		// Covers transport failures and the request timeout. No retry;
		// the user may resubmit manually.
		s.logger.Warn("waitlist provider unreachable", zap.Error(err))
		return Result{Outcome: OutcomeServerError, Message: MsgSubscribeFailed}
	}

	switch {
	case status == http.StatusConflict:
		// The desired end-state (being on the list) already holds.
		return Result{Outcome: OutcomeAlreadySubscribed, Message: MsgAlreadySubscribed}
	case status >= 200 && status < 300:
		return Result{Outcome: OutcomeSuccess, Message: MsgSubscribed}
	default:
		return Result{Outcome: OutcomeServerError, Message: MsgSubscribeFailed}
	}
}
