package service

import (
	"context"
	"fmt"
	"time"

	"relaybot/internal/domain"

	"go.uber.org/zap"
)

// Member statuses that count as subscribed
const (
	StatusMember        = "member"
	StatusAdministrator = "administrator"
	StatusCreator       = "creator"
	StatusOwner         = "owner"
)

// MembershipChecker reports a user's status in a channel
type MembershipChecker interface {
	MemberStatus(ctx context.Context, channel string, userID int64) (string, error)
}

// SubscriptionService gates the bot behind channel membership
type SubscriptionService struct {
	checker MembershipChecker
	channel string
	timeout time.Duration
	logger  *zap.Logger
}

// NewSubscriptionService creates a new subscription service.
// A zero timeout leaves the caller's context untouched.
func NewSubscriptionService(
	checker MembershipChecker,
	channel string,
	timeout time.Duration,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		checker: checker,
		channel: channel,
		timeout: timeout,
		logger:  logger,
	}
}

// Channel returns the channel username users must join
func (s *SubscriptionService) Channel() string {
	return s.channel
}

// ChannelLink returns the public join link of the channel
func (s *SubscriptionService) ChannelLink() string {
	return "https://t.me/" + s.channel
}

// IsSubscribed checks membership on every call. Lookup failures count as not subscribed.
func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID int64) bool {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	status, err := s.checker.MemberStatus(ctx, s.channel, userID)
	if err != nil {
		s.logger.Warn("Failed to check subscription",
			zap.Error(fmt.Errorf("%w: %w", domain.ErrMembershipCheck, err)),
			zap.Int64("user_id", userID),
			zap.String("channel", s.channel),
		)
		return false
	}

	return IsSubscribedStatus(status)
}

// IsSubscribedStatus reports whether a member status grants access
func IsSubscribedStatus(status string) bool {
	switch status {
	case StatusMember, StatusAdministrator, StatusCreator, StatusOwner:
		return true
	}
	return false
}
