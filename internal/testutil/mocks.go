package testutil

import (
	"context"

	"relaybot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockMembershipChecker is a mock for service.MembershipChecker
type MockMembershipChecker struct {
	mock.Mock
}

func (m *MockMembershipChecker) MemberStatus(ctx context.Context, channel string, userID int64) (string, error) {
	args := m.Called(ctx, channel, userID)
	return args.String(0), args.Error(1)
}

// MockTranslator is a mock for service.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, source, target, text string) (string, error) {
	args := m.Called(ctx, source, target, text)
	return args.String(0), args.Error(1)
}

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(userID int64) domain.Session {
	args := m.Called(userID)
	return args.Get(0).(domain.Session)
}

func (m *MockSessionRepository) SetInterfaceLanguage(userID int64, lang domain.InterfaceLanguage) {
	m.Called(userID, lang)
}

func (m *MockSessionRepository) SetPendingText(userID int64, text string) {
	m.Called(userID, text)
}

func (m *MockSessionRepository) ClearPendingText(userID int64) {
	m.Called(userID)
}
