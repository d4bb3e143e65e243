package handler

import (
	"context"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// chatMemberGetter is the part of *tele.Bot used for membership checks
type chatMemberGetter interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// BotMembership implements service.MembershipChecker with the Bot API
type BotMembership struct {
	api chatMemberGetter
}

// NewBotMembership creates a membership checker backed by bot
func NewBotMembership(api chatMemberGetter) *BotMembership {
	return &BotMembership{api: api}
}

// MemberStatus returns the user's status in channel ("member", "left", ...)
func (m *BotMembership) MemberStatus(ctx context.Context, channel string, userID int64) (string, error) {
	type result struct {
		member *tele.ChatMember
		err    error
	}

	// telebot calls are not context aware; stop waiting when ctx ends
	done := make(chan result, 1)
	go func() {
		member, err := m.api.ChatMemberOf(channelRecipient(channel), &tele.User{ID: userID})
		done <- result{member: member, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		return string(r.member.Role), nil
	}
}

// channelRecipient addresses a channel by @username or numeric id
type channelRecipient string

func (r channelRecipient) Recipient() string {
	s := string(r)
	if strings.HasPrefix(s, "@") {
		return s
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s
	}
	return "@" + s
}
