package testutil

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// Outgoing is one message sent or edited through a FakeContext
type Outgoing struct {
	Text string
	Opts []interface{}
}

// FakeContext is a tele.Context for handler and middleware tests.
// Methods it does not override panic through the nil embedded interface.
type FakeContext struct {
	tele.Context

	User         *tele.User
	ChatValue    *tele.Chat
	TextValue    string
	CallbackData string
	IsCallback   bool

	SendErr error
	EditErr error

	mu        sync.Mutex
	Sent      []Outgoing
	Edited    []Outgoing
	Responded int
	store     map[string]interface{}
}

// NewFakeContext creates a private-chat text update from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:      &tele.User{ID: userID, FirstName: "Test", Username: "tester"},
		ChatValue: &tele.Chat{ID: userID, Type: tele.ChatPrivate},
		TextValue: text,
	}
}

// NewFakeCallback creates a button press from userID carrying data
func NewFakeCallback(userID int64, data string) *FakeContext {
	c := NewFakeContext(userID, "")
	c.IsCallback = true
	c.CallbackData = data
	return c
}

func (c *FakeContext) Sender() *tele.User { return c.User }
func (c *FakeContext) Chat() *tele.Chat   { return c.ChatValue }
func (c *FakeContext) Text() string       { return c.TextValue }

func (c *FakeContext) Callback() *tele.Callback {
	if !c.IsCallback {
		return nil
	}
	return &tele.Callback{ID: "cb", Sender: c.User, Data: c.CallbackData}
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SendErr != nil {
		return c.SendErr
	}
	text, _ := what.(string)
	c.Sent = append(c.Sent, Outgoing{Text: text, Opts: opts})
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.EditErr != nil {
		return c.EditErr
	}
	text, _ := what.(string)
	c.Edited = append(c.Edited, Outgoing{Text: text, Opts: opts})
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Responded++
	return nil
}

func (c *FakeContext) Get(key string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store[key]
}

func (c *FakeContext) Set(key string, val interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = make(map[string]interface{})
	}
	c.store[key] = val
}
