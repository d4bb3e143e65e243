package domain

// Button is one inline keyboard button: either an action or an external link
type Button struct {
	Text   string
	Action Action
	URL    string
}

// Reply is a message the bot emits in response to an event
type Reply struct {
	Text     string
	Keyboard [][]Button
	HTML     bool
	// Edit replaces the message that carried the pressed button instead of sending a new one
	Edit bool
}
