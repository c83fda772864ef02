/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "time"

// ListReplyTimeout bounds how long ListCommand waits for the next LIST-related reply before
// treating the server as unresponsive.
const ListReplyTimeout = 60 * time.Second

// ListEntry is one channel entry of a completed LIST response.
type ListEntry struct {
	Channel string
	Clients uint64
	Topic   string
}

// ListErrorKind enumerates ListCommand's typed failure modes.
type ListErrorKind int

const (
	ListErrTryAgain ListErrorKind = iota
	ListErrInputTooLong
	ListErrUnknownCommand
	ListErrNotRegistered
	ListErrUnexpectedNumeric
	ListErrServerError
	ListErrTimeout
)

// ListError is the typed error ListCommand.Output returns on failure.
type ListError struct {
	Kind    ListErrorKind
	Message string
	Code    int // populated for ListErrUnexpectedNumeric
}

func (e ListError) Error() string {
	switch e.Kind {
	case ListErrTryAgain:
		return "irc: LIST: try again: " + e.Message
	case ListErrInputTooLong:
		return "irc: LIST: input too long: " + e.Message
	case ListErrUnknownCommand:
		return "irc: LIST: unknown command: " + e.Message
	case ListErrNotRegistered:
		return "irc: LIST: not registered: " + e.Message
	case ListErrServerError:
		return "irc: LIST: server error: " + e.Message
	case ListErrTimeout:
		return "irc: LIST: timed out waiting for a reply"
	default:
		return "irc: LIST: unexpected numeric reply"
	}
}

type listState int

const (
	listStateListing listState = iota
	listStateDone
)

// ListCommand drives the LIST verb to completion, accumulating RPL_LIST entries until
// RPL_LISTEND or a fatal error reply.
type ListCommand struct {
	state   listState
	entries []ListEntry
	err     error
	sent    bool
}

// NewListCommand constructs a LIST command with no channel filter.
func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (c *ListCommand) ClientMessages() []ClientMessage {
	if c.sent || c.state == listStateDone {
		return nil
	}
	c.sent = true
	return []ClientMessage{NewList(nil)}
}

func (c *ListCommand) HandleMessage(msg *RawMessage) bool {
	if c.state == listStateDone {
		return false
	}

	if !msg.IsNumeric() {
		if msg.Verb == CmdError {
			text, _ := msg.Params.Last()
			c.finish(nil, ListError{Kind: ListErrServerError, Message: text})
			return true
		}
		return false
	}

	reply, err := ReplyFromParams(msg.Numeric, msg.Params)
	if err != nil {
		return false
	}

	switch r := reply.(type) {
	case ListStart:
		return true
	case ListReply:
		c.entries = append(c.entries, ListEntry{Channel: r.Channel, Clients: r.Clients, Topic: r.Topic})
		return true
	case ListEnd:
		c.finish(c.entries, nil)
		return true
	case NoMotd:
		return false
	case TryAgain:
		c.finish(nil, ListError{Kind: ListErrTryAgain, Message: r.Message})
		return true
	case InputTooLong:
		c.finish(nil, ListError{Kind: ListErrInputTooLong, Message: r.Message})
		return true
	case UnknownCommand:
		c.finish(nil, ListError{Kind: ListErrUnknownCommand, Message: r.Message})
		return true
	case NotRegistered:
		c.finish(nil, ListError{Kind: ListErrNotRegistered, Message: r.Message})
		return true
	default:
		// Any other error-class numeric is fatal to LIST; non-error replies pass through.
		if IsErrorCode(reply.ReplyCode()) {
			text, _ := msg.Params.Last()
			c.finish(nil, ListError{Kind: ListErrUnexpectedNumeric, Message: text, Code: reply.ReplyCode()})
			return true
		}
		return false
	}
}

func (c *ListCommand) finish(entries []ListEntry, err error) {
	c.state = listStateDone
	c.entries = entries
	c.err = err
}

func (c *ListCommand) GetTimeout() *time.Duration {
	if c.state == listStateDone {
		return nil
	}
	d := ListReplyTimeout
	return &d
}

func (c *ListCommand) HandleTimeout() {
	if c.state == listStateDone {
		return
	}
	c.finish(nil, ListError{Kind: ListErrTimeout})
}

func (c *ListCommand) IsDone() bool { return c.state == listStateDone }

// Output returns the accumulated entries (in server-emitted order) or the fatal ListError.
// Calling this before IsDone is an API-contract violation.
func (c *ListCommand) Output() ([]ListEntry, error) {
	if c.state != listStateDone {
		errNotDonePanic()
	}
	return c.entries, c.err
}

var _ Command = (*ListCommand)(nil)
