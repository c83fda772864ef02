/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingResponder(t *testing.T) {
	r := NewPingResponder()

	handled := r.HandleMessage(mustParse(t, "PING :alpha"))
	assert.True(t, handled)
	assert.Equal(t, []string{"PONG :alpha\r\n"}, renderAll(t, r.ClientMessages()))

	assert.Empty(t, r.ClientMessages(), "drain moves ownership")
	assert.False(t, r.IsDone(), "a ping responder never completes")

	assert.False(t, r.HandleMessage(mustParse(t, "PRIVMSG #chan :hi")))
	assert.False(t, r.HandleMessage(mustParse(t, ":irc.example.org 001 me :hi")))
}

func TestCtcpQueryResponderVersion(t *testing.T) {
	r := NewCtcpQueryResponder(CtcpReplies{Version: "listchans"})

	handled := r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01VERSION\x01"))
	assert.True(t, handled)
	assert.Equal(t, []string{"NOTICE nick :\x01VERSION listchans\x01\r\n"},
		renderAll(t, r.ClientMessages()))
}

func TestCtcpQueryResponderPingEcho(t *testing.T) {
	r := NewCtcpQueryResponder(CtcpReplies{})

	handled := r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01PING 12345\x01"))
	assert.True(t, handled)
	assert.Equal(t, []string{"NOTICE nick :\x01PING 12345\x01\r\n"},
		renderAll(t, r.ClientMessages()))
}

func TestCtcpQueryResponderTime(t *testing.T) {
	fixed := time.Date(2023, time.October, 14, 12, 30, 0, 0, time.UTC)
	r := NewCtcpQueryResponder(CtcpReplies{
		UseUTC: true,
		Now:    func() time.Time { return fixed },
	})

	handled := r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01TIME\x01"))
	assert.True(t, handled)
	assert.Equal(t, []string{"NOTICE nick :\x01TIME Sat, 14 Oct 2023 12:30:00 +0000\x01\r\n"},
		renderAll(t, r.ClientMessages()))
}

func TestCtcpQueryResponderClientInfo(t *testing.T) {
	t.Run("base set", func(t *testing.T) {
		r := NewCtcpQueryResponder(CtcpReplies{})
		require.True(t, r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01CLIENTINFO\x01")))
		assert.Equal(t, []string{"NOTICE nick :\x01CLIENTINFO CLIENTINFO PING TIME\x01\r\n"},
			renderAll(t, r.ClientMessages()))
	})

	t.Run("configured queries are appended", func(t *testing.T) {
		r := NewCtcpQueryResponder(CtcpReplies{Source: "example.org/repo", Version: "listchans"})
		require.True(t, r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01CLIENTINFO\x01")))
		assert.Equal(t, []string{"NOTICE nick :\x01CLIENTINFO CLIENTINFO PING TIME SOURCE VERSION\x01\r\n"},
			renderAll(t, r.ClientMessages()))
	})
}

func TestCtcpQueryResponderUnconfigured(t *testing.T) {
	r := NewCtcpQueryResponder(CtcpReplies{})

	handled := r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01FINGER\x01"))
	assert.True(t, handled, "an unconfigured query is still consumed")
	assert.Empty(t, r.ClientMessages(), "but produces no reply")
}

func TestCtcpQueryResponderPassThrough(t *testing.T) {
	r := NewCtcpQueryResponder(CtcpReplies{Version: "listchans"})

	assert.False(t, r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :plain words")))
	assert.False(t, r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01ACTION waves\x01")))
	assert.False(t, r.HandleMessage(mustParse(t, ":nick!u@h PRIVMSG me :\x01XYZZY\x01")))
	assert.False(t, r.HandleMessage(mustParse(t, "PING :alpha")))
	assert.Empty(t, r.ClientMessages())
}

// stubResponder completes after consuming a fixed number of messages.
type stubResponder struct {
	remaining int
	pending   []ClientMessage
	label     string
}

func (s *stubResponder) HandleMessage(msg *RawMessage) bool {
	if s.IsDone() {
		return false
	}
	s.remaining--
	s.pending = append(s.pending, NewPing(s.label))
	return true
}

func (s *stubResponder) ClientMessages() []ClientMessage {
	out := s.pending
	s.pending = nil
	return out
}

func (s *stubResponder) IsDone() bool { return s.remaining <= 0 }

func TestAutoResponderSet(t *testing.T) {
	first := &stubResponder{remaining: 1, label: "first"}
	second := &stubResponder{remaining: 2, label: "second"}
	set := NewAutoResponderSet(first, second)

	msg := mustParse(t, ":irc.example.org 001 me :hi")

	assert.True(t, set.HandleMessage(msg))
	assert.Equal(t, []string{"PING :first\r\n", "PING :second\r\n"},
		renderAll(t, set.ClientMessages()), "drains concatenate in insertion order")

	// first is now done and was evicted by the drain above.
	assert.True(t, set.HandleMessage(msg))
	assert.Equal(t, []string{"PING :second\r\n"}, renderAll(t, set.ClientMessages()))

	assert.False(t, set.HandleMessage(msg), "all members done: nothing handles")
	set.ClientMessages()
	assert.True(t, set.IsDone(), "emptiness reports done")
}

func TestAutoResponderSetComposition(t *testing.T) {
	// Delivering through the set must equal delivering to each member in order.
	ping1 := NewPingResponder()
	ping2 := NewPingResponder()
	set := NewAutoResponderSet(ping1, NewCtcpQueryResponder(CtcpReplies{}))

	line := "PING :alpha"
	setHandled := set.HandleMessage(mustParse(t, line))
	soloHandled := ping2.HandleMessage(mustParse(t, line))
	assert.Equal(t, soloHandled, setHandled)
	assert.Equal(t, renderAll(t, ping2.ClientMessages()), renderAll(t, set.ClientMessages()))
}
