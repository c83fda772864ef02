/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "valid message",
			input:    "PRIVMSG #chan :I am the client",
			expected: nil,
		},
		{
			name:     "valid numeric",
			input:    ":irc.someserver.net 001 nick1 :Welcome to the server",
			expected: nil,
		},
		{
			name:     "too many parameters",
			input:    "PRIVMSG 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 :I am the client",
			expected: ErrTooManyParams,
		},
		{
			name:     "empty line",
			input:    "",
			expected: ErrNoCommand,
		},
		{
			name:     "source but no command",
			input:    ":irc.someserver.net",
			expected: ErrNoCommand,
		},
		{
			name:     "non-letter verb",
			input:    "PRIV@MSG #chan :hello",
			expected: ErrNotLetters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRawMessage(tt.input)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestParseRawMessageFields(t *testing.T) {
	msg := mustParse(t, ":nick1!someuser@irc.somehost.org PRIVMSG #chan extra :hello  there")

	require.NotNil(t, msg.Source)
	assert.False(t, msg.Source.IsServer)
	assert.Equal(t, "nick1", msg.Source.Nick.String())
	assert.Equal(t, "someuser", msg.Source.User)
	assert.Equal(t, "irc.somehost.org", msg.Source.Host)

	assert.False(t, msg.IsNumeric())
	assert.Equal(t, CmdPrivMsg, msg.Verb)
	assert.Equal(t, []string{"#chan", "extra"}, msg.Params.Medials)
	require.NotNil(t, msg.Params.Trailing)
	assert.Equal(t, "hello  there", *msg.Params.Trailing)
}

func TestParseRawMessageNumeric(t *testing.T) {
	msg := mustParse(t, ":irc.someserver.net 451 * :You have not registered")

	assert.True(t, msg.IsNumeric())
	assert.Equal(t, 451, msg.Numeric)
	require.NotNil(t, msg.Source)
	assert.True(t, msg.Source.IsServer)
	assert.Equal(t, []string{"*"}, msg.Params.Medials)
}

func TestParseRawMessageTrailingEdgeCases(t *testing.T) {
	t.Run("empty trailing", func(t *testing.T) {
		msg := mustParse(t, "TOPIC #chan :")
		require.NotNil(t, msg.Params.Trailing)
		assert.Equal(t, "", *msg.Params.Trailing)
	})

	t.Run("trailing with further colons", func(t *testing.T) {
		msg := mustParse(t, "PRIVMSG #chan ::-) see: above")
		require.NotNil(t, msg.Params.Trailing)
		assert.Equal(t, ":-) see: above", *msg.Params.Trailing)
	})

	t.Run("colon inside a medial is ordinary", func(t *testing.T) {
		msg := mustParse(t, "PRIVMSG a:b :text")
		assert.Equal(t, []string{"a:b"}, msg.Params.Medials)
	})

	t.Run("no trailing at all", func(t *testing.T) {
		msg := mustParse(t, "JOIN #chan")
		assert.Nil(t, msg.Params.Trailing)
	})
}

func TestParseRawMessageTags(t *testing.T) {
	msg := mustParse(t, `@time=12:30;+draft/reply=abc\sdef;flag PRIVMSG #chan :hi`)

	require.NotNil(t, msg.Tags)
	assert.Equal(t, []string{"time", "+draft/reply", "flag"}, msg.Tags.Keys())

	v, ok := msg.Tags.Get("time")
	assert.True(t, ok)
	assert.Equal(t, "12:30", v)

	v, ok = msg.Tags.Get("+draft/reply")
	assert.True(t, ok)
	assert.Equal(t, "abc def", v)

	v, ok = msg.Tags.Get("flag")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

// Round-tripping a parsed line through Render must reproduce it byte for byte, tag order
// included.
func TestParseRenderRoundTrip(t *testing.T) {
	lines := []string{
		"PING :alpha",
		"PONG :alpha",
		":irc.someserver.net 001 nick1 :Welcome to the server",
		":nick1!u@h PRIVMSG #chan :hello there",
		"@aaa=one;zzz;mmm=two :irc.someserver.net PRIVMSG #chan :tagged",
		"MODE #chan +o nick1",
		"TOPIC #chan :",
		":irc.someserver.net 322 me #a 3 :hello",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			msg := mustParse(t, line)
			assert.Equal(t, line+CRLF, msg.Render())
		})
	}
}

func TestParseRawMessageLongTrailing(t *testing.T) {
	body := strings.Repeat("x", 400)
	msg := mustParse(t, "PRIVMSG #chan :"+body)
	require.NotNil(t, msg.Params.Trailing)
	assert.Equal(t, body, *msg.Params.Trailing)
}
