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

func TestLineCodecFraming(t *testing.T) {
	c := NewLineCodec(MaxLineLength)
	c.Push([]byte("PING :alpha\r\nPONG :beta\nPARTIAL"))

	line, ok, err := c.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PING :alpha", string(line))

	line, ok, err = c.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PONG :beta", string(line), "bare LF terminates a frame too")

	_, ok, err = c.Next()
	require.NoError(t, err)
	assert.False(t, ok, "incomplete frame needs more bytes")

	c.Push([]byte(" DATA\r\n"))
	line, ok, err = c.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PARTIAL DATA", string(line))
}

func TestLineCodecMaxLengthDiscard(t *testing.T) {
	c := NewLineCodec(MaxLineLength)

	c.Push([]byte(strings.Repeat("a", 600)))
	_, ok, err := c.Next()
	assert.False(t, ok)
	var codecErr MessageCodecError
	require.ErrorAs(t, err, &codecErr)
	assert.Equal(t, CodecErrMaxLineLengthExceeded, codecErr.Kind)

	// Everything up to and including the next LF is dropped; the first complete line
	// thereafter frames normally.
	c.Push([]byte("bbbb\nPING :alpha\r\n"))
	line, ok, err := c.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PING :alpha", string(line))
}

func TestLineCodecFinalFrame(t *testing.T) {
	t.Run("trailing bytes become a final frame", func(t *testing.T) {
		c := NewLineCodec(MaxLineLength)
		c.Push([]byte("QUIT"))
		_, ok, err := c.Next()
		require.NoError(t, err)
		require.False(t, ok)

		line, ok := c.FinalFrame()
		require.True(t, ok)
		assert.Equal(t, "QUIT", string(line))
	})

	t.Run("a lone CR is discarded", func(t *testing.T) {
		c := NewLineCodec(MaxLineLength)
		c.Push([]byte("\r"))
		_, _, err := c.Next()
		require.NoError(t, err)

		_, ok := c.FinalFrame()
		assert.False(t, ok)
	})

	t.Run("empty buffer has no final frame", func(t *testing.T) {
		c := NewLineCodec(MaxLineLength)
		_, ok := c.FinalFrame()
		assert.False(t, ok)
	})
}

func TestDecodeLine(t *testing.T) {
	assert.Equal(t, "héllo", DecodeLine([]byte("héllo")), "valid UTF-8 passes through")

	// 0xFF is not valid UTF-8; each byte maps to the code point of the same value.
	assert.Equal(t, "ÿAé", DecodeLine([]byte{0xFF, 'A', 0xE9}))
}

func TestMessageCodecNext(t *testing.T) {
	c := NewMessageCodec(MaxLineLength)
	c.Push([]byte(":irc.example.org 001 me :Welcome\r\nPING :alpha\r\n"))

	msg, ok, err := c.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, msg.IsNumeric())
	assert.Equal(t, 1, msg.Numeric)

	msg, ok, err = c.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, CmdPing, msg.Verb)

	_, ok, err = c.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMessageCodecParseError(t *testing.T) {
	c := NewMessageCodec(MaxLineLength)
	c.Push([]byte("PRIV@MSG #chan :hello\r\nPING :ok\r\n"))

	_, ok, err := c.Next()
	assert.False(t, ok)
	var codecErr MessageCodecError
	require.ErrorAs(t, err, &codecErr)
	assert.Equal(t, CodecErrParse, codecErr.Kind)

	// The bad frame was consumed; the connection keeps framing.
	msg, ok, err := c.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, CmdPing, msg.Verb)
}
