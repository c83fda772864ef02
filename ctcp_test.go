/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCtcp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     CtcpKind
		command  string
		params   string
	}{
		{"plain text", "just chatting", CtcpPlain, "", "just chatting"},
		{"empty text", "", CtcpPlain, "", ""},
		{"bare version query", "\x01VERSION\x01", CtcpVersion, "VERSION", ""},
		{"missing closing delimiter tolerated", "\x01VERSION", CtcpVersion, "VERSION", ""},
		{"action with payload", "\x01ACTION waves hello\x01", CtcpAction, "ACTION", "waves hello"},
		{"ping with payload", "\x01PING 12345\x01", CtcpPing, "PING", "12345"},
		{"lowercase command recognised", "\x01version\x01", CtcpVersion, "VERSION", ""},
		{"unrecognised command", "\x01XYZZY magic\x01", CtcpOther, "XYZZY", "magic"},
		{"dcc", "\x01DCC CHAT chat 1234 5678\x01", CtcpDcc, "DCC", "CHAT chat 1234 5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ParseCtcp(tt.input)
			assert.Equal(t, tt.kind, msg.Kind)
			assert.Equal(t, tt.command, msg.Command)
			assert.Equal(t, tt.params, msg.Params)
		})
	}
}

func TestCtcpRender(t *testing.T) {
	assert.Equal(t, "\x01VERSION listchans\x01",
		CtcpMessage{Kind: CtcpVersion, Command: CtcpCmdVersion, Params: "listchans"}.Render())
	assert.Equal(t, "\x01CLIENTINFO\x01",
		CtcpMessage{Kind: CtcpClientInfo, Command: CtcpCmdClientInfo}.Render())
	assert.Equal(t, "plain words",
		CtcpMessage{Kind: CtcpPlain, Params: "plain words"}.Render())
}

func TestCtcpRoundTrip(t *testing.T) {
	inputs := []string{
		"\x01ACTION waves hello\x01",
		"\x01PING 12345\x01",
		"\x01XYZZY magic word\x01",
		"ordinary message",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, ParseCtcp(in).Render())
		})
	}
}
