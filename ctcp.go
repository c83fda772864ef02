/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

const ctcpDelim = '\x01'

// CtcpKind enumerates the recognised CTCP sub-commands.
type CtcpKind int

const (
	CtcpPlain CtcpKind = iota // not a CTCP message at all
	CtcpAction
	CtcpClientInfo
	CtcpDcc
	CtcpFinger
	CtcpPing
	CtcpSource
	CtcpTime
	CtcpUserInfo
	CtcpVersion
	CtcpOther
)

// CtcpMessage is a decoded CTCP sub-message, carried inside a PRIVMSG/NOTICE trailing
// parameter. Params is empty when the command token had no payload.
type CtcpMessage struct {
	Kind    CtcpKind
	Command string // upper-cased for recognised kinds, verbatim for CtcpOther, empty for CtcpPlain
	Params  string
}

var ctcpKindByCommand = map[string]CtcpKind{
	CtcpCmdAction:     CtcpAction,
	CtcpCmdClientInfo: CtcpClientInfo,
	CtcpCmdDcc:        CtcpDcc,
	CtcpCmdFinger:     CtcpFinger,
	CtcpCmdPing:       CtcpPing,
	CtcpCmdSource:     CtcpSource,
	CtcpCmdTime:       CtcpTime,
	CtcpCmdUserInfo:   CtcpUserInfo,
	CtcpCmdVersion:    CtcpVersion,
}

// ParseCtcp inspects a PRIVMSG/NOTICE trailing parameter for the CTCP 0x01 delimiter
// convention. A parameter whose first byte is not 0x01 parses to CtcpPlain; a missing
// trailing 0x01 is tolerated on input.
func ParseCtcp(trailing string) CtcpMessage {
	if len(trailing) == 0 || trailing[0] != ctcpDelim {
		return CtcpMessage{Kind: CtcpPlain, Params: trailing}
	}
	inner := trailing[1:]
	inner = strings.TrimSuffix(inner, string(ctcpDelim))

	command := inner
	params := ""
	if sp := strings.IndexByte(inner, ' '); sp >= 0 {
		command = inner[:sp]
		params = inner[sp+1:]
	}

	upperCmd := strings.ToUpper(command)
	if kind, ok := ctcpKindByCommand[upperCmd]; ok {
		return CtcpMessage{Kind: kind, Command: upperCmd, Params: params}
	}
	return CtcpMessage{Kind: CtcpOther, Command: command, Params: params}
}

// Render serialises a CtcpMessage back into a PRIVMSG/NOTICE trailing parameter, wrapping
// the command and params in 0x01 delimiters. CtcpPlain renders its Params verbatim with no
// delimiters.
func (c CtcpMessage) Render() string {
	if c.Kind == CtcpPlain {
		return c.Params
	}
	var b strings.Builder
	b.WriteByte(ctcpDelim)
	b.WriteString(c.Command)
	if c.Params != "" {
		b.WriteByte(' ')
		b.WriteString(c.Params)
	}
	b.WriteByte(ctcpDelim)
	return b.String()
}

// NewCtcpQuery builds a bare query (no payload) for the given recognised command.
func NewCtcpQuery(kind CtcpKind, command string) CtcpMessage {
	return CtcpMessage{Kind: kind, Command: command}
}
