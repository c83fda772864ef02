/*
   Copyright (c) 2023, btnmasher
   All rights reserved.

   Redistribution and use in source and binary forms, with or without modification, are permitted provided that
   the following conditions are met:

   1. Redistributions of source code must retain the above copyright notice, this list of conditions and the
      following disclaimer.

   2. Redistributions in binary form must reproduce the above copyright notice, this list of conditions and
      the following disclaimer in the documentation and/or other materials provided with the distribution.

   3. Neither the name of the copyright holder nor the names of its contributors may be used to endorse or
      promote products derived from this software without specific prior written permission.

   THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED
   WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
   PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR
   ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
   TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION)
   HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
   NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
   POSSIBILITY OF SUCH DAMAGE.
*/

package ircnet

import "strings"

// ParseRawMessage tokenises one decoded IRC line (without CRLF) into a RawMessage:
// an optional "@tags " prefix, an optional ":source " prefix, a command token, and zero or
// more parameters, the last of which is trailing iff it begins with ':'.
func ParseRawMessage(line string) (*RawMessage, error) {
	rest := line

	msg := acquireRawMessage()

	if strings.HasPrefix(rest, ATSIGN) {
		sp := strings.IndexByte(rest, ' ')
		if sp < 0 {
			releaseRawMessage(msg)
			return nil, ErrNoCommand
		}
		tags, err := ParseTags(rest[1:sp])
		if err != nil {
			releaseRawMessage(msg)
			return nil, err
		}
		msg.Tags = tags
		rest = strings.TrimLeft(rest[sp+1:], " ")
	}

	if strings.HasPrefix(rest, COLON) {
		sp := strings.IndexByte(rest, ' ')
		if sp < 0 {
			releaseRawMessage(msg)
			return nil, ErrNoCommand
		}
		source, err := ParseSource(rest[1:sp])
		if err != nil {
			releaseRawMessage(msg)
			return nil, err
		}
		msg.Source = &source
		rest = strings.TrimLeft(rest[sp+1:], " ")
	}

	// Walk whitespace-delimited tokens; a token beginning with ':' terminates the list and
	// everything following it (including further spaces/colons) is captured verbatim as the
	// trailing parameter. Colons inside earlier tokens are ordinary characters.
	var tokens []string
	var trailing *string
	remaining := rest
	for {
		remaining = strings.TrimLeft(remaining, " ")
		if remaining == "" {
			break
		}
		if remaining[0] == ':' {
			t := remaining[1:]
			trailing = &t
			break
		}
		sp := strings.IndexByte(remaining, ' ')
		if sp < 0 {
			tokens = append(tokens, remaining)
			break
		}
		tokens = append(tokens, remaining[:sp])
		remaining = remaining[sp+1:]
	}

	if len(tokens) == 0 {
		releaseRawMessage(msg)
		return nil, ErrNoCommand
	}

	commandTok := tokens[0]
	paramTokens := tokens[1:]

	if isNumericToken(commandTok) {
		n := 0
		for i := 0; i < len(commandTok); i++ {
			n = n*10 + int(commandTok[i]-'0')
		}
		msg.Numeric = n
	} else {
		verb, err := NewVerb(commandTok)
		if err != nil {
			releaseRawMessage(msg)
			return nil, err
		}
		msg.Verb = verb.String()
	}

	if len(paramTokens)+boolToInt(trailing != nil) > MaxMsgParams {
		releaseRawMessage(msg)
		return nil, ErrTooManyParams
	}

	msg.Params = ParameterList{Medials: paramTokens, Trailing: trailing}

	return msg, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isNumericToken(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
