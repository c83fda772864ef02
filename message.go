/*
   Copyright (c) 2020, btnmasher
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

import (
	"bytes"
	"fmt"
)

// RawMessage is the untyped, validated representation of one IRC line: tags, optional
// source, a command (verb or three-digit numeric), and a ParameterList. It is produced by
// the codec and consumed (moved) into a typed Message if further parsing succeeds.
//
//	<message> = ['@' tags SPACE] [':' source SPACE] command params <crlf>
//	<command> = <letter> { <letter> } | <digit> <digit> <digit>
type RawMessage struct {
	Tags     *Tags
	Source   *Source
	Verb     string // set when the command is a verb; empty when Numeric is in use
	Numeric  int    // set (0-999) when the command is a three-digit numeric; -1 otherwise
	Params   ParameterList
}

// String constants used when rendering a RawMessage.
const (
	SPACE string = " "
	CRLF         = "\r\n"
	COLON        = ":"
	ATSIGN       = "@"
	PADNUM       = "%03d"
)

// IsNumeric reports whether this message's command is a three-digit numeric reply.
func (m *RawMessage) IsNumeric() bool {
	return m.Numeric >= 0
}

// CommandToken returns the wire form of the command: the verb, or the zero-padded numeric.
func (m *RawMessage) CommandToken() string {
	if m.IsNumeric() {
		return fmt.Sprintf(PADNUM, m.Numeric)
	}
	return m.Verb
}

// String returns the IRC-formatted string version of the message. Satisfies fmt.Stringer.
func (m *RawMessage) String() string {
	return m.Render()
}

// RenderBuffer returns the IRC-formatted byte buffer version of the message, CRLF-terminated.
func (m *RawMessage) RenderBuffer() *bytes.Buffer {
	buffer := rawMessageBufPool.New()

	if m.Tags.Len() > 0 {
		buffer.WriteString(ATSIGN)
		buffer.WriteString(m.Tags.Render())
		buffer.WriteString(SPACE)
	}

	if m.Source != nil {
		buffer.WriteString(COLON)
		buffer.WriteString(m.Source.String())
		buffer.WriteString(SPACE)
	}

	buffer.WriteString(m.CommandToken())

	for _, medial := range m.Params.Medials {
		buffer.WriteString(SPACE)
		buffer.WriteString(medial)
	}

	if m.Params.Trailing != nil {
		buffer.WriteString(SPACE)
		buffer.WriteString(COLON)
		buffer.WriteString(*m.Params.Trailing)
	}

	buffer.WriteString(CRLF)

	return buffer
}

// Render returns the IRC-formatted string version of the message.
func (m *RawMessage) Render() string {
	return m.RenderBuffer().String()
}

// Reset clears the message back to its zero value so it can be recycled through a pool.
// Satisfies pool.Resettable.
func (m *RawMessage) Reset() {
	m.Tags = nil
	m.Source = nil
	m.Verb = ""
	m.Numeric = -1
	m.Params = ParameterList{}
}

func newRawMessage() *RawMessage {
	return &RawMessage{Numeric: -1}
}
