/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "encoding/base64"

// SaslErrorKind enumerates SaslPlainFlow's single failure mode.
type SaslErrorKind int

const (
	SaslErrUnexpected SaslErrorKind = iota
)

// SaslError is returned by SaslPlainFlow when the server sends an AUTHENTICATE payload the
// flow does not expect in its current state.
type SaslError struct {
	Kind    SaslErrorKind
	Payload string
}

func (e SaslError) Error() string {
	return "irc: SASL: unexpected AUTHENTICATE payload: " + e.Payload
}

// SaslCredentials holds the PLAIN mechanism's three fields: authzid (authorization identity,
// typically empty), authcid (the account/nick being authenticated), and password.
type SaslCredentials struct {
	AuthzID  string
	AuthcID  string
	Password string
}

// encode renders the PLAIN mechanism's NUL-separated payload, base64-encoded, per RFC 4616.
func (c SaslCredentials) encode() string {
	raw := c.AuthzID + "\x00" + c.AuthcID + "\x00" + c.Password
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

type saslState int

const (
	saslStart saslState = iota
	saslAwaitingPlus
	saslGotPlus
	saslDone
)

// SaslPlainFlow is the PLAIN-mechanism sub-state-machine consumed by LoginCommand:
// Start -> AwaitingPlus (after emitting "AUTHENTICATE PLAIN") -> GotPlus (after receiving
// "AUTHENTICATE +") -> Done (after emitting the base64-encoded credentials).
type SaslPlainFlow struct {
	creds SaslCredentials
	state saslState
	err   error
}

// NewSaslPlainFlow constructs a fresh PLAIN flow for the given credentials.
func NewSaslPlainFlow(creds SaslCredentials) *SaslPlainFlow {
	return &SaslPlainFlow{creds: creds}
}

// ClientMessages drains outgoing AUTHENTICATE messages queued since the last drain.
func (f *SaslPlainFlow) ClientMessages() []ClientMessage {
	switch f.state {
	case saslStart:
		f.state = saslAwaitingPlus
		return []ClientMessage{NewAuthenticate("PLAIN")}
	case saslGotPlus:
		f.state = saslDone
		return []ClientMessage{NewAuthenticate(f.creds.encode())}
	default:
		return nil
	}
}

// HandleMessage feeds one incoming AUTHENTICATE message. Any payload other than "+" while
// awaiting it is SaslError{Unexpected} and terminates the flow.
func (f *SaslPlainFlow) HandleMessage(msg *RawMessage) bool {
	if f.state == saslDone || msg.IsNumeric() || msg.Verb != CmdAuthenticate {
		return false
	}
	payload, _ := msg.Params.Last()
	if f.state != saslAwaitingPlus || payload != "+" {
		f.err = SaslError{Kind: SaslErrUnexpected, Payload: payload}
		f.state = saslDone
		return true
	}
	f.state = saslGotPlus
	return true
}

// IsDone reports whether the flow has emitted its credentials (or failed).
func (f *SaslPlainFlow) IsDone() bool { return f.state == saslDone }

// Err returns the flow's terminal error, if HandleMessage observed an unexpected payload.
func (f *SaslPlainFlow) Err() error { return f.err }

// Failed reports whether the flow terminated via SaslError rather than completing normally.
func (f *SaslPlainFlow) Failed() bool { return f.err != nil }
