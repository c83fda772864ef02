/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "time"

// LoginTimeout bounds how long LoginCommand waits between registration replies.
const LoginTimeout = 30 * time.Second

// LoginParams carries the registration parameters a caller supplies to LoginCommand.
type LoginParams struct {
	Nickname Nickname
	Username Username
	Realname string
	Password string           // optional; empty means no PASS is sent
	Sasl     *SaslCredentials // optional; non-nil enables SASL PLAIN via CAP REQ sasl
}

// LoginOutput is the successful result of a LOGIN command.
type LoginOutput struct {
	Welcome  string
	YourHost string
	Created  string
	MyInfo   []string
	ISupport *ISupport
}

// LoginErrorKind enumerates LoginCommand's typed failure modes.
type LoginErrorKind int

const (
	LoginErrNicknameInUse LoginErrorKind = iota
	LoginErrErroneousNickname
	LoginErrPasswordMismatch
	LoginErrSasl
	LoginErrServerError
	LoginErrUnexpectedNumeric
	LoginErrTimeout
)

// LoginError is the typed error LoginCommand.Output returns on failure.
type LoginError struct {
	Kind    LoginErrorKind
	Message string
	Code    int
}

func (e LoginError) Error() string {
	switch e.Kind {
	case LoginErrNicknameInUse:
		return "irc: LOGIN: nickname in use: " + e.Message
	case LoginErrErroneousNickname:
		return "irc: LOGIN: erroneous nickname: " + e.Message
	case LoginErrPasswordMismatch:
		return "irc: LOGIN: password mismatch: " + e.Message
	case LoginErrSasl:
		return "irc: LOGIN: SASL failed: " + e.Message
	case LoginErrServerError:
		return "irc: LOGIN: server error: " + e.Message
	case LoginErrTimeout:
		return "irc: LOGIN: timed out waiting for a reply"
	default:
		return "irc: LOGIN: unexpected numeric reply"
	}
}

type loginState int

const (
	loginCapNegotiating loginState = iota
	loginSaslInFlight
	loginRegistering
	loginAwaitingWelcome
	loginDone
)

// LoginCommand orchestrates CAP LS -> optional SASL AUTHENTICATE -> PASS -> NICK -> USER ->
// WELCOME/ISUPPORT.
type LoginCommand struct {
	params  LoginParams
	state   loginState
	sasl    *SaslPlainFlow
	out     LoginOutput
	err     error
	pending     []ClientMessage
	capSent     bool
	welcomeSeen bool
}

// NewLoginCommand constructs a LOGIN command for the given registration parameters.
func NewLoginCommand(params LoginParams) *LoginCommand {
	c := &LoginCommand{params: params}
	c.out.ISupport = NewISupport()
	return c
}

func (c *LoginCommand) ClientMessages() []ClientMessage {
	out := c.pending
	c.pending = nil

	switch c.state {
	case loginCapNegotiating:
		if !c.capSent {
			c.capSent = true
			out = append(out, NewCap(CapLS, "302"))
		}

	case loginSaslInFlight:
		if c.sasl == nil {
			break
		}
		out = append(out, c.sasl.ClientMessages()...)
		if !c.sasl.IsDone() {
			break
		}
		if c.sasl.Failed() {
			c.finish(LoginError{Kind: LoginErrSasl, Message: c.sasl.Err().Error()})
			break
		}
		out = append(out, NewCap(CapEnd))
		c.state = loginRegistering
		out = append(out, c.registrationMessages()...)
		c.state = loginAwaitingWelcome

	case loginRegistering:
		out = append(out, c.registrationMessages()...)
		c.state = loginAwaitingWelcome
	}

	return out
}

// registrationMessages emits the PASS/NICK/USER sequence exactly once, after CAP
// negotiation has concluded.
func (c *LoginCommand) registrationMessages() []ClientMessage {
	var out []ClientMessage
	if c.params.Password != "" {
		out = append(out, NewPass(c.params.Password))
	}
	out = append(out, NewNick(c.params.Nickname))
	out = append(out, NewUser(c.params.Username, "0", c.params.Realname))
	return out
}

func (c *LoginCommand) HandleMessage(msg *RawMessage) bool {
	if c.state == loginDone {
		return false
	}

	if !msg.IsNumeric() {
		switch msg.Verb {
		case CmdError:
			text, _ := msg.Params.Last()
			c.finish(LoginError{Kind: LoginErrServerError, Message: text})
			return true
		case CmdCap:
			return c.handleCap(msg)
		case CmdAuthenticate:
			if c.state == loginSaslInFlight && c.sasl != nil {
				return c.sasl.HandleMessage(msg)
			}
			return false
		default:
			return false
		}
	}

	reply, err := ReplyFromParams(msg.Numeric, msg.Params)
	if err != nil {
		return false
	}

	if c.state != loginAwaitingWelcome {
		return false
	}
	return c.handleRegistrationReply(reply)
}

func (c *LoginCommand) handleCap(msg *RawMessage) bool {
	if c.state != loginCapNegotiating {
		return false
	}
	// Server-originated CAP lines carry the addressed client ("*" before registration)
	// ahead of the subcommand: "CAP * LS :sasl multi-prefix".
	all := msg.Params.All()
	if len(all) < 2 {
		return false
	}
	switch all[1] {
	case CapLS:
		if c.params.Sasl != nil {
			c.pending = append(c.pending, NewCap(CapReq, "sasl"))
		} else {
			c.pending = append(c.pending, NewCap(CapEnd))
			c.state = loginRegistering
		}
		return true
	case CapAck:
		if c.params.Sasl == nil {
			c.pending = append(c.pending, NewCap(CapEnd))
			c.state = loginRegistering
			return true
		}
		c.sasl = NewSaslPlainFlow(*c.params.Sasl)
		c.state = loginSaslInFlight
		return true
	case CapNak:
		// Server declined SASL; continue registering without it.
		c.pending = append(c.pending, NewCap(CapEnd))
		c.state = loginRegistering
		return true
	default:
		return false
	}
}

// handleRegistrationReply processes every numeric reply from the moment PASS/NICK/USER are
// sent. Before WELCOME arrives, a handful of registration errors are fatal and everything
// else passes through un-consumed. Once WELCOME has arrived, YourHost/Created/MyInfo/
// ISUPPORT are collected until the first reply outside that set, which finalizes LOGIN
// without being consumed, so the caller still observes it (e.g. MOTD).
func (c *LoginCommand) handleRegistrationReply(reply Reply) bool {
	switch r := reply.(type) {
	case Welcome:
		c.out.Welcome = r.Text
		c.welcomeSeen = true
		return true
	case YourHost:
		if !c.welcomeSeen {
			return false
		}
		c.out.YourHost = r.Text
		return true
	case Created:
		if !c.welcomeSeen {
			return false
		}
		c.out.Created = r.Text
		return true
	case MyInfo:
		if !c.welcomeSeen {
			return false
		}
		c.out.MyInfo = r.Fields
		return true
	case ISupportReply:
		if !c.welcomeSeen {
			return false
		}
		tokens := make([]string, 0, len(r.Tokens))
		for _, tok := range r.Tokens {
			tokens = append(tokens, tok.Token())
		}
		_ = c.out.ISupport.Apply(tokens)
		return true
	case Unknown:
		switch r.Code {
		case int(ReplyNicknameInUse):
			c.finish(LoginError{Kind: LoginErrNicknameInUse, Message: lastParam(r.Parameters()), Code: r.Code})
			return true
		case int(ReplyErroneusNickname):
			c.finish(LoginError{Kind: LoginErrErroneousNickname, Message: lastParam(r.Parameters()), Code: r.Code})
			return true
		case int(ReplyPasswordMistmatch):
			c.finish(LoginError{Kind: LoginErrPasswordMismatch, Message: lastParam(r.Parameters()), Code: r.Code})
			return true
		default:
			if c.welcomeSeen {
				c.finish(nil)
			}
			return false
		}
	default:
		if c.welcomeSeen {
			c.finish(nil)
		}
		return false
	}
}

func lastParam(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return params[len(params)-1]
}

func (c *LoginCommand) finish(err error) {
	c.state = loginDone
	c.err = err
}

func (c *LoginCommand) GetTimeout() *time.Duration {
	if c.state == loginDone {
		return nil
	}
	d := LoginTimeout
	return &d
}

func (c *LoginCommand) HandleTimeout() {
	if c.state == loginDone {
		return
	}
	c.finish(LoginError{Kind: LoginErrTimeout})
}

func (c *LoginCommand) IsDone() bool { return c.state == loginDone }

// Output returns the accumulated LoginOutput or the fatal LoginError. Calling this before
// IsDone is an API-contract violation.
func (c *LoginCommand) Output() (LoginOutput, error) {
	if c.state != loginDone {
		errNotDonePanic()
	}
	return c.out, c.err
}

var _ Command = (*LoginCommand)(nil)
