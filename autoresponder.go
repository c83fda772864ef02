/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "time"

// AutoResponder is the passive-reactor capability set: observe one incoming
// message, optionally enqueue outgoing replies, and report whether the message was
// semantically consumed. Unlike Command, an AutoResponder has no timeout and (for the
// responders in this package) never completes.
type AutoResponder interface {
	// HandleMessage observes one incoming RawMessage and reports whether it was consumed.
	HandleMessage(msg *RawMessage) bool
	// ClientMessages drains every outgoing message queued since the last drain.
	ClientMessages() []ClientMessage
	// IsDone reports whether this responder is GC-eligible; once true it must be a no-op.
	IsDone() bool
}

// PingResponder answers server PINGs with a matching PONG. It never completes.
type PingResponder struct {
	pending []ClientMessage
}

// NewPingResponder constructs a PingResponder.
func NewPingResponder() *PingResponder {
	return &PingResponder{}
}

func (r *PingResponder) HandleMessage(msg *RawMessage) bool {
	if msg.IsNumeric() || msg.Verb != CmdPing {
		return false
	}
	payload, _ := msg.Params.Last()
	r.pending = append(r.pending, NewPong(payload))
	return true
}

func (r *PingResponder) ClientMessages() []ClientMessage {
	out := r.pending
	r.pending = nil
	return out
}

func (r *PingResponder) IsDone() bool { return false }

// CtcpReplies configures the static CTCP query replies a CtcpQueryResponder offers. A zero
// value (empty string/false) leaves the corresponding query unconfigured: the query is still
// consumed, but produces no reply.
type CtcpReplies struct {
	Finger   string
	Source   string
	UserInfo string
	Version  string
	UseUTC   bool
	// Now, if non-nil, is consulted in place of time.Now for the TIME reply, so tests can
	// be deterministic.
	Now func() time.Time
}

// CtcpQueryResponder answers CTCP queries embedded in PRIVMSG trailing parameters with a
// NOTICE carrying the matching CTCP reply. It never completes.
type CtcpQueryResponder struct {
	cfg     CtcpReplies
	pending []ClientMessage
}

// NewCtcpQueryResponder constructs a CtcpQueryResponder with the given static replies.
func NewCtcpQueryResponder(cfg CtcpReplies) *CtcpQueryResponder {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &CtcpQueryResponder{cfg: cfg}
}

func (r *CtcpQueryResponder) HandleMessage(msg *RawMessage) bool {
	if msg.IsNumeric() || msg.Verb != CmdPrivMsg {
		return false
	}
	trailing, ok := msg.Params.Last()
	if !ok || msg.Source == nil {
		return false
	}
	ctcp := ParseCtcp(trailing)
	if ctcp.Kind == CtcpPlain || ctcp.Kind == CtcpOther || ctcp.Kind == CtcpAction || ctcp.Kind == CtcpDcc {
		return false
	}
	if ctcp.Kind == CtcpPing {
		// A PING query must echo its payload back verbatim; a payload-less PING has
		// nothing to echo and is treated as unrecognised.
		if ctcp.Params == "" {
			return false
		}
	}

	reply, ok := r.reply(ctcp)
	if ok {
		notice := NewNotice([]MsgTarget{{Kind: MsgTargetNickname, Nick: msg.Source.Nick}}, reply.Render())
		r.pending = append(r.pending, notice)
	}
	return true
}

// reply builds the CTCP reply for a recognised query, reporting ok=false when the query's
// reply is unconfigured (still handled, but silent).
func (r *CtcpQueryResponder) reply(query CtcpMessage) (CtcpMessage, bool) {
	switch query.Kind {
	case CtcpClientInfo:
		return CtcpMessage{Kind: CtcpClientInfo, Command: CtcpCmdClientInfo, Params: r.clientInfoList()}, true
	case CtcpPing:
		return CtcpMessage{Kind: CtcpPing, Command: CtcpCmdPing, Params: query.Params}, true
	case CtcpTime:
		now := r.cfg.Now()
		if r.cfg.UseUTC {
			now = now.UTC()
		}
		return CtcpMessage{Kind: CtcpTime, Command: CtcpCmdTime, Params: now.Format(time.RFC1123Z)}, true
	case CtcpFinger:
		if r.cfg.Finger == "" {
			return CtcpMessage{}, false
		}
		return CtcpMessage{Kind: CtcpFinger, Command: CtcpCmdFinger, Params: r.cfg.Finger}, true
	case CtcpSource:
		if r.cfg.Source == "" {
			return CtcpMessage{}, false
		}
		return CtcpMessage{Kind: CtcpSource, Command: CtcpCmdSource, Params: r.cfg.Source}, true
	case CtcpUserInfo:
		if r.cfg.UserInfo == "" {
			return CtcpMessage{}, false
		}
		return CtcpMessage{Kind: CtcpUserInfo, Command: CtcpCmdUserInfo, Params: r.cfg.UserInfo}, true
	case CtcpVersion:
		if r.cfg.Version == "" {
			return CtcpMessage{}, false
		}
		return CtcpMessage{Kind: CtcpVersion, Command: CtcpCmdVersion, Params: r.cfg.Version}, true
	default:
		return CtcpMessage{}, false
	}
}

// clientInfoList lists the queries this responder supports: CLIENTINFO, PING, and TIME are
// always present; FINGER/SOURCE/USERINFO/VERSION are appended only when configured.
func (r *CtcpQueryResponder) clientInfoList() string {
	out := CtcpCmdClientInfo + " " + CtcpCmdPing + " " + CtcpCmdTime
	if r.cfg.Finger != "" {
		out += " " + CtcpCmdFinger
	}
	if r.cfg.Source != "" {
		out += " " + CtcpCmdSource
	}
	if r.cfg.UserInfo != "" {
		out += " " + CtcpCmdUserInfo
	}
	if r.cfg.Version != "" {
		out += " " + CtcpCmdVersion
	}
	return out
}

func (r *CtcpQueryResponder) ClientMessages() []ClientMessage {
	out := r.pending
	r.pending = nil
	return out
}

func (r *CtcpQueryResponder) IsDone() bool { return false }

// AutoResponderSet is an ordered, heterogeneous composition of AutoResponders.
// HandleMessage delivers to every member in insertion order and returns the OR of their
// individual results; ClientMessages concatenates each member's drain in insertion order,
// then evicts members whose IsDone is now true; IsDone reports set emptiness.
type AutoResponderSet struct {
	members []AutoResponder
}

// NewAutoResponderSet constructs an AutoResponderSet from zero or more responders, preserving
// the order given.
func NewAutoResponderSet(responders ...AutoResponder) *AutoResponderSet {
	return &AutoResponderSet{members: append([]AutoResponder{}, responders...)}
}

// Add appends a responder to the set.
func (s *AutoResponderSet) Add(r AutoResponder) {
	s.members = append(s.members, r)
}

func (s *AutoResponderSet) HandleMessage(msg *RawMessage) bool {
	handled := false
	for _, m := range s.members {
		if m.HandleMessage(msg) {
			handled = true
		}
	}
	return handled
}

func (s *AutoResponderSet) ClientMessages() []ClientMessage {
	var out []ClientMessage
	for _, m := range s.members {
		out = append(out, m.ClientMessages()...)
	}
	kept := s.members[:0]
	for _, m := range s.members {
		if !m.IsDone() {
			kept = append(kept, m)
		}
	}
	s.members = kept
	return out
}

func (s *AutoResponderSet) IsDone() bool {
	return len(s.members) == 0
}
