/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

// ChannelMembership is a membership level a user can hold in a channel, as advertised by
// NAMES/WHO prefixes and granted by the matching channel mode letter.
type ChannelMembership int

const (
	MembershipFounder ChannelMembership = iota
	MembershipProtected
	MembershipOperator
	MembershipHalfOperator
	MembershipVoiced
)

// Prefix returns the status prefix character for this membership level.
func (m ChannelMembership) Prefix() byte {
	switch m {
	case MembershipFounder:
		return '~'
	case MembershipProtected:
		return '&'
	case MembershipOperator:
		return '@'
	case MembershipHalfOperator:
		return '%'
	default:
		return '+'
	}
}

// Mode returns the channel mode letter that grants this membership level.
func (m ChannelMembership) Mode() byte {
	switch m {
	case MembershipFounder:
		return 'q'
	case MembershipProtected:
		return 'a'
	case MembershipOperator:
		return 'o'
	case MembershipHalfOperator:
		return 'h'
	default:
		return 'v'
	}
}

// MembershipFromPrefix maps a status prefix character to its membership level.
func MembershipFromPrefix(c byte) (ChannelMembership, bool) {
	switch c {
	case '~':
		return MembershipFounder, true
	case '&':
		return MembershipProtected, true
	case '@':
		return MembershipOperator, true
	case '%':
		return MembershipHalfOperator, true
	case '+':
		return MembershipVoiced, true
	default:
		return 0, false
	}
}

// MembershipFromMode maps a channel mode letter to its membership level.
func MembershipFromMode(c byte) (ChannelMembership, bool) {
	switch c {
	case 'q':
		return MembershipFounder, true
	case 'a':
		return MembershipProtected, true
	case 'o':
		return MembershipOperator, true
	case 'h':
		return MembershipHalfOperator, true
	case 'v':
		return MembershipVoiced, true
	default:
		return 0, false
	}
}

// WHO flag characters for the here/away state.
const (
	whoIsAway  = 'G'
	whoNotAway = 'H'
)

// WhoFlags is the decoded "flags" field of RPL_WHOREPLY: the H/G here-or-away marker, an
// optional '*' server-operator marker, an optional channel-membership prefix, and whatever
// server-specific flag characters remain.
type WhoFlags struct {
	IsAway        bool
	IsOp          bool
	HasMembership bool
	Membership    ChannelMembership
	Flags         string // residual server-specific flag characters, verbatim
}

// ParseWhoFlags decodes a WHO flags token. The leading H/G marker is mandatory; everything
// after the optional '*' and membership prefix is kept as opaque server-specific flags.
func ParseWhoFlags(s string) (WhoFlags, error) {
	var out WhoFlags
	if s == "" {
		return WhoFlags{}, ErrNoWhoAwayFlag
	}
	switch s[0] {
	case whoIsAway:
		out.IsAway = true
	case whoNotAway:
	default:
		return WhoFlags{}, ErrNoWhoAwayFlag
	}
	s = s[1:]
	if strings.HasPrefix(s, "*") {
		out.IsOp = true
		s = s[1:]
	}
	if s != "" {
		if m, ok := MembershipFromPrefix(s[0]); ok {
			out.HasMembership = true
			out.Membership = m
			s = s[1:]
		}
	}
	out.Flags = s
	return out, nil
}

// String renders the flags token the way it appears on the wire.
func (f WhoFlags) String() string {
	var b strings.Builder
	if f.IsAway {
		b.WriteByte(whoIsAway)
	} else {
		b.WriteByte(whoNotAway)
	}
	if f.IsOp {
		b.WriteByte('*')
	}
	if f.HasMembership {
		b.WriteByte(f.Membership.Prefix())
	}
	b.WriteString(f.Flags)
	return b.String()
}

// USERHOST away markers, distinct from WHO's H/G pair.
const (
	userhostIsAway  = '-'
	userhostNotAway = '+'
)

// UserhostEntry is one decoded "nickname[*]=<+|->hostname" element of RPL_USERHOST. On some
// networks the hostname portion is actually [~]user@host; it is kept verbatim.
type UserhostEntry struct {
	Nickname Nickname
	IsOp     bool
	IsAway   bool
	Hostname string
}

// ParseUserhostEntry decodes one space-delimited element of a USERHOST reply.
func ParseUserhostEntry(s string) (UserhostEntry, error) {
	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return UserhostEntry{}, ErrNoUserhostEq
	}
	left, right := s[:eq], s[eq+1:]

	var out UserhostEntry
	if strings.HasSuffix(left, "*") {
		out.IsOp = true
		left = left[:len(left)-1]
	}
	nick, err := NewNickname(left)
	if err != nil {
		return UserhostEntry{}, err
	}
	out.Nickname = nick

	if right == "" {
		return UserhostEntry{}, ErrNoUserhostAwayFlag
	}
	switch right[0] {
	case userhostIsAway:
		out.IsAway = true
	case userhostNotAway:
	default:
		return UserhostEntry{}, ErrNoUserhostAwayFlag
	}
	out.Hostname = right[1:]
	return out, nil
}

// String renders the entry the way it appears on the wire.
func (e UserhostEntry) String() string {
	var b strings.Builder
	b.WriteString(e.Nickname.String())
	if e.IsOp {
		b.WriteByte('*')
	}
	b.WriteByte('=')
	if e.IsAway {
		b.WriteByte(userhostIsAway)
	} else {
		b.WriteByte(userhostNotAway)
	}
	b.WriteString(e.Hostname)
	return b.String()
}

// ParseUserhostEntries decodes the space-separated reply list of RPL_USERHOST. Entries that
// fail to decode are skipped rather than failing the whole reply, since servers may append
// dialect-specific elements.
func ParseUserhostEntries(s string) []UserhostEntry {
	fields := strings.Fields(s)
	out := make([]UserhostEntry, 0, len(fields))
	for _, f := range fields {
		if e, err := ParseUserhostEntry(f); err == nil {
			out = append(out, e)
		}
	}
	return out
}
