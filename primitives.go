/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

// This file implements the validated primitive string types. Every type is a thin
// wrapper over string with a total constructor: the constructor is the only gate, and a
// successfully constructed value carries no further hidden state.

// Nickname is a client nickname. It must not start with one of "$:#&~@%+" and must not
// contain NUL, CR, LF, SPACE, ',', '*', '?', '!', or '@'.
type Nickname struct {
	value string
}

func NewNickname(s string) (Nickname, error) {
	if s == "" {
		return Nickname{}, ErrEmpty
	}
	switch s[0] {
	case '$', ':', '#', '&', '~', '@', '%', '+':
		return Nickname{}, ErrBadStart
	}
	if err := checkDisallowed(s, "\x00\r\n ,*?!@"); err != nil {
		return Nickname{}, err
	}
	return Nickname{value: s}, nil
}

func (n Nickname) String() string { return n.value }

// Username is the "ident" portion of a client source triple.
type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	if s == "" {
		return Username{}, ErrEmpty
	}
	if s[0] == ':' {
		return Username{}, ErrBadStart
	}
	if err := checkDisallowed(s, "\x00\r\n @"); err != nil {
		return Username{}, err
	}
	return Username{value: s}, nil
}

func (u Username) String() string { return u.value }

// Channel is a channel name. It must start with '#' or '&'.
type Channel struct {
	value string
}

func NewChannel(s string) (Channel, error) {
	if s == "" {
		return Channel{}, ErrEmpty
	}
	if s[0] != '#' && s[0] != '&' {
		return Channel{}, ErrBadStart
	}
	if s[0] == ':' {
		return Channel{}, ErrBadStart
	}
	if err := checkDisallowed(s, "\x00\r\n \a,"); err != nil {
		return Channel{}, err
	}
	return Channel{value: s}, nil
}

func (c Channel) String() string { return c.value }

// Key is a channel key (password), used by JOIN.
type Key struct {
	value string
}

func NewKey(s string) (Key, error) {
	if err := checkDisallowed(s, "\x00\r\n,"); err != nil {
		return Key{}, err
	}
	return Key{value: s}, nil
}

func (k Key) String() string { return k.value }

// Verb is a client-originated command name: nonempty and ASCII-letters-only.
type Verb struct {
	value string
}

func NewVerb(s string) (Verb, error) {
	if s == "" {
		return Verb{}, ErrEmpty
	}
	for _, r := range s {
		if !isASCIILetter(r) {
			return Verb{}, ErrNotLetters
		}
	}
	return Verb{value: strings.ToUpper(s)}, nil
}

func (v Verb) String() string { return v.value }

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// MedialParam is a non-trailing parameter: nonempty, not starting with ':', no NUL/CR/LF/SPACE.
type MedialParam struct {
	value string
}

func NewMedialParam(s string) (MedialParam, error) {
	if s == "" {
		return MedialParam{}, ErrEmpty
	}
	if s[0] == ':' {
		return MedialParam{}, ErrBadStart
	}
	if err := checkDisallowed(s, "\x00\r\n "); err != nil {
		return MedialParam{}, err
	}
	return MedialParam{value: s}, nil
}

func (p MedialParam) String() string { return p.value }

// TrailingParam is the final parameter of a message: may be empty, may contain spaces/colons,
// but never NUL/CR/LF.
type TrailingParam struct {
	value string
}

func NewTrailingParam(s string) (TrailingParam, error) {
	if err := checkDisallowed(s, "\x00\r\n"); err != nil {
		return TrailingParam{}, err
	}
	return TrailingParam{value: s}, nil
}

func (p TrailingParam) String() string { return p.value }

// IsTrailing reports whether s must be serialised in the trailing position: it is empty,
// begins with ':', or contains a space.
func IsTrailing(s string) bool {
	return s == "" || s[0] == ':' || strings.ContainsRune(s, ' ')
}

// CtcpCommand is the command token of a CTCP message (e.g. "VERSION").
type CtcpCommand struct {
	value string
}

func NewCtcpCommand(s string) (CtcpCommand, error) {
	if s == "" {
		return CtcpCommand{}, ErrEmpty
	}
	if err := checkDisallowed(s, "\x00\x01\r\n "); err != nil {
		return CtcpCommand{}, err
	}
	return CtcpCommand{value: strings.ToUpper(s)}, nil
}

func (c CtcpCommand) String() string { return c.value }

// CtcpParams is the optional argument payload following a CTCP command token.
type CtcpParams struct {
	value string
}

func NewCtcpParams(s string) (CtcpParams, error) {
	if s == "" {
		return CtcpParams{}, ErrEmpty
	}
	if err := checkDisallowed(s, "\x00\x01\r\n"); err != nil {
		return CtcpParams{}, err
	}
	return CtcpParams{value: s}, nil
}

func (c CtcpParams) String() string { return c.value }

// ModeString is a mode-change token such as "+ov" or "-b".
type ModeString struct {
	value string
}

func NewModeString(s string) (ModeString, error) {
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return ModeString{}, ErrBadModeString
	}
	for _, r := range s[1:] {
		if !isASCIILetter(r) {
			return ModeString{}, ErrBadModeString
		}
	}
	return ModeString{value: s}, nil
}

func (m ModeString) String() string { return m.value }

// TagKey is the key half of an IRCv3 message-tag entry.
type TagKey struct {
	value string
}

func NewTagKey(s string) (TagKey, error) {
	if s == "" {
		return TagKey{}, ErrEmpty
	}
	if err := checkDisallowed(s, "\x00\r\n ;="); err != nil {
		return TagKey{}, err
	}
	return TagKey{value: s}, nil
}

func (k TagKey) String() string { return k.value }

// TagValue is the raw (unescaped) value half of an IRCv3 message-tag entry. The wire escape
// scheme (distinct from ISUPPORT's hex escapes) is implemented by EscapeTagValue/UnescapeTagValue
// in isupport.go's neighbor, tags.go.
type TagValue struct {
	value string
}

func NewTagValue(s string) (TagValue, error) {
	if err := checkDisallowed(s, "\x00\r\n ;"); err != nil {
		return TagValue{}, err
	}
	return TagValue{value: s}, nil
}

func (v TagValue) String() string { return v.value }

func checkDisallowed(s string, disallowed string) error {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(disallowed, s[i]) >= 0 {
			switch s[i] {
			case '\x00':
				return ErrContainsNUL
			case '\r':
				return ErrContainsCR
			case '\n':
				return ErrContainsLF
			case ' ':
				return ErrContainsSpace
			case '\a':
				return ErrContainsBell
			case '\x01':
				return ErrContainsCtrlA
			default:
				return ErrBadCharacter
			}
		}
	}
	return nil
}
