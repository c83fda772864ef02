/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

// Source is the optional prefix of an IRC message: either a server hostname, or a client
// triple (nickname[!username][@host]).
type Source struct {
	ServerHost string // set when IsServer is true
	Nick       Nickname
	User       string // optional; empty means absent
	Host       string // optional; empty means absent
	IsServer   bool
}

// NewServerSource builds a Source representing a server hostname prefix.
func NewServerSource(host string) Source {
	return Source{ServerHost: host, IsServer: true}
}

// NewClientSource builds a Source representing a client triple prefix.
func NewClientSource(nick Nickname, user, host string) Source {
	return Source{Nick: nick, User: user, Host: host}
}

// String renders the source the way it appears on the wire, without a leading ':'.
func (s Source) String() string {
	if s.IsServer {
		return s.ServerHost
	}
	var b strings.Builder
	b.WriteString(s.Nick.String())
	if s.User != "" {
		b.WriteByte('!')
		b.WriteString(s.User)
	}
	if s.Host != "" {
		b.WriteByte('@')
		b.WriteString(s.Host)
	}
	return b.String()
}

// ParseSource parses the portion of an IRC line following ':' and preceding the next SPACE
// (neither included). A string containing '!' or '@' is treated as a client triple;
// otherwise it is treated as a server hostname.
func ParseSource(s string) (Source, error) {
	if !strings.ContainsAny(s, "!@") {
		return NewServerSource(s), nil
	}
	nickPart := s
	user := ""
	host := ""
	if idx := strings.IndexByte(nickPart, '@'); idx >= 0 {
		host = nickPart[idx+1:]
		nickPart = nickPart[:idx]
	}
	if idx := strings.IndexByte(nickPart, '!'); idx >= 0 {
		user = nickPart[idx+1:]
		nickPart = nickPart[:idx]
	}
	nick, err := NewNickname(nickPart)
	if err != nil {
		return Source{}, err
	}
	return NewClientSource(nick, user, host), nil
}
