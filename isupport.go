/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btnmasher/ircnet/shared/concurrentmap"
)

// ISupportParamKind distinguishes the three forms an ISUPPORT token may take.
type ISupportParamKind int

const (
	ISupportSet ISupportParamKind = iota
	ISupportUnset
	ISupportEq
)

// ISupportParam is one parsed token of a numeric-005 (RPL_ISUPPORT) line: Set(key),
// Unset(key) (a leading '-'), or Eq(key, value).
type ISupportParam struct {
	Kind  ISupportParamKind
	Key   string
	Value string // populated only when Kind == ISupportEq; the unescaped (raw) value
}

// ParseISupportToken parses one whitespace-delimited token of an ISUPPORT line.
func ParseISupportToken(tok string) (ISupportParam, error) {
	if tok == "" {
		return ISupportParam{}, ErrEmpty
	}
	if tok[0] == '-' {
		return ISupportParam{Kind: ISupportUnset, Key: tok[1:]}, nil
	}
	if idx := strings.IndexByte(tok, '='); idx >= 0 {
		value, err := FromEscapedISupport(tok[idx+1:])
		if err != nil {
			return ISupportParam{}, err
		}
		return ISupportParam{Kind: ISupportEq, Key: tok[:idx], Value: value}, nil
	}
	return ISupportParam{Kind: ISupportSet, Key: tok}, nil
}

// Token renders this param as it appears on the wire: "-KEY", "KEY=value" with the value
// hex-escaped, or "KEY".
func (p ISupportParam) Token() string {
	switch p.Kind {
	case ISupportUnset:
		return "-" + p.Key
	case ISupportEq:
		return p.Key + "=" + EscapeISupport(p.Value)
	default:
		return p.Key
	}
}

// EscapeISupport escapes an ISUPPORT value, emitting only \x20, \x3D, and \x5C. This is a
// distinct scheme from the IRCv3 tag-value backslash escapes in tags.go; the two must never
// be conflated.
func EscapeISupport(v string) string {
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case ' ':
			b.WriteString(`\x20`)
		case '=':
			b.WriteString(`\x3D`)
		case '\\':
			b.WriteString(`\x5C`)
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

// FromEscapedISupport reverses EscapeISupport. Recognises both uppercase and lowercase hex
// digits in \xHH escapes.
func FromEscapedISupport(v string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i+3 >= len(v) || (v[i+1] != 'x' && v[i+1] != 'X') {
			b.WriteByte(v[i])
			continue
		}
		hex := v[i+2 : i+4]
		n, err := strconv.ParseUint(hex, 16, 8)
		if err != nil {
			return "", fmt.Errorf("irc: invalid ISUPPORT escape %q: %w", v[i:i+4], err)
		}
		b.WriteByte(byte(n))
		i += 3
	}
	return b.String(), nil
}

// ISupport is the client's accumulated view of server-advertised ISUPPORT parameters,
// built incrementally across possibly-multiple RPL_ISUPPORT lines during LOGIN. The backing
// store is a shared/concurrentmap so a caller holding the LoginOutput may query it while the
// session loop is still running.
type ISupport struct {
	order []string
	byKey concurrentmap.ConcurrentMap[string, ISupportParam]
}

func NewISupport() *ISupport {
	return &ISupport{byKey: concurrentmap.New[string, ISupportParam]()}
}

// Apply merges one RPL_ISUPPORT line's tokens (all but the final human-readable "are
// supported by this server" trailing parameter) into the accumulated set. Apply is only
// called from the session loop during LOGIN; the accumulated set is read-only thereafter.
func (s *ISupport) Apply(tokens []string) error {
	for _, tok := range tokens {
		p, err := ParseISupportToken(tok)
		if err != nil {
			return err
		}
		if p.Kind == ISupportUnset {
			s.byKey.Delete(p.Key)
			continue
		}
		if !s.byKey.Exists(p.Key) {
			s.order = append(s.order, p.Key)
		}
		s.byKey.Set(p.Key, p)
	}
	return nil
}

// Get returns the parsed param for key, if the server has advertised it.
func (s *ISupport) Get(key string) (ISupportParam, bool) {
	return s.byKey.Get(key)
}

// CaseMapping returns the CASEMAPPING the server advertised, defaulting to rfc1459 per
// modern.ircdocs.horse when unspecified.
func (s *ISupport) CaseMapping() CaseMapping {
	if p, ok := s.Get("CASEMAPPING"); ok && p.Kind == ISupportEq {
		return ParseCaseMapping(p.Value)
	}
	return CaseMappingRFC1459
}

// Params returns every accumulated parameter in first-seen order.
func (s *ISupport) Params() []ISupportParam {
	out := make([]ISupportParam, 0, len(s.order))
	for _, k := range s.order {
		if p, ok := s.byKey.Get(k); ok {
			out = append(out, p)
		}
	}
	return out
}
