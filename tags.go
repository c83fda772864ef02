/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

// Tags is an ordered set of IRCv3 message tags. Insertion order is preserved end-to-end
// through parse and render.
type Tags struct {
	keys   []string
	values map[string]string
}

func NewTags() *Tags {
	return &Tags{values: make(map[string]string)}
}

func (t *Tags) Set(key TagKey, value TagValue) {
	k := key.String()
	if _, exists := t.values[k]; !exists {
		t.keys = append(t.keys, k)
	}
	t.values[k] = value.String()
}

func (t *Tags) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t *Tags) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the tag keys in insertion order.
func (t *Tags) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Render serialises the tag set as "key1=val1;key2=val2" (without the leading '@'), escaping
// values with the IRCv3 tag-value escape scheme.
func (t *Tags) Render() string {
	if t.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range t.keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		if v := t.values[k]; v != "" {
			b.WriteByte('=')
			b.WriteString(EscapeTagValue(v))
		}
	}
	return b.String()
}

// EscapeTagValue applies the IRCv3 message-tag escape scheme: ';' -> "\:", SPACE -> "\s",
// '\\' -> "\\\\", CR -> "\r", LF -> "\n". This is a distinct scheme from ISUPPORT's \xHH
// hex-escapes (isupport.go) and the two must never be conflated.
func EscapeTagValue(v string) string {
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case ';':
			b.WriteString(`\:`)
		case ' ':
			b.WriteString(`\s`)
		case '\\':
			b.WriteString(`\\`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

// UnescapeTagValue reverses EscapeTagValue. An unrecognised "\X" escape yields "X"; a
// trailing lone backslash is dropped.
func UnescapeTagValue(v string) string {
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' {
			b.WriteByte(v[i])
			continue
		}
		if i+1 >= len(v) {
			break // trailing lone backslash dropped
		}
		i++
		switch v[i] {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case '\\':
			b.WriteByte('\\')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

// ParseTags parses the portion of an IRC line following '@' and preceding the next SPACE
// (neither character included), returning an ordered Tags set.
func ParseTags(s string) (*Tags, error) {
	tags := NewTags()
	if s == "" {
		return tags, nil
	}
	for _, entry := range strings.Split(s, ";") {
		if entry == "" {
			continue
		}
		key := entry
		rawValue := ""
		if idx := strings.IndexByte(entry, '='); idx >= 0 {
			key = entry[:idx]
			rawValue = entry[idx+1:]
		}
		tk, err := NewTagKey(key)
		if err != nil {
			return nil, err
		}
		// Validate the escaped wire form; the stored value is unescaped and may hold
		// spaces or ';' that Render escapes again.
		if _, err := NewTagValue(rawValue); err != nil {
			return nil, err
		}
		k := tk.String()
		if _, exists := tags.values[k]; !exists {
			tags.keys = append(tags.keys, k)
		}
		tags.values[k] = UnescapeTagValue(rawValue)
	}
	return tags, nil
}
