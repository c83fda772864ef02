/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISupportToken(t *testing.T) {
	p, err := ParseISupportToken("EXCEPTS")
	require.NoError(t, err)
	assert.Equal(t, ISupportParam{Kind: ISupportSet, Key: "EXCEPTS"}, p)

	p, err = ParseISupportToken("-EXCEPTS")
	require.NoError(t, err)
	assert.Equal(t, ISupportParam{Kind: ISupportUnset, Key: "EXCEPTS"}, p)

	p, err = ParseISupportToken("CASEMAPPING=ascii")
	require.NoError(t, err)
	assert.Equal(t, ISupportParam{Kind: ISupportEq, Key: "CASEMAPPING", Value: "ascii"}, p)

	p, err = ParseISupportToken(`NETWORK=Some\x20Net`)
	require.NoError(t, err)
	assert.Equal(t, "Some Net", p.Value)

	_, err = ParseISupportToken("")
	assert.Error(t, err)
}

func TestISupportEscapeRoundTrip(t *testing.T) {
	values := []string{"plain", "two words", "a=b", `back\slash`, "all three \\= here"}
	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			escaped := EscapeISupport(v)
			back, err := FromEscapedISupport(escaped)
			require.NoError(t, err)
			assert.Equal(t, v, back)
		})
	}

	assert.Equal(t, `a\x20b\x3Dc\x5Cd`, EscapeISupport(`a b=c\d`))
}

func TestISupportTokenRender(t *testing.T) {
	assert.Equal(t, "EXCEPTS", ISupportParam{Kind: ISupportSet, Key: "EXCEPTS"}.Token())
	assert.Equal(t, "-EXCEPTS", ISupportParam{Kind: ISupportUnset, Key: "EXCEPTS"}.Token())
	assert.Equal(t, `NETWORK=Some\x20Net`,
		ISupportParam{Kind: ISupportEq, Key: "NETWORK", Value: "Some Net"}.Token())
}

func TestISupportAccumulation(t *testing.T) {
	s := NewISupport()
	require.NoError(t, s.Apply([]string{"CASEMAPPING=ascii", "EXCEPTS", "NICKLEN=30"}))
	require.NoError(t, s.Apply([]string{"-EXCEPTS", "NICKLEN=16"}))

	_, ok := s.Get("EXCEPTS")
	assert.False(t, ok, "a later unset removes the key")

	p, ok := s.Get("NICKLEN")
	require.True(t, ok)
	assert.Equal(t, "16", p.Value, "a later line overrides the value")

	keys := make([]string, 0)
	for _, p := range s.Params() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"CASEMAPPING", "NICKLEN"}, keys, "first-seen order is preserved")
}

func TestISupportCaseMapping(t *testing.T) {
	s := NewISupport()
	assert.Equal(t, CaseMappingRFC1459, s.CaseMapping(), "rfc1459 is the default")

	require.NoError(t, s.Apply([]string{"CASEMAPPING=ascii"}))
	assert.Equal(t, CaseMappingASCII, s.CaseMapping())
}
