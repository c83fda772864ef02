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
)

func TestCaseMappingLowercase(t *testing.T) {
	tests := []struct {
		mapping  CaseMapping
		input    string
		expected string
	}{
		{CaseMappingASCII, "NickName", "nickname"},
		{CaseMappingASCII, "[]\\~", "[]\\~"},
		{CaseMappingRFC1459, "Nick[One]\\Two~", "nick{one}|two^"},
		{CaseMappingRFC1459Strict, "Nick[One]\\Two~", "nick{one}|two~"},
	}

	for _, tt := range tests {
		t.Run(tt.mapping.String()+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mapping.Lowercase(tt.input))
		})
	}
}

func TestCaseMappingIdempotent(t *testing.T) {
	inputs := []string{"MixedCase", "[Brackets]", "\\Slash~", "already lower", "#ChanName"}
	for _, m := range []CaseMapping{CaseMappingASCII, CaseMappingRFC1459, CaseMappingRFC1459Strict} {
		for _, s := range inputs {
			once := m.Lowercase(s)
			assert.Equal(t, once, m.Lowercase(once), "%s/%s", m, s)
		}
	}
}

func TestCaseMappingEqualFold(t *testing.T) {
	assert.True(t, CaseMappingRFC1459.EqualFold("Nick[1]", "nick{1}"))
	assert.False(t, CaseMappingASCII.EqualFold("Nick[1]", "nick{1}"))
	assert.True(t, CaseMappingASCII.EqualFold("NICK", "nick"))
}

func TestParseCaseMapping(t *testing.T) {
	assert.Equal(t, CaseMappingRFC1459, ParseCaseMapping("rfc1459"))
	assert.Equal(t, CaseMappingRFC1459Strict, ParseCaseMapping("rfc1459-strict"))
	assert.Equal(t, CaseMappingASCII, ParseCaseMapping("ascii"))
	assert.Equal(t, CaseMappingASCII, ParseCaseMapping("something-else"))
}
