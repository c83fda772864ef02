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

func TestAttributeSet(t *testing.T) {
	var s AttributeSet
	assert.True(t, s.IsEmpty())

	s = s.Or(AttrBold).Or(AttrUnderline)
	assert.True(t, s.Contains(AttrBold))
	assert.True(t, s.Contains(AttrUnderline))
	assert.False(t, s.Contains(AttrItalic))
	assert.Equal(t, []Attribute{AttrBold, AttrUnderline}, s.Attributes())

	s = s.Without(AttrBold)
	assert.False(t, s.Contains(AttrBold))

	s = s.Toggle(AttrUnderline)
	assert.True(t, s.IsEmpty())

	assert.True(t, AttributeSetAll.IsAll())
	assert.Len(t, AttributeSetAll.Attributes(), attributeCount)
}

func TestParseFormattedPlain(t *testing.T) {
	spans := ParseFormatted("just plain words")
	require.Len(t, spans, 1)
	assert.Equal(t, "just plain words", spans[0].Text)
	assert.True(t, spans[0].Attributes.IsEmpty())
	assert.False(t, spans[0].Foreground.Set)
}

func TestParseFormattedToggles(t *testing.T) {
	spans := ParseFormatted("plain \x02bold \x1Dboth\x0F reset")
	require.Len(t, spans, 4)

	assert.Equal(t, "plain ", spans[0].Text)
	assert.True(t, spans[0].Attributes.IsEmpty())

	assert.Equal(t, "bold ", spans[1].Text)
	assert.True(t, spans[1].Attributes.Contains(AttrBold))
	assert.False(t, spans[1].Attributes.Contains(AttrItalic))

	assert.Equal(t, "both", spans[2].Text)
	assert.True(t, spans[2].Attributes.Contains(AttrBold))
	assert.True(t, spans[2].Attributes.Contains(AttrItalic))

	assert.Equal(t, " reset", spans[3].Text)
	assert.True(t, spans[3].Attributes.IsEmpty())
}

func TestParseFormattedColors(t *testing.T) {
	t.Run("foreground and background", func(t *testing.T) {
		spans := ParseFormatted("\x0304,12red on blue")
		require.Len(t, spans, 1)
		assert.Equal(t, "red on blue", spans[0].Text)
		require.True(t, spans[0].Foreground.Set)
		assert.Equal(t, uint8(4), spans[0].Foreground.Index)
		require.True(t, spans[0].Background.Set)
		assert.Equal(t, uint8(12), spans[0].Background.Index)
	})

	t.Run("single digit foreground and background indices", func(t *testing.T) {
		spans := ParseFormatted("\x033,8abc")
		require.Len(t, spans, 1)
		assert.Equal(t, "abc", spans[0].Text)
		assert.Equal(t, uint8(3), spans[0].Foreground.Index)
		assert.Equal(t, uint8(8), spans[0].Background.Index)
	})

	t.Run("comma without digits is text", func(t *testing.T) {
		spans := ParseFormatted("\x034, hi")
		require.Len(t, spans, 1)
		assert.Equal(t, ", hi", spans[0].Text)
		assert.True(t, spans[0].Foreground.Set)
		assert.False(t, spans[0].Background.Set)
	})

	t.Run("bare color code clears colors", func(t *testing.T) {
		spans := ParseFormatted("\x0304red\x03plain")
		require.Len(t, spans, 2)
		assert.True(t, spans[0].Foreground.Set)
		assert.False(t, spans[1].Foreground.Set)
	})

	t.Run("hex color", func(t *testing.T) {
		spans := ParseFormatted("\x04FF8000,003366tinted")
		require.Len(t, spans, 1)
		assert.Equal(t, "tinted", spans[0].Text)
		require.True(t, spans[0].Foreground.IsRGB)
		assert.Equal(t, RGBColor{Red: 0xFF, Green: 0x80, Blue: 0x00}, spans[0].Foreground.RGB)
		assert.Equal(t, RGBColor{Red: 0x00, Green: 0x33, Blue: 0x66}, spans[0].Background.RGB)
	})
}

func TestStripFormatting(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"no codes here", "no codes here"},
		{"\x02bold\x02 normal", "bold normal"},
		{"\x0304,12colored\x03 plain", "colored plain"},
		{"\x04FF0000hex\x0F done", "hex done"},
		{"\x16\x1D\x1E\x1F\x11every code", "every code"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripFormatting(tt.input))
		})
	}
}

func TestRenderFormattedRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"\x02bold\x0F plain",
		"\x0304,12red on blue",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			spans := ParseFormatted(in)
			assert.Equal(t, spans, ParseFormatted(RenderFormatted(spans)),
				"render then re-parse preserves the styled spans")
		})
	}
}
