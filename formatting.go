/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

// Attribute is one formatting effect that can be applied to IRC text. Attributes are bit
// flags; combine them into an AttributeSet with Or.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrikethrough
	AttrMonospace
	AttrReverse

	attributeCount = 6
)

// attributeOrder lists every Attribute in declaration order, for iteration and rendering.
var attributeOrder = [attributeCount]Attribute{
	AttrBold, AttrItalic, AttrUnderline, AttrStrikethrough, AttrMonospace, AttrReverse,
}

func (a Attribute) String() string {
	switch a {
	case AttrBold:
		return "bold"
	case AttrItalic:
		return "italic"
	case AttrUnderline:
		return "underline"
	case AttrStrikethrough:
		return "strikethrough"
	case AttrMonospace:
		return "monospace"
	case AttrReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// controlCode returns the wire control byte that toggles this attribute.
func (a Attribute) controlCode() byte {
	switch a {
	case AttrBold:
		return ctrlBold
	case AttrItalic:
		return ctrlItalic
	case AttrUnderline:
		return ctrlUnderline
	case AttrStrikethrough:
		return ctrlStrikethrough
	case AttrMonospace:
		return ctrlMonospace
	default:
		return ctrlReverse
	}
}

// AttributeSet is a set of Attributes, represented as a bit mask.
type AttributeSet uint8

// AttributeSetAll contains every Attribute.
const AttributeSetAll AttributeSet = (1 << attributeCount) - 1

func (s AttributeSet) IsEmpty() bool { return s == 0 }

func (s AttributeSet) IsAll() bool { return s == AttributeSetAll }

func (s AttributeSet) Contains(a Attribute) bool { return s&AttributeSet(a) != 0 }

func (s AttributeSet) Or(a Attribute) AttributeSet { return s | AttributeSet(a) }

func (s AttributeSet) Without(a Attribute) AttributeSet { return s &^ AttributeSet(a) }

// Toggle flips a single attribute, the way its wire control code behaves.
func (s AttributeSet) Toggle(a Attribute) AttributeSet { return s ^ AttributeSet(a) }

// Attributes returns the member Attributes in declaration order.
func (s AttributeSet) Attributes() []Attribute {
	out := make([]Attribute, 0, attributeCount)
	for _, a := range attributeOrder {
		if s.Contains(a) {
			out = append(out, a)
		}
	}
	return out
}

// RGBColor is a 24-bit color used by the 0x04 hex-color formatting code.
type RGBColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Color is either one of the 100 palette indices (0-99) carried by the 0x03 code, or a 24-bit
// RGBColor carried by the 0x04 code. The zero value (with Set false) means "default".
type Color struct {
	Set     bool
	IsRGB   bool
	Index   uint8 // palette index 0-99 when !IsRGB; 99 is "default" on modern servers
	RGB     RGBColor
}

// Formatting control bytes per modern.ircdocs.horse/formatting.
const (
	ctrlBold          byte = 0x02
	ctrlColor         byte = 0x03
	ctrlHexColor      byte = 0x04
	ctrlReset         byte = 0x0F
	ctrlMonospace     byte = 0x11
	ctrlReverse       byte = 0x16
	ctrlItalic        byte = 0x1D
	ctrlStrikethrough byte = 0x1E
	ctrlUnderline     byte = 0x1F
)

// StyledSpan is a run of text with uniform formatting state.
type StyledSpan struct {
	Text       string
	Attributes AttributeSet
	Foreground Color
	Background Color
}

// ParseFormatted splits text containing mIRC-style formatting control codes into styled
// spans. Codes toggle state for the text that follows them; 0x0F resets everything. Empty
// spans are not emitted, so plain text yields exactly one span; input with no text at all
// (empty, or only control codes) yields a single empty span.
func ParseFormatted(text string) []StyledSpan {
	var spans []StyledSpan
	var current StyledSpan
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			current.Text = buf.String()
			spans = append(spans, current)
			buf.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case ctrlBold, ctrlItalic, ctrlUnderline, ctrlStrikethrough, ctrlMonospace, ctrlReverse:
			flush()
			current.Attributes = current.Attributes.Toggle(attributeForCode(c))
		case ctrlReset:
			flush()
			current = StyledSpan{}
		case ctrlColor:
			flush()
			fg, bg, consumed := parseColorIndices(text[i+1:])
			i += consumed
			if !fg.Set {
				// A bare 0x03 clears both colors.
				current.Foreground = Color{}
				current.Background = Color{}
				break
			}
			current.Foreground = fg
			if bg.Set {
				current.Background = bg
			}
		case ctrlHexColor:
			flush()
			fg, bg, consumed := parseHexColors(text[i+1:])
			i += consumed
			if !fg.Set {
				current.Foreground = Color{}
				current.Background = Color{}
				break
			}
			current.Foreground = fg
			if bg.Set {
				current.Background = bg
			}
		default:
			buf.WriteByte(c)
		}
	}
	flush()

	if len(spans) == 0 {
		spans = append(spans, StyledSpan{})
	}
	return spans
}

func attributeForCode(c byte) Attribute {
	switch c {
	case ctrlBold:
		return AttrBold
	case ctrlItalic:
		return AttrItalic
	case ctrlUnderline:
		return AttrUnderline
	case ctrlStrikethrough:
		return AttrStrikethrough
	case ctrlMonospace:
		return AttrMonospace
	default:
		return AttrReverse
	}
}

// parseColorIndices reads the "NN[,NN]" payload following a 0x03 code: one or two digits of
// foreground, optionally a comma and one or two digits of background. It returns how many
// bytes of payload were consumed.
func parseColorIndices(s string) (fg, bg Color, consumed int) {
	n, width := readColorIndex(s)
	if width == 0 {
		return Color{}, Color{}, 0
	}
	fg = Color{Set: true, Index: n}
	consumed = width
	// A comma only belongs to the code if digits follow it.
	if consumed < len(s) && s[consumed] == ',' {
		if m, w := readColorIndex(s[consumed+1:]); w > 0 {
			bg = Color{Set: true, Index: m}
			consumed += 1 + w
		}
	}
	return fg, bg, consumed
}

// readColorIndex reads at most two leading decimal digits.
func readColorIndex(s string) (uint8, int) {
	var n uint8
	width := 0
	for width < 2 && width < len(s) && s[width] >= '0' && s[width] <= '9' {
		n = n*10 + (s[width] - '0')
		width++
	}
	return n, width
}

// parseHexColors reads the "RRGGBB[,RRGGBB]" payload following a 0x04 code.
func parseHexColors(s string) (fg, bg Color, consumed int) {
	rgb, ok := readHexColor(s)
	if !ok {
		return Color{}, Color{}, 0
	}
	fg = Color{Set: true, IsRGB: true, RGB: rgb}
	consumed = 6
	if consumed < len(s) && s[consumed] == ',' {
		if rgb2, ok := readHexColor(s[consumed+1:]); ok {
			bg = Color{Set: true, IsRGB: true, RGB: rgb2}
			consumed += 7
		}
	}
	return fg, bg, consumed
}

func readHexColor(s string) (RGBColor, bool) {
	if len(s) < 6 {
		return RGBColor{}, false
	}
	var bytes [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return RGBColor{}, false
		}
		bytes[i] = hi<<4 | lo
	}
	return RGBColor{Red: bytes[0], Green: bytes[1], Blue: bytes[2]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// StripFormatting removes every formatting control code (and its color payload) from text,
// leaving only the displayable characters.
func StripFormatting(text string) string {
	spans := ParseFormatted(text)
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// RenderFormatted rebuilds a wire string from styled spans, emitting the minimal toggles
// between consecutive spans and a reset before a span with no formatting follows a styled
// one. Colors always re-emit their full code when they change.
func RenderFormatted(spans []StyledSpan) string {
	var b strings.Builder
	var state StyledSpan

	for _, sp := range spans {
		if sp.Attributes.IsEmpty() && !sp.Foreground.Set && !sp.Background.Set &&
			(!state.Attributes.IsEmpty() || state.Foreground.Set || state.Background.Set) {
			b.WriteByte(ctrlReset)
			state = StyledSpan{}
		}
		for _, a := range attributeOrder {
			if sp.Attributes.Contains(a) != state.Attributes.Contains(a) {
				b.WriteByte(a.controlCode())
			}
		}
		if sp.Foreground != state.Foreground || sp.Background != state.Background {
			writeColorCodes(&b, sp.Foreground, sp.Background)
		}
		b.WriteString(sp.Text)
		state = sp
		state.Text = ""
	}
	return b.String()
}

func writeColorCodes(b *strings.Builder, fg, bg Color) {
	if !fg.Set && !bg.Set {
		b.WriteByte(ctrlColor)
		return
	}
	if fg.IsRGB || bg.IsRGB {
		b.WriteByte(ctrlHexColor)
		writeHex(b, fg.RGB)
		if bg.Set {
			b.WriteByte(',')
			writeHex(b, bg.RGB)
		}
		return
	}
	b.WriteByte(ctrlColor)
	writeIndex(b, fg.Index)
	if bg.Set {
		b.WriteByte(',')
		writeIndex(b, bg.Index)
	}
}

func writeIndex(b *strings.Builder, n uint8) {
	// Always two digits so following text digits cannot be misread as color payload.
	b.WriteByte('0' + n/10%10)
	b.WriteByte('0' + n%10)
}

func writeHex(b *strings.Builder, c RGBColor) {
	const digits = "0123456789ABCDEF"
	for _, v := range [3]uint8{c.Red, c.Green, c.Blue} {
		b.WriteByte(digits[v>>4])
		b.WriteByte(digits[v&0x0F])
	}
}
