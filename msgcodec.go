/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

// MessageCodec composes a LineCodec with RawMessage parsing and rendering. It is not safe
// for concurrent use.
type MessageCodec struct {
	lines *LineCodec
}

// NewMessageCodec constructs a MessageCodec with the given maximum frame length.
func NewMessageCodec(maxLength int) *MessageCodec {
	return &MessageCodec{lines: NewLineCodec(maxLength)}
}

// Push appends newly-read bytes from the socket.
func (c *MessageCodec) Push(data []byte) {
	c.lines.Push(data)
}

// Next attempts to decode one RawMessage. It returns (msg, true, nil) on success,
// (nil, false, nil) when more bytes are needed, or (nil, false, err) on a framing or parse
// failure. A MaxLineLengthExceeded error does not require tearing down the connection: the
// codec has already begun discarding and framing resumes on the next call.
func (c *MessageCodec) Next() (*RawMessage, bool, error) {
	line, ok, err := c.lines.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	decoded := DecodeLine(line)
	msg, perr := ParseRawMessage(decoded)
	if perr != nil {
		return nil, false, MessageCodecError{Kind: CodecErrParse, Err: perr}
	}
	return msg, true, nil
}

// FinalMessage decodes any residual bytes as a final frame at clean EOF.
func (c *MessageCodec) FinalMessage() (*RawMessage, bool, error) {
	line, ok := c.lines.FinalFrame()
	if !ok {
		return nil, false, nil
	}
	decoded := DecodeLine(line)
	msg, perr := ParseRawMessage(decoded)
	if perr != nil {
		return nil, false, MessageCodecError{Kind: CodecErrParse, Err: perr}
	}
	return msg, true, nil
}

// Encode renders a RawMessage to its wire bytes. The returned slice is a copy safe to hold
// past the call; the internal render buffer is recycled immediately.
func Encode(msg *RawMessage) []byte {
	buf := msg.RenderBuffer()
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	rawMessageBufPool.Recycle(buf)
	return out
}
