/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"bytes"

	"github.com/btnmasher/ircnet/shared/itempool"
	"github.com/btnmasher/ircnet/shared/pool"
)

// BufferPoolMax bounds the number of recycled rendering buffers kept warm.
const BufferPoolMax = 64

// RawMessagePoolMax bounds the number of recycled RawMessage objects kept warm.
const RawMessagePoolMax = 256

// rawMessageBufPool holds reusable byte buffers for RawMessage.RenderBuffer, avoiding an
// allocation per outgoing line. bytes.Buffer already implements Reset() and so satisfies
// pool.Resettable without a wrapper type.
var rawMessageBufPool = pool.New[*bytes.Buffer](func() *bytes.Buffer {
	return &bytes.Buffer{}
})

// scrubbableRawMessage adapts *RawMessage to itempool.ScrubbableItem.
type scrubbableRawMessage struct {
	*RawMessage
}

func (s scrubbableRawMessage) Scrub() { s.Reset() }

var rawMessagePool = itempool.New[scrubbableRawMessage](RawMessagePoolMax, func() scrubbableRawMessage {
	return scrubbableRawMessage{newRawMessage()}
})

func acquireRawMessage() *RawMessage {
	return rawMessagePool.New().RawMessage
}

func releaseRawMessage(m *RawMessage) {
	rawMessagePool.Recycle(scrubbableRawMessage{m})
}
