/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RawMessage pooling", func() {

	Describe("acquiring a message", func() {
		It("returns a message in its zero state", func() {
			msg := acquireRawMessage()
			Expect(msg).ShouldNot(BeNil())
			Expect(msg.Verb).Should(Equal(""))
			Expect(msg.Numeric).Should(Equal(-1))
			Expect(msg.Params.Len()).Should(Equal(0))
		})
	})

	Describe("recycling a message", func() {
		It("scrubs the message of any state", func() {
			trailing := "I am the server."
			msg1 := acquireRawMessage()
			msg1.Source = &Source{ServerHost: "irc.someserver.org", IsServer: true}
			msg1.Verb = CmdPrivMsg
			msg1.Params = ParameterList{Medials: []string{"somenick"}, Trailing: &trailing}

			releaseRawMessage(msg1)

			msg2 := acquireRawMessage()
			Expect(msg2.Source).Should(BeNil())
			Expect(msg2.Tags.Len()).Should(Equal(0))
			Expect(msg2.Verb).Should(Equal(""))
			Expect(msg2.Numeric).Should(Equal(-1))
			Expect(msg2.Params.Medials).Should(BeNil())
			Expect(msg2.Params.Trailing).Should(BeNil())
		})
	})

	Describe("render buffers", func() {
		It("copies the rendered bytes before the buffer is recycled", func() {
			msg := acquireRawMessage()
			msg.Verb = CmdPing
			payload := "alpha"
			msg.Params = ParameterList{Trailing: &payload}

			first := Encode(msg)
			releaseRawMessage(msg)

			other := acquireRawMessage()
			other.Verb = CmdPong
			beta := "beta"
			other.Params = ParameterList{Trailing: &beta}
			second := Encode(other)
			releaseRawMessage(other)

			Expect(string(first)).Should(Equal("PING :alpha\r\n"))
			Expect(string(second)).Should(Equal("PONG :beta\r\n"))
		})
	})
})
