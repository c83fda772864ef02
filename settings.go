/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

// Limiter constants for the wire protocol.
const (
	// MaxLineLength is the default RFC 1459/2812 frame cap including the trailing CRLF.
	MaxLineLength int = 512
	// MaxTaggedLineLength is the cap permitted once the message-tags capability is negotiated
	// (512 bytes of message plus up to 8191 bytes of tags).
	MaxTaggedLineLength int = 512 + 8191
	MaxMsgParams        int = 15
	MaxTagsLength       int = 8191

	MaxChanLength  = 16
	MaxTopicLength = 400
	MaxListItems   = 256

	MaxNickLength = 16
	MaxUserLength = 16
)

// Default TCP ports.
const (
	DefaultPlainPort = 6667
	DefaultTLSPort   = 6697
)
