/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

// Numerics absent from the RFC 1459/2812 core table in numerics.go but required by
// modern.ircdocs.horse-era servers this client targets.
const (
	ReplyChannelURL    uint16 = 328
	ReplyTopicWhoTime  uint16 = 333
	ReplyWhoisActually uint16 = 338
	ReplyInputTooLong  uint16 = 417
	ReplySASLMechs     uint16 = 908
)
