/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"strings"

	"github.com/btnmasher/ircnet/shared/stringutils"
)

// wireOverhead computes the non-body byte count of a PRIVMSG/NOTICE line for the given
// verb and rendered target list: "VERB targets :" plus CRLF.
func wireOverhead(verb, targets string) int {
	return len(verb) + 1 + len(targets) + 2 + len(CRLF)
}

// splitBody breaks free text into chunks no longer than room bytes, splitting on word
// boundaries. Words longer than room are hard-split first so nothing is dropped.
func splitBody(text string, room int) []string {
	if room < 1 {
		room = 1
	}
	var words []string
	for _, w := range strings.Fields(text) {
		for len(w) > room {
			words = append(words, w[:room])
			w = w[room:]
		}
		words = append(words, w)
	}
	return stringutils.ChunkJoinStrings(room, SPACE, words...)
}

// SplitPrivmsg breaks text into as many Privmsg messages as needed so that each rendered
// line fits within maxLineLength (pass MaxLineLength for the protocol default). Splits fall
// on word boundaries where possible.
func SplitPrivmsg(targets []MsgTarget, text string, maxLineLength int) []Privmsg {
	chunks := splitBody(text, maxLineLength-wireOverhead(CmdPrivMsg, joinTargets(targets)))
	if len(chunks) == 0 {
		return []Privmsg{NewPrivmsg(targets, text)}
	}
	out := make([]Privmsg, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, NewPrivmsg(targets, chunk))
	}
	return out
}

// SplitNotice is SplitPrivmsg for the NOTICE verb.
func SplitNotice(targets []MsgTarget, text string, maxLineLength int) []Notice {
	chunks := splitBody(text, maxLineLength-wireOverhead(CmdNotice, joinTargets(targets)))
	if len(chunks) == 0 {
		return []Notice{NewNotice(targets, text)}
	}
	out := make([]Notice, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, NewNotice(targets, chunk))
	}
	return out
}
