/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustParse parses one wire line (without CRLF) or fails the test.
func mustParse(t *testing.T, line string) *RawMessage {
	t.Helper()
	msg, err := ParseRawMessage(line)
	require.NoError(t, err, "parsing %q", line)
	return msg
}

// renderClient renders a ClientMessage to its CRLF-terminated wire string.
func renderClient(t *testing.T, cm ClientMessage) string {
	t.Helper()
	data, err := encodeClientMessage(cm)
	require.NoError(t, err)
	return string(data)
}

// renderAll renders a drained batch of ClientMessages to wire strings.
func renderAll(t *testing.T, cms []ClientMessage) []string {
	t.Helper()
	out := make([]string, 0, len(cms))
	for _, cm := range cms {
		out = append(out, renderClient(t, cm))
	}
	return out
}
