/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "time"

// Command is the sans-I/O capability set for a client-initiated request/reply flow.
// The Client loop drives it to completion: draining outgoing messages, feeding incoming
// ones, and (re)arming a timer per GetTimeout. Output is only valid to call once IsDone is
// true; calling it earlier is an API-contract violation the implementation panics on.
type Command interface {
	// ClientMessages drains outgoing messages produced since the last drain.
	ClientMessages() []ClientMessage
	// HandleMessage feeds one incoming server message and reports whether it was consumed
	// by this command. Must be a no-op returning false once IsDone is true.
	HandleMessage(msg *RawMessage) bool
	// GetTimeout returns the relative deadline the caller should (re)arm a timer to, or nil
	// to cancel any pending timer. A new result supersedes the prior one.
	GetTimeout() *time.Duration
	// HandleTimeout fires when the timer armed from the last GetTimeout result elapses.
	HandleTimeout()
	// IsDone reports whether this command has reached a terminal state.
	IsDone() bool
}

// errNotDonePanic is what Output implementations panic with when called before IsDone.
func errNotDonePanic() {
	panic(ErrNotDone)
}
