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

func replyFromLine(t *testing.T, line string) Reply {
	t.Helper()
	raw := mustParse(t, line)
	require.True(t, raw.IsNumeric())
	reply, err := ReplyFromParams(raw.Numeric, raw.Params)
	require.NoError(t, err)
	return reply
}

func TestReplyWelcomeBurst(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 001 nick1 :Welcome to ExampleNet")
	w, ok := r.(Welcome)
	require.True(t, ok)
	assert.Equal(t, "nick1", w.ReplyClient())
	assert.Equal(t, 1, w.ReplyCode())
	assert.Equal(t, "Welcome to ExampleNet", w.Text)

	r = replyFromLine(t, ":irc.example.org 004 nick1 irc.example.org testd-1.0 iosw biklmnopstv")
	mi, ok := r.(MyInfo)
	require.True(t, ok)
	assert.Equal(t, []string{"irc.example.org", "testd-1.0", "iosw", "biklmnopstv"}, mi.Fields)
}

func TestReplyISupport(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 005 nick1 CASEMAPPING=ascii -EXCEPTS NICKLEN=30 :are supported by this server")
	is, ok := r.(ISupportReply)
	require.True(t, ok)
	assert.Equal(t, "are supported by this server", is.Message)
	require.Len(t, is.Tokens, 3)
	assert.Equal(t, ISupportParam{Kind: ISupportEq, Key: "CASEMAPPING", Value: "ascii"}, is.Tokens[0])
	assert.Equal(t, ISupportParam{Kind: ISupportUnset, Key: "EXCEPTS"}, is.Tokens[1])
}

func TestReplyList(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 322 nick1 #a 3 :hello")
	lr, ok := r.(ListReply)
	require.True(t, ok)
	assert.Equal(t, "#a", lr.Channel)
	assert.Equal(t, uint64(3), lr.Clients)
	assert.Equal(t, "hello", lr.Topic)

	r = replyFromLine(t, ":irc.example.org 322 nick1 #b 0 :")
	lr, ok = r.(ListReply)
	require.True(t, ok)
	assert.Equal(t, uint64(0), lr.Clients)
	assert.Equal(t, "", lr.Topic)
}

func TestReplyTopicWhoTime(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 333 nick1 #a setter!u@h 1697284200")
	tw, ok := r.(TopicWhoTime)
	require.True(t, ok)
	assert.Equal(t, "#a", tw.Channel)
	assert.Equal(t, "setter!u@h", tw.SetBy)
	assert.Equal(t, uint64(1697284200), tw.SetAt)
}

func TestReplyErrors(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 451 * :You have not registered")
	nr, ok := r.(NotRegistered)
	require.True(t, ok)
	assert.Equal(t, "*", nr.ReplyClient())
	assert.Equal(t, "You have not registered", nr.Message)

	r = replyFromLine(t, ":irc.example.org 421 nick1 FOO :Unknown command")
	uc, ok := r.(UnknownCommand)
	require.True(t, ok)
	assert.Equal(t, "FOO", uc.Command)
}

func TestReplySaslNumerics(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 900 nick1 nick1!u@h acct :You are now logged in as acct")
	li, ok := r.(LoggedIn)
	require.True(t, ok)
	assert.Equal(t, "acct", li.Account)

	r = replyFromLine(t, ":irc.example.org 904 nick1 :SASL authentication failed")
	_, ok = r.(SaslFail)
	assert.True(t, ok)
}

func TestReplyWho(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 352 me #a ~jwuser host.example.org irc.example.org jwodder H*@ :2 Real Name")
	w, ok := r.(WhoReply)
	require.True(t, ok)
	assert.Equal(t, "#a", w.Channel)
	assert.Equal(t, "~jwuser", w.Username)
	assert.Equal(t, "host.example.org", w.Host)
	assert.Equal(t, "jwodder", w.Nick)
	assert.False(t, w.Flags.IsAway)
	assert.True(t, w.Flags.IsOp)
	require.True(t, w.Flags.HasMembership)
	assert.Equal(t, MembershipOperator, w.Flags.Membership)
	assert.Equal(t, "2", w.Hops)
	assert.Equal(t, "Real Name", w.Realname)

	r = replyFromLine(t, ":irc.example.org 315 me jwodder :End of WHO list")
	e, ok := r.(EndOfWho)
	require.True(t, ok)
	assert.Equal(t, "jwodder", e.Mask)
}

func TestReplyUserhost(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 302 me :alpha=+a.example.org beta*=-b.example.org")
	u, ok := r.(UserhostReply)
	require.True(t, ok)
	require.Len(t, u.Entries, 2)
	assert.Equal(t, "alpha", u.Entries[0].Nickname.String())
	assert.False(t, u.Entries[0].IsAway)
	assert.True(t, u.Entries[1].IsOp)
	assert.True(t, u.Entries[1].IsAway)
}

func TestIsErrorCode(t *testing.T) {
	assert.True(t, IsErrorCode(401))
	assert.True(t, IsErrorCode(599))
	assert.True(t, IsErrorCode(263))
	assert.True(t, IsErrorCode(904))
	assert.False(t, IsErrorCode(1))
	assert.False(t, IsErrorCode(322))
	assert.False(t, IsErrorCode(903))
}

func TestReplyUnknownCatchAll(t *testing.T) {
	r := replyFromLine(t, ":irc.example.org 742 nick1 #a n!o :Mode change rejected")
	u, ok := r.(Unknown)
	require.True(t, ok)
	assert.Equal(t, 742, u.ReplyCode())
	assert.Equal(t, "nick1", u.ReplyClient())
	assert.Equal(t, []string{"#a", "n!o", "Mode change rejected"}, u.Parameters())
}

func TestReplyNoParams(t *testing.T) {
	reply, err := ReplyFromParams(999, ParameterList{})
	require.NoError(t, err)
	assert.Equal(t, "*", reply.ReplyClient(), "a bare numeric defaults its client to *")
}
