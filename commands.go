/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

// Verb string constants used when constructing or matching ClientMessage wire forms.
const (
	// RFC 1459 / 2812
	CmdPrivMsg string = "PRIVMSG"
	CmdNotice         = "NOTICE"
	CmdUserhost       = "USERHOST"
	CmdPass           = "PASS"
	CmdPing           = "PING"
	CmdPong           = "PONG"
	CmdTopic          = "TOPIC"
	CmdJoin           = "JOIN"
	CmdPart           = "PART"
	CmdKick           = "KICK"
	CmdQuit           = "QUIT"
	CmdNick           = "NICK"
	CmdUser           = "USER"
	CmdMode           = "MODE"
	CmdWallops        = "WALLOPS"
	CmdInvite         = "INVITE"
	CmdKill           = "KILL"
	CmdNames          = "NAMES"
	CmdList           = "LIST"
	CmdWho            = "WHO"
	CmdWhois          = "WHOIS"
	CmdAway           = "AWAY"
	CmdMotd           = "MOTD"
	CmdLUsers         = "LUSERS"

	// CTCP command tokens (carried inside PRIVMSG/NOTICE trailing parameters; see ctcp.go)
	CtcpCmdPing       = "PING"
	CtcpCmdVersion    = "VERSION"
	CtcpCmdSource     = "SOURCE"
	CtcpCmdTime       = "TIME"
	CtcpCmdUserInfo   = "USERINFO"
	CtcpCmdClientInfo = "CLIENTINFO"
	CtcpCmdFinger     = "FINGER"
	CtcpCmdAction     = "ACTION"
	CtcpCmdDcc        = "DCC"
	CtcpCmdErrMsg     = "ERRMSG"

	// IRCv3 base
	CmdCap          = "CAP"
	CmdAuthenticate = "AUTHENTICATE"
	CmdTagMsg       = "TAGMSG"
	CmdError        = "ERROR"

	// IRCv3 account-notify
	CmdAccount = "ACCOUNT"
)

// CAP subcommand tokens.
const (
	CapLS  = "LS"
	CapReq = "REQ"
	CapAck = "ACK"
	CapNak = "NAK"
	CapEnd = "END"
)
