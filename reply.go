/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

// Reply is the typed form of a numeric reply, the server-reply
// counterpart of ClientMessage. Implemented as a one-level-deep closed interface union,
// table-driven on the numeric code, with an Unknown catch-all so that dialects defining
// numerics this client doesn't recognise still round-trip.
type Reply interface {
	// ReplyCode returns the three-digit numeric this reply was parsed from.
	ReplyCode() int
	// ReplyClient returns the reply's target client field: the nickname the server is
	// addressing, or "*" before registration completes.
	ReplyClient() string
}

type replyParser func(client string, params ParameterList) (Reply, error)

var replyRegistry = map[int]replyParser{}

func registerReply(code int, parser replyParser) {
	replyRegistry[code] = parser
}

// ReplyFromParams converts a raw (numeric, params) pair into a typed Reply. The first
// parameter of every numeric reply is the target client; it is split off before the
// registered parser sees the remainder. Codes with no registered shape round-trip through
// Unknown rather than failing, so dialect-specific numerics still round-trip.
func ReplyFromParams(code int, params ParameterList) (Reply, error) {
	all := params.All()
	client := "*"
	rest := ParameterList{}
	if len(all) > 0 {
		client = all[0]
		rest, _ = ParamsFromStrings(all[1:]...)
	}
	if parser, ok := replyRegistry[code]; ok {
		return parser(client, rest)
	}
	return Unknown{Code: code, Client: client, ParamsValue: rest}, nil
}

// Unknown is the catch-all for numeric codes with no registered typed shape.
type Unknown struct {
	Code        int
	Client      string
	ParamsValue ParameterList
}

func (u Unknown) ReplyCode() int      { return u.Code }
func (u Unknown) ReplyClient() string { return u.Client }

// Parameters returns the remaining (post-client) parameters of an unrecognised numeric.
func (u Unknown) Parameters() []string { return u.ParamsValue.All() }

func init() {
	registerReply(ReplyWelcome, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return Welcome{Client: c, Text: text}, nil
	})
	registerReply(ReplyYourHost, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return YourHost{Client: c, Text: text}, nil
	})
	registerReply(ReplyCreated, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return Created{Client: c, Text: text}, nil
	})
	registerReply(ReplyMyInfo, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		return MyInfo{Client: c, Fields: all}, nil
	})
	registerReply(ReplyISupport, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) == 0 {
			return ISupportReply{Client: c}, nil
		}
		tokens := all[:len(all)-1]
		out := make([]ISupportParam, 0, len(tokens))
		for _, tok := range tokens {
			param, err := ParseISupportToken(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, param)
		}
		return ISupportReply{Client: c, Tokens: out, Message: all[len(all)-1]}, nil
	})
	registerReply(ReplyListStart, func(c string, p ParameterList) (Reply, error) {
		return ListStart{Client: c}, nil
	})
	registerReply(ReplyList, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) < 2 {
			return nil, ErrWrongArity
		}
		clients, err := parseUintField(all[1])
		if err != nil {
			return nil, err
		}
		topic := ""
		if t, ok := p.Last(); ok && len(all) >= 3 {
			topic = t
		}
		return ListReply{Client: c, Channel: all[0], Clients: clients, Topic: topic}, nil
	})
	registerReply(ReplyEndOfList, func(c string, p ParameterList) (Reply, error) {
		return ListEnd{Client: c}, nil
	})
	registerReply(ReplyUserHost, func(c string, p ParameterList) (Reply, error) {
		replies, _ := p.Last()
		return UserhostReply{Client: c, Entries: ParseUserhostEntries(replies)}, nil
	})
	registerReply(ReplyWho, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) < 7 {
			return nil, ErrWrongArity
		}
		flags, err := ParseWhoFlags(all[5])
		if err != nil {
			return nil, err
		}
		hops, realname := splitHopsRealname(all[6])
		return WhoReply{
			Client:   c,
			Channel:  all[0],
			Username: all[1],
			Host:     all[2],
			Server:   all[3],
			Nick:     all[4],
			Flags:    flags,
			Hops:     hops,
			Realname: realname,
		}, nil
	})
	registerReply(ReplyEndOfWho, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		mask := ""
		if len(all) > 0 {
			mask = all[0]
		}
		return EndOfWho{Client: c, Mask: mask}, nil
	})
	registerReply(ReplyNames, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) < 2 {
			return nil, ErrWrongArity
		}
		nicks, _ := p.Last()
		return NamReply{Client: c, Symbol: all[0], Channel: all[1], Nicks: nicks}, nil
	})
	registerReply(ReplyEndOfNames, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) == 0 {
			return nil, ErrWrongArity
		}
		return EndOfNames{Client: c, Channel: all[0]}, nil
	})
	registerReply(ReplyChanTopic, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) == 0 {
			return nil, ErrWrongArity
		}
		text, _ := p.Last()
		return TopicReply{Client: c, Channel: all[0], Text: text}, nil
	})
	registerReply(ReplyNoTopic, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) == 0 {
			return nil, ErrWrongArity
		}
		return NoTopic{Client: c, Channel: all[0]}, nil
	})
	registerReply(int(ReplyTopicWhoTime), func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) < 3 {
			return nil, ErrWrongArity
		}
		setAt, err := parseUintField(all[2])
		if err != nil {
			return nil, err
		}
		return TopicWhoTime{Client: c, Channel: all[0], SetBy: all[1], SetAt: setAt}, nil
	})
	registerReply(ReplyMOTDStart, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return MotdStart{Client: c, Text: text}, nil
	})
	registerReply(ReplyMOTD, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return Motd{Client: c, Text: text}, nil
	})
	registerReply(ReplyEndOFMOTD, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return EndOfMotd{Client: c, Text: text}, nil
	})
	registerReply(ReplyNoMOTD, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return NoMotd{Client: c, Text: text}, nil
	})
	registerReply(ReplyTryAgain, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return TryAgain{Client: c, Message: text}, nil
	})
	registerReply(ReplyNotRegistered, func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return NotRegistered{Client: c, Message: text}, nil
	})
	registerReply(ReplyUnknownCommand, func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		cmd := ""
		if len(all) > 0 {
			cmd = all[0]
		}
		text, _ := p.Last()
		return UnknownCommand{Client: c, Command: cmd, Message: text}, nil
	})
	registerReply(int(ReplyInputTooLong), func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return InputTooLong{Client: c, Message: text}, nil
	})
	registerReply(int(ReplyLoggedIn), func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) < 2 {
			return nil, ErrWrongArity
		}
		text, _ := p.Last()
		return LoggedIn{Client: c, Account: all[1], Message: text}, nil
	})
	registerReply(int(ReplyLoggedOut), func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return LoggedOut{Client: c, Message: text}, nil
	})
	registerReply(int(ReplySASLSuccess), func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return SaslSuccess{Client: c, Message: text}, nil
	})
	registerReply(int(ReplySASLFail), func(c string, p ParameterList) (Reply, error) {
		text, _ := p.Last()
		return SaslFail{Client: c, Message: text}, nil
	})
	registerReply(int(ReplySASLMechs), func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		mechs := ""
		if len(all) > 0 {
			mechs = all[0]
		}
		return SaslMechs{Client: c, Mechanisms: mechs}, nil
	})
	registerReply(int(ReplyChannelURL), func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) == 0 {
			return nil, ErrWrongArity
		}
		url, _ := p.Last()
		return ChannelURL{Client: c, Channel: all[0], URL: url}, nil
	})
	registerReply(int(ReplyUserModeIs), func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		modes := ""
		if len(all) > 0 {
			modes = all[0]
		}
		return UModeIs{Client: c, Modes: modes}, nil
	})
	registerReply(int(ReplyVersion), func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		version := ""
		if len(all) > 0 {
			version = all[0]
		}
		text, _ := p.Last()
		return VersionReply{Client: c, Version: version, Message: text}, nil
	})
	registerReply(int(ReplyWhoisActually), func(c string, p ParameterList) (Reply, error) {
		all := p.All()
		if len(all) == 0 {
			return nil, ErrWrongArity
		}
		text, _ := p.Last()
		return WhoisActually{Client: c, Nick: all[0], Message: text}, nil
	})
}

// IsErrorCode reports whether a numeric code is an error reply: the ERR_* block (400-599),
// ERR_TRYAGAIN (263), and the SASL failure numerics (902, 904-907).
func IsErrorCode(code int) bool {
	switch {
	case code >= 400 && code <= 599:
		return true
	case code == int(ReplyTryAgain):
		return true
	case code == 902 || (code >= int(ReplySASLFail) && code <= int(ReplySASLAlready)):
		return true
	default:
		return false
	}
}

// splitHopsRealname splits RPL_WHOREPLY's trailing "<hopcount> <realname>" parameter.
func splitHopsRealname(s string) (hops, realname string) {
	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

func parseUintField(s string) (uint64, error) {
	var n uint64
	if s == "" {
		return 0, ErrWrongArity
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrWrongArity
		}
		n = n*10 + uint64(s[i]-'0')
	}
	return n, nil
}

// Welcome is RPL_WELCOME (001): the first message sent once registration succeeds.
type Welcome struct {
	Client string
	Text   string
}

func (r Welcome) ReplyCode() int      { return int(ReplyWelcome) }
func (r Welcome) ReplyClient() string { return r.Client }

// YourHost is RPL_YOURHOST (002).
type YourHost struct {
	Client string
	Text   string
}

func (r YourHost) ReplyCode() int      { return int(ReplyYourHost) }
func (r YourHost) ReplyClient() string { return r.Client }

// Created is RPL_CREATED (003).
type Created struct {
	Client string
	Text   string
}

func (r Created) ReplyCode() int      { return int(ReplyCreated) }
func (r Created) ReplyClient() string { return r.Client }

// MyInfo is RPL_MYINFO (004): server name, version, and supported user/channel mode letters.
type MyInfo struct {
	Client string
	Fields []string
}

func (r MyInfo) ReplyCode() int      { return int(ReplyMyInfo) }
func (r MyInfo) ReplyClient() string { return r.Client }

// ISupportReply is RPL_ISUPPORT (005): a batch of capability tokens plus a human-readable
// trailing message. LOGIN accumulates these across possibly-multiple lines into an ISupport.
type ISupportReply struct {
	Client  string
	Tokens  []ISupportParam
	Message string
}

func (r ISupportReply) ReplyCode() int      { return int(ReplyISupport) }
func (r ISupportReply) ReplyClient() string { return r.Client }

// ListStart is RPL_LISTSTART (321); accepted silently by ListCommand.
type ListStart struct{ Client string }

func (r ListStart) ReplyCode() int      { return int(ReplyListStart) }
func (r ListStart) ReplyClient() string { return r.Client }

// ListReply is RPL_LIST (322): one channel entry of a LIST response.
type ListReply struct {
	Client  string
	Channel string
	Clients uint64
	Topic   string
}

func (r ListReply) ReplyCode() int      { return int(ReplyList) }
func (r ListReply) ReplyClient() string { return r.Client }

// ListEnd is RPL_LISTEND (323); terminates a LIST response.
type ListEnd struct{ Client string }

func (r ListEnd) ReplyCode() int      { return int(ReplyEndOfList) }
func (r ListEnd) ReplyClient() string { return r.Client }

// UserhostReply is RPL_USERHOST (302): decoded nickname/operator/away/host elements.
type UserhostReply struct {
	Client  string
	Entries []UserhostEntry
}

func (r UserhostReply) ReplyCode() int      { return int(ReplyUserHost) }
func (r UserhostReply) ReplyClient() string { return r.Client }

// WhoReply is RPL_WHOREPLY (352): one matched user of a WHO query, with its flags field
// decoded into WhoFlags.
type WhoReply struct {
	Client   string
	Channel  string // "*" when the match is not tied to a channel
	Username string
	Host     string
	Server   string
	Nick     string
	Flags    WhoFlags
	Hops     string
	Realname string
}

func (r WhoReply) ReplyCode() int      { return int(ReplyWho) }
func (r WhoReply) ReplyClient() string { return r.Client }

// EndOfWho is RPL_ENDOFWHO (315); terminates a WHO response.
type EndOfWho struct {
	Client string
	Mask   string
}

func (r EndOfWho) ReplyCode() int      { return int(ReplyEndOfWho) }
func (r EndOfWho) ReplyClient() string { return r.Client }

// NamReply is RPL_NAMREPLY (353): one line of a NAMES response.
type NamReply struct {
	Client  string
	Symbol  string // channel visibility symbol: "=", "*", or "@"
	Channel string
	Nicks   string // space-separated, possibly prefixed per multi-prefix
}

func (r NamReply) ReplyCode() int      { return int(ReplyNames) }
func (r NamReply) ReplyClient() string { return r.Client }

// EndOfNames is RPL_ENDOFNAMES (366).
type EndOfNames struct {
	Client  string
	Channel string
}

func (r EndOfNames) ReplyCode() int      { return int(ReplyEndOfNames) }
func (r EndOfNames) ReplyClient() string { return r.Client }

// TopicReply is RPL_TOPIC (332).
type TopicReply struct {
	Client  string
	Channel string
	Text    string
}

func (r TopicReply) ReplyCode() int      { return int(ReplyChanTopic) }
func (r TopicReply) ReplyClient() string { return r.Client }

// NoTopic is RPL_NOTOPIC (331).
type NoTopic struct {
	Client  string
	Channel string
}

func (r NoTopic) ReplyCode() int      { return int(ReplyNoTopic) }
func (r NoTopic) ReplyClient() string { return r.Client }

// TopicWhoTime is RPL_TOPICWHOTIME (333): who set the topic and when.
type TopicWhoTime struct {
	Client  string
	Channel string
	SetBy   string
	SetAt   uint64 // unix seconds
}

func (r TopicWhoTime) ReplyCode() int      { return int(ReplyTopicWhoTime) }
func (r TopicWhoTime) ReplyClient() string { return r.Client }

// MotdStart is RPL_MOTDSTART (375).
type MotdStart struct {
	Client string
	Text   string
}

func (r MotdStart) ReplyCode() int      { return int(ReplyMOTDStart) }
func (r MotdStart) ReplyClient() string { return r.Client }

// Motd is RPL_MOTD (372): one line of the message of the day.
type Motd struct {
	Client string
	Text   string
}

func (r Motd) ReplyCode() int      { return int(ReplyMOTD) }
func (r Motd) ReplyClient() string { return r.Client }

// EndOfMotd is RPL_ENDOFMOTD (376).
type EndOfMotd struct {
	Client string
	Text   string
}

func (r EndOfMotd) ReplyCode() int      { return int(ReplyEndOFMOTD) }
func (r EndOfMotd) ReplyClient() string { return r.Client }

// NoMotd is ERR_NOMOTD (422). Not itself an error to the LIST/LOGIN commands.
type NoMotd struct {
	Client string
	Text   string
}

func (r NoMotd) ReplyCode() int      { return int(ReplyNoMOTD) }
func (r NoMotd) ReplyClient() string { return r.Client }

// TryAgain is ERR_TRYAGAIN (263).
type TryAgain struct {
	Client  string
	Message string
}

func (r TryAgain) ReplyCode() int      { return int(ReplyTryAgain) }
func (r TryAgain) ReplyClient() string { return r.Client }

// NotRegistered is ERR_NOTREGISTERED (451).
type NotRegistered struct {
	Client  string
	Message string
}

func (r NotRegistered) ReplyCode() int      { return int(ReplyNotRegistered) }
func (r NotRegistered) ReplyClient() string { return r.Client }

// UnknownCommand is ERR_UNKNOWNCOMMAND (421).
type UnknownCommand struct {
	Client  string
	Command string
	Message string
}

func (r UnknownCommand) ReplyCode() int      { return int(ReplyUnknownCommand) }
func (r UnknownCommand) ReplyClient() string { return r.Client }

// InputTooLong is ERR_INPUTTOOLONG (417).
type InputTooLong struct {
	Client  string
	Message string
}

func (r InputTooLong) ReplyCode() int      { return int(ReplyInputTooLong) }
func (r InputTooLong) ReplyClient() string { return r.Client }

// LoggedIn is RPL_LOGGEDIN (900): SASL authentication succeeded for Account.
type LoggedIn struct {
	Client  string
	Account string
	Message string
}

func (r LoggedIn) ReplyCode() int      { return int(ReplyLoggedIn) }
func (r LoggedIn) ReplyClient() string { return r.Client }

// LoggedOut is RPL_LOGGEDOUT (901).
type LoggedOut struct {
	Client  string
	Message string
}

func (r LoggedOut) ReplyCode() int      { return int(ReplyLoggedOut) }
func (r LoggedOut) ReplyClient() string { return r.Client }

// SaslSuccess is RPL_SASLSUCCESS (903).
type SaslSuccess struct {
	Client  string
	Message string
}

func (r SaslSuccess) ReplyCode() int      { return int(ReplySASLSuccess) }
func (r SaslSuccess) ReplyClient() string { return r.Client }

// SaslFail is ERR_SASLFAIL (904).
type SaslFail struct {
	Client  string
	Message string
}

func (r SaslFail) ReplyCode() int      { return int(ReplySASLFail) }
func (r SaslFail) ReplyClient() string { return r.Client }

// SaslMechs is RPL_SASLMECHS (908): the server's supported SASL mechanism list.
type SaslMechs struct {
	Client     string
	Mechanisms string
}

func (r SaslMechs) ReplyCode() int      { return int(ReplySASLMechs) }
func (r SaslMechs) ReplyClient() string { return r.Client }

// ChannelURL is RPL_CHANNEL_URL (328).
type ChannelURL struct {
	Client  string
	Channel string
	URL     string
}

func (r ChannelURL) ReplyCode() int      { return int(ReplyChannelURL) }
func (r ChannelURL) ReplyClient() string { return r.Client }

// UModeIs is RPL_UMODEIS (221): the client's own current user modes.
type UModeIs struct {
	Client string
	Modes  string
}

func (r UModeIs) ReplyCode() int      { return int(ReplyUserModeIs) }
func (r UModeIs) ReplyClient() string { return r.Client }

// VersionReply is RPL_VERSION (351).
type VersionReply struct {
	Client  string
	Version string
	Message string
}

func (r VersionReply) ReplyCode() int      { return int(ReplyVersion) }
func (r VersionReply) ReplyClient() string { return r.Client }

// WhoisActually is RPL_WHOISACTUALLY (338): a WHOIS target's real host/IP.
type WhoisActually struct {
	Client  string
	Nick    string
	Message string
}

func (r WhoisActually) ReplyCode() int      { return int(ReplyWhoisActually) }
func (r WhoisActually) ReplyClient() string { return r.Client }
