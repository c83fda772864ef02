/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import "strings"

func init() {
	registerClientMessage(CmdPing, parsePing)
	registerClientMessage(CmdPong, parsePong)
	registerClientMessage(CmdQuit, parseQuit)
	registerClientMessage(CmdNick, parseNick)
	registerClientMessage(CmdUser, parseUser)
	registerClientMessage(CmdPass, parsePass)
	registerClientMessage(CmdJoin, parseJoin)
	registerClientMessage(CmdPart, parsePart)
	registerClientMessage(CmdTopic, parseTopic)
	registerClientMessage(CmdNames, parseNames)
	registerClientMessage(CmdList, parseList)
	registerClientMessage(CmdMode, parseMode)
	registerClientMessage(CmdKick, parseKick)
	registerClientMessage(CmdInvite, parseInvite)
	registerClientMessage(CmdAway, parseAway)
	registerClientMessage(CmdWho, parseWho)
	registerClientMessage(CmdWhois, parseWhois)
	registerClientMessage(CmdUserhost, parseUserhost)
	registerClientMessage(CmdMotd, parseMotd)
	registerClientMessage(CmdLUsers, parseLUsers)
	registerClientMessage(CmdWallops, parseWallops)
	registerClientMessage(CmdError, parseError)
	registerClientMessage(CmdCap, parseCap)
	registerClientMessage(CmdAuthenticate, parseAuthenticate)
	registerClientMessage(CmdAccount, parseAccount)
	registerClientMessage(CmdPrivMsg, parsePrivmsg)
	registerClientMessage(CmdNotice, parseNotice)
	registerClientMessage(CmdTagMsg, parseTagMsg)
}

// --- PING / PONG -----------------------------------------------------------------------

type Ping struct{ Payload string }

func NewPing(payload string) Ping { return Ping{Payload: payload} }
func (p Ping) ClientVerb() string { return CmdPing }
func (p Ping) Params() (ParameterList, error) { return paramsWithTrailing(p.Payload) }
func parsePing(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	return Ping{Payload: v[0]}, nil
}

type Pong struct{ Payload string }

func NewPong(payload string) Pong { return Pong{Payload: payload} }
func (p Pong) ClientVerb() string { return CmdPong }
func (p Pong) Params() (ParameterList, error) { return paramsWithTrailing(p.Payload) }
func parsePong(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	return Pong{Payload: v[0]}, nil
}

// --- QUIT -------------------------------------------------------------------------------

type Quit struct{ Reason string }

func NewQuit(reason string) Quit { return Quit{Reason: reason} }
func (q Quit) ClientVerb() string { return CmdQuit }
func (q Quit) Params() (ParameterList, error) {
	if q.Reason == "" {
		return ParameterList{}, nil
	}
	return paramsWithTrailing(q.Reason)
}
func parseQuit(p ParameterList) (ClientMessage, error) {
	reason, _ := p.At(0)
	return Quit{Reason: reason}, nil
}

// --- NICK -------------------------------------------------------------------------------

type Nick struct{ Nickname Nickname }

func NewNick(n Nickname) Nick { return Nick{Nickname: n} }
func (n Nick) ClientVerb() string { return CmdNick }
func (n Nick) Params() (ParameterList, error) { return ParamsFromStrings(n.Nickname.String()) }
func parseNick(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	n, err := NewNickname(v[0])
	if err != nil {
		return nil, err
	}
	return Nick{Nickname: n}, nil
}

// --- USER -------------------------------------------------------------------------------

type User struct {
	Username Username
	Mode     string // numeric user-mode bitmask, conventionally "0"
	Realname string
}

func NewUser(u Username, mode, realname string) User {
	return User{Username: u, Mode: mode, Realname: realname}
}
func (u User) ClientVerb() string { return CmdUser }
func (u User) Params() (ParameterList, error) {
	return paramsWithTrailing(u.Realname, u.Username.String(), u.Mode, "*")
}
func parseUser(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(4)
	if err != nil {
		return nil, err
	}
	uname, err := NewUsername(v[0])
	if err != nil {
		return nil, err
	}
	return User{Username: uname, Mode: v[1], Realname: v[3]}, nil
}

// --- PASS -------------------------------------------------------------------------------

type Pass struct{ Password string }

func NewPass(password string) Pass { return Pass{Password: password} }
func (p Pass) ClientVerb() string { return CmdPass }
func (p Pass) Params() (ParameterList, error) { return paramsWithTrailing(p.Password) }
func parsePass(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	return Pass{Password: v[0]}, nil
}

// --- JOIN -------------------------------------------------------------------------------

// Join carries parallel lists of channels and optional keys (empty string = no key for that
// channel).
type Join struct {
	Channels []Channel
	Keys     []string
}

func NewJoin(channels []Channel, keys []string) Join { return Join{Channels: channels, Keys: keys} }
func (j Join) ClientVerb() string { return CmdJoin }
func (j Join) Params() (ParameterList, error) {
	names := make([]string, len(j.Channels))
	for i, c := range j.Channels {
		names[i] = c.String()
	}
	chanList := strings.Join(names, ",")
	if len(j.Keys) == 0 {
		return ParamsFromStrings(chanList)
	}
	return ParamsFromStrings(chanList, strings.Join(j.Keys, ","))
}
func parseJoin(p ParameterList) (ClientMessage, error) {
	v, err := p.AtLeast(1)
	if err != nil {
		return nil, err
	}
	names := strings.Split(v[0], ",")
	channels := make([]Channel, 0, len(names))
	for _, n := range names {
		c, err := NewChannel(n)
		if err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	var keys []string
	if len(v) > 1 {
		keys = strings.Split(v[1], ",")
	}
	return Join{Channels: channels, Keys: keys}, nil
}

// --- PART -------------------------------------------------------------------------------

type Part struct {
	Channels []Channel
	Reason   string
}

func NewPart(channels []Channel, reason string) Part { return Part{Channels: channels, Reason: reason} }
func (p Part) ClientVerb() string { return CmdPart }
func (p Part) Params() (ParameterList, error) {
	names := make([]string, len(p.Channels))
	for i, c := range p.Channels {
		names[i] = c.String()
	}
	chanList := strings.Join(names, ",")
	if p.Reason == "" {
		return ParamsFromStrings(chanList)
	}
	return paramsWithTrailing(p.Reason, chanList)
}
func parsePart(p ParameterList) (ClientMessage, error) {
	v, err := p.AtLeast(1)
	if err != nil {
		return nil, err
	}
	names := strings.Split(v[0], ",")
	channels := make([]Channel, 0, len(names))
	for _, n := range names {
		c, err := NewChannel(n)
		if err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	reason := ""
	if len(v) > 1 {
		reason = v[1]
	}
	return Part{Channels: channels, Reason: reason}, nil
}

// --- TOPIC ------------------------------------------------------------------------------

// Topic with a nil Text queries the current topic; a non-nil Text sets it (possibly to "").
type Topic struct {
	Channel Channel
	Text    *string
}

func NewTopicQuery(c Channel) Topic { return Topic{Channel: c} }
func NewTopicSet(c Channel, text string) Topic { return Topic{Channel: c, Text: &text} }
func (t Topic) ClientVerb() string { return CmdTopic }
func (t Topic) Params() (ParameterList, error) {
	if t.Text == nil {
		return ParamsFromStrings(t.Channel.String())
	}
	return paramsWithTrailing(*t.Text, t.Channel.String())
}
func parseTopic(p ParameterList) (ClientMessage, error) {
	v, err := p.AtLeast(1)
	if err != nil {
		return nil, err
	}
	c, err := NewChannel(v[0])
	if err != nil {
		return nil, err
	}
	if len(v) == 1 {
		return Topic{Channel: c}, nil
	}
	text := v[1]
	return Topic{Channel: c, Text: &text}, nil
}

// --- NAMES ------------------------------------------------------------------------------

type Names struct{ Channels []Channel }

func NewNames(channels []Channel) Names { return Names{Channels: channels} }
func (n Names) ClientVerb() string { return CmdNames }
func (n Names) Params() (ParameterList, error) {
	if len(n.Channels) == 0 {
		return ParameterList{}, nil
	}
	names := make([]string, len(n.Channels))
	for i, c := range n.Channels {
		names[i] = c.String()
	}
	return ParamsFromStrings(strings.Join(names, ","))
}
func parseNames(p ParameterList) (ClientMessage, error) {
	if p.Len() == 0 {
		return Names{}, nil
	}
	v, _ := p.Exactly(1)
	names := strings.Split(v[0], ",")
	channels := make([]Channel, 0, len(names))
	for _, n := range names {
		c, err := NewChannel(n)
		if err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	return Names{Channels: channels}, nil
}

// --- LIST -------------------------------------------------------------------------------

type List struct{ Channels []Channel }

func NewList(channels []Channel) List { return List{Channels: channels} }
func (l List) ClientVerb() string { return CmdList }
func (l List) Params() (ParameterList, error) {
	if len(l.Channels) == 0 {
		return ParameterList{}, nil
	}
	names := make([]string, len(l.Channels))
	for i, c := range l.Channels {
		names[i] = c.String()
	}
	return ParamsFromStrings(strings.Join(names, ","))
}
func parseList(p ParameterList) (ClientMessage, error) {
	if p.Len() == 0 {
		return List{}, nil
	}
	v, _ := p.Exactly(1)
	names := strings.Split(v[0], ",")
	channels := make([]Channel, 0, len(names))
	for _, n := range names {
		c, err := NewChannel(n)
		if err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	return List{Channels: channels}, nil
}

// --- MODE -------------------------------------------------------------------------------

type Mode struct {
	Target ModeTarget
	Modes  string
	Args   []string
}

// ModeTarget is a MODE command's first parameter: either a channel or a nickname.
type ModeTarget struct {
	IsChannel bool
	Chan      Channel
	Nick      Nickname
}

func (t ModeTarget) String() string {
	if t.IsChannel {
		return t.Chan.String()
	}
	return t.Nick.String()
}

func NewMode(target ModeTarget, modes string, args []string) Mode {
	return Mode{Target: target, Modes: modes, Args: args}
}
func (m Mode) ClientVerb() string { return CmdMode }
func (m Mode) Params() (ParameterList, error) {
	values := append([]string{m.Target.String()}, m.Modes)
	values = append(values, m.Args...)
	return ParamsFromStrings(values...)
}
func parseMode(p ParameterList) (ClientMessage, error) {
	v, err := p.AtLeast(1)
	if err != nil {
		return nil, err
	}
	target, err := parseModeTarget(v[0])
	if err != nil {
		return nil, err
	}
	modes := ""
	var args []string
	if len(v) > 1 {
		modes = v[1]
		args = v[2:]
	}
	return Mode{Target: target, Modes: modes, Args: args}, nil
}

func parseModeTarget(s string) (ModeTarget, error) {
	if len(s) > 0 && (s[0] == '#' || s[0] == '&') {
		c, err := NewChannel(s)
		if err != nil {
			return ModeTarget{}, err
		}
		return ModeTarget{IsChannel: true, Chan: c}, nil
	}
	n, err := NewNickname(s)
	if err != nil {
		return ModeTarget{}, err
	}
	return ModeTarget{Nick: n}, nil
}

// --- KICK -------------------------------------------------------------------------------

type Kick struct {
	Channel Channel
	Nick    Nickname
	Reason  string
}

func NewKick(c Channel, n Nickname, reason string) Kick { return Kick{Channel: c, Nick: n, Reason: reason} }
func (k Kick) ClientVerb() string { return CmdKick }
func (k Kick) Params() (ParameterList, error) {
	if k.Reason == "" {
		return ParamsFromStrings(k.Channel.String(), k.Nick.String())
	}
	return paramsWithTrailing(k.Reason, k.Channel.String(), k.Nick.String())
}
func parseKick(p ParameterList) (ClientMessage, error) {
	v, err := p.AtLeast(2)
	if err != nil {
		return nil, err
	}
	c, err := NewChannel(v[0])
	if err != nil {
		return nil, err
	}
	n, err := NewNickname(v[1])
	if err != nil {
		return nil, err
	}
	reason := ""
	if len(v) > 2 {
		reason = v[2]
	}
	return Kick{Channel: c, Nick: n, Reason: reason}, nil
}

// --- INVITE -----------------------------------------------------------------------------

type Invite struct {
	Nick    Nickname
	Channel Channel
}

func NewInvite(n Nickname, c Channel) Invite { return Invite{Nick: n, Channel: c} }
func (i Invite) ClientVerb() string { return CmdInvite }
func (i Invite) Params() (ParameterList, error) { return ParamsFromStrings(i.Nick.String(), i.Channel.String()) }
func parseInvite(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(2)
	if err != nil {
		return nil, err
	}
	n, err := NewNickname(v[0])
	if err != nil {
		return nil, err
	}
	c, err := NewChannel(v[1])
	if err != nil {
		return nil, err
	}
	return Invite{Nick: n, Channel: c}, nil
}

// --- AWAY -------------------------------------------------------------------------------

type Away struct{ Message string } // empty Message clears away status

func NewAway(message string) Away { return Away{Message: message} }
func (a Away) ClientVerb() string { return CmdAway }
func (a Away) Params() (ParameterList, error) {
	if a.Message == "" {
		return ParameterList{}, nil
	}
	return paramsWithTrailing(a.Message)
}
func parseAway(p ParameterList) (ClientMessage, error) {
	message, _ := p.At(0)
	return Away{Message: message}, nil
}

// --- WHO / WHOIS / USERHOST ---------------------------------------------------------------

type Who struct{ Mask string }

func NewWho(mask string) Who { return Who{Mask: mask} }
func (w Who) ClientVerb() string { return CmdWho }
func (w Who) Params() (ParameterList, error) {
	if w.Mask == "" {
		return ParameterList{}, nil
	}
	return ParamsFromStrings(w.Mask)
}
func parseWho(p ParameterList) (ClientMessage, error) {
	mask, _ := p.At(0)
	return Who{Mask: mask}, nil
}

type Whois struct{ Nicks []Nickname }

func NewWhois(nicks []Nickname) Whois { return Whois{Nicks: nicks} }
func (w Whois) ClientVerb() string { return CmdWhois }
func (w Whois) Params() (ParameterList, error) {
	names := make([]string, len(w.Nicks))
	for i, n := range w.Nicks {
		names[i] = n.String()
	}
	return ParamsFromStrings(strings.Join(names, ","))
}
func parseWhois(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	names := strings.Split(v[0], ",")
	nicks := make([]Nickname, 0, len(names))
	for _, n := range names {
		nick, err := NewNickname(n)
		if err != nil {
			return nil, err
		}
		nicks = append(nicks, nick)
	}
	return Whois{Nicks: nicks}, nil
}

type Userhost struct{ Nicks []Nickname }

func NewUserhost(nicks []Nickname) Userhost { return Userhost{Nicks: nicks} }
func (u Userhost) ClientVerb() string { return CmdUserhost }
func (u Userhost) Params() (ParameterList, error) {
	names := make([]string, len(u.Nicks))
	for i, n := range u.Nicks {
		names[i] = n.String()
	}
	return ParamsFromStrings(names...)
}
func parseUserhost(p ParameterList) (ClientMessage, error) {
	v, err := p.AtLeast(1)
	if err != nil {
		return nil, err
	}
	nicks := make([]Nickname, 0, len(v))
	for _, n := range v {
		nick, err := NewNickname(n)
		if err != nil {
			return nil, err
		}
		nicks = append(nicks, nick)
	}
	return Userhost{Nicks: nicks}, nil
}

// --- MOTD / LUSERS / WALLOPS --------------------------------------------------------------

type MotdRequest struct{ Target string }

func NewMotd(target string) MotdRequest { return MotdRequest{Target: target} }
func (m MotdRequest) ClientVerb() string { return CmdMotd }
func (m MotdRequest) Params() (ParameterList, error) {
	if m.Target == "" {
		return ParameterList{}, nil
	}
	return ParamsFromStrings(m.Target)
}
func parseMotd(p ParameterList) (ClientMessage, error) {
	target, _ := p.At(0)
	return MotdRequest{Target: target}, nil
}

type LUsers struct{}

func NewLUsers() LUsers { return LUsers{} }
func (l LUsers) ClientVerb() string { return CmdLUsers }
func (l LUsers) Params() (ParameterList, error) { return ParameterList{}, nil }
func parseLUsers(p ParameterList) (ClientMessage, error) { return LUsers{}, nil }

type Wallops struct{ Text string }

func NewWallops(text string) Wallops { return Wallops{Text: text} }
func (w Wallops) ClientVerb() string { return CmdWallops }
func (w Wallops) Params() (ParameterList, error) { return paramsWithTrailing(w.Text) }
func parseWallops(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	return Wallops{Text: v[0]}, nil
}

// --- ERROR ------------------------------------------------------------------------------

type ErrorMsg struct{ Reason string }

func NewErrorMsg(reason string) ErrorMsg { return ErrorMsg{Reason: reason} }
func (e ErrorMsg) ClientVerb() string { return CmdError }
func (e ErrorMsg) Params() (ParameterList, error) { return paramsWithTrailing(e.Reason) }
func parseError(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	return ErrorMsg{Reason: v[0]}, nil
}

// --- CAP / AUTHENTICATE / ACCOUNT (IRCv3) --------------------------------------------------

type Cap struct {
	Subcommand string
	Args       []string
}

func NewCap(subcommand string, args ...string) Cap { return Cap{Subcommand: subcommand, Args: args} }
func (c Cap) ClientVerb() string { return CmdCap }
func (c Cap) Params() (ParameterList, error) {
	values := append([]string{c.Subcommand}, c.Args...)
	return ParamsFromStrings(values...)
}
func parseCap(p ParameterList) (ClientMessage, error) {
	v, err := p.AtLeast(1)
	if err != nil {
		return nil, err
	}
	return Cap{Subcommand: v[0], Args: v[1:]}, nil
}

type Authenticate struct{ Payload string } // "+" requests continuation; base64 payload otherwise

func NewAuthenticate(payload string) Authenticate { return Authenticate{Payload: payload} }
func (a Authenticate) ClientVerb() string { return CmdAuthenticate }
func (a Authenticate) Params() (ParameterList, error) { return paramsWithTrailing(a.Payload) }
func parseAuthenticate(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	return Authenticate{Payload: v[0]}, nil
}

type Account struct{ Name string } // "*" signals logged-out

func NewAccount(name string) Account { return Account{Name: name} }
func (a Account) ClientVerb() string { return CmdAccount }
func (a Account) Params() (ParameterList, error) { return ParamsFromStrings(a.Name) }
func parseAccount(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	return Account{Name: v[0]}, nil
}

// --- PRIVMSG / NOTICE / TAGMSG -------------------------------------------------------------

type Privmsg struct {
	Targets []MsgTarget
	Text    string
}

func NewPrivmsg(targets []MsgTarget, text string) Privmsg { return Privmsg{Targets: targets, Text: text} }
func (m Privmsg) ClientVerb() string { return CmdPrivMsg }
func (m Privmsg) Params() (ParameterList, error) {
	if len(m.Targets) == 0 {
		return ParameterList{}, ErrNoTargets
	}
	return paramsWithTrailing(m.Text, joinTargets(m.Targets))
}
func parsePrivmsg(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(2)
	if err != nil {
		return nil, err
	}
	targets, err := ParseMsgTargets(v[0])
	if err != nil {
		return nil, err
	}
	return Privmsg{Targets: targets, Text: v[1]}, nil
}

type Notice struct {
	Targets []MsgTarget
	Text    string
}

func NewNotice(targets []MsgTarget, text string) Notice { return Notice{Targets: targets, Text: text} }
func (m Notice) ClientVerb() string { return CmdNotice }
func (m Notice) Params() (ParameterList, error) {
	if len(m.Targets) == 0 {
		return ParameterList{}, ErrNoTargets
	}
	return paramsWithTrailing(m.Text, joinTargets(m.Targets))
}
func parseNotice(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(2)
	if err != nil {
		return nil, err
	}
	targets, err := ParseMsgTargets(v[0])
	if err != nil {
		return nil, err
	}
	return Notice{Targets: targets, Text: v[1]}, nil
}

type TagMsg struct{ Targets []MsgTarget }

func NewTagMsg(targets []MsgTarget) TagMsg { return TagMsg{Targets: targets} }
func (m TagMsg) ClientVerb() string { return CmdTagMsg }
func (m TagMsg) Params() (ParameterList, error) {
	if len(m.Targets) == 0 {
		return ParameterList{}, ErrNoTargets
	}
	return ParamsFromStrings(joinTargets(m.Targets))
}
func parseTagMsg(p ParameterList) (ClientMessage, error) {
	v, err := p.Exactly(1)
	if err != nil {
		return nil, err
	}
	targets, err := ParseMsgTargets(v[0])
	if err != nil {
		return nil, err
	}
	return TagMsg{Targets: targets}, nil
}
