/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"context"

	nested "github.com/antonfisher/nested-logrus-formatter"

	"github.com/btnmasher/ircnet/shared/logfmt"
)

// WithDefaultLogFormatter installs the plain nested-field formatter, suited to
// non-interactive logging.
func WithDefaultLogFormatter() ClientOption {
	return func(c *Client) {
		c.log.SetFormatter(&nested.Formatter{
			HideKeys:    true,
			FieldsOrder: []string{"component"},
		})
	}
}

// WithStyledLogFormatter installs the ANSI-styled shared/logfmt formatter for interactive
// terminals.
func WithStyledLogFormatter(opts ...logfmt.FormatOption) ClientOption {
	return func(c *Client) {
		c.log.SetFormatter(logfmt.New(opts...))
	}
}

// SessionBuilder composes connection params, login params, and autoresponders before Build.
type SessionBuilder struct {
	conn       ConnectionParams
	login      LoginParams
	responders []AutoResponder
	clientOpts []ClientOption
}

// NewSessionBuilder starts a SessionBuilder for the given transport and registration
// parameters.
func NewSessionBuilder(conn ConnectionParams, login LoginParams) *SessionBuilder {
	return &SessionBuilder{conn: conn, login: login}
}

// WithAutoResponder appends an AutoResponder to the set installed at Build time.
func (b *SessionBuilder) WithAutoResponder(r AutoResponder) *SessionBuilder {
	b.responders = append(b.responders, r)
	return b
}

// WithClientOption appends a ClientOption applied at Build time.
func (b *SessionBuilder) WithClientOption(opt ClientOption) *SessionBuilder {
	b.clientOpts = append(b.clientOpts, opt)
	return b
}

// Build dials the connection, installs the configured AutoResponderSet, and runs LOGIN to
// completion, returning the ready Client and its LoginOutput.
func (b *SessionBuilder) Build(ctx context.Context) (*Client, LoginOutput, error) {
	client, err := Connect(ctx, b.conn, b.clientOpts...)
	if err != nil {
		return nil, LoginOutput{}, err
	}
	client.SetAutoResponders(NewAutoResponderSet(b.responders...))

	login := NewLoginCommand(b.login)
	if err := client.Run(ctx, login); err != nil {
		client.Close()
		return nil, LoginOutput{}, err
	}
	out, loginErr := login.Output()
	if loginErr != nil {
		client.Close()
		return nil, LoginOutput{}, loginErr
	}
	return client, out, nil
}
