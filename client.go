/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// Queue depths and the read buffer size for the goroutines a Client owns.
const (
	WriteQueueLength    = 32
	IncomingQueueLength = 32
	ReadBufferSize      = 4096
)

// ClientOption configures a Client at Connect time.
type ClientOption func(*Client)

// WithLogger installs a caller-supplied *logrus.Logger in place of the default.
func WithLogger(log *logrus.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithLogLevel sets the logging verbosity on the Client's logger.
func WithLogLevel(level logrus.Level) ClientOption {
	return func(c *Client) { c.log.SetLevel(level) }
}

// Client owns one framed connection, the active Command (at most one, via Run), and an
// AutoResponderSet. A dedicated read goroutine and write goroutine bracket the socket; the
// Run caller's goroutine drives the dispatch loop between them.
type Client struct {
	conn  net.Conn
	codec *MessageCodec
	log   *logrus.Logger

	writeCh  chan []byte
	incoming chan *RawMessage
	ioErr    chan error
	quit     chan struct{}

	wg        *conc.WaitGroup
	closeOnce sync.Once

	mu   sync.Mutex
	busy bool

	responders *AutoResponderSet
}

// Connect dials params (plain TCP or TLS per params.UseTLS) and starts the Client's
// read/write goroutines. The returned Client has an empty AutoResponderSet; call
// SetAutoResponders to install one before Run.
func Connect(ctx context.Context, params ConnectionParams, opts ...ClientOption) (*Client, error) {
	conn, err := dial(ctx, params)
	if err != nil {
		return nil, err
	}

	c := &Client{
		conn:       conn,
		codec:      NewMessageCodec(MaxLineLength),
		log:        logrus.New(),
		writeCh:    make(chan []byte, WriteQueueLength),
		incoming:   make(chan *RawMessage, IncomingQueueLength),
		ioErr:      make(chan error, 1),
		quit:       make(chan struct{}),
		wg:         conc.NewWaitGroup(),
		responders: NewAutoResponderSet(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.wg.Go(c.readLoop)
	c.wg.Go(c.writeLoop)

	return c, nil
}

// SetAutoResponders replaces the Client's AutoResponderSet.
func (c *Client) SetAutoResponders(set *AutoResponderSet) {
	c.responders = set
}

// Close tears down the connection and waits for the read/write goroutines to exit. Frames
// still queued for write are dropped.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.quit)
		err = c.conn.Close()
		c.wg.Wait()
	})
	return err
}

// readLoop decodes frames off the socket and hands them to Run/RecvNew via c.incoming.
func (c *Client) readLoop() {
	defer close(c.incoming)

	buf := make([]byte, ReadBufferSize)
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			c.codec.Push(buf[:n])
			for {
				msg, ok, perr := c.codec.Next()
				if perr != nil {
					c.log.WithError(perr).Warn("irc: discarding malformed frame")
					continue
				}
				if !ok {
					break
				}
				select {
				case c.incoming <- msg:
				case <-c.quit:
					return
				}
			}
		}
		if err != nil {
			if final, ok, _ := c.codec.FinalMessage(); ok {
				select {
				case c.incoming <- final:
				case <-c.quit:
					return
				}
			}
			if !errors.Is(err, io.EOF) {
				select {
				case c.ioErr <- MessageCodecError{Kind: CodecErrIO, Err: err}:
				default:
				}
			}
			return
		}
	}
}

// writeLoop flushes queued outgoing frames to the socket in submission order.
func (c *Client) writeLoop() {
	for {
		select {
		case data := <-c.writeCh:
			if _, err := c.conn.Write(data); err != nil {
				c.log.WithError(err).Warn("irc: write error")
				select {
				case c.ioErr <- MessageCodecError{Kind: CodecErrIO, Err: err}:
				default:
				}
				return
			}
		case <-c.quit:
			return
		}
	}
}

// writeMessage encodes and enqueues one outgoing ClientMessage, blocking (subject to ctx)
// if the write queue is full. The queue is bounded; outgoing traffic is never buffered
// without limit.
func (c *Client) writeMessage(ctx context.Context, cm ClientMessage) error {
	data, err := encodeClientMessage(cm)
	if err != nil {
		return err
	}
	select {
	case c.writeCh <- data:
		return nil
	case <-c.quit:
		return ErrConnectionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// encodeClientMessage renders a ClientMessage to its wire bytes via a pooled RawMessage.
func encodeClientMessage(cm ClientMessage) ([]byte, error) {
	params, err := cm.Params()
	if err != nil {
		return nil, err
	}
	msg := acquireRawMessage()
	msg.Verb = cm.ClientVerb()
	msg.Params = params
	out := Encode(msg)
	releaseRawMessage(msg)
	return out, nil
}

// flushOutgoing drains the AutoResponderSet's queued replies, then the Command's, writing
// each in order. AutoResponders always drain before the Command within one step.
func (c *Client) flushOutgoing(ctx context.Context, cmd Command) error {
	for _, m := range c.responders.ClientMessages() {
		if err := c.writeMessage(ctx, m); err != nil {
			return err
		}
	}
	for _, m := range cmd.ClientMessages() {
		if err := c.writeMessage(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// Run drives cmd to completion. It returns nil once cmd.IsDone(); the
// caller then retrieves the command's typed result via its own Output method. A non-nil
// error means Run exited early (I/O failure, connection close, or ctx cancellation) and cmd
// was dropped without reaching IsDone; Output must not be called in that case.
func (c *Client) Run(ctx context.Context, cmd Command) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrClientBusy
	}
	c.busy = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	var timer *time.Timer
	var timerC <-chan time.Time
	armTimer := func(d *time.Duration) {
		if timer != nil {
			timer.Stop()
		}
		if d == nil {
			timerC = nil
			return
		}
		timer = time.NewTimer(*d)
		timerC = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	if err := c.flushOutgoing(ctx, cmd); err != nil {
		return err
	}
	armTimer(cmd.GetTimeout())

	for !cmd.IsDone() {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-c.ioErr:
			return err

		case msg, ok := <-c.incoming:
			if !ok {
				return ErrConnectionClosed
			}
			if !c.responders.HandleMessage(msg) {
				cmd.HandleMessage(msg)
			}
			if err := c.flushOutgoing(ctx, cmd); err != nil {
				return err
			}
			armTimer(cmd.GetTimeout())

		case <-timerC:
			cmd.HandleTimeout()
			if err := c.flushOutgoing(ctx, cmd); err != nil {
				return err
			}
			armTimer(cmd.GetTimeout())
		}
	}

	return nil
}

// Send enqueues a one-shot outgoing message outside of any Command, e.g. PRIVMSG traffic
// a caller drives directly rather than through a Command.
func (c *Client) Send(ctx context.Context, cm ClientMessage) error {
	return c.writeMessage(ctx, cm)
}

// RecvNew blocks until the next incoming message not consumed by any AutoResponder, writing
// any replies the AutoResponders queue along the way. It returns (nil, nil) at a clean
// server disconnect.
func (c *Client) RecvNew(ctx context.Context) (*RawMessage, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case err := <-c.ioErr:
			return nil, err

		case msg, ok := <-c.incoming:
			if !ok {
				return nil, nil
			}
			consumed := c.responders.HandleMessage(msg)
			for _, m := range c.responders.ClientMessages() {
				if err := c.writeMessage(ctx, m); err != nil {
					return nil, err
				}
			}
			if !consumed {
				return msg, nil
			}
		}
	}
}
