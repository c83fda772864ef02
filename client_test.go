/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wires a Client directly onto an in-memory connection, bypassing dial.
func newTestClient(conn net.Conn) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)

	c := &Client{
		conn:       conn,
		codec:      NewMessageCodec(MaxLineLength),
		log:        log,
		writeCh:    make(chan []byte, WriteQueueLength),
		incoming:   make(chan *RawMessage, IncomingQueueLength),
		ioErr:      make(chan error, 1),
		quit:       make(chan struct{}),
		wg:         conc.NewWaitGroup(),
		responders: NewAutoResponderSet(),
	}
	c.wg.Go(c.readLoop)
	c.wg.Go(c.writeLoop)
	return c
}

func expectLine(r *bufio.Reader, want string) error {
	line, err := r.ReadString('\n')
	if err != nil {
		return err
	}
	if got := strings.TrimRight(line, "\r\n"); got != want {
		return fmt.Errorf("expected %q, read %q", want, got)
	}
	return nil
}

func TestClientRunListCommand(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	client := newTestClient(clientConn)
	defer client.Close()
	client.SetAutoResponders(NewAutoResponderSet(NewPingResponder()))

	serverDone := make(chan error, 1)
	go func() {
		defer serverConn.Close()
		r := bufio.NewReader(serverConn)

		if err := expectLine(r, "LIST"); err != nil {
			serverDone <- err
			return
		}

		// Interleave a keepalive to prove autoresponders run ahead of the Command.
		if _, err := serverConn.Write([]byte("PING :alpha\r\n")); err != nil {
			serverDone <- err
			return
		}
		if err := expectLine(r, "PONG :alpha"); err != nil {
			serverDone <- err
			return
		}

		script := []string{
			":irc.example.org 321 me Channel :Users Name\r\n",
			":irc.example.org 322 me #a 3 :hello\r\n",
			":irc.example.org 322 me #b 0 :\r\n",
			":irc.example.org 323 me :End of /LIST\r\n",
		}
		for _, line := range script {
			if _, err := serverConn.Write([]byte(line)); err != nil {
				serverDone <- err
				return
			}
		}
		serverDone <- nil
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := NewListCommand()
	require.NoError(t, client.Run(ctx, cmd))
	require.NoError(t, <-serverDone)

	entries, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, []ListEntry{
		{Channel: "#a", Clients: 3, Topic: "hello"},
		{Channel: "#b", Clients: 0, Topic: ""},
	}, entries)
}

func TestClientRecvNewAndSend(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	client := newTestClient(clientConn)
	defer client.Close()
	client.SetAutoResponders(NewAutoResponderSet(NewPingResponder()))

	serverDone := make(chan error, 1)
	go func() {
		defer serverConn.Close()
		r := bufio.NewReader(serverConn)

		if _, err := serverConn.Write([]byte("PING :keepalive\r\n:nick!u@h PRIVMSG me :hi there\r\n")); err != nil {
			serverDone <- err
			return
		}
		if err := expectLine(r, "PONG :keepalive"); err != nil {
			serverDone <- err
			return
		}
		serverDone <- expectLine(r, "QUIT :bye")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, err := client.RecvNew(ctx)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, CmdPrivMsg, msg.Verb, "the consumed PING is skipped")

	require.NoError(t, client.Send(ctx, NewQuit("bye")))
	require.NoError(t, <-serverDone)

	msg, err = client.RecvNew(ctx)
	require.NoError(t, err)
	assert.Nil(t, msg, "clean disconnect reports no message and no error")
}

func TestClientRunExclusive(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()
	client := newTestClient(clientConn)
	defer client.Close()

	client.mu.Lock()
	client.busy = true
	client.mu.Unlock()

	err := client.Run(context.Background(), NewListCommand())
	assert.ErrorIs(t, err, ErrClientBusy)
}

func TestClientRunCancellation(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()
	client := newTestClient(clientConn)
	defer client.Close()

	go func() {
		// Swallow the outgoing LIST so Run reaches its select.
		r := bufio.NewReader(serverConn)
		_, _ = r.ReadString('\n')
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	cmd := NewListCommand()
	err := client.Run(ctx, cmd)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, cmd.IsDone(), "a cancelled command is dropped, not completed")
}
