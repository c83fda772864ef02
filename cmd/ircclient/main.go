/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sourcegraph/conc"

	irc "github.com/btnmasher/ircnet"

	"github.com/sirupsen/logrus"
)

func main() {
	host := flag.String("host", "irc.localhost.net", "server hostname")
	port := flag.Int("port", 0, "server port (0 selects the protocol default)")
	useTLS := flag.Bool("tls", false, "connect over TLS")
	nick := flag.String("nick", "ircnetbot", "nickname to register")
	user := flag.String("user", "ircnet", "username to register")
	realname := flag.String("realname", "ircnet demo client", "GECOS realname")
	doList := flag.Bool("list", false, "run LIST after login and print the channel directory")
	flag.Parse()

	mainContext, shutdown := context.WithCancel(context.Background())
	defer shutdown()

	wg := conc.NewWaitGroup()
	defer wg.Wait()

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	nickname, err := irc.NewNickname(*nick)
	if err != nil {
		logger.Fatal(fmt.Errorf("invalid nickname: %w", err))
	}
	username, err := irc.NewUsername(*user)
	if err != nil {
		logger.Fatal(fmt.Errorf("invalid username: %w", err))
	}

	builder := irc.NewSessionBuilder(
		irc.ConnectionParams{Host: *host, Port: *port, UseTLS: *useTLS},
		irc.LoginParams{Nickname: nickname, Username: username, Realname: *realname},
	).WithAutoResponder(irc.NewPingResponder()).
		WithAutoResponder(irc.NewCtcpQueryResponder(irc.CtcpReplies{
			Version: "ircnet demo client",
			Source:  "https://github.com/btnmasher/ircnet",
		})).
		WithClientOption(irc.WithLogger(logger)).
		WithClientOption(irc.WithDefaultLogFormatter())

	client, welcome, err := builder.Build(mainContext)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to connect: %w", err))
	}

	log := logger.WithField("component", "main")
	log.Infof("registered as %s: %s", nickname, welcome.Welcome)

	if *doList {
		listCmd := irc.NewListCommand()
		if err := client.Run(mainContext, listCmd); err != nil {
			logger.Fatal(fmt.Errorf("LIST failed: %w", err))
		}
		entries, err := listCmd.Output()
		if err != nil {
			logger.Fatal(fmt.Errorf("LIST failed: %w", err))
		}
		for _, entry := range entries {
			fmt.Printf("%s\t%d\t%s\n", entry.Channel, entry.Clients, entry.Topic)
		}
	}

	wg.Go(func() {
		for {
			msg, err := client.RecvNew(mainContext)
			if err != nil {
				if mainContext.Err() == nil {
					log.WithError(err).Error("recv loop exiting")
				}
				return
			}
			if msg == nil {
				log.Info("server closed the connection")
				shutdown()
				return
			}
			log.Infof("<- %s", msg.Render())
		}
	})

	killSignals := make(chan os.Signal, 1)
	signal.Notify(killSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-killSignals:
		log.Info("received shutdown signal")
	case <-mainContext.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Send(shutdownCtx, irc.NewQuit("client shutting down"))

	shutdown()
	client.Close()
}
