/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"strconv"

	"golang.org/x/net/idna"
)

// ConnectionParams is the flat transport-configuration structure a caller supplies to
// Connect: host, port, and whether to negotiate TLS.
type ConnectionParams struct {
	Host string
	Port int  // zero selects DefaultPlainPort or DefaultTLSPort, per UseTLS
	UseTLS bool
	// TLSConfig, if non-nil, is used verbatim instead of building one from the platform
	// trust store. Most callers leave this nil.
	TLSConfig *tls.Config
}

// ConnectionErrorKind enumerates Connect's typed failure modes.
type ConnectionErrorKind int

const (
	ConnErrInvalidServerName ConnectionErrorKind = iota
	ConnErrNoCertificates
	ConnErrDial
	ConnErrTLSHandshake
)

// ConnectionError is the stable error taxonomy surfaced by Connect.
type ConnectionError struct {
	Kind ConnectionErrorKind
	Err  error
}

func (e ConnectionError) Error() string {
	switch e.Kind {
	case ConnErrInvalidServerName:
		return "irc: connect: invalid server name: " + e.Err.Error()
	case ConnErrNoCertificates:
		return "irc: connect: " + string(ErrNoCertificates)
	case ConnErrTLSHandshake:
		return "irc: connect: TLS handshake failed: " + e.Err.Error()
	default:
		return "irc: connect: dial failed: " + e.Err.Error()
	}
}

func (e ConnectionError) Unwrap() error { return e.Err }

// resolvePort returns the caller-chosen port, or the protocol's conventional default.
func (p ConnectionParams) resolvePort() int {
	if p.Port != 0 {
		return p.Port
	}
	if p.UseTLS {
		return DefaultTLSPort
	}
	return DefaultPlainPort
}

// validatedServerName normalises and validates Host as a DNS name via golang.org/x/net/idna
// before it is used for SNI and certificate-hostname verification.
func validatedServerName(host string) (string, error) {
	name, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", ConnectionError{Kind: ConnErrInvalidServerName, Err: fmt.Errorf("%s: %w", ErrServerNameInvalid, err)}
	}
	return name, nil
}

// systemTLSConfig builds a *tls.Config rooted in the platform trust store, failing with a
// distinguished error if zero certificates loaded.
func systemTLSConfig(serverName string) (*tls.Config, error) {
	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil || len(pool.Subjects()) == 0 { //nolint:staticcheck // Subjects() is the only portable non-empty check pre-1.21 x509 API parity
		return nil, ConnectionError{Kind: ConnErrNoCertificates, Err: ErrNoCertificates}
	}
	return &tls.Config{
		RootCAs:    pool,
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}, nil
}

// dial opens the TCP (and, if requested, TLS) connection described by params.
func dial(ctx context.Context, params ConnectionParams) (net.Conn, error) {
	serverName, err := validatedServerName(params.Host)
	if err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(params.Host, strconv.Itoa(params.resolvePort()))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, ConnectionError{Kind: ConnErrDial, Err: err}
	}

	if !params.UseTLS {
		return conn, nil
	}

	cfg := params.TLSConfig
	if cfg == nil {
		cfg, err = systemTLSConfig(serverName)
		if err != nil {
			conn.Close()
			return nil, err
		}
	}

	tlsConn := tls.Client(conn, cfg)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		tlsConn.Close()
		return nil, ConnectionError{Kind: ConnErrTLSHandshake, Err: err}
	}
	return tlsConn, nil
}
