/*
   Copyright (c) 2020, btnmasher
   All rights reserved.

   Redistribution and use in source and binary forms, with or without modification, are permitted provided that
   the following conditions are met:

   1. Redistributions of source code must retain the above copyright notice, this list of conditions and the
      following disclaimer.

   2. Redistributions in binary form must reproduce the above copyright notice, this list of conditions and
      the following disclaimer in the documentation and/or other materials provided with the distribution.

   3. Neither the name of the copyright holder nor the names of its contributors may be used to endorse or
      promote products derived from this software without specific prior written permission.

   THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED
   WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
   PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR
   ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
   TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION)
   HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
   NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
   POSSIBILITY OF SUCH DAMAGE.
*/

package ircnet

// Error is a workaround to allow for immutable error strings which satisfy the error interface.
type Error string

func (err Error) Error() string {
	return string(err)
}

func (err Error) String() string {
	return string(err)
}

// Immutable sentinel error strings returned by primitive constructors and the wire codec.
const (
	ErrEmpty           Error = "value must not be empty"
	ErrContainsNUL     Error = "value contains a NUL byte"
	ErrContainsCR      Error = "value contains a CR byte"
	ErrContainsLF      Error = "value contains a LF byte"
	ErrContainsSpace   Error = "value contains a SPACE byte"
	ErrContainsBell    Error = "value contains a BELL byte"
	ErrContainsCtrlA   Error = "value contains a CTRL-A byte"
	ErrBadStart        Error = "value begins with a disallowed character"
	ErrBadCharacter    Error = "value contains a disallowed character"
	ErrNotLetters      Error = "value contains a non-letter character"
	ErrNotThreeDigits  Error = "numeric command must be exactly three decimal digits"
	ErrBadModeString   Error = "mode string must begin with '+' or '-' and contain only letters"

	ErrNoCommand      Error = "message has no command token"
	ErrTrailingMedial Error = "a trailing parameter may not be followed by a medial parameter"
	ErrTooManyParams  Error = "too many parameters"

	ErrWrongArity   Error = "wrong number of parameters for this verb"
	ErrWrongVerb    Error = "parameter list does not match this verb"
	ErrNoTargets    Error = "at least one target is required"
	ErrBadMsgTarget Error = "parameter is not a valid message target"

	ErrNoWhoAwayFlag      Error = "WHO flags must begin with H or G"
	ErrNoUserhostEq       Error = "USERHOST reply element has no '='"
	ErrNoUserhostAwayFlag Error = "USERHOST reply element has no +/- away marker"

	ErrNotDone          Error = "Output called before IsDone"
	ErrAlreadyDone       Error = "HandleMessage called on a done engine"
	ErrClientBusy       Error = "a Run call is already in progress on this Client"
	ErrNoCertificates   Error = "no certificates were loaded from the platform trust store"
	ErrServerNameInvalid Error = "server name is not a valid DNS name"
	ErrConnectionClosed Error = "connection closed by remote end"
)
