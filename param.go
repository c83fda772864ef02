/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircnet

// ParameterList is the ordered medial-then-optional-trailing parameter sequence of a message.
// It exposes positional access and arity-checked extraction used by every ClientMessage
// conversion in clientmessage.go.
type ParameterList struct {
	Medials  []string
	Trailing *string // nil when no trailing parameter is present
}

// Len reports the total number of parameters, trailing included.
func (p ParameterList) Len() int {
	n := len(p.Medials)
	if p.Trailing != nil {
		n++
	}
	return n
}

// At returns the i'th parameter (0-indexed across medials then trailing), and whether it exists.
func (p ParameterList) At(i int) (string, bool) {
	if i < len(p.Medials) {
		return p.Medials[i], true
	}
	if p.Trailing != nil && i == len(p.Medials) {
		return *p.Trailing, true
	}
	return "", false
}

// Last returns the final parameter regardless of whether it is medial or trailing.
func (p ParameterList) Last() (string, bool) {
	if p.Trailing != nil {
		return *p.Trailing, true
	}
	if len(p.Medials) > 0 {
		return p.Medials[len(p.Medials)-1], true
	}
	return "", false
}

// Exactly extracts exactly n positional parameters (medials then trailing, in order),
// failing with ErrWrongArity if the list has a different arity.
func (p ParameterList) Exactly(n int) ([]string, error) {
	all := p.All()
	if len(all) != n {
		return nil, ErrWrongArity
	}
	return all, nil
}

// AtLeast extracts at least n positional parameters, returning every parameter present.
func (p ParameterList) AtLeast(n int) ([]string, error) {
	all := p.All()
	if len(all) < n {
		return nil, ErrWrongArity
	}
	return all, nil
}

// All returns every parameter, medials then trailing, as plain strings.
func (p ParameterList) All() []string {
	all := make([]string, 0, p.Len())
	all = append(all, p.Medials...)
	if p.Trailing != nil {
		all = append(all, *p.Trailing)
	}
	return all
}

// paramsWithTrailing builds a ParameterList whose final element is always serialised in the
// trailing position, regardless of content. Verbs whose last parameter is semantically
// free-text (PONG payloads, PRIVMSG bodies, AUTHENTICATE payloads) use this so the wire form
// carries the conventional ':' even for single-word values.
func paramsWithTrailing(trailing string, medials ...string) (ParameterList, error) {
	for _, m := range medials {
		if IsTrailing(m) {
			return ParameterList{}, ErrTrailingMedial
		}
	}
	return ParameterList{Medials: append([]string{}, medials...), Trailing: &trailing}, nil
}

// ParamsFromStrings builds a ParameterList from plain strings, classifying the final element
// as trailing iff it satisfies IsTrailing. Every non-final element must not itself require
// trailing classification, or construction fails.
func ParamsFromStrings(values ...string) (ParameterList, error) {
	if len(values) == 0 {
		return ParameterList{}, nil
	}
	last := values[len(values)-1]
	medials := values[:len(values)-1]
	for _, m := range medials {
		if IsTrailing(m) {
			return ParameterList{}, ErrTrailingMedial
		}
	}
	if IsTrailing(last) {
		return ParameterList{Medials: append([]string{}, medials...), Trailing: &last}, nil
	}
	return ParameterList{Medials: append(append([]string{}, medials...), last)}, nil
}
