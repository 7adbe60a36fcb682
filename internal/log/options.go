// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// The level defaults to info.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetCallerFile enables or disables logging the caller file.
// The default is disabled.
func SetCallerFile(enabled bool) Option {
	return func(s *settings) {
		s.caller.setField(callerFile, enabled)
	}
}

// SetCallerLine enables or disables logging the caller line number.
// The default is disabled.
func SetCallerLine(enabled bool) Option {
	return func(s *settings) {
		s.caller.setField(callerLine, enabled)
	}
}

// SetCallerFunc enables or disables logging the caller function.
// The default is disabled.
func SetCallerFunc(enabled bool) Option {
	return func(s *settings) {
		s.caller.setField(callerFunc, enabled)
	}
}

// SetColoured enables or disables colouring of the level.
// The default is disabled.
func SetColoured(enabled bool) Option {
	return func(s *settings) {
		s.coloured = &enabled
	}
}

// SetWriter set the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext adds the context for the logger as a key values pair.
// It adds them in order. If a key already exists, the value is added to the
// existing values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		newKV := contextKeyValues{key: key, values: []string{value}}
		s.context = append(s.context, newKV)
	}
}

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer   io.Writer
	level    *Level
	coloured *bool
	caller   callerSettings
	context  []contextKeyValues
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values for each field not set in the
// settings given as argument.
func (s *settings) mergeWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.coloured != nil {
		value := *other.coloured
		s.coloured = &value
	}

	s.caller.mergeWith(other.caller)

	newContext := make([]contextKeyValues, 0, len(s.context)+len(other.context))
	for _, kv := range s.context {
		newContext = append(newContext, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}

	for _, otherKV := range other.context {
		merged := false
		for i := range newContext {
			if newContext[i].key == otherKV.key {
				newContext[i].values = append(newContext[i].values, otherKV.values...)
				merged = true
				break
			}
		}
		if !merged {
			newContext = append(newContext, contextKeyValues{
				key:    otherKV.key,
				values: append([]string(nil), otherKV.values...),
			})
		}
	}

	if len(newContext) > 0 {
		s.context = newContext
	} else {
		s.context = nil
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		s.level = levelPtr(Info)
	}

	if s.coloured == nil {
		value := false
		s.coloured = &value
	}

	s.caller.setDefaults()
}

func levelPtr(l Level) *Level { return &l }
