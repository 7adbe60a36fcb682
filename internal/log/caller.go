// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerField is a bit set of the caller details appended to log lines.
type callerField uint8

const (
	callerFile callerField = 1 << iota
	callerLine
	callerFunc
)

// callerSettings keeps which fields were explicitly set, so that
// merging only overrides the fields set in the other settings.
type callerSettings struct {
	set     callerField
	enabled callerField
}

func (c *callerSettings) setField(field callerField, enabled bool) {
	c.set |= field
	if enabled {
		c.enabled |= field
	} else {
		c.enabled &^= field
	}
}

func (c *callerSettings) mergeWith(other callerSettings) {
	c.enabled = (c.enabled &^ other.set) | (other.enabled & other.set)
	c.set |= other.set
}

// setDefaults disables every field not set.
func (c *callerSettings) setDefaults() {
	c.enabled &= c.set
	c.set = callerFile | callerLine | callerFunc
}

func (c callerSettings) has(field callerField) bool {
	return c.enabled&field != 0
}

// getCallerString returns the caller details formatted as
// `file.go:42 package.Function`, or the empty string if none is enabled.
func getCallerString(settings callerSettings) string {
	if settings.enabled == 0 {
		return ""
	}

	// log.go helpers -> (*Logger).log -> getCallerString
	const depth = 3
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "unknown caller"
	}

	var location string
	switch {
	case settings.has(callerFile) && settings.has(callerLine):
		location = filepath.Base(file) + ":" + strconv.Itoa(line)
	case settings.has(callerFile):
		location = filepath.Base(file)
	case settings.has(callerLine):
		location = "line " + strconv.Itoa(line)
	}

	if !settings.has(callerFunc) {
		return location
	}

	function := runtime.FuncForPC(pc)
	if function == nil {
		return location
	}
	name := function.Name()
	name = name[strings.LastIndex(name, "/")+1:]

	if location == "" {
		return name
	}
	return location + " " + name
}
