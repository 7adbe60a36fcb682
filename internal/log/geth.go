// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"strings"

	gethlog "github.com/ethereum/go-ethereum/log"
)

// NewGethHandler returns a go-ethereum log handler writing every
// record it receives to the logger given, so that libraries logging
// through go-ethereum share the format and level of this logger.
func NewGethHandler(logger *Logger) gethlog.Handler {
	return gethlog.FuncHandler(func(r *gethlog.Record) error {
		line := r.Msg
		if len(r.Ctx) > 0 {
			line += "\t" + formatGethContext(r.Ctx)
		}
		logger.log(levelFromGeth(r.Lvl), line)
		return nil
	})
}

func levelFromGeth(lvl gethlog.Lvl) Level {
	switch lvl {
	case gethlog.LvlCrit:
		return Critical
	case gethlog.LvlError:
		return Error
	case gethlog.LvlWarn:
		return Warn
	case gethlog.LvlInfo:
		return Info
	case gethlog.LvlDebug:
		return Debug
	default:
		return Trace
	}
}

func formatGethContext(ctx []interface{}) string {
	fields := make([]string, 0, (len(ctx)+1)/2)
	for i := 0; i < len(ctx); i += 2 {
		if i+1 == len(ctx) {
			fields = append(fields, fmt.Sprintf("%v=<missing>", ctx[i]))
			break
		}
		fields = append(fields, fmt.Sprintf("%v=%v", ctx[i], ctx[i+1]))
	}
	return strings.Join(fields, " ")
}
