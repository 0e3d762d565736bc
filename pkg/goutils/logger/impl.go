/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package logger

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(level TLogLevel) bool {
	curLevel := TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel)))
	return curLevel >= level
}

func printIfLevel(level TLogLevel, args ...interface{}) {
	if isEnabled(level) {
		globalLogPrinter.print(level, args...)
	}
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

func (p *logPrinter) getFormattedMsg(level TLogLevel, args ...interface{}) string {
	var sb strings.Builder
	sb.WriteString(time.Now().Format("01/02 15:04:05.000"))
	sb.WriteString(": ")
	sb.WriteString(getLevelPrefix(level))
	for _, arg := range args {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprint(arg))
	}
	return sb.String()
}

func (p *logPrinter) print(level TLogLevel, args ...interface{}) {
	PrintLine(level, p.getFormattedMsg(level, args...))
}
