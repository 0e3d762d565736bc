/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package logger

const (
	errorPrefix   = "*****"
	warningPrefix = "!!!"
	infoPrefix    = "==="
	verbosePrefix = "---"
	tracePrefix   = "..."
)
