/*
 * Lucena - UCI chess engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2023-2026 The Lucena Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

import "strings"

// logConfiguration is a data structure to hold the configuration
// for the various loggers
type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

// LogLevel mapping of log level names to go-logging levels
// (0=critical ... 5=debug)
var logLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// LogLevelFromString returns the go-logging level int for a level
// name and a flag if the name was valid
func LogLevelFromString(lvl string) (int, bool) {
	l, ok := logLevels[strings.ToLower(lvl)]
	return l, ok
}

// sets defaults which might be overwritten by config file or
// command line
func init() {
	Settings.Log.LogLvl = "notice"
	Settings.Log.SearchLogLvl = "notice"
}

// setupLogLvl maps the configured level names to the global level ints
func setupLogLvl() {
	if l, ok := LogLevelFromString(Settings.Log.LogLvl); ok {
		LogLevel = l
	}
	if l, ok := LogLevelFromString(Settings.Log.SearchLogLvl); ok {
		SearchLogLevel = l
	}
}
