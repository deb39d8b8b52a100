// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// panic value used after an invariant violation has been logged
const abortMessage = "abort, see last messages in log file"

// time allowed for the log writer before a panic unwinds
const flushDelay = 100 * time.Millisecond

// the channel for a last attempt to log something, nil means stdout
var log *logger.L

// Initialise - open the PANIC channel
//
// the logger must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach so a later Initialise can succeed
func Finalise() {
	if nil == log {
		return
	}
	log.Flush()
	log = nil
}

// Critical - log a simple string tagged with the caller's position
func Critical(message string) {
	f, a := withCaller("%s", []interface{}{message})
	critical(f, a...)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	critical(f, a...)
}

// Panicf - log the reason with the caller's position, then abort
func Panicf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	critical(f, a...)
	Panic(abortMessage)
}

// Panic - final panic
func Panic(message string) {
	critical("%s", message)
	time.Sleep(flushDelay)
	panic(message)
}

// PanicIfError - abort when err is set
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panic(fmt.Sprintf("%s failed with error: %v", message, err))
}

// prefix the file and line of the public function's caller
func withCaller(format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return format, arguments
	}
	return "(%q:%d) " + format, append([]interface{}{file, line}, arguments...)
}

func critical(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
