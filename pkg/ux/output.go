// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go.uber.org/zap"

	"github.com/inyourarea/jigsaw/pkg/utils"
)

var Logger *UserLog

type UserLog struct {
	log     *zap.Logger
	writer  io.Writer
	printer *message.Printer
}

func NewUserLog(log *zap.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = &UserLog{
			log:     log,
			writer:  userwriter,
			printer: message.NewPrinter(language.English),
		}
	}
}

// PrintToUser prints msg directly to stdout (command output)
// Does NOT log to avoid duplication - logs should go to the log file separately
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
}

// Info logs an info message. Terminal control characters are stripped so
// forwarded tool output stays readable in the log file.
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.log.Info(utils.RemoveLineCleanChars(fmt.Sprintf(msg, args...)))
}

// Error logs an error message
func (ul *UserLog) Error(msg string, args ...interface{}) {
	ul.log.Error(utils.RemoveLineCleanChars(fmt.Sprintf(msg, args...)))
}

// PrintLineSeparator prints a line separator
func (ul *UserLog) PrintLineSeparator(msg ...string) {
	separator := "=========================================="
	if len(msg) > 0 && msg[0] != "" {
		separator = msg[0]
	}
	_, _ = fmt.Fprintln(ul.writer, separator)
	ul.log.Info(separator)
}

// RedXToUser prints a red X error message to the user
func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✗ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Error(formattedMsg)
}

// GreenCheckmarkToUser prints a green checkmark success message to the user
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✓ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Info(formattedMsg)
}

// SizeToUser prints a byte count with thousands separators, e.g.
// "uploaded 1,204,224 bytes"
func (ul *UserLog) SizeToUser(msg string, size int64) {
	formattedMsg := ul.printer.Sprintf("%s %d bytes", msg, size)
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Info(formattedMsg)
}

// PrintWait does some dot printing to entertain the user while a slow
// call runs. Dots only go out when the writer is a terminal.
func (ul *UserLog) PrintWait(cancel chan struct{}) {
	f, ok := ul.writer.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		<-cancel
		return
	}
	for {
		select {
		case <-time.After(1 * time.Second):
			_, _ = fmt.Fprint(ul.writer, ".")
		case <-cancel:
			return
		}
	}
}
