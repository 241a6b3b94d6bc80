// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler writing to stderr and a log
// level from the TPLCACHE_LOG env variable. Unset or unknown levels mean ERROR.
func InitLogger() {
	level, err := log.ParseLevel(strings.ToLower(os.Getenv("TPLCACHE_LOG")))
	if err != nil {
		level = log.ErrorLevel
	}
	log.SetHandler(&CustomHandler{Writer: os.Stderr})
	log.SetLevel(level)
}

// CustomHandler formats log messages as a timestamp, a single letter level
// and the message followed by any fields in key order.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())

	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	_, err := fmt.Fprintf(w, "%s %.1s %s%s\n", timestamp.Format("2006-01-02 15:04:05"), level, e.Message, fields.String())
	return err
}
