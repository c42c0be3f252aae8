/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from a validated Config. Output goes to
// stderr unless w is non-nil.
func NewLogger(c *Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
