// Package logger はlogrusの初期化をまとめる。
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New はprodならJSON、それ以外はテキストで出す
func New(level string, prod bool) *logrus.Logger {
	return NewWithWriter(os.Stdout, level, prod)
}

func NewWithWriter(w io.Writer, level string, prod bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if prod {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
