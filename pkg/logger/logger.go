package logger

import (
	"io"
	"os"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init points logrus and hlog at the same writer. With File set the output
// is teed to stdout and a lumberjack rotated file.
func Init(cfg Config) io.Writer {
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}

	logrus.SetOutput(out)
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	hlog.SetOutput(out)
	hlog.SetLevel(hertzLevel(level))
	return out
}

func hertzLevel(level logrus.Level) hlog.Level {
	switch level {
	case logrus.TraceLevel:
		return hlog.LevelTrace
	case logrus.DebugLevel:
		return hlog.LevelDebug
	case logrus.WarnLevel:
		return hlog.LevelWarn
	case logrus.ErrorLevel:
		return hlog.LevelError
	case logrus.FatalLevel, logrus.PanicLevel:
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}
