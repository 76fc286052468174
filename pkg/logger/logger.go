package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config logger seçenekleri.
type Config struct {
	Env   string // development -> okunabilir konsol; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger zerolog üzerine ince bir sarmalayıcı; enjeksiyon ve tutarlılık için.
type Logger struct {
	zl zerolog.Logger
}

// New yapılandırılmış bir logger oluşturur. Development ortamında okunabilir
// konsol çıktısı, diğer ortamlarda JSON üretir. Tanınmayan seviye info sayılır.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Global zerolog logger'ı da aynı hedefe yönlendirilir; onu kullanan
	// paketler (ör. HTTP hata eşleyici) aynı çıktıyı paylaşır.
	log.Logger = zl

	return &Logger{zl: zl}
}

// Trace, Debug, Info, Warn, Error zerolog'a delege edilir.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With sabit alanlı bir alt-logger oluşturur.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog iç logger'ı döner; doğrudan API gerektiğinde kullanılır.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
