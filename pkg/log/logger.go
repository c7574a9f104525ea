package log

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coding-wepack/nexusctl/pkg/util/fileutil"
)

const levelEnv = "NEXUSCTL_LOG_LEVEL"

var (
	globalLogger        Logger
	globalSugaredLogger SugaredLogger
	globalLoggerLevel   zap.AtomicLevel
)

var (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

type (
	// Field is an alias of zap.Field. Aliasing this type dramatically
	// improves the navigability of this package's API documentation.
	Field = zap.Field

	Level = zapcore.Level
)

type SugaredLogger interface {
	Named(name string) SugaredLogger
	With(args ...interface{}) SugaredLogger

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Sync()
}

// Logger defines methods of writing log
type Logger interface {
	Named(s string) Logger
	With(fields ...Field) Logger

	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	IsDebug() bool
	Sync()

	SugaredLogger() SugaredLogger
	CoreLogger() *zap.Logger
}

type logger struct {
	level         zap.AtomicLevel
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger
}

type sugaredLogger struct {
	sugaredLogger *zap.SugaredLogger
}

type Config struct {
	// Level is one of debug, info, warn, error. LOG_LEVEL style override
	// through NEXUSCTL_LOG_LEVEL wins over it.
	Level string

	// Encoding sets the logger's encoding. Valid values are "json" and
	// "console".
	Encoding string

	// DisableCaller configures the Logger to annotate each message with the filename
	// and line number of zap's caller, or not
	DisableCaller bool

	// OutputPaths is a list of URLs or file paths to write logging output to.
	// Defaults to stderr: stdout belongs to command output (tables, JSON).
	OutputPaths []string
}

func New(cfgs ...*Config) (Logger, zap.AtomicLevel) {
	var cfg *Config
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}

	encoding := "console"
	if cfg != nil && cfg.Encoding != "" {
		encoding = cfg.Encoding
	}

	atomicLevel := zap.NewAtomicLevelAt(parseLevel(getLevel(cfg)))
	config := getConfig(atomicLevel, encoding, getOutputPaths(cfg))

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if cfg != nil && cfg.DisableCaller {
		opts = []zap.Option{zap.WithCaller(false)}
	}

	zl, err := config.Build(opts...)
	if err != nil {
		panic(err)
	}

	return &logger{
		level:         atomicLevel,
		logger:        zl,
		sugaredLogger: zl.Sugar(),
	}, atomicLevel
}

// Nop returns a logger that discards everything. Handy for library callers
// that don't want nexusctl output mixed into theirs.
func Nop() Logger {
	zl := zap.NewNop()
	return &logger{
		level:         zap.NewAtomicLevelAt(ErrorLevel),
		logger:        zl,
		sugaredLogger: zl.Sugar(),
	}
}

func getConfig(atomicLevel zap.AtomicLevel, encoding string, outputPaths []string) zap.Config {
	encoder := zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "name",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			encodeTimeLayout(t, "2006-01-02 15:04:05.000", enc)
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if encoding == "console" {
		encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zap.Config{
		Level:            atomicLevel,
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
}

func getLevel(cfg *Config) string {
	level := InfoLevel.String()
	if cfg != nil && cfg.Level != "" {
		level = cfg.Level
	}
	if lvl := os.Getenv(levelEnv); lvl != "" {
		level = lvl
	}
	return strings.ToLower(level)
}

func parseLevel(level string) Level {
	var lvl Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return InfoLevel
	}
	return lvl
}

func getOutputPaths(cfg *Config) []string {
	if cfg == nil || len(cfg.OutputPaths) == 0 {
		return []string{"stderr"}
	}

	for _, p := range cfg.OutputPaths {
		if p == "stdout" || p == "stderr" {
			continue
		}
		// zap refuses to open a path whose directory is missing
		_ = fileutil.CreateFileIfNotExists(p)
	}
	return cfg.OutputPaths
}

func encodeTimeLayout(t time.Time, layout string, enc zapcore.PrimitiveArrayEncoder) {
	type appendTimeEncoder interface {
		AppendTimeLayout(time.Time, string)
	}

	if enc, ok := enc.(appendTimeEncoder); ok {
		enc.AppendTimeLayout(t, layout)
		return
	}

	enc.AppendString(t.Format(layout))
}

func init() {
	globalLogger, globalLoggerLevel = New()
	globalSugaredLogger = globalLogger.SugaredLogger()
}
