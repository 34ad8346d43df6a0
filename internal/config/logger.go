package config

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger. Normal runs show warnings and errors;
// debug adds everything down to debug level. Logs never go to stdout, which
// carries command output.
func NewLogger(w io.Writer, debug, color bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if !debug {
		ec.TimeKey = zapcore.OmitKey
	}
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(consoleEnc{zapcore.NewConsoleEncoder(ec)}, zapcore.AddSync(w), level)
	return zap.New(core).Named("contrastx")
}

// consoleEnc drops the verbose form of error fields.
type consoleEnc struct {
	zapcore.Encoder
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	out := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			if e, ok := f.Interface.(error); ok {
				f.Interface = errors.New(e.Error())
			}
		}
		out = append(out, f)
	}
	return c.Encoder.EncodeEntry(ent, out)
}
