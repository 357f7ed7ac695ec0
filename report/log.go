package report

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/reoring/fieldkit"
)

// Log writes issues to a zerolog logger, one record per call.
type Log struct {
	log   zerolog.Logger
	level zerolog.Level
	msg   string
}

// NewLog returns a reporter logging at warn level.
func NewLog(l zerolog.Logger) *Log {
	return &Log{log: l, level: zerolog.WarnLevel, msg: "validation failed"}
}

// Level returns a copy logging at lvl.
func (l *Log) Level(lvl zerolog.Level) *Log {
	cp := *l
	cp.level = lvl
	return &cp
}

func (l *Log) Report(_ context.Context, iss fieldkit.Issues) error {
	arr := zerolog.Arr()
	for _, it := range iss {
		arr.Dict(zerolog.Dict().
			Str("path", it.Path).
			Str("code", it.Code).
			Str("rule", it.Rule).
			Str("category", it.Category().String()).
			Str("message", it.Message))
	}
	l.log.WithLevel(l.level).Int("count", len(iss)).Array("issues", arr).Msg(l.msg)
	return nil
}

// Tee fans issues out to every reporter and joins their errors.
func Tee(rs ...fieldkit.Reporter) fieldkit.Reporter {
	return fieldkit.ReporterFunc(func(ctx context.Context, iss fieldkit.Issues) error {
		var errs []error
		for _, r := range rs {
			if err := r.Report(ctx, iss); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
