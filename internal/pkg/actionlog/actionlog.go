// Package actionlog records one structured log line per component operation:
// action name, duration, and outcome. Services wrap their entry points in
// Recorder.Do instead of scattering timing code into business logic.
package actionlog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Recorder struct {
	log zerolog.Logger
}

func NewRecorder(log zerolog.Logger) *Recorder {
	return &Recorder{log: log}
}

// Do runs fn and emits a single record for it. The error is passed through
// untouched so Do can wrap any operation transparently.
func (r *Recorder) Do(ctx context.Context, action string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)

	evt := r.log.Info()
	outcome := "ok"
	if err != nil {
		evt = r.log.Warn().Err(err)
		outcome = "error"
	}
	evt.Str("action", action).
		Dur("duration", time.Since(start)).
		Str("outcome", outcome).
		Msg("action completed")

	return err
}
