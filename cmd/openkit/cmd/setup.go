package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sarchlab/openkit/config"
	"github.com/sarchlab/openkit/datarecording"
	"github.com/sarchlab/openkit/logging"
	"github.com/sarchlab/openkit/recording"
)

// logFormat resolves an unset format to text on terminals and json
// everywhere else.
func logFormat(cfg config.Config, f *os.File) string {
	if cfg.LogFormat != "" {
		return cfg.LogFormat
	}

	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return "text"
	}

	return "json"
}

func newLogger(cfg config.Config, w io.Writer, format string) logging.Logger {
	return logging.NewSlogLogger(w, cfg.Level(), format)
}

// sinkStack is the sink the recorder writes to, plus what must be closed
// once recording is over.
type sinkStack struct {
	async *recording.AsyncSink
	db    *recording.DBSink
}

func buildSink(cfg config.Config, logger logging.Logger) (*sinkStack, error) {
	var (
		inner recording.Sink
		db    *recording.DBSink
	)

	switch cfg.Sink {
	case config.SinkNone:
		inner = recording.NopSink{}
	case config.SinkLog:
		if !logger.IsDebugEnabled() {
			logger.Warning("the log sink writes records at debug level, " +
				"set OPENKIT_LOG_LEVEL=debug to see them")
		}

		inner = recording.NewLogSink(logger)
	case config.SinkSQLite:
		if cfg.DBPath != "" {
			_, err := os.Stat(cfg.DBPath + ".sqlite3")
			if err == nil {
				return nil, fmt.Errorf("file %s.sqlite3 already exists",
					cfg.DBPath)
			}
		}

		db = recording.NewDBSink(datarecording.New(cfg.DBPath))
		inner = db
	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}

	return &sinkStack{
		async: recording.NewAsyncSink(inner, cfg.AsyncBuffer),
		db:    db,
	}, nil
}

func (s *sinkStack) Sink() recording.Sink {
	return s.async
}

func (s *sinkStack) Close(ctx context.Context) error {
	err := s.async.Close(ctx)

	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}

	return err
}

func newBeacon(cfg config.Config, sink recording.Sink) *recording.Beacon {
	return recording.MakeBeaconBuilder().
		WithSessionNumber(cfg.SessionNumber).
		WithSink(sink).
		Build()
}
