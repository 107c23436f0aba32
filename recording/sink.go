package recording

import (
	"fmt"

	"github.com/sarchlab/openkit/datarecording"
	"github.com/sarchlab/openkit/logging"
)

// The kinds of entries written for action lifecycle reports. Event entries
// use the EventKind value as their kind.
const (
	RecordActionStart = "action_start"
	RecordActionEnd   = "action_end"
)

// A Record is the flat, storable form of every report.
type Record struct {
	Kind          string
	SessionNumber int32
	ActionID      int32
	ParentID      int32
	Name          string
	Value         string
	Code          int32
	Reason        string
	Timestamp     int64
	SequenceNo    int32
}

// A Sink persists entries.
type Sink interface {
	Write(e Record)
	Flush()
}

// NopSink drops every entry.
type NopSink struct{}

// Write does nothing.
func (NopSink) Write(Record) {}

// Flush does nothing.
func (NopSink) Flush() {}

// LogSink writes every entry as a debug line.
type LogSink struct {
	logger logging.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger logging.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Write logs the entry if debug logging is enabled.
func (s *LogSink) Write(e Record) {
	if !s.logger.IsDebugEnabled() {
		return
	}

	s.logger.Debug(FormatRecord(e))
}

// Flush does nothing, lines are written immediately.
func (s *LogSink) Flush() {}

// FormatRecord renders an entry on a single line.
func FormatRecord(e Record) string {
	line := fmt.Sprintf("%s [sn=%d, seq=%d, id=%d, pa=%d, name=%s, ts=%d]",
		e.Kind, e.SessionNumber, e.SequenceNo, e.ActionID, e.ParentID,
		e.Name, e.Timestamp)

	switch EventKind(e.Kind) {
	case KindIntValue, KindDoubleValue, KindStringValue:
		line += " value=" + e.Value
	case KindError:
		line += fmt.Sprintf(" code=%d, reason=%s", e.Code, e.Reason)
	}

	return line
}

// RecordTableName is the table DBSink writes to.
const RecordTableName = "action_records"

// DBSink stores entries with a DataRecorder.
type DBSink struct {
	backend datarecording.DataRecorder
}

// NewDBSink creates the entry table on the backend and returns a sink that
// writes into it.
func NewDBSink(backend datarecording.DataRecorder) *DBSink {
	backend.CreateTable(RecordTableName, Record{})

	return &DBSink{backend: backend}
}

// Write buffers the entry in the backend.
func (s *DBSink) Write(e Record) {
	s.backend.InsertData(RecordTableName, e)
}

// Flush writes the buffered entries to the database.
func (s *DBSink) Flush() {
	s.backend.Flush()
}

// Close flushes and closes the backend.
func (s *DBSink) Close() error {
	return s.backend.Close()
}
