// Package recording receives the lifecycle reports of actions and forwards
// them, as flat entries, to a storage sink.
package recording

// An ActionRecord describes an action at the moment it starts or ends. End
// fields are zero in start reports.
type ActionRecord struct {
	ID              int32
	ParentID        int32
	Name            string
	StartTime       int64
	EndTime         int64
	StartSequenceNo int32
	EndSequenceNo   int32
}

// EventKind tells what an Event reports.
type EventKind string

// The kinds of events an action can report.
const (
	KindEvent       EventKind = "event"
	KindIntValue    EventKind = "int_value"
	KindDoubleValue EventKind = "double_value"
	KindStringValue EventKind = "string_value"
	KindError       EventKind = "error"
)

// An Event is something reported while an action is open.
type Event struct {
	Kind     EventKind
	ActionID int32
	Name     string
	Value    string
	Code     int32
	Reason   string
}

// A Recorder collects action reports. Implementations must not block the
// caller on I/O and must be safe for concurrent use.
type Recorder interface {
	// SessionNumber identifies the session the recorder belongs to.
	SessionNumber() int32

	// CreateID allocates a new action id.
	CreateID() int32

	// CreateSequenceNumber allocates the next slot in the session's
	// sequence.
	CreateSequenceNumber() int32

	// CurrentTimestamp returns the current time in unix milliseconds.
	CurrentTimestamp() int64

	// StartAction reports that an action has been entered.
	StartAction(a ActionRecord)

	// EndAction reports that an action has been left.
	EndAction(a ActionRecord)

	// ReportEvent reports an event, value or error of an open action.
	ReportEvent(e Event)
}
