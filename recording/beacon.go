package recording

import (
	"github.com/sarchlab/openkit/idgen"
	"github.com/sarchlab/openkit/timing"
)

// Beacon is the Recorder used in production. It allocates identities from
// injected generators, stamps reports with its clock and turns every report
// into a Record for its sink.
type Beacon struct {
	sessionNumber int32
	ids           idgen.Generator
	sequence      idgen.Generator
	timeTeller    timing.TimeTeller
	sink          Sink
}

// BeaconBuilder can build beacons.
type BeaconBuilder struct {
	sessionNumber int32
	ids           idgen.Generator
	sequence      idgen.Generator
	timeTeller    timing.TimeTeller
	sink          Sink
}

// MakeBeaconBuilder creates a builder with sequential generators, the wall
// clock and a sink that drops everything.
func MakeBeaconBuilder() BeaconBuilder {
	return BeaconBuilder{
		timeTeller: timing.WallClock{},
		sink:       NopSink{},
	}
}

// WithSessionNumber sets the session number reported with every entry.
func (b BeaconBuilder) WithSessionNumber(n int32) BeaconBuilder {
	b.sessionNumber = n
	return b
}

// WithIDGenerator sets the generator of action ids.
func (b BeaconBuilder) WithIDGenerator(g idgen.Generator) BeaconBuilder {
	b.ids = g
	return b
}

// WithSequenceGenerator sets the generator of sequence numbers.
func (b BeaconBuilder) WithSequenceGenerator(g idgen.Generator) BeaconBuilder {
	b.sequence = g
	return b
}

// WithTimeTeller sets the clock.
func (b BeaconBuilder) WithTimeTeller(t timing.TimeTeller) BeaconBuilder {
	b.timeTeller = t
	return b
}

// WithSink sets where the entries go.
func (b BeaconBuilder) WithSink(s Sink) BeaconBuilder {
	b.sink = s
	return b
}

// Build creates the beacon.
func (b BeaconBuilder) Build() *Beacon {
	ids := b.ids
	if ids == nil {
		ids = idgen.NewSequential()
	}

	sequence := b.sequence
	if sequence == nil {
		sequence = idgen.NewSequential()
	}

	return &Beacon{
		sessionNumber: b.sessionNumber,
		ids:           ids,
		sequence:      sequence,
		timeTeller:    b.timeTeller,
		sink:          b.sink,
	}
}

// SessionNumber returns the session number.
func (b *Beacon) SessionNumber() int32 {
	return b.sessionNumber
}

// CreateID allocates a new action id.
func (b *Beacon) CreateID() int32 {
	return int32(b.ids.Generate())
}

// CreateSequenceNumber allocates the next sequence number.
func (b *Beacon) CreateSequenceNumber() int32 {
	return int32(b.sequence.Generate())
}

// CurrentTimestamp returns the clock's time in unix milliseconds.
func (b *Beacon) CurrentTimestamp() int64 {
	return timing.Millis(b.timeTeller.CurrentTime())
}

// StartAction writes an action start entry.
func (b *Beacon) StartAction(a ActionRecord) {
	b.sink.Write(Record{
		Kind:          RecordActionStart,
		SessionNumber: b.sessionNumber,
		ActionID:      a.ID,
		ParentID:      a.ParentID,
		Name:          a.Name,
		Timestamp:     a.StartTime,
		SequenceNo:    a.StartSequenceNo,
	})
}

// EndAction writes an action end entry.
func (b *Beacon) EndAction(a ActionRecord) {
	b.sink.Write(Record{
		Kind:          RecordActionEnd,
		SessionNumber: b.sessionNumber,
		ActionID:      a.ID,
		ParentID:      a.ParentID,
		Name:          a.Name,
		Timestamp:     a.EndTime,
		SequenceNo:    a.EndSequenceNo,
	})
}

// ReportEvent writes an event entry, stamped with the current time and a
// fresh sequence number.
func (b *Beacon) ReportEvent(e Event) {
	b.sink.Write(Record{
		Kind:          string(e.Kind),
		SessionNumber: b.sessionNumber,
		ActionID:      e.ActionID,
		Name:          e.Name,
		Value:         e.Value,
		Code:          e.Code,
		Reason:        e.Reason,
		Timestamp:     b.CurrentTimestamp(),
		SequenceNo:    b.CreateSequenceNumber(),
	})
}

// Flush asks the sink to persist what it buffered.
func (b *Beacon) Flush() {
	b.sink.Flush()
}
