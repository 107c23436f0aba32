package action

import (
	"sync"

	"go.uber.org/mock/gomock"

	"github.com/sarchlab/openkit/idgen"
	"github.com/sarchlab/openkit/recording"
	"github.com/sarchlab/openkit/timing"
)

// newZeroRecorder returns a recorder mock that hands out zero identities and
// accepts any report.
func newZeroRecorder(ctrl *gomock.Controller) *MockRecorder {
	r := NewMockRecorder(ctrl)
	r.EXPECT().SessionNumber().Return(int32(0)).AnyTimes()
	r.EXPECT().CreateID().Return(int32(0)).AnyTimes()
	r.EXPECT().CreateSequenceNumber().Return(int32(0)).AnyTimes()
	r.EXPECT().CurrentTimestamp().Return(int64(0)).AnyTimes()
	r.EXPECT().StartAction(gomock.Any()).AnyTimes()
	r.EXPECT().EndAction(gomock.Any()).AnyTimes()
	r.EXPECT().ReportEvent(gomock.Any()).AnyTimes()

	return r
}

type collectingSink struct {
	mu      sync.Mutex
	entries []recording.Record
}

func (s *collectingSink) Write(e recording.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
}

func (s *collectingSink) Flush() {}

func (s *collectingSink) ofKind(kind string) []recording.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []recording.Record
	for _, e := range s.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}

// hookSink collects records and calls onWrite after storing each one.
type hookSink struct {
	*collectingSink

	onWrite func(e recording.Record)
}

func (s *hookSink) Write(e recording.Record) {
	s.collectingSink.Write(e)

	if s.onWrite != nil {
		s.onWrite(e)
	}
}

func newTestBeacon(sink recording.Sink, clock timing.TimeTeller) *recording.Beacon {
	return recording.MakeBeaconBuilder().
		WithSessionNumber(1).
		WithIDGenerator(idgen.NewSequential()).
		WithSequenceGenerator(idgen.NewSequential()).
		WithTimeTeller(clock).
		WithSink(sink).
		Build()
}
