package action

import (
	"strconv"
	"sync"

	"github.com/sarchlab/openkit/logging"
	"github.com/sarchlab/openkit/recording"
)

// actionCore holds the state shared by plain and root actions. Identity and
// start fields are assigned at creation and never change. The end fields and
// the left flag are guarded by mu.
type actionCore struct {
	logger   logging.Logger
	recorder recording.Recorder

	id              int32
	parentID        int32
	name            string
	startTime       int64
	startSequenceNo int32

	mu            sync.Mutex
	left          bool
	endTime       int64
	endSequenceNo int32
}

func (c *actionCore) init(
	logger logging.Logger,
	recorder recording.Recorder,
	name string,
	parentID int32,
) {
	c.logger = logger
	c.recorder = recorder
	c.name = name
	c.parentID = parentID
	c.id = recorder.CreateID()
	c.startTime = recorder.CurrentTimestamp()
	c.startSequenceNo = recorder.CreateSequenceNumber()
}

func (c *actionCore) record() recording.ActionRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	return recording.ActionRecord{
		ID:              c.id,
		ParentID:        c.parentID,
		Name:            c.name,
		StartTime:       c.startTime,
		EndTime:         c.endTime,
		StartSequenceNo: c.startSequenceNo,
		EndSequenceNo:   c.endSequenceNo,
	}
}

func (c *actionCore) reportStart() {
	c.recorder.StartAction(c.record())
}

// markLeft flips the action to left. Only the first caller gets true.
func (c *actionCore) markLeft() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.left {
		return false
	}

	c.left = true

	return true
}

func (c *actionCore) isLeft() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.left
}

// finish stamps the end of the action and reports it. It must run once,
// after a successful markLeft.
func (c *actionCore) finish() {
	c.mu.Lock()
	c.endTime = c.recorder.CurrentTimestamp()
	c.endSequenceNo = c.recorder.CreateSequenceNumber()
	c.mu.Unlock()

	c.recorder.EndAction(c.record())
}

func (c *actionCore) report(
	owner string,
	operation string,
	param string,
	e recording.Event,
) {
	if e.Name == "" {
		c.logger.Warning(owner + " " + operation + ": " + param +
			" must not be null or empty")
		return
	}

	if c.isLeft() {
		return
	}

	e.ActionID = c.id
	c.recorder.ReportEvent(e)
}

func (c *actionCore) reportEvent(owner, eventName string) {
	c.report(owner, "reportEvent", "eventName", recording.Event{
		Kind: recording.KindEvent,
		Name: eventName,
	})
}

func (c *actionCore) reportIntValue(owner, valueName string, value int32) {
	c.report(owner, "reportValue (int)", "valueName", recording.Event{
		Kind:  recording.KindIntValue,
		Name:  valueName,
		Value: strconv.FormatInt(int64(value), 10),
	})
}

func (c *actionCore) reportDoubleValue(owner, valueName string, value float64) {
	c.report(owner, "reportValue (double)", "valueName", recording.Event{
		Kind:  recording.KindDoubleValue,
		Name:  valueName,
		Value: strconv.FormatFloat(value, 'g', -1, 64),
	})
}

func (c *actionCore) reportStringValue(owner, valueName, value string) {
	c.report(owner, "reportValue (string)", "valueName", recording.Event{
		Kind:  recording.KindStringValue,
		Name:  valueName,
		Value: value,
	})
}

func (c *actionCore) reportError(
	owner, errorName string,
	errorCode int32,
	reason string,
) {
	c.report(owner, "reportError", "errorName", recording.Event{
		Kind:   recording.KindError,
		Name:   errorName,
		Code:   errorCode,
		Reason: reason,
	})
}

// Name returns the action name.
func (c *actionCore) Name() string { return c.name }

// ID returns the action id.
func (c *actionCore) ID() int32 { return c.id }

// ParentID returns the id of the parent action, 0 if there is none.
func (c *actionCore) ParentID() int32 { return c.parentID }

// StartTime returns when the action was entered, in unix milliseconds.
func (c *actionCore) StartTime() int64 { return c.startTime }

// StartSequenceNo returns the sequence number taken when entering.
func (c *actionCore) StartSequenceNo() int32 { return c.startSequenceNo }

// IsLeft reports whether the action has been left.
func (c *actionCore) IsLeft() bool { return c.isLeft() }

// EndTime returns when the action was left, 0 while it is open.
func (c *actionCore) EndTime() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.endTime
}

// EndSequenceNo returns the sequence number taken when leaving, 0 while the
// action is open.
func (c *actionCore) EndSequenceNo() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.endSequenceNo
}
