package action

import (
	"fmt"

	"github.com/sarchlab/openkit/logging"
	"github.com/sarchlab/openkit/recording"
)

// ActionImpl is a child action entered through a RootActionImpl.
type ActionImpl struct {
	actionCore

	parent *RootActionImpl
}

func newActionImpl(
	logger logging.Logger,
	recorder recording.Recorder,
	name string,
	parent *RootActionImpl,
) *ActionImpl {
	a := &ActionImpl{parent: parent}

	var parentID int32
	if parent != nil {
		parentID = parent.id
	}

	a.init(logger, recorder, name, parentID)
	a.reportStart()

	return a
}

// ReportEvent reports a named event.
func (a *ActionImpl) ReportEvent(eventName string) Action {
	a.reportEvent(a.String(), eventName)
	return a
}

// ReportIntValue reports a named integer value.
func (a *ActionImpl) ReportIntValue(valueName string, value int32) Action {
	a.reportIntValue(a.String(), valueName, value)
	return a
}

// ReportDoubleValue reports a named floating point value.
func (a *ActionImpl) ReportDoubleValue(valueName string, value float64) Action {
	a.reportDoubleValue(a.String(), valueName, value)
	return a
}

// ReportStringValue reports a named string value.
func (a *ActionImpl) ReportStringValue(valueName string, value string) Action {
	a.reportStringValue(a.String(), valueName, value)
	return a
}

// ReportError reports a named error.
func (a *ActionImpl) ReportError(
	errorName string,
	errorCode int32,
	reason string,
) Action {
	a.reportError(a.String(), errorName, errorCode, reason)
	return a
}

// LeaveAction ends the action, removes it from its parent's open children
// and returns the parent.
func (a *ActionImpl) LeaveAction() Action {
	if a.markLeft() {
		if a.parent != nil {
			a.parent.openChildActions.Remove(a)
		}

		a.finish()
	}

	if a.parent == nil {
		return nil
	}

	return a.parent
}

func (a *ActionImpl) String() string {
	return fmt.Sprintf("ActionImpl [sn=%d, id=%d, name=%s, pa=%d]",
		a.recorder.SessionNumber(), a.id, a.name, a.parentID)
}
