package action

import (
	"fmt"

	"github.com/sarchlab/openkit/logging"
	"github.com/sarchlab/openkit/recording"
	"github.com/sarchlab/openkit/syncqueue"
)

// RootActionImpl is a top-level action. It owns the queue of its children
// that are still open.
type RootActionImpl struct {
	actionCore

	openChildActions *syncqueue.Queue[*ActionImpl]
}

// A RootActionOption customizes a RootActionImpl.
type RootActionOption func(r *RootActionImpl)

// WithOpenChildActions makes the root track its open children in the given
// queue.
func WithOpenChildActions(q *syncqueue.Queue[*ActionImpl]) RootActionOption {
	return func(r *RootActionImpl) {
		r.openChildActions = q
	}
}

// NewRootAction enters a new root action and reports its start.
func NewRootAction(
	logger logging.Logger,
	recorder recording.Recorder,
	name string,
	opts ...RootActionOption,
) *RootActionImpl {
	r := &RootActionImpl{}

	for _, opt := range opts {
		opt(r)
	}

	if r.openChildActions == nil {
		r.openChildActions = syncqueue.New[*ActionImpl]()
	}

	r.init(logger, recorder, name, 0)
	r.reportStart()

	return r
}

// EnterAction starts a child action. An empty name is reported as a warning
// and yields a NullAction, as does entering a child on a root that has
// already been left. A child whose root is left while it is being created
// is ended right away and a NullAction is returned.
func (r *RootActionImpl) EnterAction(actionName string) Action {
	if actionName == "" {
		r.logger.Warning(r.String() +
			" enterAction: actionName must not be null or empty")
		return NullAction{}
	}

	if r.isLeft() {
		return NullAction{}
	}

	// The recorder may block, so the child is built and reported outside
	// mu. Only the left check and the insert share the lock with markLeft.
	child := newActionImpl(r.logger, r.recorder, actionName, r)

	r.mu.Lock()
	if r.left {
		r.mu.Unlock()
		child.LeaveAction()

		return NullAction{}
	}

	r.openChildActions.Put(child)
	r.mu.Unlock()

	return child
}

// OpenChildActions returns the children that are currently open.
func (r *RootActionImpl) OpenChildActions() []Action {
	children := r.openChildActions.ToSlice()

	out := make([]Action, 0, len(children))
	for _, c := range children {
		out = append(out, c)
	}

	return out
}

// ReportEvent reports a named event.
func (r *RootActionImpl) ReportEvent(eventName string) Action {
	r.reportEvent(r.String(), eventName)
	return r
}

// ReportIntValue reports a named integer value.
func (r *RootActionImpl) ReportIntValue(valueName string, value int32) Action {
	r.reportIntValue(r.String(), valueName, value)
	return r
}

// ReportDoubleValue reports a named floating point value.
func (r *RootActionImpl) ReportDoubleValue(
	valueName string,
	value float64,
) Action {
	r.reportDoubleValue(r.String(), valueName, value)
	return r
}

// ReportStringValue reports a named string value.
func (r *RootActionImpl) ReportStringValue(
	valueName string,
	value string,
) Action {
	r.reportStringValue(r.String(), valueName, value)
	return r
}

// ReportError reports a named error.
func (r *RootActionImpl) ReportError(
	errorName string,
	errorCode int32,
	reason string,
) Action {
	r.reportError(r.String(), errorName, errorCode, reason)
	return r
}

// LeaveAction leaves every open child, then ends the root itself. It always
// returns nil, roots have no parent.
func (r *RootActionImpl) LeaveAction() Action {
	if !r.markLeft() {
		return nil
	}

	for _, child := range r.openChildActions.ToSlice() {
		child.LeaveAction()
	}

	r.openChildActions.Clear()
	r.finish()

	return nil
}

func (r *RootActionImpl) String() string {
	return fmt.Sprintf("RootActionImpl [sn=%d, id=%d, name=%s]",
		r.recorder.SessionNumber(), r.id, r.name)
}
