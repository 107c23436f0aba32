// Package action tracks hierarchical units of work.
//
// A RootAction is entered for a top-level unit of work. Child actions are
// entered through the root and left either explicitly or when the root is
// left, which cascades to every child that is still open. Requests that
// cannot produce a real action, because the name is empty or the target was
// already left, yield a NullAction so callers never need to branch.
package action

// Action is one unit of work.
type Action interface {
	// Name returns the name given when the action was entered.
	Name() string

	// ReportEvent reports a named event on this action.
	ReportEvent(eventName string) Action

	// ReportIntValue reports a named integer value on this action.
	ReportIntValue(valueName string, value int32) Action

	// ReportDoubleValue reports a named floating point value on this action.
	ReportDoubleValue(valueName string, value float64) Action

	// ReportStringValue reports a named string value on this action.
	ReportStringValue(valueName string, value string) Action

	// ReportError reports a named error with a code and a reason.
	ReportError(errorName string, errorCode int32, reason string) Action

	// LeaveAction ends the action and returns its parent, or nil if it has
	// none. Leaving an action twice has no further effect.
	LeaveAction() Action
}

// RootAction is a top-level Action that can have children.
type RootAction interface {
	Action

	// EnterAction starts a child action. It returns a NullAction if the name
	// is empty or if the root was already left.
	EnterAction(actionName string) Action
}

// NullAction stands in for an action that could not be created. All its
// operations do nothing.
type NullAction struct{}

// Name returns an empty string.
func (NullAction) Name() string { return "" }

// ReportEvent does nothing.
func (a NullAction) ReportEvent(string) Action { return a }

// ReportIntValue does nothing.
func (a NullAction) ReportIntValue(string, int32) Action { return a }

// ReportDoubleValue does nothing.
func (a NullAction) ReportDoubleValue(string, float64) Action { return a }

// ReportStringValue does nothing.
func (a NullAction) ReportStringValue(string, string) Action { return a }

// ReportError does nothing.
func (a NullAction) ReportError(string, int32, string) Action { return a }

// EnterAction returns another NullAction.
func (a NullAction) EnterAction(string) Action { return a }

// LeaveAction returns nil.
func (NullAction) LeaveAction() Action { return nil }

// IsNull reports whether a is a NullAction.
func IsNull(a Action) bool {
	_, ok := a.(NullAction)
	return ok
}

var (
	_ RootAction = NullAction{}
	_ Action     = (*ActionImpl)(nil)
	_ RootAction = (*RootActionImpl)(nil)
)
