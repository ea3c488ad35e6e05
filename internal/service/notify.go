package service

// Notifier is the fire-and-forget sink for user-visible events. Hosts decide
// how a message is rendered (toast, terminal line); the engine never waits on
// or inspects the result.
//
// ShowSuccess may carry an undo callback. A host that can offer an undo
// affordance invokes it to revert the action; hosts without one (and nil
// callbacks) simply show the message.
type Notifier interface {
	ShowSuccess(message string, undo func())
	ShowError(message string)
	ShowAchievement(message string)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) ShowSuccess(string, func()) {}
func (NopNotifier) ShowError(string)           {}
func (NopNotifier) ShowAchievement(string)     {}
