package session

// Kind names a command. Every async event carries the kind of the command
// that produced it so the reducer can apply the command-specific mapping.
type Kind string

const (
	KindLogin          Kind = "user.login"
	KindRegister       Kind = "user.register"
	KindFetchUsers     Kind = "users.fetch_all"
	KindFetchUser      Kind = "users.fetch_one"
	KindUpdateUser     Kind = "users.update"
	KindDeleteUser     Kind = "users.delete"
	KindGrantRole      Kind = "users.grant_role"
	KindForgotPassword Kind = "password.forgot"
	KindResetPassword  Kind = "password.reset"
)

// Event is one step in the session lifecycle. Async commands emit the three
// phase sequence pending, then fulfilled or rejected; local interactions emit
// their own synchronous events. The reducer matches the union exhaustively.
type Event interface {
	Type() string
}

// CommandPending marks a command in flight. No payload.
type CommandPending struct {
	Command Kind
}

func (e CommandPending) Type() string { return string(e.Command) + ".pending" }

// CommandFulfilled carries the command's typed result payload
type CommandFulfilled struct {
	Command Kind
	Payload any
}

func (e CommandFulfilled) Type() string { return string(e.Command) + ".fulfilled" }

// CommandRejected carries the normalized failure message
type CommandRejected struct {
	Command Kind
	Err     string
}

func (e CommandRejected) Type() string { return string(e.Command) + ".rejected" }

// LoggedOutEvent resets the session to its logged-out shape
type LoggedOutEvent struct{}

func (e LoggedOutEvent) Type() string { return "session.logged_out" }

// EditFormOpened toggles the profile edit form on
type EditFormOpened struct{}

func (e EditFormOpened) Type() string { return "ui.edit_form_opened" }

// EditFormClosed toggles the profile edit form off
type EditFormClosed struct{}

func (e EditFormClosed) Type() string { return "ui.edit_form_closed" }

// PopupSet sets the popup toggle. Value must be strictly boolean, anything
// else is a no-op when reduced.
type PopupSet struct {
	Value any
}

func (e PopupSet) Type() string { return "ui.popup_set" }

// ProfileEdited shallow merges a partial edit into the logged user
type ProfileEdited struct {
	Patch UserPatch
}

func (e ProfileEdited) Type() string { return "session.profile_edited" }
