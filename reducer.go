package session

// Reduce is the pure transition function: it maps the current state and one
// event to the next state and touches nothing else. Every dispatched event,
// async or local, funnels through here, so the store can treat each
// application as one atomic snapshot swap.
func Reduce(state State, event Event) State {
	next := state.clone()

	switch ev := event.(type) {
	case CommandPending:
		next.IsLoading = true

	case CommandRejected:
		next.IsLoading = false
		next.Error = ev.Err
		if ev.Command == KindLogin {
			next.LoggedIn = false
		}

	case CommandFulfilled:
		next.IsLoading = false
		applyPayload(&next, ev.Payload)

	case LoggedOutEvent:
		next.LoggedIn = false
		next.LoggedOut = true
		next.DecodedUser = nil
		next.LoggedUser = nil
		next.UserRole = ""

	case EditFormOpened:
		next.IsEditForm = true

	case EditFormClosed:
		next.IsEditForm = false

	case PopupSet:
		// strictly boolean, anything else leaves the toggle untouched
		if value, ok := ev.Value.(bool); ok {
			next.PopUp = value
		}

	case ProfileEdited:
		if next.LoggedUser != nil {
			merged := ev.Patch.apply(*next.LoggedUser)
			next.LoggedUser = &merged
		}
	}

	return next
}

// applyPayload performs the command-specific fulfilled mapping
func applyPayload(state *State, payload any) {
	switch p := payload.(type) {
	case LoginResult:
		user := p.User
		state.LoggedUser = &user
		state.UserRole = user.Role
		state.DecodedUser = p.Claims
		state.LoggedIn = true

	case MessageResult:
		state.Message = p.Msg

	case UserList:
		state.Users = []User(p)

	case FetchedUser:
		user := User(p)
		state.LoggedUser = &user

	case UserUpdated:
		state.Users = replaceUser(state.Users, p.User)
		// Profile may be nil when the response shape did not carry the
		// sub-field. The assignment happens regardless, matching the web
		// client this replaces. See DESIGN.md before changing it.
		state.LoggedUser = p.Profile

	case DeletedUser:
		state.Users = removeUser(state.Users, string(p))

	case RoleGranted:
		state.Users = replaceUser(state.Users, p.User)
	}
}

// replaceUser swaps the entry matching updated.ID in place, preserving the
// relative order of every other entry. A missing match leaves the roster
// unchanged.
func replaceUser(users []User, updated User) []User {
	next := make([]User, len(users))
	for i, user := range users {
		if user.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = user
		}
	}
	return next
}

// removeUser filters out exactly the entry matching id
func removeUser(users []User, id string) []User {
	next := make([]User, 0, len(users))
	for _, user := range users {
		if user.ID != id {
			next = append(next, user)
		}
	}
	return next
}
