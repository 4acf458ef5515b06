package session

// RouteClass classifies a command the way the SPA classified paths.
type RouteClass int

const (
	// RoutePublic commands run regardless of auth state (help, version).
	RoutePublic RouteClass = iota
	// RouteAuthOnly commands exist to establish a session (login, signup)
	// and are refused while one is already active.
	RouteAuthOnly
	// RoutePrivate commands require an authenticated session.
	RoutePrivate
)

// Decision is the guard's verdict for one command invocation.
type Decision int

const (
	// Wait means the session is not initialized yet; no redirect decision
	// may be made until hydration completes.
	Wait Decision = iota
	// Allow renders the command.
	Allow
	// RedirectLogin sends the user to the login boundary.
	RedirectLogin
	// RedirectLanding sends an already-authenticated user away from the
	// login/signup boundary.
	RedirectLanding
)

// Decide implements the guard table as a pure function of route class and
// session state. It is re-evaluated on every command, so a login or logout
// immediately changes what the next invocation may do.
func Decide(class RouteClass, st State) Decision {
	if !st.Initialized {
		return Wait
	}
	switch class {
	case RouteAuthOnly:
		if st.Authenticated {
			return RedirectLanding
		}
	case RoutePrivate:
		if !st.Authenticated {
			return RedirectLogin
		}
	}
	return Allow
}
