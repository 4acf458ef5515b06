package cliutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/session"
)

const routeAnnotation = "papertrade_route"

// MarkPublic classifies a command (and its subtree) as public: it runs
// regardless of auth state.
func MarkPublic(cmd *cobra.Command) {
	setRoute(cmd, "public")
}

// MarkAuthOnly classifies a command as auth-only: it establishes a session
// and is refused while one is already active.
func MarkAuthOnly(cmd *cobra.Command) {
	setRoute(cmd, "auth-only")
}

func setRoute(cmd *cobra.Command, class string) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[routeAnnotation] = class
}

// Classify resolves a command's route class, walking up the command tree.
// Unannotated commands are private; cobra's own help and completion commands
// are public.
func Classify(cmd *cobra.Command) session.RouteClass {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Annotations[routeAnnotation] {
		case "public":
			return session.RoutePublic
		case "auth-only":
			return session.RouteAuthOnly
		}
	}
	switch cmd.Name() {
	case "help", "completion", "version":
		return session.RoutePublic
	}
	return session.RoutePrivate
}

// Gate hydrates the session if that has not happened yet and enforces the
// guard decision for the command about to run. Redirects become errors that
// name the command the user should run instead.
func Gate(sess *session.Session, class session.RouteClass, loginHint, logoutHint string) error {
	st := sess.State()
	if !st.Initialized {
		sess.Hydrate()
		st = sess.State()
	}
	switch session.Decide(class, st) {
	case session.RedirectLogin:
		return fmt.Errorf("not logged in; run %q first", loginHint)
	case session.RedirectLanding:
		email := ""
		if st.User != nil {
			email = st.User.Email
		}
		return fmt.Errorf("already logged in as %s; run %q first", email, logoutHint)
	}
	return nil
}
