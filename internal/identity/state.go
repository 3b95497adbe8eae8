package identity

// State is the lifecycle position of a Provider.
type State int

// Provider states.
const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// CanTransitionTo reports whether the provider may move from s to next.
//
//	initializing    -> unauthenticated | authenticated  (initial load)
//	unauthenticated -> authenticated                    (login, signup)
//	authenticated   -> unauthenticated                  (logout)
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StateInitializing:
		return next == StateUnauthenticated || next == StateAuthenticated
	case StateUnauthenticated:
		return next == StateAuthenticated
	case StateAuthenticated:
		return next == StateUnauthenticated
	}
	return false
}
