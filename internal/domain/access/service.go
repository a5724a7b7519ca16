package access

import "context"

// Policy computes the visible scope for one caller.
type Policy interface {
	Scope(ctx context.Context, filter Filter) (Scope, error)
}

// ScopeResolver picks the Policy for a caller and resolves their scope.
type ScopeResolver interface {
	// PolicyFor dispatches on the caller's role once.
	PolicyFor(caller Caller) (Policy, error)

	// Resolve is PolicyFor followed by Policy.Scope.
	Resolve(ctx context.Context, caller Caller, filter Filter) (Scope, error)
}
