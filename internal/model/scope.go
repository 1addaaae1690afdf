package model

// AnonymousUserID owns lines submitted without a user header.
const AnonymousUserID = "anonymous"

// Scope identifies who a request acts for. Every stored line belongs to
// exactly one UserID.
type Scope struct {
	UserID   string
	Username string
}

// ScopeOrAnonymous fills an empty UserID with AnonymousUserID.
func ScopeOrAnonymous(sc Scope) Scope {
	if sc.UserID == "" {
		sc.UserID = AnonymousUserID
	}
	return sc
}
