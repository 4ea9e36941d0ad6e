package entity

// AuthState is the session snapshot: who is signed in, as which role, and the
// phone number staged between role selection and OTP verification.
//
// Invariant: IsAuthenticated implies User != nil and *UserRole == User.Role.
type AuthState struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user"`
	UserRole        *Role  `json:"userRole"`
	PhoneNumber     string `json:"phoneNumber"`
}

// Clone returns a deep copy of the state.
func (s AuthState) Clone() AuthState {
	c := s
	c.User = s.User.Clone()
	if s.UserRole != nil {
		role := *s.UserRole
		c.UserRole = &role
	}

	return c
}

// Role returns the current role, or "" when none is set.
func (s AuthState) Role() Role {
	if s.UserRole == nil {
		return ""
	}

	return *s.UserRole
}

// SetPhoneNumber stages the phone number used for OTP verification.
func (s AuthState) SetPhoneNumber(phone string) AuthState {
	next := s.Clone()
	next.PhoneNumber = phone

	return next
}

// SetUserRole stages the role the user is signing in as.
func (s AuthState) SetUserRole(role Role) AuthState {
	next := s.Clone()
	next.UserRole = &role

	return next
}

// Login marks the session authenticated for user; the role is taken from the user.
func (s AuthState) Login(user User) AuthState {
	next := s.Clone()
	next.IsAuthenticated = true
	next.User = user.Clone()
	role := user.Role
	next.UserRole = &role

	return next
}

// Logout resets all four fields together.
func (s AuthState) Logout() AuthState {
	return AuthState{}
}

// SwitchRole moves the signed-in user to another role, leaving other fields intact.
// Without a user it is a no-op.
func (s AuthState) SwitchRole(role Role) AuthState {
	if s.User == nil {
		return s.Clone()
	}

	next := s.Clone()
	next.User.Role = role
	next.UserRole = &role

	return next
}

// UpdateUser shallow-merges patch into the signed-in user. Without a user it is a no-op.
// A role in the patch moves UserRole with it so the session never disagrees with its user.
func (s AuthState) UpdateUser(patch UserPatch) AuthState {
	if s.User == nil {
		return s.Clone()
	}

	next := s.Clone()
	merged := next.User.Merge(patch)
	next.User = &merged
	if patch.Role != nil {
		role := merged.Role
		next.UserRole = &role
	}

	return next
}

// Normalize checks a session read back from storage. A signed-in session
// without a user is unusable; a role that disagrees with the user follows the user.
func (s AuthState) Normalize() (AuthState, bool) {
	next := s.Clone()
	if !next.IsAuthenticated {
		return next, true
	}
	if next.User == nil || !next.User.Role.IsValid() {
		return AuthState{}, false
	}

	role := next.User.Role
	next.UserRole = &role

	return next, true
}
