package core

// Roles as assigned by the backend.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type (
	// Profile is the signed-in user's profile as returned at login and kept
	// alongside the token for the lifetime of the session.
	Profile struct {
		ID         string `json:"_id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone,omitempty"`
		Role       string `json:"role"`
		IsVerified bool   `json:"isVerified"`
		StudentID  string `json:"studentId,omitempty"`
	}

	// Session is the only state this application persists: a bearer token and
	// the profile it was issued for.
	Session struct {
		Token string  `json:"token"`
		User  Profile `json:"user"`
	}

	// SessionStore abstracts where the session lives (a file for the console,
	// a signed cookie for the web app). It is injected into the API gateway
	// rather than kept as process-wide state.
	//
	// Clear must be idempotent: the gateway calls it on every 401 and
	// concurrent in-flight responses may race to tear the session down.
	SessionStore interface {
		Load() (Session, error)
		Save(Session) error
		Clear() error
	}
)

func (p Profile) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Profile) IsStudent() bool { return p.Role == RoleStudent || p.Role == "" }

func (s Session) Authenticated() bool { return s.Token != "" }
