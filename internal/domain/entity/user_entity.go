package entity

// User is a dashboard account from the fixed user table.
//
// Password is kept in plain text and compared by equality; the demo has no
// credential storage of its own.
type User struct {
	Email    string
	Password string
	Name     string
	Role     Role
}

// SessionUser is the reduced view of a User that is written into a session at
// login. It never carries the password.
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// SessionView returns the reduced view stored in the session.
func (u *User) SessionView() *SessionUser {
	return &SessionUser{Email: u.Email, Name: u.Name, Role: u.Role}
}
