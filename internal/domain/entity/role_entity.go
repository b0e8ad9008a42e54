package entity

// Role is the role tag attached to a user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)
