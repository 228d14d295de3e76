package model

type UserRole string

const (
	RoleVolunteer    UserRole = "volunteer"
	RoleOrganization UserRole = "organization"
	RoleReviewer     UserRole = "reviewer"
)

// User is the acting identity behind every mutation: the volunteer, an
// opportunity owner, or a reviewer. The engine treats the ID as opaque;
// this model exists so actions can be attributed and authenticated.
type User struct {
	Base
	Email        string   `db:"email" json:"email"`
	Name         string   `db:"name" json:"name"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Role         UserRole `db:"role" json:"role"`
}

type RegisterRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Name     string   `json:"name" binding:"required,max=200"`
	Password string   `json:"password" binding:"required,min=8,max=72"`
	Role     UserRole `json:"role" binding:"required,oneof=volunteer organization reviewer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
