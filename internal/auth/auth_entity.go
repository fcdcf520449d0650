package auth

import "go-leave/internal/domain"

type User struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string
}

func (u User) toResponse() AuthResponse {
	return AuthResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// seedAccount is a demo login that exists without registration.
type seedAccount struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

var seedAccounts = []seedAccount{
	{ID: "1", Name: "Admin User", Email: "admin@example.com", Password: "admin123", Role: domain.RoleAdmin},
	{ID: "2", Name: "Regular User", Email: "user@example.com", Password: "user123", Role: domain.RoleUser},
}
