package user

import "time"

type UserType string

const (
	UserTypeAdmin    UserType = "admin"    // Full access
	UserTypeManager  UserType = "manager"  // Runs one department
	UserTypeEmployee UserType = "employee" // Regular employee
)

var UserTypeValues = []string{
	string(UserTypeAdmin),
	string(UserTypeManager),
	string(UserTypeEmployee),
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	UserType     UserType
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID   *string
	DepartmentID *string
}

// IsAdmin checks if user is an admin
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// IsManager checks if user is a manager or admin
func (u *User) IsManager() bool {
	return u.UserType == UserTypeManager || u.UserType == UserTypeAdmin
}

// CanApprove checks if user can approve requests
func (u *User) CanApprove() bool {
	return u.IsManager()
}
