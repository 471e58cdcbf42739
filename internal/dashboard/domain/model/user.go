package model

// DirectoryUser is a platform account as listed in the admin user directory.
type DirectoryUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	AvatarPath   string `json:"avatarPath,omitempty"`
	CreatedOn    string `json:"createdOn,omitempty"`
}

// RoleChangeRequest assigns a new platform role to a user.
type RoleChangeRequest struct {
	Role string `json:"role"`
}
