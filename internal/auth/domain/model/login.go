package model

// LoginCredentials is what the dashboard forwards to the platform API to
// sign a user in.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the platform API's answer to a successful login. Older
// platform versions return only the token; newer ones include a few profile
// fields the dashboard uses to seed the session user.
type LoginResult struct {
	Token        string `json:"token"`
	Email        string `json:"email,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	AvatarPath   string `json:"avatarPath,omitempty"`
}
