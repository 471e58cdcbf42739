package model

import "io"

// ProfileUpdateRequest carries the editable fields of the signed-in user's
// own profile. The form tags let handlers accept the same fields from
// multipart bodies. Avatar is optional; when set the update goes out as
// multipart.
type ProfileUpdateRequest struct {
	FirstName    string      `json:"firstName" form:"firstName"`
	LastName     string      `json:"lastName" form:"lastName"`
	DisplayName  string      `json:"displayName,omitempty" form:"displayName"`
	MobileNumber string      `json:"mobileNumber,omitempty" form:"mobileNumber"`
	Avatar       *FileUpload `json:"-" form:"-"`
}

// FileUpload is a file streamed to the platform as one multipart part.
type FileUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}
