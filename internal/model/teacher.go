package model

// Teacher represents a teaching staff record. Email is the unique key.
type Teacher struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FullName returns the space-joined concatenation used by full-name search.
func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

// CreateTeacherRequest is the payload for registering a new teacher.
type CreateTeacherRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
}

// UpdateTeacherEmailRequest carries the lookup email and the new value.
type UpdateTeacherEmailRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	NewEmail string `json:"new_email" binding:"required,max=255"`
}
