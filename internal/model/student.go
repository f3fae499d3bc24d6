package model

// Student represents an enrolled or enrollable person record.
// Email is the business-level unique key; ID is assigned by the database.
type Student struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FullName returns the space-joined concatenation used by full-name search.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// CreateStudentRequest is the payload for registering a new student.
type CreateStudentRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
}

// UpdateStudentEmailRequest carries both halves of the dual-key email update:
// Email is the lookup key (the student's current address), NewEmail the value
// to write.
type UpdateStudentEmailRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	NewEmail string `json:"new_email" binding:"required,max=255"`
}
