package model

// Course statuses are free-form labels; these are the ones the API commonly
// exchanges. No transition rules are enforced at this layer.
const (
	CourseStatusActive   = "ACTIVE"
	CourseStatusPending  = "PENDING"
	CourseStatusInactive = "INACTIVE"
)

// Course represents a teachable course. Name is the business-level unique
// key. TeacherID is nil until a teacher is assigned; assignment is permanent.
type Course struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	TeacherID *int64 `json:"teacher_id,omitempty"`
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=200"`
	Status string `json:"status" binding:"required,min=1,max=50"`
}

// RenameCourseRequest carries both halves of the dual-key rename: Name is
// the lookup key (the course's current name), NewName the value to write.
type RenameCourseRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	NewName string `json:"new_name" binding:"required,max=200"`
}

// UpdateCourseStatusRequest carries the lookup name and the new status label.
type UpdateCourseStatusRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Status string `json:"status" binding:"required,max=50"`
}

// AssignTeacherRequest links a course to its (single, permanent) teacher.
type AssignTeacherRequest struct {
	CourseName   string `json:"course_name" binding:"required,max=200"`
	TeacherEmail string `json:"teacher_email" binding:"required,email,max=255"`
}
