package model

// EnrollmentStatusCompleted is the status every new enrollment is created
// with. The enrollment endpoint takes no status input.
const EnrollmentStatusCompleted = "Completed"

// Enrollment links a student to a course. The (course_id, student_id) pair
// is unique; the row is never deleted or re-pointed after creation.
type Enrollment struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	CourseID  int64  `json:"course_id"`
	StudentID int64  `json:"student_id"`
}

// EnrollRequest is the payload for enrolling a student into a course.
type EnrollRequest struct {
	CourseName   string `json:"course_name" binding:"required,max=200"`
	StudentEmail string `json:"student_email" binding:"required,email,max=255"`
}
