package model

// Grade values are constrained to the closed range [GradeMin, GradeMax].
const (
	GradeMin = 2.0
	GradeMax = 6.0
)

// Grade records a teacher's mark for a student in a course. The
// (student_id, course_id) pair is unique; Value is the only field that can
// change after creation.
type Grade struct {
	ID        int64   `json:"id"`
	Value     float64 `json:"value"`
	StudentID int64   `json:"student_id"`
	CourseID  int64   `json:"course_id"`
	TeacherID int64   `json:"teacher_id"`
}

// RecordGradeRequest is the payload for recording a new grade.
type RecordGradeRequest struct {
	StudentEmail string  `json:"student_email" binding:"required,email,max=255"`
	CourseName   string  `json:"course_name" binding:"required,max=200"`
	TeacherEmail string  `json:"teacher_email" binding:"required,email,max=255"`
	Value        float64 `json:"value" binding:"required"`
}

// UpdateGradeValueRequest rewrites the value of an existing grade.
type UpdateGradeValueRequest struct {
	Value float64 `json:"value" binding:"required"`
}
