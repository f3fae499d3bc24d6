package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/gotinite/coursehub-backend/internal/model"
)

// ReportService builds downloadable spreadsheets over the read-side
// projections. It has no write path.
type ReportService struct {
	courseRepo  CourseStore
	studentRepo StudentStore
	gradeRepo   GradeStore
	log         zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(courseRepo CourseStore, studentRepo StudentStore, gradeRepo GradeStore, log zerolog.Logger) *ReportService {
	return &ReportService{
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
		gradeRepo:   gradeRepo,
		log:         log.With().Str("component", "report_service").Logger(),
	}
}

// CourseGradeSheet builds an .xlsx workbook with the course roster and each
// student's grade, blank where no grade is recorded yet.
func (s *ReportService) CourseGradeSheet(ctx context.Context, courseName string) (*excelize.File, error) {
	course, err := s.courseRepo.GetByName(ctx, courseName)
	if err != nil {
		return nil, asNotFound(err, "course", courseName)
	}

	roster, err := s.studentRepo.ListByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	grades, err := s.gradeRepo.ListByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	gradeByStudent := make(map[int64]model.Grade, len(grades))
	for _, g := range grades {
		gradeByStudent[g.StudentID] = g
	}

	f := excelize.NewFile()
	const sheet = "Grades"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"First Name", "Last Name", "Email", "Grade"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, student := range roster {
		values := []interface{}{student.FirstName, student.LastName, student.Email, nil}
		if g, ok := gradeByStudent[student.ID]; ok {
			values[3] = g.Value
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	s.log.Info().
		Int64("course_id", course.ID).
		Int("students", len(roster)).
		Int("grades", len(grades)).
		Msg("Course grade sheet built")
	return f, nil
}

// CourseGradeSheetName returns the suggested download filename for a
// course's grade sheet.
func CourseGradeSheetName(courseName string) string {
	return fmt.Sprintf("%s-grades.xlsx", courseName)
}
