package dummy

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/nvillanueva/registra/core"
	"github.com/nvillanueva/registra/core/enrollment"
)

type enrollmentRepository struct {
	db *DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil)

func NewEnrollmentRepository(db *DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) QueryAllEnrollments(ctx context.Context) ([]enrollment.Enrollment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("QueryAllEnrollments"); err != nil {
		return nil, err
	}
	enrollments := make([]enrollment.Enrollment, 0, len(repo.db.enrollments))
	for _, e := range repo.db.enrollments {
		enrollments = append(enrollments, *e)
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
	return enrollments, nil
}

func (repo *enrollmentRepository) GetEnrollmentByID(ctx context.Context, id int) (enrollment.Enrollment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("GetEnrollmentByID"); err != nil {
		return enrollment.Enrollment{}, err
	}
	e, ok := repo.db.enrollments[id]
	if !ok {
		return enrollment.Enrollment{}, core.NewRemoteError(http.StatusNotFound, "Matrícula no encontrada")
	}
	return *e, nil
}

func (repo *enrollmentRepository) CreateEnrollment(ctx context.Context, ne enrollment.NewEnrollment) (enrollment.Enrollment, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("CreateEnrollment"); err != nil {
		return enrollment.Enrollment{}, err
	}
	if err := repo.db.enrollFailures[ne.CourseID]; err != nil {
		return enrollment.Enrollment{}, err
	}
	for _, e := range repo.db.enrollments {
		if e.StudentID == ne.StudentID && e.CourseID == ne.CourseID && e.Cycle == ne.Cycle {
			return enrollment.Enrollment{}, core.NewRemoteError(http.StatusConflict, "El alumno ya está matriculado en este curso")
		}
	}
	e := enrollment.Enrollment{
		ID:         repo.db.nextPK(),
		StudentID:  ne.StudentID,
		CourseID:   ne.CourseID,
		Cycle:      ne.Cycle,
		Status:     enrollment.StatusEnrolled,
		EnrolledAt: time.Now().Format("2006-01-02"),
	}
	if s, ok := repo.db.students[ne.StudentID]; ok {
		e.StudentName = s.FullName()
	}
	if c, ok := repo.db.courses[ne.CourseID]; ok {
		e.CourseName = c.Name
		e.CourseCode = c.Code
	}
	repo.db.enrollments[e.ID] = &e
	return e, nil
}

func (repo *enrollmentRepository) DeleteEnrollment(ctx context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("DeleteEnrollment"); err != nil {
		return err
	}
	if _, ok := repo.db.enrollments[id]; !ok {
		return core.NewRemoteError(http.StatusNotFound, "Matrícula no encontrada")
	}
	delete(repo.db.enrollments, id)
	return nil
}
