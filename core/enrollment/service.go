package enrollment

import (
	"context"

	"github.com/nvillanueva/registra/core"
)

type (
	Repository interface {
		QueryAllEnrollments(ctx context.Context) ([]Enrollment, error)
		GetEnrollmentByID(ctx context.Context, id int) (Enrollment, error)
		CreateEnrollment(ctx context.Context, ne NewEnrollment) (Enrollment, error)
		DeleteEnrollment(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Enrollment, error) {
	return svc.repo.QueryAllEnrollments(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Enrollment, error) {
	return svc.repo.GetEnrollmentByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	return svc.repo.CreateEnrollment(ctx, ne)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteEnrollment(ctx, id)
}

// EnrollBatch enrolls one student in each of the given courses with one
// independent create per course. The batch is best-effort, not atomic:
// successes are never rolled back when sibling requests fail, and the caller
// reloads the list whenever at least one create went through.
func (svc *Service) EnrollBatch(ctx context.Context, studentID, cycle int, courseIDs []int) BatchResult {
	var res BatchResult
	for _, courseID := range courseIDs {
		ne := NewEnrollment{StudentID: studentID, CourseID: courseID, Cycle: cycle}
		if _, err := svc.repo.CreateEnrollment(ctx, ne); err != nil {
			res.Failed++
			if rerr, ok := core.AsRemoteError(err); ok {
				res.Messages = append(res.Messages, rerr.Messages...)
			} else {
				res.Messages = append(res.Messages, "Error de conexión")
			}
			continue
		}
		res.Succeeded++
	}
	return res
}
