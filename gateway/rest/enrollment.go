package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nvillanueva/registra/core/enrollment"
)

const enrollmentsPath = "/api/matriculas"

type enrollmentRepository struct {
	client *Client
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(client *Client) enrollment.Repository {
	return &enrollmentRepository{client: client}
}

func (repo *enrollmentRepository) QueryAllEnrollments(ctx context.Context) ([]enrollment.Enrollment, error) {
	var enrollments []enrollment.Enrollment
	if err := repo.client.do(ctx, http.MethodGet, enrollmentsPath, nil, nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (repo *enrollmentRepository) GetEnrollmentByID(ctx context.Context, id int) (enrollment.Enrollment, error) {
	var enr enrollment.Enrollment
	err := repo.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", enrollmentsPath, id), nil, nil, &enr)
	return enr, err
}

func (repo *enrollmentRepository) CreateEnrollment(ctx context.Context, ne enrollment.NewEnrollment) (enrollment.Enrollment, error) {
	var res createResponse
	if err := repo.client.do(ctx, http.MethodPost, enrollmentsPath, nil, ne, &res); err != nil {
		return enrollment.Enrollment{}, err
	}
	return enrollment.Enrollment{
		ID:        res.ID,
		StudentID: ne.StudentID,
		CourseID:  ne.CourseID,
		Cycle:     ne.Cycle,
		Status:    enrollment.StatusEnrolled,
	}, nil
}

func (repo *enrollmentRepository) DeleteEnrollment(ctx context.Context, id int) error {
	return repo.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", enrollmentsPath, id), nil, nil, nil)
}
