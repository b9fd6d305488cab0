package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nvillanueva/registra/core/student"
)

const studentsPath = "/api/alumnos"

type studentRepository struct {
	client *Client
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(client *Client) student.Repository {
	return &studentRepository{client: client}
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	if err := repo.client.do(ctx, http.MethodGet, studentsPath, nil, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	var st student.Student
	err := repo.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", studentsPath, id), nil, nil, &st)
	return st, err
}

func (repo *studentRepository) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	var res createResponse
	if err := repo.client.do(ctx, http.MethodPost, studentsPath, nil, ns, &res); err != nil {
		return student.Student{}, err
	}
	return student.Student{
		ID:        res.ID,
		FirstName: ns.FirstName,
		LastName:  ns.LastName,
		Age:       ns.Age,
		DNI:       ns.DNI,
		Email:     ns.Email,
		Phone:     ns.Phone,
		Cycle:     ns.Cycle,
	}, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, id int, us student.UpdateStudent) error {
	return repo.client.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", studentsPath, id), nil, us, nil)
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id int) error {
	return repo.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", studentsPath, id), nil, nil, nil)
}
