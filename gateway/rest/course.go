package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nvillanueva/registra/core/course"
)

const coursesPath = "/api/cursos"

type courseRepository struct {
	client *Client
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(client *Client) course.Repository {
	return &courseRepository{client: client}
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	if err := repo.client.do(ctx, http.MethodGet, coursesPath, nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id int) (course.Course, error) {
	var crs course.Course
	err := repo.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", coursesPath, id), nil, nil, &crs)
	return crs, err
}

func (repo *courseRepository) CreateCourse(ctx context.Context, nc course.NewCourse) (course.Course, error) {
	var res createResponse
	if err := repo.client.do(ctx, http.MethodPost, coursesPath, nil, nc, &res); err != nil {
		return course.Course{}, err
	}
	return course.Course{
		ID:      res.ID,
		Code:    nc.Code,
		Name:    nc.Name,
		Credits: nc.Credits,
		Cycle:   nc.Cycle,
	}, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, id int, nc course.NewCourse) error {
	return repo.client.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", coursesPath, id), nil, nc, nil)
}

func (repo *courseRepository) DeleteCourse(ctx context.Context, id int) error {
	return repo.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", coursesPath, id), nil, nil, nil)
}
