package dummy

import (
	"context"
	"net/http"
	"sort"

	"github.com/nvillanueva/registra/core"
	"github.com/nvillanueva/registra/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("QueryAllCourses"); err != nil {
		return nil, err
	}
	courses := make([]course.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		courses = append(courses, *c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id int) (course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("GetCourseByID"); err != nil {
		return course.Course{}, err
	}
	c, ok := repo.db.courses[id]
	if !ok {
		return course.Course{}, core.NewRemoteError(http.StatusNotFound, "Curso no encontrado")
	}
	return *c, nil
}

func (repo *courseRepository) CreateCourse(ctx context.Context, nc course.NewCourse) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("CreateCourse"); err != nil {
		return course.Course{}, err
	}
	for _, c := range repo.db.courses {
		if c.Code == nc.Code {
			return course.Course{}, core.NewRemoteError(http.StatusConflict, "El código del curso ya existe")
		}
	}
	c := course.Course{
		ID:      repo.db.nextPK(),
		Code:    nc.Code,
		Name:    nc.Name,
		Credits: nc.Credits,
		Cycle:   nc.Cycle,
	}
	repo.db.courses[c.ID] = &c
	return c, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, id int, nc course.NewCourse) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("UpdateCourse"); err != nil {
		return err
	}
	c, ok := repo.db.courses[id]
	if !ok {
		return core.NewRemoteError(http.StatusNotFound, "Curso no encontrado")
	}
	c.Code = nc.Code
	c.Name = nc.Name
	c.Credits = nc.Credits
	c.Cycle = nc.Cycle
	return nil
}

func (repo *courseRepository) DeleteCourse(ctx context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("DeleteCourse"); err != nil {
		return err
	}
	if _, ok := repo.db.courses[id]; !ok {
		return core.NewRemoteError(http.StatusNotFound, "Curso no encontrado")
	}
	delete(repo.db.courses, id)
	return nil
}
