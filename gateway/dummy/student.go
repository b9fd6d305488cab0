package dummy

import (
	"context"
	"net/http"
	"sort"

	"github.com/nvillanueva/registra/core"
	"github.com/nvillanueva/registra/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("QueryAllStudents"); err != nil {
		return nil, err
	}
	students := make([]student.Student, 0, len(repo.db.students))
	for _, s := range repo.db.students {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("GetStudentByID"); err != nil {
		return student.Student{}, err
	}
	s, ok := repo.db.students[id]
	if !ok {
		return student.Student{}, core.NewRemoteError(http.StatusNotFound, "Alumno no encontrado")
	}
	return *s, nil
}

func (repo *studentRepository) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("CreateStudent"); err != nil {
		return student.Student{}, err
	}
	for _, s := range repo.db.students {
		if s.DNI == ns.DNI {
			return student.Student{}, core.NewRemoteError(http.StatusConflict, "El DNI ya está registrado")
		}
	}
	s := student.Student{
		ID:        repo.db.nextPK(),
		FirstName: ns.FirstName,
		LastName:  ns.LastName,
		Age:       ns.Age,
		DNI:       ns.DNI,
		Email:     ns.Email,
		Phone:     ns.Phone,
		Cycle:     ns.Cycle,
	}
	repo.db.students[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, id int, us student.UpdateStudent) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("UpdateStudent"); err != nil {
		return err
	}
	s, ok := repo.db.students[id]
	if !ok {
		return core.NewRemoteError(http.StatusNotFound, "Alumno no encontrado")
	}
	s.FirstName = us.FirstName
	s.LastName = us.LastName
	s.Age = us.Age
	s.DNI = us.DNI
	s.Email = us.Email
	s.Phone = us.Phone
	s.Cycle = us.Cycle
	return nil
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("DeleteStudent"); err != nil {
		return err
	}
	if _, ok := repo.db.students[id]; !ok {
		return core.NewRemoteError(http.StatusNotFound, "Alumno no encontrado")
	}
	delete(repo.db.students, id)
	return nil
}
