package enrollment

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/nvillanueva/registra/core"
)

type fakeRepo struct {
	Repository
	created  []NewEnrollment
	failWith map[int]error // per course ID
}

func (r *fakeRepo) CreateEnrollment(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	if err := r.failWith[ne.CourseID]; err != nil {
		return Enrollment{}, err
	}
	r.created = append(r.created, ne)
	return Enrollment{ID: len(r.created), StudentID: ne.StudentID, CourseID: ne.CourseID, Cycle: ne.Cycle}, nil
}

func TestService_EnrollBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("all succeed", func(t *testing.T) {
		repo := &fakeRepo{}
		res := NewService(repo).EnrollBatch(ctx, 1, 3, []int{10, 11, 12})

		assert.Equal(t, 3, res.Succeeded)
		assert.Zero(t, res.Failed)
		assert.Len(t, repo.created, 3)
	})

	t.Run("partial success keeps successes", func(t *testing.T) {
		repo := &fakeRepo{failWith: map[int]error{
			11: core.NewRemoteError(http.StatusConflict, "El alumno ya está matriculado en este curso"),
		}}
		res := NewService(repo).EnrollBatch(ctx, 1, 3, []int{10, 11, 12})

		assert.Equal(t, 2, res.Succeeded)
		assert.Equal(t, 1, res.Failed)
		assert.Equal(t, []string{"El alumno ya está matriculado en este curso"}, res.Messages)
		// the failing sibling never rolls back the rest
		assert.Len(t, repo.created, 2)
		assert.Equal(t, "2 exitosa(s), 1 con error(es): El alumno ya está matriculado en este curso", res.Summary())
		assert.Equal(t, "warning", res.Level())
	})

	t.Run("transport failure gets generic message", func(t *testing.T) {
		repo := &fakeRepo{failWith: map[int]error{
			10: errors.New("dial tcp: connection refused"),
		}}
		res := NewService(repo).EnrollBatch(ctx, 1, 3, []int{10})

		assert.Zero(t, res.Succeeded)
		assert.Equal(t, []string{"Error de conexión"}, res.Messages)
		assert.Equal(t, "danger", res.Level())
	})
}
