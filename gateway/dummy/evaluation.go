package dummy

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/nvillanueva/registra/core"
	"github.com/nvillanueva/registra/core/enrollment"
	"github.com/nvillanueva/registra/core/evaluation"
)

type evaluationRepository struct {
	db *DB
}

var _ evaluation.Repository = (*evaluationRepository)(nil)

func NewEvaluationRepository(db *DB) *evaluationRepository {
	return &evaluationRepository{db: db}
}

func (repo *evaluationRepository) QueryAllEvaluations(ctx context.Context) ([]evaluation.Evaluation, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("QueryAllEvaluations"); err != nil {
		return nil, err
	}
	evaluations := make([]evaluation.Evaluation, 0, len(repo.db.evaluations))
	for _, e := range repo.db.evaluations {
		evaluations = append(evaluations, *e)
	}
	sort.Slice(evaluations, func(i, j int) bool { return evaluations[i].ID < evaluations[j].ID })
	return evaluations, nil
}

func (repo *evaluationRepository) QueryPendingEnrollments(ctx context.Context) ([]evaluation.PendingEnrollment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("QueryPendingEnrollments"); err != nil {
		return nil, err
	}
	graded := make(map[int]bool, len(repo.db.evaluations))
	for _, ev := range repo.db.evaluations {
		graded[ev.EnrollmentID] = true
	}
	pending := make([]evaluation.PendingEnrollment, 0)
	for _, e := range repo.db.enrollments {
		if graded[e.ID] || e.Status != enrollment.StatusEnrolled {
			continue
		}
		pending = append(pending, evaluation.PendingEnrollment{
			EnrollmentID: e.ID,
			StudentName:  e.StudentName,
			CourseName:   e.CourseName,
			Cycle:        e.Cycle,
		})
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].EnrollmentID < pending[j].EnrollmentID })
	return pending, nil
}

func (repo *evaluationRepository) CreateEvaluation(ctx context.Context, ne evaluation.NewEvaluation) (evaluation.Evaluation, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("CreateEvaluation"); err != nil {
		return evaluation.Evaluation{}, err
	}
	enr, ok := repo.db.enrollments[ne.EnrollmentID]
	if !ok {
		return evaluation.Evaluation{}, core.NewRemoteError(http.StatusNotFound, "Matrícula no encontrada")
	}
	for _, ev := range repo.db.evaluations {
		if ev.EnrollmentID == ne.EnrollmentID {
			return evaluation.Evaluation{}, core.NewRemoteError(http.StatusConflict, "La matrícula ya tiene una evaluación")
		}
	}
	ev := evaluation.Evaluation{
		ID:           repo.db.nextPK(),
		EnrollmentID: ne.EnrollmentID,
		Score:        ne.Score,
		EvaluatedAt:  time.Now().Format("2006-01-02"),
		StudentName:  enr.StudentName,
		CourseName:   enr.CourseName,
		Cycle:        enr.Cycle,
	}
	if evaluation.Passed(ne.Score) {
		ev.Approved = 1
		enr.Status = enrollment.StatusPassed
	} else {
		enr.Status = enrollment.StatusFailed
	}
	repo.db.evaluations[ev.ID] = &ev
	return ev, nil
}

func (repo *evaluationRepository) UpdateEvaluation(ctx context.Context, id int, ue evaluation.UpdateEvaluation) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("UpdateEvaluation"); err != nil {
		return err
	}
	ev, ok := repo.db.evaluations[id]
	if !ok {
		return core.NewRemoteError(http.StatusNotFound, "Evaluación no encontrada")
	}
	ev.Score = ue.Score
	ev.Approved = 0
	status := enrollment.StatusFailed
	if evaluation.Passed(ue.Score) {
		ev.Approved = 1
		status = enrollment.StatusPassed
	}
	if enr, ok := repo.db.enrollments[ev.EnrollmentID]; ok {
		enr.Status = status
	}
	return nil
}

func (repo *evaluationRepository) DeleteEvaluation(ctx context.Context, id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if err := repo.db.failure("DeleteEvaluation"); err != nil {
		return err
	}
	ev, ok := repo.db.evaluations[id]
	if !ok {
		return core.NewRemoteError(http.StatusNotFound, "Evaluación no encontrada")
	}
	if enr, ok := repo.db.enrollments[ev.EnrollmentID]; ok {
		enr.Status = enrollment.StatusEnrolled
	}
	delete(repo.db.evaluations, id)
	return nil
}
