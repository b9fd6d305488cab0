package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nvillanueva/registra/core/evaluation"
)

const evaluationsPath = "/api/evaluaciones"

type evaluationRepository struct {
	client *Client
}

var _ evaluation.Repository = (*evaluationRepository)(nil) // interface compliance check

func NewEvaluationRepository(client *Client) evaluation.Repository {
	return &evaluationRepository{client: client}
}

func (repo *evaluationRepository) QueryAllEvaluations(ctx context.Context) ([]evaluation.Evaluation, error) {
	var evaluations []evaluation.Evaluation
	if err := repo.client.do(ctx, http.MethodGet, evaluationsPath, nil, nil, &evaluations); err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (repo *evaluationRepository) QueryPendingEnrollments(ctx context.Context) ([]evaluation.PendingEnrollment, error) {
	var pending []evaluation.PendingEnrollment
	if err := repo.client.do(ctx, http.MethodGet, evaluationsPath+"/pendientes", nil, nil, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

func (repo *evaluationRepository) CreateEvaluation(ctx context.Context, ne evaluation.NewEvaluation) (evaluation.Evaluation, error) {
	// the backend acknowledges with a bare message; grading state comes back
	// on the next list reload
	if err := repo.client.do(ctx, http.MethodPost, evaluationsPath, nil, ne, nil); err != nil {
		return evaluation.Evaluation{}, err
	}
	ev := evaluation.Evaluation{EnrollmentID: ne.EnrollmentID, Score: ne.Score}
	if evaluation.Passed(ne.Score) {
		ev.Approved = 1
	}
	return ev, nil
}

func (repo *evaluationRepository) UpdateEvaluation(ctx context.Context, id int, ue evaluation.UpdateEvaluation) error {
	return repo.client.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", evaluationsPath, id), nil, ue, nil)
}

func (repo *evaluationRepository) DeleteEvaluation(ctx context.Context, id int) error {
	return repo.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", evaluationsPath, id), nil, nil, nil)
}
