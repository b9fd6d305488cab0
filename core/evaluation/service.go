package evaluation

import "context"

type (
	Repository interface {
		QueryAllEvaluations(ctx context.Context) ([]Evaluation, error)
		QueryPendingEnrollments(ctx context.Context) ([]PendingEnrollment, error)
		CreateEvaluation(ctx context.Context, ne NewEvaluation) (Evaluation, error)
		UpdateEvaluation(ctx context.Context, id int, ue UpdateEvaluation) error
		// DeleteEvaluation removes a grade; the backend reverts the
		// enrollment to MATRICULADO as a side effect.
		DeleteEvaluation(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Evaluation, error) {
	return svc.repo.QueryAllEvaluations(ctx)
}

func (svc *Service) QueryPending(ctx context.Context) ([]PendingEnrollment, error) {
	return svc.repo.QueryPendingEnrollments(ctx)
}

func (svc *Service) Create(ctx context.Context, ne NewEvaluation) (Evaluation, error) {
	return svc.repo.CreateEvaluation(ctx, ne)
}

func (svc *Service) Update(ctx context.Context, id int, ue UpdateEvaluation) error {
	return svc.repo.UpdateEvaluation(ctx, id, ue)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteEvaluation(ctx, id)
}
