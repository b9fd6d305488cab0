package report

import "context"

type (
	Repository interface {
		StudentsPerCycle(ctx context.Context) ([]CycleCount, error)
		CourseDemand(ctx context.Context) ([]CourseDemand, error)
		Performance(ctx context.Context) (Performance, error)
		LastThreeCycleGrades(ctx context.Context) ([]GradeRow, error)
		LastCycleGrades(ctx context.Context) (LastCycleGrades, error)
		GradesByCycle(ctx context.Context) (GradesByCycle, error)
		StudentPerformance(ctx context.Context, studentID int, filter string) (StudentPerformance, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) StudentsPerCycle(ctx context.Context) ([]CycleCount, error) {
	return svc.repo.StudentsPerCycle(ctx)
}

func (svc *Service) CourseDemand(ctx context.Context) ([]CourseDemand, error) {
	return svc.repo.CourseDemand(ctx)
}

func (svc *Service) Performance(ctx context.Context) (Performance, error) {
	return svc.repo.Performance(ctx)
}

func (svc *Service) LastThreeCycleGrades(ctx context.Context) ([]GradeRow, error) {
	return svc.repo.LastThreeCycleGrades(ctx)
}

func (svc *Service) LastCycleGrades(ctx context.Context) (LastCycleGrades, error) {
	return svc.repo.LastCycleGrades(ctx)
}

func (svc *Service) GradesByCycle(ctx context.Context) (GradesByCycle, error) {
	return svc.repo.GradesByCycle(ctx)
}

func (svc *Service) StudentPerformance(ctx context.Context, studentID int, filter string) (StudentPerformance, error) {
	if !ValidFilter(filter) {
		filter = FilterAllCycles
	}
	return svc.repo.StudentPerformance(ctx, studentID, filter)
}
