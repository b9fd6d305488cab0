package dummy

import (
	"context"

	"github.com/nvillanueva/registra/core/report"
)

type reportRepository struct {
	db *DB
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *DB) *reportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) StudentsPerCycle(ctx context.Context) ([]report.CycleCount, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("StudentsPerCycle"); err != nil {
		return nil, err
	}
	return repo.db.Reports.StudentsPerCycle, nil
}

func (repo *reportRepository) CourseDemand(ctx context.Context) ([]report.CourseDemand, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("CourseDemand"); err != nil {
		return nil, err
	}
	return repo.db.Reports.CourseDemand, nil
}

func (repo *reportRepository) Performance(ctx context.Context) (report.Performance, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("Performance"); err != nil {
		return report.Performance{}, err
	}
	return repo.db.Reports.Performance, nil
}

func (repo *reportRepository) LastThreeCycleGrades(ctx context.Context) ([]report.GradeRow, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("LastThreeCycleGrades"); err != nil {
		return nil, err
	}
	return repo.db.Reports.LastThreeCycles, nil
}

func (repo *reportRepository) LastCycleGrades(ctx context.Context) (report.LastCycleGrades, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("LastCycleGrades"); err != nil {
		return report.LastCycleGrades{}, err
	}
	return repo.db.Reports.LastCycle, nil
}

func (repo *reportRepository) GradesByCycle(ctx context.Context) (report.GradesByCycle, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("GradesByCycle"); err != nil {
		return report.GradesByCycle{}, err
	}
	return repo.db.Reports.ByCycle, nil
}

func (repo *reportRepository) StudentPerformance(ctx context.Context, studentID int, filter string) (report.StudentPerformance, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if err := repo.db.failure("StudentPerformance"); err != nil {
		return report.StudentPerformance{}, err
	}
	return repo.db.Reports.StudentPerformance, nil
}
