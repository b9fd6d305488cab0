package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nvillanueva/registra/core/report"
)

const reportsPath = "/api/reportes"

type reportRepository struct {
	client *Client
}

var _ report.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(client *Client) report.Repository {
	return &reportRepository{client: client}
}

func (repo *reportRepository) StudentsPerCycle(ctx context.Context) ([]report.CycleCount, error) {
	var rows []report.CycleCount
	if err := repo.client.do(ctx, http.MethodGet, reportsPath+"/alumnos_ciclo", nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *reportRepository) CourseDemand(ctx context.Context) ([]report.CourseDemand, error) {
	var rows []report.CourseDemand
	if err := repo.client.do(ctx, http.MethodGet, reportsPath+"/cursos_demandados", nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *reportRepository) Performance(ctx context.Context) (report.Performance, error) {
	var perf report.Performance
	err := repo.client.do(ctx, http.MethodGet, reportsPath+"/rendimiento", nil, nil, &perf)
	return perf, err
}

func (repo *reportRepository) LastThreeCycleGrades(ctx context.Context) ([]report.GradeRow, error) {
	var rows []report.GradeRow
	if err := repo.client.do(ctx, http.MethodGet, reportsPath+"/notas_3_ultimos_ciclos", nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *reportRepository) LastCycleGrades(ctx context.Context) (report.LastCycleGrades, error) {
	var grades report.LastCycleGrades
	err := repo.client.do(ctx, http.MethodGet, reportsPath+"/notas_ultimo_ciclo", nil, nil, &grades)
	return grades, err
}

func (repo *reportRepository) GradesByCycle(ctx context.Context) (report.GradesByCycle, error) {
	var grades report.GradesByCycle
	err := repo.client.do(ctx, http.MethodGet, reportsPath+"/notas_por_ciclo", nil, nil, &grades)
	return grades, err
}

func (repo *reportRepository) StudentPerformance(ctx context.Context, studentID int, filter string) (report.StudentPerformance, error) {
	var perf report.StudentPerformance
	query := url.Values{"filtro": []string{filter}}
	path := fmt.Sprintf("%s/rendimiento_alumno/%d", reportsPath, studentID)
	err := repo.client.do(ctx, http.MethodGet, path, query, nil, &perf)
	return perf, err
}
