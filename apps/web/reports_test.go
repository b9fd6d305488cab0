package webui

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/nvillanueva/registra/core/report"
)

// normalizeHTML collapses all whitespace runs so rendered fragments compare
// independently of template indentation.
func normalizeHTML(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func assertRendered(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("rendered output mismatch:\n%s", diff)
}

func sampleGradeRows() (graded, pending report.GradeRow) {
	score := 15.5
	approved := 1
	graded = report.GradeRow{
		StudentName: "Ana Quispe",
		DNI:         "12345678",
		Code:        "MAT101",
		Course:      "Matemática Básica",
		Credits:     4,
		Score:       &score,
		Approved:    &approved,
		Status:      "APROBADO",
	}
	pending = report.GradeRow{
		StudentName: "Luis Rojas",
		DNI:         "87654321",
		Code:        "COM102",
		Course:      "Comunicación",
		Credits:     3,
		Status:      "MATRICULADO",
	}
	return graded, pending
}

func TestReportFragment_studentsPerCycle(t *testing.T) {
	srv, db := setup(t)
	db.Reports.StudentsPerCycle = []report.CycleCount{
		{Cycle: 1, Students: 5, Enrollments: 12},
		{Cycle: 2, Students: 3, Enrollments: 7},
	}

	rec := doReq(srv, http.MethodGet, "/reportes/fragmento/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	g := goldie.New(t)
	g.Assert(t, "report_tab1", []byte(normalizeHTML(rec.Body.String())))
}

func TestReportFragment_gradesByCycle_keepsPayloadOrder(t *testing.T) {
	srv, db := setup(t)
	graded, pending := sampleGradeRows()
	// cycle 2 deliberately before cycle 1: sections follow payload order
	db.Reports.ByCycle = report.GradesByCycle{
		TotalCycles:  2,
		TotalRecords: 2,
		Cycles: []report.CycleGroup{
			{Cycle: "2", Rows: []report.GradeRow{graded}},
			{Cycle: "1", Rows: []report.GradeRow{pending}},
		},
	}

	rec := doReq(srv, http.MethodGet, "/reportes/fragmento/6", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	g := goldie.New(t)
	g.Assert(t, "report_tab6", []byte(normalizeHTML(rec.Body.String())))
}

func TestReportFragment_emptyTabRendersPlaceholderRow(t *testing.T) {
	srv, _ := setup(t)

	rec := doReq(srv, http.MethodGet, "/reportes/fragmento/2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	want := `<section class="mb-4"> ` +
		`<table class="table table-striped table-hover"> <thead> ` +
		`<tr><th scope="col">Código</th><th scope="col">Curso</th><th scope="col">Ciclo</th><th scope="col">Créditos</th><th scope="col">Matrículas</th><th scope="col">Alumnos Únicos</th></tr> ` +
		`</thead> <tbody> ` +
		`<tr><td colspan="6" class="text-center text-muted">Sin datos</td></tr> ` +
		`</tbody> </table> </section>`
	assertRendered(t, want, normalizeHTML(rec.Body.String()))
}

func TestReportFragment_unknownTab(t *testing.T) {
	srv, _ := setup(t)

	rec := doReq(srv, http.MethodGet, "/reportes/fragmento/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportTabs_lazyLoading(t *testing.T) {
	srv, db := setup(t)
	db.Reports.StudentsPerCycle = []report.CycleCount{{Cycle: 1, Students: 5, Enrollments: 12}}
	// tab 2 data would blow up if fetched; tab 1 must not touch it
	db.FailWith("CourseDemand", assert.AnError)

	rec := doReq(srv, http.MethodGet, "/reportes?tab=1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Alumnos por Ciclo")
	assert.NotContains(t, body, "No se pudo cargar el reporte")
}

func TestReportStudentPerformance_sortsCyclesDescending(t *testing.T) {
	srv, db := setup(t)
	graded, pending := sampleGradeRows()
	db.Reports.StudentPerformance = report.StudentPerformance{
		StudentID:   1,
		StudentName: "Ana Quispe",
		Filter:      report.FilterAllCycles,
		ByCycle: map[string][]report.GradeRow{
			"2":  {graded},
			"10": {graded},
			"1":  {pending},
		},
	}

	rec := doReq(srv, http.MethodGet, "/reportes/alumno?alumno=1&filtro=todos", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	i10 := strings.Index(body, "<h4>Ciclo 10</h4>")
	i2 := strings.Index(body, "<h4>Ciclo 2</h4>")
	i1 := strings.Index(body, "<h4>Ciclo 1</h4>")
	assert.True(t, i10 >= 0 && i2 >= 0 && i1 >= 0, "all cycle sections must render")
	assert.Less(t, i10, i2, "cycle 10 must render before cycle 2")
	assert.Less(t, i2, i1, "cycle 2 must render before cycle 1")
}

func TestReportExport_xlsx(t *testing.T) {
	srv, db := setup(t)
	db.Reports.StudentsPerCycle = []report.CycleCount{
		{Cycle: 1, Students: 5, Enrollments: 12},
		{Cycle: 2, Students: 3, Enrollments: 7},
	}

	rec := doReq(srv, http.MethodGet, "/reportes/alumnos_ciclo/export", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `alumnos_ciclo.xlsx`)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("opening exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("alumnos_ciclo")
	assert.NoError(t, err)
	if assert.Len(t, rows, 3) {
		assert.Equal(t, []string{"Ciclo", "Total Alumnos", "Total Matrículas"}, rows[0])
		assert.Equal(t, []string{"1", "5", "12"}, rows[1])
		assert.Equal(t, []string{"2", "3", "7"}, rows[2])
	}
}

func TestReportExport_unknownName(t *testing.T) {
	srv, _ := setup(t)

	rec := doReq(srv, http.MethodGet, "/reportes/desconocido/export", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
