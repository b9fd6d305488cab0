package webui

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core/enrollment"
	"github.com/nvillanueva/registra/core/report"
	"github.com/nvillanueva/registra/core/student"
)

type reportWeb struct {
	svc        *report.Service
	studentSvc *student.Service
	flash      *FlashStore
}

func registerReportWeb(e *echo.Echo, svc *report.Service, studentSvc *student.Service, flash *FlashStore) {
	web := reportWeb{svc: svc, studentSvc: studentSvc, flash: flash}

	g := e.Group("/reportes")
	g.GET("", web.tabs)
	g.GET("/fragmento/:tab", web.fragment)
	g.GET("/alumno", web.studentPerformance)
	g.GET("/:name/export", web.export)
}

type reportTab struct {
	Num   int
	Title string
}

var reportTabs = []reportTab{
	{1, "Alumnos por Ciclo"},
	{2, "Cursos más Demandados"},
	{3, "Rendimiento Académico"},
	{4, "Notas 3 Últimos Ciclos"},
	{5, "Notas Último Ciclo"},
	{6, "Notas por Ciclo"},
}

// reportSection is one rendered block of a tab: a heading (may be empty for
// single-table tabs) and its table.
type reportSection struct {
	Heading  string
	Subtitle string
	Table    Table
}

type reportView struct {
	Tabs     []reportTab
	Active   int
	Sections []reportSection
	Students []student.Student
	// ExportName is the active tab's XLSX export route name.
	ExportName string
}

// Table builders, shared between the HTML tabs and the XLSX export.

func studentsPerCycleTable(rows []report.CycleCount) Table {
	t := Table{
		Columns: []Column{{Title: "Ciclo"}, {Title: "Total Alumnos"}, {Title: "Total Matrículas"}},
		Empty:   "Sin datos",
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []Cell{
			TextCell(strconv.Itoa(r.Cycle)),
			TextCell(strconv.Itoa(r.Students)),
			TextCell(strconv.Itoa(r.Enrollments)),
		})
	}
	return t
}

func courseDemandTable(rows []report.CourseDemand) Table {
	t := Table{
		Columns: []Column{
			{Title: "Código"}, {Title: "Curso"}, {Title: "Ciclo"}, {Title: "Créditos"},
			{Title: "Matrículas"}, {Title: "Alumnos Únicos"},
		},
		Empty: "Sin datos",
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []Cell{
			TextCell(r.Code),
			TextCell(r.Course),
			TextCell(strconv.Itoa(r.Cycle)),
			TextCell(strconv.Itoa(r.Credits)),
			TextCell(strconv.Itoa(r.Enrollments)),
			TextCell(strconv.Itoa(r.UniqueStudents)),
		})
	}
	return t
}

func performanceSections(perf report.Performance) []reportSection {
	stats := Table{
		Columns: []Column{
			{Title: "Evaluaciones"}, {Title: "Promedio General"}, {Title: "Nota Máxima"},
			{Title: "Nota Mínima"}, {Title: "Aprobados"}, {Title: "Desaprobados"},
			{Title: "% Aprobación"},
		},
		Empty: "Sin datos",
	}
	if perf.Stats.Evaluations > 0 {
		stats.Rows = append(stats.Rows, []Cell{
			TextCell(strconv.Itoa(perf.Stats.Evaluations)),
			TextCell(report.FormatAverage(perf.Stats.Average)),
			TextCell(report.FormatAverage(perf.Stats.MaxScore)),
			TextCell(report.FormatAverage(perf.Stats.MinScore)),
			TextCell(strconv.Itoa(perf.Stats.Passed)),
			TextCell(strconv.Itoa(perf.Stats.Failed)),
			TextCell(report.FormatPercent(perf.Stats.PassRate)),
		})
	}

	byCourse := Table{
		Columns: []Column{
			{Title: "Código"}, {Title: "Curso"}, {Title: "Evaluaciones"}, {Title: "Promedio"},
			{Title: "Aprobados"}, {Title: "Desaprobados"}, {Title: "% Aprobación"},
		},
		Empty: "Sin datos",
	}
	for _, r := range perf.ByCourse {
		byCourse.Rows = append(byCourse.Rows, []Cell{
			TextCell(r.Code),
			TextCell(r.Course),
			TextCell(strconv.Itoa(r.Evaluations)),
			TextCell(report.FormatAverage(r.Average)),
			TextCell(strconv.Itoa(r.Passed)),
			TextCell(strconv.Itoa(r.Failed)),
			TextCell(report.FormatPercent(r.PassRate)),
		})
	}
	return []reportSection{
		{Heading: "Estadísticas Generales", Table: stats},
		{Heading: "Rendimiento por Curso", Table: byCourse},
	}
}

func gradeRowsTable(rows []report.GradeRow, withCycle bool) Table {
	var t Table
	if withCycle {
		t.Columns = append(t.Columns, Column{Title: "Ciclo"})
	}
	t.Columns = append(t.Columns,
		Column{Title: "Alumno"}, Column{Title: "DNI"}, Column{Title: "Código"},
		Column{Title: "Curso"}, Column{Title: "Créditos"}, Column{Title: "Nota"},
		Column{Title: "Resultado"}, Column{Title: "Estado"},
	)
	t.Empty = "Sin datos"
	for _, r := range rows {
		var cells []Cell
		if withCycle {
			cells = append(cells, TextCell(strconv.Itoa(r.Cycle)))
		}
		badge := report.TriStateBadge(r.Approved)
		cells = append(cells,
			TextCell(r.StudentName),
			TextCell(r.DNI),
			TextCell(r.Code),
			TextCell(r.Course),
			TextCell(strconv.Itoa(r.Credits)),
			TextCell(report.FormatScore(r.Score)),
			BadgeCell(badge.Label, badge.Color),
			BadgeCell(r.Status, enrollment.StatusColor(r.Status)),
		)
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func byCycleSections(g report.GradesByCycle) []reportSection {
	sections := make([]reportSection, 0, len(g.Cycles))
	for _, group := range g.Cycles {
		sections = append(sections, reportSection{
			Heading: "Ciclo " + group.Cycle,
			Table:   gradeRowsTable(group.Rows, false),
		})
	}
	if len(sections) == 0 {
		sections = append(sections, reportSection{Table: gradeRowsTable(nil, false)})
	}
	return sections
}

// buildTab fetches exactly the active tab's data: tabs are lazy, so opening
// tab 1 never hits the other report endpoints.
func (web *reportWeb) buildTab(ctx echo.Context, tab int) ([]reportSection, error) {
	reqCtx := ctx.Request().Context()
	switch tab {
	case 1:
		rows, err := web.svc.StudentsPerCycle(reqCtx)
		if err != nil {
			return nil, errors.Wrap(err, "students per cycle report")
		}
		return []reportSection{{Table: studentsPerCycleTable(rows)}}, nil
	case 2:
		rows, err := web.svc.CourseDemand(reqCtx)
		if err != nil {
			return nil, errors.Wrap(err, "course demand report")
		}
		return []reportSection{{Table: courseDemandTable(rows)}}, nil
	case 3:
		perf, err := web.svc.Performance(reqCtx)
		if err != nil {
			return nil, errors.Wrap(err, "performance report")
		}
		return performanceSections(perf), nil
	case 4:
		rows, err := web.svc.LastThreeCycleGrades(reqCtx)
		if err != nil {
			return nil, errors.Wrap(err, "last three cycles report")
		}
		return []reportSection{{Table: gradeRowsTable(rows, true)}}, nil
	case 5:
		lc, err := web.svc.LastCycleGrades(reqCtx)
		if err != nil {
			return nil, errors.Wrap(err, "last cycle report")
		}
		return []reportSection{{
			Heading: "Ciclo " + strconv.Itoa(lc.Cycle),
			Table:   gradeRowsTable(lc.Grades, false),
		}}, nil
	case 6:
		g, err := web.svc.GradesByCycle(reqCtx)
		if err != nil {
			return nil, errors.Wrap(err, "grades by cycle report")
		}
		return byCycleSections(g), nil
	}
	return nil, errBadID
}

func (web *reportWeb) tabs(ctx echo.Context) error {
	tab, _ := strconv.Atoi(ctx.QueryParam("tab"))
	if tab < 1 || tab > len(reportTabs) {
		tab = 1
	}

	p := page{Title: "Reportes", Active: "reportes", Flash: web.flash.pop(ctx)}
	view := reportView{Tabs: reportTabs, Active: tab, ExportName: exportName(tab)}

	sections, err := web.buildTab(ctx, tab)
	if err != nil {
		msgs, level := errorMessages(err)
		p.Alert = &Flash{Level: level, Message: "No se pudo cargar el reporte: " + msgs[0]}
	}
	view.Sections = sections

	students, err := web.studentSvc.QueryAll(ctx.Request().Context())
	if err == nil {
		view.Students = students
	}

	p.Data = view
	return ctx.Render(http.StatusOK, "reportes", p)
}

// fragment serves one tab's content alone, without the surrounding page.
func (web *reportWeb) fragment(ctx echo.Context) error {
	tab, err := strconv.Atoi(ctx.Param("tab"))
	if err != nil || tab < 1 || tab > len(reportTabs) {
		return errBadID
	}
	sections, err := web.buildTab(ctx, tab)
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "reporte_fragmento", reportView{Sections: sections})
}

type studentPerformanceView struct {
	Students  []student.Student
	StudentID int
	Filter    string
	Name      string
	Sections  []reportSection
}

func (web *reportWeb) studentPerformance(ctx echo.Context) error {
	studentID, _ := strconv.Atoi(ctx.QueryParam("alumno"))
	filter := ctx.QueryParam("filtro")
	if !report.ValidFilter(filter) {
		filter = report.FilterAllCycles
	}

	p := page{Title: "Rendimiento por Alumno", Active: "reportes", Flash: web.flash.pop(ctx)}
	view := studentPerformanceView{StudentID: studentID, Filter: filter}

	students, err := web.studentSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		msgs, level := errorMessages(err)
		p.Alert = &Flash{Level: level, Message: "No se pudieron cargar los alumnos: " + msgs[0]}
	}
	view.Students = students

	if studentID > 0 {
		perf, err := web.svc.StudentPerformance(ctx.Request().Context(), studentID, filter)
		if err != nil {
			msgs, level := errorMessages(err)
			p.Alert = &Flash{Level: level, Message: "No se pudo cargar el rendimiento: " + msgs[0]}
		} else {
			view.Name = perf.StudentName
			// most recent cycle first
			for _, group := range perf.SortedCycles() {
				view.Sections = append(view.Sections, reportSection{
					Heading: "Ciclo " + group.Cycle,
					Table:   gradeRowsTable(group.Rows, false),
				})
			}
		}
	}

	p.Data = view
	return ctx.Render(http.StatusOK, "reporte_alumno", p)
}
