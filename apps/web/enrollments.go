package webui

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core/course"
	"github.com/nvillanueva/registra/core/enrollment"
	"github.com/nvillanueva/registra/core/student"
)

type enrollmentWeb struct {
	svc        *enrollment.Service
	studentSvc *student.Service
	courseSvc  *course.Service
	flash      *FlashStore
}

func registerEnrollmentWeb(
	e *echo.Echo,
	svc *enrollment.Service,
	studentSvc *student.Service,
	courseSvc *course.Service,
	flash *FlashStore,
) {
	web := enrollmentWeb{svc: svc, studentSvc: studentSvc, courseSvc: courseSvc, flash: flash}

	g := e.Group("/matriculas")
	g.GET("", web.list)
	g.GET("/nuevo", web.createForm)
	g.POST("/nuevo", web.create)
	g.POST("/:id/eliminar", web.destroy)
}

// enrollmentForm drives the batch enrollment form: one student, one cycle,
// any number of that cycle's courses. The course checkboxes follow the cycle
// select, which resubmits the form as a GET.
type enrollmentForm struct {
	Errors        []string
	Students      []student.Student
	Courses       []course.Course
	Cycle         int
	StudentID     int
	CheckedCourse map[int]bool
}

func enrollmentTable(enrollments []enrollment.Enrollment) Table {
	t := Table{
		Columns: []Column{
			{Title: "ID"}, {Title: "Alumno"}, {Title: "Curso"}, {Title: "Ciclo"},
			{Title: "Estado"}, {Title: "Fecha"}, {Title: "Acciones"},
		},
		Empty: "No hay matrículas registradas",
	}
	for _, e := range enrollments {
		t.Rows = append(t.Rows, []Cell{
			TextCell(strconv.Itoa(e.ID)),
			TextCell(e.StudentName),
			TextCell(e.CourseCode + " - " + e.CourseName),
			TextCell(strconv.Itoa(e.Cycle)),
			BadgeCell(e.Status, enrollment.StatusColor(e.Status)),
			TextCell(e.EnrolledAt),
			ActionCell("", "/matriculas/"+strconv.Itoa(e.ID)+"/eliminar"),
		})
	}
	return t
}

func (web *enrollmentWeb) list(ctx echo.Context) error {
	p := page{Title: "Matrículas", Active: "matriculas", Flash: web.flash.pop(ctx)}

	enrollments, err := web.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		msgs, level := errorMessages(err)
		p.Alert = &Flash{Level: level, Message: "No se pudieron cargar las matrículas: " + msgs[0]}
	}
	p.Data = enrollmentTable(enrollments)
	return ctx.Render(http.StatusOK, "matriculas", p)
}

// buildForm loads the dropdown data fresh on every form open, filtering the
// course list down to the selected cycle.
func (web *enrollmentWeb) buildForm(ctx echo.Context, values url.Values) (enrollmentForm, error) {
	form := enrollmentForm{
		Cycle:         formInt(values, "ciclo"),
		StudentID:     formInt(values, "id_alumno"),
		CheckedCourse: make(map[int]bool),
	}
	if form.Cycle == 0 {
		form.Cycle = 1
	}
	for _, id := range formInts(values, "cursos") {
		form.CheckedCourse[id] = true
	}

	students, err := web.studentSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return form, errors.Wrap(err, "loading students for enrollment form")
	}
	courses, err := web.courseSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return form, errors.Wrap(err, "loading courses for enrollment form")
	}
	form.Students = students
	form.Courses = course.FilterByCycle(courses, form.Cycle)
	return form, nil
}

func (web *enrollmentWeb) createForm(ctx echo.Context) error {
	form, err := web.buildForm(ctx, ctx.QueryParams())
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "matricula_form", page{
		Title:  "Nueva Matrícula",
		Active: "matriculas",
		Data:   form,
	})
}

func (web *enrollmentWeb) create(ctx echo.Context) error {
	values, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing enrollment form")
	}
	studentID := formInt(values, "id_alumno")
	cycle := formInt(values, "ciclo")
	courseIDs := formInts(values, "cursos")

	render := func(code int, msgs []string) error {
		form, err := web.buildForm(ctx, values)
		if err != nil {
			return err
		}
		form.Errors = msgs
		return ctx.Render(code, "matricula_form", page{
			Title:  "Nueva Matrícula",
			Active: "matriculas",
			Data:   form,
		})
	}

	probe := enrollment.NewEnrollment{StudentID: studentID, Cycle: cycle}
	if err := probe.Validate(); err != nil {
		msgs, _ := errorMessages(err)
		return render(http.StatusBadRequest, msgs)
	}
	if len(courseIDs) == 0 {
		return render(http.StatusBadRequest, []string{"Debe seleccionar al menos un curso"})
	}

	res := web.svc.EnrollBatch(ctx.Request().Context(), studentID, cycle, courseIDs)
	if res.Succeeded == 0 {
		return render(http.StatusOK, []string{res.Summary()})
	}

	// at least one create went through: back to the list, partial errors in
	// the flash, successes kept
	web.flash.put(ctx, Flash{Level: res.Level(), Message: res.Summary()})
	return ctx.Redirect(http.StatusSeeOther, "/matriculas")
}

func (web *enrollmentWeb) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if !confirmed(ctx) {
		web.flash.put(ctx, Flash{Level: "warning", Message: "Eliminación no confirmada"})
		return ctx.Redirect(http.StatusSeeOther, "/matriculas")
	}
	if err := web.svc.Delete(ctx.Request().Context(), id); err != nil {
		msgs, level := errorMessages(err)
		web.flash.put(ctx, Flash{Level: level, Message: "No se pudo eliminar la matrícula: " + msgs[0]})
		return ctx.Redirect(http.StatusSeeOther, "/matriculas")
	}
	web.flash.put(ctx, Flash{Level: "success", Message: "Matrícula eliminada exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/matriculas")
}
