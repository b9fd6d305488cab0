package webui

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core/course"
)

type courseWeb struct {
	svc   *course.Service
	flash *FlashStore
}

func registerCourseWeb(e *echo.Echo, svc *course.Service, flash *FlashStore) {
	web := courseWeb{svc: svc, flash: flash}

	g := e.Group("/cursos")
	g.GET("", web.list)
	g.GET("/nuevo", web.createForm)
	g.POST("/nuevo", web.create)
	g.POST("/:id/eliminar", web.destroy)
}

type courseForm struct {
	Action string
	Errors []string
	Values url.Values
}

func courseTable(courses []course.Course) Table {
	t := Table{
		Columns: []Column{
			{Title: "ID"}, {Title: "Código"}, {Title: "Nombre"},
			{Title: "Créditos"}, {Title: "Ciclo"}, {Title: "Acciones"},
		},
		Empty: "No hay cursos registrados",
	}
	for _, c := range courses {
		t.Rows = append(t.Rows, []Cell{
			TextCell(strconv.Itoa(c.ID)),
			TextCell(c.Code),
			TextCell(c.Name),
			TextCell(strconv.Itoa(c.Credits)),
			TextCell(strconv.Itoa(c.Cycle)),
			ActionCell("", "/cursos/"+strconv.Itoa(c.ID)+"/eliminar"),
		})
	}
	return t
}

func (web *courseWeb) list(ctx echo.Context) error {
	p := page{Title: "Cursos", Active: "cursos", Flash: web.flash.pop(ctx)}

	courses, err := web.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		msgs, level := errorMessages(err)
		p.Alert = &Flash{Level: level, Message: "No se pudieron cargar los cursos: " + msgs[0]}
	}
	p.Data = courseTable(courses)
	return ctx.Render(http.StatusOK, "cursos", p)
}

func (web *courseWeb) createForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "curso_form", page{
		Title:  "Nuevo Curso",
		Active: "cursos",
		Data:   courseForm{Action: "/cursos/nuevo", Values: url.Values{}},
	})
}

func (web *courseWeb) create(ctx echo.Context) error {
	values, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing course form")
	}
	data := course.NewCourse{
		Code:    values.Get("codigo"),
		Name:    values.Get("nombre"),
		Credits: formInt(values, "creditos"),
		Cycle:   formInt(values, "ciclo"),
	}

	render := func(code int, msgs []string) error {
		return ctx.Render(code, "curso_form", page{
			Title:  "Nuevo Curso",
			Active: "cursos",
			Data:   courseForm{Action: "/cursos/nuevo", Errors: msgs, Values: values},
		})
	}
	if err := data.Validate(); err != nil {
		msgs, _ := errorMessages(err)
		return render(http.StatusBadRequest, msgs)
	}
	if _, err := web.svc.Create(ctx.Request().Context(), data); err != nil {
		msgs, _ := errorMessages(err)
		return render(http.StatusOK, msgs)
	}

	web.flash.put(ctx, Flash{Level: "success", Message: "Curso registrado exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/cursos")
}

func (web *courseWeb) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if !confirmed(ctx) {
		web.flash.put(ctx, Flash{Level: "warning", Message: "Eliminación no confirmada"})
		return ctx.Redirect(http.StatusSeeOther, "/cursos")
	}
	if err := web.svc.Delete(ctx.Request().Context(), id); err != nil {
		msgs, level := errorMessages(err)
		web.flash.put(ctx, Flash{Level: level, Message: "No se pudo eliminar el curso: " + msgs[0]})
		return ctx.Redirect(http.StatusSeeOther, "/cursos")
	}
	web.flash.put(ctx, Flash{Level: "success", Message: "Curso eliminado exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/cursos")
}
