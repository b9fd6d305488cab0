package webui

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core/student"
)

type studentWeb struct {
	svc   *student.Service
	flash *FlashStore
}

func registerStudentWeb(e *echo.Echo, svc *student.Service, flash *FlashStore) {
	web := studentWeb{svc: svc, flash: flash}

	g := e.Group("/alumnos")
	g.GET("", web.list)
	g.GET("/nuevo", web.createForm)
	g.POST("/nuevo", web.create)
	g.GET("/:id/editar", web.updateForm)
	g.POST("/:id/editar", web.update)
	g.POST("/:id/eliminar", web.destroy)
}

// studentForm is the create/edit form view. Values keeps whatever the user
// typed so a failed submit re-renders the form as entered.
type studentForm struct {
	Action        string
	Edit          bool
	Errors        []string
	Values        url.Values
	OriginalCycle int
}

func studentTable(students []student.Student) Table {
	t := Table{
		Columns: []Column{
			{Title: "ID"}, {Title: "Nombre completo"}, {Title: "Edad"}, {Title: "DNI"},
			{Title: "Correo"}, {Title: "Teléfono"}, {Title: "Ciclo"}, {Title: "Acciones"},
		},
		Empty: "No hay alumnos registrados",
	}
	for _, s := range students {
		t.Rows = append(t.Rows, []Cell{
			TextCell(strconv.Itoa(s.ID)),
			TextCell(s.FullName()),
			TextCell(strconv.Itoa(s.Age)),
			TextCell(s.DNI),
			TextCell(s.Email),
			TextCell(s.Phone),
			TextCell(strconv.Itoa(s.Cycle)),
			ActionCell("/alumnos/"+strconv.Itoa(s.ID)+"/editar", "/alumnos/"+strconv.Itoa(s.ID)+"/eliminar"),
		})
	}
	return t
}

func (web *studentWeb) list(ctx echo.Context) error {
	p := page{Title: "Alumnos", Active: "alumnos", Flash: web.flash.pop(ctx)}

	students, err := web.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		msgs, level := errorMessages(err)
		p.Alert = &Flash{Level: level, Message: "No se pudieron cargar los alumnos: " + msgs[0]}
	}
	p.Data = studentTable(students)
	return ctx.Render(http.StatusOK, "alumnos", p)
}

func (web *studentWeb) createForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "alumno_form", page{
		Title:  "Nuevo Alumno",
		Active: "alumnos",
		Data:   studentForm{Action: "/alumnos/nuevo", Values: url.Values{}},
	})
}

func (web *studentWeb) create(ctx echo.Context) error {
	values, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing student form")
	}
	data := student.NewStudent{
		FirstName: values.Get("nombre"),
		LastName:  values.Get("apellido"),
		Age:       formInt(values, "edad"),
		DNI:       values.Get("dni"),
		Email:     values.Get("correo"),
		Phone:     values.Get("telefono"),
		Cycle:     formInt(values, "ciclo_actual"),
	}

	render := func(code int, msgs []string) error {
		return ctx.Render(code, "alumno_form", page{
			Title:  "Nuevo Alumno",
			Active: "alumnos",
			Data:   studentForm{Action: "/alumnos/nuevo", Errors: msgs, Values: values},
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

	web.flash.put(ctx, Flash{Level: "success", Message: "Alumno registrado exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/alumnos")
}

func (web *studentWeb) updateForm(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	s, err := web.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrapf(err, "getting student %d", id)
	}

	values := url.Values{}
	values.Set("nombre", s.FirstName)
	values.Set("apellido", s.LastName)
	values.Set("edad", strconv.Itoa(s.Age))
	values.Set("dni", s.DNI)
	values.Set("correo", s.Email)
	values.Set("telefono", s.Phone)
	values.Set("ciclo_actual", strconv.Itoa(s.Cycle))

	return ctx.Render(http.StatusOK, "alumno_form", page{
		Title:  "Editar Alumno",
		Active: "alumnos",
		Data: studentForm{
			Action:        "/alumnos/" + strconv.Itoa(id) + "/editar",
			Edit:          true,
			Values:        values,
			OriginalCycle: s.Cycle,
		},
	})
}

func (web *studentWeb) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	values, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing student form")
	}
	data := student.UpdateStudent{
		FirstName:     values.Get("nombre"),
		LastName:      values.Get("apellido"),
		Age:           formInt(values, "edad"),
		DNI:           values.Get("dni"),
		Email:         values.Get("correo"),
		Phone:         values.Get("telefono"),
		Cycle:         formInt(values, "ciclo_actual"),
		OriginalCycle: formInt(values, "ciclo_original"),
	}

	render := func(code int, msgs []string) error {
		return ctx.Render(code, "alumno_form", page{
			Title:  "Editar Alumno",
			Active: "alumnos",
			Data: studentForm{
				Action:        "/alumnos/" + strconv.Itoa(id) + "/editar",
				Edit:          true,
				Errors:        msgs,
				Values:        values,
				OriginalCycle: data.OriginalCycle,
			},
		})
	}
	if err := data.Validate(); err != nil {
		msgs, _ := errorMessages(err)
		return render(http.StatusBadRequest, msgs)
	}
	if err := web.svc.Update(ctx.Request().Context(), id, data); err != nil {
		msgs, _ := errorMessages(err)
		return render(http.StatusOK, msgs)
	}

	web.flash.put(ctx, Flash{Level: "success", Message: "Alumno actualizado exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/alumnos")
}

func (web *studentWeb) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if !confirmed(ctx) {
		web.flash.put(ctx, Flash{Level: "warning", Message: "Eliminación no confirmada"})
		return ctx.Redirect(http.StatusSeeOther, "/alumnos")
	}
	if err := web.svc.Delete(ctx.Request().Context(), id); err != nil {
		msgs, level := errorMessages(err)
		web.flash.put(ctx, Flash{Level: level, Message: "No se pudo eliminar el alumno: " + msgs[0]})
		return ctx.Redirect(http.StatusSeeOther, "/alumnos")
	}
	web.flash.put(ctx, Flash{Level: "success", Message: "Alumno eliminado exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/alumnos")
}
