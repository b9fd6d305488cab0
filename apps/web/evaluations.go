package webui

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core/evaluation"
)

type evaluationWeb struct {
	svc   *evaluation.Service
	flash *FlashStore
}

func registerEvaluationWeb(e *echo.Echo, svc *evaluation.Service, flash *FlashStore) {
	web := evaluationWeb{svc: svc, flash: flash}

	g := e.Group("/evaluaciones")
	g.GET("", web.list)
	g.GET("/nuevo", web.createForm)
	g.POST("/nuevo", web.create)
	g.GET("/:id/editar", web.updateForm)
	g.POST("/:id/editar", web.update)
	g.POST("/:id/eliminar", web.destroy)
}

// evaluationForm drives both modes: creating picks from the pending
// enrollments dropdown, editing locks the enrollment to a fixed label.
type evaluationForm struct {
	Action  string
	Edit    bool
	Errors  []string
	Values  url.Values
	Pending []evaluation.PendingEnrollment
	// Locked labels the graded enrollment in edit mode.
	Locked string
	// Preview is the pass/fail badge for the entered score, rendered once
	// the score parses.
	Preview *Cell
}

// scorePreview computes the pass/fail preview for an entered score. The
// authoritative flag still comes from the backend on submit.
func scorePreview(values url.Values) *Cell {
	raw := values.Get("nota")
	if raw == "" {
		return nil
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || score < 0 || score > 20 {
		return nil
	}
	cell := BadgeCell("DESAPROBADO", "danger")
	if evaluation.Passed(score) {
		cell = BadgeCell("APROBADO", "success")
	}
	return &cell
}

func evaluationTable(evaluations []evaluation.Evaluation) Table {
	t := Table{
		Columns: []Column{
			{Title: "ID"}, {Title: "Alumno"}, {Title: "Curso"}, {Title: "Ciclo"},
			{Title: "Nota"}, {Title: "Resultado"}, {Title: "Fecha"}, {Title: "Acciones"},
		},
		Empty: "No hay evaluaciones registradas",
	}
	for _, ev := range evaluations {
		result := BadgeCell("DESAPROBADO", "danger")
		if ev.Approved == 1 {
			result = BadgeCell("APROBADO", "success")
		}
		t.Rows = append(t.Rows, []Cell{
			TextCell(strconv.Itoa(ev.ID)),
			TextCell(ev.StudentName),
			TextCell(ev.CourseName),
			TextCell(strconv.Itoa(ev.Cycle)),
			TextCell(fmt.Sprintf("%.2f", ev.Score)),
			result,
			TextCell(ev.EvaluatedAt),
			ActionCell("/evaluaciones/"+strconv.Itoa(ev.ID)+"/editar", "/evaluaciones/"+strconv.Itoa(ev.ID)+"/eliminar"),
		})
	}
	return t
}

func (web *evaluationWeb) list(ctx echo.Context) error {
	p := page{Title: "Evaluaciones", Active: "evaluaciones", Flash: web.flash.pop(ctx)}

	evaluations, err := web.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		msgs, level := errorMessages(err)
		p.Alert = &Flash{Level: level, Message: "No se pudieron cargar las evaluaciones: " + msgs[0]}
	}
	p.Data = evaluationTable(evaluations)
	return ctx.Render(http.StatusOK, "evaluaciones", p)
}

func (web *evaluationWeb) createForm(ctx echo.Context) error {
	pending, err := web.svc.QueryPending(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "loading pending enrollments")
	}
	return ctx.Render(http.StatusOK, "evaluacion_form", page{
		Title:  "Nueva Evaluación",
		Active: "evaluaciones",
		Data: evaluationForm{
			Action:  "/evaluaciones/nuevo",
			Values:  url.Values{},
			Pending: pending,
		},
	})
}

func (web *evaluationWeb) create(ctx echo.Context) error {
	values, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing evaluation form")
	}
	data := evaluation.NewEvaluation{
		EnrollmentID: formInt(values, "id_matricula"),
		Score:        formFloat(values, "nota"),
	}

	render := func(code int, msgs []string) error {
		pending, err := web.svc.QueryPending(ctx.Request().Context())
		if err != nil {
			return errors.Wrap(err, "loading pending enrollments")
		}
		return ctx.Render(code, "evaluacion_form", page{
			Title:  "Nueva Evaluación",
			Active: "evaluaciones",
			Data: evaluationForm{
				Action:  "/evaluaciones/nuevo",
				Errors:  msgs,
				Values:  values,
				Pending: pending,
				Preview: scorePreview(values),
			},
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

	web.flash.put(ctx, Flash{Level: "success", Message: "Evaluación registrada exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/evaluaciones")
}

// findEvaluation locates one row in the list endpoint; the backend has no
// evaluation detail route.
func (web *evaluationWeb) findEvaluation(ctx echo.Context, id int) (evaluation.Evaluation, error) {
	evaluations, err := web.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return evaluation.Evaluation{}, errors.Wrap(err, "loading evaluations")
	}
	for _, ev := range evaluations {
		if ev.ID == id {
			return ev, nil
		}
	}
	return evaluation.Evaluation{}, errBadID
}

func lockedLabel(ev evaluation.Evaluation) string {
	return fmt.Sprintf("%s - %s (Ciclo %d)", ev.StudentName, ev.CourseName, ev.Cycle)
}

func (web *evaluationWeb) updateForm(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	ev, err := web.findEvaluation(ctx, id)
	if err != nil {
		return err
	}

	values := url.Values{}
	values.Set("nota", fmt.Sprintf("%.2f", ev.Score))

	return ctx.Render(http.StatusOK, "evaluacion_form", page{
		Title:  "Editar Evaluación",
		Active: "evaluaciones",
		Data: evaluationForm{
			Action:  "/evaluaciones/" + strconv.Itoa(id) + "/editar",
			Edit:    true,
			Values:  values,
			Locked:  lockedLabel(ev),
			Preview: scorePreview(values),
		},
	})
}

func (web *evaluationWeb) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	values, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "parsing evaluation form")
	}
	data := evaluation.UpdateEvaluation{Score: formFloat(values, "nota")}

	render := func(code int, msgs []string) error {
		ev, err := web.findEvaluation(ctx, id)
		if err != nil {
			return err
		}
		return ctx.Render(code, "evaluacion_form", page{
			Title:  "Editar Evaluación",
			Active: "evaluaciones",
			Data: evaluationForm{
				Action:  "/evaluaciones/" + strconv.Itoa(id) + "/editar",
				Edit:    true,
				Errors:  msgs,
				Values:  values,
				Locked:  lockedLabel(ev),
				Preview: scorePreview(values),
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

	web.flash.put(ctx, Flash{Level: "success", Message: "Evaluación actualizada exitosamente"})
	return ctx.Redirect(http.StatusSeeOther, "/evaluaciones")
}

func (web *evaluationWeb) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if !confirmed(ctx) {
		web.flash.put(ctx, Flash{Level: "warning", Message: "Eliminación no confirmada"})
		return ctx.Redirect(http.StatusSeeOther, "/evaluaciones")
	}
	if err := web.svc.Delete(ctx.Request().Context(), id); err != nil {
		msgs, level := errorMessages(err)
		web.flash.put(ctx, Flash{Level: level, Message: "No se pudo eliminar la evaluación: " + msgs[0]})
		return ctx.Redirect(http.StatusSeeOther, "/evaluaciones")
	}
	web.flash.put(ctx, Flash{Level: "success", Message: "Evaluación eliminada: la matrícula vuelve a MATRICULADO"})
	return ctx.Redirect(http.StatusSeeOther, "/evaluaciones")
}
