package enrollment

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core"
)

var errInvalidData = errors.New("datos inválidos")

// Enrollment statuses, owned by the backend. registra only renders them.
const (
	StatusEnrolled  = "MATRICULADO"
	StatusPassed    = "APROBADO"
	StatusFailed    = "DESAPROBADO"
	StatusWithdrawn = "RETIRADO"
)

var statusColors = map[string]string{
	StatusEnrolled:  "primary",
	StatusPassed:    "success",
	StatusFailed:    "danger",
	StatusWithdrawn: "warning",
}

// StatusColor maps an enrollment status to its badge color; unknown statuses
// fall back to "secondary".
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return "secondary"
}

// Enrollment mirrors the backend's `matriculas` list rows, which come joined
// with the student's full name and the course name/code.
type Enrollment struct {
	ID          int    `json:"id"`
	StudentID   int    `json:"id_alumno"`
	CourseID    int    `json:"id_curso"`
	Cycle       int    `json:"ciclo"`
	Status      string `json:"estado"`
	EnrolledAt  string `json:"fecha_matricula"`
	StudentName string `json:"alumno"`
	CourseName  string `json:"curso"`
	CourseCode  string `json:"codigo_curso"`
}

// NewEnrollment binds one student to one course within one cycle. Enrolling
// in several courses at once submits one of these per course.
type NewEnrollment struct {
	StudentID int `json:"id_alumno" validate:"required"`
	CourseID  int `json:"id_curso" validate:"required"`
	Cycle     int `json:"ciclo" validate:"cycle"`
}

func (ne NewEnrollment) Validate() error {
	var flds []core.FieldError
	if ne.StudentID == 0 {
		flds = append(flds, core.FieldError{Field: "id_alumno", Error: "Debe seleccionar un alumno"})
	}
	if ne.Cycle < 1 || ne.Cycle > 10 {
		flds = append(flds, core.FieldError{Field: "ciclo", Error: "El ciclo debe estar entre 1 y 10"})
	}
	if len(flds) > 0 {
		return core.NewValidationError(errInvalidData, flds...)
	}
	return nil
}

// BatchResult tallies a best-effort multi-course enrollment: one independent
// create per course, successes kept even when siblings fail.
type BatchResult struct {
	Succeeded int
	Failed    int
	Messages  []string
}

// Summary folds the tally into the single message shown to the user.
func (r BatchResult) Summary() string {
	switch {
	case r.Succeeded > 0 && r.Failed == 0:
		return fmt.Sprintf("%d matrícula(s) creada(s) exitosamente", r.Succeeded)
	case r.Succeeded > 0 && r.Failed > 0:
		return fmt.Sprintf("%d exitosa(s), %d con error(es): %s", r.Succeeded, r.Failed, r.Messages[0])
	default:
		return "Error: " + strings.Join(r.Messages, ", ")
	}
}

func (r BatchResult) Level() string {
	switch {
	case r.Succeeded > 0 && r.Failed == 0:
		return "success"
	case r.Succeeded > 0:
		return "warning"
	default:
		return "danger"
	}
}
