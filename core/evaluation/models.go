package evaluation

import (
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core"
)

var errInvalidData = errors.New("datos inválidos")

// PassThreshold is the score at which a grade counts as approved, inclusive.
// It must match the backend's computation exactly.
const PassThreshold = 10.5

// Passed reports whether a score is an approving grade. Used for the live
// form preview; the authoritative flag still comes back from the backend.
func Passed(score float64) bool {
	return score >= PassThreshold
}

// Evaluation mirrors the backend's `evaluaciones` list rows, joined with the
// student's full name, the course name and the enrollment's cycle.
// Approved is the backend's 0/1 flag.
type Evaluation struct {
	ID           int     `json:"id"`
	EnrollmentID int     `json:"id_matricula"`
	Score        float64 `json:"nota"`
	Approved     int     `json:"aprobado"`
	EvaluatedAt  string  `json:"fecha_evaluacion"`
	StudentName  string  `json:"alumno"`
	CourseName   string  `json:"curso"`
	Cycle        int     `json:"ciclo"`
}

// PendingEnrollment is an enrollment with no evaluation yet, eligible to
// receive a grade.
type PendingEnrollment struct {
	EnrollmentID int    `json:"id_matricula"`
	StudentName  string `json:"alumno"`
	CourseName   string `json:"curso"`
	Cycle        int    `json:"ciclo"`
}

// NewEvaluation grades a pending enrollment. The enrollment reference is
// consumed only at creation; edits carry the score alone.
type NewEvaluation struct {
	EnrollmentID int     `json:"id_matricula" validate:"required"`
	Score        float64 `json:"nota" validate:"score"`
}

func (ne NewEvaluation) Validate() error {
	var flds []core.FieldError
	if ne.EnrollmentID == 0 {
		flds = append(flds, core.FieldError{Field: "id_matricula", Error: "Debe seleccionar un alumno pendiente"})
	}
	if ne.Score < 0 || ne.Score > 20 {
		flds = append(flds, core.FieldError{Field: "nota", Error: "La nota debe estar entre 0 y 20."})
	}
	if len(flds) > 0 {
		return core.NewValidationError(errInvalidData, flds...)
	}
	return nil
}

type UpdateEvaluation struct {
	Score float64 `json:"nota" validate:"score"`
}

func (ue UpdateEvaluation) Validate() error {
	if err := core.Validate.Struct(ue); err != nil {
		return core.NewValidationError(errInvalidData, core.FieldErrorsFrom(err)...)
	}
	return nil
}
