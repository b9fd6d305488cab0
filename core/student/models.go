package student

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core"
)

var errInvalidData = errors.New("datos inválidos")

// Student mirrors the backend's `alumnos` records verbatim; registra never
// owns one, it only displays and round-trips them.
type Student struct {
	ID        int    `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Age       int    `json:"edad"`
	DNI       string `json:"dni"`
	Email     string `json:"correo"`
	Phone     string `json:"telefono"`
	Cycle     int    `json:"ciclo_actual"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	FirstName string `json:"nombre" validate:"esletters"`
	LastName  string `json:"apellido" validate:"esletters"`
	Age       int    `json:"edad"`
	DNI       string `json:"dni" validate:"dni8"`
	Email     string `json:"correo" validate:"omitempty,simplemail"`
	Phone     string `json:"telefono" validate:"phone9"`
	Cycle     int    `json:"ciclo_actual" validate:"cycle"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.DNI = core.CleanString(ns.DNI)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)

	if err := core.Validate.Struct(ns); err != nil {
		return core.NewValidationError(errInvalidData, core.FieldErrorsFrom(err)...)
	}
	return nil
}

// UpdateStudent defines what may be submitted to modify an existing Student.
// OriginalCycle is captured when the edit form is opened; the new cycle may
// only increase or stay equal.
type UpdateStudent struct {
	FirstName string `json:"nombre" validate:"esletters"`
	LastName  string `json:"apellido" validate:"esletters"`
	Age       int    `json:"edad"`
	DNI       string `json:"dni" validate:"dni8"`
	Email     string `json:"correo" validate:"omitempty,simplemail"`
	Phone     string `json:"telefono" validate:"phone9"`
	Cycle     int    `json:"ciclo_actual" validate:"cycle"`

	OriginalCycle int `json:"-"`
}

func (us *UpdateStudent) Validate() error {
	us.FirstName = core.CleanString(us.FirstName)
	us.LastName = core.CleanString(us.LastName)
	us.DNI = core.CleanString(us.DNI)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.Phone = core.CleanString(us.Phone)

	var flds []core.FieldError
	if err := core.Validate.Struct(us); err != nil {
		flds = core.FieldErrorsFrom(err)
	}
	if us.Cycle < us.OriginalCycle {
		flds = append(flds, core.FieldError{
			Field: "ciclo_actual",
			Error: fmt.Sprintf("No puedes reducir el ciclo. Ciclo actual: %d.", us.OriginalCycle),
		})
	}
	if len(flds) > 0 {
		return core.NewValidationError(errInvalidData, flds...)
	}
	return nil
}
