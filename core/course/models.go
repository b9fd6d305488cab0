package course

import (
	"github.com/pkg/errors"

	"github.com/nvillanueva/registra/core"
)

var errInvalidData = errors.New("datos inválidos")

type Course struct {
	ID      int    `json:"id"`
	Code    string `json:"codigo"`
	Name    string `json:"nombre"`
	Credits int    `json:"creditos"`
	Cycle   int    `json:"ciclo"`
}

// NewCourse contains information needed to register a new Course.
type NewCourse struct {
	Code    string `json:"codigo" validate:"notblank"`
	Name    string `json:"nombre" validate:"notblank"`
	Credits int    `json:"creditos" validate:"credits"`
	Cycle   int    `json:"ciclo" validate:"cycle"`
}

func (nc *NewCourse) Validate() error {
	nc.Code = core.CleanString(nc.Code)
	nc.Name = core.CleanString(nc.Name)

	if err := core.Validate.Struct(nc); err != nil {
		return core.NewValidationError(errInvalidData, core.FieldErrorsFrom(err)...)
	}
	return nil
}

// FilterByCycle keeps the courses belonging to the given cycle; it backs the
// enrollment form's dependent course list.
func FilterByCycle(courses []Course, cycle int) []Course {
	filtered := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.Cycle == cycle {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
