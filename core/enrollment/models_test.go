package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvillanueva/registra/core"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StatusEnrolled, "primary"},
		{StatusPassed, "success"},
		{StatusFailed, "danger"},
		{StatusWithdrawn, "warning"},
		{"CONVALIDADO", "secondary"},
		{"", "secondary"},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusColor(tt.status))
		})
	}
}

func TestNewEnrollment_Validate(t *testing.T) {
	tests := []struct {
		name     string
		data     NewEnrollment
		wantErrs []string
	}{
		{name: "ok", data: NewEnrollment{StudentID: 1, CourseID: 2, Cycle: 3}},
		{
			name:     "no student",
			data:     NewEnrollment{CourseID: 2, Cycle: 3},
			wantErrs: []string{"Debe seleccionar un alumno"},
		},
		{
			name:     "cycle out of range",
			data:     NewEnrollment{StudentID: 1, CourseID: 2, Cycle: 11},
			wantErrs: []string{"El ciclo debe estar entre 1 y 10"},
		},
		{
			name:     "everything wrong",
			data:     NewEnrollment{},
			wantErrs: []string{"Debe seleccionar un alumno", "El ciclo debe estar entre 1 y 10"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("expected *core.ValidationError, got %T", err)
			}
			assert.Equal(t, tt.wantErrs, vErr.Messages())
		})
	}
}

func TestBatchResult(t *testing.T) {
	tests := []struct {
		name        string
		res         BatchResult
		wantSummary string
		wantLevel   string
	}{
		{
			name:        "all succeeded",
			res:         BatchResult{Succeeded: 3},
			wantSummary: "3 matrícula(s) creada(s) exitosamente",
			wantLevel:   "success",
		},
		{
			name:        "partial",
			res:         BatchResult{Succeeded: 2, Failed: 1, Messages: []string{"El alumno ya está matriculado en este curso"}},
			wantSummary: "2 exitosa(s), 1 con error(es): El alumno ya está matriculado en este curso",
			wantLevel:   "warning",
		},
		{
			name:        "all failed",
			res:         BatchResult{Failed: 2, Messages: []string{"uno", "dos"}},
			wantSummary: "Error: uno, dos",
			wantLevel:   "danger",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSummary, tt.res.Summary())
			assert.Equal(t, tt.wantLevel, tt.res.Level())
		})
	}
}
