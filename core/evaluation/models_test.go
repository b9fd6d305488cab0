package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvillanueva/registra/core"
)

func TestPassed(t *testing.T) {
	tests := []struct {
		score float64
		want  bool
	}{
		{0, false},
		{10.4, false},
		{10.49, false},
		{10.5, true},
		{10.51, true},
		{20, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Passed(tt.score), "Passed(%v)", tt.score)
	}
}

func TestNewEvaluation_Validate(t *testing.T) {
	tests := []struct {
		name     string
		data     NewEvaluation
		wantErrs []string
	}{
		{name: "ok", data: NewEvaluation{EnrollmentID: 1, Score: 15}},
		{name: "ok zero score", data: NewEvaluation{EnrollmentID: 1, Score: 0}},
		{name: "ok max score", data: NewEvaluation{EnrollmentID: 1, Score: 20}},
		{
			name:     "no enrollment",
			data:     NewEvaluation{Score: 15},
			wantErrs: []string{"Debe seleccionar un alumno pendiente"},
		},
		{
			name:     "score negative",
			data:     NewEvaluation{EnrollmentID: 1, Score: -0.5},
			wantErrs: []string{"La nota debe estar entre 0 y 20."},
		},
		{
			name:     "score over 20",
			data:     NewEvaluation{EnrollmentID: 1, Score: 20.5},
			wantErrs: []string{"La nota debe estar entre 0 y 20."},
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

func TestUpdateEvaluation_Validate(t *testing.T) {
	assert.NoError(t, UpdateEvaluation{Score: 12.25}.Validate())

	err := UpdateEvaluation{Score: 21}.Validate()
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("expected *core.ValidationError, got %T", err)
	}
	assert.Equal(t, []string{"La nota debe estar entre 0 y 20."}, vErr.Messages())
}
