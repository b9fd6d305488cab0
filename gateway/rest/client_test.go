package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nvillanueva/registra/core"
	"github.com/nvillanueva/registra/core/evaluation"
	"github.com/nvillanueva/registra/core/report"
	"github.com/nvillanueva/registra/core/student"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{}
	conf.API.BaseURL = srv.URL
	conf.API.Timeout = 2 * time.Second

	client, err := NewClient(conf)
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return client
}

func TestClient_do_success(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/alumnos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode([]student.Student{
			{ID: 1, FirstName: "Ana", LastName: "Quispe", DNI: "12345678", Cycle: 3},
		})
	}))

	students, err := NewStudentRepository(client).QueryAllStudents(context.Background())
	assert.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "Ana Quispe", students[0].FullName())
}

func TestClient_do_createSynthesizesEntity(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got student.NewStudent
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ana", got.FirstName)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"mensaje": "Alumno registrado exitosamente", "id": 7}`))
	}))

	created, err := NewStudentRepository(client).CreateStudent(context.Background(), student.NewStudent{
		FirstName: "Ana", LastName: "Quispe", DNI: "12345678", Phone: "987654321", Cycle: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "Ana", created.FirstName)
}

func TestClient_do_remoteError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsgs []string
	}{
		{
			name:     "single error field",
			status:   http.StatusConflict,
			body:     `{"error": "El DNI ya está registrado"}`,
			wantMsgs: []string{"El DNI ya está registrado"},
		},
		{
			name:     "errores list keeps order",
			status:   http.StatusBadRequest,
			body:     `{"errores": ["El DNI debe tener exactamente 8 números.", "El teléfono debe tener 9 dígitos y comenzar con 9."]}`,
			wantMsgs: []string{"El DNI debe tener exactamente 8 números.", "El teléfono debe tener 9 dígitos y comenzar con 9."},
		},
		{
			name:     "errores wins over error",
			status:   http.StatusBadRequest,
			body:     `{"error": "ignorado", "errores": ["primero"]}`,
			wantMsgs: []string{"primero"},
		},
		{
			name:     "non-JSON body falls back to status text",
			status:   http.StatusInternalServerError,
			body:     `<html>boom</html>`,
			wantMsgs: []string{"Internal Server Error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := NewStudentRepository(client).QueryAllStudents(context.Background())
			rerr, ok := core.AsRemoteError(err)
			if !ok {
				t.Fatalf("expected *core.RemoteError, got %T: %v", err, err)
			}
			assert.Equal(t, tt.status, rerr.StatusCode)
			assert.Equal(t, tt.wantMsgs, rerr.Messages)
		})
	}
}

func TestClient_do_transportFailureIsNotRemote(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	conf := &core.Config{}
	conf.API.BaseURL = srv.URL
	conf.API.Timeout = time.Second
	client, err := NewClient(conf)
	assert.NoError(t, err)

	_, err = NewStudentRepository(client).QueryAllStudents(context.Background())
	assert.Error(t, err)
	_, ok := core.AsRemoteError(err)
	assert.False(t, ok, "a dead connection must not look like a backend rejection")
}

func TestReportRepository_StudentPerformance_query(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reportes/rendimiento_alumno/3", r.URL.Path)
		assert.Equal(t, "3ciclos", r.URL.Query().Get("filtro"))
		_, _ = w.Write([]byte(`{"id_alumno": 3, "alumno": "Ana Quispe", "filtro": "3ciclos", "por_ciclo": {"2": []}}`))
	}))

	perf, err := NewReportRepository(client).StudentPerformance(context.Background(), 3, report.FilterLast3Cycles)
	assert.NoError(t, err)
	assert.Equal(t, "Ana Quispe", perf.StudentName)
	assert.Contains(t, perf.ByCycle, "2")
}

func TestEvaluationRepository_Create_computesApproved(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/evaluaciones", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"mensaje": "Evaluación registrada exitosamente"}`))
	}))

	repo := NewEvaluationRepository(client)

	ev, err := repo.CreateEvaluation(context.Background(), evaluation.NewEvaluation{EnrollmentID: 1, Score: 10.5})
	assert.NoError(t, err)
	assert.Equal(t, 1, ev.Approved)

	ev, err = repo.CreateEvaluation(context.Background(), evaluation.NewEvaluation{EnrollmentID: 1, Score: 10.4})
	assert.NoError(t, err)
	assert.Equal(t, 0, ev.Approved)
}
