package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Cycle-window filters for the per-student performance report.
const (
	FilterLastCycle   = "ultimo"
	FilterLast3Cycles = "3ciclos"
	FilterAllCycles   = "todos"
)

// ValidFilter reports whether f is a known cycle-window filter.
func ValidFilter(f string) bool {
	switch f {
	case FilterLastCycle, FilterLast3Cycles, FilterAllCycles:
		return true
	}
	return false
}

// All report rows are read-only, server-computed aggregates; registra only
// renders them.

// CycleCount is one row of the students-per-cycle report.
type CycleCount struct {
	Cycle       int `json:"ciclo"`
	Students    int `json:"total_alumnos"`
	Enrollments int `json:"total_matriculas"`
}

// CourseDemand is one row of the most-demanded-courses report.
type CourseDemand struct {
	Code           string `json:"codigo"`
	Course         string `json:"curso"`
	Cycle          int    `json:"ciclo"`
	Credits        int    `json:"creditos"`
	Enrollments    int    `json:"total_matriculas"`
	UniqueStudents int    `json:"alumnos_unicos"`
}

// Performance is the academic performance report: overall stats plus a
// per-course breakdown.
type Performance struct {
	Stats    PerformanceStats    `json:"estadisticas_generales"`
	ByCourse []CoursePerformance `json:"rendimiento_por_curso"`
}

type PerformanceStats struct {
	Evaluations int     `json:"total_evaluaciones"`
	Average     float64 `json:"promedio_general"`
	MaxScore    float64 `json:"nota_maxima"`
	MinScore    float64 `json:"nota_minima"`
	Passed      int     `json:"total_aprobados"`
	Failed      int     `json:"total_desaprobados"`
	PassRate    float64 `json:"porcentaje_aprobacion"`
}

type CoursePerformance struct {
	Code        string  `json:"codigo"`
	Course      string  `json:"curso"`
	Evaluations int     `json:"evaluaciones"`
	Average     float64 `json:"promedio_nota"`
	Passed      int     `json:"aprobados"`
	Failed      int     `json:"desaprobados"`
	PassRate    float64 `json:"porcentaje_aprobacion"`
}

// GradeRow is one graded (or still ungraded) enrollment as the grade reports
// return it. Score and Approved are null until the enrollment is evaluated;
// not every report fills every field.
type GradeRow struct {
	Cycle       int      `json:"ciclo"`
	StudentName string   `json:"alumno"`
	DNI         string   `json:"dni"`
	Code        string   `json:"codigo"`
	Course      string   `json:"curso"`
	Credits     int      `json:"creditos"`
	Score       *float64 `json:"nota"`
	Approved    *int     `json:"aprobado"`
	Status      string   `json:"estado"`
}

// LastCycleGrades is the grades-of-the-last-cycle report.
type LastCycleGrades struct {
	Cycle  int        `json:"ciclo"`
	Grades []GradeRow `json:"notas"`
}

// CycleGroup is one rendered section of a cycle-grouped report.
type CycleGroup struct {
	Cycle string
	Rows  []GradeRow
}

// GradesByCycle is the all-cycles grade report: a mapping from cycle key to
// its rows. The backend serializes the mapping in a meaningful order, so
// Cycles preserves document order instead of decoding into a Go map.
type GradesByCycle struct {
	TotalCycles  int `json:"total_ciclos"`
	TotalRecords int `json:"total_registros"`
	Cycles       []CycleGroup
}

func (g *GradesByCycle) UnmarshalJSON(data []byte) error {
	var raw struct {
		TotalCycles  int             `json:"total_ciclos"`
		TotalRecords int             `json:"total_registros"`
		ByCycle      json.RawMessage `json:"por_ciclo"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.TotalCycles = raw.TotalCycles
	g.TotalRecords = raw.TotalRecords
	g.Cycles = nil
	if len(raw.ByCycle) == 0 || bytes.Equal(raw.ByCycle, []byte("null")) {
		return nil
	}

	// token-walk por_ciclo so cycle sections keep payload order
	dec := json.NewDecoder(bytes.NewReader(raw.ByCycle))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("report: por_ciclo is not an object: %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.Errorf("report: unexpected por_ciclo key: %v", keyTok)
		}
		var rows []GradeRow
		if err := dec.Decode(&rows); err != nil {
			return errors.Wrapf(err, "report: decoding cycle %q", key)
		}
		g.Cycles = append(g.Cycles, CycleGroup{Cycle: key, Rows: rows})
	}
	return nil
}

// StudentPerformance is the per-student performance report, grouped by cycle
// and scoped by a cycle-window filter.
type StudentPerformance struct {
	StudentID   int                   `json:"id_alumno"`
	StudentName string                `json:"alumno"`
	Filter      string                `json:"filtro"`
	ByCycle     map[string][]GradeRow `json:"por_ciclo"`
}

// SortedCycles returns the report's sections sorted by descending cycle
// number, most recent first. Non-numeric keys sink to the end.
func (sp StudentPerformance) SortedCycles() []CycleGroup {
	groups := make([]CycleGroup, 0, len(sp.ByCycle))
	for cycle, rows := range sp.ByCycle {
		groups = append(groups, CycleGroup{Cycle: cycle, Rows: rows})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		ci, erri := strconv.Atoi(groups[i].Cycle)
		cj, errj := strconv.Atoi(groups[j].Cycle)
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return ci > cj
	})
	return groups
}

// Badge is a rendered pass/fail label with its color.
type Badge struct {
	Label string
	Color string
}

// TriStateBadge maps the backend's nullable 0/1 aprobado flag to its badge:
// 1 approved, 0 failed, null not yet evaluated.
func TriStateBadge(approved *int) Badge {
	switch {
	case approved == nil:
		return Badge{Label: "SIN EVALUAR", Color: "secondary"}
	case *approved == 1:
		return Badge{Label: "APROBADO", Color: "success"}
	default:
		return Badge{Label: "DESAPROBADO", Color: "danger"}
	}
}

// Fixed display precision: 2 decimals for averages and scores, 1 for
// percentages.

func FormatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatScore renders a nullable score, "-" when not yet evaluated.
func FormatScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
