// Package dummy is an in-memory stand-in for the records backend, used by
// tests. Repositories behave like the real API (duplicate checks, status
// side effects) and failures can be injected per operation.
package dummy

import (
	"sync"

	"github.com/nvillanueva/registra/core/course"
	"github.com/nvillanueva/registra/core/enrollment"
	"github.com/nvillanueva/registra/core/evaluation"
	"github.com/nvillanueva/registra/core/report"
	"github.com/nvillanueva/registra/core/student"
)

type (
	DB struct {
		mu sync.RWMutex

		students    map[int]*student.Student
		courses     map[int]*course.Course
		enrollments map[int]*enrollment.Enrollment
		evaluations map[int]*evaluation.Evaluation
		pk          int

		// Reports holds the canned aggregate payloads the report
		// repository serves; tests seed it directly.
		Reports ReportData

		failures       map[string]error
		enrollFailures map[int]error
	}

	ReportData struct {
		StudentsPerCycle   []report.CycleCount
		CourseDemand       []report.CourseDemand
		Performance        report.Performance
		LastThreeCycles    []report.GradeRow
		LastCycle          report.LastCycleGrades
		ByCycle            report.GradesByCycle
		StudentPerformance report.StudentPerformance
	}
)

func Open() (*DB, error) {
	return &DB{
		students:       make(map[int]*student.Student),
		courses:        make(map[int]*course.Course),
		enrollments:    make(map[int]*enrollment.Enrollment),
		evaluations:    make(map[int]*evaluation.Evaluation),
		failures:       make(map[string]error),
		enrollFailures: make(map[int]error),
	}, nil
}

func (db *DB) nextPK() int {
	db.pk++
	return db.pk
}

// FailWith makes every subsequent call of the named operation (e.g.
// "CreateStudent") return err. Pass nil to clear.
func (db *DB) FailWith(op string, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if err == nil {
		delete(db.failures, op)
		return
	}
	db.failures[op] = err
}

// FailEnrollmentForCourse makes CreateEnrollment fail only for the given
// course, so batch partial-success paths can be exercised.
func (db *DB) FailEnrollmentForCourse(courseID int, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if err == nil {
		delete(db.enrollFailures, courseID)
		return
	}
	db.enrollFailures[courseID] = err
}

func (db *DB) failure(op string) error {
	return db.failures[op]
}
