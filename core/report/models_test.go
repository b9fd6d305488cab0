package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFilter(t *testing.T) {
	assert.True(t, ValidFilter(FilterLastCycle))
	assert.True(t, ValidFilter(FilterLast3Cycles))
	assert.True(t, ValidFilter(FilterAllCycles))
	assert.False(t, ValidFilter(""))
	assert.False(t, ValidFilter("5ciclos"))
}

func TestGradesByCycle_UnmarshalJSON_preservesPayloadOrder(t *testing.T) {
	// cycle keys deliberately not in lexical or numeric order
	payload := []byte(`{
		"total_ciclos": 3,
		"total_registros": 4,
		"por_ciclo": {
			"3": [{"alumno": "Ana", "nota": 15.5}],
			"1": [{"alumno": "Luis", "nota": 9.0}, {"alumno": "Ana", "nota": 12.0}],
			"2": [{"alumno": "Luis", "nota": null}]
		}
	}`)

	var g GradesByCycle
	assert.NoError(t, json.Unmarshal(payload, &g))
	assert.Equal(t, 3, g.TotalCycles)
	assert.Equal(t, 4, g.TotalRecords)

	keys := make([]string, 0, len(g.Cycles))
	for _, group := range g.Cycles {
		keys = append(keys, group.Cycle)
	}
	assert.Equal(t, []string{"3", "1", "2"}, keys)

	assert.Len(t, g.Cycles[1].Rows, 2)
	assert.Equal(t, "Luis", g.Cycles[1].Rows[0].StudentName)
	assert.Nil(t, g.Cycles[2].Rows[0].Score)
}

func TestGradesByCycle_UnmarshalJSON_emptyMapping(t *testing.T) {
	var g GradesByCycle
	assert.NoError(t, json.Unmarshal([]byte(`{"total_ciclos": 0, "total_registros": 0, "por_ciclo": {}}`), &g))
	assert.Empty(t, g.Cycles)

	assert.NoError(t, json.Unmarshal([]byte(`{"total_ciclos": 0, "total_registros": 0}`), &g))
	assert.Empty(t, g.Cycles)
}

func TestStudentPerformance_SortedCycles(t *testing.T) {
	sp := StudentPerformance{
		ByCycle: map[string][]GradeRow{
			"2":  {{StudentName: "Ana"}},
			"10": {{StudentName: "Ana"}},
			"1":  {{StudentName: "Ana"}},
		},
	}

	groups := sp.SortedCycles()
	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Cycle)
	}
	// most recent cycle first, numerically (10 > 2, not lexically)
	assert.Equal(t, []string{"10", "2", "1"}, keys)
}

func TestTriStateBadge(t *testing.T) {
	one, zero := 1, 0

	assert.Equal(t, Badge{Label: "SIN EVALUAR", Color: "secondary"}, TriStateBadge(nil))
	assert.Equal(t, Badge{Label: "APROBADO", Color: "success"}, TriStateBadge(&one))
	assert.Equal(t, Badge{Label: "DESAPROBADO", Color: "danger"}, TriStateBadge(&zero))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "12.50", FormatAverage(12.5))
	assert.Equal(t, "85.7%", FormatPercent(85.71))
	assert.Equal(t, "-", FormatScore(nil))

	score := 10.456
	assert.Equal(t, "10.46", FormatScore(&score))
}
