package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	cats := All()

	assert.Len(t, cats, 6)
	for i, cat := range cats {
		assert.Equal(t, i+1, cat.ID)
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.ShortCode)
		assert.NotEmpty(t, cat.Description)
		assert.NotEmpty(t, cat.Examples)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	cats := All()
	cats[0].Name = "Mutated"

	assert.Equal(t, "Client Advisory", All()[0].Name)
}

func TestByID(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		found    bool
		wantName string
	}{
		{name: "first category", id: 1, found: true, wantName: "Client Advisory"},
		{name: "last category", id: 6, found: true, wantName: "Administration"},
		{name: "zero id", id: 0, found: false},
		{name: "out of range", id: 7, found: false},
		{name: "negative id", id: -1, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := ByID(tt.id)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantName, cat.Name)
			}
		})
	}
}

func TestExists(t *testing.T) {
	for _, id := range IDs() {
		assert.True(t, Exists(id))
	}
	assert.False(t, Exists(0))
	assert.False(t, Exists(99))
}

func TestHighValue(t *testing.T) {
	highValue := HighValue()

	assert.Len(t, highValue, 2)
	assert.Equal(t, CategoryClientAdvisory, highValue[0].ID)
	assert.Equal(t, CategoryPilotManagement, highValue[1].ID)
	for _, cat := range highValue {
		assert.True(t, cat.IsHighValue)
	}
}

func TestAutomatable(t *testing.T) {
	automatable := Automatable()

	assert.Len(t, automatable, 2)
	assert.Equal(t, CategoryCommunication, automatable[0].ID)
	assert.Equal(t, CategoryAdministration, automatable[1].ID)
	for _, cat := range automatable {
		assert.True(t, cat.IsAutomatable)
	}
}

func TestTrapBenchmark_SumsTo100(t *testing.T) {
	sum := 0
	for _, id := range IDs() {
		sum += TrapBenchmark(id)
	}
	assert.Equal(t, 100, sum)
}

func TestIdealTarget_SumsTo100(t *testing.T) {
	sum := 0
	for _, id := range IDs() {
		sum += IdealTarget(id)
	}
	assert.Equal(t, 100, sum)
}

func TestBenchmark_UnknownID(t *testing.T) {
	assert.Equal(t, 0, TrapBenchmark(99))
	assert.Equal(t, 0, IdealTarget(99))
}
