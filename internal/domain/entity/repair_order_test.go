package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "PENDING", entity.NormalizeStatus("pending"))
	assert.Equal(t, "IN_PROGRESS", entity.NormalizeStatus("  in_progress  "))
	assert.Equal(t, "FINISHED", entity.NormalizeStatus("Finished"))
	assert.Equal(t, "", entity.NormalizeStatus("   "))
}

// Solo PENDING y ASSIGNED son editables por el jefe; la comparación ignora
// mayúsculas y espacios, igual que los guards SQL.
func TestIsRepairEditable(t *testing.T) {
	casos := []struct {
		status   string
		editable bool
	}{
		{entity.RepairStatusPending, true},
		{entity.RepairStatusAssigned, true},
		{"  assigned ", true},
		{entity.RepairStatusInProgress, false},
		{entity.RepairStatusFinished, false},
		{"", false},
		{"CANCELLED", false},
	}
	for _, c := range casos {
		assert.Equal(t, c.editable, entity.IsRepairEditable(c.status), "status=%q", c.status)
	}
}

func TestCanStartRepair_SoloDesdeAssigned(t *testing.T) {
	assert.True(t, entity.CanStartRepair(entity.RepairStatusAssigned))
	assert.True(t, entity.CanStartRepair("assigned"))

	assert.False(t, entity.CanStartRepair(entity.RepairStatusPending))
	assert.False(t, entity.CanStartRepair(entity.RepairStatusInProgress))
	assert.False(t, entity.CanStartRepair(entity.RepairStatusFinished))
}

func TestCanFinishRepair_SoloDesdeInProgress(t *testing.T) {
	assert.True(t, entity.CanFinishRepair(entity.RepairStatusInProgress))

	assert.False(t, entity.CanFinishRepair(entity.RepairStatusAssigned))
	assert.False(t, entity.CanFinishRepair(entity.RepairStatusFinished))
	// FINISHED es terminal: terminar dos veces no es una transición válida.
	assert.False(t, entity.CanFinishRepair("finished"))
}
