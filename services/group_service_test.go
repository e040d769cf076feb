package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splitbook/splitbook-backend/models"
)

func TestGroupService_Lookup(t *testing.T) {
	service := NewGroupService([]models.Group{
		{ID: "family", Name: "Family"},
		{ID: "ski2026", Name: "Ski Trip 2026"},
	})

	assert.Len(t, service.ListGroups(), 2)

	group, err := service.GetGroup("ski2026")
	assert.NoError(t, err)
	assert.Equal(t, "Ski Trip 2026", group.Name)

	_, err = service.GetGroup("unknown")
	assert.Error(t, err)
}

func TestDefaultGroups_FromEnv(t *testing.T) {
	t.Setenv("GROUPS", "flat:Flatmates, band:Band")

	groups := DefaultGroups()
	assert.Equal(t, []models.Group{
		{ID: "flat", Name: "Flatmates"},
		{ID: "band", Name: "Band"},
	}, groups)
}

func TestDefaultGroups_BuiltIn(t *testing.T) {
	t.Setenv("GROUPS", "")

	groups := DefaultGroups()
	assert.Len(t, groups, 4)
	assert.Equal(t, "family", groups[0].ID)
}
