package services

import (
	"os"
	"strings"

	"github.com/splitbook/splitbook-backend/models"
	"github.com/splitbook/splitbook-backend/utils"
)

// GroupService is the group-naming lookup: a static enumerable list of
// groups, injected at construction so deployments can replace it
type GroupService struct {
	groups []models.Group
}

// NewGroupService creates a group service over an injected group list
func NewGroupService(groups []models.Group) *GroupService {
	return &GroupService{
		groups: groups,
	}
}

// DefaultGroups returns the built-in group list, overridable via the GROUPS
// environment variable as "id:Name,id:Name" pairs
func DefaultGroups() []models.Group {
	raw := os.Getenv("GROUPS")
	if raw == "" {
		return []models.Group{
			{ID: "family", Name: "Family"},
			{ID: "friends", Name: "Friends"},
			{ID: "work", Name: "Work"},
			{ID: "travel", Name: "Travel"},
		}
	}

	var groups []models.Group
	for _, pair := range strings.Split(raw, ",") {
		id, name, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found || id == "" {
			continue
		}
		groups = append(groups, models.Group{ID: id, Name: name})
	}
	return groups
}

// ListGroups returns all configured groups
func (s *GroupService) ListGroups() []models.Group {
	return s.groups
}

// GetGroup looks up a group by id
func (s *GroupService) GetGroup(groupID string) (*models.Group, error) {
	for _, group := range s.groups {
		if group.ID == groupID {
			return &group, nil
		}
	}
	return nil, utils.NewNotFoundError("Group")
}
