package services

import (
	"testing"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestGuardAuthorize(t *testing.T) {
	var g Guard

	tests := []struct {
		name    string
		actor   Principal
		ownerID uint
		wantErr bool
	}{
		{"owner may touch own resource", Principal{ID: 7, Role: entity.RoleOwner}, 7, false},
		{"customer may touch own resource", Principal{ID: 3, Role: entity.RoleCustomer}, 3, false},
		{"admin passes regardless of owner", Principal{ID: 1, Role: entity.RoleAdmin}, 99, false},
		{"stranger is denied", Principal{ID: 5, Role: entity.RoleOwner}, 7, true},
		{"customer is denied on foreign resource", Principal{ID: 2, Role: entity.RoleCustomer}, 9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Authorize(tt.actor, tt.ownerID, "restaurant", 42)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrAccessDenied)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
