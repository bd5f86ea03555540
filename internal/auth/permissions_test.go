package auth

import (
	"testing"

	"adboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckPermissions(t *testing.T) {
	regular := &models.User{ID: 1, Group: models.GroupUser}
	admin := &models.User{ID: 2, Group: models.GroupAdmin}

	tests := []struct {
		name    string
		user    *models.User
		perm    Permission
		wantErr bool
	}{
		{"no rules passes", regular, Permission{}, false},
		{"owner matches", regular, Permission{OwnerID: 1}, false},
		{"owner mismatch", regular, Permission{OwnerID: 2}, true},
		{"admin passes owner rule for others", admin, Permission{OwnerID: 1}, false},
		{"group matches", admin, Permission{Group: models.GroupAdmin}, false},
		{"group mismatch", regular, Permission{Group: models.GroupAdmin}, true},
		{"group mismatch despite ownership", regular, Permission{Group: models.GroupAdmin, OwnerID: 1}, true},
		{"both rules satisfied", admin, Permission{Group: models.GroupAdmin, OwnerID: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPermissions(tt.user, tt.perm)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, models.CodeForbidden, err.(*models.AppError).Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
