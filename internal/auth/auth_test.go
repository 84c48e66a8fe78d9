package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenParser_Parse(t *testing.T) {
	p := NewTokenParser("test-secret")

	valid, err := p.Issue(Principal{ID: 42, Role: RoleEditor}, time.Hour)
	require.NoError(t, err)
	expired, err := p.Issue(Principal{ID: 42, Role: RoleEditor}, -time.Hour)
	require.NoError(t, err)
	foreign, err := NewTokenParser("other-secret").Issue(Principal{ID: 1, Role: RoleAdmin}, time.Hour)
	require.NoError(t, err)
	noRole, err := p.Issue(Principal{ID: 7}, time.Hour)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1, Role: RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		expected  *Principal
		expectErr bool
	}{
		{"valid bearer", "Bearer " + valid, &Principal{ID: 42, Role: RoleEditor}, false},
		{"valid raw", valid, &Principal{ID: 42, Role: RoleEditor}, false},
		{"default role", noRole, &Principal{ID: 7, Role: RoleUser}, false},
		{"empty", "", nil, true},
		{"expired", expired, nil, true},
		{"wrong secret", foreign, nil, true},
		{"unsigned", none, nil, true},
		{"garbage", "Bearer not.a.token", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.token)
			if tt.expectErr {
				assert.True(t, errors.Is(err, apperror.ErrUnauthorized), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPrincipalRoles(t *testing.T) {
	admin := &Principal{ID: 1, Role: RoleAdmin}
	editor := &Principal{ID: 2, Role: RoleEditor}
	owner := &Principal{ID: 3, Role: RoleBusiness}
	var anonymous *Principal

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsEditor())
	assert.False(t, editor.IsAdmin())
	assert.True(t, editor.IsEditor())
	assert.False(t, owner.IsEditor())
	assert.False(t, anonymous.IsEditor())

	assert.NoError(t, RequireEditor(editor))
	assert.True(t, errors.Is(RequireEditor(owner), apperror.ErrForbidden))
	assert.True(t, errors.Is(RequireEditor(nil), apperror.ErrUnauthorized))
	assert.True(t, errors.Is(RequireAdmin(editor), apperror.ErrForbidden))
	assert.NoError(t, RequireAdmin(admin))
}

func TestPrincipalContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	ctx := WithPrincipal(context.Background(), &Principal{ID: 5, Role: RoleUser})
	assert.Equal(t, int64(5), FromContext(ctx).ID)
}
