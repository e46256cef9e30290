package auth_test

import (
	"context"
	"testing"

	"github.com/spatialtx/datastore/internal/auth"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipal_Valid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		principal auth.Principal
		want      bool
	}{
		{"user", auth.NewPrincipal("acct_1", auth.RoleUser), true},
		{"cm", auth.NewPrincipal("acct_1", auth.RoleContentManager), true},
		{"admin", auth.NewPrincipal("acct_1", auth.RoleAdmin), true},
		{"unknown-role", auth.NewPrincipal("acct_1", auth.RoleUnknown), false},
		{"missing-account", auth.NewPrincipal("", auth.RoleAdmin), false},
		{"zero-value", auth.Principal{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.Valid())
		})
	}
}

func TestCurrentPrincipal(t *testing.T) {
	t.Parallel()
	t.Run("round-trip", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		want := auth.NewPrincipal("acct_1", auth.RoleUser)
		ctx := auth.NewContext(context.Background(), want)
		got, err := auth.CurrentPrincipal(ctx)
		require.NoError(err)
		assert.Equal(want, got)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := auth.CurrentPrincipal(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
	t.Run("invalid", func(t *testing.T) {
		ctx := auth.NewContext(context.Background(), auth.Principal{})
		_, err := auth.CurrentPrincipal(ctx)
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestRole_String(t *testing.T) {
	t.Parallel()
	for name, role := range auth.Map {
		assert.Equal(t, name, role.String())
	}
}
