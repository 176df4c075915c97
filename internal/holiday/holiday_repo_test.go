package holiday

import (
	"context"
	"testing"

	"go-leave/internal/shared/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ListActiveByYear(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t, &Holiday{})
	repo := NewRepository(db)

	for _, h := range []Holiday{
		{ID: uuid.New(), Date: d("2025-01-01"), Name: "New Year", IsBlocked: true, IsActive: true},
		{ID: uuid.New(), Date: d("2025-12-25"), Name: "Christmas", IsBlocked: true, IsActive: true},
		{ID: uuid.New(), Date: d("2025-06-01"), Name: "Retired", IsBlocked: true, IsActive: false},
		{ID: uuid.New(), Date: d("2026-01-01"), Name: "Next Year", IsBlocked: true, IsActive: true},
	} {
		h := h
		require.NoError(t, repo.Create(ctx, &h))
	}

	got, err := repo.ListActiveByYear(ctx, 2025)
	assert.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "New Year", got[0].Name)
	assert.Equal(t, "Christmas", got[1].Name)
}
