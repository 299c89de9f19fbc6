package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	gormrepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
)

func TestSeed_IsIdempotent(t *testing.T) {
	db, err := SetupDatabase("", gormlogger.Silent)
	require.NoError(t, err)

	require.NoError(t, Seed(db, zap.NewNop()))
	require.NoError(t, Seed(db, zap.NewNop()))

	ctx := context.Background()
	users := gormrepo.NewUserRepository(db)

	u, err := users.FindByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NoError(t, u.CheckPassword(DemoPassword))

	recipes, err := gormrepo.NewRecipeRepository(db).ListByOwner(ctx, u.ID())
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}
