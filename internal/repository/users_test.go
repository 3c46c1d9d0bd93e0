package repository_test

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepoFindOwner(t *testing.T) {
	db := testutil.DB(t)
	repos := repository.New(db)
	ctx := context.Background()

	_, err := repos.Users.FindOwner(ctx, nil)
	assert.True(t, repository.IsNotFound(err))

	seeded := testutil.SeedOwner(t, db, "ada@example.com")
	owner, err := repos.Users.FindOwner(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, owner.ID)
	assert.Equal(t, models.OwnerSlot, owner.Slot)
}

func TestUserRepoSecondOwnerConflicts(t *testing.T) {
	db := testutil.DB(t)
	repos := repository.New(db)
	testutil.SeedOwner(t, db, "ada@example.com")

	err := repos.Users.Create(context.Background(), nil, &models.User{Name: "Other", Email: "other@example.com"})
	require.Error(t, err)
	assert.True(t, repository.IsConflict(err))
	assert.Contains(t, repository.ConstraintOf(err), "slot")
}

func TestUserRepoDuplicateEmailConflicts(t *testing.T) {
	db := testutil.DB(t)
	repos := repository.New(db)
	testutil.SeedOwner(t, db, "ada@example.com")

	err := repos.Users.Create(context.Background(), nil, &models.User{Slot: "guest", Name: "Other", Email: "ada@example.com"})
	require.Error(t, err)
	assert.True(t, repository.IsConflict(err))
	assert.Contains(t, repository.ConstraintOf(err), "email")
}

func TestUserRepoUpdate(t *testing.T) {
	db := testutil.DB(t)
	repos := repository.New(db)
	ctx := context.Background()
	owner := testutil.SeedOwner(t, db, "ada@example.com")

	require.NoError(t, repos.Users.Update(ctx, nil, owner.ID, map[string]interface{}{"title": "Poet"}))
	got, err := repos.Users.GetByID(ctx, nil, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poet", got.Title)
	assert.Equal(t, "Ada Owner", got.Name)

	err = repos.Users.Update(ctx, nil, uuid.New(), map[string]interface{}{"title": "x"})
	assert.True(t, repository.IsNotFound(err))
}

func TestUserRepoGetWithAchievementsOrdersByPosition(t *testing.T) {
	db := testutil.DB(t)
	repos := repository.New(db)
	owner := testutil.SeedOwner(t, db, "ada@example.com")
	testutil.SeedAwards(t, db, owner.ID, "first", "second", "third")

	got, err := repos.Users.GetWithAchievements(context.Background(), nil, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Awards, 3)
	assert.Equal(t, "first", got.Awards[0].Description)
	assert.Equal(t, "third", got.Awards[2].Description)
	assert.Empty(t, got.Publications)
}

func TestUserRepoDeleteRemovesChildren(t *testing.T) {
	db := testutil.DB(t)
	repos := repository.New(db)
	ctx := context.Background()
	owner := testutil.SeedOwner(t, db, "ada@example.com")
	testutil.SeedAwards(t, db, owner.ID, "a", "b")

	require.NoError(t, repos.Users.Delete(ctx, nil, owner.ID))
	assert.Zero(t, testutil.CountRows(t, db, &models.User{}))
	assert.Zero(t, testutil.CountRows(t, db, &models.Award{}))

	assert.True(t, repository.IsNotFound(repos.Users.Delete(ctx, nil, owner.ID)))
}

func TestTransactionRollsBack(t *testing.T) {
	db := testutil.DB(t)
	repos := repository.New(db)
	ctx := context.Background()
	owner := testutil.SeedOwner(t, db, "ada@example.com")
	testutil.SeedAwards(t, db, owner.ID, "kept")

	err := repos.Transaction(ctx, func(tx *gorm.DB) error {
		if err := repos.Awards.Replace(ctx, tx, owner.ID, nil); err != nil {
			return err
		}
		return repos.Users.Update(ctx, tx, uuid.New(), map[string]interface{}{"title": "x"})
	})
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))

	awards, err := repos.Awards.ListByUser(ctx, nil, owner.ID)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, "kept", awards[0].Description)
}
