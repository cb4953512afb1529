package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunhai/blog_go_server/internal/model"
	"github.com/yunhai/blog_go_server/internal/repository"
	"github.com/yunhai/blog_go_server/internal/testutil"
)

func TestSettingRepository_GetCommentDefaultStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := repository.NewSettingRepository(db)

	testutil.SetCommentDefaultStatus(t, db, model.CommentStatusPending)

	status := repo.GetCommentDefaultStatus(model.CommentStatusApproved)
	assert.Equal(t, model.CommentStatusPending, status)
}

func TestSettingRepository_GetCommentDefaultStatus_MissingRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := repository.NewSettingRepository(db)

	status := repo.GetCommentDefaultStatus(model.CommentStatusApproved)
	assert.Equal(t, model.CommentStatusApproved, status)
}

func TestSettingRepository_GetCommentDefaultStatus_BrokenJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := repository.NewSettingRepository(db)
	require.NoError(t, repo.Save(repository.SettingIDComment, "{not json"))

	status := repo.GetCommentDefaultStatus(model.CommentStatusApproved)
	assert.Equal(t, model.CommentStatusApproved, status)
}

func TestSettingRepository_GetCommentDefaultStatus_InvalidValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := repository.NewSettingRepository(db)
	require.NoError(t, repo.Save(repository.SettingIDComment, `{"commentDefaultStatus":"REJECTED"}`))

	// REJECTED is a comment status but not a legal default, fall back
	status := repo.GetCommentDefaultStatus(model.CommentStatusApproved)
	assert.Equal(t, model.CommentStatusApproved, status)
}

func TestSettingRepository_SaveAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := repository.NewSettingRepository(db)
	require.NoError(t, repo.Save("siteInfo", `{"siteName":"个人博客"}`))

	setting, err := repo.Get("siteInfo")
	require.NoError(t, err)
	assert.Equal(t, `{"siteName":"个人博客"}`, setting.Value)

	// Save overwrites
	require.NoError(t, repo.Save("siteInfo", `{"siteName":"新名字"}`))
	setting, err = repo.Get("siteInfo")
	require.NoError(t, err)
	assert.Equal(t, `{"siteName":"新名字"}`, setting.Value)
}
