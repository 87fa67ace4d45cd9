package usecase

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	draftdomain "coursemail-backend/internal/draft/domain"
	"coursemail-backend/internal/draft/repository"
)

func newTestUsecase(t *testing.T) (DraftUsecase, repository.DraftRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&draftdomain.MessageDraft{}))

	repo := repository.NewGormDraftRepository(db)
	return NewDraftUsecase(repo), repo
}

func TestSaveDraft_CreatesWithSentinels(t *testing.T) {
	uc, _ := newTestUsecase(t)

	draft, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{
		Subject: "Week 3 update",
		Body:    "Reading list attached",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, draftdomain.DraftStatusDraft, draft.Status)
	assert.Equal(t, "0", draft.AlternateEmailID)
	assert.Equal(t, "0", draft.SignatureID)
	assert.NotNil(t, draft.IncludedRecipientKeys)
	assert.NotNil(t, draft.AdditionalEmails)
}

func TestSaveDraft_UpdatesExisting(t *testing.T) {
	uc, _ := newTestUsecase(t)

	draft, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{Subject: "v1"})
	require.NoError(t, err)

	updated, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{
		DraftID:               draft.ID,
		Subject:               "v2",
		IncludedRecipientKeys: []string{"role_7"},
	})
	require.NoError(t, err)

	assert.Equal(t, draft.ID, updated.ID)
	assert.Equal(t, "v2", updated.Subject)
	assert.Equal(t, draftdomain.StringArray{"role_7"}, updated.IncludedRecipientKeys)

	drafts, err := uc.GetCourseDrafts("user-1", "course-1")
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestSaveDraft_ForeignDraftNotFound(t *testing.T) {
	uc, _ := newTestUsecase(t)

	draft, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{Subject: "mine"})
	require.NoError(t, err)

	_, err = uc.SaveDraft("user-2", "course-1", DraftSaveRequest{DraftID: draft.ID, Subject: "theirs"})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestGetUserDraft_FiltersOwnerAndStatus(t *testing.T) {
	uc, _ := newTestUsecase(t)

	draft, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{Subject: "hello"})
	require.NoError(t, err)

	found, err := uc.GetUserDraft("user-1", draft.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	foreign, err := uc.GetUserDraft("user-2", draft.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	// Once queued the draft is no longer editable
	_, err = uc.QueueDraft("user-1", draft.ID, "hello")
	require.NoError(t, err)

	queued, err := uc.GetUserDraft("user-1", draft.ID)
	require.NoError(t, err)
	assert.Nil(t, queued)
}

func TestDeleteDraft(t *testing.T) {
	uc, _ := newTestUsecase(t)

	draft, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{Subject: "bye"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteDraft("user-2", draft.ID), ErrDraftNotFound)
	require.NoError(t, uc.DeleteDraft("user-1", draft.ID))

	gone, err := uc.GetUserDraft("user-1", draft.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestQueueDraft(t *testing.T) {
	uc, repo := newTestUsecase(t)

	draft, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{
		Subject:     "final",
		Body:        "message text",
		SignatureID: "sig-1",
	})
	require.NoError(t, err)

	queued, err := uc.QueueDraft("user-1", draft.ID, "message text<br><br>Best regards")
	require.NoError(t, err)

	assert.Equal(t, draftdomain.DraftStatusQueued, queued.Status)
	assert.Equal(t, "message text<br><br>Best regards", queued.Body)
	require.NotNil(t, queued.QueuedAt)

	// Unscheduled queued drafts are immediately due for dispatch
	due, err := repo.FindDueQueued(time.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, draft.ID, due[0].ID)
}

func TestFindDueQueued_SkipsFutureSchedules(t *testing.T) {
	uc, repo := newTestUsecase(t)

	future := time.Now().Add(2 * time.Hour)
	draft, err := uc.SaveDraft("user-1", "course-1", DraftSaveRequest{
		Subject:         "later",
		ScheduledSendAt: &future,
	})
	require.NoError(t, err)

	_, err = uc.QueueDraft("user-1", draft.ID, "later")
	require.NoError(t, err)

	due, err := repo.FindDueQueued(time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)

	due, err = repo.FindDueQueued(time.Now().Add(3 * time.Hour))
	require.NoError(t, err)
	assert.Len(t, due, 1)
}
