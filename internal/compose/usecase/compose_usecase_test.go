package usecase

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authdomain "coursemail-backend/internal/auth/domain"
	composedomain "coursemail-backend/internal/compose/domain"
	coursedomain "coursemail-backend/internal/course/domain"
	courseRepo "coursemail-backend/internal/course/repository"
	courseUsecase "coursemail-backend/internal/course/usecase"
	draftdomain "coursemail-backend/internal/draft/domain"
	draftRepo "coursemail-backend/internal/draft/repository"
	draftUsecase "coursemail-backend/internal/draft/usecase"
	sigdomain "coursemail-backend/internal/signature/domain"
	sigRepo "coursemail-backend/internal/signature/repository"
	sigUsecase "coursemail-backend/internal/signature/usecase"
	"coursemail-backend/pkg/config"
)

type composeTestEnv struct {
	compose    ComposeUsecase
	signatures sigUsecase.SignatureUsecase
	drafts     draftUsecase.DraftUsecase
	db         *gorm.DB
}

func newComposeTestEnv(t *testing.T) *composeTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authdomain.User{},
		&coursedomain.Course{},
		&coursedomain.Role{},
		&coursedomain.Group{},
		&coursedomain.Enrollment{},
		&coursedomain.GroupMembership{},
		&coursedomain.AlternateEmail{},
		&coursedomain.CourseSettings{},
		&sigdomain.Signature{},
		&draftdomain.MessageDraft{},
	))

	cfg := &config.Config{
		NoReplyAddress: "noreply@coursemail.local",
		Messaging: config.MessagingDefaults{
			DefaultMessageType:        coursedomain.MessageTypeEmail,
			MessageTypesAvailable:     coursedomain.MessageTypesAll,
			AllowAdditionalEmailInput: true,
			AllowMentorCopy:           true,
			DefaultReceiptPreference:  false,
		},
	}

	courseUc := courseUsecase.NewCourseUsecase(courseRepo.NewGormCourseRepository(db), cfg)
	signatureUc := sigUsecase.NewSignatureUsecase(sigRepo.NewGormSignatureRepository(db))
	draftUc := draftUsecase.NewDraftUsecase(draftRepo.NewGormDraftRepository(db))

	require.NoError(t, db.Create(&authdomain.User{ID: "teacher-1", Email: "pat@example.edu", Name: "Pat Rivera"}).Error)
	require.NoError(t, db.Create(&authdomain.User{ID: "student-1", Email: "alex@example.edu", Name: "Alex Martin"}).Error)
	require.NoError(t, db.Create(&coursedomain.Course{ID: "course-1", ShortName: "GO101", FullName: "Intro to Go"}).Error)
	require.NoError(t, db.Create(&coursedomain.Role{ID: "role-t", Name: "Teacher"}).Error)
	require.NoError(t, db.Create(&coursedomain.Role{ID: "role-s", Name: "Student"}).Error)
	require.NoError(t, db.Create(&coursedomain.Enrollment{ID: "enr-1", CourseID: "course-1", UserID: "teacher-1", RoleID: "role-t"}).Error)
	require.NoError(t, db.Create(&coursedomain.Enrollment{ID: "enr-2", CourseID: "course-1", UserID: "student-1", RoleID: "role-s"}).Error)
	require.NoError(t, db.Create(&coursedomain.Group{ID: "grp-1", CourseID: "course-1", Name: "Blue Team"}).Error)

	return &composeTestEnv{
		compose:    NewComposeUsecase(courseUc, signatureUc, draftUc, cfg),
		signatures: signatureUc,
		drafts:     draftUc,
		db:         db,
	}
}

func TestBuildComposeSession_Authorization(t *testing.T) {
	env := newComposeTestEnv(t)

	_, err := env.compose.BuildComposeSession("stranger", "course-1", "")
	assert.ErrorIs(t, err, ErrNotAllowed)

	_, err = env.compose.BuildComposeSession("teacher-1", "missing-course", "")
	assert.ErrorIs(t, err, courseUsecase.ErrCourseNotFound)

	_, err = env.compose.BuildComposeSession("teacher-1", "course-1", "no-such-draft")
	assert.ErrorIs(t, err, draftUsecase.ErrDraftNotFound)
}

func TestBuildComposeSession_TeacherDefaults(t *testing.T) {
	env := newComposeTestEnv(t)

	sig, err := env.signatures.CreateSignature("teacher-1", "Formal", "Best regards", false)
	require.NoError(t, err)

	view, err := env.compose.BuildComposeSession("teacher-1", "course-1", "")
	require.NoError(t, err)

	// Teachers may pick an alternate sender; with none registered the select
	// still offers the no-reply address
	require.True(t, view.FromEmail.Visible)
	require.Len(t, view.FromEmail.Options, 1)
	assert.Equal(t, composedomain.NoReplyKey, view.FromEmail.Options[0].Key)

	assert.True(t, view.Signature.Visible)
	assert.Equal(t, sig.ID, view.Signature.Default)
	assert.True(t, view.MentorCopy.Visible)

	// Directory entities from all three kinds are offered
	keys := make([]string, 0, len(view.IncludedRecipients.Options))
	for _, opt := range view.IncludedRecipients.Options {
		keys = append(keys, opt.Key)
	}
	assert.Contains(t, keys, "role_role-t")
	assert.Contains(t, keys, "group_grp-1")
	assert.Contains(t, keys, "user_teacher-1")
}

func TestBuildComposeSession_StudentRestrictions(t *testing.T) {
	env := newComposeTestEnv(t)

	view, err := env.compose.BuildComposeSession("student-1", "course-1", "")
	require.NoError(t, err)

	assert.False(t, view.FromEmail.Visible)
	assert.False(t, view.MentorCopy.Visible)
	assert.False(t, view.Signature.Visible)
	assert.Equal(t, "/api/signatures", view.Signature.CreateURL)
}

func TestSubmitComposeSession_ValidationBlocksQueue(t *testing.T) {
	env := newComposeTestEnv(t)

	draft, fieldErrors, err := env.compose.SubmitComposeSession("teacher-1", "course-1", SubmitRequest{
		Subject:          "No recipients",
		Body:             "Hello",
		AdditionalEmails: "a@b.com, bad-email",
	})
	require.NoError(t, err)
	assert.Nil(t, draft)
	assert.Equal(t, "compose_missing_recipients", fieldErrors["included_recipient_keys"])
	assert.Equal(t, "compose_invalid_additional_emails", fieldErrors["additional_emails"])

	// Nothing was persisted
	drafts, err := env.drafts.GetCourseDrafts("teacher-1", "course-1")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestSubmitComposeSession_SaveOnlySkipsValidation(t *testing.T) {
	env := newComposeTestEnv(t)

	draft, fieldErrors, err := env.compose.SubmitComposeSession("teacher-1", "course-1", SubmitRequest{
		SaveOnly: true,
		Subject:  "Work in progress",
		Body:     "Half-written",
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	require.NotNil(t, draft)
	assert.Equal(t, draftdomain.DraftStatusDraft, draft.Status)
}

func TestSubmitComposeSession_QueuesWithSignature(t *testing.T) {
	env := newComposeTestEnv(t)

	sig, err := env.signatures.CreateSignature("teacher-1", "Formal", "Best regards", false)
	require.NoError(t, err)

	queued, fieldErrors, err := env.compose.SubmitComposeSession("teacher-1", "course-1", SubmitRequest{
		Subject:               "Week 3",
		Body:                  "Reading list attached",
		SignatureID:           sig.ID,
		AdditionalEmails:      "guest@example.edu",
		IncludedRecipientKeys: []string{"role_role-s"},
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	require.NotNil(t, queued)

	assert.Equal(t, draftdomain.DraftStatusQueued, queued.Status)
	assert.Equal(t, "Reading list attached<br><br>Best regards", queued.Body)
	assert.Equal(t, draftdomain.StringArray{"guest@example.edu"}, queued.AdditionalEmails)
	require.NotNil(t, queued.QueuedAt)
}

func TestSearchRecipients(t *testing.T) {
	env := newComposeTestEnv(t)

	all, err := env.compose.SearchRecipients("teacher-1", "course-1", "")
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	matched, err := env.compose.SearchRecipients("teacher-1", "course-1", "blue")
	require.NoError(t, err)
	require.NotEmpty(t, matched)
	assert.Equal(t, "group_grp-1", matched[0].Key)

	// Typos within the tolerance still match
	matched, err = env.compose.SearchRecipients("teacher-1", "course-1", "blua")
	require.NoError(t, err)
	require.NotEmpty(t, matched)
	assert.Equal(t, "group_grp-1", matched[0].Key)
}
