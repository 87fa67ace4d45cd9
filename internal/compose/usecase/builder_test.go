package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	composedomain "coursemail-backend/internal/compose/domain"
	coursedomain "coursemail-backend/internal/course/domain"
	draftdomain "coursemail-backend/internal/draft/domain"
	sigdomain "coursemail-backend/internal/signature/domain"
	"coursemail-backend/pkg/config"
)

func baseBuildInput() BuildInput {
	return BuildInput{
		CourseID:       "course-1",
		Now:            time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
		NoReplyAddress: "noreply@coursemail.local",
		Directory: &coursedomain.CourseUserData{
			Roles:  []coursedomain.Entity{{ID: "7", Name: "Teacher"}},
			Groups: []coursedomain.Entity{{ID: "3", Name: "Blue Team"}},
			Users:  []coursedomain.Entity{{ID: "42", Name: "Alex Martin"}},
		},
		Config: &coursedomain.MessagingConfig{
			DefaultMessageType:        coursedomain.MessageTypeEmail,
			MessageTypesAvailable:     coursedomain.MessageTypesAll,
			AllowAdditionalEmailInput: true,
			AllowMentorCopy:           true,
			DefaultReceiptPreference:  false,
		},
		CreateSignatureURL: "/api/signatures",
		Editor:             config.EditorOptions{MaxBytes: 1 << 20, MaxFiles: 4},
		Attachments:        config.AttachmentOptions{MaxBytes: 2 << 20, MaxFiles: 2, AcceptedTypes: []string{"*"}},
	}
}

func TestBuildSession_RecipientOptions(t *testing.T) {
	view := BuildSession(baseBuildInput())

	require.Len(t, view.IncludedRecipients.Options, 3)
	assert.Equal(t, composedomain.SelectOption{Key: "role_7", Label: "Teacher (Role)"}, view.IncludedRecipients.Options[0])
	assert.Equal(t, composedomain.SelectOption{Key: "group_3", Label: "Blue Team (Group)"}, view.IncludedRecipients.Options[1])
	assert.Equal(t, composedomain.SelectOption{Key: "user_42", Label: "Alex Martin"}, view.IncludedRecipients.Options[2])

	// Exclusion draws from the same merged set
	assert.Equal(t, view.IncludedRecipients.Options, view.ExcludedRecipients.Options)
	assert.Empty(t, view.IncludedRecipients.Defaults)
	assert.Empty(t, view.ExcludedRecipients.Defaults)
}

func TestBuildSession_FromEmailHiddenWithoutCapability(t *testing.T) {
	in := baseBuildInput()
	in.CanSelectAlternate = false

	view := BuildSession(in)

	assert.False(t, view.FromEmail.Visible)
	assert.Equal(t, composedomain.NoneKey, view.FromEmail.Default)
	assert.Empty(t, view.FromEmail.Options)
}

func TestBuildSession_FromEmailWithAlternates(t *testing.T) {
	in := baseBuildInput()
	in.CanSelectAlternate = true
	in.AlternateEmails = []*coursedomain.AlternateEmail{
		{ID: "alt-1", Email: "advisor@example.edu", Label: "Advising"},
	}

	view := BuildSession(in)

	require.True(t, view.FromEmail.Visible)
	require.Len(t, view.FromEmail.Options, 2)
	assert.Equal(t, composedomain.SelectOption{Key: "alt-1", Label: "Advising <advisor@example.edu>"}, view.FromEmail.Options[0])
	assert.Equal(t, composedomain.SelectOption{Key: composedomain.NoReplyKey, Label: "noreply@coursemail.local"}, view.FromEmail.Options[1])
	assert.Equal(t, composedomain.NoneKey, view.FromEmail.Default)
}

func TestBuildSession_MessageTypeRestricted(t *testing.T) {
	in := baseBuildInput()
	in.Config.MessageTypesAvailable = coursedomain.MessageTypeEmail

	view := BuildSession(in)

	assert.False(t, view.MessageType.Visible)
	assert.Empty(t, view.MessageType.Options)
	assert.Equal(t, coursedomain.MessageTypeEmail, view.MessageType.Default)
}

func TestBuildSession_MessageTypeSelectable(t *testing.T) {
	view := BuildSession(baseBuildInput())

	require.True(t, view.MessageType.Visible)
	require.Len(t, view.MessageType.Options, 2)
	assert.Equal(t, coursedomain.MessageTypeMessage, view.MessageType.Options[0].Key)
	assert.Equal(t, coursedomain.MessageTypeEmail, view.MessageType.Options[1].Key)
	assert.Equal(t, coursedomain.MessageTypeEmail, view.MessageType.Default)
}

func TestBuildSession_SignatureFieldWithoutSignatures(t *testing.T) {
	view := BuildSession(baseBuildInput())

	assert.False(t, view.Signature.Visible)
	assert.Equal(t, composedomain.NoneKey, view.Signature.Default)
	assert.Equal(t, "/api/signatures", view.Signature.CreateURL)
}

func TestBuildSession_SignatureFieldWithSignatures(t *testing.T) {
	in := baseBuildInput()
	in.SignatureOptions = []sigdomain.Option{
		{ID: "sig-1", DisplayTitle: "Formal (default)"},
		{ID: "sig-2", DisplayTitle: "Casual"},
	}
	in.DefaultSignatureID = "sig-1"

	view := BuildSession(in)

	require.True(t, view.Signature.Visible)
	require.Len(t, view.Signature.Options, 3)
	assert.Equal(t, "Formal (default)", view.Signature.Options[0].Label)
	assert.Equal(t, composedomain.SelectOption{Key: composedomain.NoneKey, Label: "None"}, view.Signature.Options[2])
	assert.Equal(t, "sig-1", view.Signature.Default)
	assert.Empty(t, view.Signature.CreateURL)
}

func TestBuildSession_AdditionalEmailsHiddenByConfig(t *testing.T) {
	in := baseBuildInput()
	in.Config.AllowAdditionalEmailInput = false

	view := BuildSession(in)

	assert.False(t, view.AdditionalEmails.Visible)
	assert.Empty(t, view.AdditionalEmails.Default)
}

func TestBuildSession_MentorCopyVisibility(t *testing.T) {
	cases := []struct {
		name         string
		unrestricted bool
		allowed      bool
		visible      bool
	}{
		{"unrestricted and allowed", true, true, true},
		{"restricted role", false, true, false},
		{"disallowed by config", true, false, false},
		{"neither", false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseBuildInput()
			in.CanSendUnrestricted = tc.unrestricted
			in.Config.AllowMentorCopy = tc.allowed

			view := BuildSession(in)
			assert.Equal(t, tc.visible, view.MentorCopy.Visible)
			assert.False(t, view.MentorCopy.Default)
		})
	}
}

func TestBuildSession_DraftResumeDefaults(t *testing.T) {
	in := baseBuildInput()
	in.CanSelectAlternate = true
	in.SignatureOptions = []sigdomain.Option{{ID: "sig-1", DisplayTitle: "Formal (default)"}}
	in.DefaultSignatureID = "sig-1"
	in.CanSendUnrestricted = true
	in.Draft = &draftdomain.MessageDraft{
		ID:                    "draft-1",
		AlternateEmailID:      "alt-9",
		Subject:               "Midterm review",
		Body:                  "<p>See attached notes</p>",
		AdditionalEmails:      draftdomain.StringArray{"a@example.com", "b@example.com"},
		SignatureID:           "sig-2",
		MessageType:           coursedomain.MessageTypeMessage,
		SendReceipt:           true,
		SendToMentors:         true,
		IncludedRecipientKeys: draftdomain.StringArray{"role_7", "user_42"},
		ExcludedRecipientKeys: draftdomain.StringArray{"group_3"},
	}

	view := BuildSession(in)

	assert.Equal(t, "draft-1", view.DraftID)
	assert.Equal(t, "alt-9", view.FromEmail.Default)
	assert.Equal(t, "Midterm review", view.Subject.Default)
	assert.Equal(t, "<p>See attached notes</p>", view.Body.Default)
	assert.Equal(t, "a@example.com, b@example.com", view.AdditionalEmails.Default)
	assert.Equal(t, "sig-2", view.Signature.Default)
	assert.Equal(t, coursedomain.MessageTypeMessage, view.MessageType.Default)
	assert.True(t, view.Receipt.Default)
	assert.True(t, view.MentorCopy.Default)
	assert.Equal(t, []string{"role_7", "user_42"}, view.IncludedRecipients.Defaults)
	assert.Equal(t, []string{"group_3"}, view.ExcludedRecipients.Defaults)
}

func TestBuildSession_ScheduleOptionalWithoutFutureDraft(t *testing.T) {
	in := baseBuildInput()

	view := BuildSession(in)
	assert.True(t, view.ScheduledSend.Optional)
	assert.Nil(t, view.ScheduledSend.Default)
	assert.Equal(t, in.Now.Year(), view.ScheduledSend.MinYear)
	assert.Equal(t, in.Now.Year()+1, view.ScheduledSend.MaxYear)
	assert.Equal(t, 15, view.ScheduledSend.StepMinutes)

	// A draft whose schedule already passed behaves like an unscheduled one
	past := in.Now.Add(-time.Hour)
	in.Draft = &draftdomain.MessageDraft{ID: "draft-1", ScheduledSendAt: &past}
	view = BuildSession(in)
	assert.True(t, view.ScheduledSend.Optional)
	assert.Nil(t, view.ScheduledSend.Default)
}

func TestBuildSession_ScheduleRequiredForFutureDraft(t *testing.T) {
	in := baseBuildInput()

	// Stored timestamps carry storage precision artifacts; the session must
	// round-trip the wall-clock value without them
	scheduled := time.Date(2026, time.March, 12, 14, 30, 0, 987654321, time.UTC)
	in.Draft = &draftdomain.MessageDraft{ID: "draft-1", ScheduledSendAt: &scheduled}

	view := BuildSession(in)

	assert.False(t, view.ScheduledSend.Optional)
	require.NotNil(t, view.ScheduledSend.Default)
	assert.Equal(t, time.Date(2026, time.March, 12, 14, 30, 0, 0, time.UTC), *view.ScheduledSend.Default)
}

func TestBuildSession_Deterministic(t *testing.T) {
	in := baseBuildInput()
	in.CanSelectAlternate = true
	in.SignatureOptions = []sigdomain.Option{{ID: "sig-1", DisplayTitle: "Formal (default)"}}

	assert.Equal(t, BuildSession(in), BuildSession(in))
}
