package usecase

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	composedomain "coursemail-backend/internal/compose/domain"
	coursedomain "coursemail-backend/internal/course/domain"
)

const scheduleStepMinutes = 15

// BuildSession computes the complete compose form description from its
// inputs alone. It performs no I/O and mutates nothing; identical inputs
// produce identical views.
func BuildSession(in BuildInput) *composedomain.ComposeSessionView {
	view := &composedomain.ComposeSessionView{
		CourseID: in.CourseID,
	}
	if in.Draft != nil {
		view.DraftID = in.Draft.ID
	}

	view.FromEmail = buildFromEmailField(in)

	recipientOptions := buildRecipientOptions(in.Directory)
	view.IncludedRecipients = composedomain.MultiSelectField{
		Options:  recipientOptions,
		Defaults: []string{},
	}
	view.ExcludedRecipients = composedomain.MultiSelectField{
		Options:  recipientOptions,
		Defaults: []string{},
	}
	if in.Draft != nil {
		view.IncludedRecipients.Defaults = append([]string{}, in.Draft.IncludedRecipientKeys...)
		view.ExcludedRecipients.Defaults = append([]string{}, in.Draft.ExcludedRecipientKeys...)
	}

	view.Subject = composedomain.TextField{Visible: true}
	view.Body = composedomain.EditorField{Options: in.Editor}
	if in.Draft != nil {
		view.Subject.Default = in.Draft.Subject
		view.Body.Default = in.Draft.Body
	}

	view.AdditionalEmails = composedomain.TextField{Visible: in.Config.AllowAdditionalEmailInput}
	if view.AdditionalEmails.Visible && in.Draft != nil {
		view.AdditionalEmails.Default = strings.Join(in.Draft.AdditionalEmails, ", ")
	}

	view.Attachments = composedomain.AttachmentField{Options: in.Attachments}
	view.Signature = buildSignatureField(in)
	view.MessageType = buildMessageTypeField(in)
	view.ScheduledSend = buildScheduleField(in)

	view.Receipt = composedomain.ToggleField{
		Visible: true,
		Default: in.Config.DefaultReceiptPreference,
	}
	if in.Draft != nil {
		view.Receipt.Default = in.Draft.SendReceipt
	}

	view.MentorCopy = composedomain.ToggleField{
		Visible: in.CanSendUnrestricted && in.Config.AllowMentorCopy,
	}
	if view.MentorCopy.Visible && in.Draft != nil {
		view.MentorCopy.Default = in.Draft.SendToMentors
	}

	return view
}

// buildFromEmailField assembles the sender identity select. Only actors
// holding the alternate-sender capability see it; everyone else sends as
// themselves.
func buildFromEmailField(in BuildInput) composedomain.SelectField {
	field := composedomain.SelectField{Default: composedomain.NoneKey}

	if !in.CanSelectAlternate {
		return field
	}

	field.Visible = true
	field.Options = make([]composedomain.SelectOption, 0, len(in.AlternateEmails)+1)
	for _, alt := range in.AlternateEmails {
		field.Options = append(field.Options, composedomain.SelectOption{
			Key:   alt.ID,
			Label: alt.DisplayAddress(),
		})
	}
	field.Options = append(field.Options, composedomain.SelectOption{
		Key:   composedomain.NoReplyKey,
		Label: in.NoReplyAddress,
	})

	if in.Draft != nil && in.Draft.AlternateEmailID != "" {
		field.Default = in.Draft.AlternateEmailID
	}

	return field
}

// buildRecipientOptions merges the course's roles, groups, and users into a
// single keyed option set. Role and group labels carry their kind so equally
// named entities stay distinguishable; users appear as-is.
func buildRecipientOptions(dir *coursedomain.CourseUserData) []composedomain.SelectOption {
	if dir == nil {
		return []composedomain.SelectOption{}
	}

	caser := cases.Title(language.English)
	options := make([]composedomain.SelectOption, 0, len(dir.Roles)+len(dir.Groups)+len(dir.Users))

	for _, role := range dir.Roles {
		options = append(options, composedomain.SelectOption{
			Key:   composedomain.RecipientKey("role", role.ID),
			Label: role.Name + " (" + caser.String("role") + ")",
		})
	}
	for _, group := range dir.Groups {
		options = append(options, composedomain.SelectOption{
			Key:   composedomain.RecipientKey("group", group.ID),
			Label: group.Name + " (" + caser.String("group") + ")",
		})
	}
	for _, user := range dir.Users {
		options = append(options, composedomain.SelectOption{
			Key:   composedomain.RecipientKey("user", user.ID),
			Label: user.Name,
		})
	}

	return options
}

func buildSignatureField(in BuildInput) composedomain.SignatureField {
	field := composedomain.SignatureField{Default: composedomain.NoneKey}

	if len(in.SignatureOptions) == 0 {
		// Nothing to pick from; point the actor at creating one instead
		field.CreateURL = in.CreateSignatureURL
		return field
	}

	field.Visible = true
	field.Options = make([]composedomain.SelectOption, 0, len(in.SignatureOptions)+1)
	for _, opt := range in.SignatureOptions {
		field.Options = append(field.Options, composedomain.SelectOption{
			Key:   opt.ID,
			Label: opt.DisplayTitle,
		})
	}
	field.Options = append(field.Options, composedomain.SelectOption{
		Key:   composedomain.NoneKey,
		Label: "None",
	})

	switch {
	case in.Draft != nil && in.Draft.SignatureID != "":
		field.Default = in.Draft.SignatureID
	case in.DefaultSignatureID != "":
		field.Default = in.DefaultSignatureID
	}

	return field
}

func buildMessageTypeField(in BuildInput) composedomain.SelectField {
	field := composedomain.SelectField{Default: in.Config.DefaultMessageType}

	if in.Config.MessageTypesAvailable != coursedomain.MessageTypesAll {
		// Course restricts senders to a single type
		return field
	}

	field.Visible = true
	field.Options = []composedomain.SelectOption{
		{Key: coursedomain.MessageTypeMessage, Label: "Message"},
		{Key: coursedomain.MessageTypeEmail, Label: "Email"},
	}
	if in.Draft != nil && in.Draft.MessageType != "" {
		field.Default = in.Draft.MessageType
	}

	return field
}

func buildScheduleField(in BuildInput) composedomain.ScheduleField {
	field := composedomain.ScheduleField{
		Optional:    true,
		MinYear:     in.Now.Year(),
		MaxYear:     in.Now.Year() + 1,
		StepMinutes: scheduleStepMinutes,
	}

	if in.Draft != nil && in.Draft.ToSendInFuture(in.Now) {
		// A draft already scheduled ahead keeps its slot and must stay scheduled
		field.Optional = false
		rebuilt := rebuildTimestamp(*in.Draft.ScheduledSendAt)
		field.Default = &rebuilt
	}

	return field
}

// rebuildTimestamp reconstructs a stored timestamp from its wall-clock
// components, dropping sub-second precision picked up in storage
func rebuildTimestamp(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}
