package domain

import (
	"time"

	"coursemail-backend/pkg/config"
)

// Selection sentinels. "0" is the fixed value of hidden or empty selects;
// "-1" keys the synthetic no-reply sender option.
const (
	NoneKey    = "0"
	NoReplyKey = "-1"
)

// SelectOption is one selectable item, keyed for round-tripping
type SelectOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SelectField is a single-choice field. When not visible it is fixed to
// Default and carries no options.
type SelectField struct {
	Visible bool           `json:"visible"`
	Options []SelectOption `json:"options,omitempty"`
	Default string         `json:"default"`
}

// MultiSelectField is a multiple-choice field
type MultiSelectField struct {
	Options  []SelectOption `json:"options"`
	Defaults []string       `json:"defaults"`
}

// TextField is a free-text field. When not visible it is fixed empty.
type TextField struct {
	Visible bool   `json:"visible"`
	Default string `json:"default"`
}

// EditorField is a rich-content field with pass-through editor constraints
type EditorField struct {
	Default string               `json:"default"`
	Options config.EditorOptions `json:"options"`
}

// AttachmentField carries the pass-through attachment constraints
type AttachmentField struct {
	Options config.AttachmentOptions `json:"options"`
}

// SignatureField is the signature select. When the actor owns no
// signatures it collapses to a fixed hidden value with a call-to-action
// target for creating one.
type SignatureField struct {
	Visible   bool           `json:"visible"`
	Options   []SelectOption `json:"options,omitempty"`
	Default   string         `json:"default"`
	CreateURL string         `json:"create_url,omitempty"`
}

// ScheduleField is the scheduled-send picker. Optional is false only when
// resuming a draft whose send time is still in the future; Default is then
// pre-filled.
type ScheduleField struct {
	Optional    bool       `json:"optional"`
	MinYear     int        `json:"min_year"`
	MaxYear     int        `json:"max_year"`
	StepMinutes int        `json:"step_minutes"`
	Default     *time.Time `json:"default,omitempty"`
}

// ToggleField is a yes/no choice. When not visible it is fixed to Default.
type ToggleField struct {
	Visible bool `json:"visible"`
	Default bool `json:"default"`
}

// ComposeSessionView describes the complete compose form for one actor in
// one course: which fields show, what they offer, and what they start as.
// It is a plain value; rendering belongs to the consumer.
type ComposeSessionView struct {
	CourseID           string           `json:"course_id"`
	DraftID            string           `json:"draft_id,omitempty"`
	FromEmail          SelectField      `json:"from_email"`
	IncludedRecipients MultiSelectField `json:"included_recipients"`
	ExcludedRecipients MultiSelectField `json:"excluded_recipients"`
	Subject            TextField        `json:"subject"`
	AdditionalEmails   TextField        `json:"additional_emails"`
	Body               EditorField      `json:"body"`
	Attachments        AttachmentField  `json:"attachments"`
	Signature          SignatureField   `json:"signature"`
	MessageType        SelectField      `json:"message_type"`
	ScheduledSend      ScheduleField    `json:"scheduled_send"`
	Receipt            ToggleField      `json:"receipt"`
	MentorCopy         ToggleField      `json:"mentor_copy"`
}

// RecipientKey forms the unique key of a directory entity within the merged
// role/group/user recipient set
func RecipientKey(kind, id string) string {
	return kind + "_" + id
}
