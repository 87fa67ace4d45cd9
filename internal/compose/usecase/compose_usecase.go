package usecase

import (
	"errors"
	"sort"
	"time"

	composedomain "coursemail-backend/internal/compose/domain"
	coursedomain "coursemail-backend/internal/course/domain"
	courseUsecase "coursemail-backend/internal/course/usecase"
	draftdomain "coursemail-backend/internal/draft/domain"
	draftUsecase "coursemail-backend/internal/draft/usecase"
	sigUsecase "coursemail-backend/internal/signature/usecase"
	"coursemail-backend/pkg/config"
	"coursemail-backend/pkg/fuzzy"
)

var ErrNotAllowed = errors.New("not allowed to compose in this course")

// createSignaturePath is where actors without a signature are sent to make one
const createSignaturePath = "/api/signatures"

// composeUsecase implements ComposeUsecase interface
type composeUsecase struct {
	courseUsecase    courseUsecase.CourseUsecase
	signatureUsecase sigUsecase.SignatureUsecase
	draftUsecase     draftUsecase.DraftUsecase
	config           *config.Config
}

// NewComposeUsecase creates a new instance of composeUsecase
func NewComposeUsecase(
	courseUc courseUsecase.CourseUsecase,
	signatureUc sigUsecase.SignatureUsecase,
	draftUc draftUsecase.DraftUsecase,
	cfg *config.Config,
) ComposeUsecase {
	return &composeUsecase{
		courseUsecase:    courseUc,
		signatureUsecase: signatureUc,
		draftUsecase:     draftUc,
		config:           cfg,
	}
}

func (u *composeUsecase) BuildComposeSession(userID, courseID, draftID string) (*composedomain.ComposeSessionView, error) {
	if err := u.authorize(userID, courseID); err != nil {
		return nil, err
	}

	canSelectAlternate, err := u.courseUsecase.HasCapability(userID, courseID, coursedomain.CapabilitySelectAlternate)
	if err != nil {
		return nil, err
	}
	canSendUnrestricted, err := u.courseUsecase.CanSendUnrestricted(userID, courseID)
	if err != nil {
		return nil, err
	}

	in := BuildInput{
		CourseID:            courseID,
		Now:                 time.Now(),
		CanSelectAlternate:  canSelectAlternate,
		CanSendUnrestricted: canSendUnrestricted,
		NoReplyAddress:      u.config.NoReplyAddress,
		CreateSignatureURL:  createSignaturePath,
		Editor:              u.config.Editor,
		Attachments:         u.config.Attachments,
	}

	if canSelectAlternate {
		in.AlternateEmails, err = u.courseUsecase.GetAlternateEmails(courseID, userID)
		if err != nil {
			return nil, err
		}
	}

	in.Directory, err = u.courseUsecase.GetCourseUserData(courseID)
	if err != nil {
		return nil, err
	}
	in.Config, err = u.courseUsecase.ResolveMessagingConfig(courseID)
	if err != nil {
		return nil, err
	}

	in.SignatureOptions, err = u.signatureUsecase.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	defaultSig, err := u.signatureUsecase.GetDefaultForUser(userID)
	if err != nil {
		return nil, err
	}
	if defaultSig != nil {
		in.DefaultSignatureID = defaultSig.ID
	}

	if draftID != "" {
		draft, err := u.draftUsecase.GetUserDraft(userID, draftID)
		if err != nil {
			return nil, err
		}
		if draft == nil {
			return nil, draftUsecase.ErrDraftNotFound
		}
		in.Draft = draft
	}

	return BuildSession(in), nil
}

func (u *composeUsecase) SubmitComposeSession(userID, courseID string, req SubmitRequest) (*draftdomain.MessageDraft, map[string]string, error) {
	if err := u.authorize(userID, courseID); err != nil {
		return nil, nil, err
	}

	if !req.SaveOnly {
		if fieldErrors := ValidateSubmission(req); len(fieldErrors) > 0 {
			return nil, fieldErrors, nil
		}
	}

	draft, err := u.draftUsecase.SaveDraft(userID, courseID, draftUsecase.DraftSaveRequest{
		DraftID:               req.DraftID,
		AlternateEmailID:      req.AlternateEmailID,
		Subject:               req.Subject,
		Body:                  req.Body,
		AdditionalEmails:      SplitAdditionalEmails(req.AdditionalEmails),
		SignatureID:           req.SignatureID,
		MessageType:           req.MessageType,
		ScheduledSendAt:       req.ScheduledSendAt,
		SendReceipt:           req.SendReceipt,
		SendToMentors:         req.SendToMentors,
		IncludedRecipientKeys: req.IncludedRecipientKeys,
		ExcludedRecipientKeys: req.ExcludedRecipientKeys,
	})
	if err != nil {
		return nil, nil, err
	}

	if req.SaveOnly {
		return draft, nil, nil
	}

	finalBody := draft.Body
	if draft.SignatureID != "" && draft.SignatureID != composedomain.NoneKey {
		signature, err := u.signatureUsecase.GetUserSignature(userID, draft.SignatureID)
		if err != nil {
			return nil, nil, err
		}
		if signature != nil {
			finalBody = signature.AppendToMessageBody(draft.Body)
		}
	}

	queued, err := u.draftUsecase.QueueDraft(userID, draft.ID, finalBody)
	if err != nil {
		return nil, nil, err
	}

	return queued, nil, nil
}

func (u *composeUsecase) SearchRecipients(userID, courseID, query string) ([]composedomain.SelectOption, error) {
	if err := u.authorize(userID, courseID); err != nil {
		return nil, err
	}

	directory, err := u.courseUsecase.GetCourseUserData(courseID)
	if err != nil {
		return nil, err
	}

	options := buildRecipientOptions(directory)
	if query == "" {
		return options, nil
	}

	threshold := fuzzy.Threshold(query)
	matched := make([]composedomain.SelectOption, 0)
	for _, opt := range options {
		if fuzzy.Match(query, opt.Label, threshold) {
			matched = append(matched, opt)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return fuzzy.Score(query, matched[i].Label) > fuzzy.Score(query, matched[j].Label)
	})

	return matched, nil
}

// authorize checks that the course exists and the user's role lets them
// compose in it
func (u *composeUsecase) authorize(userID, courseID string) error {
	if _, err := u.courseUsecase.GetCourse(courseID); err != nil {
		return err
	}

	allowed, err := u.courseUsecase.HasCapability(userID, courseID, coursedomain.CapabilityCompose)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrNotAllowed
	}
	return nil
}
