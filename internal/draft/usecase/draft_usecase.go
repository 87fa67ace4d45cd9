package usecase

import (
	"errors"
	"time"

	draftdomain "coursemail-backend/internal/draft/domain"
	"coursemail-backend/internal/draft/repository"
	"coursemail-backend/pkg/sanitize"
)

var ErrDraftNotFound = errors.New("draft not found")

// draftUsecase implements DraftUsecase interface
type draftUsecase struct {
	draftRepo repository.DraftRepository
}

// NewDraftUsecase creates a new instance of draftUsecase
func NewDraftUsecase(draftRepo repository.DraftRepository) DraftUsecase {
	return &draftUsecase{
		draftRepo: draftRepo,
	}
}

func (u *draftUsecase) SaveDraft(userID, courseID string, req DraftSaveRequest) (*draftdomain.MessageDraft, error) {
	var draft *draftdomain.MessageDraft

	if req.DraftID != "" {
		existing, err := u.GetUserDraft(userID, req.DraftID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrDraftNotFound
		}
		draft = existing
	} else {
		draft = &draftdomain.MessageDraft{
			CourseID: courseID,
			UserID:   userID,
		}
	}

	draft.AlternateEmailID = defaultKey(req.AlternateEmailID)
	draft.Subject = req.Subject
	draft.Body = sanitize.HTML(req.Body)
	draft.AdditionalEmails = req.AdditionalEmails
	draft.SignatureID = defaultKey(req.SignatureID)
	draft.MessageType = req.MessageType
	draft.ScheduledSendAt = req.ScheduledSendAt
	draft.SendReceipt = req.SendReceipt
	draft.SendToMentors = req.SendToMentors
	draft.IncludedRecipientKeys = req.IncludedRecipientKeys
	draft.ExcludedRecipientKeys = req.ExcludedRecipientKeys

	if draft.ID == "" {
		if err := u.draftRepo.Create(draft); err != nil {
			return nil, err
		}
	} else {
		if err := u.draftRepo.Update(draft); err != nil {
			return nil, err
		}
	}

	return draft, nil
}

func (u *draftUsecase) GetUserDraft(userID, draftID string) (*draftdomain.MessageDraft, error) {
	draft, err := u.draftRepo.FindByID(draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.UserID != userID || draft.Status != draftdomain.DraftStatusDraft {
		return nil, nil
	}
	return draft, nil
}

func (u *draftUsecase) GetCourseDrafts(userID, courseID string) ([]*draftdomain.MessageDraft, error) {
	return u.draftRepo.FindByUser(userID, courseID)
}

func (u *draftUsecase) DeleteDraft(userID, draftID string) error {
	draft, err := u.GetUserDraft(userID, draftID)
	if err != nil {
		return err
	}
	if draft == nil {
		return ErrDraftNotFound
	}
	return u.draftRepo.Delete(draft.ID)
}

func (u *draftUsecase) QueueDraft(userID, draftID, finalBody string) (*draftdomain.MessageDraft, error) {
	draft, err := u.GetUserDraft(userID, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	now := time.Now()
	draft.Body = finalBody
	draft.Status = draftdomain.DraftStatusQueued
	draft.QueuedAt = &now

	if err := u.draftRepo.Update(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// defaultKey maps an empty selection to the "none" sentinel
func defaultKey(key string) string {
	if key == "" {
		return "0"
	}
	return key
}
