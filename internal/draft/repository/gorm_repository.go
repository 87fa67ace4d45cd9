package repository

import (
	"errors"
	"time"

	draftdomain "coursemail-backend/internal/draft/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormDraftRepository implements DraftRepository using GORM
type gormDraftRepository struct {
	db *gorm.DB
}

// NewGormDraftRepository creates a new GORM-based DraftRepository
func NewGormDraftRepository(db *gorm.DB) DraftRepository {
	return &gormDraftRepository{db: db}
}

func (r *gormDraftRepository) Create(draft *draftdomain.MessageDraft) error {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	if draft.Status == "" {
		draft.Status = draftdomain.DraftStatusDraft
	}
	ensureArrays(draft)
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = time.Now()
	return r.db.Create(draft).Error
}

func (r *gormDraftRepository) Update(draft *draftdomain.MessageDraft) error {
	ensureArrays(draft)
	draft.UpdatedAt = time.Now()
	return r.db.Save(draft).Error
}

func (r *gormDraftRepository) FindByID(id string) (*draftdomain.MessageDraft, error) {
	var draft draftdomain.MessageDraft
	err := r.db.Where("id = ?", id).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

func (r *gormDraftRepository) FindByUser(userID, courseID string) ([]*draftdomain.MessageDraft, error) {
	var drafts []*draftdomain.MessageDraft
	query := r.db.Where("user_id = ? AND status = ?", userID, draftdomain.DraftStatusDraft)
	if courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	err := query.Order("updated_at DESC").Find(&drafts).Error
	if err != nil {
		return nil, err
	}
	for _, draft := range drafts {
		ensureArrays(draft)
	}
	return drafts, nil
}

func (r *gormDraftRepository) Delete(id string) error {
	return r.db.Delete(&draftdomain.MessageDraft{}, "id = ?", id).Error
}

func (r *gormDraftRepository) FindDueQueued(now time.Time) ([]*draftdomain.MessageDraft, error) {
	var drafts []*draftdomain.MessageDraft
	err := r.db.Where("status = ? AND (scheduled_send_at IS NULL OR scheduled_send_at <= ?)",
		draftdomain.DraftStatusQueued, now).Find(&drafts).Error
	return drafts, err
}

func (r *gormDraftRepository) MarkDispatched(id string) error {
	return r.db.Model(&draftdomain.MessageDraft{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     draftdomain.DraftStatusDispatched,
			"updated_at": time.Now(),
		}).Error
}

// ensureArrays keeps the JSON-array columns non-nil
func ensureArrays(draft *draftdomain.MessageDraft) {
	if draft.AdditionalEmails == nil {
		draft.AdditionalEmails = draftdomain.StringArray{}
	}
	if draft.IncludedRecipientKeys == nil {
		draft.IncludedRecipientKeys = draftdomain.StringArray{}
	}
	if draft.ExcludedRecipientKeys == nil {
		draft.ExcludedRecipientKeys = draftdomain.StringArray{}
	}
}
