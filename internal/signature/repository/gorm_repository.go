package repository

import (
	"errors"
	"time"

	sigdomain "coursemail-backend/internal/signature/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormSignatureRepository implements SignatureRepository using GORM
type gormSignatureRepository struct {
	db *gorm.DB
}

// NewGormSignatureRepository creates a new GORM-based SignatureRepository
func NewGormSignatureRepository(db *gorm.DB) SignatureRepository {
	return &gormSignatureRepository{db: db}
}

func (r *gormSignatureRepository) Create(sig *sigdomain.Signature) error {
	if sig.ID == "" {
		sig.ID = uuid.New().String()
	}
	sig.CreatedAt = time.Now()
	sig.UpdatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sig).Error; err != nil {
			return err
		}
		if err := reconcileDefault(tx, sig.UserID, sig.ID); err != nil {
			return err
		}
		// Refresh so the returned record reflects any promotion
		return tx.First(sig, "id = ?", sig.ID).Error
	})
}

func (r *gormSignatureRepository) Update(sig *sigdomain.Signature) error {
	sig.UpdatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(sig).Error; err != nil {
			return err
		}
		if err := reconcileDefault(tx, sig.UserID, sig.ID); err != nil {
			return err
		}
		return tx.First(sig, "id = ?", sig.ID).Error
	})
}

func (r *gormSignatureRepository) SoftDelete(sig *sigdomain.Signature) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Drop the flag before deleting so the deleted row never holds it
		if err := tx.Model(&sigdomain.Signature{}).
			Where("id = ?", sig.ID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		if err := tx.Delete(&sigdomain.Signature{}, "id = ?", sig.ID).Error; err != nil {
			return err
		}
		return reconcileDefault(tx, sig.UserID, "")
	})
}

func (r *gormSignatureRepository) FindByID(id string) (*sigdomain.Signature, error) {
	var sig sigdomain.Signature
	err := r.db.Where("id = ?", id).First(&sig).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sig, nil
}

func (r *gormSignatureRepository) FindByUserID(userID string) ([]*sigdomain.Signature, error) {
	var sigs []*sigdomain.Signature
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&sigs).Error
	return sigs, err
}

func (r *gormSignatureRepository) CountActiveByTitle(userID, title, excludeID string) (int64, error) {
	var count int64
	query := r.db.Model(&sigdomain.Signature{}).
		Where("user_id = ? AND title = ?", userID, title)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

// reconcileDefault repairs the single-default invariant for a user's
// non-deleted signatures: zero signatures carry no default, one or more
// carry exactly one. preferredID names the record the triggering write wants
// flagged; it wins only if it explicitly holds the flag, and is the
// promotion target when no record holds it. With no preference the first
// flagged record (creation order) is kept, and the first record overall is
// promoted when none is flagged.
func reconcileDefault(tx *gorm.DB, userID, preferredID string) error {
	var sigs []*sigdomain.Signature
	if err := tx.Where("user_id = ?", userID).Order("created_at ASC").Find(&sigs).Error; err != nil {
		return err
	}
	if len(sigs) == 0 {
		return nil
	}

	var keep *sigdomain.Signature
	if preferredID != "" {
		for _, s := range sigs {
			if s.ID == preferredID && s.IsDefault {
				keep = s
				break
			}
		}
	}
	if keep == nil {
		for _, s := range sigs {
			if s.IsDefault {
				keep = s
				break
			}
		}
	}
	if keep == nil {
		// No default at all: promote the preferred record, else the first
		for _, s := range sigs {
			if s.ID == preferredID {
				keep = s
				break
			}
		}
		if keep == nil {
			keep = sigs[0]
		}
	}

	for _, s := range sigs {
		if s.ID == keep.ID && !s.IsDefault {
			if err := tx.Model(&sigdomain.Signature{}).
				Where("id = ?", s.ID).
				Update("is_default", true).Error; err != nil {
				return err
			}
		}
		if s.ID != keep.ID && s.IsDefault {
			if err := tx.Model(&sigdomain.Signature{}).
				Where("id = ?", s.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
