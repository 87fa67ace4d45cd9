package usecase

import (
	"strings"

	sigdomain "coursemail-backend/internal/signature/domain"
	"coursemail-backend/internal/signature/repository"
	"coursemail-backend/pkg/sanitize"
)

// signatureUsecase implements SignatureUsecase interface
type signatureUsecase struct {
	sigRepo repository.SignatureRepository
}

// NewSignatureUsecase creates a new instance of signatureUsecase
func NewSignatureUsecase(sigRepo repository.SignatureRepository) SignatureUsecase {
	return &signatureUsecase{
		sigRepo: sigRepo,
	}
}

func (u *signatureUsecase) CreateSignature(userID, title, body string, isDefault bool) (*sigdomain.Signature, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if body == "" {
		return nil, ErrEmptyBody
	}

	count, err := u.sigRepo.CountActiveByTitle(userID, title, "")
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateTitle
	}

	sig := &sigdomain.Signature{
		UserID:    userID,
		Title:     title,
		Body:      sanitize.HTML(body),
		IsDefault: isDefault,
	}

	if err := u.sigRepo.Create(sig); err != nil {
		return nil, err
	}

	return sig, nil
}

func (u *signatureUsecase) UpdateSignature(userID, signatureID string, updates SignatureUpdateRequest) (*sigdomain.Signature, error) {
	sig, err := u.GetUserSignature(userID, signatureID)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, ErrNotFound
	}

	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		count, err := u.sigRepo.CountActiveByTitle(userID, title, sig.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateTitle
		}
		sig.Title = title
	}
	if updates.Body != nil {
		body := strings.TrimSpace(*updates.Body)
		if body == "" {
			return nil, ErrEmptyBody
		}
		sig.Body = sanitize.HTML(body)
	}
	if updates.IsDefault != nil {
		sig.IsDefault = *updates.IsDefault
	}

	if err := u.sigRepo.Update(sig); err != nil {
		return nil, err
	}

	return sig, nil
}

func (u *signatureUsecase) DeleteSignature(userID, signatureID string) error {
	sig, err := u.GetUserSignature(userID, signatureID)
	if err != nil {
		return err
	}
	if sig == nil {
		return ErrNotFound
	}
	return u.sigRepo.SoftDelete(sig)
}

func (u *signatureUsecase) GetUserSignature(userID, signatureID string) (*sigdomain.Signature, error) {
	sig, err := u.sigRepo.FindByID(signatureID)
	if err != nil {
		return nil, err
	}
	if sig == nil || sig.UserID != userID {
		return nil, nil
	}
	return sig, nil
}

func (u *signatureUsecase) ListForUser(userID string) ([]sigdomain.Option, error) {
	sigs, err := u.sigRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	options := make([]sigdomain.Option, 0, len(sigs))
	for _, sig := range sigs {
		options = append(options, sigdomain.Option{
			ID:           sig.ID,
			DisplayTitle: sig.DisplayTitle(),
		})
	}

	return options, nil
}

func (u *signatureUsecase) GetDefaultForUser(userID string) (*sigdomain.Signature, error) {
	sigs, err := u.sigRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	for _, sig := range sigs {
		if sig.IsDefault {
			return sig, nil
		}
	}
	return nil, nil
}
