package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"zogiraa_backend/internal/logger"
	"zogiraa_backend/internal/models"
	"zogiraa_backend/internal/repositories"
	"zogiraa_backend/internal/services/dto"
	"zogiraa_backend/pkg/apperrors"
)

type ProfileService interface {
	// GetStatus returns the wizard position and the stored document.
	// An account with no document yet reads as step 1, incomplete,
	// profile null.
	GetStatus(ctx context.Context, userID string, role models.UserRole) (*dto.ProfileStatusResponse, error)
	// ApplyStep merges one step's patch into the document, creating it
	// on first use. The final step runs the full-document validator
	// before the completion flag flips.
	ApplyStep(ctx context.Context, userID string, role models.UserRole, req dto.StepUpdateRequest) (*dto.StepUpdateResponse, error)
	// CompletionStatus is the narrow read used by route guards.
	CompletionStatus(userID string, role models.UserRole) (step int, complete bool, err error)
}

type ProfileServiceImpl struct {
	repo repositories.ProfileRepository
}

func NewProfileService(repo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{repo: repo}
}

/*
roleDescriptor folds the three per-role wizards into one update path.
Each role contributes its step count, its lazily-created document, its
field allowlist (via the patch type) and its final-step validator; the
step state machine itself is role-agnostic.
*/
type roleDescriptor struct {
	maxStep  int
	load     func(r repositories.ProfileRepository, userID string) (models.StepDocument, error)
	create   func(r repositories.ProfileRepository, userID string) (models.StepDocument, error)
	apply    func(doc models.StepDocument, data json.RawMessage) error
	validate func(doc models.StepDocument) []string
	save     func(r repositories.ProfileRepository, doc models.StepDocument) error
}

var roleDescriptors = map[models.UserRole]roleDescriptor{
	models.UserRoleWorker: {
		maxStep: models.WorkerMaxStep,
		load: func(r repositories.ProfileRepository, userID string) (models.StepDocument, error) {
			return r.FindWorkerByUserID(userID)
		},
		create: func(r repositories.ProfileRepository, userID string) (models.StepDocument, error) {
			p := &models.WorkerProfile{UserID: userID, ProfileCompletionStep: 1}
			return p, r.CreateWorker(p)
		},
		apply: func(doc models.StepDocument, data json.RawMessage) error {
			var patch dto.WorkerProfileUpdate
			if err := decodeStrict(data, &patch); err != nil {
				return err
			}
			patch.Apply(doc.(*models.WorkerProfile))
			return nil
		},
		validate: func(doc models.StepDocument) []string {
			return missingWorkerFields(doc.(*models.WorkerProfile))
		},
		save: func(r repositories.ProfileRepository, doc models.StepDocument) error {
			return r.SaveWorker(doc.(*models.WorkerProfile))
		},
	},
	models.UserRoleEmployer: {
		maxStep: models.EmployerMaxStep,
		load: func(r repositories.ProfileRepository, userID string) (models.StepDocument, error) {
			return r.FindEmployerByUserID(userID)
		},
		create: func(r repositories.ProfileRepository, userID string) (models.StepDocument, error) {
			p := &models.EmployerProfile{UserID: userID, ProfileCompletionStep: 1}
			return p, r.CreateEmployer(p)
		},
		apply: func(doc models.StepDocument, data json.RawMessage) error {
			var patch dto.EmployerProfileUpdate
			if err := decodeStrict(data, &patch); err != nil {
				return err
			}
			patch.Apply(doc.(*models.EmployerProfile))
			return nil
		},
		validate: func(doc models.StepDocument) []string {
			return missingEmployerFields(doc.(*models.EmployerProfile))
		},
		save: func(r repositories.ProfileRepository, doc models.StepDocument) error {
			return r.SaveEmployer(doc.(*models.EmployerProfile))
		},
	},
	models.UserRoleSupplier: {
		maxStep: models.SupplierMaxStep,
		load: func(r repositories.ProfileRepository, userID string) (models.StepDocument, error) {
			return r.FindSupplierByUserID(userID)
		},
		create: func(r repositories.ProfileRepository, userID string) (models.StepDocument, error) {
			p := &models.SupplierProfile{UserID: userID, ProfileCompletionStep: 1}
			return p, r.CreateSupplier(p)
		},
		apply: func(doc models.StepDocument, data json.RawMessage) error {
			var patch dto.SupplierProfileUpdate
			if err := decodeStrict(data, &patch); err != nil {
				return err
			}
			patch.Apply(doc.(*models.SupplierProfile))
			return nil
		},
		validate: func(doc models.StepDocument) []string {
			return missingSupplierFields(doc.(*models.SupplierProfile))
		},
		save: func(r repositories.ProfileRepository, doc models.StepDocument) error {
			return r.SaveSupplier(doc.(*models.SupplierProfile))
		},
	},
}

func (s *ProfileServiceImpl) GetStatus(ctx context.Context, userID string, role models.UserRole) (*dto.ProfileStatusResponse, error) {
	desc, ok := roleDescriptors[role]
	if !ok {
		return nil, apperrors.ErrInvalidRole
	}

	doc, err := desc.load(s.repo, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return &dto.ProfileStatusResponse{
				IsProfileComplete:     false,
				ProfileCompletionStep: 1,
				Profile:               nil,
				Role:                  role,
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileStatusResponse{
		IsProfileComplete:     doc.Complete(),
		ProfileCompletionStep: doc.CompletionStep(),
		Profile:               doc,
		Role:                  role,
	}, nil
}

func (s *ProfileServiceImpl) ApplyStep(ctx context.Context, userID string, role models.UserRole, req dto.StepUpdateRequest) (*dto.StepUpdateResponse, error) {
	desc, ok := roleDescriptors[role]
	if !ok {
		return nil, apperrors.ErrInvalidRole
	}
	if req.Step < 1 || req.Step > desc.maxStep {
		return nil, apperrors.ErrInvalidStep(desc.maxStep)
	}

	doc, err := desc.load(s.repo, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		doc, err = desc.create(s.repo, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "profile created", "userID", userID, "role", string(role))
	}

	if err := desc.apply(doc, req.Data); err != nil {
		return nil, apperrors.ErrInvalidStepData(err)
	}

	// Merged fields persist even when the final-step validator fails:
	// the client resubmits only the missing fields, not the whole form.
	var incomplete *apperrors.AppError
	if req.Step == desc.maxStep {
		if missing := desc.validate(doc); len(missing) > 0 {
			incomplete = apperrors.ErrProfileIncomplete(missing)
		} else {
			doc.SetCompletionStep(desc.maxStep)
			doc.MarkComplete()
		}
	} else if next := req.Step + 1; next > doc.CompletionStep() {
		doc.SetCompletionStep(next)
	}

	if err := desc.save(s.repo, doc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if incomplete != nil {
		return nil, incomplete
	}

	logger.CtxInfo(ctx, "profile step applied",
		"userID", userID,
		"role", string(role),
		"step", req.Step,
		"complete", doc.Complete(),
	)

	return &dto.StepUpdateResponse{
		Success:               true,
		Profile:               doc,
		ProfileCompletionStep: doc.CompletionStep(),
		IsProfileComplete:     doc.Complete(),
	}, nil
}

func (s *ProfileServiceImpl) CompletionStatus(userID string, role models.UserRole) (int, bool, error) {
	desc, ok := roleDescriptors[role]
	if !ok {
		return 0, false, apperrors.ErrInvalidRole
	}
	doc, err := desc.load(s.repo, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return 1, false, nil
		}
		return 0, false, err
	}
	return doc.CompletionStep(), doc.Complete(), nil
}

// decodeStrict rejects non-object patches and patches carrying keys
// outside the role's field allowlist, so clients cannot write
// completion flags or foreign keys.
func decodeStrict(data json.RawMessage, dst interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("patch must be a JSON object")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
