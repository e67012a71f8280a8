package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/pdf"
	"orcafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrBudgetNotFound  = errors.New("budget not found")
	ErrInvalidBudgetID = errors.New("invalid budget id")
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidQuantity = errors.New("invalid line item quantity")
	ErrInvalidPrice    = errors.New("invalid line item price")
	ErrBudgetHasNoPDF  = errors.New("budget has no pdf file")
	ErrPDFRender       = errors.New("pdf render failed")
	ErrPDFUpload       = errors.New("pdf upload failed")
	ErrBudgetPersist   = errors.New("budget persist failed")
)

const downloadURLTTL = 15 * time.Minute

// BudgetDraft is the editor state accepted at the write boundary. One strict
// schema for both creation and update; the stored total is never taken from
// the caller.
type BudgetDraft struct {
	Client    entities.Client
	Items     []entities.LineItem
	Template  entities.BudgetTemplate
	Notes     string
	CreatedAt string
	PDFFileID string
}

// IBudgetUseCase exposes the budget document lifecycle.
//
// Save/update orchestration is linear: render (tile the rasterized preview
// into a PDF) -> upload -> persist -> best-effort cleanup of the replaced
// blob. Completed steps are never rolled back.
type IBudgetUseCase interface {
	List(ctx context.Context) ([]entities.Budget, error)
	Get(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, draft BudgetDraft) (entities.Budget, error)
	Update(ctx context.Context, id string, draft BudgetDraft) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	AttachPDF(ctx context.Context, id string, previewPNG []byte) (entities.Budget, error)
	DownloadURL(ctx context.Context, id string) (string, error)
}

type BudgetUseCase struct {
	repo    interfaces.IBudgetRepository
	blobs   interfaces.IBlobStore
	builder *pdf.Builder
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, blobs interfaces.IBlobStore, builder *pdf.Builder) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, blobs: blobs, builder: builder}
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

func (u *BudgetUseCase) Get(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) Create(ctx context.Context, draft BudgetDraft) (entities.Budget, error) {
	if err := validateDraft(draft); err != nil {
		return entities.Budget{}, err
	}

	createdAt := strings.TrimSpace(draft.CreatedAt)
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	b := entities.Budget{
		ID:        uuid.NewString(),
		Client:    draft.Client,
		Items:     normalizeItems(draft.Items),
		Template:  draft.Template,
		Notes:     draft.Notes,
		CreatedAt: createdAt,
		PDFFileID: draft.PDFFileID,
	}
	b.Total = entities.ComputeTotal(b.Items)

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("%w: %v", ErrBudgetPersist, err)
	}
	return created, nil
}

func (u *BudgetUseCase) Update(ctx context.Context, id string, draft BudgetDraft) (entities.Budget, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := validateDraft(draft); err != nil {
		return entities.Budget{}, err
	}

	b := entities.Budget{
		ID:        existing.ID,
		Client:    draft.Client,
		Items:     normalizeItems(draft.Items),
		Template:  draft.Template,
		Notes:     draft.Notes,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		PDFFileID: existing.PDFFileID,
	}
	if draft.PDFFileID != "" {
		b.PDFFileID = draft.PDFFileID
	}
	b.Total = entities.ComputeTotal(b.Items)

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("%w: %v", ErrBudgetPersist, err)
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	// The replaced blob is removed only after the record points at the new
	// one. A failure here must not abort the update.
	u.cleanupBlob(ctx, existing.PDFFileID, updated.PDFFileID)

	return updated, nil
}

// Delete removes the stored PDF and then the record. Both steps are
// idempotent (a missing blob is a no-op, DeleteItem is unconditional), and
// the record is kept whenever blob cleanup fails so that a retry still holds
// the reference and eventually removes both.
func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	b, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	if b.PDFFileID != "" {
		if err := u.blobs.Delete(ctx, b.PDFFileID); err != nil {
			return fmt.Errorf("blob cleanup for budget %s: %w", b.ID, err)
		}
	}
	if err := u.repo.Delete(ctx, b.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrBudgetPersist, err)
	}
	return nil
}

func (u *BudgetUseCase) AttachPDF(ctx context.Context, id string, previewPNG []byte) (entities.Budget, error) {
	b, err := u.Get(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	res, err := u.builder.FromPNG(previewPNG)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("%w: %v", ErrPDFRender, err)
	}

	key := fmt.Sprintf("budgets/%s/%s.pdf", b.ID, uuid.NewString())
	if err := u.blobs.Upload(ctx, key, "application/pdf", res.Bytes); err != nil {
		return entities.Budget{}, fmt.Errorf("%w: %v", ErrPDFUpload, err)
	}

	oldKey := b.PDFFileID
	b.PDFFileID = key
	b.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("%w: %v", ErrBudgetPersist, err)
	}
	if updated.ID == "" {
		// Deleted out from under us after the upload; the fresh blob is an
		// orphan, remove it on the way out.
		u.cleanupBlob(ctx, key, "")
		return entities.Budget{}, ErrBudgetNotFound
	}

	log.Infof("budget %s pdf attached: %d pages, %d bytes", b.ID, res.PageCount, len(res.Bytes))
	u.cleanupBlob(ctx, oldKey, key)

	return updated, nil
}

func (u *BudgetUseCase) DownloadURL(ctx context.Context, id string) (string, error) {
	b, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if b.PDFFileID == "" {
		return "", ErrBudgetHasNoPDF
	}
	return u.blobs.PresignDownload(ctx, b.PDFFileID, downloadURLTTL)
}

func (u *BudgetUseCase) cleanupBlob(ctx context.Context, key, current string) {
	if key == "" || key == current {
		return
	}
	if err := u.blobs.Delete(ctx, key); err != nil {
		log.Warnf("best-effort cleanup of blob %s failed: %v", key, err)
	}
}

func validateDraft(d BudgetDraft) error {
	if !d.Template.IsValid() {
		return ErrInvalidTemplate
	}
	for _, it := range d.Items {
		if it.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if it.UnitPrice < 0 {
			return ErrInvalidPrice
		}
	}
	return nil
}

func normalizeItems(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	copy(out, items)
	for i := range out {
		if strings.TrimSpace(out[i].ID) == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}
