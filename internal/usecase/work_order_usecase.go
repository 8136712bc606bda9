package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"oscell/internal/domain/document"
	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"
)

const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePDF  = "application/pdf"

	archivePrefix = "work-orders"
)

var (
	ErrInvalidServiceValue   = errors.New("invalid service value")
	ErrInvalidWorkOrderDate  = errors.New("invalid work order date")
	ErrPresentationBlocked   = errors.New("print surface could not be opened")
	ErrRasterizerUnavailable = errors.New("rasterizer unavailable")
	ErrRenderFailed          = errors.New("work order rendering failed")
)

// Emission is the outcome of a successful print or download.
//
// Content is only set for downloads. NextDraft is the blank form to continue
// with, already carrying the next suggested number.
type Emission struct {
	Number      string
	Filename    string
	ContentType string
	Content     []byte
	Pages       int
	Counter     entities.WorkOrderCounter
	NextDraft   entities.WorkOrderDraft
}

// IWorkOrderUseCase drives the work order form.
//
// Emission order is fixed: validate, render, present, commit, reset. Any
// failure before the commit returns the error and leaves both the counter and
// the caller's draft as they were.
type IWorkOrderUseCase interface {
	NewDraft(ctx context.Context) (entities.WorkOrderDraft, error)
	Preview(draft entities.WorkOrderDraft) (document.PrintPage, error)
	RenderPreview(ctx context.Context, draft entities.WorkOrderDraft, w io.Writer) error
	RenderDownload(ctx context.Context, draft entities.WorkOrderDraft) (Emission, error)
	EmitForPrint(ctx context.Context, draft entities.WorkOrderDraft, surface interfaces.IPrintSurface) (Emission, error)
	EmitForDownload(ctx context.Context, draft entities.WorkOrderDraft) (Emission, error)
}

type WorkOrderUseCase struct {
	allocator  ISequenceAllocatorUseCase
	shop       document.ShopProfile
	renderer   interfaces.IPageRenderer
	rasterizer interfaces.IRasterizer
	encoder    interfaces.IPageEncoder
	archive    interfaces.IDocumentArchive
	scale      int
	now        func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

// NewWorkOrderUseCase wires the form to its backends. rasterizer and encoder
// may be nil, in which case downloads fail with ErrRasterizerUnavailable.
func NewWorkOrderUseCase(
	allocator ISequenceAllocatorUseCase,
	shop document.ShopProfile,
	renderer interfaces.IPageRenderer,
	rasterizer interfaces.IRasterizer,
	encoder interfaces.IPageEncoder,
	scale int,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		allocator:  allocator,
		shop:       shop,
		renderer:   renderer,
		rasterizer: rasterizer,
		encoder:    encoder,
		scale:      scale,
		now:        time.Now,
	}
}

// WithArchive keeps a copy of every downloaded file.
func (u *WorkOrderUseCase) WithArchive(archive interfaces.IDocumentArchive) *WorkOrderUseCase {
	u.archive = archive
	return u
}

func (u *WorkOrderUseCase) NewDraft(ctx context.Context) (entities.WorkOrderDraft, error) {
	n, err := u.allocator.SuggestNextNumber(ctx)
	if err != nil {
		return entities.WorkOrderDraft{}, err
	}
	return entities.NewWorkOrderDraft(n, u.now(), u.shop.DefaultTechnician), nil
}

func (u *WorkOrderUseCase) Preview(draft entities.WorkOrderDraft) (document.PrintPage, error) {
	if err := validateDraft(draft); err != nil {
		return document.PrintPage{}, err
	}
	doc := document.BuildWorkOrder(u.shop, draft, draft.TrimmedNumber())
	return document.NewPrintPage(doc), nil
}

// RenderPreview writes the print markup without presenting or committing.
func (u *WorkOrderUseCase) RenderPreview(ctx context.Context, draft entities.WorkOrderDraft, w io.Writer) error {
	page, err := u.Preview(draft)
	if err != nil {
		return err
	}
	if err := u.renderer.Render(w, page); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return nil
}

func (u *WorkOrderUseCase) EmitForPrint(ctx context.Context, draft entities.WorkOrderDraft, surface interfaces.IPrintSurface) (Emission, error) {
	page, err := u.Preview(draft)
	if err != nil {
		return Emission{}, err
	}

	w, err := surface.Open(ctx, page.Title)
	if err != nil {
		log.Printf("[workorder][usecase] print blocked number=%s err=%v", page.Number, err)
		return Emission{}, fmt.Errorf("%w: %w", ErrPresentationBlocked, err)
	}
	if err := u.renderer.Render(w, page); err != nil {
		_ = w.Close()
		log.Printf("[workorder][usecase] print render failed number=%s err=%v", page.Number, err)
		return Emission{}, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if err := w.Close(); err != nil {
		log.Printf("[workorder][usecase] print surface close failed number=%s err=%v", page.Number, err)
		return Emission{}, fmt.Errorf("%w: %w", ErrPresentationBlocked, err)
	}

	em, err := u.finish(ctx, draft)
	if err != nil {
		return Emission{}, err
	}
	em.ContentType = ContentTypeHTML
	log.Printf("[workorder][usecase] print success number=%s next=%s", em.Number, em.NextDraft.Number)
	return em, nil
}

// RenderDownload produces the paginated file without committing.
func (u *WorkOrderUseCase) RenderDownload(ctx context.Context, draft entities.WorkOrderDraft) (Emission, error) {
	page, err := u.Preview(draft)
	if err != nil {
		return Emission{}, err
	}
	if u.rasterizer == nil || u.encoder == nil {
		return Emission{}, ErrRasterizerUnavailable
	}

	img, err := u.rasterizer.Rasterize(ctx, page, u.scale)
	if err != nil {
		log.Printf("[workorder][usecase] rasterize failed number=%s err=%v", page.Number, err)
		return Emission{}, fmt.Errorf("%w: %w", ErrRasterizerUnavailable, err)
	}
	encoded, err := u.encoder.Encode(ctx, img, page.Title)
	if err != nil {
		log.Printf("[workorder][usecase] encode failed number=%s err=%v", page.Number, err)
		return Emission{}, fmt.Errorf("%w: %w", ErrRasterizerUnavailable, err)
	}

	return Emission{
		Number:      page.Number,
		Filename:    document.PDFFileName(page.Number),
		ContentType: ContentTypePDF,
		Content:     encoded.Content,
		Pages:       encoded.Pages,
	}, nil
}

func (u *WorkOrderUseCase) EmitForDownload(ctx context.Context, draft entities.WorkOrderDraft) (Emission, error) {
	rendered, err := u.RenderDownload(ctx, draft)
	if err != nil {
		return Emission{}, err
	}

	if u.archive != nil {
		key := path.Join(archivePrefix, rendered.Filename)
		if err := u.archive.Store(ctx, key, rendered.Content, rendered.ContentType); err != nil {
			log.Printf("[workorder][usecase] archive failed key=%s err=%v", key, err)
			return Emission{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}

	em, err := u.finish(ctx, draft)
	if err != nil {
		return Emission{}, err
	}
	em.Filename = rendered.Filename
	em.ContentType = rendered.ContentType
	em.Content = rendered.Content
	em.Pages = rendered.Pages
	log.Printf("[workorder][usecase] download success number=%s pages=%d next=%s", em.Number, em.Pages, em.NextDraft.Number)
	return em, nil
}

// finish commits the printed number once and resets the form.
func (u *WorkOrderUseCase) finish(ctx context.Context, draft entities.WorkOrderDraft) (Emission, error) {
	number := draft.TrimmedNumber()
	counter, err := u.allocator.Commit(ctx, number)
	if err != nil {
		return Emission{}, err
	}
	return Emission{
		Number:    number,
		Counter:   counter,
		NextDraft: draft.Reset(counter.NextNumber(), u.now()),
	}, nil
}

func validateDraft(draft entities.WorkOrderDraft) error {
	if _, err := ParseWorkOrderNumber(draft.Number); err != nil {
		return err
	}
	switch err := draft.Validate(); {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrDraftNumberRequired):
		return ErrInvalidWorkOrderNumber
	case errors.Is(err, entities.ErrDraftInvalidValue):
		return ErrInvalidServiceValue
	case errors.Is(err, entities.ErrDraftInvalidDate):
		return ErrInvalidWorkOrderDate
	default:
		return err
	}
}
