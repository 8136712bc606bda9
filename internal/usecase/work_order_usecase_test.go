package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"testing"
	"time"

	"oscell/internal/domain/document"
	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"
	mock_interfaces "oscell/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testShopProfile = document.ShopProfile{
	Name:              "Jordan Cell",
	Tagline:           "Assistência Técnica Especializada",
	CurrencyPrefix:    "R$",
	WarrantyText:      "Garantia de 90 dias.",
	DefaultTechnician: "Jordan Cell",
}

var fixedNow = time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

type nopWriteCloser struct {
	bytes.Buffer
	closed bool
}

func (w *nopWriteCloser) Close() error {
	w.closed = true
	return nil
}

type workOrderFixture struct {
	uc         *WorkOrderUseCase
	counters   *memoryCounterRepo
	renderer   *mock_interfaces.MockIPageRenderer
	rasterizer *mock_interfaces.MockIRasterizer
	encoder    *mock_interfaces.MockIPageEncoder
	surface    *mock_interfaces.MockIPrintSurface
}

func newWorkOrderFixture(t *testing.T) workOrderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := workOrderFixture{
		counters:   newMemoryCounterRepo(),
		renderer:   mock_interfaces.NewMockIPageRenderer(ctrl),
		rasterizer: mock_interfaces.NewMockIRasterizer(ctrl),
		encoder:    mock_interfaces.NewMockIPageEncoder(ctrl),
		surface:    mock_interfaces.NewMockIPrintSurface(ctrl),
	}
	allocator := NewSequenceAllocatorUseCase(f.counters, testInstallation, 225)
	f.uc = NewWorkOrderUseCase(allocator, testShopProfile, f.renderer, f.rasterizer, f.encoder, 2)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func (f workOrderFixture) committed(t *testing.T) bool {
	t.Helper()
	_, ok := f.counters.counters[entities.CounterPath(testInstallation)]
	return ok
}

func filledDraft(number string) entities.WorkOrderDraft {
	return entities.WorkOrderDraft{
		Number:             number,
		Date:               "2026-10-19",
		ClientName:         "Maria Souza",
		ClientPhone:        "(11) 98888-7777",
		DeviceName:         "iPhone 11",
		ProblemReported:    "Tela quebrada",
		ServiceDescription: "Troca de tela",
		ServiceValue:       "350,00",
		TechnicianName:     "Carlos",
	}
}

func TestWorkOrderUseCase_NewDraft(t *testing.T) {
	f := newWorkOrderFixture(t)

	d, err := f.uc.NewDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Number != "226" || d.Date != "2026-10-19" || d.TechnicianName != "Jordan Cell" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if d.ClientName != "" || d.ServiceValue != "" {
		t.Fatalf("draft must start blank: %+v", d)
	}
}

func TestWorkOrderUseCase_Preview(t *testing.T) {
	f := newWorkOrderFixture(t)

	cases := []struct {
		name  string
		draft entities.WorkOrderDraft
		want  error
	}{
		{"blank number", filledDraft("  "), ErrInvalidWorkOrderNumber},
		{"text number", filledDraft("abc"), ErrInvalidWorkOrderNumber},
		{"bad value", func() entities.WorkOrderDraft { d := filledDraft("226"); d.ServiceValue = "dez"; return d }(), ErrInvalidServiceValue},
		{"negative value", func() entities.WorkOrderDraft { d := filledDraft("226"); d.ServiceValue = "-5"; return d }(), ErrInvalidServiceValue},
		{"bad date", func() entities.WorkOrderDraft { d := filledDraft("226"); d.Date = "19/10/2026"; return d }(), ErrInvalidWorkOrderDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.uc.Preview(tc.draft); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("valid draft", func(t *testing.T) {
		page, err := f.uc.Preview(filledDraft(" 226 "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Number != "226" || page.Title != "Ordem de Serviço 226" {
			t.Fatalf("unexpected page: %+v", page)
		}
		if f.committed(t) {
			t.Fatalf("preview must not commit")
		}
	})
}

func TestWorkOrderUseCase_EmitForPrint(t *testing.T) {
	t.Run("blocked surface does not commit", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		f.surface.EXPECT().Open(gomock.Any(), "Ordem de Serviço 226").Return(nil, errors.New("popup blocked"))

		_, err := f.uc.EmitForPrint(context.Background(), filledDraft("226"), f.surface)
		if !errors.Is(err, ErrPresentationBlocked) {
			t.Fatalf("expected ErrPresentationBlocked, got %v", err)
		}
		if f.committed(t) {
			t.Fatalf("counter must stay untouched")
		}
	})

	t.Run("render failure does not commit", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		w := &nopWriteCloser{}
		f.surface.EXPECT().Open(gomock.Any(), gomock.Any()).Return(w, nil)
		f.renderer.EXPECT().Render(w, gomock.Any()).Return(errors.New("template"))

		_, err := f.uc.EmitForPrint(context.Background(), filledDraft("226"), f.surface)
		if !errors.Is(err, ErrRenderFailed) {
			t.Fatalf("expected ErrRenderFailed, got %v", err)
		}
		if !w.closed || f.committed(t) {
			t.Fatalf("surface must be closed and counter untouched")
		}
	})

	t.Run("success commits once and resets", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		w := &nopWriteCloser{}
		f.surface.EXPECT().Open(gomock.Any(), "Ordem de Serviço 226").Return(w, nil)
		f.renderer.EXPECT().Render(w, gomock.AssignableToTypeOf(document.PrintPage{})).DoAndReturn(
			func(out io.Writer, page document.PrintPage) error {
				if page.Copies[0].Number != "226" || page.Copies[1].Number != "226" {
					t.Fatalf("unexpected copies: %+v", page.Copies)
				}
				_, err := out.Write([]byte("<html></html>"))
				return err
			},
		)

		em, err := f.uc.EmitForPrint(context.Background(), filledDraft("226"), f.surface)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if em.Number != "226" || em.Counter.LastIssuedNumber != 226 || em.ContentType != ContentTypeHTML {
			t.Fatalf("unexpected emission: %+v", em)
		}
		next := em.NextDraft
		if next.Number != "227" || next.ClientName != "" || next.TechnicianName != "Carlos" || next.Date != "2026-10-19" {
			t.Fatalf("unexpected next draft: %+v", next)
		}
		if w.String() != "<html></html>" {
			t.Fatalf("unexpected surface content %q", w.String())
		}
	})

	t.Run("override number moves suggestion past it", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		f.surface.EXPECT().Open(gomock.Any(), gomock.Any()).Return(&nopWriteCloser{}, nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)

		em, err := f.uc.EmitForPrint(context.Background(), filledDraft("300"), f.surface)
		if err != nil || em.NextDraft.Number != "301" {
			t.Fatalf("expected next 301, got %+v (%v)", em, err)
		}
	})
}

func TestWorkOrderUseCase_EmitForDownload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 60))

	t.Run("missing rasterizer", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		f.uc.rasterizer = nil

		_, err := f.uc.EmitForDownload(context.Background(), filledDraft("226"))
		if !errors.Is(err, ErrRasterizerUnavailable) {
			t.Fatalf("expected ErrRasterizerUnavailable, got %v", err)
		}
		if f.committed(t) {
			t.Fatalf("counter must stay untouched")
		}
	})

	t.Run("rasterize failure", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		f.rasterizer.EXPECT().Rasterize(gomock.Any(), gomock.Any(), 2).Return(nil, errors.New("font"))

		_, err := f.uc.EmitForDownload(context.Background(), filledDraft("226"))
		if !errors.Is(err, ErrRasterizerUnavailable) || f.committed(t) {
			t.Fatalf("expected ErrRasterizerUnavailable without commit, got %v", err)
		}
	})

	t.Run("invalid draft never reaches the rasterizer", func(t *testing.T) {
		f := newWorkOrderFixture(t)

		_, err := f.uc.EmitForDownload(context.Background(), filledDraft("12b"))
		if !errors.Is(err, ErrInvalidWorkOrderNumber) {
			t.Fatalf("expected ErrInvalidWorkOrderNumber, got %v", err)
		}
	})

	t.Run("archive failure does not commit", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		archive := mock_interfaces.NewMockIDocumentArchive(gomock.NewController(t))
		f.uc.WithArchive(archive)

		f.rasterizer.EXPECT().Rasterize(gomock.Any(), gomock.Any(), 2).Return(img, nil)
		f.encoder.EXPECT().Encode(gomock.Any(), img, "Ordem de Serviço 226").
			Return(interfaces.EncodedDocument{Content: []byte("%PDF"), Pages: 1}, nil)
		archive.EXPECT().Store(gomock.Any(), "work-orders/Ordem_Servico_226.pdf", []byte("%PDF"), ContentTypePDF).
			Return(errors.New("s3"))

		_, err := f.uc.EmitForDownload(context.Background(), filledDraft("226"))
		if !errors.Is(err, ErrStorage) || f.committed(t) {
			t.Fatalf("expected ErrStorage without commit, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newWorkOrderFixture(t)
		archive := mock_interfaces.NewMockIDocumentArchive(gomock.NewController(t))
		f.uc.WithArchive(archive)

		f.rasterizer.EXPECT().Rasterize(gomock.Any(), gomock.Any(), 2).Return(img, nil)
		f.encoder.EXPECT().Encode(gomock.Any(), img, gomock.Any()).
			Return(interfaces.EncodedDocument{Content: []byte("%PDF"), Pages: 2}, nil)
		archive.EXPECT().Store(gomock.Any(), "work-orders/Ordem_Servico_226.pdf", gomock.Any(), ContentTypePDF).Return(nil)

		em, err := f.uc.EmitForDownload(context.Background(), filledDraft("226"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if em.Filename != "Ordem_Servico_226.pdf" || em.Pages != 2 || string(em.Content) != "%PDF" {
			t.Fatalf("unexpected emission: %+v", em)
		}
		if em.Counter.LastIssuedNumber != 226 || em.NextDraft.Number != "227" {
			t.Fatalf("unexpected commit/reset: %+v", em)
		}
	})
}

func TestWorkOrderUseCase_RenderDownloadDoesNotCommit(t *testing.T) {
	f := newWorkOrderFixture(t)
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	f.rasterizer.EXPECT().Rasterize(gomock.Any(), gomock.Any(), 2).Return(img, nil)
	f.encoder.EXPECT().Encode(gomock.Any(), img, gomock.Any()).
		Return(interfaces.EncodedDocument{Content: []byte("%PDF"), Pages: 1}, nil)

	em, err := f.uc.RenderDownload(context.Background(), filledDraft("226"))
	if err != nil || em.Filename != "Ordem_Servico_226.pdf" {
		t.Fatalf("unexpected result %+v (%v)", em, err)
	}
	if f.committed(t) {
		t.Fatalf("render must not commit")
	}
}
