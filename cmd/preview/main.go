// preview renders a work order form to HTML or PDF without touching the
// counter. It is meant for checking layout changes against saved drafts.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	request "oscell/internal/adapter/http/dto/request"
	"oscell/internal/adapter/http/routes"
	"oscell/internal/adapter/render/htmlpage"
	"oscell/internal/adapter/render/pdf"
	"oscell/internal/adapter/render/raster"
	"oscell/internal/config"
	"oscell/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
)

const (
	formatHTML = "html"
	formatPDF  = "pdf"
)

var errUnknownFormat = errors.New("format must be html or pdf")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var draftPath, format, outPath string
	var scale int

	flagSet := pflag.NewFlagSet("preview", pflag.ContinueOnError)
	flagSet.StringVar(&draftPath, "draft", "-", "work order JSON file, - for stdin")
	flagSet.StringVar(&format, "format", formatPDF, "output format: html or pdf")
	flagSet.StringVarP(&outPath, "out", "o", "", "output file (default: stdout for html, Ordem_Servico_<n>.pdf for pdf)")
	flagSet.IntVar(&scale, "scale", 0, "raster upscale factor (default: RENDER_SCALE)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if scale == 0 {
		scale = cfg.RenderScale
	}

	draft, err := readDraft(draftPath, stdin)
	if err != nil {
		return err
	}

	rasterizer, err := raster.New()
	if err != nil {
		return err
	}
	// Rendering never reaches the allocator; only emission commits.
	uc := usecase.NewWorkOrderUseCase(nil, routes.ShopProfile(cfg.Shop), htmlpage.New(false), rasterizer, pdf.NewEncoder(cfg.Shop.Name), scale)

	ctx := context.Background()
	switch strings.ToLower(format) {
	case formatHTML:
		var buf bytes.Buffer
		if err := uc.RenderPreview(ctx, draft.ToEntity(), &buf); err != nil {
			return err
		}
		return writeOutput(outPath, stdout, buf.Bytes())
	case formatPDF:
		em, err := uc.RenderDownload(ctx, draft.ToEntity())
		if err != nil {
			return err
		}
		if outPath == "" {
			outPath = em.Filename
		}
		log.Printf("[preview] wrote %s pages=%d", outPath, em.Pages)
		return writeOutput(outPath, stdout, em.Content)
	default:
		return fmt.Errorf("%w: got %q", errUnknownFormat, format)
	}
}

func readDraft(path string, stdin io.Reader) (request.WorkOrderDraftRequest, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return request.WorkOrderDraftRequest{}, err
		}
		defer f.Close()
		r = f
	}

	var draft request.WorkOrderDraftRequest
	if err := json.NewDecoder(r).Decode(&draft); err != nil {
		return request.WorkOrderDraftRequest{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func writeOutput(path string, stdout io.Writer, content []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(content)
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
