package export

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"compliance-service/internal/model"
	"compliance-service/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// bundleManifest is written into the archive next to the documents.
type bundleManifest struct {
	Product     string   `json:"product"`
	ProductCode string   `json:"product_code"`
	Issuer      string   `json:"issuer"`
	GeneratedAt string   `json:"generated_at"`
	Files       []string `json:"files"`
}

// renderBundle generates all four documents as PDF and packages them with a
// manifest into one ZIP archive. The four renders fan out concurrently; the
// first failure cancels the rest and the whole bundle fails, so callers
// never see a partial archive.
func (e *Exporter) renderBundle(ctx context.Context, p *model.Product, issuer Issuer) (*Artifact, error) {
	renders := []func() (*Artifact, error){
		func() (*Artifact, error) { return e.renderTCCS(p, issuer, FormatPDF) },
		func() (*Artifact, error) { return e.renderTestingForm(p, issuer, FormatPDF) },
		func() (*Artifact, error) { return e.renderDeclaration(p, issuer, FormatPDF) },
		func() (*Artifact, error) { return e.renderLabel(p, issuer, FormatPDF) },
	}

	parts := make([]*Artifact, len(renders))
	g, ctx := errgroup.WithContext(ctx)
	for i, render := range renders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := render()
			if err != nil {
				return err
			}
			parts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render bundle: %w", err)
	}

	archive, err := e.store.NewArtifact("HoSoFull", p.Name, FormatZIP)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(archive.Path)
	if err != nil {
		return nil, fmt.Errorf("create bundle archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	manifest := bundleManifest{
		Product:     p.Name,
		ProductCode: p.Code,
		Issuer:      orElse(issuer.Company, e.fb.Company),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	for _, part := range parts {
		if err := addToArchive(zw, part); err != nil {
			zw.Close()
			return nil, err
		}
		manifest.Files = append(manifest.Files, part.Filename)
	}

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		zw.Close()
		return nil, fmt.Errorf("marshal bundle manifest: %w", err)
	}
	mw, err := zw.Create("manifest.json")
	if err != nil {
		zw.Close()
		return nil, fmt.Errorf("add bundle manifest: %w", err)
	}
	if _, err := mw.Write(manifestData); err != nil {
		zw.Close()
		return nil, fmt.Errorf("write bundle manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close bundle archive: %w", err)
	}

	logger.FromContext(ctx).Info("Bundle assembled",
		zap.String("product", p.Name),
		zap.Int("files", len(manifest.Files)))
	return archive, nil
}

func addToArchive(zw *zip.Writer, part *Artifact) error {
	src, err := os.Open(part.Path)
	if err != nil {
		return fmt.Errorf("open bundle part %s: %w", part.Filename, err)
	}
	defer src.Close()

	w, err := zw.Create(part.Filename)
	if err != nil {
		return fmt.Errorf("add bundle part %s: %w", part.Filename, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write bundle part %s: %w", part.Filename, err)
	}
	return nil
}
