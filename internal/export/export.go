// Package export implements the compliance-document pipeline: it merges
// caller overrides onto product records and renders them as TCCS standard
// specifications, testing request forms, self-declaration dossiers and label
// templates in office formats, individually or bundled as a ZIP archive.
package export

import (
	"context"
	"errors"

	"compliance-service/internal/model"
	"compliance-service/pkg/config"
)

// Kind selects the document to generate.
type Kind string

const (
	KindTCCS        Kind = "tccs"
	KindTesting     Kind = "testing"
	KindDeclaration Kind = "declaration"
	KindLabel       Kind = "label"
	KindAll         Kind = "all"
)

// Format selects the output encoding.
type Format string

const (
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
	FormatZIP  Format = "zip"
)

// ErrUnsupportedFormat is returned when the requested encoding does not
// exist for the requested document kind.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ErrUnknownKind is returned for an unrecognized document kind.
var ErrUnknownKind = errors.New("unknown document kind")

// Issuer is the requesting user's business identity stamped into documents.
// Every field is optional; renderers substitute placeholders from the
// fallback table.
type Issuer struct {
	Company        string
	TaxCode        string
	Address        string
	Phone          string
	Representative string
	Role           string
	Logo           string
}

// IssuerFromUser builds the document issuer profile from a user account.
func IssuerFromUser(u *model.User) Issuer {
	return Issuer{
		Company:        u.Company,
		TaxCode:        u.TaxCode,
		Address:        u.Address,
		Phone:          u.Phone,
		Representative: u.Name,
		Role:           u.RepresentativeRole,
		Logo:           u.Logo,
	}
}

// Exporter renders compliance documents into a transient artifact store.
type Exporter struct {
	store    *Store
	fb       Fallbacks
	fontPath string
}

// New builds an Exporter from configuration.
func New(cfg *config.ExportConfig) *Exporter {
	return &Exporter{
		store:    NewStore(cfg.Dir),
		fb:       DefaultFallbacks(),
		fontPath: cfg.FontPath,
	}
}

// Store exposes the artifact store for download resolution.
func (e *Exporter) Store() *Store {
	return e.store
}

// DefaultFormat returns the encoding used when the caller does not request
// one.
func DefaultFormat(kind Kind) Format {
	switch kind {
	case KindTesting:
		return FormatXLSX
	case KindLabel:
		return FormatPDF
	case KindAll:
		return FormatZIP
	default:
		return FormatDocx
	}
}

// Render applies the overrides to a copy of the product and generates the
// requested document. The stored product record is never mutated.
func (e *Exporter) Render(ctx context.Context, kind Kind, format Format, p *model.Product, issuer Issuer, overrides []Override) (*Artifact, error) {
	effective := Apply(p, overrides)

	switch kind {
	case KindTCCS:
		return e.renderTCCS(effective, issuer, format)
	case KindTesting:
		return e.renderTestingForm(effective, issuer, format)
	case KindDeclaration:
		return e.renderDeclaration(effective, issuer, format)
	case KindLabel:
		return e.renderLabel(effective, issuer, format)
	case KindAll:
		return e.renderBundle(ctx, effective, issuer)
	default:
		return nil, ErrUnknownKind
	}
}
