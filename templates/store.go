// Package templates provides the notes/terms template capability the host
// application injects into its invoice forms. The reference behaviour kept
// these lists in browser local storage; here the storage is an explicit
// Store the host chooses an implementation for.
package templates

import (
	"context"
	"errors"
)

// Kind separates the two template lists an invoice form uses.
type Kind string

const (
	// KindNotes holds reusable invoice notes.
	KindNotes Kind = "notes"
	// KindTerms holds reusable payment terms.
	KindTerms Kind = "terms"
)

var (
	// ErrNotFound is returned when no template exists for the given id.
	ErrNotFound = errors.New("templates: template not found")
	// ErrInvalidKind is returned for kinds outside notes/terms.
	ErrInvalidKind = errors.New("templates: invalid template kind")
	// ErrEmptyBody is returned when saving a template without content.
	ErrEmptyBody = errors.New("templates: template body is required")
)

// Template is one reusable notes or terms snippet.
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Body string `json:"body"`
}

// Store is the capability the host provides for template persistence.
type Store interface {
	Get(ctx context.Context, kind Kind, id string) (Template, error)
	List(ctx context.Context, kind Kind) ([]Template, error)
	Save(ctx context.Context, kind Kind, tpl Template) (Template, error)
}

func validKind(kind Kind) bool {
	return kind == KindNotes || kind == KindTerms
}
