package lemonsqueezy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
)

// ErrMissingData is returned when a response document has no "data" member.
var ErrMissingData = errors.New("response document has no data")

// Links maps link names to URLs.
type Links map[string]string

// Relationship represents a JSON:API relationship object.
type Relationship struct {
	Links Links             `json:"links,omitempty" yaml:"links,omitempty"`
	Data  *RelationshipData `json:"data,omitempty"  yaml:"data,omitempty"`
}

// RelationshipData identifies a related resource.
type RelationshipData struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id"   yaml:"id"`
}

// Resource is a JSON:API resource object with typed attributes.
type Resource[A any] struct {
	Type          string                  `json:"type"                    yaml:"type"                    validate:"required"`
	ID            string                  `json:"id"                      yaml:"id"                      validate:"required"`
	Attributes    A                       `json:"attributes"              yaml:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         Links                   `json:"links,omitempty"         yaml:"links,omitempty"`
}

// Included is a related resource sideloaded through the include parameter.
// Its attributes are kept raw because one document can mix resource types.
type Included struct {
	Type          string                  `json:"type"                    yaml:"type"                    validate:"required"`
	ID            string                  `json:"id"                      yaml:"id"                      validate:"required"`
	Attributes    json.RawMessage         `json:"attributes,omitempty"    yaml:"-"`
	Relationships map[string]Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         Links                   `json:"links,omitempty"         yaml:"links,omitempty"`
}

// DecodeAttributes unmarshals the raw attributes into v.
func (i Included) DecodeAttributes(v any) error {
	if len(i.Attributes) == 0 {
		return fmt.Errorf("%s %s: %w", i.Type, i.ID, ErrMissingData)
	}

	err := json.Unmarshal(i.Attributes, v)
	if err != nil {
		return fmt.Errorf("decoding %s attributes: %w", i.Type, err)
	}

	return nil
}

// Meta is free-form document meta returned by single-resource endpoints.
type Meta map[string]any

// ListMeta is the meta member of list responses.
type ListMeta struct {
	Page PageMeta `json:"page" yaml:"page"`
}

// PageMeta carries the pagination counters of a list response.
type PageMeta struct {
	CurrentPage int `json:"currentPage" yaml:"current_page"`
	From        int `json:"from"        yaml:"from"`
	LastPage    int `json:"lastPage"    yaml:"last_page"`
	PerPage     int `json:"perPage"     yaml:"per_page"`
	To          int `json:"to"          yaml:"to"`
	Total       int `json:"total"       yaml:"total"`
}

// HasNextPage reports whether pages follow the current one.
func (m PageMeta) HasNextPage() bool {
	return m.CurrentPage < m.LastPage
}

// Envelope is the top-level document every endpoint responds with.
// Data is required; Included, Meta, Errors and Links are optional.
type Envelope[D, I, M any] struct {
	Data     D          `json:"data"               yaml:"data"`
	Included []I        `json:"included,omitempty" yaml:"included,omitempty"`
	Meta     *M         `json:"meta,omitempty"     yaml:"meta,omitempty"`
	Errors   []APIError `json:"errors,omitempty"   yaml:"errors,omitempty"`
	Links    Links      `json:"links,omitempty"    yaml:"links,omitempty"`
}

// Response is a single-resource document.
type Response[R, I any] = Envelope[R, I, Meta]

// ListResponse is a paginated list document.
type ListResponse[R, I any] = Envelope[[]R, I, ListMeta]

type rawEnvelope[I, M any] struct {
	Data     json.RawMessage `json:"data"`
	Included []I             `json:"included,omitempty"`
	Meta     *M              `json:"meta,omitempty"`
	Errors   []APIError      `json:"errors,omitempty"`
	Links    Links           `json:"links,omitempty"`
}

// UnmarshalJSON rejects documents whose data member is absent or null.
func (e *Envelope[D, I, M]) UnmarshalJSON(b []byte) error {
	var raw rawEnvelope[I, M]

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}

	if len(raw.Data) == 0 || bytes.Equal(bytes.TrimSpace(raw.Data), []byte("null")) {
		return ErrMissingData
	}

	var data D

	err = json.Unmarshal(raw.Data, &data)
	if err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}

	e.Data = data
	e.Included = raw.Included
	e.Meta = raw.Meta
	e.Errors = raw.Errors
	e.Links = raw.Links

	return nil
}

func (e *Envelope[D, I, M]) validate(v *validator.Validate) error {
	data := reflect.ValueOf(e.Data)

	switch data.Kind() {
	case reflect.Slice:
		err := v.Var(e.Data, "dive")
		if err != nil {
			return fmt.Errorf("validating data: %w", err)
		}
	case reflect.Struct:
		err := v.Struct(e.Data)
		if err != nil {
			return fmt.Errorf("validating data: %w", err)
		}
	}

	if len(e.Included) > 0 {
		err := v.Var(e.Included, "dive")
		if err != nil {
			return fmt.Errorf("validating included: %w", err)
		}
	}

	return nil
}

// QueryItem is one name/value pair of a request query string.
type QueryItem struct {
	Name  string
	Value string
}

// PageParams selects a page of a list endpoint. A nil *PageParams requests
// the API default and emits no pagination parameters.
type PageParams struct {
	Number int
	Size   int
}

// Page returns page number with the default page size.
func Page(number int) *PageParams {
	return &PageParams{Number: number, Size: constants.DefaultPageSize}
}

// WithSize sets the page size.
func (p *PageParams) WithSize(size int) *PageParams {
	p.Size = size

	return p
}

// EffectiveSize returns the page size to send, falling back to the default.
func (p *PageParams) EffectiveSize() int {
	if p.Size <= 0 {
		return constants.DefaultPageSize
	}

	return p.Size
}

// EffectiveNumber returns the page number to send. Pages are numbered from
// 1; smaller numbers select the first page.
func (p *PageParams) EffectiveNumber() int {
	return max(p.Number, 1)
}
