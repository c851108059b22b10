package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"cellar-server/internal/infra/utils"
)

const (
	// DisplayOrderStep is the gap kept between consecutive fields so that
	// administrators can slot a field between two others later.
	DisplayOrderStep = 10

	defaultFormWidth = 12

	// fallbackFieldName is used when a label normalizes to nothing,
	// e.g. a label made only of punctuation.
	fallbackFieldName = "champ"
)

var fieldNamePattern = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeFieldName derives the machine identifier of a field from its
// human label: lower-cased, every run of non-alphanumerics collapsed to a
// single underscore.
func NormalizeFieldName(label string) string {
	slug := fieldNamePattern.ReplaceAllString(strings.ToLower(label), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return fallbackFieldName
	}
	return slug
}

// FieldDefinition describes an available data point that bottles may carry.
type FieldDefinition struct {
	ID           ID
	Name         string
	Label        string
	HelpText     string
	Placeholder  string
	InputKind    InputKind
	FormWidth    int
	IsBuiltin    bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Rename recomputes the normalized name from the new label.
func (f *FieldDefinition) Rename(newLabel string) {
	f.Label = newLabel
	f.Name = NormalizeFieldName(newLabel)
	f.UpdatedAt = time.Now()
}

var (
	ErrEmptyLabel       = errors.New("field label must not be empty")
	ErrInvalidInputKind = errors.New("invalid input kind")
)

func NewFieldDefinitionBuilder() *fieldDefinitionBuilder {
	return &fieldDefinitionBuilder{}
}

type fieldDefinitionBuilder struct {
	actions []fieldDefinitionHandler
}

type fieldDefinitionHandler func(f *FieldDefinition) error

func (b *fieldDefinitionBuilder) WithLabel(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		if strings.TrimSpace(value) == "" {
			return ErrEmptyLabel
		}
		f.Label = value
		f.Name = NormalizeFieldName(value)
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithInputKind(value InputKind) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		if !value.IsValid() {
			return ErrInvalidInputKind
		}
		f.InputKind = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithHelpText(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.HelpText = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithPlaceholder(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.Placeholder = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithFormWidth(value int) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(f *FieldDefinition) error {
		f.FormWidth = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) Build() (FieldDefinition, error) {
	now := time.Now()
	result := FieldDefinition{
		ID:        ID(utils.GenerateUUID()),
		InputKind: InputKindText,
		FormWidth: defaultFormWidth,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return FieldDefinition{}, err
		}
	}

	if result.Label == "" {
		return FieldDefinition{}, ErrEmptyLabel
	}

	return result, nil
}
