package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/infra/utils"
)

type seedSubcategory struct {
	name           string
	description    string
	displayOrder   int
	badgeBgColor   string
	badgeTextColor string
}

type seedCategory struct {
	name          string
	description   string
	displayOrder  int
	subcategories []seedSubcategory
}

type seedField struct {
	name         string
	label        string
	helpText     string
	placeholder  string
	inputKind    domain.InputKind
	formWidth    int
	displayOrder int
}

type seedRequirement struct {
	fieldName string
	category  string
	enabled   bool
	required  bool
}

var defaultCategories = []seedCategory{
	{
		name:         "Vins",
		description:  "Vins de toutes origines",
		displayOrder: 1,
		subcategories: []seedSubcategory{
			{"Vin rouge", "Vins rouges", 1, "#7f1d1d", "#ffffff"},
			{"Vin blanc", "Vins blancs", 2, "#fef3c7", "#78350f"},
			{"Vin rosé", "Vins rosés", 3, "#fce7f3", "#9f1239"},
			{"Champagne", "Champagnes et vins effervescents", 4, "#fef08a", "#713f12"},
			{"Vin doux", "Vins doux naturels et liquoreux", 5, "#fde68a", "#92400e"},
		},
	},
	{
		name:         "Spiritueux",
		description:  "Alcools distillés",
		displayOrder: 2,
		subcategories: []seedSubcategory{
			{"Rhum blanc", "Rhums blancs agricoles ou traditionnels", 1, "#f5f5f4", "#44403c"},
			{"Rhum ambré", "Rhums ambrés vieillis en fût", 2, "#d97706", "#ffffff"},
			{"Rhum vieux", "Rhums vieux longuement vieillis", 3, "#78350f", "#ffffff"},
			{"Whisky", "Whiskies écossais, irlandais, américains, etc.", 4, "#92400e", "#ffffff"},
			{"Cognac", "Cognacs et eaux-de-vie de vin", 5, "#92400e", "#ffffff"},
			{"Armagnac", "Armagnacs", 6, "#92400e", "#ffffff"},
			{"Calvados", "Calvados et eaux-de-vie de cidre", 7, "#f97316", "#ffffff"},
			{"Vodka", "Vodkas", 8, "#e5e7eb", "#1f2937"},
			{"Gin", "Gins", 9, "#dbeafe", "#1e3a8a"},
			{"Tequila", "Tequilas et mezcals", 10, "#fef3c7", "#78350f"},
			{"Liqueur", "Liqueurs diverses", 11, "#fbcfe8", "#831843"},
		},
	},
	{
		name:         "Bières",
		description:  "Bières et cidres",
		displayOrder: 3,
		subcategories: []seedSubcategory{
			{"Bière blonde", "Bières blondes", 1, "#fbbf24", "#78350f"},
			{"Bière ambrée", "Bières ambrées", 2, "#fb923c", "#7c2d12"},
			{"Bière brune", "Bières brunes et stouts", 3, "#78350f", "#fef3c7"},
			{"IPA", "India Pale Ales", 4, "#f97316", "#ffffff"},
			{"Bière blanche", "Bières blanches", 5, "#fef3c7", "#1f2937"},
			{"Cidre", "Cidres", 6, "#fde68a", "#92400e"},
		},
	},
}

var defaultFields = []seedField{
	{name: "region", label: "Région", placeholder: "Bordeaux, Bourgogne...", inputKind: domain.InputKindText, formWidth: 6, displayOrder: 10},
	{name: "grape", label: "Cépage", placeholder: "Merlot, Pinot Noir...", inputKind: domain.InputKindText, formWidth: 6, displayOrder: 20},
	{name: "year", label: "Année", inputKind: domain.InputKindNumber, formWidth: 3, displayOrder: 30},
	{name: "volume_ml", label: "Contenance (mL)", helpText: "Indiquez la contenance en millilitres (ex : 750).", inputKind: domain.InputKindNumber, formWidth: 3, displayOrder: 40},
	{name: "description", label: "Description", inputKind: domain.InputKindTextarea, formWidth: 12, displayOrder: 50},
}

var defaultRequirements = []seedRequirement{
	{fieldName: "region", enabled: true},
	{fieldName: "year", enabled: true},
	{fieldName: "volume_ml", enabled: true, required: true},
	{fieldName: "description", enabled: true},
	{fieldName: "grape", category: "Vins", enabled: true},
}

// Seeder loads the default taxonomy, builtin fields and baseline
// requirement rules into an empty database. Running it twice is a no-op.
type Seeder struct {
	fields       FieldRepository
	requirements RequirementRepository
	categories   CategoryRepository
}

func NewSeeder(
	fields FieldRepository,
	requirements RequirementRepository,
	categories CategoryRepository,
) *Seeder {
	return &Seeder{
		fields:       fields,
		requirements: requirements,
		categories:   categories,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	categoryIDs, err := s.seedTaxonomy(ctx)
	if err != nil {
		return fmt.Errorf("seeding taxonomy: %w", err)
	}

	if err := s.seedFields(ctx); err != nil {
		return fmt.Errorf("seeding fields: %w", err)
	}

	if err := s.seedRequirements(ctx, categoryIDs); err != nil {
		return fmt.Errorf("seeding requirements: %w", err)
	}

	slog.Info("seed data verified")

	return nil
}

func (s *Seeder) seedTaxonomy(ctx context.Context) (map[string]domain.ID, error) {
	existing, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	byName := make(map[string]domain.Category, len(existing))
	for _, category := range existing {
		byName[category.Name] = category
	}

	categoryIDs := make(map[string]domain.ID, len(defaultCategories))
	for _, seed := range defaultCategories {
		category, present := byName[seed.name]
		if !present {
			category, err = domain.NewCategoryBuilder().
				WithName(seed.name).
				WithDescription(seed.description).
				WithDisplayOrder(seed.displayOrder).
				Build()
			if err != nil {
				return nil, err
			}
			if err := s.categories.Create(ctx, category); err != nil {
				return nil, fmt.Errorf("creating category %q: %w", seed.name, err)
			}
			slog.Info("seeded category", slog.String("name", seed.name))
		}
		categoryIDs[seed.name] = category.ID

		existingSubs := make(map[string]bool, len(category.Subcategories))
		for _, subcategory := range category.Subcategories {
			existingSubs[subcategory.Name] = true
		}

		for _, seedSub := range seed.subcategories {
			if existingSubs[seedSub.name] {
				continue
			}
			subcategory, err := domain.NewSubcategoryBuilder().
				WithCategoryID(category.ID).
				WithName(seedSub.name).
				WithDescription(seedSub.description).
				WithDisplayOrder(seedSub.displayOrder).
				WithBadgeColors(seedSub.badgeBgColor, seedSub.badgeTextColor).
				Build()
			if err != nil {
				return nil, err
			}
			if err := s.categories.CreateSubcategory(ctx, subcategory); err != nil {
				return nil, fmt.Errorf("creating subcategory %q: %w", seedSub.name, err)
			}
		}
	}

	return categoryIDs, nil
}

func (s *Seeder) seedFields(ctx context.Context) error {
	for _, seed := range defaultFields {
		_, err := s.fields.GetByName(ctx, seed.name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrFieldNotFound) {
			return fmt.Errorf("checking field %q: %w", seed.name, err)
		}

		field, err := domain.NewFieldDefinitionBuilder().
			WithLabel(seed.label).
			WithInputKind(seed.inputKind).
			WithHelpText(seed.helpText).
			WithPlaceholder(seed.placeholder).
			WithFormWidth(seed.formWidth).
			Build()
		if err != nil {
			return err
		}
		// The builtin names are stable identifiers, not derived from the
		// accented French labels.
		field.Name = seed.name
		field.IsBuiltin = true
		field.DisplayOrder = seed.displayOrder

		if err := s.fields.Create(ctx, field); err != nil {
			return fmt.Errorf("creating field %q: %w", seed.name, err)
		}
		slog.Info("seeded field", slog.String("name", seed.name))
	}

	return nil
}

func (s *Seeder) seedRequirements(ctx context.Context, categoryIDs map[string]domain.ID) error {
	existing, err := s.requirements.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("listing requirements: %w", err)
	}

	type ruleKey struct {
		fieldName string
		scope     domain.Scope
	}
	present := make(map[ruleKey]bool, len(existing))
	for _, rule := range existing {
		present[ruleKey{rule.FieldName, rule.Scope}] = true
	}

	for _, seed := range defaultRequirements {
		scope := domain.GlobalScope()
		var categoryID domain.ID
		if seed.category != "" {
			id, known := categoryIDs[seed.category]
			if !known {
				continue
			}
			scope = domain.CategoryScope(id)
			categoryID = id
		}

		if present[ruleKey{seed.fieldName, scope}] {
			continue
		}

		rule := domain.RequirementRule{
			ID:         domain.ID(utils.GenerateUUID()),
			FieldName:  seed.fieldName,
			Scope:      scope,
			CategoryID: categoryID,
			Enabled:    seed.enabled,
			Required:   seed.required,
		}
		rule.Normalize()

		if err := s.requirements.Upsert(ctx, rule); err != nil {
			return fmt.Errorf("seeding requirement for %q: %w", seed.fieldName, err)
		}
	}

	return nil
}
