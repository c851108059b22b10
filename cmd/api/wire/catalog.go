//go:build wireinject
// +build wireinject

package wire

import (
	"cellar-server/internal/catalog/httpapi"
	"cellar-server/internal/catalog/persistence"
	"cellar-server/internal/catalog/usecases"
	"cellar-server/internal/infra/async"

	"github.com/google/wire"
)

var CatalogRepositorySet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	persistence.NewFieldRepository,
	wire.Bind(new(usecases.FieldRepository), new(*persistence.SimpleFieldRepository)),
	persistence.NewRequirementRepository,
	wire.Bind(new(usecases.RequirementRepository), new(*persistence.SimpleRequirementRepository)),
	persistence.NewCategoryRepository,
	wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)),
)

func InitializeFieldController(broker async.InternalBroker) (*httpapi.FieldController, error) {
	wire.Build(
		CatalogRepositorySet,
		usecases.NewRequirementService,
		wire.Bind(new(usecases.RequirementService), new(*usecases.SimpleRequirementService)),
		usecases.NewFieldService,
		wire.Bind(new(usecases.FieldService), new(*usecases.SimpleFieldService)),
		httpapi.NewFieldController,
	)
	return nil, nil
}

func InitializeRequirementController(broker async.InternalBroker) (*httpapi.RequirementController, error) {
	wire.Build(
		CatalogRepositorySet,
		usecases.NewRequirementService,
		wire.Bind(new(usecases.RequirementService), new(*usecases.SimpleRequirementService)),
		httpapi.NewRequirementController,
	)
	return nil, nil
}

func InitializeSchemaController(broker async.InternalBroker) (*httpapi.SchemaController, error) {
	wire.Build(
		CatalogRepositorySet,
		usecases.NewRequirementService,
		wire.Bind(new(usecases.RequirementService), new(*usecases.SimpleRequirementService)),
		usecases.NewFieldService,
		wire.Bind(new(usecases.FieldService), new(*usecases.SimpleFieldService)),
		usecases.NewSchemaResolver,
		wire.Bind(new(usecases.SchemaResolver), new(*usecases.SimpleSchemaResolver)),
		usecases.NewBottleValidator,
		wire.Bind(new(usecases.BottleValidator), new(*usecases.SimpleBottleValidator)),
		httpapi.NewSchemaController,
	)
	return nil, nil
}

func InitializeCategoryController() (*httpapi.CategoryController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewCategoryRepository,
		wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)),
		usecases.NewCategoryService,
		wire.Bind(new(usecases.CategoryService), new(*usecases.SimpleCategoryService)),
		httpapi.NewCategoryController,
	)
	return nil, nil
}

func InitializeBottleController() (*httpapi.BottleController, error) {
	wire.Build(
		CatalogRepositorySet,
		persistence.NewBottleRepository,
		wire.Bind(new(usecases.BottleRepository), new(*persistence.SimpleBottleRepository)),
		usecases.NewSchemaResolver,
		wire.Bind(new(usecases.SchemaResolver), new(*usecases.SimpleSchemaResolver)),
		usecases.NewBottleValidator,
		wire.Bind(new(usecases.BottleValidator), new(*usecases.SimpleBottleValidator)),
		usecases.NewBottleService,
		wire.Bind(new(usecases.BottleService), new(*usecases.SimpleBottleService)),
		httpapi.NewBottleController,
	)
	return nil, nil
}

func InitializeSchemaEventsWebSocketController(broker async.InternalBroker) (*httpapi.SchemaEventsWebSocketController, error) {
	wire.Build(
		httpapi.NewSchemaEventsWebSocketController,
	)
	return nil, nil
}

func InitializeSeeder() (*usecases.Seeder, error) {
	wire.Build(
		CatalogRepositorySet,
		usecases.NewSeeder,
	)
	return nil, nil
}
