package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"cellar-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver     *driver.APIDriver
	response      *http.Response
	responseData  map[string]any
	fieldName     string
	categoryID    string
	subcategoryID string
	bottleID      string
	require       *require.Assertions
	t             godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Taxonomy steps
	ctx.Given(`^a category exists with name "([^"]*)"$`, fc.aCategoryExistsWithName)
	ctx.Given(`^a subcategory exists with name "([^"]*)"$`, fc.aSubcategoryExistsWithName)

	// Field steps
	ctx.When(`^I create a custom field labeled "([^"]*)"$`, fc.iCreateACustomFieldLabeled)
	ctx.Given(`^a custom field exists labeled "([^"]*)"$`, fc.aCustomFieldExistsLabeled)
	ctx.Then(`^the field name should be "([^"]*)"$`, fc.theFieldNameShouldBe)
	ctx.When(`^I rename the field to "([^"]*)"$`, fc.iRenameTheFieldTo)
	ctx.When(`^I delete the field$`, fc.iDeleteTheField)
	ctx.When(`^I try to delete the builtin field "([^"]*)"$`, fc.iTryToDeleteTheBuiltinField)

	// Requirement steps
	ctx.When(`^I require the field for the category$`, fc.iRequireTheFieldForTheCategory)
	ctx.When(`^I disable the field for the subcategory$`, fc.iDisableTheFieldForTheSubcategory)

	// Schema steps
	ctx.When(`^I resolve the schema for the subcategory$`, fc.iResolveTheSchemaForTheSubcategory)
	ctx.Then(`^the resolved field "([^"]*)" should be required$`, fc.theResolvedFieldShouldBeRequired)
	ctx.Then(`^the resolved field "([^"]*)" should be disabled$`, fc.theResolvedFieldShouldBeDisabled)

	// Bottle steps
	ctx.When(`^I create a bottle named "([^"]*)" without attributes$`, fc.iCreateABottleNamedWithoutAttributes)
	ctx.When(`^I create a bottle named "([^"]*)" with the field set to "([^"]*)"$`, fc.iCreateABottleNamedWithTheFieldSetTo)
	ctx.Then(`^the violations should include the field$`, fc.theViolationsShouldIncludeTheField)
	ctx.When(`^I get the bottle by its ID$`, fc.iGetTheBottleByItsID)
	ctx.Then(`^the bottle attribute key should be "([^"]*)"$`, fc.theBottleAttributeKeyShouldBe)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.fieldName = ""
	fc.categoryID = ""
	fc.subcategoryID = ""
	fc.bottleID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}
