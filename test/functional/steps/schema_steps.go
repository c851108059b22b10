package steps

import (
	"net/http"
)

func (fc *FeatureContext) theResponseStatusCodeShouldBe(expected int) error {
	fc.require.NotNil(fc.response, "no response recorded")
	fc.require.Equal(expected, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) aCategoryExistsWithName(name string) error {
	resp, err := fc.apiDriver.CreateCategory(name)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		if err := fc.decodeBody(resp.Body, &data); err != nil {
			return err
		}
		fc.categoryID = data["id"].(string)
		return nil
	}

	// The category survives previous scenarios, look it up instead.
	fc.require.Equal(http.StatusConflict, resp.StatusCode)
	return fc.lookupCategory(name)
}

func (fc *FeatureContext) lookupCategory(name string) error {
	resp, err := fc.apiDriver.ListCategories()
	if err != nil {
		return err
	}
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var categories []map[string]any
	if err := fc.decodeBody(resp.Body, &categories); err != nil {
		return err
	}

	for _, category := range categories {
		if category["name"] == name {
			fc.categoryID = category["id"].(string)
			if subcategories, ok := category["subcategories"].([]any); ok && len(subcategories) > 0 {
				first := subcategories[0].(map[string]any)
				fc.subcategoryID = first["id"].(string)
			}
			return nil
		}
	}

	fc.require.Failf("category not found", "category %q missing from list", name)
	return nil
}

func (fc *FeatureContext) aSubcategoryExistsWithName(name string) error {
	fc.require.NotEmpty(fc.categoryID, "category must be created first")

	resp, err := fc.apiDriver.CreateSubcategory(fc.categoryID, name)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		if err := fc.decodeBody(resp.Body, &data); err != nil {
			return err
		}
		fc.subcategoryID = data["id"].(string)
		return nil
	}

	fc.require.Equal(http.StatusConflict, resp.StatusCode)
	fc.require.NotEmpty(fc.subcategoryID, "subcategory lookup failed")
	return nil
}

func (fc *FeatureContext) iCreateACustomFieldLabeled(label string) error {
	resp, err := fc.apiDriver.CreateField(label, "text", true, false)
	if err != nil {
		return err
	}
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		if err := fc.decodeBody(resp.Body, &data); err != nil {
			return err
		}
		fc.responseData = data
		fc.fieldName = data["name"].(string)
	}
	return nil
}

func (fc *FeatureContext) aCustomFieldExistsLabeled(label string) error {
	if err := fc.iCreateACustomFieldLabeled(label); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) theFieldNameShouldBe(expected string) error {
	fc.require.Equal(expected, fc.fieldName)
	return nil
}

func (fc *FeatureContext) iRenameTheFieldTo(newLabel string) error {
	resp, err := fc.apiDriver.RenameField(fc.fieldName, newLabel)
	if err != nil {
		return err
	}
	fc.response = resp

	if resp.StatusCode == http.StatusOK {
		var data map[string]any
		if err := fc.decodeBody(resp.Body, &data); err != nil {
			return err
		}
		fc.fieldName = data["name"].(string)
	}
	return nil
}

func (fc *FeatureContext) iDeleteTheField() error {
	resp, err := fc.apiDriver.DeleteField(fc.fieldName)
	if err != nil {
		return err
	}
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iTryToDeleteTheBuiltinField(name string) error {
	resp, err := fc.apiDriver.DeleteField(name)
	if err != nil {
		return err
	}
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iRequireTheFieldForTheCategory() error {
	resp, err := fc.apiDriver.SetRequirement(fc.fieldName, "category", fc.categoryID, true, true)
	if err != nil {
		return err
	}
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iDisableTheFieldForTheSubcategory() error {
	resp, err := fc.apiDriver.SetRequirement(fc.fieldName, "subcategory", fc.subcategoryID, false, false)
	if err != nil {
		return err
	}
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iResolveTheSchemaForTheSubcategory() error {
	resp, err := fc.apiDriver.GetSchema("subcategory", fc.subcategoryID)
	if err != nil {
		return err
	}
	fc.response = resp

	var data map[string]any
	if err := fc.decodeBody(resp.Body, &data); err != nil {
		return err
	}
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) resolvedField(name string) map[string]any {
	fields, ok := fc.responseData["fields"].([]any)
	fc.require.True(ok, "schema response has no fields")

	for _, raw := range fields {
		field, ok := raw.(map[string]any)
		fc.require.True(ok)
		if field["name"] == name {
			return field
		}
	}

	fc.require.Failf("field not found", "field %q missing from resolved schema", name)
	return nil
}

func (fc *FeatureContext) theResolvedFieldShouldBeRequired(name string) error {
	field := fc.resolvedField(name)
	fc.require.Equal(true, field["enabled"])
	fc.require.Equal(true, field["required"])
	return nil
}

func (fc *FeatureContext) theResolvedFieldShouldBeDisabled(name string) error {
	field := fc.resolvedField(name)
	fc.require.Equal(false, field["enabled"])
	return nil
}

func (fc *FeatureContext) iCreateABottleNamedWithoutAttributes(name string) error {
	resp, err := fc.apiDriver.CreateBottle(name, fc.subcategoryID, map[string]any{})
	if err != nil {
		return err
	}
	fc.response = resp

	var data map[string]any
	if err := fc.decodeBody(resp.Body, &data); err != nil {
		return err
	}
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iCreateABottleNamedWithTheFieldSetTo(name, value string) error {
	attributes := map[string]any{
		fc.fieldName: value,
		"volume_ml":  750,
	}
	resp, err := fc.apiDriver.CreateBottle(name, fc.subcategoryID, attributes)
	if err != nil {
		return err
	}
	fc.response = resp

	var data map[string]any
	if err := fc.decodeBody(resp.Body, &data); err != nil {
		return err
	}
	fc.responseData = data
	if id, ok := data["id"].(string); ok {
		fc.bottleID = id
	}
	return nil
}

func (fc *FeatureContext) theViolationsShouldIncludeTheField() error {
	violations, ok := fc.responseData["violations"].([]any)
	fc.require.True(ok, "response has no violations")

	for _, raw := range violations {
		violation, ok := raw.(map[string]any)
		fc.require.True(ok)
		if violation["field_name"] == fc.fieldName {
			return nil
		}
	}

	fc.require.Failf("violation not found", "field %q missing from violations", fc.fieldName)
	return nil
}

func (fc *FeatureContext) iGetTheBottleByItsID() error {
	resp, err := fc.apiDriver.GetBottle(fc.bottleID)
	if err != nil {
		return err
	}
	fc.response = resp

	var data map[string]any
	if err := fc.decodeBody(resp.Body, &data); err != nil {
		return err
	}
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theBottleAttributeKeyShouldBe(key string) error {
	attributes, ok := fc.responseData["attributes"].(map[string]any)
	fc.require.True(ok, "bottle has no attributes")
	fc.require.Contains(attributes, key)
	return nil
}
