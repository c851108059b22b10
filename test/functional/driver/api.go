package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateField(label, inputKind string, enabled, required bool) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"label":      label,
		"input_kind": inputKind,
		"enabled":    enabled,
		"required":   required,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/fields", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListFields() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/fields", d.baseURL))
}

func (d *APIDriver) GetField(name string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/fields/%s", d.baseURL, name))
}

func (d *APIDriver) RenameField(name, newLabel string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"label": newLabel})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/fields/%s", d.baseURL, name), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) DeleteField(name string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/fields/%s", d.baseURL, name), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) SetRequirement(fieldName, scopeKind, scopeID string, enabled, required bool) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"field_name": fieldName,
		"scope_kind": scopeKind,
		"scope_id":   scopeID,
		"enabled":    enabled,
		"required":   required,
	})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/requirements", d.baseURL), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) ListRequirements() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/requirements", d.baseURL))
}

func (d *APIDriver) GetGlobalSchema() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/schema", d.baseURL))
}

func (d *APIDriver) GetSchema(scopeKind, scopeID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/schema/%s/%s", d.baseURL, scopeKind, scopeID))
}

func (d *APIDriver) ValidateAttributes(subcategoryID string, attributes map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"subcategory_id": subcategoryID,
		"attributes":     attributes,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/schema/validation", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) CreateCategory(name string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"name": name})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/categories", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListCategories() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/categories", d.baseURL))
}

func (d *APIDriver) CreateSubcategory(categoryID, name string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"name": name})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/categories/%s/subcategories", d.baseURL, categoryID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) CreateBottle(name, subcategoryID string, attributes map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":           name,
		"subcategory_id": subcategoryID,
		"attributes":     attributes,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/bottles", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetBottle(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/bottles/%s", d.baseURL, id))
}

func (d *APIDriver) ListBottles() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/bottles", d.baseURL))
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}
