package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/catalog/httpapi"
	"cellar-server/internal/catalog/usecases"
	mockusecases "cellar-server/test/unit/doubles/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FieldController", func() {
	var controller *httpapi.FieldController
	var mockService *mockusecases.MockFieldService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockFieldService(ctrl)
		controller = httpapi.NewFieldController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listFields", func() {
		When("fields exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/fields", nil)
			})

			It("should return the fields ordered by the service", func() {
				fields := []domain.FieldDefinition{
					{ID: "field-1", Name: "region", Label: "Région", IsBuiltin: true, DisplayOrder: 10},
					{ID: "field-2", Name: "vintage_note", Label: "Vintage Note", DisplayOrder: 60},
				}
				mockService.EXPECT().
					AllFields(gomock.Any()).
					Return(fields, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response []map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response).To(HaveLen(2))
				Expect(response[0]["name"]).To(Equal("region"))
				Expect(response[0]["is_builtin"]).To(BeTrue())
				Expect(response[1]["name"]).To(Equal("vintage_note"))
			})
		})

		When("service returns error", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/fields", nil)
			})

			It("should return internal server error", func() {
				mockService.EXPECT().
					AllFields(gomock.Any()).
					Return(nil, errors.New("database error"))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Context("createField", func() {
		When("the request is valid", func() {
			BeforeEach(func() {
				body := `{"label":"Vintage Note","input_kind":"textarea","enabled":true,"required":false}`
				request = httptest.NewRequest("POST", "/v1/fields", strings.NewReader(body))
			})

			It("should create the field and return 201", func() {
				mockService.EXPECT().
					CreateField(gomock.Any(), gomock.Any(), domain.GlobalScope(), domain.ResolvedField{Enabled: true, Required: false}).
					DoAndReturn(func(_ any, field domain.FieldDefinition, _ domain.Scope, _ domain.ResolvedField) (domain.FieldDefinition, error) {
						Expect(field.Name).To(Equal("vintage_note"))
						Expect(field.Label).To(Equal("Vintage Note"))
						Expect(field.InputKind).To(Equal(domain.InputKindTextarea))
						field.DisplayOrder = 60
						return field, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["name"]).To(Equal("vintage_note"))
				Expect(response["display_order"]).To(Equal(float64(60)))
			})
		})

		When("the request targets a category scope", func() {
			BeforeEach(func() {
				body := `{"label":"Vintage Note","scope_kind":"category","scope_id":"cat-1","enabled":true,"required":true}`
				request = httptest.NewRequest("POST", "/v1/fields", strings.NewReader(body))
			})

			It("should pass the scope through to the service", func() {
				mockService.EXPECT().
					CreateField(gomock.Any(), gomock.Any(), domain.CategoryScope("cat-1"), domain.ResolvedField{Enabled: true, Required: true}).
					DoAndReturn(func(_ any, field domain.FieldDefinition, _ domain.Scope, _ domain.ResolvedField) (domain.FieldDefinition, error) {
						return field, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))
			})
		})

		When("a scoped request omits the scope id", func() {
			BeforeEach(func() {
				body := `{"label":"Vintage Note","scope_kind":"category"}`
				request = httptest.NewRequest("POST", "/v1/fields", strings.NewReader(body))
			})

			It("should return bad request", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the scope target does not exist", func() {
			BeforeEach(func() {
				body := `{"label":"Vintage Note","scope_kind":"subcategory","scope_id":"ghost"}`
				request = httptest.NewRequest("POST", "/v1/fields", strings.NewReader(body))
			})

			It("should return not found", func() {
				mockService.EXPECT().
					CreateField(gomock.Any(), gomock.Any(), domain.SubcategoryScope("ghost"), gomock.Any()).
					Return(domain.FieldDefinition{}, usecases.ErrScopeNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the label is empty", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/fields", strings.NewReader(`{"label":""}`))
			})

			It("should return bad request", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the name collides with an existing field", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/fields", strings.NewReader(`{"label":"Région"}`))
			})

			It("should return conflict", func() {
				mockService.EXPECT().
					CreateField(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.FieldDefinition{}, usecases.ErrFieldDuplicated)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Context("getField", func() {
		When("the field does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/fields/unknown", nil)
			})

			It("should return not found", func() {
				mockService.EXPECT().
					GetField(gomock.Any(), "unknown").
					Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("updateField", func() {
		When("the label changes", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("PUT", "/v1/fields/vintage_note", strings.NewReader(`{"label":"Tasting Note"}`))
			})

			It("should pass the patch to the service", func() {
				mockService.EXPECT().
					UpdateField(gomock.Any(), "vintage_note", gomock.Any()).
					DoAndReturn(func(_ any, _ string, update usecases.FieldUpdate) (domain.FieldDefinition, error) {
						Expect(update.Label).NotTo(BeNil())
						Expect(*update.Label).To(Equal("Tasting Note"))
						Expect(update.HelpText).To(BeNil())
						return domain.FieldDefinition{Name: "tasting_note", Label: "Tasting Note"}, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["name"]).To(Equal("tasting_note"))
			})
		})

		When("the field is builtin", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("PUT", "/v1/fields/region", strings.NewReader(`{"label":"Country"}`))
			})

			It("should return conflict", func() {
				mockService.EXPECT().
					UpdateField(gomock.Any(), "region", gomock.Any()).
					Return(domain.FieldDefinition{}, usecases.ErrBuiltinFieldProtected)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the rename cascade fails", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("PUT", "/v1/fields/vintage_note", strings.NewReader(`{"label":"Tasting Note"}`))
			})

			It("should return internal server error", func() {
				mockService.EXPECT().
					UpdateField(gomock.Any(), "vintage_note", gomock.Any()).
					Return(domain.FieldDefinition{}, usecases.ErrAtomicRewriteFailed)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Context("deleteField", func() {
		When("the field is custom", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("DELETE", "/v1/fields/vintage_note", nil)
			})

			It("should return no content", func() {
				mockService.EXPECT().
					DeleteField(gomock.Any(), "vintage_note").
					Return(nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
			})
		})

		When("the field is builtin", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("DELETE", "/v1/fields/region", nil)
			})

			It("should return conflict", func() {
				mockService.EXPECT().
					DeleteField(gomock.Any(), "region").
					Return(usecases.ErrBuiltinFieldProtected)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})
})
