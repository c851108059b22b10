package httpapi_test

import (
	"encoding/json"
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

var _ = Describe("RequirementController", func() {
	var controller *httpapi.RequirementController
	var mockService *mockusecases.MockRequirementService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockRequirementService(ctrl)
		controller = httpapi.NewRequirementController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listRequirements", func() {
		When("no scope filter is given", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/requirements", nil)
			})

			It("should return all rules", func() {
				rules := []domain.RequirementRule{
					{ID: "rule-1", FieldName: "region", Scope: domain.GlobalScope(), Enabled: true},
					{ID: "rule-2", FieldName: "grape", Scope: domain.CategoryScope("cat-1"), Enabled: true},
				}
				mockService.EXPECT().
					AllRequirements(gomock.Any()).
					Return(rules, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response []map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response).To(HaveLen(2))
				Expect(response[0]["scope_kind"]).To(Equal("global"))
				Expect(response[1]["scope_id"]).To(Equal("cat-1"))
			})
		})

		When("a scope filter is given", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/requirements?scope_kind=category&scope_id=cat-1", nil)
			})

			It("should return only the rules stored at that scope", func() {
				mockService.EXPECT().
					RequirementsByScope(gomock.Any(), domain.CategoryScope("cat-1")).
					Return([]domain.RequirementRule{{ID: "rule-2", FieldName: "grape"}}, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
			})
		})

		When("the scope kind is invalid", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/requirements?scope_kind=planet", nil)
			})

			It("should return bad request", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("setRequirement", func() {
		When("the rule is valid", func() {
			BeforeEach(func() {
				body := `{"field_name":"grape","scope_kind":"category","scope_id":"cat-1","enabled":true,"required":true}`
				request = httptest.NewRequest("PUT", "/v1/requirements", strings.NewReader(body))
			})

			It("should upsert and return the stored rule", func() {
				mockService.EXPECT().
					SetRequirement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, rule domain.RequirementRule) (domain.RequirementRule, error) {
						Expect(rule.FieldName).To(Equal("grape"))
						Expect(rule.Scope).To(Equal(domain.CategoryScope("cat-1")))
						Expect(rule.Required).To(BeTrue())
						rule.ID = "rule-1"
						return rule, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response["id"]).To(Equal("rule-1"))
				Expect(response["required"]).To(BeTrue())
			})
		})

		When("the field does not exist", func() {
			BeforeEach(func() {
				body := `{"field_name":"unknown","scope_kind":"global"}`
				request = httptest.NewRequest("PUT", "/v1/requirements", strings.NewReader(body))
			})

			It("should return not found", func() {
				mockService.EXPECT().
					SetRequirement(gomock.Any(), gomock.Any()).
					Return(domain.RequirementRule{}, usecases.ErrFieldNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the scope target does not exist", func() {
			BeforeEach(func() {
				body := `{"field_name":"grape","scope_kind":"subcategory","scope_id":"missing"}`
				request = httptest.NewRequest("PUT", "/v1/requirements", strings.NewReader(body))
			})

			It("should return not found", func() {
				mockService.EXPECT().
					SetRequirement(gomock.Any(), gomock.Any()).
					Return(domain.RequirementRule{}, usecases.ErrScopeNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
