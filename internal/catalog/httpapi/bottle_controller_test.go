package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/catalog/httpapi"
	"cellar-server/internal/catalog/usecases"
	"cellar-server/internal/infra/httpserver"
	mockusecases "cellar-server/test/unit/doubles/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("BottleController", func() {
	var controller *httpapi.BottleController
	var mockService *mockusecases.MockBottleService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockBottleService(ctrl)
		controller = httpapi.NewBottleController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listBottles", func() {
		When("successful request with default pagination", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/bottles", nil)
			})

			It("should return paginated response with default parameters", func() {
				bottles := []domain.Bottle{
					{ID: "bottle-1", Name: "Château Margaux 2015", SubcategoryID: "sub-1", Quantity: 2},
					{ID: "bottle-2", Name: "Ardbeg 10", SubcategoryID: "sub-2", Quantity: 1},
				}
				expectedPagination := usecases.Pagination{
					Limit:  10,
					Offset: 0,
				}
				mockService.EXPECT().
					AllBottles(gomock.Any(), expectedPagination).
					Return(bottles, 2, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response httpserver.PaginatedResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())

				Expect(response.Pagination.Page).To(Equal(1))
				Expect(response.Pagination.Limit).To(Equal(10))
				Expect(response.Pagination.Total).To(Equal(2))
				Expect(response.Pagination.TotalPages).To(Equal(1))

				bottleData, ok := response.Data.([]any)
				Expect(ok).To(BeTrue())
				Expect(len(bottleData)).To(Equal(2))
			})
		})

		When("successful request with custom pagination", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/bottles?page=2&limit=5", nil)
			})

			It("should return paginated response with custom parameters", func() {
				expectedPagination := usecases.Pagination{
					Limit:  5,
					Offset: 5,
				}
				mockService.EXPECT().
					AllBottles(gomock.Any(), expectedPagination).
					Return([]domain.Bottle{{ID: "bottle-1", Name: "Château Margaux 2015"}}, 25, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response httpserver.PaginatedResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())

				Expect(response.Pagination.Page).To(Equal(2))
				Expect(response.Pagination.Limit).To(Equal(5))
				Expect(response.Pagination.Total).To(Equal(25))
				Expect(response.Pagination.TotalPages).To(Equal(5))
			})
		})
	})

	Context("createBottle", func() {
		When("the attributes satisfy the schema", func() {
			BeforeEach(func() {
				body := `{"name":"Château Margaux 2015","subcategory_id":"sub-1","quantity":2,"attributes":{"volume_ml":750}}`
				request = httptest.NewRequest("POST", "/v1/bottles", strings.NewReader(body))
			})

			It("should create the bottle and return 201", func() {
				mockService.EXPECT().
					CreateBottle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, bottle domain.Bottle) error {
						Expect(bottle.Name).To(Equal("Château Margaux 2015"))
						Expect(bottle.Quantity).To(Equal(2))
						Expect(bottle.Attributes).To(HaveKey("volume_ml"))
						return nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))
			})
		})

		When("required attributes are missing", func() {
			BeforeEach(func() {
				body := `{"name":"Château Margaux 2015","subcategory_id":"sub-1","attributes":{}}`
				request = httptest.NewRequest("POST", "/v1/bottles", strings.NewReader(body))
			})

			It("should return unprocessable entity with violations", func() {
				validationErr := &usecases.ValidationError{
					Violations: []usecases.MissingRequiredFieldError{
						{FieldName: "volume_ml", Label: "Contenance (mL)"},
					},
				}
				mockService.EXPECT().
					CreateBottle(gomock.Any(), gomock.Any()).
					Return(validationErr)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))

				var response struct {
					Valid      bool `json:"valid"`
					Violations []struct {
						FieldName string `json:"field_name"`
					} `json:"violations"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Valid).To(BeFalse())
				Expect(response.Violations).To(HaveLen(1))
				Expect(response.Violations[0].FieldName).To(Equal("volume_ml"))
			})
		})

		When("the subcategory does not exist", func() {
			BeforeEach(func() {
				body := `{"name":"Château Margaux 2015","subcategory_id":"missing","attributes":{}}`
				request = httptest.NewRequest("POST", "/v1/bottles", strings.NewReader(body))
			})

			It("should return not found", func() {
				mockService.EXPECT().
					CreateBottle(gomock.Any(), gomock.Any()).
					Return(usecases.ErrSubcategoryNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("getBottle", func() {
		When("the bottle does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/bottles/missing", nil)
			})

			It("should return not found", func() {
				mockService.EXPECT().
					GetBottle(gomock.Any(), domain.ID("missing")).
					Return(domain.Bottle{}, usecases.ErrBottleNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("listBottlesBySubcategory", func() {
		BeforeEach(func() {
			request = httptest.NewRequest("GET", "/v1/subcategories/sub-1/bottles", nil)
		})

		It("should return the bottles of the subcategory", func() {
			bottles := []domain.Bottle{
				{ID: "bottle-1", Name: "Dom Pérignon 2012", SubcategoryID: "sub-1"},
			}
			mockService.EXPECT().
				BottlesBySubcategory(gomock.Any(), domain.ID("sub-1")).
				Return(bottles, nil)

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response []map[string]any
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(HaveLen(1))
			Expect(response[0]["subcategory_id"]).To(Equal("sub-1"))
		})
	})
})
