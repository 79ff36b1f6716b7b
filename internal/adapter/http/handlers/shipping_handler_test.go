package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"panaderia_api/internal/adapter/http/handlers/mocks"
	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase"
	"panaderia_api/pkg"

	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
)

func TestShippingHandler_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIShippingUseCase(ctrl)
	r := newTestRouter(nil)
	r.POST("/v1/shipping/quote", NewShippingHandler(uc).Quote)

	uc.EXPECT().Quote(gomock.Any(), entities.CustomerLocation{
		Coordinates:  &entities.GeoPoint{Lat: 20.6, Lng: -103.3},
		Municipality: "Zapopan",
	}).Return(entities.ShippingQuote{BranchID: "centro", DistanceKm: 3.2, Amount: 0, ExpressFee: 59}, nil)

	w := doJSON(r, http.MethodPost, "/v1/shipping/quote", `{"location":{"lat":20.6,"lng":-103.3},"municipality":"Zapopan"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]any
	decodeBody(t, w, &got)
	if got["branchId"] != "centro" || got["expressFee"] != float64(59) {
		t.Fatalf("unexpected quote: %v", got)
	}
	if _, ok := got["notes"].([]any); !ok {
		t.Fatalf("notes should be a list: %v", got["notes"])
	}
}

func TestShippingHandler_QuoteRejectsBadCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIShippingUseCase(ctrl)
	r := newTestRouter(nil)
	r.POST("/v1/shipping/quote", NewShippingHandler(uc).Quote)

	w := doJSON(r, http.MethodPost, "/v1/shipping/quote", `{"location":{"lat":200,"lng":0}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestShippingHandler_Catalog(t *testing.T) {
	t.Run("branches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShippingUseCase(ctrl)
		r := newTestRouter(nil)
		r.GET("/v1/shipping/branches", NewShippingHandler(uc).ListBranches)

		uc.EXPECT().ListBranches(gomock.Any()).Return([]entities.Branch{{ID: "centro", Name: "Centro"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/shipping/branches", "")
		var got []map[string]any
		decodeBody(t, w, &got)
		if w.Code != http.StatusOK || len(got) != 1 || got[0]["freeRadiusKm"] != entities.DefaultFreeRadiusKm {
			t.Fatalf("unexpected response %d %v", w.Code, got)
		}
	})

	t.Run("rules storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShippingUseCase(ctrl)
		r := newTestRouter(nil)
		r.GET("/v1/shipping/rules", NewShippingHandler(uc).GetRules)

		uc.EXPECT().GetRules(gomock.Any()).Return(entities.ShippingRules{}, errors.New("dynamo down"))

		w := doJSON(r, http.MethodGet, "/v1/shipping/rules", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestShippingHandler_Admin(t *testing.T) {
	t.Run("put rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShippingUseCase(ctrl)
		r := newTestRouter(nil)
		r.PUT("/v1/admin/shipping/rules", NewShippingHandler(uc).PutRules)

		uc.EXPECT().PutRules(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in entities.ShippingRules) (entities.ShippingRules, error) {
			if in.BasePerKm != 9 || len(in.MunicipalitiesFree) != 1 {
				t.Fatalf("unexpected rules: %+v", in)
			}
			return in, nil
		})

		w := doJSON(r, http.MethodPut, "/v1/admin/shipping/rules", `{"basePerKm":9,"municipalitiesFree":["Guadalajara"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("upsert branch validation details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShippingUseCase(ctrl)
		r := newTestRouter(nil)
		r.PUT("/v1/admin/branches/:id", NewShippingHandler(uc).UpsertBranch)

		verr := multierr.Combine(
			fmt.Errorf("%w: lat out of range", usecase.ErrInvalidBranch),
			fmt.Errorf("%w: lowCostRadiusKm must be >= freeRadiusKm", usecase.ErrInvalidBranch),
		)
		uc.EXPECT().UpsertBranch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, b entities.Branch) (entities.Branch, error) {
			if b.ID != "norte" {
				t.Fatalf("expected id from path, got %q", b.ID)
			}
			return entities.Branch{}, verr
		})

		w := doJSON(r, http.MethodPut, "/v1/admin/branches/norte", `{"name":"Norte","location":{"lat":20,"lng":-103},"freeRadiusKm":8,"lowCostRadiusKm":4}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var got pkg.HTTPError
		decodeBody(t, w, &got)
		if got.Code != "INVALID_BRANCH" || got.Details["lat"] != "out of range" || got.Details["lowCostRadiusKm"] != "must be >= freeRadiusKm" {
			t.Fatalf("unexpected error body: %+v", got)
		}
	})
}
