package request

import (
	"strings"

	"panaderia_api/internal/domain/entities"
)

// ShippingQuoteRequest accepts either a bare location or a full address.
type ShippingQuoteRequest struct {
	Location     *GeoPointRequest `json:"location"`
	Municipality string           `json:"municipality"`
	Address      *AddressRequest  `json:"address"`
}

func (r ShippingQuoteRequest) ToLocation() entities.CustomerLocation {
	if r.Address != nil && r.Location == nil {
		return r.Address.ToEntity().CustomerLocation()
	}
	loc := entities.CustomerLocation{Municipality: strings.TrimSpace(r.Municipality)}
	if r.Location != nil {
		loc.Coordinates = &entities.GeoPoint{Lat: r.Location.Lat, Lng: r.Location.Lng}
	}
	if loc.Municipality == "" && r.Address != nil {
		loc.Municipality = strings.TrimSpace(r.Address.Municipality)
	}
	return loc
}

type ShippingRulesRequest struct {
	BasePerKm          float64  `json:"basePerKm" binding:"gte=0"`
	LowCostFlat        float64  `json:"lowCostFlat" binding:"gte=0"`
	EarlyOnlyAfterKm   float64  `json:"earlyOnlyAfterKm" binding:"gte=0"`
	MaxDistanceKm      float64  `json:"maxDistanceKm" binding:"gte=0"`
	ExpressFee         float64  `json:"expressFee" binding:"gte=0"`
	MunicipalitiesFree []string `json:"municipalitiesFree"`
}

func (r ShippingRulesRequest) ToEntity() entities.ShippingRules {
	return entities.ShippingRules{
		BasePerKm:          r.BasePerKm,
		LowCostFlat:        r.LowCostFlat,
		EarlyOnlyAfterKm:   r.EarlyOnlyAfterKm,
		MaxDistanceKm:      r.MaxDistanceKm,
		ExpressFee:         r.ExpressFee,
		MunicipalitiesFree: r.MunicipalitiesFree,
	}
}

type BranchRequest struct {
	Name            string          `json:"name" binding:"required"`
	Municipality    string          `json:"municipality"`
	Location        GeoPointRequest `json:"location"`
	FreeRadiusKm    float64         `json:"freeRadiusKm" binding:"gte=0"`
	LowCostRadiusKm float64         `json:"lowCostRadiusKm" binding:"gte=0"`
}

func (r BranchRequest) ToEntity(id string) entities.Branch {
	return entities.Branch{
		ID:              id,
		Name:            r.Name,
		Municipality:    r.Municipality,
		Location:        entities.GeoPoint{Lat: r.Location.Lat, Lng: r.Location.Lng},
		FreeRadiusKm:    r.FreeRadiusKm,
		LowCostRadiusKm: r.LowCostRadiusKm,
	}
}
