package entities

const (
	DefaultFreeRadiusKm     = 5.0
	DefaultLowCostRadiusKm  = 12.0
	DefaultBasePerKm        = 8.0
	DefaultLowCostFlat      = 39.0
	DefaultEarlyOnlyAfterKm = 25.0
	DefaultExpressFee       = 59.0
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CustomerLocation is the input the calculator quotes against. Coordinates are
// nil until the customer picks an address on the map.
type CustomerLocation struct {
	Coordinates  *GeoPoint `json:"coordinates,omitempty"`
	Municipality string    `json:"municipality,omitempty"`
}

// Branch is a physical store with its delivery radii.
//
// Storage model (DynamoDB):
//   - PK: id
type Branch struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Municipality    string   `json:"municipality"`
	Location        GeoPoint `json:"location"`
	FreeRadiusKm    float64  `json:"freeRadiusKm"`
	LowCostRadiusKm float64  `json:"lowCostRadiusKm"`
}

func (b Branch) EffectiveFreeRadiusKm() float64 {
	if b.FreeRadiusKm > 0 {
		return b.FreeRadiusKm
	}
	return DefaultFreeRadiusKm
}

func (b Branch) EffectiveLowCostRadiusKm() float64 {
	if b.LowCostRadiusKm > 0 {
		return b.LowCostRadiusKm
	}
	return DefaultLowCostRadiusKm
}

// ShippingRules is the singleton pricing configuration.
//
// Zero numeric fields mean "use the default". MaxDistanceKm = 0 disables the
// coverage limit.
type ShippingRules struct {
	BasePerKm          float64  `json:"basePerKm"`
	LowCostFlat        float64  `json:"lowCostFlat"`
	EarlyOnlyAfterKm   float64  `json:"earlyOnlyAfterKm"`
	MaxDistanceKm      float64  `json:"maxDistanceKm"`
	ExpressFee         float64  `json:"expressFee"`
	MunicipalitiesFree []string `json:"municipalitiesFree"`
}

// WithDefaults returns a copy with every unset numeric field filled in.
func (r ShippingRules) WithDefaults() ShippingRules {
	if r.BasePerKm <= 0 {
		r.BasePerKm = DefaultBasePerKm
	}
	if r.LowCostFlat <= 0 {
		r.LowCostFlat = DefaultLowCostFlat
	}
	if r.EarlyOnlyAfterKm <= 0 {
		r.EarlyOnlyAfterKm = DefaultEarlyOnlyAfterKm
	}
	if r.ExpressFee <= 0 {
		r.ExpressFee = DefaultExpressFee
	}
	if r.MaxDistanceKm < 0 {
		r.MaxDistanceKm = 0
	}
	return r
}

// ShippingQuote is computed per address and never persisted on its own; orders
// keep a snapshot of it.
type ShippingQuote struct {
	BranchID           string   `json:"branchId,omitempty"`
	BranchName         string   `json:"branchName,omitempty"`
	BranchMunicipality string   `json:"branchMunicipality,omitempty"`
	DistanceKm         float64  `json:"distanceKm"`
	Amount             int      `json:"amount"`
	EarlyOnly          bool     `json:"earlyOnly"`
	OutOfCoverage      bool     `json:"outOfCoverage"`
	Notes              []string `json:"notes"`
	ExpressFee         int      `json:"expressFee"`
}

// IsNeutral reports whether the quote is the "not enough info" fallback.
func (q ShippingQuote) IsNeutral() bool {
	return q.BranchID == "" && q.Amount == 0 && q.DistanceKm == 0
}
