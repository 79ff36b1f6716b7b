// Package shipping quotes delivery fees from the nearest branch.
//
// The calculator is a pure function of its inputs: no storage, no network. When
// there is not enough information to quote (no coordinates, no branches, no
// rules) it returns a neutral zero quote instead of failing.
package shipping

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"panaderia_api/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const earthRadiusKm = 6371.0

const (
	NoteFreeZone      = "Zona cercana o municipio con envío gratis"
	NoteLowCostZone   = "Zona cercana: tarifa fija de envío"
	NoteEarlyOnly     = "Por la distancia solo ofrecemos horarios de entrega temprano"
	NoteOutOfCoverage = "La dirección está fuera de nuestra zona de cobertura"
)

// Compute returns the quote for loc against the nearest of branches.
func Compute(loc entities.CustomerLocation, branches []entities.Branch, rules *entities.ShippingRules) entities.ShippingQuote {
	if loc.Coordinates == nil || len(branches) == 0 || rules == nil {
		return NeutralQuote()
	}
	r := rules.WithDefaults()

	nearest, dist := Nearest(*loc.Coordinates, branches)
	freeRadius := nearest.EffectiveFreeRadiusKm()
	lowCostRadius := nearest.EffectiveLowCostRadiusKm()

	quote := entities.ShippingQuote{
		BranchID:           nearest.ID,
		BranchName:         nearest.Name,
		BranchMunicipality: nearest.Municipality,
		DistanceKm:         roundTenth(dist),
		ExpressFee:         roundUnits(decimal.NewFromFloat(r.ExpressFee)),
		Notes:              []string{},
	}

	switch {
	case IsFreeMunicipality(loc.Municipality, r.MunicipalitiesFree) || dist <= freeRadius:
		quote.Amount = 0
		quote.Notes = append(quote.Notes, NoteFreeZone)
	case dist <= lowCostRadius:
		quote.Amount = roundUnits(decimal.NewFromFloat(r.LowCostFlat))
		quote.Notes = append(quote.Notes, NoteLowCostZone)
	default:
		extraKm := decimal.NewFromFloat(dist - lowCostRadius)
		fee := decimal.NewFromFloat(r.LowCostFlat).Add(extraKm.Mul(decimal.NewFromFloat(r.BasePerKm)))
		quote.Amount = roundUnits(fee)
		quote.Notes = append(quote.Notes, fmt.Sprintf("Tarifa base más %.1f km adicionales a $%s por km",
			roundTenth(dist-lowCostRadius), decimal.NewFromFloat(r.BasePerKm).String()))
		if dist >= r.EarlyOnlyAfterKm {
			quote.EarlyOnly = true
			quote.Notes = append(quote.Notes, NoteEarlyOnly)
		}
	}

	if r.MaxDistanceKm > 0 && dist > r.MaxDistanceKm {
		quote.OutOfCoverage = true
		quote.Notes = append(quote.Notes, NoteOutOfCoverage)
	}
	return quote
}

// NeutralQuote is the zero-fee, zero-distance quote used until an address is known.
func NeutralQuote() entities.ShippingQuote {
	return entities.ShippingQuote{Notes: []string{}}
}

// Nearest returns the branch closest to p and its distance in km. Ties keep the
// first branch in list order. branches must not be empty.
func Nearest(p entities.GeoPoint, branches []entities.Branch) (entities.Branch, float64) {
	best := branches[0]
	bestDist := HaversineKm(p, best.Location)
	for _, b := range branches[1:] {
		if d := HaversineKm(p, b.Location); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, bestDist
}

// HaversineKm is the great-circle distance between a and b.
func HaversineKm(a, b entities.GeoPoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push h just outside [0,1] for antipodal points.
	h = math.Min(1, math.Max(0, h))
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// IsFreeMunicipality matches ignoring case, accents and surrounding spaces.
func IsFreeMunicipality(municipality string, free []string) bool {
	name := NormalizeMunicipality(municipality)
	if name == "" {
		return false
	}
	for _, f := range free {
		if NormalizeMunicipality(f) == name {
			return true
		}
	}
	return false
}

func NormalizeMunicipality(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundUnits(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}
