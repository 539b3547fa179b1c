package dto

import (
	"github.com/SscSPs/storefront/internal/geo"
	"github.com/shopspring/decimal"
)

// TaxInfoResponse is the resolved tax record for an address. Rate is the
// standard rate as a fraction ("0.19").
type TaxInfoResponse struct {
	CountryCode  string    `json:"countryCode"`
	ProvinceCode string    `json:"provinceCode,omitempty"`
	CityCode     string    `json:"cityCode,omitempty"`
	Rate         string    `json:"rate"`
	StandardRate *float64  `json:"standardRate,omitempty"`
	ReducedRates []float64 `json:"reducedRates,omitempty"`
	TaxName      string    `json:"taxName,omitempty"`
	TaxTypes     []string  `json:"taxTypes,omitempty"`
	Currency     string    `json:"currency"`
	Region       string    `json:"region"`
}

func ToTaxInfoResponse(country, province, city string, info *geo.TaxInfo, rate decimal.Decimal, currency string, region geo.Region) TaxInfoResponse {
	res := TaxInfoResponse{
		CountryCode:  country,
		ProvinceCode: province,
		CityCode:     city,
		Rate:         rate.String(),
		Currency:     currency,
		Region:       string(region),
	}
	if info != nil {
		res.StandardRate = info.StandardRate
		res.ReducedRates = info.ReducedRates
		res.TaxName = info.TaxName
		res.TaxTypes = info.TaxTypes
		if info.Currency != "" {
			res.Currency = info.Currency
		}
		if info.Region != "" {
			res.Region = string(info.Region)
		}
	}
	return res
}

// RegionResponse reports the tax region of a country code.
type RegionResponse struct {
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
}

// SearchParams is the optional ?q= filter of the geo lists.
type SearchParams struct {
	Query string `form:"q" binding:"max=100"`
}
