package geo

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var hundred = decimal.NewFromInt(100)

// Directory answers lookups over an immutable set of countries.
// All methods are safe for concurrent use.
type Directory struct {
	countries []Country
}

// NewDirectory builds a directory over countries. The slice is not copied and
// must not be modified afterwards.
func NewDirectory(countries []Country) *Directory {
	return &Directory{countries: countries}
}

var defaultDirectory = NewDirectory(allCountries())

// Default returns the directory over the bundled dataset.
func Default() *Directory {
	return defaultDirectory
}

// Countries returns every country in dataset order.
func (d *Directory) Countries() []Country {
	return d.countries
}

// CountryByCode returns the country with the given code, or nil.
func (d *Directory) CountryByCode(code string) *Country {
	code = strings.TrimSpace(code)
	for i := range d.countries {
		if strings.EqualFold(d.countries[i].Code, code) {
			return &d.countries[i]
		}
	}
	return nil
}

// CountryByName returns the country with the given name, or nil.
func (d *Directory) CountryByName(name string) *Country {
	name = strings.TrimSpace(name)
	for i := range d.countries {
		if strings.EqualFold(d.countries[i].Name, name) {
			return &d.countries[i]
		}
	}
	return nil
}

// ProvincesByCountry returns the subdivisions of a country, or an empty slice.
func (d *Directory) ProvincesByCountry(countryCode string) []Province {
	country := d.CountryByCode(countryCode)
	if country == nil {
		return []Province{}
	}
	return nonNil(country.Subdivisions())
}

func (d *Directory) province(countryCode, provinceCode string) *Province {
	country := d.CountryByCode(countryCode)
	if country == nil {
		return nil
	}
	subs := country.Subdivisions()
	for i := range subs {
		if strings.EqualFold(subs[i].Code, provinceCode) {
			return &subs[i]
		}
	}
	return nil
}

// CitiesByProvince returns the cities of a province, or an empty slice.
func (d *Directory) CitiesByProvince(countryCode, provinceCode string) []City {
	p := d.province(countryCode, provinceCode)
	if p == nil {
		return []City{}
	}
	return nonNil(p.Cities)
}

// TaxInfo resolves the most specific tax record: city, then province, then
// country. Empty provinceCode or cityCode skip that level. Returns nil when the
// country is unknown or has no tax record.
func (d *Directory) TaxInfo(countryCode, provinceCode, cityCode string) *TaxInfo {
	country := d.CountryByCode(countryCode)
	if country == nil {
		return nil
	}
	if provinceCode != "" {
		if p := d.province(countryCode, provinceCode); p != nil {
			if cityCode != "" {
				for i := range p.Cities {
					if strings.EqualFold(p.Cities[i].Code, cityCode) && p.Cities[i].TaxInfo != nil {
						return p.Cities[i].TaxInfo
					}
				}
			}
			if p.TaxInfo != nil {
				return p.TaxInfo
			}
		}
	}
	return country.TaxInfo
}

// TaxRate returns the standard rate as a fraction (19% → 0.19), or zero when
// no rate is known.
func (d *Directory) TaxRate(countryCode, provinceCode string) decimal.Decimal {
	return d.TaxInfo(countryCode, provinceCode, "").Rate()
}

// Rate returns the standard rate as a fraction. A nil record or a record
// without a standard rate yields zero.
func (t *TaxInfo) Rate() decimal.Decimal {
	if t == nil || t.StandardRate == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*t.StandardRate).Div(hundred)
}

// Currency returns the country's ISO currency code, or DefaultCurrency.
func (d *Directory) Currency(countryCode string) string {
	country := d.CountryByCode(countryCode)
	if country == nil || country.TaxInfo == nil || country.TaxInfo.Currency == "" {
		return DefaultCurrency
	}
	return country.TaxInfo.Currency
}

// CurrencySymbol returns the symbol used by the first country billing in the
// given currency, or "" when none does.
func (d *Directory) CurrencySymbol(currency string) string {
	for i := range d.countries {
		c := &d.countries[i]
		if c.TaxInfo != nil && strings.EqualFold(c.TaxInfo.Currency, currency) && c.CurrencySymbol != "" {
			return c.CurrencySymbol
		}
	}
	return ""
}

// CountryOptions lists every country sorted by name.
func (d *Directory) CountryOptions() []Option {
	opts := make([]Option, 0, len(d.countries))
	for _, c := range d.countries {
		opts = append(opts, Option{Value: c.Code, Label: c.Name})
	}
	return sortOptions(opts)
}

// ProvinceOptions lists a country's subdivisions sorted by name.
func (d *Directory) ProvinceOptions(countryCode string) []Option {
	provinces := d.ProvincesByCountry(countryCode)
	opts := make([]Option, 0, len(provinces))
	for _, p := range provinces {
		opts = append(opts, Option{Value: p.Code, Label: p.Name})
	}
	return sortOptions(opts)
}

// CityOptions lists a province's cities sorted by name.
func (d *Directory) CityOptions(countryCode, provinceCode string) []Option {
	cities := d.CitiesByProvince(countryCode, provinceCode)
	opts := make([]Option, 0, len(cities))
	for _, c := range cities {
		opts = append(opts, Option{Value: c.Code, Label: c.Name})
	}
	return sortOptions(opts)
}

// SearchCountries matches query case-insensitively against name and code.
func (d *Directory) SearchCountries(query string) []Country {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Country{}
	if q == "" {
		return out
	}
	for _, c := range d.countries {
		if matches(q, c.Name, c.Code) {
			out = append(out, c)
		}
	}
	return out
}

// SearchProvinces matches query case-insensitively against a country's
// subdivision names and codes.
func (d *Directory) SearchProvinces(countryCode, query string) []Province {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Province{}
	if q == "" {
		return out
	}
	for _, p := range d.ProvincesByCountry(countryCode) {
		if matches(q, p.Name, p.Code) {
			out = append(out, p)
		}
	}
	return out
}

// CountryRegion reports the tax region for a country code, including codes
// that have no entry in the dataset.
func (d *Directory) CountryRegion(code string) Region {
	if r, ok := countryRegions[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return r
	}
	return RegionOther
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// sortOptions orders options by label using English collation so accented
// names ("Île-de-France") sort next to their unaccented neighbours.
func sortOptions(opts []Option) []Option {
	col := collate.New(language.English, collate.Loose)
	slices.SortStableFunc(opts, func(a, b Option) int {
		return col.CompareString(a.Label, b.Label)
	})
	return opts
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Package-level helpers over the bundled dataset.

// CountryByCode looks up a country in the bundled dataset.
func CountryByCode(code string) *Country {
	return defaultDirectory.CountryByCode(code)
}

// ProvincesByCountry lists subdivisions from the bundled dataset.
func ProvincesByCountry(code string) []Province {
	return defaultDirectory.ProvincesByCountry(code)
}

// TaxRate is Default().TaxRate.
func TaxRate(country, province string) decimal.Decimal {
	return defaultDirectory.TaxRate(country, province)
}

// Currency is Default().Currency.
func Currency(code string) string {
	return defaultDirectory.Currency(code)
}

// SearchCountries is Default().SearchCountries.
func SearchCountries(q string) []Country {
	return defaultDirectory.SearchCountries(q)
}

// CountryByName is Default().CountryByName.
func CountryByName(name string) *Country {
	return defaultDirectory.CountryByName(name)
}

// CitiesByProvince is Default().CitiesByProvince.
func CitiesByProvince(country, province string) []City {
	return defaultDirectory.CitiesByProvince(country, province)
}

// LookupTaxInfo is Default().TaxInfo. The name avoids clashing with the
// TaxInfo type.
func LookupTaxInfo(country, province, city string) *TaxInfo {
	return defaultDirectory.TaxInfo(country, province, city)
}

// CountryOptions is Default().CountryOptions.
func CountryOptions() []Option {
	return defaultDirectory.CountryOptions()
}

// ProvinceOptions is Default().ProvinceOptions.
func ProvinceOptions(country string) []Option {
	return defaultDirectory.ProvinceOptions(country)
}

// CityOptions is Default().CityOptions.
func CityOptions(country, province string) []Option {
	return defaultDirectory.CityOptions(country, province)
}

// SearchProvinces is Default().SearchProvinces.
func SearchProvinces(country, q string) []Province {
	return defaultDirectory.SearchProvinces(country, q)
}

// CountryRegion is Default().CountryRegion.
func CountryRegion(code string) Region {
	return defaultDirectory.CountryRegion(code)
}
