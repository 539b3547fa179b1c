package geo_test

import (
	"testing"

	"github.com/SscSPs/storefront/internal/geo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestTaxInfo_CountryLevel(t *testing.T) {
	info := geo.Default().TaxInfo("DZ", "", "")
	require.NotNil(t, info)
	require.NotNil(t, info.StandardRate)
	assert.Equal(t, 19.0, *info.StandardRate)
	assert.Equal(t, "VAT", info.TaxName)
	assert.Equal(t, "DZD", info.Currency)
	assert.Equal(t, geo.RegionMEA, info.Region)
}

func TestTaxInfo_UnknownCountry(t *testing.T) {
	assert.Nil(t, geo.Default().TaxInfo("US", "", ""))
	assert.Nil(t, geo.Default().TaxInfo("", "", ""))
}

func TestTaxInfo_Fallbacks(t *testing.T) {
	d := geo.Default()

	tests := []struct {
		name     string
		country  string
		province string
		city     string
		wantRate float64
		wantName string
	}{
		{name: "province override", country: "ES", province: "CN", wantRate: 7, wantName: "IGIC"},
		{name: "province without override uses country", country: "ES", province: "MD", wantRate: 21, wantName: "IVA"},
		{name: "unknown province uses country", country: "ES", province: "ZZ", wantRate: 21, wantName: "IVA"},
		{name: "city override", country: "IL", province: "D", city: "ETH", wantRate: 0, wantName: "VAT"},
		{name: "city without override uses country", country: "IL", province: "D", city: "BEV", wantRate: 18, wantName: "VAT"},
		{name: "city without override uses province", country: "CA", province: "ON", city: "YTO", wantRate: 13, wantName: "HST"},
		{name: "lowercase codes", country: "ca", province: "qc", wantRate: 14.975, wantName: "GST + QST"},
		{name: "divisions are searched too", country: "PT", province: "20", wantRate: 16, wantName: "IVA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := d.TaxInfo(tt.country, tt.province, tt.city)
			require.NotNil(t, info)
			require.NotNil(t, info.StandardRate)
			assert.Equal(t, tt.wantRate, *info.StandardRate)
			assert.Equal(t, tt.wantName, info.TaxName)
		})
	}
}

func TestTaxRate_MatchesStandardRateForEveryCountry(t *testing.T) {
	d := geo.Default()
	for _, c := range d.Countries() {
		got := d.TaxRate(c.Code, "")
		if c.TaxInfo == nil || c.TaxInfo.StandardRate == nil {
			assert.True(t, got.IsZero(), c.Code)
			continue
		}
		want := decimal.NewFromFloat(*c.TaxInfo.StandardRate).Div(decimal.NewFromInt(100))
		assert.True(t, want.Equal(got), "%s: want %s got %s", c.Code, want, got)
	}
}

func TestTaxRate_Values(t *testing.T) {
	assert.Equal(t, "0.19", geo.TaxRate("DZ", "").String())
	assert.Equal(t, "0.13", geo.TaxRate("CA", "ON").String())
	assert.True(t, geo.TaxRate("US", "").IsZero())
}

func TestTaxRate_MissingRate(t *testing.T) {
	d := geo.NewDirectory([]geo.Country{
		{Code: "XA", Name: "No Rate", TaxInfo: &geo.TaxInfo{TaxName: "VAT", Currency: "EUR"}},
		{Code: "XB", Name: "No Info"},
	})
	assert.True(t, d.TaxRate("XA", "").IsZero())
	assert.True(t, d.TaxRate("XB", "").IsZero())
}

func TestCurrency(t *testing.T) {
	d := geo.NewDirectory([]geo.Country{
		{Code: "XA", Name: "With Currency", TaxInfo: &geo.TaxInfo{Currency: "EUR"}},
		{Code: "XB", Name: "Empty Currency", TaxInfo: &geo.TaxInfo{TaxName: "VAT"}},
		{Code: "XC", Name: "No Info"},
	})
	assert.Equal(t, "EUR", d.Currency("XA"))
	assert.Equal(t, geo.DefaultCurrency, d.Currency("XB"))
	assert.Equal(t, geo.DefaultCurrency, d.Currency("XC"))
	assert.Equal(t, geo.DefaultCurrency, d.Currency("nope"))

	assert.Equal(t, "DZD", geo.Currency("DZ"))
	assert.Equal(t, "USD", geo.Currency("US"))
}

func TestCountryLookups(t *testing.T) {
	d := geo.Default()

	de := d.CountryByCode("de")
	require.NotNil(t, de)
	assert.Equal(t, "Germany", de.Name)

	byName := d.CountryByName("  germany ")
	require.NotNil(t, byName)
	assert.Equal(t, "DE", byName.Code)

	assert.Nil(t, d.CountryByCode("XX"))
	assert.Nil(t, d.CountryByName("Atlantis"))
}

func TestProvincesAndCities(t *testing.T) {
	d := geo.Default()

	assert.NotEmpty(t, d.ProvincesByCountry("DE"))
	assert.NotEmpty(t, d.ProvincesByCountry("GB"), "divisions are returned when provinces are absent")
	assert.NotNil(t, d.ProvincesByCountry("SG"))
	assert.Empty(t, d.ProvincesByCountry("SG"))
	assert.Empty(t, d.ProvincesByCountry("XX"))

	cities := d.CitiesByProvince("DE", "BY")
	require.NotEmpty(t, cities)
	assert.Equal(t, "Munich", cities[0].Name)
	assert.NotNil(t, d.CitiesByProvince("DE", "XX"))
	assert.Empty(t, d.CitiesByProvince("DE", "XX"))
}

func TestSearchCountries(t *testing.T) {
	names := func(cs []geo.Country) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Contains(t, names(geo.SearchCountries("ger")), "Germany")
	assert.Contains(t, names(geo.SearchCountries("GER")), "Germany")
	assert.Contains(t, names(geo.SearchCountries("ng")), "Nigeria", "code matches count")
	assert.Equal(t, []geo.Country{}, geo.SearchCountries("xx-nonexistent"))
	assert.Empty(t, geo.SearchCountries("   "))
}

func TestSearchProvinces(t *testing.T) {
	d := geo.Default()
	got := d.SearchProvinces("CA", "nova")
	require.Len(t, got, 1)
	assert.Equal(t, "NS", got[0].Code)

	got = d.SearchProvinces("CA", "qc")
	require.Len(t, got, 1)
	assert.Equal(t, "Quebec", got[0].Name)

	assert.Empty(t, d.SearchProvinces("XX", "a"))
	assert.Empty(t, d.SearchProvinces("CA", "zzz"))
}

func assertSortedByLabel(t *testing.T, opts []geo.Option) {
	t.Helper()
	col := collate.New(language.English, collate.Loose)
	for i := 1; i < len(opts); i++ {
		assert.LessOrEqual(t, col.CompareString(opts[i-1].Label, opts[i].Label), 0,
			"%q should sort before %q", opts[i-1].Label, opts[i].Label)
	}
}

func TestOptionsAreSorted(t *testing.T) {
	d := geo.Default()

	countries := d.CountryOptions()
	assert.Len(t, countries, len(d.Countries()))
	assertSortedByLabel(t, countries)

	for _, c := range d.Countries() {
		assertSortedByLabel(t, d.ProvinceOptions(c.Code))
		for _, p := range c.Subdivisions() {
			assertSortedByLabel(t, d.CityOptions(c.Code, p.Code))
		}
	}
}

func TestProvinceOptions_Content(t *testing.T) {
	opts := geo.Default().ProvinceOptions("FR")
	require.NotEmpty(t, opts)
	assert.Equal(t, geo.Option{Value: "ARA", Label: "Auvergne-Rhône-Alpes"}, opts[0])
	assert.Empty(t, geo.Default().CityOptions("FR", "XX"))
}

func TestCountryRegion(t *testing.T) {
	d := geo.Default()
	assert.Equal(t, geo.RegionNA, d.CountryRegion("US"))
	assert.Equal(t, geo.RegionEU, d.CountryRegion("de"))
	assert.Equal(t, geo.RegionLATAM, d.CountryRegion("BR"))
	assert.Equal(t, geo.RegionAPAC, d.CountryRegion("JP"))
	assert.Equal(t, geo.RegionMEA, d.CountryRegion("DZ"))
	assert.Equal(t, geo.RegionOther, d.CountryRegion("AQ"))
}

func TestCurrencySymbol(t *testing.T) {
	d := geo.Default()
	assert.Equal(t, "€", d.CurrencySymbol("EUR"))
	assert.Equal(t, "£", d.CurrencySymbol("gbp"))
	assert.Equal(t, "", d.CurrencySymbol("USD"))
}

func TestTaxInfoRate(t *testing.T) {
	var missing *geo.TaxInfo
	assert.True(t, missing.Rate().IsZero())
	assert.True(t, (&geo.TaxInfo{TaxName: "VAT"}).Rate().IsZero())

	rate := 14.975
	assert.Equal(t, "0.14975", (&geo.TaxInfo{StandardRate: &rate}).Rate().String())
}

func TestPackageLevelHelpers(t *testing.T) {
	d := geo.Default()

	assert.Equal(t, d.CountryByCode("dz"), geo.CountryByCode("dz"))
	assert.Equal(t, d.CountryByName("canada"), geo.CountryByName("canada"))
	assert.Equal(t, d.ProvincesByCountry("CA"), geo.ProvincesByCountry("CA"))
	assert.Equal(t, d.CitiesByProvince("CA", "ON"), geo.CitiesByProvince("CA", "ON"))
	assert.Equal(t, d.TaxInfo("CA", "ON", ""), geo.LookupTaxInfo("CA", "ON", ""))
	assert.Nil(t, geo.LookupTaxInfo("US", "", ""))
	assert.True(t, d.TaxRate("CA", "ON").Equal(geo.TaxRate("CA", "ON")))
	assert.Equal(t, d.Currency("DZ"), geo.Currency("DZ"))
	assert.Equal(t, d.CountryOptions(), geo.CountryOptions())
	assert.Equal(t, d.ProvinceOptions("CA"), geo.ProvinceOptions("CA"))
	assert.Equal(t, d.CityOptions("CA", "ON"), geo.CityOptions("CA", "ON"))
	assert.Equal(t, d.SearchCountries("alg"), geo.SearchCountries("alg"))
	assert.Equal(t, d.SearchProvinces("CA", "on"), geo.SearchProvinces("CA", "on"))
	assert.Equal(t, geo.RegionNA, geo.CountryRegion("us"))
	assert.Equal(t, geo.RegionOther, geo.CountryRegion("ZZ"))
}
