// Package geo holds the storefront's country/province/city reference data and
// the tax metadata used by checkout and address forms.
package geo

// Region groups countries for tax reporting.
type Region string

const (
	RegionEU    Region = "EU"
	RegionNA    Region = "NA"
	RegionAPAC  Region = "APAC"
	RegionLATAM Region = "LATAM"
	RegionMEA   Region = "MEA"
	RegionOther Region = "Other"
)

// DefaultCurrency is reported for countries without tax metadata.
const DefaultCurrency = "USD"

// TaxInfo is the tax record of a country, province or city.
// StandardRate and ReducedRates are percentages (19 means 19%).
type TaxInfo struct {
	StandardRate *float64  `json:"standardRate,omitempty"`
	ReducedRates []float64 `json:"reducedRates,omitempty"`
	TaxName      string    `json:"taxName,omitempty"`
	TaxTypes     []string  `json:"taxTypes,omitempty"`
	Currency     string    `json:"currency,omitempty"`
	Region       Region    `json:"region,omitempty"`
}

// City is a third-level entry.
type City struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	TaxInfo *TaxInfo `json:"taxInfo,omitempty"`
}

// Province is a second-level administrative subdivision. Some countries call
// them divisions, states or regions; Type carries that label.
type Province struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Type    string   `json:"type,omitempty"`
	Cities  []City   `json:"cities,omitempty"`
	TaxInfo *TaxInfo `json:"taxInfo,omitempty"`
}

// Country is a top-level reference entry.
type Country struct {
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	Flag              string     `json:"flag,omitempty"`
	Capital           string     `json:"capital,omitempty"`
	Area              float64    `json:"area,omitempty"`
	CurrencySymbol    string     `json:"currencySymbol,omitempty"`
	OfficialLanguages []string   `json:"officialLanguages,omitempty"`
	Demonym           string     `json:"demonym,omitempty"`
	Provinces         []Province `json:"provinces,omitempty"`
	Divisions         []Province `json:"divisions,omitempty"`
	TaxInfo           *TaxInfo   `json:"taxInfo,omitempty"`
}

// Subdivisions returns the country's provinces, or its divisions when the
// dataset stores them under that name.
func (c *Country) Subdivisions() []Province {
	if len(c.Provinces) > 0 {
		return c.Provinces
	}
	return c.Divisions
}

// Option is a value/label pair for select inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func pct(v float64) *float64 {
	return &v
}
