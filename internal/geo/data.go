package geo

// allCountries assembles the bundled dataset. Each regional table lives in its
// own file.
func allCountries() []Country {
	var out []Country
	out = append(out, europeCountries()...)
	out = append(out, americasCountries()...)
	out = append(out, asiaPacificCountries()...)
	out = append(out, middleEastAfricaCountries()...)
	return out
}

// tax builds a single-rate record whose only tax type is its name.
func tax(name string, rate float64, currency string, region Region, reduced ...float64) *TaxInfo {
	return &TaxInfo{
		StandardRate: pct(rate),
		ReducedRates: reduced,
		TaxName:      name,
		TaxTypes:     []string{name},
		Currency:     currency,
		Region:       region,
	}
}

func vat(rate float64, currency string, region Region, reduced ...float64) *TaxInfo {
	return tax("VAT", rate, currency, region, reduced...)
}

func cities(pairs ...string) []City {
	out := make([]City, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, City{Code: pairs[i], Name: pairs[i+1]})
	}
	return out
}
