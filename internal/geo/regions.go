package geo

// countryRegions covers ISO 3166-1 alpha-2 codes the storefront ships to,
// whether or not the dataset carries a full entry for them.
var countryRegions = map[string]Region{
	// Europe
	"AD": RegionEU, "AL": RegionEU, "AT": RegionEU, "BA": RegionEU, "BE": RegionEU,
	"BG": RegionEU, "BY": RegionEU, "CH": RegionEU, "CY": RegionEU, "CZ": RegionEU,
	"DE": RegionEU, "DK": RegionEU, "EE": RegionEU, "ES": RegionEU, "FI": RegionEU,
	"FR": RegionEU, "GB": RegionEU, "GR": RegionEU, "HR": RegionEU, "HU": RegionEU,
	"IE": RegionEU, "IS": RegionEU, "IT": RegionEU, "LI": RegionEU, "LT": RegionEU,
	"LU": RegionEU, "LV": RegionEU, "MC": RegionEU, "MD": RegionEU, "ME": RegionEU,
	"MK": RegionEU, "MT": RegionEU, "NL": RegionEU, "NO": RegionEU, "PL": RegionEU,
	"PT": RegionEU, "RO": RegionEU, "RS": RegionEU, "SE": RegionEU, "SI": RegionEU,
	"SK": RegionEU, "SM": RegionEU, "UA": RegionEU, "VA": RegionEU,

	// North America
	"US": RegionNA, "CA": RegionNA, "MX": RegionNA, "BM": RegionNA, "GL": RegionNA,

	// Latin America and the Caribbean
	"AR": RegionLATAM, "BO": RegionLATAM, "BR": RegionLATAM, "CL": RegionLATAM,
	"CO": RegionLATAM, "CR": RegionLATAM, "CU": RegionLATAM, "DO": RegionLATAM,
	"EC": RegionLATAM, "GT": RegionLATAM, "HN": RegionLATAM, "JM": RegionLATAM,
	"NI": RegionLATAM, "PA": RegionLATAM, "PE": RegionLATAM, "PR": RegionLATAM,
	"PY": RegionLATAM, "SV": RegionLATAM, "TT": RegionLATAM, "UY": RegionLATAM,
	"VE": RegionLATAM,

	// Asia-Pacific
	"AU": RegionAPAC, "BD": RegionAPAC, "CN": RegionAPAC, "FJ": RegionAPAC,
	"HK": RegionAPAC, "ID": RegionAPAC, "IN": RegionAPAC, "JP": RegionAPAC,
	"KH": RegionAPAC, "KR": RegionAPAC, "LK": RegionAPAC, "MY": RegionAPAC,
	"MN": RegionAPAC, "NP": RegionAPAC, "NZ": RegionAPAC, "PH": RegionAPAC,
	"PK": RegionAPAC, "SG": RegionAPAC, "TH": RegionAPAC, "TW": RegionAPAC,
	"VN": RegionAPAC,

	// Middle East and Africa
	"AE": RegionMEA, "BH": RegionMEA, "DZ": RegionMEA, "EG": RegionMEA,
	"ET": RegionMEA, "GH": RegionMEA, "IL": RegionMEA, "IQ": RegionMEA,
	"JO": RegionMEA, "KE": RegionMEA, "KW": RegionMEA, "LB": RegionMEA,
	"LY": RegionMEA, "MA": RegionMEA, "NG": RegionMEA, "OM": RegionMEA,
	"QA": RegionMEA, "RW": RegionMEA, "SA": RegionMEA, "SN": RegionMEA,
	"TN": RegionMEA, "TR": RegionMEA, "TZ": RegionMEA, "UG": RegionMEA,
	"ZA": RegionMEA,
}
