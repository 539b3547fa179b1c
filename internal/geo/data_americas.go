package geo

func americasCountries() []Country {
	return []Country{
		{
			Code:              "CA",
			Name:              "Canada",
			Flag:              "🇨🇦",
			Capital:           "Ottawa",
			Area:              9984670,
			CurrencySymbol:    "$",
			OfficialLanguages: []string{"English", "French"},
			Demonym:           "Canadian",
			TaxInfo:           tax("GST", 5, "CAD", RegionNA),
			Provinces: []Province{
				{Code: "ON", Name: "Ontario", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(13), TaxName: "HST", TaxTypes: []string{"HST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YTO", "Toronto", "YOW", "Ottawa", "YHM", "Hamilton", "MIS", "Mississauga", "LON", "London")},
				{Code: "QC", Name: "Quebec", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(14.975), TaxName: "GST + QST", TaxTypes: []string{"GST", "QST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YMQ", "Montreal", "YQB", "Quebec City", "LAV", "Laval", "GAT", "Gatineau")},
				{Code: "BC", Name: "British Columbia", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(12), TaxName: "GST + PST", TaxTypes: []string{"GST", "PST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YVR", "Vancouver", "YYJ", "Victoria", "SUR", "Surrey", "BNB", "Burnaby")},
				{Code: "AB", Name: "Alberta", Type: "province", Cities: cities(
					"YYC", "Calgary", "YEG", "Edmonton", "RED", "Red Deer",
				)},
				{Code: "MB", Name: "Manitoba", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(12), TaxName: "GST + RST", TaxTypes: []string{"GST", "RST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YWG", "Winnipeg", "BRA", "Brandon")},
				{Code: "SK", Name: "Saskatchewan", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(11), TaxName: "GST + PST", TaxTypes: []string{"GST", "PST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YXE", "Saskatoon", "YQR", "Regina")},
				{Code: "NS", Name: "Nova Scotia", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(14), TaxName: "HST", TaxTypes: []string{"HST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YHZ", "Halifax", "SYD", "Sydney")},
				{Code: "NB", Name: "New Brunswick", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(15), TaxName: "HST", TaxTypes: []string{"HST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YQM", "Moncton", "YSJ", "Saint John", "YFC", "Fredericton")},
				{Code: "NL", Name: "Newfoundland and Labrador", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(15), TaxName: "HST", TaxTypes: []string{"HST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YYT", "St. John's", "CBN", "Corner Brook")},
				{Code: "PE", Name: "Prince Edward Island", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(15), TaxName: "HST", TaxTypes: []string{"HST"}, Currency: "CAD", Region: RegionNA},
					Cities:  cities("YYG", "Charlottetown", "SUM", "Summerside")},
				{Code: "YT", Name: "Yukon", Type: "territory", Cities: cities("YXY", "Whitehorse")},
				{Code: "NT", Name: "Northwest Territories", Type: "territory", Cities: cities("YZF", "Yellowknife")},
				{Code: "NU", Name: "Nunavut", Type: "territory", Cities: cities("YFB", "Iqaluit")},
			},
		},
		{
			Code:              "MX",
			Name:              "Mexico",
			Flag:              "🇲🇽",
			Capital:           "Mexico City",
			Area:              1964375,
			CurrencySymbol:    "$",
			OfficialLanguages: []string{"Spanish"},
			Demonym:           "Mexican",
			TaxInfo:           tax("IVA", 16, "MXN", RegionNA, 0),
			Provinces: []Province{
				{Code: "CMX", Name: "Mexico City", Type: "federal entity", Cities: cities(
					"MEX", "Mexico City", "COY", "Coyoacán", "TLP", "Tlalpan",
				)},
				{Code: "JAL", Name: "Jalisco", Type: "state", Cities: cities(
					"GDL", "Guadalajara", "PVR", "Puerto Vallarta", "ZAP", "Zapopan",
				)},
				{Code: "NLE", Name: "Nuevo León", Type: "state", Cities: cities(
					"MTY", "Monterrey", "SPG", "San Pedro Garza García",
				)},
				// Northern border region stimulus rate.
				{Code: "BCN", Name: "Baja California", Type: "state",
					TaxInfo: &TaxInfo{StandardRate: pct(8), TaxName: "IVA", TaxTypes: []string{"IVA"}, Currency: "MXN", Region: RegionNA},
					Cities:  cities("TIJ", "Tijuana", "MXL", "Mexicali", "ENS", "Ensenada")},
				{Code: "ROO", Name: "Quintana Roo", Type: "state", Cities: cities(
					"CUN", "Cancún", "PCM", "Playa del Carmen", "TUL", "Tulum",
				)},
			},
		},
		{
			Code:              "BR",
			Name:              "Brazil",
			Flag:              "🇧🇷",
			Capital:           "Brasília",
			Area:              8515767,
			CurrencySymbol:    "R$",
			OfficialLanguages: []string{"Portuguese"},
			Demonym:           "Brazilian",
			TaxInfo: &TaxInfo{
				StandardRate: pct(17),
				TaxName:      "ICMS",
				TaxTypes:     []string{"ICMS", "IPI", "PIS", "COFINS"},
				Currency:     "BRL",
				Region:       RegionLATAM,
			},
			Provinces: []Province{
				{Code: "SP", Name: "São Paulo", Type: "state",
					TaxInfo: &TaxInfo{StandardRate: pct(18), TaxName: "ICMS", TaxTypes: []string{"ICMS"}, Currency: "BRL", Region: RegionLATAM},
					Cities:  cities("SAO", "São Paulo", "CPQ", "Campinas", "SNT", "Santos", "GRU", "Guarulhos")},
				{Code: "RJ", Name: "Rio de Janeiro", Type: "state",
					TaxInfo: &TaxInfo{StandardRate: pct(20), TaxName: "ICMS", TaxTypes: []string{"ICMS"}, Currency: "BRL", Region: RegionLATAM},
					Cities:  cities("RIO", "Rio de Janeiro", "NIT", "Niterói", "PET", "Petrópolis")},
				{Code: "MG", Name: "Minas Gerais", Type: "state",
					TaxInfo: &TaxInfo{StandardRate: pct(18), TaxName: "ICMS", TaxTypes: []string{"ICMS"}, Currency: "BRL", Region: RegionLATAM},
					Cities:  cities("BHZ", "Belo Horizonte", "UDI", "Uberlândia", "JDF", "Juiz de Fora")},
				{Code: "DF", Name: "Distrito Federal", Type: "federal district",
					TaxInfo: &TaxInfo{StandardRate: pct(20), TaxName: "ICMS", TaxTypes: []string{"ICMS"}, Currency: "BRL", Region: RegionLATAM},
					Cities:  cities("BSB", "Brasília")},
				{Code: "BA", Name: "Bahia", Type: "state",
					TaxInfo: &TaxInfo{StandardRate: pct(20.5), TaxName: "ICMS", TaxTypes: []string{"ICMS"}, Currency: "BRL", Region: RegionLATAM},
					Cities:  cities("SSA", "Salvador", "FEC", "Feira de Santana")},
				// Manaus Free Trade Zone.
				{Code: "AM", Name: "Amazonas", Type: "state", Cities: []City{
					{Code: "MAO", Name: "Manaus", TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "ICMS", TaxTypes: []string{"ICMS"}, Currency: "BRL", Region: RegionLATAM}},
					{Code: "PIN", Name: "Parintins"},
				}},
			},
		},
		{
			Code:              "AR",
			Name:              "Argentina",
			Flag:              "🇦🇷",
			Capital:           "Buenos Aires",
			Area:              2780400,
			CurrencySymbol:    "$",
			OfficialLanguages: []string{"Spanish"},
			Demonym:           "Argentine",
			TaxInfo:           tax("IVA", 21, "ARS", RegionLATAM, 10.5, 27),
			Provinces: []Province{
				{Code: "C", Name: "Buenos Aires City", Type: "autonomous city", Cities: cities("BUE", "Buenos Aires")},
				{Code: "B", Name: "Buenos Aires", Type: "province", Cities: cities("LPG", "La Plata", "MDQ", "Mar del Plata", "BHI", "Bahía Blanca")},
				{Code: "X", Name: "Córdoba", Type: "province", Cities: cities("COR", "Córdoba", "RCU", "Río Cuarto")},
				{Code: "S", Name: "Santa Fe", Type: "province", Cities: cities("ROS", "Rosario", "SFN", "Santa Fe")},
				// Tierra del Fuego special customs area.
				{Code: "V", Name: "Tierra del Fuego", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "IVA", TaxTypes: []string{"IVA"}, Currency: "ARS", Region: RegionLATAM},
					Cities:  cities("USH", "Ushuaia", "RGA", "Río Grande")},
			},
		},
		{
			Code:              "CL",
			Name:              "Chile",
			Flag:              "🇨🇱",
			Capital:           "Santiago",
			Area:              756102,
			CurrencySymbol:    "$",
			OfficialLanguages: []string{"Spanish"},
			Demonym:           "Chilean",
			TaxInfo:           tax("IVA", 19, "CLP", RegionLATAM),
			Divisions: []Province{
				{Code: "RM", Name: "Santiago Metropolitan", Type: "region", Cities: cities("SCL", "Santiago", "PTA", "Puente Alto", "MAI", "Maipú")},
				{Code: "VS", Name: "Valparaíso", Type: "region", Cities: cities("VAP", "Valparaíso", "KNA", "Viña del Mar")},
				{Code: "BI", Name: "Biobío", Type: "region", Cities: cities("CCP", "Concepción", "TAL", "Talcahuano")},
			},
		},
		{
			Code:              "CO",
			Name:              "Colombia",
			Flag:              "🇨🇴",
			Capital:           "Bogotá",
			Area:              1141748,
			CurrencySymbol:    "$",
			OfficialLanguages: []string{"Spanish"},
			Demonym:           "Colombian",
			TaxInfo:           tax("IVA", 19, "COP", RegionLATAM, 5),
			Provinces: []Province{
				{Code: "DC", Name: "Bogotá D.C.", Type: "capital district", Cities: cities("BOG", "Bogotá")},
				{Code: "ANT", Name: "Antioquia", Type: "department", Cities: cities("MDE", "Medellín", "ENV", "Envigado")},
				{Code: "VAC", Name: "Valle del Cauca", Type: "department", Cities: cities("CLO", "Cali", "BUN", "Buenaventura")},
				// San Andrés is exempt from IVA.
				{Code: "SAP", Name: "San Andrés y Providencia", Type: "department",
					TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "IVA", TaxTypes: []string{"IVA"}, Currency: "COP", Region: RegionLATAM},
					Cities:  cities("ADZ", "San Andrés", "PVA", "Providencia")},
			},
		},
		{
			Code:              "PE",
			Name:              "Peru",
			Flag:              "🇵🇪",
			Capital:           "Lima",
			Area:              1285216,
			CurrencySymbol:    "S/",
			OfficialLanguages: []string{"Spanish", "Quechua", "Aymara"},
			Demonym:           "Peruvian",
			TaxInfo:           tax("IGV", 18, "PEN", RegionLATAM),
		},
		{
			Code:              "UY",
			Name:              "Uruguay",
			Flag:              "🇺🇾",
			Capital:           "Montevideo",
			Area:              176215,
			CurrencySymbol:    "$U",
			OfficialLanguages: []string{"Spanish"},
			Demonym:           "Uruguayan",
			TaxInfo:           tax("IVA", 22, "UYU", RegionLATAM, 10),
		},
	}
}
