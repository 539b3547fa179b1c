package geo

func europeCountries() []Country {
	return []Country{
		{
			Code:              "DE",
			Name:              "Germany",
			Flag:              "🇩🇪",
			Capital:           "Berlin",
			Area:              357022,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"German"},
			Demonym:           "German",
			TaxInfo: &TaxInfo{
				StandardRate: pct(19),
				ReducedRates: []float64{7},
				TaxName:      "MwSt",
				TaxTypes:     []string{"VAT", "MwSt"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Provinces: []Province{
				{Code: "BE", Name: "Berlin", Type: "state", Cities: cities(
					"BER", "Berlin", "SPA", "Spandau", "PKW", "Pankow",
				)},
				{Code: "BY", Name: "Bavaria", Type: "state", Cities: cities(
					"MUC", "Munich", "NUE", "Nuremberg", "AGB", "Augsburg", "REG", "Regensburg", "WUE", "Würzburg",
				)},
				{Code: "HH", Name: "Hamburg", Type: "state", Cities: cities(
					"HAM", "Hamburg", "ALT", "Altona",
				)},
				{Code: "HE", Name: "Hesse", Type: "state", Cities: cities(
					"FRA", "Frankfurt am Main", "WIE", "Wiesbaden", "KSF", "Kassel", "DAR", "Darmstadt",
				)},
				{Code: "NW", Name: "North Rhine-Westphalia", Type: "state", Cities: cities(
					"CGN", "Cologne", "DUS", "Düsseldorf", "DTM", "Dortmund", "ESS", "Essen", "BON", "Bonn",
				)},
				{Code: "BW", Name: "Baden-Württemberg", Type: "state", Cities: cities(
					"STR", "Stuttgart", "KAE", "Karlsruhe", "MHG", "Mannheim", "FRB", "Freiburg im Breisgau",
				)},
				{Code: "SN", Name: "Saxony", Type: "state", Cities: cities(
					"DRS", "Dresden", "LEJ", "Leipzig", "CHE", "Chemnitz",
				)},
			},
		},
		{
			Code:              "FR",
			Name:              "France",
			Flag:              "🇫🇷",
			Capital:           "Paris",
			Area:              643801,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"French"},
			Demonym:           "French",
			TaxInfo: &TaxInfo{
				StandardRate: pct(20),
				ReducedRates: []float64{5.5, 10, 2.1},
				TaxName:      "TVA",
				TaxTypes:     []string{"VAT", "TVA"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Provinces: []Province{
				{Code: "IDF", Name: "Île-de-France", Type: "region", Cities: cities(
					"PAR", "Paris", "BOU", "Boulogne-Billancourt", "VER", "Versailles", "SDN", "Saint-Denis",
				)},
				{Code: "ARA", Name: "Auvergne-Rhône-Alpes", Type: "region", Cities: cities(
					"LYS", "Lyon", "GNB", "Grenoble", "CFE", "Clermont-Ferrand", "ANN", "Annecy",
				)},
				{Code: "PAC", Name: "Provence-Alpes-Côte d'Azur", Type: "region", Cities: cities(
					"MRS", "Marseille", "NCE", "Nice", "TLN", "Toulon", "AVN", "Avignon",
				)},
				{Code: "OCC", Name: "Occitanie", Type: "region", Cities: cities(
					"TLS", "Toulouse", "MPL", "Montpellier", "NIM", "Nîmes",
				)},
				{Code: "NAQ", Name: "Nouvelle-Aquitaine", Type: "region", Cities: cities(
					"BOD", "Bordeaux", "LIG", "Limoges", "LRH", "La Rochelle",
				)},
				// Corsica applies reduced VAT on several goods; 20% remains standard.
				{Code: "COR", Name: "Corse", Type: "region", Cities: cities(
					"AJA", "Ajaccio", "BIA", "Bastia",
				)},
				// Overseas departments with their own rates.
				{Code: "GP", Name: "Guadeloupe", Type: "overseas region",
					TaxInfo: &TaxInfo{StandardRate: pct(8.5), ReducedRates: []float64{2.1}, TaxName: "TVA", TaxTypes: []string{"VAT", "TVA", "Octroi de mer"}, Currency: "EUR", Region: RegionEU},
					Cities:  cities("PTP", "Pointe-à-Pitre", "BBR", "Basse-Terre")},
				{Code: "RE", Name: "La Réunion", Type: "overseas region",
					TaxInfo: &TaxInfo{StandardRate: pct(8.5), ReducedRates: []float64{2.1}, TaxName: "TVA", TaxTypes: []string{"VAT", "TVA", "Octroi de mer"}, Currency: "EUR", Region: RegionEU},
					Cities:  cities("RUN", "Saint-Denis", "ZSE", "Saint-Pierre")},
			},
		},
		{
			Code:              "IT",
			Name:              "Italy",
			Flag:              "🇮🇹",
			Capital:           "Rome",
			Area:              301340,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Italian"},
			Demonym:           "Italian",
			TaxInfo: &TaxInfo{
				StandardRate: pct(22),
				ReducedRates: []float64{4, 5, 10},
				TaxName:      "IVA",
				TaxTypes:     []string{"VAT", "IVA"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Provinces: []Province{
				{Code: "LAZ", Name: "Lazio", Type: "region", Cities: cities(
					"ROM", "Rome", "LTN", "Latina", "VIT", "Viterbo",
				)},
				{Code: "LOM", Name: "Lombardy", Type: "region", Cities: cities(
					"MIL", "Milan", "BGY", "Bergamo", "BRE", "Brescia", "COM", "Como",
				)},
				{Code: "CAM", Name: "Campania", Type: "region", Cities: cities(
					"NAP", "Naples", "SAL", "Salerno", "CAS", "Caserta",
				)},
				{Code: "TOS", Name: "Tuscany", Type: "region", Cities: cities(
					"FLR", "Florence", "PSA", "Pisa", "SIE", "Siena", "LIV", "Livorno",
				)},
				{Code: "VEN", Name: "Veneto", Type: "region", Cities: []City{
					{Code: "VCE", Name: "Venice"},
					{Code: "VRN", Name: "Verona"},
					{Code: "PDV", Name: "Padua"},
				}},
				// Livigno sits outside the EU VAT area.
				{Code: "SON", Name: "Sondrio", Type: "province", Cities: []City{
					{Code: "SND", Name: "Sondrio"},
					{Code: "LVG", Name: "Livigno", TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "IVA", TaxTypes: []string{"VAT", "IVA"}, Currency: "EUR", Region: RegionEU}},
				}},
			},
		},
		{
			Code:              "ES",
			Name:              "Spain",
			Flag:              "🇪🇸",
			Capital:           "Madrid",
			Area:              505990,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Spanish"},
			Demonym:           "Spanish",
			TaxInfo: &TaxInfo{
				StandardRate: pct(21),
				ReducedRates: []float64{10, 4},
				TaxName:      "IVA",
				TaxTypes:     []string{"VAT", "IVA"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Provinces: []Province{
				{Code: "MD", Name: "Community of Madrid", Type: "autonomous community", Cities: cities(
					"MAD", "Madrid", "ALC", "Alcalá de Henares", "GET", "Getafe",
				)},
				{Code: "CT", Name: "Catalonia", Type: "autonomous community", Cities: cities(
					"BCN", "Barcelona", "GRO", "Girona", "TGN", "Tarragona", "LLE", "Lleida",
				)},
				{Code: "AN", Name: "Andalusia", Type: "autonomous community", Cities: cities(
					"SVQ", "Seville", "AGP", "Málaga", "GRX", "Granada", "ODB", "Córdoba",
				)},
				{Code: "VC", Name: "Valencian Community", Type: "autonomous community", Cities: cities(
					"VLC", "Valencia", "ALI", "Alicante", "CDT", "Castellón de la Plana",
				)},
				{Code: "CN", Name: "Canary Islands", Type: "autonomous community",
					TaxInfo: &TaxInfo{StandardRate: pct(7), ReducedRates: []float64{3, 0}, TaxName: "IGIC", TaxTypes: []string{"IGIC"}, Currency: "EUR", Region: RegionEU},
					Cities:  cities("LPA", "Las Palmas de Gran Canaria", "TCI", "Santa Cruz de Tenerife", "ACE", "Arrecife")},
				{Code: "CE", Name: "Ceuta", Type: "autonomous city",
					TaxInfo: &TaxInfo{StandardRate: pct(10), ReducedRates: []float64{0.5, 2, 3, 4, 8}, TaxName: "IPSI", TaxTypes: []string{"IPSI"}, Currency: "EUR", Region: RegionEU},
					Cities:  cities("JCU", "Ceuta")},
				{Code: "ML", Name: "Melilla", Type: "autonomous city",
					TaxInfo: &TaxInfo{StandardRate: pct(10), ReducedRates: []float64{0.5, 1, 2, 4}, TaxName: "IPSI", TaxTypes: []string{"IPSI"}, Currency: "EUR", Region: RegionEU},
					Cities:  cities("MLN", "Melilla")},
			},
		},
		{
			Code:              "PT",
			Name:              "Portugal",
			Flag:              "🇵🇹",
			Capital:           "Lisbon",
			Area:              92212,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Portuguese"},
			Demonym:           "Portuguese",
			TaxInfo: &TaxInfo{
				StandardRate: pct(23),
				ReducedRates: []float64{6, 13},
				TaxName:      "IVA",
				TaxTypes:     []string{"VAT", "IVA"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Divisions: []Province{
				{Code: "11", Name: "Lisbon", Type: "district", Cities: cities(
					"LIS", "Lisbon", "SIN", "Sintra", "CSC", "Cascais", "AMD", "Amadora",
				)},
				{Code: "13", Name: "Porto", Type: "district", Cities: cities(
					"OPO", "Porto", "VNG", "Vila Nova de Gaia", "MAT", "Matosinhos",
				)},
				{Code: "08", Name: "Faro", Type: "district", Cities: cities(
					"FAO", "Faro", "ALB", "Albufeira", "LAG", "Lagos",
				)},
				{Code: "20", Name: "Azores", Type: "autonomous region",
					TaxInfo: &TaxInfo{StandardRate: pct(16), ReducedRates: []float64{4, 9}, TaxName: "IVA", TaxTypes: []string{"VAT", "IVA"}, Currency: "EUR", Region: RegionEU},
					Cities:  cities("PDL", "Ponta Delgada", "TER", "Angra do Heroísmo", "HOR", "Horta")},
				{Code: "30", Name: "Madeira", Type: "autonomous region",
					TaxInfo: &TaxInfo{StandardRate: pct(22), ReducedRates: []float64{4, 12}, TaxName: "IVA", TaxTypes: []string{"VAT", "IVA"}, Currency: "EUR", Region: RegionEU},
					Cities:  cities("FNC", "Funchal", "PXO", "Porto Santo")},
			},
		},
		{
			Code:              "NL",
			Name:              "Netherlands",
			Flag:              "🇳🇱",
			Capital:           "Amsterdam",
			Area:              41850,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Dutch"},
			Demonym:           "Dutch",
			TaxInfo: &TaxInfo{
				StandardRate: pct(21),
				ReducedRates: []float64{9},
				TaxName:      "BTW",
				TaxTypes:     []string{"VAT", "BTW"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Provinces: []Province{
				{Code: "NH", Name: "North Holland", Type: "province", Cities: cities(
					"AMS", "Amsterdam", "HLM", "Haarlem", "ZDM", "Zaandam",
				)},
				{Code: "ZH", Name: "South Holland", Type: "province", Cities: cities(
					"RTM", "Rotterdam", "HAG", "The Hague", "LID", "Leiden", "DFT", "Delft",
				)},
				{Code: "UT", Name: "Utrecht", Type: "province", Cities: cities(
					"UTC", "Utrecht", "AMF", "Amersfoort",
				)},
				{Code: "NB", Name: "North Brabant", Type: "province", Cities: cities(
					"EIN", "Eindhoven", "TLB", "Tilburg", "BRD", "Breda",
				)},
			},
		},
		{
			Code:              "BE",
			Name:              "Belgium",
			Flag:              "🇧🇪",
			Capital:           "Brussels",
			Area:              30528,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Dutch", "French", "German"},
			Demonym:           "Belgian",
			TaxInfo: &TaxInfo{
				StandardRate: pct(21),
				ReducedRates: []float64{6, 12},
				TaxName:      "BTW/TVA",
				TaxTypes:     []string{"VAT", "BTW", "TVA"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Divisions: []Province{
				{Code: "BRU", Name: "Brussels-Capital Region", Type: "region", Cities: cities(
					"BRU", "Brussels", "IXL", "Ixelles", "SCH", "Schaerbeek",
				)},
				{Code: "VLG", Name: "Flanders", Type: "region", Cities: cities(
					"ANR", "Antwerp", "GNT", "Ghent", "BRG", "Bruges", "LEU", "Leuven",
				)},
				{Code: "WAL", Name: "Wallonia", Type: "region", Cities: cities(
					"LGG", "Liège", "CRL", "Charleroi", "NAM", "Namur",
				)},
			},
		},
		{
			Code:              "AT",
			Name:              "Austria",
			Flag:              "🇦🇹",
			Capital:           "Vienna",
			Area:              83871,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"German"},
			Demonym:           "Austrian",
			TaxInfo: &TaxInfo{
				StandardRate: pct(20),
				ReducedRates: []float64{10, 13},
				TaxName:      "USt",
				TaxTypes:     []string{"VAT", "USt"},
				Currency:     "EUR",
				Region:       RegionEU,
			},
			Provinces: []Province{
				{Code: "9", Name: "Vienna", Type: "state", Cities: cities("VIE", "Vienna")},
				{Code: "6", Name: "Styria", Type: "state", Cities: cities("GRZ", "Graz", "LEO", "Leoben")},
				{Code: "5", Name: "Salzburg", Type: "state", Cities: cities("SZG", "Salzburg", "HAL", "Hallein")},
				{Code: "7", Name: "Tyrol", Type: "state", Cities: []City{
					{Code: "INN", Name: "Innsbruck"},
					{Code: "KUF", Name: "Kufstein"},
					// Jungholz is in the German VAT area.
					{Code: "JUN", Name: "Jungholz", TaxInfo: &TaxInfo{StandardRate: pct(19), ReducedRates: []float64{7}, TaxName: "MwSt", TaxTypes: []string{"VAT", "MwSt"}, Currency: "EUR", Region: RegionEU}},
				}},
			},
		},
		{
			Code:              "IE",
			Name:              "Ireland",
			Flag:              "🇮🇪",
			Capital:           "Dublin",
			Area:              70273,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Irish", "English"},
			Demonym:           "Irish",
			TaxInfo:           vat(23, "EUR", RegionEU, 13.5, 9, 4.8),
			Divisions: []Province{
				{Code: "L", Name: "Leinster", Type: "province", Cities: cities("DUB", "Dublin", "KIL", "Kilkenny")},
				{Code: "M", Name: "Munster", Type: "province", Cities: cities("ORK", "Cork", "LMK", "Limerick", "WAT", "Waterford")},
				{Code: "C", Name: "Connacht", Type: "province", Cities: cities("GWY", "Galway", "SLI", "Sligo")},
				{Code: "U", Name: "Ulster", Type: "province", Cities: cities("LKY", "Letterkenny", "MON", "Monaghan")},
			},
		},
		{
			Code:              "SE",
			Name:              "Sweden",
			Flag:              "🇸🇪",
			Capital:           "Stockholm",
			Area:              450295,
			CurrencySymbol:    "kr",
			OfficialLanguages: []string{"Swedish"},
			Demonym:           "Swedish",
			TaxInfo:           tax("Moms", 25, "SEK", RegionEU, 12, 6),
		},
		{
			Code:              "DK",
			Name:              "Denmark",
			Flag:              "🇩🇰",
			Capital:           "Copenhagen",
			Area:              42933,
			CurrencySymbol:    "kr.",
			OfficialLanguages: []string{"Danish"},
			Demonym:           "Danish",
			TaxInfo:           tax("Moms", 25, "DKK", RegionEU),
		},
		{
			Code:              "FI",
			Name:              "Finland",
			Flag:              "🇫🇮",
			Capital:           "Helsinki",
			Area:              338424,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Finnish", "Swedish"},
			Demonym:           "Finnish",
			TaxInfo:           tax("ALV", 25.5, "EUR", RegionEU, 14, 10),
			Divisions: []Province{
				{Code: "18", Name: "Uusimaa", Type: "region", Cities: cities("HEL", "Helsinki", "ESP", "Espoo", "VAN", "Vantaa")},
				{Code: "11", Name: "Pirkanmaa", Type: "region", Cities: cities("TMP", "Tampere")},
				// Åland is outside the EU VAT area for imports but charges Finnish rates domestically.
				{Code: "01", Name: "Åland", Type: "autonomous region", Cities: cities("MHQ", "Mariehamn")},
			},
		},
		{
			Code:              "PL",
			Name:              "Poland",
			Flag:              "🇵🇱",
			Capital:           "Warsaw",
			Area:              312696,
			CurrencySymbol:    "zł",
			OfficialLanguages: []string{"Polish"},
			Demonym:           "Polish",
			TaxInfo:           tax("PTU", 23, "PLN", RegionEU, 8, 5),
			Provinces: []Province{
				{Code: "14", Name: "Masovian", Type: "voivodeship", Cities: cities("WAW", "Warsaw", "RDM", "Radom", "PLO", "Płock")},
				{Code: "12", Name: "Lesser Poland", Type: "voivodeship", Cities: cities("KRK", "Kraków", "TAR", "Tarnów")},
				{Code: "02", Name: "Lower Silesian", Type: "voivodeship", Cities: cities("WRO", "Wrocław", "LGN", "Legnica")},
				{Code: "22", Name: "Pomeranian", Type: "voivodeship", Cities: cities("GDN", "Gdańsk", "GDY", "Gdynia", "SOP", "Sopot")},
			},
		},
		{
			Code:              "GR",
			Name:              "Greece",
			Flag:              "🇬🇷",
			Capital:           "Athens",
			Area:              131957,
			CurrencySymbol:    "€",
			OfficialLanguages: []string{"Greek"},
			Demonym:           "Greek",
			TaxInfo:           tax("FPA", 24, "EUR", RegionEU, 13, 6),
		},
		{
			Code:              "GB",
			Name:              "United Kingdom",
			Flag:              "🇬🇧",
			Capital:           "London",
			Area:              242495,
			CurrencySymbol:    "£",
			OfficialLanguages: []string{"English"},
			Demonym:           "British",
			TaxInfo:           vat(20, "GBP", RegionEU, 5, 0),
			Divisions: []Province{
				{Code: "ENG", Name: "England", Type: "country", Cities: cities(
					"LON", "London", "MAN", "Manchester", "BHX", "Birmingham", "LIV", "Liverpool", "LDS", "Leeds", "BRS", "Bristol",
				)},
				{Code: "SCT", Name: "Scotland", Type: "country", Cities: cities(
					"EDI", "Edinburgh", "GLA", "Glasgow", "ABZ", "Aberdeen", "DND", "Dundee",
				)},
				{Code: "WLS", Name: "Wales", Type: "country", Cities: cities(
					"CWL", "Cardiff", "SWS", "Swansea", "NWP", "Newport",
				)},
				{Code: "NIR", Name: "Northern Ireland", Type: "country", Cities: cities(
					"BFS", "Belfast", "LDY", "Derry", "LIS", "Lisburn",
				)},
			},
		},
		{
			Code:              "CH",
			Name:              "Switzerland",
			Flag:              "🇨🇭",
			Capital:           "Bern",
			Area:              41285,
			CurrencySymbol:    "CHF",
			OfficialLanguages: []string{"German", "French", "Italian", "Romansh"},
			Demonym:           "Swiss",
			TaxInfo: &TaxInfo{
				StandardRate: pct(8.1),
				ReducedRates: []float64{2.6, 3.8},
				TaxName:      "MWST",
				TaxTypes:     []string{"VAT", "MWST", "TVA", "IVA"},
				Currency:     "CHF",
				Region:       RegionEU,
			},
			Divisions: []Province{
				{Code: "ZH", Name: "Zürich", Type: "canton", Cities: cities("ZRH", "Zürich", "WIN", "Winterthur")},
				{Code: "GE", Name: "Geneva", Type: "canton", Cities: cities("GVA", "Geneva", "CAR", "Carouge")},
				{Code: "BE", Name: "Bern", Type: "canton", Cities: cities("BRN", "Bern", "BIE", "Biel/Bienne", "THU", "Thun")},
				{Code: "VD", Name: "Vaud", Type: "canton", Cities: cities("QLS", "Lausanne", "MTX", "Montreux")},
			},
		},
		{
			Code:              "NO",
			Name:              "Norway",
			Flag:              "🇳🇴",
			Capital:           "Oslo",
			Area:              385207,
			CurrencySymbol:    "kr",
			OfficialLanguages: []string{"Norwegian"},
			Demonym:           "Norwegian",
			TaxInfo:           tax("MVA", 25, "NOK", RegionEU, 15, 12),
			Divisions: []Province{
				{Code: "03", Name: "Oslo", Type: "county", Cities: cities("OSL", "Oslo")},
				{Code: "46", Name: "Vestland", Type: "county", Cities: cities("BGO", "Bergen")},
				// Svalbard is outside the Norwegian VAT area.
				{Code: "21", Name: "Svalbard", Type: "territory",
					TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "MVA", TaxTypes: []string{"MVA"}, Currency: "NOK", Region: RegionEU},
					Cities:  cities("LYR", "Longyearbyen")},
			},
		},
	}
}
