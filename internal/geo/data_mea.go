package geo

func middleEastAfricaCountries() []Country {
	return []Country{
		{
			Code:              "DZ",
			Name:              "Algeria",
			Flag:              "🇩🇿",
			Capital:           "Algiers",
			Area:              2381741,
			CurrencySymbol:    "DA",
			OfficialLanguages: []string{"Arabic", "Tamazight"},
			Demonym:           "Algerian",
			TaxInfo:           vat(19, "DZD", RegionMEA, 9),
			Provinces: []Province{
				{Code: "16", Name: "Algiers", Type: "wilaya", Cities: cities(
					"ALG", "Algiers", "BEZ", "Bab Ezzouar", "BIR", "Birkhadem", "CHE", "Cheraga", "DRA", "Draria",
				)},
				{Code: "31", Name: "Oran", Type: "wilaya", Cities: cities(
					"ORN", "Oran", "ARZ", "Arzew", "BIR", "Bir El Djir", "ESS", "Es Senia",
				)},
				{Code: "25", Name: "Constantine", Type: "wilaya", Cities: cities(
					"CZL", "Constantine", "ELK", "El Khroub", "HAM", "Hamma Bouziane",
				)},
				{Code: "23", Name: "Annaba", Type: "wilaya", Cities: cities(
					"AAE", "Annaba", "ELB", "El Bouni", "SID", "Sidi Amar",
				)},
				{Code: "09", Name: "Blida", Type: "wilaya", Cities: cities(
					"BLI", "Blida", "BOU", "Boufarik", "LAR", "Larbaâ",
				)},
				{Code: "19", Name: "Sétif", Type: "wilaya", Cities: cities(
					"QSF", "Sétif", "ELE", "El Eulma", "AIO", "Aïn Oulmene",
				)},
				{Code: "15", Name: "Tizi Ouzou", Type: "wilaya", Cities: cities(
					"TZO", "Tizi Ouzou", "AZA", "Azazga", "DBK", "Draâ Ben Khedda",
				)},
			},
		},
		{
			Code:              "MA",
			Name:              "Morocco",
			Flag:              "🇲🇦",
			Capital:           "Rabat",
			Area:              446550,
			CurrencySymbol:    "DH",
			OfficialLanguages: []string{"Arabic", "Tamazight"},
			Demonym:           "Moroccan",
			TaxInfo:           vat(20, "MAD", RegionMEA, 7, 10, 14),
			Provinces: []Province{
				{Code: "CAS", Name: "Casablanca-Settat", Type: "region", Cities: cities(
					"CAS", "Casablanca", "MOH", "Mohammedia", "SET", "Settat", "ELJ", "El Jadida",
				)},
				{Code: "RBA", Name: "Rabat-Salé-Kénitra", Type: "region", Cities: cities(
					"RBA", "Rabat", "SLE", "Salé", "KEN", "Kénitra", "TEM", "Témara",
				)},
				{Code: "MAR", Name: "Marrakech-Safi", Type: "region", Cities: cities(
					"RAK", "Marrakech", "SFI", "Safi", "ESS", "Essaouira",
				)},
				{Code: "TNG", Name: "Tanger-Tétouan-Al Hoceïma", Type: "region", Cities: cities(
					"TNG", "Tangier", "TET", "Tétouan", "AHU", "Al Hoceïma",
				)},
			},
		},
		{
			Code:              "TN",
			Name:              "Tunisia",
			Flag:              "🇹🇳",
			Capital:           "Tunis",
			Area:              163610,
			CurrencySymbol:    "DT",
			OfficialLanguages: []string{"Arabic"},
			Demonym:           "Tunisian",
			TaxInfo:           vat(19, "TND", RegionMEA, 7, 13),
		},
		{
			Code:              "EG",
			Name:              "Egypt",
			Flag:              "🇪🇬",
			Capital:           "Cairo",
			Area:              1002450,
			CurrencySymbol:    "E£",
			OfficialLanguages: []string{"Arabic"},
			Demonym:           "Egyptian",
			TaxInfo:           vat(14, "EGP", RegionMEA, 5),
			Divisions: []Province{
				{Code: "C", Name: "Cairo", Type: "governorate", Cities: cities(
					"CAI", "Cairo", "HEL", "Heliopolis", "NCA", "New Cairo",
				)},
				{Code: "ALX", Name: "Alexandria", Type: "governorate", Cities: cities(
					"ALY", "Alexandria", "BRG", "Borg El Arab",
				)},
				{Code: "GZ", Name: "Giza", Type: "governorate", Cities: cities(
					"GIZ", "Giza", "OCT", "6th of October City", "SZA", "Sheikh Zayed City",
				)},
			},
		},
		{
			Code:              "NG",
			Name:              "Nigeria",
			Flag:              "🇳🇬",
			Capital:           "Abuja",
			Area:              923768,
			CurrencySymbol:    "₦",
			OfficialLanguages: []string{"English"},
			Demonym:           "Nigerian",
			TaxInfo:           vat(7.5, "NGN", RegionMEA),
			Provinces: []Province{
				{Code: "LA", Name: "Lagos", Type: "state", Cities: cities(
					"LOS", "Lagos", "IKJ", "Ikeja", "LKI", "Lekki", "EPE", "Epe",
				)},
				{Code: "FC", Name: "Federal Capital Territory", Type: "territory", Cities: cities(
					"ABV", "Abuja", "GWA", "Gwagwalada", "KUB", "Kubwa",
				)},
				{Code: "KN", Name: "Kano", Type: "state", Cities: cities(
					"KAN", "Kano", "WUD", "Wudil",
				)},
				{Code: "RI", Name: "Rivers", Type: "state", Cities: cities(
					"PHC", "Port Harcourt", "BON", "Bonny",
				)},
			},
		},
		{
			Code:              "KE",
			Name:              "Kenya",
			Flag:              "🇰🇪",
			Capital:           "Nairobi",
			Area:              580367,
			CurrencySymbol:    "KSh",
			OfficialLanguages: []string{"English", "Swahili"},
			Demonym:           "Kenyan",
			TaxInfo:           vat(16, "KES", RegionMEA, 8),
			Divisions: []Province{
				{Code: "47", Name: "Nairobi City", Type: "county", Cities: cities(
					"NBO", "Nairobi", "KAR", "Karen", "WST", "Westlands",
				)},
				{Code: "01", Name: "Mombasa", Type: "county", Cities: cities(
					"MBA", "Mombasa", "NYA", "Nyali", "LIK", "Likoni",
				)},
				{Code: "42", Name: "Kisumu", Type: "county", Cities: cities(
					"KIS", "Kisumu", "AHE", "Ahero",
				)},
				{Code: "32", Name: "Nakuru", Type: "county", Cities: cities(
					"NUU", "Nakuru", "NAI", "Naivasha",
				)},
			},
		},
		{
			Code:              "ZA",
			Name:              "South Africa",
			Flag:              "🇿🇦",
			Capital:           "Pretoria",
			Area:              1221037,
			CurrencySymbol:    "R",
			OfficialLanguages: []string{"Afrikaans", "English", "isiNdebele", "isiXhosa", "isiZulu", "Sepedi", "Sesotho", "Setswana", "siSwati", "Tshivenda", "Xitsonga"},
			Demonym:           "South African",
			TaxInfo:           vat(15, "ZAR", RegionMEA),
			Provinces: []Province{
				{Code: "GP", Name: "Gauteng", Type: "province", Cities: cities(
					"JNB", "Johannesburg", "PRY", "Pretoria", "SOW", "Soweto", "SDT", "Sandton",
				)},
				{Code: "WC", Name: "Western Cape", Type: "province", Cities: cities(
					"CPT", "Cape Town", "STB", "Stellenbosch", "GRJ", "George", "PAA", "Paarl",
				)},
				{Code: "KZN", Name: "KwaZulu-Natal", Type: "province", Cities: cities(
					"DUR", "Durban", "PZB", "Pietermaritzburg", "RCB", "Richards Bay",
				)},
				{Code: "EC", Name: "Eastern Cape", Type: "province", Cities: cities(
					"PLZ", "Gqeberha", "ELS", "East London", "MTH", "Mthatha",
				)},
			},
		},
		{
			Code:              "SA",
			Name:              "Saudi Arabia",
			Flag:              "🇸🇦",
			Capital:           "Riyadh",
			Area:              2149690,
			CurrencySymbol:    "﷼",
			OfficialLanguages: []string{"Arabic"},
			Demonym:           "Saudi",
			TaxInfo:           vat(15, "SAR", RegionMEA),
			Provinces: []Province{
				{Code: "01", Name: "Riyadh", Type: "region", Cities: cities(
					"RUH", "Riyadh", "KHJ", "Al Kharj",
				)},
				{Code: "02", Name: "Makkah", Type: "region", Cities: cities(
					"MKX", "Mecca", "JED", "Jeddah", "TIF", "Taif",
				)},
				{Code: "04", Name: "Eastern Province", Type: "region", Cities: cities(
					"DMM", "Dammam", "KBR", "Khobar", "DHA", "Dhahran",
				)},
			},
		},
		{
			Code:              "AE",
			Name:              "United Arab Emirates",
			Flag:              "🇦🇪",
			Capital:           "Abu Dhabi",
			Area:              83600,
			CurrencySymbol:    "د.إ",
			OfficialLanguages: []string{"Arabic"},
			Demonym:           "Emirati",
			TaxInfo:           vat(5, "AED", RegionMEA),
			Provinces: []Province{
				{Code: "DU", Name: "Dubai", Type: "emirate", Cities: cities(
					"DXB", "Dubai", "HAT", "Hatta", "JAL", "Jebel Ali",
				)},
				{Code: "AZ", Name: "Abu Dhabi", Type: "emirate", Cities: cities(
					"AUH", "Abu Dhabi", "AAN", "Al Ain", "RUW", "Ruwais",
				)},
				{Code: "SH", Name: "Sharjah", Type: "emirate", Cities: cities(
					"SHJ", "Sharjah", "KLF", "Khor Fakkan",
				)},
			},
		},
		{
			Code:              "IL",
			Name:              "Israel",
			Flag:              "🇮🇱",
			Capital:           "Jerusalem",
			Area:              20770,
			CurrencySymbol:    "₪",
			OfficialLanguages: []string{"Hebrew"},
			Demonym:           "Israeli",
			TaxInfo:           vat(18, "ILS", RegionMEA),
			Divisions: []Province{
				{Code: "TA", Name: "Tel Aviv", Type: "district", Cities: cities(
					"TLV", "Tel Aviv-Yafo", "RGN", "Ramat Gan", "HLN", "Holon",
				)},
				{Code: "JM", Name: "Jerusalem", Type: "district", Cities: cities(
					"JRS", "Jerusalem", "BSM", "Beit Shemesh",
				)},
				// Eilat is a VAT-free zone.
				{Code: "D", Name: "Southern", Type: "district", Cities: []City{
					{Code: "BEV", Name: "Beersheba"},
					{Code: "ETH", Name: "Eilat", TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "VAT", TaxTypes: []string{"VAT"}, Currency: "ILS", Region: RegionMEA}},
					{Code: "ASH", Name: "Ashdod"},
				}},
			},
		},
		{
			Code:              "TR",
			Name:              "Turkey",
			Flag:              "🇹🇷",
			Capital:           "Ankara",
			Area:              783562,
			CurrencySymbol:    "₺",
			OfficialLanguages: []string{"Turkish"},
			Demonym:           "Turkish",
			TaxInfo:           tax("KDV", 20, "TRY", RegionMEA, 1, 10),
			Provinces: []Province{
				{Code: "34", Name: "Istanbul", Type: "province", Cities: cities(
					"IST", "Istanbul", "KDK", "Kadıköy", "USK", "Üsküdar",
				)},
				{Code: "06", Name: "Ankara", Type: "province", Cities: cities(
					"ANK", "Ankara", "POL", "Polatlı",
				)},
				{Code: "35", Name: "İzmir", Type: "province", Cities: cities(
					"IZM", "İzmir", "BGM", "Bergama", "CES", "Çeşme",
				)},
			},
		},
		{
			Code:              "GH",
			Name:              "Ghana",
			Flag:              "🇬🇭",
			Capital:           "Accra",
			Area:              238533,
			CurrencySymbol:    "₵",
			OfficialLanguages: []string{"English"},
			Demonym:           "Ghanaian",
			TaxInfo: &TaxInfo{
				StandardRate: pct(15),
				TaxName:      "VAT",
				TaxTypes:     []string{"VAT", "NHIL", "GETFund Levy"},
				Currency:     "GHS",
				Region:       RegionMEA,
			},
		},
	}
}
