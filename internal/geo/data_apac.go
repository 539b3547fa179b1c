package geo

func asiaPacificCountries() []Country {
	return []Country{
		{
			Code:              "AU",
			Name:              "Australia",
			Flag:              "🇦🇺",
			Capital:           "Canberra",
			Area:              7692024,
			CurrencySymbol:    "A$",
			OfficialLanguages: []string{"English"},
			Demonym:           "Australian",
			TaxInfo:           tax("GST", 10, "AUD", RegionAPAC),
			Provinces: []Province{
				{Code: "NSW", Name: "New South Wales", Type: "state", Cities: cities(
					"SYD", "Sydney", "NTL", "Newcastle", "WOL", "Wollongong",
				)},
				{Code: "VIC", Name: "Victoria", Type: "state", Cities: cities(
					"MEL", "Melbourne", "GEX", "Geelong", "BAL", "Ballarat",
				)},
				{Code: "QLD", Name: "Queensland", Type: "state", Cities: cities(
					"BNE", "Brisbane", "OOL", "Gold Coast", "CNS", "Cairns", "TSV", "Townsville",
				)},
				{Code: "WA", Name: "Western Australia", Type: "state", Cities: cities(
					"PER", "Perth", "FRE", "Fremantle",
				)},
				{Code: "SA", Name: "South Australia", Type: "state", Cities: cities("ADL", "Adelaide")},
				{Code: "TAS", Name: "Tasmania", Type: "state", Cities: cities("HBA", "Hobart", "LST", "Launceston")},
				{Code: "ACT", Name: "Australian Capital Territory", Type: "territory", Cities: cities("CBR", "Canberra")},
				{Code: "NT", Name: "Northern Territory", Type: "territory", Cities: cities("DRW", "Darwin", "ASP", "Alice Springs")},
			},
		},
		{
			Code:              "NZ",
			Name:              "New Zealand",
			Flag:              "🇳🇿",
			Capital:           "Wellington",
			Area:              268021,
			CurrencySymbol:    "NZ$",
			OfficialLanguages: []string{"English", "Māori", "NZ Sign Language"},
			Demonym:           "New Zealander",
			TaxInfo:           tax("GST", 15, "NZD", RegionAPAC),
			Divisions: []Province{
				{Code: "AUK", Name: "Auckland", Type: "region", Cities: cities("AKL", "Auckland", "MKU", "Manukau")},
				{Code: "WGN", Name: "Wellington", Type: "region", Cities: cities("WLG", "Wellington", "LHU", "Lower Hutt")},
				{Code: "CAN", Name: "Canterbury", Type: "region", Cities: cities("CHC", "Christchurch", "TIU", "Timaru")},
			},
		},
		{
			Code:              "JP",
			Name:              "Japan",
			Flag:              "🇯🇵",
			Capital:           "Tokyo",
			Area:              377975,
			CurrencySymbol:    "¥",
			OfficialLanguages: []string{"Japanese"},
			Demonym:           "Japanese",
			TaxInfo:           tax("Consumption Tax", 10, "JPY", RegionAPAC, 8),
			Provinces: []Province{
				{Code: "13", Name: "Tokyo", Type: "prefecture", Cities: cities(
					"TYO", "Tokyo", "HCJ", "Hachiōji", "MCH", "Machida",
				)},
				{Code: "27", Name: "Osaka", Type: "prefecture", Cities: cities(
					"OSA", "Osaka", "SKI", "Sakai",
				)},
				{Code: "26", Name: "Kyoto", Type: "prefecture", Cities: cities("UKY", "Kyoto", "UJI", "Uji")},
				{Code: "01", Name: "Hokkaido", Type: "prefecture", Cities: cities("SPK", "Sapporo", "HKD", "Hakodate")},
				{Code: "14", Name: "Kanagawa", Type: "prefecture", Cities: cities("YOK", "Yokohama", "KWS", "Kawasaki")},
			},
		},
		{
			Code:              "CN",
			Name:              "China",
			Flag:              "🇨🇳",
			Capital:           "Beijing",
			Area:              9596961,
			CurrencySymbol:    "¥",
			OfficialLanguages: []string{"Mandarin"},
			Demonym:           "Chinese",
			TaxInfo:           vat(13, "CNY", RegionAPAC, 9, 6),
			Provinces: []Province{
				{Code: "BJ", Name: "Beijing", Type: "municipality", Cities: cities("BJS", "Beijing")},
				{Code: "SH", Name: "Shanghai", Type: "municipality", Cities: cities("SHA", "Shanghai")},
				{Code: "GD", Name: "Guangdong", Type: "province", Cities: cities("CAN", "Guangzhou", "SZX", "Shenzhen", "ZUH", "Zhuhai")},
				{Code: "ZJ", Name: "Zhejiang", Type: "province", Cities: cities("HGH", "Hangzhou", "NGB", "Ningbo")},
				// Hainan free trade port.
				{Code: "HI", Name: "Hainan", Type: "province", Cities: cities("HAK", "Haikou", "SYX", "Sanya")},
			},
		},
		{
			Code:              "KR",
			Name:              "South Korea",
			Flag:              "🇰🇷",
			Capital:           "Seoul",
			Area:              100210,
			CurrencySymbol:    "₩",
			OfficialLanguages: []string{"Korean"},
			Demonym:           "South Korean",
			TaxInfo:           vat(10, "KRW", RegionAPAC),
		},
		{
			Code:              "IN",
			Name:              "India",
			Flag:              "🇮🇳",
			Capital:           "New Delhi",
			Area:              3287263,
			CurrencySymbol:    "₹",
			OfficialLanguages: []string{"Hindi", "English"},
			Demonym:           "Indian",
			TaxInfo: &TaxInfo{
				StandardRate: pct(18),
				ReducedRates: []float64{5, 12},
				TaxName:      "GST",
				TaxTypes:     []string{"CGST", "SGST", "IGST"},
				Currency:     "INR",
				Region:       RegionAPAC,
			},
			Provinces: []Province{
				{Code: "MH", Name: "Maharashtra", Type: "state", Cities: cities(
					"BOM", "Mumbai", "PNQ", "Pune", "NAG", "Nagpur", "NSK", "Nashik",
				)},
				{Code: "DL", Name: "Delhi", Type: "union territory", Cities: cities(
					"DEL", "New Delhi", "DWK", "Dwarka",
				)},
				{Code: "KA", Name: "Karnataka", Type: "state", Cities: cities(
					"BLR", "Bengaluru", "MYQ", "Mysuru", "MLR", "Mangaluru",
				)},
				{Code: "TN", Name: "Tamil Nadu", Type: "state", Cities: cities(
					"MAA", "Chennai", "CJB", "Coimbatore", "IXM", "Madurai",
				)},
				{Code: "WB", Name: "West Bengal", Type: "state", Cities: cities(
					"CCU", "Kolkata", "HWH", "Howrah",
				)},
				{Code: "TG", Name: "Telangana", Type: "state", Cities: cities(
					"HYD", "Hyderabad", "WGL", "Warangal",
				)},
				{Code: "GJ", Name: "Gujarat", Type: "state", Cities: cities(
					"AMD", "Ahmedabad", "STV", "Surat", "BDQ", "Vadodara",
				)},
			},
		},
		{
			Code:              "SG",
			Name:              "Singapore",
			Flag:              "🇸🇬",
			Capital:           "Singapore",
			Area:              734,
			CurrencySymbol:    "S$",
			OfficialLanguages: []string{"English", "Malay", "Mandarin", "Tamil"},
			Demonym:           "Singaporean",
			TaxInfo:           tax("GST", 9, "SGD", RegionAPAC),
		},
		{
			Code:              "MY",
			Name:              "Malaysia",
			Flag:              "🇲🇾",
			Capital:           "Kuala Lumpur",
			Area:              330803,
			CurrencySymbol:    "RM",
			OfficialLanguages: []string{"Malay"},
			Demonym:           "Malaysian",
			TaxInfo: &TaxInfo{
				StandardRate: pct(10),
				ReducedRates: []float64{5, 8},
				TaxName:      "SST",
				TaxTypes:     []string{"Sales Tax", "Service Tax"},
				Currency:     "MYR",
				Region:       RegionAPAC,
			},
			Provinces: []Province{
				{Code: "14", Name: "Kuala Lumpur", Type: "federal territory", Cities: cities("KUL", "Kuala Lumpur")},
				{Code: "07", Name: "Penang", Type: "state", Cities: cities("PEN", "George Town", "BMJ", "Bukit Mertajam")},
				// Langkawi is a duty-free island.
				{Code: "02", Name: "Kedah", Type: "state", Cities: []City{
					{Code: "AOR", Name: "Alor Setar"},
					{Code: "LGK", Name: "Langkawi", TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "SST", TaxTypes: []string{"Sales Tax", "Service Tax"}, Currency: "MYR", Region: RegionAPAC}},
				}},
			},
		},
		{
			Code:              "PH",
			Name:              "Philippines",
			Flag:              "🇵🇭",
			Capital:           "Manila",
			Area:              300000,
			CurrencySymbol:    "₱",
			OfficialLanguages: []string{"Filipino", "English"},
			Demonym:           "Filipino",
			TaxInfo:           vat(12, "PHP", RegionAPAC),
		},
		{
			Code:              "TH",
			Name:              "Thailand",
			Flag:              "🇹🇭",
			Capital:           "Bangkok",
			Area:              513120,
			CurrencySymbol:    "฿",
			OfficialLanguages: []string{"Thai"},
			Demonym:           "Thai",
			TaxInfo:           vat(7, "THB", RegionAPAC),
		},
		{
			Code:              "ID",
			Name:              "Indonesia",
			Flag:              "🇮🇩",
			Capital:           "Jakarta",
			Area:              1904569,
			CurrencySymbol:    "Rp",
			OfficialLanguages: []string{"Indonesian"},
			Demonym:           "Indonesian",
			TaxInfo:           tax("PPN", 12, "IDR", RegionAPAC),
			Provinces: []Province{
				{Code: "JK", Name: "Jakarta", Type: "special capital region", Cities: cities("JKT", "Jakarta")},
				{Code: "BA", Name: "Bali", Type: "province", Cities: cities("DPS", "Denpasar", "UBD", "Ubud")},
				// Batam free trade zone.
				{Code: "KR", Name: "Riau Islands", Type: "province",
					TaxInfo: &TaxInfo{StandardRate: pct(0), TaxName: "PPN", TaxTypes: []string{"PPN"}, Currency: "IDR", Region: RegionAPAC},
					Cities:  cities("BTH", "Batam", "TNJ", "Tanjung Pinang")},
			},
		},
		{
			Code:              "VN",
			Name:              "Vietnam",
			Flag:              "🇻🇳",
			Capital:           "Hanoi",
			Area:              331212,
			CurrencySymbol:    "₫",
			OfficialLanguages: []string{"Vietnamese"},
			Demonym:           "Vietnamese",
			TaxInfo:           vat(10, "VND", RegionAPAC, 5, 8),
		},
	}
}
