package seeder

type geoRow struct {
	code, name, parent, description string
}

var sampleCountries = []geoRow{
	{code: "VN", name: "Việt Nam"},
	{code: "TH", name: "Thái Lan"},
	{code: "JP", name: "Nhật Bản"},
	{code: "KR", name: "Hàn Quốc"},
}

var sampleProvinces = []geoRow{
	{code: "VN-QN", name: "Quảng Ninh", parent: "VN"},
	{code: "VN-LCI", name: "Lào Cai", parent: "VN"},
	{code: "VN-DN", name: "Đà Nẵng", parent: "VN"},
	{code: "VN-KH", name: "Khánh Hòa", parent: "VN"},
	{code: "VN-KG", name: "Kiên Giang", parent: "VN"},
	{code: "TH-BKK", name: "Bangkok", parent: "TH"},
	{code: "TH-CMI", name: "Chiang Mai", parent: "TH"},
	{code: "JP-TYO", name: "Tokyo", parent: "JP"},
	{code: "JP-KYT", name: "Kyoto", parent: "JP"},
	{code: "KR-SEL", name: "Seoul", parent: "KR"},
}

var sampleDestinations = []geoRow{
	{code: "HALONG", name: "Vịnh Hạ Long", parent: "VN-QN", description: "Di sản thiên nhiên thế giới với hàng nghìn đảo đá vôi."},
	{code: "SAPA", name: "Sa Pa", parent: "VN-LCI", description: "Thị trấn vùng cao, ruộng bậc thang và đỉnh Fansipan."},
	{code: "BANAHILLS", name: "Bà Nà Hills", parent: "VN-DN", description: "Khu du lịch trên núi với Cầu Vàng."},
	{code: "NHATRANG", name: "Nha Trang", parent: "VN-KH", description: "Thành phố biển và các đảo lặn ngắm san hô."},
	{code: "PHUQUOC", name: "Phú Quốc", parent: "VN-KG", description: "Đảo ngọc với bãi Sao và cáp treo Hòn Thơm."},
	{code: "GRANDPALACE", name: "Hoàng cung Bangkok", parent: "TH-BKK"},
	{code: "DOISUTHEP", name: "Chùa Doi Suthep", parent: "TH-CMI"},
	{code: "ASAKUSA", name: "Asakusa", parent: "JP-TYO"},
	{code: "FUSHIMI", name: "Fushimi Inari", parent: "JP-KYT"},
	{code: "MYEONGDONG", name: "Myeongdong", parent: "KR-SEL"},
}

var sampleServiceTypes = []string{
	"Khách sạn",
	"Vận chuyển",
	"Nhà hàng",
	"Vé tham quan",
	"Hướng dẫn viên",
}

type serviceRow struct {
	name, serviceType, unit string
	price                   float64
}

type providerRow struct {
	name, phone, email, address string
	services                    []serviceRow
}

var sampleProviders = []providerRow{
	{
		name:    "Mường Thanh Hạ Long",
		phone:   "02033646618",
		email:   "booking.halong@muongthanh.vn",
		address: "Bãi Cháy, Hạ Long, Quảng Ninh",
		services: []serviceRow{
			{name: "Phòng Deluxe hướng biển", serviceType: "Khách sạn", unit: "phòng/đêm", price: 1450000},
			{name: "Phòng Superior", serviceType: "Khách sạn", unit: "phòng/đêm", price: 980000},
		},
	},
	{
		name:    "Xe du lịch Hoàng Long",
		phone:   "02253920920",
		email:   "dieuhanh@hoanglong.vn",
		address: "Long Biên, Hà Nội",
		services: []serviceRow{
			{name: "Xe 29 chỗ Hà Nội - Hạ Long", serviceType: "Vận chuyển", unit: "chuyến", price: 4500000},
			{name: "Xe 45 chỗ Hà Nội - Sa Pa", serviceType: "Vận chuyển", unit: "chuyến", price: 9000000},
		},
	},
	{
		name:    "Nhà hàng Sen Tây Hồ",
		phone:   "02437199242",
		email:   "datban@sentayho.vn",
		address: "614 Lạc Long Quân, Tây Hồ, Hà Nội",
		services: []serviceRow{
			{name: "Buffet tối Sen Tây Hồ", serviceType: "Nhà hàng", unit: "khách", price: 420000},
		},
	},
	{
		name:    "Sun World Ba Na Hills",
		phone:   "02363791999",
		email:   "sales@sunworld.vn",
		address: "Hòa Ninh, Hòa Vang, Đà Nẵng",
		services: []serviceRow{
			{name: "Vé cáp treo Bà Nà người lớn", serviceType: "Vé tham quan", unit: "vé", price: 900000},
			{name: "Vé cáp treo Bà Nà trẻ em", serviceType: "Vé tham quan", unit: "vé", price: 750000},
		},
	},
}

type templateRow struct {
	code, title, destination  string
	day, night                int
	priceAdult, priceChildren float64
	departsInDays, slots      int
}

var sampleTemplates = []templateRow{
	{code: "HL-2N1D", title: "Hà Nội - Vịnh Hạ Long 2 ngày 1 đêm", destination: "HALONG", day: 2, night: 1, priceAdult: 3290000, priceChildren: 2490000, departsInDays: 14, slots: 29},
	{code: "SP-3N2D", title: "Sa Pa - Fansipan 3 ngày 2 đêm", destination: "SAPA", day: 3, night: 2, priceAdult: 4590000, priceChildren: 3390000, departsInDays: 21, slots: 45},
	{code: "DN-4N3D", title: "Đà Nẵng - Bà Nà - Hội An 4 ngày 3 đêm", destination: "BANAHILLS", day: 4, night: 3, priceAdult: 6990000, priceChildren: 5190000, departsInDays: 30, slots: 30},
	{code: "PQ-3N2D", title: "Phú Quốc nghỉ dưỡng 3 ngày 2 đêm", destination: "PHUQUOC", day: 3, night: 2, priceAdult: 5490000, priceChildren: 3990000, departsInDays: 35, slots: 25},
	{code: "TH-BKK-5N4D", title: "Bangkok - Pattaya 5 ngày 4 đêm", destination: "GRANDPALACE", day: 5, night: 4, priceAdult: 8990000, priceChildren: 7490000, departsInDays: 45, slots: 35},
	{code: "JP-KYT-6N5D", title: "Tokyo - Kyoto mùa lá đỏ 6 ngày 5 đêm", destination: "FUSHIMI", day: 6, night: 5, priceAdult: 32900000, priceChildren: 28900000, departsInDays: 60, slots: 20},
}
