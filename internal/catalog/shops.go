package catalog

const (
	imgShop       = "/assets/images/barber-shop.jpg"
	imgBackground = "/assets/images/barber-background.png"
	imgAvatar     = "/assets/images/avatar.jpg"
)

type Shop struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Distance  string   `json:"distance"`
	Image     string   `json:"image"`
	Price     int64    `json:"price,omitempty"`
	Services  []string `json:"services,omitempty"`
	OpenTime  string   `json:"openTime,omitempty"`
	CloseTime string   `json:"closeTime,omitempty"`
	District  string   `json:"district,omitempty"`
	IsVIP     bool     `json:"isVIP,omitempty"`
}

type Location struct {
	Name  string `json:"name"`
	MinID int    `json:"-"`
	MaxID int    `json:"-"`
}

func (l Location) Contains(id int) bool {
	return id >= l.MinID && id <= l.MaxID
}

var locations = []Location{
	{Name: "TP. Hồ Chí Minh", MinID: 1, MaxID: 10},
	{Name: "Đà Nẵng", MinID: 101, MaxID: 103},
	{Name: "Hà Nội", MinID: 201, MaxID: 205},
}

var shops = []Shop{
	{
		ID: 1, Name: "Classic Cuts Barber Shop", Address: "Vinhomes Grand Park Quận 9 - Tòa S503",
		Rating: 4.8, Reviews: 3279, Distance: "5 km", Image: imgBackground,
		Price: 150000, Services: []string{"Cắt tóc", "Uốn", "Nhuộm", "Massage"},
		OpenTime: "07:30", CloseTime: "21:00", District: "Quận 9", IsVIP: true,
	},
	{
		ID: 2, Name: "4Rau Barbershop", Address: "Vinhomes Grand Park Quận 9 - Tòa S503.2P HCM",
		Rating: 4.5, Reviews: 1500, Distance: "3 km", Image: imgBackground,
		Price: 120000, Services: []string{"Cắt tóc", "Uốn", "Râu"}, District: "Quận 9",
	},
	{
		ID: 3, Name: "The Gentlemen's Den", Address: "634 Điện Biên Phủ, Quận 10, HCM",
		Rating: 4.2, Reviews: 800, Distance: "7 km", Image: imgBackground,
		Price: 180000, District: "Quận 10",
	},
	{ID: 4, Name: "Urban Trim Studio", Address: "123 Nguyễn Huệ, Quận 1, HCM", Rating: 4.7, Reviews: 2100, Distance: "2 km", Image: imgShop},
	{ID: 5, Name: "Sharp Edge Salon", Address: "45 Lê Lợi, Quận 3, HCM", Rating: 4.3, Reviews: 950, Distance: "4 km", Image: imgShop},
	{ID: 6, Name: "Modern Man Barbershop", Address: "78 Phạm Văn Đồng, Thủ Đức, HCM", Rating: 4.6, Reviews: 1800, Distance: "6 km", Image: imgShop},
	{ID: 7, Name: "Elite Cuts", Address: "12 Nguyễn Trãi, Quận 5, HCM", Rating: 4.4, Reviews: 1200, Distance: "8 km", Image: imgShop},
	{ID: 8, Name: "tralale tralala", Address: "90 Cách Mạng Tháng Tám, Quận Tân Bình, HCM", Rating: 4.9, Reviews: 3500, Distance: "9 km", Image: imgShop},
	{ID: 9, Name: "bombadilo crocodilo", Address: "90 Cách Mạng Tháng Tám, Quận Tân Bình, HCM", Rating: 5.0, Reviews: 3500, Distance: "9.5 km", Image: imgShop},
	{ID: 10, Name: "Tung tung tung sahur", Address: "90 Cách Mạng Tháng Tám, Quận Tân Bình, HCM", Rating: 4.7, Reviews: 3500, Distance: "12 km", Image: imgShop},

	{ID: 101, Name: "Danang Barber House", Address: "12 Bạch Đằng, Hải Châu, Đà Nẵng", Rating: 4.6, Reviews: 900, Distance: "1.2 km", Image: imgShop},
	{ID: 102, Name: "Chic Cuts Đà Nẵng", Address: "45 Nguyễn Văn Linh, Thanh Khê, Đà Nẵng", Rating: 4.8, Reviews: 1200, Distance: "2.5 km", Image: imgShop},
	{ID: 103, Name: "Men's Style DN", Address: "88 Lê Duẩn, Hải Châu, Đà Nẵng", Rating: 4.7, Reviews: 1100, Distance: "3.1 km", Image: imgShop},

	{ID: 201, Name: "Hanoi Gentlemen's Club", Address: "10 Lý Thường Kiệt, Hoàn Kiếm, Hà Nội", Rating: 4.9, Reviews: 2000, Distance: "1.5 km", Image: imgShop},
	{ID: 202, Name: "Old Quarter Barbershop", Address: "22 Hàng Bông, Hoàn Kiếm, Hà Nội", Rating: 4.8, Reviews: 1800, Distance: "2.0 km", Image: imgShop},
	{ID: 203, Name: "Capital Cuts", Address: "55 Kim Mã, Ba Đình, Hà Nội", Rating: 4.7, Reviews: 1500, Distance: "3.2 km", Image: imgShop},
	{ID: 204, Name: "Westlake Barber", Address: "99 Xuân Diệu, Tây Hồ, Hà Nội", Rating: 4.6, Reviews: 1300, Distance: "4.5 km", Image: imgShop},
	{ID: 205, Name: "Trendy Hair HN", Address: "77 Trần Duy Hưng, Cầu Giấy, Hà Nội", Rating: 4.8, Reviews: 1700, Distance: "5.0 km", Image: imgShop},
}

func Locations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

func FindLocation(name string) (Location, bool) {
	for _, l := range locations {
		if l.Name == name {
			return l, true
		}
	}
	return Location{}, false
}

func Shops() []Shop {
	out := make([]Shop, len(shops))
	copy(out, shops)
	return out
}

func FindShop(id int) (Shop, bool) {
	for _, s := range shops {
		if s.ID == id {
			return s, true
		}
	}
	return Shop{}, false
}

// ShopOrDefault resolves id, falling back to the first sample shop when the
// id is unknown.
func ShopOrDefault(id int) (shop Shop, fallback bool) {
	if s, ok := FindShop(id); ok {
		return s, false
	}
	return shops[0], true
}
