package catalog

import (
	"fmt"
	"strings"
)

type Service struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	PriceValue int64  `json:"priceValue"`
	Duration   string `json:"duration"`
	Image      string `json:"image,omitempty"`
}

type Package struct {
	Category string    `json:"category"`
	Services []Service `json:"services"`
}

func svc(name string, value int64, minutes int, image string) Service {
	return Service{
		Name:       name,
		Price:      FormatVND(value),
		PriceValue: value,
		Duration:   fmt.Sprintf("%d phút", minutes),
		Image:      image,
	}
}

var packages = []Package{
	{Category: "Recommended", Services: []Service{
		svc("Cắt tóc tạo kiểu", 100000, 40, imgShop),
		svc("Massage cổ vai gáy", 150000, 20, imgAvatar),
		svc("Làm sạch thải độc", 120000, 15, imgBackground),
		svc("Uốn con sâu", 300000, 90, imgShop),
	}},
	{Category: "Packages", Services: []Service{
		svc("Gói Combo Cắt + Gội + Sấy", 180000, 60, imgShop),
		svc("Gói VIP Chăm sóc toàn diện", 500000, 120, imgAvatar),
		svc("Gói Cắt + Uốn/Nhuộm", 450000, 150, imgBackground),
	}},
	{Category: "Face Care", Services: []Service{
		svc("Chăm sóc da mặt cơ bản", 90000, 30, imgAvatar),
		svc("Đắp mặt nạ dưỡng ẩm", 70000, 20, imgShop),
		svc("Lấy mụn + Điện di tinh chất", 250000, 60, imgBackground),
	}},
	{Category: "Hair Color", Services: []Service{
		svc("Nhuộm màu thời trang", 350000, 90, imgAvatar),
		svc("Nhuộm phủ bạc", 200000, 60, imgShop),
		svc("Tẩy tóc + Nhuộm", 600000, 180, imgBackground),
	}},
	{Category: "Other Services", Services: []Service{
		svc("Cắt tóc nam", 80000, 30, imgShop),
		svc("Gội đầu thư giãn", 50000, 20, imgShop),
		svc("Cạo râu tạo kiểu", 80000, 25, imgAvatar),
	}},
}

func ServicePackages() []Package {
	out := make([]Package, len(packages))
	for i, p := range packages {
		out[i] = Package{Category: p.Category, Services: append([]Service(nil), p.Services...)}
	}
	return out
}

func FindService(name string) (Service, bool) {
	for _, p := range packages {
		for _, s := range p.Services {
			if s.Name == name {
				return s, true
			}
		}
	}
	return Service{}, false
}

// FormatVND renders 80000 as "80.000 VNĐ".
func FormatVND(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := fmt.Sprintf("%d", v)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + " VNĐ"
	if neg {
		out = "-" + out
	}
	return out
}
