package catalog

import "strings"

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SupportContact struct {
	Hotline string `json:"hotline"`
	Email   string `json:"email"`
}

var faqs = []FAQ{
	{
		Question: "Làm thế nào để đặt lịch cắt tóc?",
		Answer:   "Bạn chọn salon, chọn dịch vụ, chọn thời gian và nhấn Đặt lịch ngay trên ứng dụng.",
	},
	{
		Question: "Tôi có thể huỷ lịch đã đặt không?",
		Answer:   "Bạn có thể huỷ lịch trong mục Lịch hẹn của tôi trước giờ hẹn.",
	},
	{
		Question: "Làm sao để thêm salon vào danh sách yêu thích?",
		Answer:   "Nhấn vào biểu tượng trái tim ở trang chi tiết salon để thêm vào danh sách yêu thích.",
	},
	{
		Question: "Tôi có thể chỉnh sửa thông tin tài khoản không?",
		Answer:   "Bạn có thể chỉnh sửa thông tin cá nhân trong mục Thông tin tài khoản.",
	},
	{
		Question: "Tôi quên mật khẩu, phải làm sao?",
		Answer:   "Bạn hãy sử dụng chức năng Quên mật khẩu trên màn hình đăng nhập để lấy lại mật khẩu.",
	},
}

func Support() SupportContact {
	return SupportContact{Hotline: "1900 1234", Email: "support@ptit-auto.com"}
}

// SearchFAQ matches the query against questions only, case-insensitively.
func SearchFAQ(query string) []FAQ {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]FAQ, 0, len(faqs))
	for _, f := range faqs {
		if strings.Contains(strings.ToLower(f.Question), q) {
			out = append(out, f)
		}
	}
	return out
}
