package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type errorSpec struct {
	status  int
	message string
}

var businessErrors = map[string]errorSpec{
	// 400
	"invalid_request":        {http.StatusBadRequest, "Dữ liệu không hợp lệ."},
	"invalid_email":          {http.StatusBadRequest, "Email không hợp lệ."},
	"invalid_name":           {http.StatusBadRequest, "Tên không được để trống."},
	"invalid_phone":          {http.StatusBadRequest, "Số điện thoại không hợp lệ."},
	"invalid_gender":         {http.StatusBadRequest, "Giới tính không hợp lệ."},
	"invalid_location":       {http.StatusBadRequest, "Khu vực không hợp lệ."},
	"invalid_sort":           {http.StatusBadRequest, "Kiểu sắp xếp không hợp lệ."},
	"invalid_status":         {http.StatusBadRequest, "Trạng thái không hợp lệ."},
	"invalid_action":         {http.StatusBadRequest, "Loại thông báo không hợp lệ."},
	"empty_cart":             {http.StatusBadRequest, "Giỏ hàng đang trống."},
	"missing_date_time":      {http.StatusBadRequest, "Vui lòng chọn ngày và giờ."},
	"date_out_of_window":     {http.StatusBadRequest, "Ngày đã chọn nằm ngoài khoảng cho phép."},
	"invalid_time":           {http.StatusBadRequest, "Giờ đã chọn không hợp lệ."},
	"missing_payment_method": {http.StatusBadRequest, "Vui lòng chọn phương thức thanh toán."},
	"invalid_payment_method": {http.StatusBadRequest, "Phương thức thanh toán không hợp lệ."},
	"missing_barber":         {http.StatusBadRequest, "Vui lòng chọn thợ cắt tóc."},
	"invalid_discount":       {http.StatusBadRequest, "Mã giảm giá không hợp lệ."},
	"empty_message":          {http.StatusBadRequest, "Tin nhắn không được để trống."},
	"missing_image":          {http.StatusBadRequest, "Thiếu hình ảnh."},
	"invalid_message_type":   {http.StatusBadRequest, "Loại tin nhắn không hợp lệ."},
	"missing_rating":         {http.StatusBadRequest, "Vui lòng chọn số sao."},
	"invalid_rating":         {http.StatusBadRequest, "Số sao phải từ 1 đến 5."},
	"too_many_photos":        {http.StatusBadRequest, "Tối đa 3 ảnh cho mỗi đánh giá."},
	"invalid_image":          {http.StatusBadRequest, "Không đọc được hình ảnh."},

	// 401
	"invalid_credentials": {http.StatusUnauthorized, "Email hoặc mật khẩu không đúng."},

	// 404
	"shop_not_found":        {http.StatusNotFound, "Không tìm thấy cửa hàng."},
	"service_not_found":     {http.StatusNotFound, "Không tìm thấy dịch vụ."},
	"item_not_found":        {http.StatusNotFound, "Dịch vụ không có trong giỏ hàng."},
	"barber_not_found":      {http.StatusNotFound, "Không tìm thấy thợ cắt tóc."},
	"appointment_not_found": {http.StatusNotFound, "Không tìm thấy lịch hẹn."},
	"favorite_not_found":    {http.StatusNotFound, "Cửa hàng không có trong danh sách yêu thích."},
	"session_not_found":     {http.StatusNotFound, "Không tìm thấy phiên thanh toán."},
	"chat_not_found":        {http.StatusNotFound, "Không tìm thấy cuộc trò chuyện."},

	// 409
	"email_already_exists": {http.StatusConflict, "Email đã được sử dụng."},
	"slot_unavailable":     {http.StatusConflict, "Khung giờ này đã có người đặt."},
	"barber_unavailable":   {http.StatusConflict, "Thợ cắt tóc hiện không rảnh."},
	"invalid_state":        {http.StatusConflict, "Thao tác không hợp lệ với trạng thái hiện tại."},
}

// respondError maps a use-case error onto the JSON error body. Anything that
// is not a known business error is a 500.
func respondError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if known, found := businessErrors[code]; found {
			httperr.Write(c, known.status, code, known.message)
			return
		}
		httperr.BadRequest(c, code, code)
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Đã có lỗi xảy ra, vui lòng thử lại.")
}

// bindError reports a failed ShouldBind*. Field validation failures keep
// their specific code.
func bindError(c *gin.Context, err error) {
	respondError(c, validators.Business(err))
}

func badRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", businessErrors["invalid_request"].message)
}
