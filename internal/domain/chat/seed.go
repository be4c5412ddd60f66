package chat

const avatar = "/assets/images/avatar.jpg"

// Seed returns the conversations every owner starts with.
func Seed() []Group {
	return []Group{
		{
			ID: 1, Name: "Classic Cuts Barber Shop", Avatar: avatar, Online: true,
			LastMessage: "Cảm ơn bạn đã thông cảm nhé!", LastMessageTime: "16:47",
			Messages: []Message{
				{Text: "Bạn ơi, mình đã đặt lịch hẹn vào hôm nay lúc 16:00. Bạn có thể đến sớm hơn không?", Time: "16:40", Type: TypeText, Status: StatusRead},
				{Text: "Tất nhiên là được chứ ạ! Mình sẽ đến lúc 15:30.", Time: "16:46", IsSentByUser: true, Type: TypeText, Status: StatusRead},
				{Text: "Cảm ơn bạn đã thông cảm nhé! Tôi sẽ áp dụng mã giảm giá cho bạn.", Time: "16:47", Type: TypeText, Status: StatusRead},
			},
		},
		{
			ID: 2, Name: "Barber Bros", Avatar: avatar, UnreadCount: 2,
			LastMessage: "Bạn ơi, lịch tôi hẹn vào chiều thứ 7...", LastMessageTime: "11:30",
			Messages: []Message{
				{Text: "Bạn ơi, lịch tôi hẹn vào chiều thứ 7 có thể hoãn lại không? Mình có việc bận.", Time: "11:30", IsSentByUser: true, Type: TypeText, Status: StatusDelivered},
				{Text: "Xin lỗi vì đã trả lời muộn. Vâng, chúng tôi có thể sắp xếp lại lịch cho bạn.", Time: "14:15", Type: TypeText, Status: StatusDelivered},
				{Text: "Bạn muốn chuyển sang thứ mấy ạ?", Time: "14:16", Type: TypeText, Status: StatusDelivered},
			},
		},
		{
			ID: 3, Name: "4Rau Barbershop", Avatar: avatar, Online: true,
			LastMessage: "Xin chào! Chúng tôi có thể giúp gì cho bạn?", LastMessageTime: "Hôm qua",
			Messages: []Message{
				{Text: "Xin chào! Chúng tôi có thể giúp gì cho bạn?", Time: "10:30", Type: TypeText, Status: StatusRead},
				{Text: "Cửa hàng các bạn có dịch vụ nhuộm tóc không?", Time: "10:35", IsSentByUser: true, Type: TypeText, Status: StatusRead},
				{Text: "Dạ có ạ. Bạn có thể đặt lịch trực tiếp trên app hoặc gọi cho chúng tôi nhé!", Time: "10:40", Type: TypeText, Status: StatusRead},
				{Text: "Cảm ơn bạn nhiều!", Time: "10:42", IsSentByUser: true, Type: TypeText, Status: StatusRead},
				{Text: "Ngoài ra, tôi gửi bạn một số mẫu tóc phổ biến tại cửa hàng chúng tôi:", Time: "10:45", Type: TypeText, Status: StatusRead},
				{Text: "Kiểu tóc Mullet", ImageURL: "/assets/images/mullet.jpg", Time: "10:46", Type: TypeImage, Status: StatusRead},
				{Text: "Kiểu tóc Slick Back", ImageURL: "/assets/images/SlickBack.jpg", Time: "10:47", Type: TypeImage, Status: StatusRead},
			},
		},
	}
}
