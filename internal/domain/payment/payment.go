package payment

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type Method string

const (
	MethodCash    Method = "cash"
	MethodBank    Method = "bank"
	MethodZaloPay Method = "zalopay"
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return "", httperr.ErrBusiness("missing_payment_method")
	case MethodCash, MethodBank, MethodZaloPay:
		return m, nil
	}
	return "", httperr.ErrBusiness("invalid_payment_method")
}

// RequiresTransfer is true for methods paid by scanning a QR code.
func (m Method) RequiresTransfer() bool {
	return m == MethodBank || m == MethodZaloPay
}

type Discount struct {
	Code        string `json:"code"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	MinAmount   int64  `json:"minAmount,omitempty"`
}

var discounts = []Discount{
	{Code: "BARBER10", Amount: 10000, Description: "Giảm 10.000 VND"},
	{Code: "WELCOME15", Amount: 15000, Description: "Giảm 15.000 VND"},
	{Code: "VIP50", Amount: 50000, Description: "Giảm 50.000 VND cho đơn trên 500.000 VND", MinAmount: 500000},
}

func Discounts() []Discount {
	out := make([]Discount, len(discounts))
	copy(out, discounts)
	return out
}

// ApplyDiscount returns the amount code takes off total. An empty code is
// worth 0.
func ApplyDiscount(code string, total int64) (int64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, nil
	}
	for _, d := range discounts {
		if d.Code != code {
			continue
		}
		if total < d.MinAmount {
			return 0, httperr.ErrBusiness("invalid_discount")
		}
		return d.Amount, nil
	}
	return 0, httperr.ErrBusiness("invalid_discount")
}

func FinalAmount(total, discount int64) int64 {
	if total-discount < 0 {
		return 0
	}
	return total - discount
}

type Quote struct {
	Total    int64 `json:"total"`
	Discount int64 `json:"discount"`
	Final    int64 `json:"final"`
}

func NewQuote(total int64, code string) (Quote, error) {
	d, err := ApplyDiscount(code, total)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Total: total, Discount: d, Final: FinalAmount(total, d)}, nil
}

// TransferInfo is what the QR screen shows for a manual bank transfer.
type TransferInfo struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	Content       string `json:"content"`
	Amount        int64  `json:"amount"`
}

func Transfer(date, t string, amount int64) TransferInfo {
	return TransferInfo{
		AccountName:   "VU QUANG LONG",
		AccountNumber: "0888618681",
		Bank:          "MB BANK - Chi nhánh Lê Văn Việt",
		Content:       fmt.Sprintf("BookBarber - %s %s", date, t),
		Amount:        amount,
	}
}
