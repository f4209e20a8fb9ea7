package extract

import (
	"regexp"
	"strconv"
	"strings"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

var emailPattern = regexp.MustCompile(`[\w\.-]+@[\w\.-]+\.\w+`)

var fallbackProducts = []struct {
	keyword   string
	productID string
}{
	{"mouse", "MOUSE-002"},
	{"keyboard", "KEYBOARD-003"},
	{"monitor", "MONITOR-004"},
	{"headset", "HEADSET-005"},
}

var fallbackCities = []string{"Jakarta", "Bandung", "Surabaya", "Bali", "Singapore"}

var fallbackDiscountCodes = []string{"WELCOME10", "SAVE50", "VIP20"}

// FallbackDetails extracts order details by keyword matching. It always
// produces a usable record; unmatched fields take the defaults.
func FallbackDetails(userRequest string) contractx.OrderDetails {
	details := contractx.OrderDetails{}
	lower := strings.ToLower(userRequest)

	for _, p := range fallbackProducts {
		if strings.Contains(lower, p.keyword) {
			details.ProductID = p.productID
			break
		}
	}

	for i := 1; i < 20; i++ {
		if strings.Contains(userRequest, strconv.Itoa(i)) {
			details.Quantity = i
			break
		}
	}

	for _, city := range fallbackCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			details.Destination = city
			break
		}
	}

	for _, code := range fallbackDiscountCodes {
		if strings.Contains(lower, strings.ToLower(code)) {
			details.DiscountCode = code
			break
		}
	}

	switch {
	case strings.Contains(lower, "bank transfer"), strings.Contains(lower, "bank_transfer"):
		details.PaymentMethod = "bank_transfer"
	case strings.Contains(lower, "ewallet"), strings.Contains(lower, "e-wallet"):
		details.PaymentMethod = "ewallet"
	}

	if match := emailPattern.FindString(userRequest); match != "" {
		details.CustomerEmail = match
	}

	return applyDefaults(details)
}

func applyDefaults(details contractx.OrderDetails) contractx.OrderDetails {
	if details.ProductID == "" {
		details.ProductID = "LAPTOP-001"
	}
	if details.Quantity <= 0 {
		details.Quantity = 1
	}
	if details.Destination == "" {
		details.Destination = "Jakarta"
	}
	if details.PaymentMethod == "" {
		details.PaymentMethod = "credit_card"
	}
	if details.CustomerEmail == "" {
		details.CustomerEmail = "customer@example.com"
	}
	return details
}
