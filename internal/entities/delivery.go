package entities

// DeliveryInformation is created once at checkout and immutable afterwards.
// ShippingFee is the total computed shipping for the whole order.
type DeliveryInformation struct {
	DeliveryID      int64
	Name            string
	Phone           string
	Email           string
	Address         string
	Province        string
	ShippingMessage string
	ShippingFee     int64
}

// RushDeliveryInfo pairs a rush-ordered product with one of the fixed
// two-hour delivery windows and free-text handling instructions.
type RushDeliveryInfo struct {
	ProductID    int64
	DeliveryTime string
	Instructions string
}

// RushDeliveryTimeSlots are the selectable two-hour rush windows.
var RushDeliveryTimeSlots = []string{
	"08:00 - 10:00",
	"10:00 - 12:00",
	"12:00 - 14:00",
	"14:00 - 16:00",
	"16:00 - 18:00",
	"18:00 - 20:00",
}

func ValidRushTimeSlot(slot string) bool {
	for _, s := range RushDeliveryTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// majorCities get the lower-weight-threshold flat shipping rate.
var majorCities = map[string]struct{}{
	"Hà Nội":         {},
	"TP Hồ Chí Minh": {},
}

func IsMajorCity(province string) bool {
	_, ok := majorCities[province]
	return ok
}

var provinces = map[string]struct{}{}

func ValidProvince(name string) bool {
	_, ok := provinces[name]
	return ok
}

// Provinces is the fixed destination catalog, in storefront display order.
var Provinces = []string{
	"An Giang", "Bà Rịa - Vũng Tàu", "Bắc Giang", "Bắc Kạn", "Bạc Liêu",
	"Bắc Ninh", "Bến Tre", "Bình Định", "Bình Dương", "Bình Phước",
	"Bình Thuận", "Cà Mau", "Cao Bằng", "Đắk Lắk", "Đắk Nông",
	"Điện Biên", "Đồng Nai", "Đồng Tháp", "Gia Lai", "Hà Giang",
	"Hà Nam", "Hà Tĩnh", "Hải Dương", "Hậu Giang", "Hòa Bình",
	"Hưng Yên", "Khánh Hòa", "Kiên Giang", "Kon Tum", "Lai Châu",
	"Lâm Đồng", "Lạng Sơn", "Lào Cai", "Long An", "Nam Định",
	"Nghệ An", "Ninh Bình", "Ninh Thuận", "Phú Thọ", "Quảng Bình",
	"Quảng Nam", "Quảng Ngãi", "Quảng Ninh", "Quảng Trị", "Sóc Trăng",
	"Sơn La", "Tây Ninh", "Thái Bình", "Thái Nguyên", "Thanh Hóa",
	"Thừa Thiên Huế", "Tiền Giang", "Trà Vinh", "Tuyên Quang", "Vĩnh Long",
	"Vĩnh Phúc", "Yên Bái", "Phú Yên", "Cần Thơ", "Đà Nẵng",
	"Hải Phòng", "Hà Nội", "TP Hồ Chí Minh",
}

func init() {
	for _, p := range Provinces {
		provinces[p] = struct{}{}
	}
}
