package auth

// User is the domain entity. OrderCount and UsedDrinkCoupon drive the
// loyalty coupon rules.
type User struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Password        string
	Role            string
	OrderCount      int
	UsedDrinkCoupon bool
}

const (
	RoleCustomer = "CUSTOMER"
	RoleStaff    = "STAFF"
	RoleAdmin    = "ADMIN"
)
