package petstore

import "fmt"

//validgen:validate
type Account struct {
	Owner    *User  `validate:"nested"`
	Website  string `validate:"url"`
	Plan     string `validate:"required,contains(pattern='tier')"`
	Seats    int    `validate:"range(min=1,max=500)"`
	Referrer string `validate:"expr(expression='Referrer != Plan')"`
	Coupon   string `validate:"custom(fn=CheckCoupon)"`
}

// CheckCoupon accepts empty or SAVE-prefixed coupon codes.
func CheckCoupon(s string) error {
	if s == "" || len(s) >= 4 && s[:4] == "SAVE" {
		return nil
	}
	return fmt.Errorf("coupon %q is not redeemable", s)
}
