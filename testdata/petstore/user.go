package petstore

//validgen:modify
type User struct {
	FirstName string  `validate:"required,length(min=2,max=64)" modify:"trim,capitalize"`
	Email     string  `validate:"required,email" modify:"trim,lowercase"`
	Phone     string  `validate:"phone(code='invalid_phone',message='use E.164 format')"`
	Age       int     `validate:"range(min=13,max=120)"`
	Address   Address `validate:"nested" modify:"nested"`
	Nickname  string  `modify:"custom(fn=DefaultNickname)"`
}

//validgen:modify
type Address struct {
	City string `validate:"required" modify:"trim"`
	Zip  string `validate:"regex(pattern='^[0-9]{5}$')"`
}

// DefaultNickname falls back to a placeholder when no nickname is set.
func DefaultNickname(s string) string {
	if s == "" {
		return "anonymous"
	}
	return s
}
