package service

// OrderNumberGenerator mints unique, roughly time-ordered claim order numbers.
type OrderNumberGenerator interface {
	NextOrderNo() string
}
