package service

// FieldValidator defines the pure validation rules for account fields.
// Each method returns nil on success or a classified domain error
// (format, length, disallowed characters) on failure. None of the methods
// treat emptiness specially; required-field checks belong to the caller.
type FieldValidator interface {
	ValidateEmail(email string) error
	ValidateNickname(nickname string) error
	ValidatePassword(password string) error
}
