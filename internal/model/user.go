package model

// User mirrors a row of the users table.
//
// Password holds the bcrypt hash and never leaves the server.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// NewUser is the input of UserRepository.AddUser.
type NewUser struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserPayload is the body of POST /users.
//
// bcrypt only looks at the first 72 bytes of a password, hence the upper bound.
type RegisterUserPayload struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (p *RegisterUserPayload) Validate() error {
	return validate.Struct(p)
}

// LoginPayload is the body of POST /users/login.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (p *LoginPayload) Validate() error {
	return validate.Struct(p)
}

// Session is returned by sign-up and login.
type Session struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
