package dto

type SignupDTO struct {
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Amount   *float64 `json:"amount"`
}

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenDTO struct {
	AccessToken string `json:"accessToken"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
