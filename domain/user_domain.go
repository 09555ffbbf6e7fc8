package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login success"
	MessageSuccessGetProfile      = "success get profile"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessUploadPhoto     = "profile photo uploaded successfully"
	MessageSuccessDeletePhoto     = "profile photo removed successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetProfile      = "failed to get profile"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedUploadPhoto     = "failed to upload profile photo"
	MessageFailedDeletePhoto     = "failed to remove profile photo"

	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrCredentialsInvalid    = errors.New("invalid email or password")
	ErrUsernameInvalid       = errors.New("username must be 3-30 characters of letters, digits, dot, dash or underscore")
	ErrUsernameCooldown      = errors.New("username was changed recently, try again later")
)

type (
	UserRegisterRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Username  string `json:"username" validate:"required,min=3,max=30"`
		Password  string `json:"password" validate:"required,min=6"`
		Password2 string `json:"password2" validate:"required,eqfield=Password"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserUpdateRequest struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Username  *string `json:"username"`
		PhotoURL  *string `json:"photo_url"`
	}

	UserResponse struct {
		ID         uint      `json:"id"`
		Email      string    `json:"email"`
		Username   string    `json:"username"`
		FirstName  string    `json:"first_name,omitempty"`
		LastName   string    `json:"last_name,omitempty"`
		PhotoURL   string    `json:"photo_url,omitempty"`
		IsVerified bool      `json:"is_verified"`
		Joined     time.Time `json:"joined"`
	}

	UserLoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
