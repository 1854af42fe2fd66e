package account

import (
	"strings"

	"fittrack-api/pkg/jwt_generator"
)

// Kind tags which collection owns an account.
type Kind string

const (
	KindStandard   Kind = "standard"
	KindPrivileged Kind = "privileged"
)

func (k Kind) Role() string {
	if k == KindPrivileged {
		return jwt_generator.RoleAdmin
	}

	return jwt_generator.RoleMember
}

// VerificationPath is the website route the verification link points at.
func (k Kind) VerificationPath() string {
	if k == KindPrivileged {
		return "/admin/account/verification"
	}

	return "/user/account/verification"
}

const (
	PasswordHashCost = 8

	VerificationEmailSubject = "FitTrack: Please verify your email before using our services!"
)

type Document struct {
	Id          string  `bson:"_id"`
	Email       string  `bson:"email"`
	Password    string  `bson:"password"`
	DisplayName string  `bson:"displayName"`
	Role        string  `bson:"role"`
	IsActive    bool    `bson:"isActive"`
	VerifyToken string  `bson:"verifyToken,omitempty"`
	HeightCm    float64 `bson:"heightCm,omitempty"`
	WeightKg    float64 `bson:"weightKg,omitempty"`
	Dob         string  `bson:"dob,omitempty"`
	Gender      string  `bson:"gender,omitempty"`
	Avatar      string  `bson:"avatar,omitempty"`
	CreatedAt   int64   `bson:"createdAt"`
	UpdatedAt   int64   `bson:"updatedAt,omitempty"`
}

// Profile is the public view of an account. It never carries the password
// hash or the verification token.
type Profile struct {
	Id          string `json:"_id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt,omitempty"`
}

func (d *Document) Profile() *Profile {
	return &Profile{
		Id:          d.Id,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Role:        d.Role,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Entry is the result of a directory lookup: the account plus the collection
// it was found in.
type Entry struct {
	Kind    Kind
	Account *Document
}

type RegisterPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=256"`
}

type AdminRegisterPayload struct {
	SecretKey string `json:"secretKey" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=256"`
}

type ProfileUpdatePayload struct {
	DisplayName string  `json:"displayName" validate:"omitempty,min=2,max=50"`
	HeightCm    float64 `json:"heightCm" validate:"omitempty,gt=0,lte=300"`
	WeightKg    float64 `json:"weightKg" validate:"omitempty,gt=0,lte=500"`
	Dob         string  `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender      string  `json:"gender" validate:"omitempty,oneof=male female other"`
}

type ProfileUpdate struct {
	DisplayName string  `bson:"displayName,omitempty"`
	HeightCm    float64 `bson:"heightCm,omitempty"`
	WeightKg    float64 `bson:"weightKg,omitempty"`
	Dob         string  `bson:"dob,omitempty"`
	Gender      string  `bson:"gender,omitempty"`
	Avatar      string  `bson:"avatar,omitempty"`
	UpdatedAt   int64   `bson:"updatedAt"`
}

func displayNameFromEmail(email string) string {
	localPart, _, _ := strings.Cut(email, "@")
	return localPart
}
