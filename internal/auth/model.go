package auth

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`

	BusinessName    string    `json:"businessName,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	Location        string    `json:"location,omitempty"`
	YearsInBusiness int       `json:"yearsInBusiness,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Website         string    `json:"website,omitempty"`
	Instagram       string    `json:"instagram,omitempty"`
	Linkedin        string    `json:"linkedin,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Specialties     string    `json:"specialties,omitempty"`
	RevenueModel    string    `json:"revenueModel,omitempty"`
	LastActivity    string    `json:"lastActivity,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProfileUpdate is a partial update of the optional profile fields.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name            *string `json:"name"`
	BusinessName    *string `json:"businessName"`
	Industry        *string `json:"industry"`
	Location        *string `json:"location"`
	YearsInBusiness *int    `json:"yearsInBusiness"`
	Phone           *string `json:"phone"`
	Website         *string `json:"website"`
	Instagram       *string `json:"instagram"`
	Linkedin        *string `json:"linkedin"`
	Bio             *string `json:"bio"`
	Specialties     *string `json:"specialties"`
	RevenueModel    *string `json:"revenueModel"`
	LastActivity    *string `json:"lastActivity"`
}

func (u *User) apply(p ProfileUpdate) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.BusinessName != nil {
		u.BusinessName = *p.BusinessName
	}
	if p.Industry != nil {
		u.Industry = *p.Industry
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.YearsInBusiness != nil {
		u.YearsInBusiness = *p.YearsInBusiness
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	if p.Instagram != nil {
		u.Instagram = *p.Instagram
	}
	if p.Linkedin != nil {
		u.Linkedin = *p.Linkedin
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Specialties != nil {
		u.Specialties = *p.Specialties
	}
	if p.RevenueModel != nil {
		u.RevenueModel = *p.RevenueModel
	}
	if p.LastActivity != nil {
		u.LastActivity = *p.LastActivity
	}
}
