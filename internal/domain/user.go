package domain

import "time"

// BloodGroup enumerates the eight ABO/Rh combinations.
type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
)

// BloodGroups lists every valid blood group in display order.
var BloodGroups = []BloodGroup{
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupABPos, BloodGroupABNeg,
	BloodGroupOPos, BloodGroupONeg,
}

// Valid reports whether g is one of the eight known groups.
func (g BloodGroup) Valid() bool {
	for _, known := range BloodGroups {
		if g == known {
			return true
		}
	}
	return false
}

// User represents a registered donor account.
type User struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	BloodGroup     BloodGroup `json:"bloodGroup"`
	Location       string     `json:"location"`
	Age            int        `json:"age"`
	DateOfBirth    string     `json:"dateOfBirth"`
	Gender         string     `json:"gender,omitempty"`
	ContactNumber  string     `json:"contactNumber,omitempty"`
	Email          string     `json:"email,omitempty"`
	IsActive       bool       `json:"isActive"`
	LastDonation   *time.Time `json:"lastDonation,omitempty"`
	TotalDonations int        `json:"totalDonations"`
}

// UserPatch carries a partial update. Nil fields are left untouched;
// the merge is shallow, matching the store contract.
type UserPatch struct {
	Name           *string     `json:"name"`
	BloodGroup     *BloodGroup `json:"bloodGroup"`
	Location       *string     `json:"location"`
	Age            *int        `json:"age"`
	DateOfBirth    *string     `json:"dateOfBirth"`
	Gender         *string     `json:"gender"`
	ContactNumber  *string     `json:"contactNumber"`
	Email          *string     `json:"email"`
	IsActive       *bool       `json:"isActive"`
	LastDonation   *time.Time  `json:"lastDonation"`
	TotalDonations *int        `json:"totalDonations"`
}

// Apply merges the patch onto u. The identifier is never patched.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.BloodGroup != nil {
		u.BloodGroup = *p.BloodGroup
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.ContactNumber != nil {
		u.ContactNumber = *p.ContactNumber
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.LastDonation != nil {
		u.LastDonation = p.LastDonation
	}
	if p.TotalDonations != nil {
		u.TotalDonations = *p.TotalDonations
	}
}
