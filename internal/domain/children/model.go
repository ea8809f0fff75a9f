package children

import (
	"time"

	"child-growth-tracker/internal/domain/growth/who"
)

// Sex of the child. Binary, matching the WHO growth standards.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// WHO converts the child's sex to the reference-table key.
func (s Sex) WHO() who.Sex {
	return who.Sex(s)
}

// Child is a registered child. Created by staff; append-only history hangs
// off it via growth records.
type Child struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"dob"`
	Sex       Sex       `json:"gender"`

	// NIK is the 16-digit national identity number, unique per child.
	NIK string `json:"nik"`

	// ParentUserID links the child to the parent account that may read it.
	ParentUserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
}

// NIKValidation is the answer to an availability check.
type NIKValidation struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
