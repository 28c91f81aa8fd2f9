package models

// Doctor represents a doctor record in the database
type Doctor struct {
	DoctorID   int64  `json:"doctor_id" db:"doctor_id"` // Primary key
	Name       string `json:"name" db:"name"`
	Speciality string `json:"speciality" db:"speciality"`
}
