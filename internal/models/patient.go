package models

// Patient represents a patient record in the database
type Patient struct {
	PatientID int64  `json:"patient_id" db:"patient_id"` // Primary key
	Name      string `json:"name" db:"name"`
	Contact   string `json:"contact" db:"contact"` // Phone or other contact detail
}
