package models

// Appointment represents an appointment record in the database. DoctorID and
// PatientID must reference existing rows.
type Appointment struct {
	AppointmentID int64  `json:"appointment_id" db:"appointment_id"` // Primary key
	VisitDate     string `json:"visit_date" db:"visit_date"`         // YYYY-MM-DD
	VisitTime     string `json:"visit_time" db:"visit_time"`         // HH:MM
	DoctorID      int64  `json:"doctor_id" db:"doctor_id"`
	PatientID     int64  `json:"patient_id" db:"patient_id"`
}

// AppointmentRow is an appointment joined with the referenced doctor and
// patient names, as shown on the appointments page.
type AppointmentRow struct {
	AppointmentID int64  `json:"appointment_id" db:"appointment_id"`
	VisitDate     string `json:"visit_date" db:"visit_date"`
	VisitTime     string `json:"visit_time" db:"visit_time"`
	DoctorID      int64  `json:"doctor_id" db:"doctor_id"`
	DoctorName    string `json:"doctor_name" db:"doctor_name"`
	PatientID     int64  `json:"patient_id" db:"patient_id"`
	PatientName   string `json:"patient_name" db:"patient_name"`
}
