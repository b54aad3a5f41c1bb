package dashboard

import (
	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/payment"
	"github.com/techcomputer/portal/core/user"
)

type (
	// Enrollment pairs an admission with its derived lifecycle stage for the
	// student's course list.
	Enrollment struct {
		Admission admission.Admission `json:"admissionInfo"`
		Stage     admission.Stage     `json:"stage"`
	}

	// StudentHome is the student dashboard payload.
	StudentHome struct {
		Profile     user.User    `json:"studentProfile"`
		Enrollments []Enrollment `json:"enrolledCourses"`
	}

	// AdminStats is the admin dashboard summary.
	AdminStats struct {
		TotalStudents   int               `json:"totalStudents"`
		TotalAdmissions int               `json:"totalAdmissions"`
		TotalIncome     int               `json:"totalIncome"`
		RecentPayments  []payment.Payment `json:"recentPayments"`
	}

	// Receipt is the printable invoice for a verified payment.
	Receipt struct {
		ReceiptNo      string `json:"receiptNo"`
		Date           string `json:"date"`
		StudentDetails struct {
			Name      string `json:"name"`
			StudentID string `json:"studentId,omitempty"`
			Email     string `json:"email,omitempty"`
			Phone     string `json:"phone,omitempty"`
		} `json:"studentDetails"`
		ItemDetails struct {
			ItemName string `json:"itemName"`
			Type     string `json:"type"`
			RollNo   string `json:"rollNo,omitempty"`
		} `json:"itemDetails"`
		PaymentDetails struct {
			Method string `json:"method"`
			TrxID  string `json:"trxId"`
			Amount int    `json:"amount"`
			Fee    int    `json:"fee"`
			Total  int    `json:"total"`
		} `json:"paymentDetails"`
	}
)
