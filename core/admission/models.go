package admission

import (
	"time"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/course"
	"github.com/techcomputer/portal/core/user"
)

// Admission statuses as assigned by the backend. The portal never writes the
// status directly; it moves server-side when the linked payment is verified
// or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Stage is the screen-level view of where an applicant is in the admission
// lifecycle, derived from the admission and its payment.
type Stage string

const (
	StageNotApplied       Stage = "not_applied"
	StageApplied          Stage = "applied"
	StagePaymentSubmitted Stage = "payment_submitted"
	StageVerified         Stage = "verified"
	StageRejected         Stage = "rejected"
)

type Admission struct {
	ID             string         `json:"_id"`
	User           *user.User     `json:"user,omitempty"`
	Course         *course.Course `json:"course,omitempty"`
	Status         string         `json:"status"`
	PaymentID      string         `json:"paymentId,omitempty"`
	Session        string         `json:"session"`
	FatherName     string         `json:"fatherName"`
	MotherName     string         `json:"motherName"`
	DateOfBirth    string         `json:"dateOfBirth"`
	Gender         string         `json:"gender"`
	Religion       string         `json:"religion,omitempty"`
	MaritalStatus  string         `json:"maritalStatus,omitempty"`
	NIDOrBirthCert string         `json:"nidOrBirthCert"`
	PresentAddress string         `json:"presentAddress"`
	GuardianPhone  string         `json:"guardianPhone"`
	PhotoURL       string         `json:"photoUrl"`
	SignatureURL   string         `json:"signatureUrl"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// CourseID tolerates both populated and bare course references.
func (a Admission) CourseID() string {
	if a.Course != nil {
		return a.Course.ID
	}
	return ""
}

// StageOf derives the lifecycle stage from an admission and its payment
// status ("" when no payment has been submitted yet).
//
//	NotApplied -> Applied(pending) -> PaymentSubmitted -> Verified | Rejected
func StageOf(adm *Admission, paymentStatus string) Stage {
	if adm == nil {
		return StageNotApplied
	}
	switch adm.Status {
	case StatusApproved:
		return StageVerified
	case StatusRejected:
		return StageRejected
	}
	switch paymentStatus {
	case "verified":
		return StageVerified
	case "rejected":
		return StageRejected
	case "pending":
		return StagePaymentSubmitted
	}
	return StageApplied
}

// NewAdmission is the application form; every field is required except the
// optional religion/marital-status selects which default server-side.
type NewAdmission struct {
	CourseID       string `json:"courseId" validate:"required"`
	Session        string `json:"session" validate:"required"`
	FatherName     string `json:"fatherName" validate:"required"`
	MotherName     string `json:"motherName" validate:"required"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=Male Female Other"`
	Religion       string `json:"religion"`
	MaritalStatus  string `json:"maritalStatus"`
	NIDOrBirthCert string `json:"nidOrBirthCert" validate:"required"`
	PresentAddress string `json:"presentAddress" validate:"required"`
	GuardianPhone  string `json:"guardianPhone" validate:"required,bd_mobile"`
	PhotoURL       string `json:"photoUrl" validate:"required,url"`
	SignatureURL   string `json:"signatureUrl" validate:"required,url"`
}

func (na *NewAdmission) Validate() error {
	na.FatherName = core.CleanString(na.FatherName)
	na.MotherName = core.CleanString(na.MotherName)
	na.PresentAddress = core.CleanString(na.PresentAddress)
	na.GuardianPhone = core.CleanString(na.GuardianPhone)
	na.NIDOrBirthCert = core.CleanString(na.NIDOrBirthCert)
	return core.Validate.Struct(na)
}
