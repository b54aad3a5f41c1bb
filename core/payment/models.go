package payment

import (
	"time"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/user"
)

// Payment statuses. Transitions are one-directional: pending -> verified|rejected,
// applied by the backend when an admin acts on the verification console.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// Payment sources: what the money was sent for.
const (
	SourceAdmission = "admission"
	SourceProduct   = "product"
)

type (
	// SourceDetails is the backend's denormalized view of whatever the
	// payment was made for, shown in the console's expanded row.
	SourceDetails struct {
		Type        string `json:"type"`
		Title       string `json:"title"`
		ProductType string `json:"productType,omitempty"`
		Price       *int   `json:"price,omitempty"`
		Fee         *int   `json:"fee,omitempty"`
		Duration    string `json:"duration,omitempty"`
		Session     string `json:"session,omitempty"`
		Status      string `json:"status,omitempty"`
		Description string `json:"description,omitempty"`
	}

	Payment struct {
		ID             string         `json:"_id"`
		User           *user.User     `json:"user,omitempty"`
		SourceType     string         `json:"sourceType"`
		SourceID       string         `json:"sourceId"`
		Method         string         `json:"paymentMethod"`
		SenderMobile   string         `json:"senderMobile"`
		TransactionID  string         `json:"transactionId"`
		Amount         int            `json:"amount"`
		TransactionFee int            `json:"transactionFee"`
		TotalAmount    int            `json:"totalAmount"`
		Status         string         `json:"status"`
		ReceiptNo      string         `json:"receiptNo,omitempty"`
		Source         *SourceDetails `json:"sourceDetails,omitempty"`
		CreatedAt      time.Time      `json:"createdAt"`
		VerifiedAt     *time.Time     `json:"verifiedAt,omitempty"`
	}

	// PaymentMethod is an admin-configured receiving wallet shown to payers.
	PaymentMethod struct {
		ID          string `json:"_id"`
		MethodName  string `json:"methodName"`
		Number      string `json:"number"`
		AccountType string `json:"accountType"`
	}

	NewPaymentMethod struct {
		MethodName  string `json:"methodName" validate:"required"`
		Number      string `json:"number" validate:"required,bd_mobile"`
		AccountType string `json:"accountType" validate:"required"`
	}
)

// Actionable reports whether verify/reject buttons apply: only pending
// payments may be acted on, which is what makes repeating an action on an
// already-verified payment impossible from the UI.
func (p Payment) Actionable() bool { return p.Status == StatusPending }

func (nm *NewPaymentMethod) Validate() error {
	nm.MethodName = core.CleanString(nm.MethodName)
	nm.Number = core.CleanString(nm.Number)
	nm.AccountType = core.CleanString(nm.AccountType)
	return core.Validate.Struct(nm)
}

// Quote is the amount breakdown shown on the payment screen and submitted
// with the payment. Amount is the base fee only; the fixed service charge is
// carried separately so both admission and product submissions agree on what
// the backend receives.
type Quote struct {
	Amount         int `json:"amount"`
	TransactionFee int `json:"transactionFee"`
	TotalAmount    int `json:"totalAmount"`
}

func NewQuote(baseAmount, fee int) Quote {
	return Quote{Amount: baseAmount, TransactionFee: fee, TotalAmount: baseAmount + fee}
}

// NewPayment is the manual mobile-wallet submission form.
type NewPayment struct {
	SourceType    string `json:"sourceType" validate:"required,oneof=admission product"`
	SourceID      string `json:"sourceId" validate:"required"`
	Method        string `json:"paymentMethod" validate:"required"`
	SenderMobile  string `json:"senderMobile" validate:"required,bd_mobile"`
	TransactionID string `json:"transactionId" validate:"required"`

	Quote
}

func (np *NewPayment) Validate() error {
	np.Method = core.CleanString(np.Method, true /* lower */)
	np.SenderMobile = core.CleanString(np.SenderMobile)
	np.TransactionID = core.CleanString(np.TransactionID)
	return core.Validate.Struct(np)
}
