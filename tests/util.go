// Package testutil provides in-memory stand-ins for the backend API so the
// core services and web handlers can be exercised without HTTP.
package testutil

import (
	"context"
	"time"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/course"
	"github.com/techcomputer/portal/core/dashboard"
	"github.com/techcomputer/portal/core/payment"
	"github.com/techcomputer/portal/core/product"
	"github.com/techcomputer/portal/core/user"
)

// Confirmer answers every prompt with a fixed answer and counts how often it
// was asked.
type Confirmer struct {
	Answer bool
	Asked  int
	LastQ  string
}

var _ core.Confirmer = (*Confirmer)(nil)

func (c *Confirmer) Confirm(msg string) bool {
	c.Asked++
	c.LastQ = msg
	return c.Answer
}

// UserRepo fakes the accounts API.
type UserRepo struct {
	Token string
	User  user.User
	Users []user.User
	Err   error

	LoginCalls  int
	Registered  []user.Register
	Verified    []string
	Resent      []string
	Resets      []string
	RoleChanges map[string]string
	Deleted     []string
}

var _ user.Repository = (*UserRepo)(nil)

func (r *UserRepo) Login(_ context.Context, _ user.Login) (string, user.User, error) {
	r.LoginCalls++
	return r.Token, r.User, r.Err
}

func (r *UserRepo) Register(_ context.Context, data user.Register) error {
	r.Registered = append(r.Registered, data)
	return r.Err
}

func (r *UserRepo) VerifyEmail(_ context.Context, token string) error {
	r.Verified = append(r.Verified, token)
	return r.Err
}

func (r *UserRepo) ResendVerification(_ context.Context, email string) error {
	r.Resent = append(r.Resent, email)
	return r.Err
}

func (r *UserRepo) ForgotPassword(_ context.Context, email string) error {
	r.Resets = append(r.Resets, email)
	return r.Err
}

func (r *UserRepo) QueryAllUsers(_ context.Context) ([]user.User, error) {
	return r.Users, r.Err
}

func (r *UserRepo) SetUserRole(_ context.Context, id, role string) (user.User, error) {
	if r.RoleChanges == nil {
		r.RoleChanges = make(map[string]string)
	}
	r.RoleChanges[id] = role
	usr := r.User
	usr.ID, usr.Role = id, role
	return usr, r.Err
}

func (r *UserRepo) DeleteUser(_ context.Context, id string) error {
	r.Deleted = append(r.Deleted, id)
	return r.Err
}

// PaymentRepo fakes the payments API. Mutations flip statuses in place so
// re-fetch behaviour is observable through ListCalls.
type PaymentRepo struct {
	Payments  []payment.Payment
	Methods   []payment.PaymentMethod
	Downloads []payment.Download
	Err       error

	Created   []payment.NewPayment
	ListCalls int
	Verified  []string
	Rejected  []string
	Deleted   []string
}

var _ payment.Repository = (*PaymentRepo)(nil)

func (r *PaymentRepo) CreatePayment(_ context.Context, data payment.NewPayment) (payment.Payment, error) {
	r.Created = append(r.Created, data)
	if r.Err != nil {
		return payment.Payment{}, r.Err
	}
	pay := payment.Payment{
		ID:             "pay1",
		SourceType:     data.SourceType,
		SourceID:       data.SourceID,
		Method:         data.Method,
		SenderMobile:   data.SenderMobile,
		TransactionID:  data.TransactionID,
		Amount:         data.Amount,
		TransactionFee: data.TransactionFee,
		TotalAmount:    data.TotalAmount,
		Status:         payment.StatusPending,
		CreatedAt:      time.Now(),
	}
	r.Payments = append(r.Payments, pay)
	return pay, nil
}

func (r *PaymentRepo) QueryAllPayments(_ context.Context) ([]payment.Payment, error) {
	r.ListCalls++
	return r.Payments, r.Err
}

func (r *PaymentRepo) VerifyPayment(_ context.Context, id string) error {
	r.Verified = append(r.Verified, id)
	r.setStatus(id, payment.StatusVerified)
	return r.Err
}

func (r *PaymentRepo) RejectPayment(_ context.Context, id string) error {
	r.Rejected = append(r.Rejected, id)
	r.setStatus(id, payment.StatusRejected)
	return r.Err
}

func (r *PaymentRepo) DeletePayment(_ context.Context, id string) error {
	r.Deleted = append(r.Deleted, id)
	for i, p := range r.Payments {
		if p.ID == id {
			r.Payments = append(r.Payments[:i], r.Payments[i+1:]...)
			break
		}
	}
	return r.Err
}

func (r *PaymentRepo) setStatus(id, status string) {
	for i := range r.Payments {
		if r.Payments[i].ID == id {
			r.Payments[i].Status = status
		}
	}
}

func (r *PaymentRepo) QueryPaymentMethods(_ context.Context) ([]payment.PaymentMethod, error) {
	return r.Methods, r.Err
}

func (r *PaymentRepo) CreatePaymentMethod(_ context.Context, data payment.NewPaymentMethod) (payment.PaymentMethod, error) {
	method := payment.PaymentMethod{ID: "m1", MethodName: data.MethodName, Number: data.Number, AccountType: data.AccountType}
	r.Methods = append(r.Methods, method)
	return method, r.Err
}

func (r *PaymentRepo) DeletePaymentMethod(_ context.Context, id string) error {
	for i, m := range r.Methods {
		if m.ID == id {
			r.Methods = append(r.Methods[:i], r.Methods[i+1:]...)
			break
		}
	}
	return r.Err
}

func (r *PaymentRepo) QueryMyDownloads(_ context.Context) ([]payment.Download, error) {
	return r.Downloads, r.Err
}

// AdmissionRepo fakes the admissions API. CreateErr simulates the backend's
// duplicate rejection without touching Mine.
type AdmissionRepo struct {
	Mine      []admission.Admission
	All       []admission.Admission
	ByID      map[string]admission.Admission
	CreateErr error
	Err       error

	Created []admission.NewAdmission
}

var _ admission.Repository = (*AdmissionRepo)(nil)

func (r *AdmissionRepo) CreateAdmission(_ context.Context, data admission.NewAdmission) (admission.Admission, error) {
	r.Created = append(r.Created, data)
	if r.CreateErr != nil {
		return admission.Admission{}, r.CreateErr
	}
	adm := admission.Admission{
		ID:     "adm1",
		Status: admission.StatusPending,
		Course: &course.Course{ID: data.CourseID},
	}
	r.Mine = append(r.Mine, adm)
	return adm, nil
}

func (r *AdmissionRepo) QueryMyAdmissions(_ context.Context) ([]admission.Admission, error) {
	return r.Mine, r.Err
}

func (r *AdmissionRepo) GetAdmissionByID(_ context.Context, id string) (admission.Admission, error) {
	if adm, ok := r.ByID[id]; ok {
		return adm, nil
	}
	if r.Err != nil {
		return admission.Admission{}, r.Err
	}
	return admission.Admission{}, core.NewAPIError(404, "admission not found")
}

func (r *AdmissionRepo) QueryAllAdmissions(_ context.Context) ([]admission.Admission, error) {
	return r.All, r.Err
}

// CourseRepo fakes the catalog API.
type CourseRepo struct {
	Courses []course.Course
	Classes []course.Class
	Err     error

	Created   []course.NewCourse
	Updated   map[string]course.NewCourse
	Deleted   []string
	ClassDels []string
}

var _ course.Repository = (*CourseRepo)(nil)

func (r *CourseRepo) QueryAllCourses(_ context.Context) ([]course.Course, error) {
	return r.Courses, r.Err
}

func (r *CourseRepo) GetCourseByID(_ context.Context, id string) (course.Course, error) {
	for _, c := range r.Courses {
		if c.ID == id {
			return c, nil
		}
	}
	if r.Err != nil {
		return course.Course{}, r.Err
	}
	return course.Course{}, core.NewAPIError(404, "course not found")
}

func (r *CourseRepo) CreateCourse(_ context.Context, data course.NewCourse) (course.Course, error) {
	r.Created = append(r.Created, data)
	crs := course.Course{ID: "c1", Title: data.Title, Fee: data.Fee, Duration: data.Duration}
	r.Courses = append(r.Courses, crs)
	return crs, r.Err
}

func (r *CourseRepo) UpdateCourse(_ context.Context, id string, data course.NewCourse) (course.Course, error) {
	if r.Updated == nil {
		r.Updated = make(map[string]course.NewCourse)
	}
	r.Updated[id] = data
	return course.Course{ID: id, Title: data.Title, Fee: data.Fee}, r.Err
}

func (r *CourseRepo) DeleteCourse(_ context.Context, id string) error {
	r.Deleted = append(r.Deleted, id)
	return r.Err
}

func (r *CourseRepo) QueryClassesByCourse(_ context.Context, courseID string) ([]course.Class, error) {
	var classes []course.Class
	for _, cl := range r.Classes {
		if cl.CourseID == courseID {
			classes = append(classes, cl)
		}
	}
	return classes, r.Err
}

func (r *CourseRepo) CreateClass(_ context.Context, data course.NewClass) (course.Class, error) {
	cl := course.Class{ID: "cl1", CourseID: data.CourseID, Title: data.Title, MeetingLink: data.MeetingLink, ScheduledAt: time.Now()}
	r.Classes = append(r.Classes, cl)
	return cl, r.Err
}

func (r *CourseRepo) DeleteClass(_ context.Context, id string) error {
	r.ClassDels = append(r.ClassDels, id)
	return r.Err
}

// ProductRepo fakes the products API; Updated records the exact payloads sent.
type ProductRepo struct {
	Products []product.Product
	FileURL  string
	Err      error

	Created []product.NewProduct
	Updated map[string]product.NewProduct
	Deleted []string
}

var _ product.Repository = (*ProductRepo)(nil)

func (r *ProductRepo) QueryActiveProducts(_ context.Context) ([]product.Product, error) {
	var active []product.Product
	for _, p := range r.Products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, r.Err
}

func (r *ProductRepo) QueryAllProducts(_ context.Context) ([]product.Product, error) {
	return r.Products, r.Err
}

func (r *ProductRepo) GetProductByID(_ context.Context, id string) (product.Product, error) {
	for _, p := range r.Products {
		if p.ID == id {
			return p, nil
		}
	}
	if r.Err != nil {
		return product.Product{}, r.Err
	}
	return product.Product{}, core.NewAPIError(404, "product not found")
}

func (r *ProductRepo) CreateProduct(_ context.Context, data product.NewProduct) (product.Product, error) {
	r.Created = append(r.Created, data)
	prod := product.Product{ID: "p1", Title: data.Title, Price: data.Price, IsActive: data.IsActive}
	r.Products = append(r.Products, prod)
	return prod, r.Err
}

func (r *ProductRepo) UpdateProduct(_ context.Context, id string, data product.NewProduct) (product.Product, error) {
	if r.Updated == nil {
		r.Updated = make(map[string]product.NewProduct)
	}
	r.Updated[id] = data
	return product.Product{ID: id, Title: data.Title, Price: data.Price, IsActive: data.IsActive}, r.Err
}

func (r *ProductRepo) DeleteProduct(_ context.Context, id string) error {
	r.Deleted = append(r.Deleted, id)
	return r.Err
}

func (r *ProductRepo) DownloadProduct(_ context.Context, _ string) (string, error) {
	return r.FileURL, r.Err
}

// DashboardRepo fakes the dashboard API.
type DashboardRepo struct {
	Home    dashboard.StudentHome
	Stats   dashboard.AdminStats
	Receipt dashboard.Receipt
	Err     error
}

var _ dashboard.Repository = (*DashboardRepo)(nil)

func (r *DashboardRepo) GetStudentHome(_ context.Context) (dashboard.StudentHome, error) {
	return r.Home, r.Err
}

func (r *DashboardRepo) GetAdminStats(_ context.Context) (dashboard.AdminStats, error) {
	return r.Stats, r.Err
}

func (r *DashboardRepo) GetReceipt(_ context.Context, _ string) (dashboard.Receipt, error) {
	return r.Receipt, r.Err
}

// SamplePayment builds a pending payment for list/filter fixtures.
func SamplePayment(id, buyer, trxID, mobile string) payment.Payment {
	return payment.Payment{
		ID:             id,
		User:           &user.User{ID: "u-" + id, Name: buyer},
		SourceType:     payment.SourceAdmission,
		SourceID:       "adm-" + id,
		Method:         "bkash",
		SenderMobile:   mobile,
		TransactionID:  trxID,
		Amount:         1500,
		TransactionFee: 30,
		TotalAmount:    1530,
		Status:         payment.StatusPending,
		CreatedAt:      time.Now(),
	}
}
