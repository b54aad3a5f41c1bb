package gateway

import (
	"context"

	"github.com/techcomputer/portal/core/admission"
)

type admissionRepository struct {
	c *Client
}

var _ admission.Repository = (*admissionRepository)(nil) // interface compliance check

func NewAdmissionRepository(c *Client) admission.Repository {
	return &admissionRepository{c: c}
}

func (repo *admissionRepository) CreateAdmission(ctx context.Context, data admission.NewAdmission) (admission.Admission, error) {
	var adm admission.Admission
	err := repo.c.post(ctx, "/admissions", data, &adm)
	return adm, err
}

func (repo *admissionRepository) QueryMyAdmissions(ctx context.Context) ([]admission.Admission, error) {
	var admissions []admission.Admission
	err := repo.c.get(ctx, "/admissions/my", nil, &admissions)
	return admissions, err
}

func (repo *admissionRepository) GetAdmissionByID(ctx context.Context, id string) (admission.Admission, error) {
	var adm admission.Admission
	err := repo.c.get(ctx, "/admissions/"+id, nil, &adm)
	return adm, err
}

func (repo *admissionRepository) QueryAllAdmissions(ctx context.Context) ([]admission.Admission, error) {
	var admissions []admission.Admission
	err := repo.c.get(ctx, "/admissions", nil, &admissions)
	return admissions, err
}
