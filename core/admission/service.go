package admission

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/course"
)

type (
	Repository interface {
		CreateAdmission(ctx context.Context, data NewAdmission) (Admission, error)
		QueryMyAdmissions(ctx context.Context) ([]Admission, error)
		GetAdmissionByID(ctx context.Context, id string) (Admission, error)
		QueryAllAdmissions(ctx context.Context) ([]Admission, error)
	}

	// Service drives an applicant's admission through its lifecycle. The
	// status itself only ever moves server-side; the portal submits records
	// and navigates between screens.
	Service struct {
		repo    Repository
		courses course.Repository
	}

	// Application is what the apply screen needs on load: the course being
	// applied for and, when the applicant already has an admission for it,
	// that admission so the screen can short-circuit to its payment flow.
	Application struct {
		Course   course.Course
		Existing *Admission
	}
)

func NewService(repo Repository, courses course.Repository) *Service {
	return &Service{repo: repo, courses: courses}
}

// Prepare loads the apply screen: course details plus a duplicate check
// against the applicant's own admissions.
func (svc *Service) Prepare(ctx context.Context, courseID string) (Application, error) {
	crs, err := svc.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return Application{}, errors.Wrap(err, "fetching course")
	}
	app := Application{Course: crs}

	mine, err := svc.repo.QueryMyAdmissions(ctx)
	if err != nil {
		return Application{}, errors.Wrap(err, "fetching own admissions")
	}
	for i := range mine {
		if mine[i].CourseID() == courseID {
			app.Existing = &mine[i]
			break
		}
	}
	return app, nil
}

// Apply submits an application. The backend enforces at most one admission
// per (user, course); when it reports a duplicate, Apply recovers by looking
// the existing admission up and returning it with existing=true so the caller
// navigates to its payment screen instead of failing.
func (svc *Service) Apply(ctx context.Context, data NewAdmission) (adm Admission, existing bool, err error) {
	if err = data.Validate(); err != nil {
		return Admission{}, false, err
	}

	adm, err = svc.repo.CreateAdmission(ctx, data)
	if err == nil {
		return adm, false, nil
	}
	if !isAlreadyApplied(err) {
		return Admission{}, false, err
	}

	// best-effort duplicate recovery; surface the original error if the
	// lookup cannot find the admission either
	mine, lookupErr := svc.repo.QueryMyAdmissions(ctx)
	if lookupErr != nil {
		return Admission{}, false, err
	}
	for i := range mine {
		if mine[i].CourseID() == data.CourseID {
			return mine[i], true, nil
		}
	}
	return Admission{}, false, err
}

// isAlreadyApplied matches the backend's duplicate-admission rejection: a 400
// whose message mentions "already". The string match mirrors the backend's
// contract; a structured error code would be preferable but is not what the
// API returns today.
func isAlreadyApplied(err error) bool {
	return core.IsBadRequest(err) &&
		strings.Contains(strings.ToLower(core.APIErrorMessage(err)), "already")
}

func (svc *Service) My(ctx context.Context) ([]Admission, error) {
	return svc.repo.QueryMyAdmissions(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Admission, error) {
	return svc.repo.GetAdmissionByID(ctx, id)
}

// QueryAll lists every admission. Admin only; the backend enforces it.
func (svc *Service) QueryAll(ctx context.Context) ([]Admission, error) {
	return svc.repo.QueryAllAdmissions(ctx)
}
