package course

import (
	"context"

	"github.com/techcomputer/portal/core"
)

type (
	Repository interface {
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		CreateCourse(ctx context.Context, data NewCourse) (Course, error)
		UpdateCourse(ctx context.Context, id string, data NewCourse) (Course, error)
		DeleteCourse(ctx context.Context, id string) error

		QueryClassesByCourse(ctx context.Context, courseID string) ([]Class, error)
		CreateClass(ctx context.Context, data NewClass) (Class, error)
		DeleteClass(ctx context.Context, id string) error
	}

	Service struct {
		repo    Repository
		confirm core.Confirmer
	}
)

func NewService(repo Repository, confirm core.Confirmer) *Service {
	return &Service{repo: repo, confirm: confirm}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, data NewCourse) (Course, error) {
	if err := data.Validate(); err != nil {
		return Course{}, err
	}
	return svc.repo.CreateCourse(ctx, data)
}

func (svc *Service) Update(ctx context.Context, id string, data NewCourse) (Course, error) {
	if err := data.Validate(); err != nil {
		return Course{}, err
	}
	return svc.repo.UpdateCourse(ctx, id, data)
}

// Delete removes a course after confirmation. Declining leaves the catalog
// untouched; no call is issued.
func (svc *Service) Delete(ctx context.Context, id string) error {
	if !svc.confirm.Confirm("Are you sure you want to delete this course?") {
		return core.ErrDeclined
	}
	return svc.repo.DeleteCourse(ctx, id)
}

func (svc *Service) Classes(ctx context.Context, courseID string) ([]Class, error) {
	return svc.repo.QueryClassesByCourse(ctx, courseID)
}

func (svc *Service) ScheduleClass(ctx context.Context, data NewClass) (Class, error) {
	if err := data.Validate(); err != nil {
		return Class{}, err
	}
	return svc.repo.CreateClass(ctx, data)
}

func (svc *Service) DeleteClass(ctx context.Context, id string) error {
	if !svc.confirm.Confirm("Delete this class schedule?") {
		return core.ErrDeclined
	}
	return svc.repo.DeleteClass(ctx, id)
}
