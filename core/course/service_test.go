package course_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/course"
	testutil "github.com/techcomputer/portal/tests"
)

func TestService_Delete(t *testing.T) {
	t.Run("declined leaves the catalog untouched", func(t *testing.T) {
		repo := &testutil.CourseRepo{Courses: []course.Course{{ID: "c1", Title: "Office Applications", Fee: 1500}}}
		confirm := &testutil.Confirmer{Answer: false}
		svc := course.NewService(repo, confirm)

		err := svc.Delete(context.Background(), "c1")
		assert.Equal(t, core.ErrDeclined, err)
		assert.Equal(t, 1, confirm.Asked)
		assert.Empty(t, repo.Deleted, "declined prompt must not call the backend")
		assert.Len(t, repo.Courses, 1)
	})

	t.Run("confirmed", func(t *testing.T) {
		repo := &testutil.CourseRepo{}
		svc := course.NewService(repo, core.AlwaysConfirm)

		if err := svc.Delete(context.Background(), "c1"); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
		assert.Equal(t, []string{"c1"}, repo.Deleted)
	})
}

func TestService_DeleteClass(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		repo := &testutil.CourseRepo{}
		confirm := &testutil.Confirmer{Answer: false}
		svc := course.NewService(repo, confirm)

		err := svc.DeleteClass(context.Background(), "cl1")
		assert.Equal(t, core.ErrDeclined, err)
		assert.Empty(t, repo.ClassDels)
	})

	t.Run("confirmed", func(t *testing.T) {
		repo := &testutil.CourseRepo{}
		svc := course.NewService(repo, core.AlwaysConfirm)

		if err := svc.DeleteClass(context.Background(), "cl1"); err != nil {
			t.Fatalf("DeleteClass() failed: %v", err)
		}
		assert.Equal(t, []string{"cl1"}, repo.ClassDels)
	})
}

func TestService_Create(t *testing.T) {
	valid := func() course.NewCourse {
		return course.NewCourse{Title: "Office Applications", Fee: 1500, Duration: "6 months"}
	}

	tests := []struct {
		name    string
		mangle  func(*course.NewCourse)
		wantErr bool
	}{
		{name: "ok", mangle: func(nc *course.NewCourse) {}},
		{name: "missing title", mangle: func(nc *course.NewCourse) { nc.Title = "" }, wantErr: true},
		{name: "zero fee", mangle: func(nc *course.NewCourse) { nc.Fee = 0 }, wantErr: true},
		{name: "missing duration", mangle: func(nc *course.NewCourse) { nc.Duration = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &testutil.CourseRepo{}
			svc := course.NewService(repo, core.AlwaysConfirm)

			data := valid()
			tt.mangle(&data)
			_, err := svc.Create(context.Background(), data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, repo.Created)
			} else {
				assert.NoError(t, err)
				assert.Len(t, repo.Created, 1)
			}
		})
	}
}

func TestService_ScheduleClass(t *testing.T) {
	repo := &testutil.CourseRepo{}
	svc := course.NewService(repo, core.AlwaysConfirm)

	_, err := svc.ScheduleClass(context.Background(), course.NewClass{CourseID: "c1", Title: "Week 1"})
	assert.Error(t, err, "meeting link and schedule are required")

	class, err := svc.ScheduleClass(context.Background(), course.NewClass{
		CourseID:    "c1",
		Title:       "Week 1",
		MeetingLink: "https://meet.test.tc/week-1",
		ScheduledAt: "2026-09-07T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("ScheduleClass() failed: %v", err)
	}
	assert.Equal(t, "c1", class.CourseID)
}
