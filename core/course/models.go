package course

import (
	"time"

	"github.com/techcomputer/portal/core"
)

// Course metadata as served by the backend. Immutable from the portal's
// perspective outside the admin edit forms.
type Course struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	TitleBn       string    `json:"titleBn,omitempty"`
	Description   string    `json:"description,omitempty"`
	DescriptionBn string    `json:"descriptionBn,omitempty"`
	Fee           int       `json:"fee"`
	Duration      string    `json:"duration"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewCourse is the admin create/edit form payload.
type NewCourse struct {
	Title         string `json:"title" validate:"required"`
	TitleBn       string `json:"titleBn"`
	Description   string `json:"description"`
	DescriptionBn string `json:"descriptionBn"`
	Fee           int    `json:"fee" validate:"required,gt=0"`
	Duration      string `json:"duration" validate:"required"`
}

func (nc *NewCourse) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Duration = core.CleanString(nc.Duration)
	return core.Validate.Struct(nc)
}

// Class is a scheduled online session under a course.
type Class struct {
	ID          string    `json:"_id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	MeetingLink string    `json:"meetingLink"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type NewClass struct {
	CourseID    string `json:"courseId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	MeetingLink string `json:"meetingLink" validate:"required,url"`
	ScheduledAt string `json:"scheduledAt" validate:"required"`
}

func (nc *NewClass) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.MeetingLink = core.CleanString(nc.MeetingLink)
	return core.Validate.Struct(nc)
}
