package gateway

import (
	"context"

	"github.com/techcomputer/portal/core/course"
)

type courseRepository struct {
	c *Client
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(c *Client) course.Repository {
	return &courseRepository{c: c}
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	err := repo.c.get(ctx, "/courses", nil, &courses)
	return courses, err
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	var crs course.Course
	err := repo.c.get(ctx, "/courses/"+id, nil, &crs)
	return crs, err
}

func (repo *courseRepository) CreateCourse(ctx context.Context, data course.NewCourse) (course.Course, error) {
	var crs course.Course
	err := repo.c.post(ctx, "/courses", data, &crs)
	return crs, err
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, id string, data course.NewCourse) (course.Course, error) {
	var crs course.Course
	err := repo.c.put(ctx, "/courses/"+id, data, &crs)
	return crs, err
}

func (repo *courseRepository) DeleteCourse(ctx context.Context, id string) error {
	return repo.c.delete(ctx, "/courses/"+id)
}

func (repo *courseRepository) QueryClassesByCourse(ctx context.Context, courseID string) ([]course.Class, error) {
	var classes []course.Class
	err := repo.c.get(ctx, "/classes/course/"+courseID, nil, &classes)
	return classes, err
}

func (repo *courseRepository) CreateClass(ctx context.Context, data course.NewClass) (course.Class, error) {
	var cls course.Class
	err := repo.c.post(ctx, "/classes", data, &cls)
	return cls, err
}

func (repo *courseRepository) DeleteClass(ctx context.Context, id string) error {
	return repo.c.delete(ctx, "/classes/"+id)
}
