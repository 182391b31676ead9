package service

import (
	"context"
	"errors"
	"testing"

	"app/internal/model"

	"github.com/rs/zerolog"
)

func TestCreateAndGetCourse(t *testing.T) {
	ctx := context.Background()
	repo := newMemCourseRepo()
	svc := NewCourseService(repo)

	created, err := svc.CreateCourse(ctx, &model.Course{Name: "Algorithms", Credits: 6})
	if err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected course id to be assigned")
	}

	got, err := svc.GetCourseByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCourseByID returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected course to be found")
	}
	if got.Name != "Algorithms" || got.Credits != 6 {
		t.Fatalf("unexpected course: %+v", got)
	}
	// New courses start with empty reference lists.
	if len(got.LessonIDs) != 0 || len(got.TopicIDs) != 0 {
		t.Fatalf("expected empty reference lists, got %v / %v", got.LessonIDs, got.TopicIDs)
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc := NewCourseService(newMemCourseRepo())

	_, err := svc.UpdateCourse(context.Background(), &model.Course{ID: "missing", Name: "x"})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc := NewCourseService(newMemCourseRepo())

	err := svc.DeleteCourse(context.Background(), "missing")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteCourseDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	courseRepo := newMemCourseRepo()
	courseRepo.addCourse("c1", "Algorithms")
	lessonRepo := newMemLessonRepo()
	lessonSvc := NewLessonService(lessonRepo, courseRepo, zerolog.Nop())
	courseSvc := NewCourseService(courseRepo)

	created, err := lessonSvc.CreateLesson(ctx, &model.Lesson{CourseID: "c1", Title: "Intro"})
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}

	if err := courseSvc.DeleteCourse(ctx, "c1"); err != nil {
		t.Fatalf("DeleteCourse returned error: %v", err)
	}

	// The lesson record survives the course deletion.
	got, err := lessonSvc.GetLessonByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetLessonByID returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected lesson to remain after course deletion")
	}
}
