package service

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"
)

// In-memory fakes for the repository interfaces. Error fields let tests force
// failures at specific steps of the reference-maintenance sequence.

type memCourseRepo struct {
	courses map[string]*model.Course

	appendLessonErr error
	removeLessonErr error
	appendTopicErr  error
	removeTopicErr  error
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{courses: map[string]*model.Course{}}
}

func (r *memCourseRepo) addCourse(id, name string) {
	r.courses[id] = &model.Course{ID: id, Name: name, LessonIDs: model.IDList{}, TopicIDs: model.IDList{}}
}

func (r *memCourseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	if c.ID == "" {
		c.ID = fmt.Sprintf("course-%d", len(r.courses)+1)
	}
	c.LessonIDs = model.IDList{}
	c.TopicIDs = model.IDList{}
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *memCourseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	c, ok := r.courses[courseID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCourseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	if _, ok := r.courses[c.ID]; !ok {
		return errors.New("missing row")
	}
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *memCourseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	delete(r.courses, courseID)
	return nil
}

func (r *memCourseRepo) AppendLessonRef(ctx context.Context, courseID, lessonID string) error {
	if r.appendLessonErr != nil {
		return r.appendLessonErr
	}
	if c, ok := r.courses[courseID]; ok {
		c.LessonIDs = append(c.LessonIDs, lessonID)
	}
	return nil
}

func (r *memCourseRepo) RemoveLessonRef(ctx context.Context, courseID, lessonID string) error {
	if r.removeLessonErr != nil {
		return r.removeLessonErr
	}
	if c, ok := r.courses[courseID]; ok {
		out := model.IDList{}
		for _, id := range c.LessonIDs {
			if id != lessonID {
				out = append(out, id)
			}
		}
		c.LessonIDs = out
	}
	return nil
}

func (r *memCourseRepo) AppendTopicRef(ctx context.Context, courseID, topicID string) error {
	if r.appendTopicErr != nil {
		return r.appendTopicErr
	}
	if c, ok := r.courses[courseID]; ok {
		c.TopicIDs = append(c.TopicIDs, topicID)
	}
	return nil
}

func (r *memCourseRepo) RemoveTopicRef(ctx context.Context, courseID, topicID string) error {
	if r.removeTopicErr != nil {
		return r.removeTopicErr
	}
	if c, ok := r.courses[courseID]; ok {
		out := model.IDList{}
		for _, id := range c.TopicIDs {
			if id != topicID {
				out = append(out, id)
			}
		}
		c.TopicIDs = out
	}
	return nil
}

type memLessonRepo struct {
	lessons map[string]*model.Lesson
	nextID  int
}

func newMemLessonRepo() *memLessonRepo {
	return &memLessonRepo{lessons: map[string]*model.Lesson{}}
}

func (r *memLessonRepo) ListLessonsByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	out := []model.Lesson{}
	for _, l := range r.lessons {
		if l.CourseID == courseID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *memLessonRepo) CreateLesson(ctx context.Context, l *model.Lesson) error {
	if l.ID == "" {
		r.nextID++
		l.ID = fmt.Sprintf("lesson-%d", r.nextID)
	}
	cp := *l
	r.lessons[l.ID] = &cp
	return nil
}

func (r *memLessonRepo) GetLessonByID(ctx context.Context, lessonID string) (*model.Lesson, error) {
	l, ok := r.lessons[lessonID]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLessonRepo) UpdateLesson(ctx context.Context, l *model.Lesson) error {
	if _, ok := r.lessons[l.ID]; !ok {
		return errors.New("missing row")
	}
	cp := *l
	r.lessons[l.ID] = &cp
	return nil
}

func (r *memLessonRepo) DeleteLesson(ctx context.Context, lessonID string) error {
	delete(r.lessons, lessonID)
	return nil
}

type memTopicRepo struct {
	topics map[string]*model.Topic
	order  []string
	nextID int

	createErr error
}

func newMemTopicRepo() *memTopicRepo {
	return &memTopicRepo{topics: map[string]*model.Topic{}}
}

func (r *memTopicRepo) ListTopicsByCourse(ctx context.Context, courseID string) ([]model.Topic, error) {
	out := []model.Topic{}
	for _, id := range r.order {
		t := r.topics[id]
		if t != nil && t.CourseID == courseID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTopicRepo) CreateTopic(ctx context.Context, t *model.Topic) error {
	if r.createErr != nil {
		return r.createErr
	}
	if t.ID == "" {
		r.nextID++
		t.ID = fmt.Sprintf("topic-%d", r.nextID)
	}
	cp := *t
	r.topics[t.ID] = &cp
	r.order = append(r.order, t.ID)
	return nil
}

func (r *memTopicRepo) GetTopicByID(ctx context.Context, topicID string) (*model.Topic, error) {
	t, ok := r.topics[topicID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTopicRepo) UpdateTopic(ctx context.Context, t *model.Topic) error {
	if _, ok := r.topics[t.ID]; !ok {
		return errors.New("missing row")
	}
	cp := *t
	r.topics[t.ID] = &cp
	return nil
}

func (r *memTopicRepo) DeleteTopic(ctx context.Context, topicID string) error {
	delete(r.topics, topicID)
	return nil
}
