// Package storetest provides an in-memory implementation of the
// repository interfaces for handler and service tests.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"qa-service/internal/entity"
)

type likeKey struct {
	userID     int
	questionID int
}

// Store holds all tables behind one mutex. Access it through the
// repository facades returned by Users, Questions, Answers and Likes.
type Store struct {
	mu        sync.Mutex
	users     map[int]*entity.User
	questions map[int]*entity.Question
	answers   map[int]*entity.Answer
	likes     map[likeKey]entity.Like
	nextID    int
	clock     time.Time
}

func New() *Store {
	return &Store{
		users:     map[int]*entity.User{},
		questions: map[int]*entity.Question{},
		answers:   map[int]*entity.Answer{},
		likes:     map[likeKey]entity.Like{},
		clock:     time.Now(),
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

// tick returns strictly increasing timestamps so creation order is
// unambiguous even within one test run.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *Store) owner(userID int) entity.User {
	u := s.users[userID]
	return entity.User{ID: u.ID, Username: u.Username, Email: u.Email}
}

func (s *Store) Users() *Users         { return &Users{s} }
func (s *Store) Questions() *Questions { return &Questions{s} }
func (s *Store) Answers() *Answers     { return &Answers{s} }
func (s *Store) Likes() *Likes         { return &Likes{s} }

type Users struct{ s *Store }

func (r *Users) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return nil, entity.ErrEmailTaken
		}
		if existing.Username == user.Username {
			return nil, entity.ErrUsernameTaken
		}
	}
	user.ID = r.s.id()
	copied := *user
	r.s.users[user.ID] = &copied
	return user, nil
}

func (r *Users) GetByID(_ context.Context, id int) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entity.ErrNotFound
}

type Questions struct{ s *Store }

func (r *Questions) Create(_ context.Context, question *entity.Question) (*entity.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	question.ID = r.s.id()
	question.CreatedAt = r.s.tick()
	copied := *question
	r.s.questions[question.ID] = &copied
	return r.s.readQuestion(question.ID)
}

// readQuestion mirrors the SQL projection: owner joined in, like count
// computed live. Callers must hold the mutex.
func (s *Store) readQuestion(id int) (*entity.Question, error) {
	question, ok := s.questions[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *question
	copied.User = s.owner(question.UserID)
	copied.LikesCount = 0
	for key := range s.likes {
		if key.questionID == id {
			copied.LikesCount++
		}
	}
	return &copied, nil
}

func (r *Questions) GetByID(_ context.Context, id int) (*entity.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.readQuestion(id)
}

func (r *Questions) List(_ context.Context, skip, limit int) ([]entity.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.s.sortedQuestions(func(*entity.Question) bool { return true })
	if skip > len(all) {
		skip = len(all)
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *Questions) ListByUser(_ context.Context, userID int) ([]entity.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedQuestions(func(q *entity.Question) bool { return q.UserID == userID }), nil
}

func (s *Store) sortedQuestions(keep func(*entity.Question) bool) []entity.Question {
	result := []entity.Question{}
	for id, question := range s.questions {
		if keep(question) {
			read, _ := s.readQuestion(id)
			result = append(result, *read)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (r *Questions) Update(_ context.Context, id int, title, content string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	question, ok := r.s.questions[id]
	if !ok {
		return entity.ErrNotFound
	}
	now := r.s.tick()
	question.Title = title
	question.Content = content
	question.UpdatedAt = &now
	return nil
}

func (r *Questions) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questions[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.s.questions, id)
	for answerID, answer := range r.s.answers {
		if answer.QuestionID == id {
			delete(r.s.answers, answerID)
		}
	}
	for key := range r.s.likes {
		if key.questionID == id {
			delete(r.s.likes, key)
		}
	}
	return nil
}

// OrphanCount reports answers and likes whose question is gone; cascade
// asserts use it.
func (s *Store) OrphanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	orphans := 0
	for _, answer := range s.answers {
		if _, ok := s.questions[answer.QuestionID]; !ok {
			orphans++
		}
	}
	for key := range s.likes {
		if _, ok := s.questions[key.questionID]; !ok {
			orphans++
		}
	}
	return orphans
}

type Answers struct{ s *Store }

func (r *Answers) Create(_ context.Context, answer *entity.Answer) (*entity.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	answer.ID = r.s.id()
	answer.CreatedAt = r.s.tick()
	copied := *answer
	r.s.answers[answer.ID] = &copied
	return r.s.readAnswer(answer.ID)
}

func (s *Store) readAnswer(id int) (*entity.Answer, error) {
	answer, ok := s.answers[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *answer
	copied.User = s.owner(answer.UserID)
	return &copied, nil
}

func (r *Answers) GetByID(_ context.Context, id int) (*entity.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.readAnswer(id)
}

func (r *Answers) ListByQuestion(_ context.Context, questionID int) ([]entity.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedAnswers(func(a *entity.Answer) bool { return a.QuestionID == questionID }, false), nil
}

func (r *Answers) ListByUser(_ context.Context, userID int) ([]entity.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedAnswers(func(a *entity.Answer) bool { return a.UserID == userID }, true), nil
}

func (s *Store) sortedAnswers(keep func(*entity.Answer) bool, newestFirst bool) []entity.Answer {
	result := []entity.Answer{}
	for id, answer := range s.answers {
		if keep(answer) {
			read, _ := s.readAnswer(id)
			result = append(result, *read)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		before := result[i].CreatedAt.Before(result[j].CreatedAt)
		if newestFirst {
			return !before
		}
		return before
	})
	return result
}

func (r *Answers) Update(_ context.Context, id int, content string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	answer, ok := r.s.answers[id]
	if !ok {
		return entity.ErrNotFound
	}
	now := r.s.tick()
	answer.Content = content
	answer.UpdatedAt = &now
	return nil
}

func (r *Answers) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.answers[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.s.answers, id)
	return nil
}

type Likes struct{ s *Store }

func (r *Likes) Create(_ context.Context, userID, questionID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := likeKey{userID, questionID}
	if _, ok := r.s.likes[key]; ok {
		return entity.ErrAlreadyLiked
	}
	r.s.likes[key] = entity.Like{
		ID:         r.s.id(),
		UserID:     userID,
		QuestionID: questionID,
		CreatedAt:  r.s.tick(),
	}
	return nil
}

func (r *Likes) Delete(_ context.Context, userID, questionID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := likeKey{userID, questionID}
	if _, ok := r.s.likes[key]; !ok {
		return entity.ErrLikeNotFound
	}
	delete(r.s.likes, key)
	return nil
}
