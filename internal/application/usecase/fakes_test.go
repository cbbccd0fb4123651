package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
	"github.com/documentflow/documentflow-api/internal/infrastructure/storage"
)

// Repositorios en memoria para los tests de casos de uso.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByFirebaseUID(uid string) (*entity.User, error) {
	for _, u := range r.users {
		if u.FirebaseUID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(filters repository.UserFilters) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if filters.Department != "" && filters.Department != "all" && u.Department != filters.Department {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(u.FirstName+u.LastName+u.Email), strings.ToLower(filters.Search)) {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *fakeUserRepo) Departments() ([]string, error) {
	seen := map[string]bool{}
	for _, u := range r.users {
		seen[u.Department] = true
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

type fakeDocumentRepo struct {
	docs map[string]*entity.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[string]*entity.Document{}}
}

func (r *fakeDocumentRepo) Create(d *entity.Document) error {
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) GetByID(id string) (*entity.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) list(filter func(*entity.Document) bool, limit int) []*entity.Document {
	out := []*entity.Document{}
	for _, d := range r.docs {
		if filter(d) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *fakeDocumentRepo) ListByUser(userID string, filters repository.DocumentFilters) ([]*entity.Document, error) {
	return r.list(func(d *entity.Document) bool { return d.UserID == userID }, filters.Limit), nil
}

func (r *fakeDocumentRepo) ListAll(filters repository.DocumentFilters) ([]*entity.Document, error) {
	return r.list(func(d *entity.Document) bool {
		if filters.UserID != "" && d.UserID != filters.UserID {
			return false
		}
		if filters.Status != "" && filters.Status != "all" && d.Status != filters.Status {
			return false
		}
		return true
	}, filters.Limit), nil
}

func (r *fakeDocumentRepo) UpdateStatus(id, status string, processedAt *time.Time) (*entity.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d.Status = status
	d.ProcessedAt = processedAt
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) Delete(id string) error {
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type fakeDeadlineRepo struct {
	deadlines map[string]*entity.Deadline
}

func newFakeDeadlineRepo() *fakeDeadlineRepo {
	return &fakeDeadlineRepo{deadlines: map[string]*entity.Deadline{}}
}

func (r *fakeDeadlineRepo) Create(d *entity.Deadline) error {
	cp := *d
	r.deadlines[d.ID] = &cp
	return nil
}

func (r *fakeDeadlineRepo) GetByID(id string) (*entity.Deadline, error) {
	d, ok := r.deadlines[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDeadlineRepo) ListForUser(userID string) ([]*entity.Deadline, error) {
	out := []*entity.Deadline{}
	for _, d := range r.deadlines {
		if d.AppliesTo(userID) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *fakeDeadlineRepo) ListUpcoming(userID string, from, until time.Time, limit int) ([]*entity.Deadline, error) {
	all, _ := r.ListForUser(userID)
	out := []*entity.Deadline{}
	for _, d := range all {
		if !d.DueDate.Before(from) && !d.DueDate.After(until) {
			out = append(out, d)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDeadlineRepo) Update(d *entity.Deadline) error {
	if _, ok := r.deadlines[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	r.deadlines[d.ID] = &cp
	return nil
}

func (r *fakeDeadlineRepo) Delete(id string) error {
	if _, ok := r.deadlines[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.deadlines, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*entity.Notification{}}
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notifications[n.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	out := []*entity.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(id string) error {
	n, ok := r.notifications[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (r *fakeNotificationRepo) Delete(id string) error {
	if _, ok := r.notifications[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.notifications, id)
	return nil
}

type fakeReminderRepo struct {
	reminders map[string]*entity.Reminder
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: map[string]*entity.Reminder{}}
}

func (r *fakeReminderRepo) Create(rem *entity.Reminder) error {
	cp := *rem
	r.reminders[rem.ID] = &cp
	return nil
}

func (r *fakeReminderRepo) GetByID(id string) (*entity.Reminder, error) {
	rem, ok := r.reminders[id]
	if !ok {
		return nil, nil
	}
	cp := *rem
	return &cp, nil
}

func (r *fakeReminderRepo) ListAll() ([]*entity.Reminder, error) {
	out := []*entity.Reminder{}
	for _, rem := range r.reminders {
		cp := *rem
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReminderRepo) Update(rem *entity.Reminder) error {
	if _, ok := r.reminders[rem.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *rem
	r.reminders[rem.ID] = &cp
	return nil
}

func (r *fakeReminderRepo) MarkSent(id string) error {
	rem, ok := r.reminders[id]
	if !ok {
		return domain.ErrNotFound
	}
	rem.IsSent = true
	return nil
}

func (r *fakeReminderRepo) Delete(id string) error {
	if _, ok := r.reminders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.reminders, id)
	return nil
}

// fakeFileStore almacena blobs en memoria con claves etiquetadas.
type fakeFileStore struct {
	blobs map[string][]byte
	saves int
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{blobs: map[string][]byte{}}
}

func (s *fakeFileStore) Save(_ context.Context, data []byte, originalName, userID, _ string) (*storage.StoredFile, error) {
	s.saves++
	key := storage.TagKey(storage.BackendLocal, userID+"/"+originalName)
	s.blobs[key] = data
	return &storage.StoredFile{Key: key, URL: "/uploads/" + userID + "/" + originalName, Filename: originalName}, nil
}

func (s *fakeFileStore) Delete(_ context.Context, key string) error {
	delete(s.blobs, key)
	return nil
}

func (s *fakeFileStore) PublicURL(key string) string {
	return key
}
