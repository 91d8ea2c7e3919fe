package service

import (
	"context"
	"strings"
	"sync"

	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/sqlerr"
	"github.com/hibiken/asynq"
)

type fakeUsers struct {
	mu     sync.Mutex
	byID   map[int64]*model.User
	nextID int64
	err    error
}

func newFakeUsers(users ...*model.User) *fakeUsers {
	f := &fakeUsers{byID: map[int64]*model.User{}, nextID: 1}
	for _, u := range users {
		f.byID[u.ID] = u
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
	}
	return f
}

func (f *fakeUsers) GetUserWithEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, sqlerr.NotFound("users")
}

func (f *fakeUsers) GetUserWithID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, sqlerr.NotFound("users")
}

func (f *fakeUsers) AddUser(_ context.Context, nu model.NewUser) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u := &model.User{ID: f.nextID, Name: nu.Name, Email: strings.ToLower(nu.Email), Password: nu.Password}
	f.byID[u.ID] = u
	f.nextID++
	return u, nil
}

type fakeProperties struct {
	gotOpts  model.PropertySearchOptions
	gotLimit int
	result   []model.PropertyWithRating
	added    []model.NewProperty
	err      error
}

func (f *fakeProperties) GetAllProperties(_ context.Context, opts model.PropertySearchOptions, limit int) ([]model.PropertyWithRating, error) {
	f.gotOpts, f.gotLimit = opts, limit
	return f.result, f.err
}

func (f *fakeProperties) AddProperty(_ context.Context, p model.NewProperty) (*model.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, p)
	return &model.Property{
		ID:           int64(len(f.added)),
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		City:         p.City,
		CostPerNight: p.CostPerNightCents(),
	}, nil
}

type fakeReviews struct {
	result []model.Review
	err    error
}

func (f *fakeReviews) GetPropertyReviews(context.Context, int64, int) ([]model.Review, error) {
	return f.result, f.err
}

type fakeReservations struct {
	gotGuest int64
	gotLimit int
	result   []model.GuestReservation
	err      error
}

func (f *fakeReservations) GetAllReservations(_ context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	f.gotGuest, f.gotLimit = guestID, limit
	return f.result, f.err
}

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}
