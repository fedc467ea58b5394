package repositories

import (
	"strings"

	"shopkart/models"
)

type UserRepository struct {
	store *FileStore
}

func NewUserRepository(store *FileStore) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetAll() ([]models.User, error) {
	unlock := r.store.lock(usersFile)
	defer unlock()
	return r.loadUsers()
}

// FindByEmail matches case-insensitively; emails are the unique key.
func (r *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	unlock := r.store.lock(usersFile)
	defer unlock()

	users, err := r.loadUsers()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// Create assigns the next id and appends u, rejecting duplicate emails.
// The duplicate check, id assignment, and save all happen under the
// users lock so concurrent registrations cannot collide.
func (r *UserRepository) Create(u models.User) (models.User, error) {
	unlock := r.store.lock(usersFile)
	defer unlock()

	users, err := r.loadUsers()
	if err != nil {
		return models.User{}, err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.User{}, ErrEmailTaken
		}
	}

	u.ID = len(users) + 1
	u.Email = strings.ToLower(u.Email)
	users = append(users, u)

	if err := r.store.write(usersFile, users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) loadUsers() ([]models.User, error) {
	users := []models.User{}
	if err := r.store.read(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}
