package repositories

import (
	"time"

	"finance-server/db"
	"finance-server/entities"
)

// userColumns lists every column except password_hash, so reads on the
// request path can never pick the hash up by accident.
var userColumns = []string{"id", "first_name", "last_name", "username", "email", "created_at", "updated_at"}

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Select(userColumns).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmailWithHash(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByIDWithHash(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) Taken(email, username, excludeID string) (bool, error) {
	var count int64
	q := r.db.GetDB().Model(&entities.User{}).
		Where("LOWER(email) = LOWER(?) OR username = ?", email, username)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userPgRepository) Update(user *entities.User) error {
	user.UpdatedAt = time.Now().Format(time.RFC3339)
	// Explicit column list: the struct on this path was loaded without
	// the hash, so a blanket Save would blank it out.
	return r.db.GetDB().Model(&entities.User{ID: user.ID}).
		Select("first_name", "last_name", "username", "email", "updated_at").
		Updates(user).Error
}

func (r *userPgRepository) UpdatePassword(id, passwordHash string) error {
	return r.db.GetDB().Model(&entities.User{ID: id}).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now().Format(time.RFC3339),
		}).Error
}
