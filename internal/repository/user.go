package repository

import (
	"context"
	"time"

	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserUpdate enumerates the user columns that may be changed. Nil members are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Role     *models.Role
	Password *string // already hashed
	Status   *bool
}

// columns returns only the members that were explicitly set
func (u UserUpdate) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Username != nil {
		cols["username"] = *u.Username
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Role != nil {
		cols["role"] = *u.Role
	}
	if u.Password != nil {
		cols["password"] = *u.Password
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

// IsEmpty reports whether no member of the update set is present
func (u UserUpdate) IsEmpty() bool {
	return len(u.columns()) == 0
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

// GetByID retrieves a user by ID together with its groups
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Groups", orderByName).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns a page of users matching the filter, newest first.
// Status is "active" or "inactive"; Role is an exact role name.
func (r *UserRepository) List(ctx context.Context, filter ListFilter) ([]models.User, int64, error) {
	where := combine(
		searchScope(filter.Search, "username", "email"),
		eqScope("role", filter.Role),
		statusFlagScope(filter.Status),
	)
	return listPage[models.User](ctx, r.db, filter, where, "created_at DESC", "Groups")
}

// Update writes the set members of upd and returns the refreshed user
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, upd UserUpdate) (*models.User, error) {
	cols := upd.columns()
	if len(cols) == 0 {
		return nil, apperrors.ErrNothingToUpdate
	}
	cols["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a user; join rows go with it through ON DELETE CASCADE
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

// statusFlagScope filters the boolean users.status column
func statusFlagScope(status string) scope {
	return func(db *gorm.DB) *gorm.DB {
		switch status {
		case "active":
			return db.Where("status = ?", true)
		case "inactive":
			return db.Where("status = ?", false)
		}
		return db
	}
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
