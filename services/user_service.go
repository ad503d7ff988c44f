package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/openlot/openlot-api/models"
	"github.com/openlot/openlot-api/utils"
	"gorm.io/gorm"
)

// UserService manages user records and keeps the salesperson link in sync.
// A user whose role is "sales" always carries a salesperson_id; the sync
// happens in the same transaction as the user write, so a failed link
// aborts the whole operation.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a user service bound to a database handle
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput carries the admin add-user payload
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the PUT /users/:id payload
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CreateUser inserts a user, hashing the password and linking (or creating)
// a salesperson row when the role is "sales".
func (s *UserService) CreateUser(in CreateUserInput) (uint, error) {
	if in.Email == "" {
		return 0, fmt.Errorf("%w: email", ErrMissingField)
	}
	if in.Password == "" {
		return 0, fmt.Errorf("%w: password", ErrMissingField)
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if user.Role == models.RoleSales {
			spID, err := ensureSalesperson(tx, user.Name, user.Email)
			if err != nil {
				return err
			}
			user.SalespersonID = &spID
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// UpdateUser changes a user's profile fields and re-syncs the salesperson
// link when the role moves to "sales".
func (s *UserService) UpdateUser(userID uint, in UpdateUserInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user %d: %w", userID, err)
		}

		updates := map[string]interface{}{}
		if in.Name != "" {
			updates["name"] = in.Name
		}
		if in.Email != "" {
			updates["email"] = in.Email
		}
		if in.Password != "" {
			hash, err := utils.HashPassword(in.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			updates["password"] = hash
		}
		if in.Role != "" {
			updates["role"] = in.Role
		}

		email := user.Email
		if in.Email != "" {
			email = in.Email
		}
		name := user.Name
		if in.Name != "" {
			name = in.Name
		}

		if in.Role == models.RoleSales && user.SalespersonID == nil {
			spID, err := ensureSalesperson(tx, name, email)
			if err != nil {
				return err
			}
			updates["salesperson_id"] = spID
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&user).Updates(updates).Error
	})
}

// DeleteUser removes a user and any linked salesperson in one transaction
func (s *UserService) DeleteUser(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user %d: %w", userID, err)
		}

		if user.SalespersonID != nil {
			err := tx.Delete(&models.Salesperson{}, *user.SalespersonID).Error
			if err != nil {
				return fmt.Errorf("failed to delete linked salesperson: %w", err)
			}
		}

		return tx.Delete(&user).Error
	})
}

// ensureSalesperson finds a salesperson by email or creates one. Runs
// inside the caller's transaction so a failure aborts the user write.
func ensureSalesperson(tx *gorm.DB, name, email string) (uint, error) {
	var sp models.Salesperson
	err := tx.Where("email = ?", email).First(&sp).Error
	if err == nil {
		return sp.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to look up salesperson %q: %w", email, err)
	}

	first, last := splitName(name)
	sp = models.Salesperson{
		FirstName: first,
		LastName:  last,
		Email:     email,
		HireDate:  time.Now(),
	}
	if err := tx.Create(&sp).Error; err != nil {
		return 0, fmt.Errorf("failed to create salesperson %q: %w", email, err)
	}
	return sp.ID, nil
}

func splitName(name string) (string, string) {
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}
