package services

import (
	"errors"
	"fmt"

	"github.com/openlot/openlot-api/models"
	"gorm.io/gorm"
)

// ResolvedIdentity is the capability object derived from a caller-supplied
// user id. Workflows receive this value, never raw client data.
type ResolvedIdentity struct {
	UserID        uint
	Role          string
	Email         string
	SalespersonID *uint
}

// CanManageInventory reports whether the identity may create or sell cars.
func (id *ResolvedIdentity) CanManageInventory() bool {
	return id != nil && (id.Role == models.RoleAdmin || id.Role == models.RoleSales)
}

// RequireSalesperson returns the linked salesperson id or ErrNotLinked.
// A missing link is a rejectable precondition, not a server fault.
func (id *ResolvedIdentity) RequireSalesperson() (uint, error) {
	if id == nil || id.SalespersonID == nil {
		return 0, ErrNotLinked
	}
	return *id.SalespersonID, nil
}

// IdentityService resolves caller ids to roles and linked salespeople
type IdentityService struct {
	db *gorm.DB
}

// NewIdentityService creates an identity service bound to a database handle
func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{db: db}
}

// ResolveIdentity looks up the caller and builds their capability object.
// The salesperson link prefers the explicit users.salesperson_id column and
// falls back to an email match for rows created before linking existed.
func (s *IdentityService) ResolveIdentity(userID uint) (*ResolvedIdentity, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user %d: %w", userID, err)
	}

	identity := &ResolvedIdentity{
		UserID:        user.ID,
		Role:          user.Role,
		Email:         user.Email,
		SalespersonID: user.SalespersonID,
	}

	if identity.SalespersonID == nil {
		var sp models.Salesperson
		err := s.db.Where("email = ?", user.Email).First(&sp).Error
		if err == nil {
			identity.SalespersonID = &sp.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up salesperson for %q: %w", user.Email, err)
		}
	}

	return identity, nil
}
