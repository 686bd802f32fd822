package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/crm/internal/entity"
)

// requireAdmin gates the admin screens. Everything below it assumes the
// caller already passed session auth.
func requireAdmin(ctx context.Context) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	if !user.IsAdmin {
		return entity.ErrForbidden
	}

	return nil
}

func (s *Service) Users(ctx context.Context) ([]entity.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	return s.repo.Users(ctx)
}

func (s *Service) CreateUser(
	ctx context.Context,
	username, password string,
	isAdmin bool,
	roleID, profileID uuid.NullUUID,
) (entity.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return entity.User{}, err
	}

	if username == "" || password == "" {
		return entity.User{}, fmt.Errorf("%w: username and password are required", entity.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		ID:                uuid.Must(uuid.NewV4()),
		Username:          username,
		PasswordHash:      string(hash),
		IsAdmin:           isAdmin,
		RoleID:            roleID,
		SecurityProfileID: profileID,
		Language:          entity.DefaultLanguage,
		Timezone:          entity.DefaultTimezone,
		Currency:          entity.DefaultCurrency,
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user. Admins cannot delete themselves: it is too
// easy to lock the last admin out.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	if caller.ID == id {
		return fmt.Errorf("%w: cannot delete yourself", entity.ErrInvalidArgument)
	}

	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) Roles(ctx context.Context) ([]entity.Role, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	return s.repo.Roles(ctx)
}

func (s *Service) CreateRole(ctx context.Context, name string, parentID uuid.NullUUID) (entity.Role, error) {
	if err := requireAdmin(ctx); err != nil {
		return entity.Role{}, err
	}

	if name == "" {
		return entity.Role{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	if parentID.Valid {
		_, err := s.repo.Role(ctx, parentID.UUID)
		if err != nil {
			return entity.Role{}, fmt.Errorf("look up parent role: %w", err)
		}
	}

	role := entity.Role{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     name,
		ParentID: parentID,
	}

	err := s.repo.CreateRole(ctx, role)
	if err != nil {
		return entity.Role{}, fmt.Errorf("create role: %w", err)
	}

	return role, nil
}

func (s *Service) DeleteRole(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	return s.repo.DeleteRole(ctx, id)
}

func (s *Service) SecurityProfiles(ctx context.Context) ([]entity.SecurityProfile, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	return s.repo.SecurityProfiles(ctx)
}

func (s *Service) CreateSecurityProfile(ctx context.Context, name string) (entity.SecurityProfile, error) {
	if err := requireAdmin(ctx); err != nil {
		return entity.SecurityProfile{}, err
	}

	if name == "" {
		return entity.SecurityProfile{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	profile := entity.SecurityProfile{
		ID:   uuid.Must(uuid.NewV4()),
		Name: name,
	}

	err := s.repo.CreateSecurityProfile(ctx, profile)
	if err != nil {
		return entity.SecurityProfile{}, fmt.Errorf("create security profile: %w", err)
	}

	return profile, nil
}

// SecurityProfileDetail is the admin profile page payload: the profile
// plus its object and field grants.
type SecurityProfileDetail struct {
	Profile     entity.SecurityProfile
	ObjectPerms []entity.ObjectPermission
	FieldPerms  []entity.FieldPermission
}

func (s *Service) SecurityProfileDetail(ctx context.Context, id uuid.UUID) (SecurityProfileDetail, error) {
	if err := requireAdmin(ctx); err != nil {
		return SecurityProfileDetail{}, err
	}

	profile, err := s.repo.SecurityProfile(ctx, id)
	if err != nil {
		return SecurityProfileDetail{}, err
	}

	objectPerms, err := s.repo.ObjectPermissionsForProfile(ctx, id)
	if err != nil {
		return SecurityProfileDetail{}, err
	}

	fieldPerms, err := s.repo.FieldPermissionsForProfile(ctx, id)
	if err != nil {
		return SecurityProfileDetail{}, err
	}

	return SecurityProfileDetail{
		Profile:     profile,
		ObjectPerms: objectPerms,
		FieldPerms:  fieldPerms,
	}, nil
}

func (s *Service) CreateObjectPermission(ctx context.Context, p entity.ObjectPermission) (entity.ObjectPermission, error) {
	if err := requireAdmin(ctx); err != nil {
		return entity.ObjectPermission{}, err
	}

	_, err := entity.ParseModel(p.Model.String())
	if err != nil {
		return entity.ObjectPermission{}, err
	}

	p.ID = uuid.Must(uuid.NewV4())

	err = s.repo.CreateObjectPermission(ctx, p)
	if err != nil {
		return entity.ObjectPermission{}, fmt.Errorf("create object permission: %w", err)
	}

	return p, nil
}

func (s *Service) CreateFieldPermission(ctx context.Context, p entity.FieldPermission) (entity.FieldPermission, error) {
	if err := requireAdmin(ctx); err != nil {
		return entity.FieldPermission{}, err
	}

	_, err := entity.ParseModel(p.Model.String())
	if err != nil {
		return entity.FieldPermission{}, err
	}

	if p.Field == "" {
		return entity.FieldPermission{}, fmt.Errorf("%w: field is required", entity.ErrInvalidArgument)
	}

	p.ID = uuid.Must(uuid.NewV4())

	err = s.repo.CreateFieldPermission(ctx, p)
	if err != nil {
		return entity.FieldPermission{}, fmt.Errorf("create field permission: %w", err)
	}

	return p, nil
}
