package admin

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios desde el panel de administración.
type UserUseCase struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
}

// NewUserUseCase construye el caso de uso de usuarios admin.
func NewUserUseCase(userRepo repository.UserRepository, orderRepo repository.OrderRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, orderRepo: orderRepo}
}

// List devuelve los usuarios paginados.
func (uc *UserUseCase) List(page, limit int) ([]dto.UserResponse, *dto.PageMeta, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	users, total, err := uc.userRepo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	meta := dto.NewPageMeta(total, page, limit)
	return out, &meta, nil
}

// Get devuelve un usuario por ID.
func (uc *UserUseCase) Get(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update modifica nombre, email, teléfono, dirección y rol de un usuario.
func (uc *UserUseCase) Update(userID string, in dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	if in.Role != entity.RoleCustomer && in.Role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	user.Address = in.Address
	user.Role = in.Role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Los admins no se pueden borrar por esta vía.
// Si el usuario tiene pedidos se desactiva en vez de borrarse: los pedidos
// históricos conservan su dueño. Devuelve true si se desactivó (soft).
func (uc *UserUseCase) Delete(userID string) (bool, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, domain.ErrUserNotFound
	}
	if user.Role == entity.RoleAdmin {
		return false, domain.ErrForbidden
	}
	orderCount, err := uc.orderRepo.CountByUser(userID)
	if err != nil {
		return false, err
	}
	if orderCount > 0 {
		return true, uc.userRepo.Deactivate(userID)
	}
	return false, uc.userRepo.Delete(userID)
}
