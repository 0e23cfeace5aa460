package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rik-restaurant/restaurant-svc/internal/domain"
)

// UserService keeps the registry of customer profiles. Credentials live
// outside this service.
type UserService struct {
	users     UserRepository
	carts     CartRepository
	publisher EventPublisher
}

func NewUserService(users UserRepository, carts CartRepository, publisher EventPublisher) *UserService {
	return &UserService{users: users, carts: carts, publisher: publisher}
}

func (s *UserService) Register(ctx context.Context, draft domain.User) (domain.User, error) {
	if blank(draft.Name) {
		return domain.User{}, invalid("name", "is required")
	}
	email := strings.TrimSpace(draft.Email)
	if email == "" {
		return domain.User{}, invalid("email", "is required")
	}
	if !validEmail(email) {
		return domain.User{}, invalid("email", "please enter a valid email")
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return domain.User{}, ErrEmailTaken
		}
	}

	user := domain.User{
		Name:             strings.TrimSpace(draft.Name),
		Email:            email,
		Phone:            strings.TrimSpace(draft.Phone),
		RegistrationDate: time.Now().UTC(),
	}
	if err := s.users.SaveUsers(ctx, append(users, user)); err != nil {
		return domain.User{}, fmt.Errorf("save users: %w", err)
	}

	notify(ctx, s.publisher, domain.Event{
		Type:     domain.EventUserRegistered,
		Identity: user.Email,
		EntityID: user.Email,
		Summary:  user.Name,
	})
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}

// DeleteUser removes the profile and the cart stored under the same email.
func (s *UserService) DeleteUser(ctx context.Context, email string) error {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.User, 0, len(users))
	removed := []string{email}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			if u.Email != email {
				removed = append(removed, u.Email)
			}
			continue
		}
		kept = append(kept, u)
	}
	if err := s.users.SaveUsers(ctx, kept); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	// carts are keyed by the stored email, which may differ in case
	for _, key := range removed {
		if err := s.carts.DeleteCart(ctx, key); err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
	}
	if len(kept) != len(users) {
		notify(ctx, s.publisher, domain.Event{
			Type:     domain.EventUserDeleted,
			Identity: email,
			EntityID: email,
		})
	}
	return nil
}
