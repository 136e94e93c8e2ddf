package service

import (
	"skillpath-backend/internal/model"
	"skillpath-backend/internal/repository"
)

type UserService interface {
	GetAllUsers() ([]model.User, error)
	GetUserByID(userID string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.GetAllUsers()
}

func (s *userService) GetUserByID(userID string) (*model.User, error) {
	return s.userRepo.GetUserByID(userID)
}
