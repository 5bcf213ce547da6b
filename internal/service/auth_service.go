package service

import (
	"errors"

	"go-medisales-api/internal/model"
	"go-medisales-api/internal/repository"
	"go-medisales-api/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrNameTaken          = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("user not found or incorrect password")
	ErrInvalidRole        = errors.New("role must be admin or mr")
	ErrMRNotFound         = errors.New("MR not found")
)

type AuthService interface {
	Register(name, password, role string) error
	Login(name, password, role string) (*LoginResponse, error)
	CurrentMR(subjectID uuid.UUID) (*model.MedicalRep, error)
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	SubjectID uuid.UUID `json:"id"`
}

type authService struct {
	userRepo repository.UserRepository
	mrRepo   repository.MRRepository
}

func NewAuthService(userRepo repository.UserRepository, mrRepo repository.MRRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		mrRepo:   mrRepo,
	}
}

func (s *authService) Register(name, password, role string) error {
	if role != model.RoleAdmin && role != model.RoleMR {
		return ErrInvalidRole
	}

	// Only one admin account may ever exist
	if role == model.RoleAdmin {
		exists, err := s.userRepo.AdminExists()
		if err != nil {
			return err
		}
		if exists {
			return ErrAdminExists
		}
	}

	if _, err := s.userRepo.FindByName(name); err == nil {
		return ErrNameTaken
	}

	user := &model.User{Name: name, Role: role}
	if err := user.SetPassword(password); err != nil {
		return err
	}

	return s.userRepo.Create(user)
}

func (s *authService) Login(name, password, role string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByNameAndRole(name, role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// An MR's session subject is the MR row, not the user row. The claims
	// carry the kind alongside the id so downstream handlers never guess.
	subjectID := user.ID
	subjectKind := jwt.SubjectUser
	if role == model.RoleMR {
		mr, err := s.mrRepo.FindByName(name)
		if err != nil {
			return nil, ErrMRNotFound
		}
		subjectID = mr.ID
		subjectKind = jwt.SubjectMR
	}

	token, err := jwt.GenerateToken(subjectID, subjectKind, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:     token,
		Role:      user.Role,
		SubjectID: subjectID,
	}, nil
}

func (s *authService) CurrentMR(subjectID uuid.UUID) (*model.MedicalRep, error) {
	mr, err := s.mrRepo.FindByID(subjectID)
	if err != nil {
		return nil, ErrMRNotFound
	}
	return mr, nil
}
