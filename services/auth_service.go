package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
	"github.com/olvera93/FoodApp/utils"
)

type AuthService struct {
	UserRepo *repository.UserRepository

	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginOut struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	exists, err := s.UserRepo.EmailExists(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email already registered")
	}

	role, err := s.UserRepo.GetRoleByName(entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		Password: string(hash),
		Roles:    []entity.Role{*role},
	}
	if err := s.UserRepo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(in *LoginIn) (*LoginOut, error) {
	user, err := s.UserRepo.GetByEmail(in.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return nil, apperr.NotFound("invalid email or password")
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	token, err := utils.GenerateToken(user.ID, roles, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginOut{Token: token, User: user}, nil
}
