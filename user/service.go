package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Lazaro2022/LazaroSEG-sub000/auth"
	"github.com/Lazaro2022/LazaroSEG-sub000/util"
	"github.com/redis/go-redis/v9"
)

var ErrUserHasActiveDocuments = errors.New("user has active documents assigned")

type UserService struct {
	Repo  *UserRepository
	Redis *redis.Client
}

func NewUserService(repo *UserRepository, redisClient *redis.Client) *UserService {
	return &UserService{
		Repo:  repo,
		Redis: redisClient,
	}
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*User, error) {
	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	initials := req.Initials
	if initials == "" {
		initials = util.GenerateInitials(req.Name)
	}

	user := &User{
		Username: req.Username,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     role,
		Initials: initials,
	}

	log.Printf("Creating user with username: %s", req.Username)

	return s.Repo.CreateUser(user)
}

func (s *UserService) GetUsers() ([]User, error) {
	return s.Repo.GetUsers()
}

func (s *UserService) GetUserByID(id int64) (*User, error) {
	return s.Repo.GetUserByID(id)
}

func (s *UserService) UpdateUser(id int64, req *UpdateUserRequest) (*User, error) {
	current, err := s.Repo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	updated := &User{
		Password: current.Password,
		Name:     current.Name,
		Role:     current.Role,
		Initials: current.Initials,
	}

	if req.Password != "" {
		hashedPassword, err := util.HashPassword(req.Password)
		if err != nil {
			return nil, errors.New("failed to hash password")
		}
		updated.Password = hashedPassword
	}
	if req.Name != "" {
		updated.Name = req.Name
		if req.Initials == "" {
			updated.Initials = util.GenerateInitials(req.Name)
		}
	}
	if req.Role != "" {
		updated.Role = req.Role
	}
	if req.Initials != "" {
		updated.Initials = req.Initials
	}

	return s.Repo.UpdateUser(id, updated)
}

// DeleteUser refuses to remove a user who still has non-archived
// documents assigned; reassign or archive them first.
func (s *UserService) DeleteUser(id int64) error {
	count, err := s.Repo.CountActiveAssignedDocuments(id)
	if err != nil {
		return fmt.Errorf("failed to check assigned documents: %w", err)
	}
	if count > 0 {
		return ErrUserHasActiveDocuments
	}

	return s.Repo.DeleteUser(id)
}

func (s *UserService) Login(username, password string) (*LoginResponse, error) {
	log.Printf("Login attempt for username: %s", username)

	user, err := s.Repo.GetUserByUsername(username)
	if err != nil {
		log.Printf("User not found: %v", err)
		return nil, errors.New("invalid username or password")
	}

	err = util.VerifyPassword(user.Password, password)
	if err != nil {
		log.Printf("Password verification failed: %v", err)
		return nil, errors.New("invalid username or password")
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate access token")
	}

	refreshToken, err := auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.New("failed to generate refresh token")
	}

	ctx := context.Background()
	key := fmt.Sprintf("refresh_token:%d", user.ID)
	err = s.Redis.Set(ctx, key, refreshToken, 7*24*time.Hour).Err()
	if err != nil {
		return nil, errors.New("failed to store refresh token")
	}

	user.Password = ""
	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *UserService) Logout(userID int64) error {
	ctx := context.Background()
	key := fmt.Sprintf("refresh_token:%d", userID)
	return s.Redis.Del(ctx, key).Err()
}

func (s *UserService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := auth.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return "", errors.New("invalid user ID in token")
	}

	ctx := context.Background()
	key := fmt.Sprintf("refresh_token:%d", userID)
	storedToken, err := s.Redis.Get(ctx, key).Result()
	if err != nil || storedToken != refreshToken {
		return "", errors.New("refresh token not found or invalid")
	}

	user, err := s.Repo.GetUserByID(userID)
	if err != nil {
		return "", errors.New("user not found")
	}

	return auth.GenerateAccessToken(user.ID, user.Username, user.Role)
}
