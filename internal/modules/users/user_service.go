package users

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"commutesync/internal/models"
	emailSvc "commutesync/pkg/email"
	"commutesync/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	activationTokenTTL = 30 * time.Minute
	resetTokenTTL      = 15 * time.Minute
	accessTokenTTL     = 30 * 24 * time.Hour
)

// ServiceInterface defines methods for user business logic.
type ServiceInterface interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	ActivateAndLogin(ctx context.Context, token string) (*models.AuthResponse, error)
	ResendActivationEmail(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

type Service struct {
	userRepo           RepositoryInterface
	emailer            emailSvc.ServiceInterface
	templateManager    *emailSvc.TemplateManager
	jwtSecret          string
	clientOrigin       string
	enableRegistration bool
}

func NewService(
	userRepo RepositoryInterface,
	emailer emailSvc.ServiceInterface,
	tm *emailSvc.TemplateManager,
	jwtSecret string,
	clientOrigin string,
	enableRegistration bool,
) ServiceInterface {
	return &Service{
		userRepo:           userRepo,
		emailer:            emailer,
		templateManager:    tm,
		jwtSecret:          jwtSecret,
		clientOrigin:       clientOrigin,
		enableRegistration: enableRegistration,
	}
}

// Signup registers a new inactive account and mails an activation link. It
// is gated by the registration toggle so a personal deployment can stay
// closed after its owner signs up.
func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if !s.enableRegistration {
		return nil, models.ErrRegistrationDisabled
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("service.Signup.FindByEmail: %w", err)
	}
	if err == nil {
		return nil, models.ErrConflict
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.Signup.HashPassword: %w", err)
	}

	activationToken, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("service.Signup.GenerateToken: %w", err)
	}
	expiresAt := time.Now().Add(activationTokenTTL)

	newUser := &models.User{
		Nickname: req.Nickname,
		Email:    req.Email,
	}
	createdUser, err := s.userRepo.CreateInactiveUser(ctx, newUser, string(hashedPassword), activationToken, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("service.Signup.CreateUser: %w", err)
	}

	activationURL := fmt.Sprintf("%s/activate?token=%s", s.clientOrigin, activationToken)
	s.sendAsync(createdUser.Email, "Activate Your CommuteSync Account",
		fmt.Sprintf("Thanks for signing up! Click this link within 30 minutes to activate your account: %s", activationURL),
		func() (string, error) {
			return s.templateManager.GenerateActivateAccountEmailHTML(emailSvc.TemplateData{
				Name: createdUser.Nickname,
				Link: activationURL,
			})
		})

	return createdUser, nil
}

func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.Login.FindByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, models.ErrAccountNotActive
	}

	return s.generateAuthResponse(user)
}

// ActivateAndLogin redeems an activation token and logs the user straight in.
func (s *Service) ActivateAndLogin(ctx context.Context, token string) (*models.AuthResponse, error) {
	activatedUser, err := s.userRepo.ActivateUser(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrInvalidToken) {
			return nil, models.ErrInvalidToken
		}
		return nil, fmt.Errorf("service.ActivateAndLogin: %w", err)
	}

	return s.generateAuthResponse(activatedUser)
}

// ResendActivationEmail issues a fresh token for a still-inactive account.
// Unknown and already-active emails return nil to avoid leaking which
// addresses are registered.
func (s *Service) ResendActivationEmail(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("service.ResendActivationEmail.FindByEmail: %w", err)
	}
	if user.IsActive {
		return nil
	}

	activationToken, err := utils.GenerateSecureToken(32)
	if err != nil {
		return fmt.Errorf("service.ResendActivationEmail.GenerateToken: %w", err)
	}
	expiresAt := time.Now().Add(activationTokenTTL)

	if err := s.userRepo.UpdateActivationToken(ctx, user.ID, activationToken, expiresAt); err != nil {
		return fmt.Errorf("service.ResendActivationEmail.UpdateToken: %w", err)
	}

	activationURL := fmt.Sprintf("%s/activate?token=%s", s.clientOrigin, activationToken)
	s.sendAsync(user.Email, "Activate Your CommuteSync Account (New Link)",
		fmt.Sprintf("Click this link within 30 minutes to activate your account: %s", activationURL),
		func() (string, error) {
			return s.templateManager.GenerateActivateAccountEmailHTML(emailSvc.TemplateData{
				Name: user.Nickname,
				Link: activationURL,
			})
		})

	return nil
}

func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Return nil for unknown emails to prevent enumeration.
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("service.RequestPasswordReset.FindByEmail: %w", err)
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return fmt.Errorf("service.RequestPasswordReset.GenerateToken: %w", err)
	}
	expiresAt := time.Now().Add(resetTokenTTL)

	if err := s.userRepo.SetPasswordResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return fmt.Errorf("service.RequestPasswordReset.SetToken: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.clientOrigin, token)
	s.sendAsync(user.Email, "Reset Your CommuteSync Password",
		fmt.Sprintf("Click this link within 15 minutes to reset your password: %s", resetURL),
		func() (string, error) {
			return s.templateManager.GenerateResetPasswordEmailHTML(emailSvc.TemplateData{
				Name: user.Nickname,
				Link: resetURL,
			})
		})

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByPasswordResetToken(ctx, token)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.ResetPassword.HashPassword: %w", err)
	}

	if err := s.userRepo.UpdatePasswordAndClearResetToken(ctx, user.ID, string(hashedPassword)); err != nil {
		return nil, fmt.Errorf("service.ResetPassword.UpdatePassword: %w", err)
	}

	return s.generateAuthResponse(user)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.GetProfile: %w", err)
	}
	return user, nil
}

func (s *Service) generateAuthResponse(user *models.User) (*models.AuthResponse, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenSignedString, err := accessToken.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	user.PasswordHash = ""

	return &models.AuthResponse{
		AccessToken: tokenSignedString,
		User:        user,
	}, nil
}

// sendAsync renders and sends an email off the request path. A render or
// send failure is logged and swallowed so mail problems never fail auth
// flows.
func (s *Service) sendAsync(to, subject, plainText string, renderHTML func() (string, error)) {
	htmlContent, err := renderHTML()
	if err != nil {
		log.Printf("users: failed to render email for %s: %v", to, err)
		return
	}

	go func() {
		if err := s.emailer.SendEmail(context.Background(), to, subject, plainText, htmlContent); err != nil {
			log.Printf("users: failed to send email to %s: %v", to, err)
		}
	}()
}
