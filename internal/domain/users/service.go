package users

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"my-pets-api/internal/platform/logger"
	"my-pets-api/internal/ports/auth"
	"my-pets-api/internal/ports/mail"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrEmailTaken   = errors.New("email already registered")
	// ErrInvalidCredentials cubre email inexistente y contraseña incorrecta:
	// el caller recibe exactamente el mismo error en ambos casos.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const bcryptCost = 10

type Service struct {
	repo   Repository
	tokens auth.Issuer
	mailer mail.Sender
	log    logger.Logger
	now    func() time.Time

	frontendURL string
	resetTTL    time.Duration
}

type Options struct {
	Mailer      mail.Sender
	Logger      logger.Logger
	FrontendURL string
	ResetTTL    time.Duration
}

func NewService(repo Repository, tokens auth.Issuer, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	resetTTL := opts.ResetTTL
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	return &Service{
		repo:        repo,
		tokens:      tokens,
		mailer:      opts.Mailer,
		log:         log,
		now:         time.Now,
		frontendURL: strings.TrimRight(opts.FrontendURL, "/"),
		resetTTL:    resetTTL,
	}
}

type RegisterInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
}

// Register crea el usuario y devuelve un token de sesión.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Lastname = strings.TrimSpace(in.Lastname)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if len(in.Name) < 2 || len(in.Lastname) < 2 {
		return "", ErrInvalidInput
	}
	if !emailRegex.MatchString(in.Email) {
		return "", ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return "", ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Lastname:     in.Lastname,
		Role:         auth.RoleUser,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return "", err
	}

	return s.tokens.Issue(auth.Claims{UserID: u.ID, Email: u.Email, Role: u.Role})
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(auth.Claims{UserID: u.ID, Email: u.Email, Role: u.Role})
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ForgotPassword genera un token de un solo uso y manda el link por mail.
// Email desconocido => no-op sin error (no revelamos existencia de cuentas).
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}

	expires := s.now().Add(s.resetTTL)
	if err := s.repo.SetResetToken(ctx, u.ID, hashResetToken(token), expires); err != nil {
		return err
	}

	if s.mailer == nil {
		s.log.Warn("password reset requested but no mailer configured", map[string]any{"user_id": u.ID})
		return nil
	}

	link := s.frontendURL + "/reset-password?token=" + token
	err = s.mailer.Send(ctx, mail.Message{
		To:      u.Email,
		Subject: "Restablecer tu contraseña",
		HTML: fmt.Sprintf(
			`<p>Hola %s,</p><p>Para restablecer tu contraseña hacé click en el enlace (vence en %s):</p><p><a href="%s">%s</a></p>`,
			u.Name, s.resetTTL, link, link,
		),
	})
	if err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidResetToken
	}
	if len(newPassword) < 6 {
		return ErrInvalidInput
	}

	u, err := s.repo.GetByResetTokenHash(ctx, hashResetToken(token))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if u.ResetTokenExpires == nil || s.now().After(*u.ResetTokenExpires) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, u.ID, string(hash))
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// En DB solo vive el hash del token; el mail lleva el original.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
