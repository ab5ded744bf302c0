// Package auth is the identity/role collaborator: it registers accounts,
// verifies credentials and issues the opaque identity+role tokens the rest
// of the service consumes through the auth middleware.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solarshare-backend/internal/domain/user"
	"solarshare-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Usecase struct {
	users     user.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUsecase(users user.Repository, jwtSecret string, tokenTTL time.Duration) *Usecase {
	return &Usecase{users: users, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (u *Usecase) issueToken(usr *user.User) (string, error) {
	claims := Claims{
		UserID: usr.UserID,
		Role:   string(usr.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(u.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
}

// ParseToken verifies a bearer token and returns its identity claims.
func (u *Usecase) ParseToken(tokenStr string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return u.jwtSecret, nil
	})
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

type RegisterInput struct {
	Name              string
	Email             string
	Password          string
	Role              user.Role
	UpiID             string
	PanCard           string
	FCMToken          string
	ServiceableCities []string
}

type ProfileDTO struct {
	UserID            string   `json:"user_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              string   `json:"role"`
	UpiID             string   `json:"upi_id"`
	PanCard           string   `json:"pan_card"`
	FCMToken          string   `json:"fcm_token,omitempty"`
	ServiceableCities []string `json:"serviceable_cities,omitempty"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  ProfileDTO `json:"user"`
}

func toProfile(usr *user.User) ProfileDTO {
	p := ProfileDTO{
		UserID:   usr.UserID,
		Name:     usr.Name,
		Email:    usr.Email,
		Role:     string(usr.Role),
		UpiID:    usr.UpiID,
		PanCard:  usr.PanCard,
		FCMToken: usr.FCMToken,
	}
	if usr.Role == user.RoleVendor {
		p.ServiceableCities = usr.ServiceableCities()
	}
	return p
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, errors.New("name, email and password are required")
	}
	if !user.ValidRole(in.Role) {
		return nil, fmt.Errorf("invalid role %q", in.Role)
	}

	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &user.User{
		UserID:   id.NewID32(),
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Role:     in.Role,
		UpiID:    in.UpiID,
		PanCard:  in.PanCard,
		FCMToken: in.FCMToken,
	}
	if usr.Role == user.RoleVendor {
		for _, city := range in.ServiceableCities {
			usr.Cities = append(usr.Cities, user.VendorCity{UserID: usr.UserID, City: city})
		}
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: toProfile(usr)}, nil
}

type LoginInput struct {
	Email    string
	Password string
	FCMToken string
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// device tokens rotate; refresh on every login that carries one
	if in.FCMToken != "" && in.FCMToken != usr.FCMToken {
		if err := u.users.UpdateFCMToken(ctx, usr.UserID, in.FCMToken); err != nil {
			return nil, err
		}
		usr.FCMToken = in.FCMToken
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: toProfile(usr)}, nil
}

func (u *Usecase) Profile(ctx context.Context, userID string) (*ProfileDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := toProfile(usr)
	return &p, nil
}
