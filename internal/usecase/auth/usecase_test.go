package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/testutil/storemock"

	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

// memUsers is a tiny in-memory user store keyed by email.
type memUsers struct {
	byEmail map[string]*user.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*user.User{}}
}

func (m *memUsers) repo() *storemock.UserRepo {
	return &storemock.UserRepo{
		CreateFn: func(ctx context.Context, u *user.User) error {
			m.byEmail[u.Email] = u
			return nil
		},
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if u, ok := m.byEmail[email]; ok {
				return u, nil
			}
			return nil, user.ErrNotFound
		},
		GetByUserIDFn: func(ctx context.Context, userID string) (*user.User, error) {
			for _, u := range m.byEmail {
				if u.UserID == userID {
					return u, nil
				}
			}
			return nil, user.ErrNotFound
		},
		UpdateFCMTokenFn: func(ctx context.Context, userID, token string) error {
			for _, u := range m.byEmail {
				if u.UserID == userID {
					u.FCMToken = token
					return nil
				}
			}
			return user.ErrNotFound
		},
	}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	store := newMemUsers()
	uc := NewUsecase(store.repo(), testSecret, time.Hour)
	ctx := context.Background()

	reg, err := uc.Register(ctx, RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "s3cret!",
		Role: user.RoleInvestor, UpiID: "asha@upi",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("register returned empty token")
	}
	if reg.User.Role != string(user.RoleInvestor) {
		t.Fatalf("role = %s, want investor", reg.User.Role)
	}
	// stored password must be a hash, not the plaintext
	stored := store.byEmail["asha@example.com"]
	if stored.Password == "s3cret!" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret!")) != nil {
		t.Fatal("stored hash does not verify the password")
	}

	login, err := uc.Login(ctx, LoginInput{Email: "asha@example.com", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := uc.ParseToken(login.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != reg.User.UserID || claims.Role != string(user.RoleInvestor) {
		t.Fatalf("claims = %+v, want user %s role investor", claims, reg.User.UserID)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	store := newMemUsers()
	uc := NewUsecase(store.repo(), testSecret, time.Hour)
	ctx := context.Background()

	in := RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "pw-1", Role: user.RoleHomeowner}
	if _, err := uc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := uc.Register(ctx, in)
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	uc := NewUsecase(newMemUsers().repo(), testSecret, time.Hour)
	_, err := uc.Register(context.Background(), RegisterInput{
		Name: "X", Email: "x@example.com", Password: "pw", Role: user.Role("admin"),
	})
	if err == nil {
		t.Fatal("role admin accepted")
	}
}

func TestRegister_VendorCities(t *testing.T) {
	store := newMemUsers()
	uc := NewUsecase(store.repo(), testSecret, time.Hour)

	res, err := uc.Register(context.Background(), RegisterInput{
		Name: "Vin", Email: "vin@example.com", Password: "pw",
		Role: user.RoleVendor, ServiceableCities: []string{"Pune", "Mumbai"},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(res.User.ServiceableCities) != 2 {
		t.Fatalf("serviceable cities = %v, want Pune and Mumbai", res.User.ServiceableCities)
	}
	if got := store.byEmail["vin@example.com"].Cities; len(got) != 2 || got[0].City != "Pune" {
		t.Fatalf("persisted cities = %+v", got)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newMemUsers()
	uc := NewUsecase(store.repo(), testSecret, time.Hour)
	ctx := context.Background()

	if _, err := uc.Register(ctx, RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "right", Role: user.RoleHomeowner,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.Login(ctx, LoginInput{Email: "asha@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := uc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_RefreshesFCMToken(t *testing.T) {
	store := newMemUsers()
	uc := NewUsecase(store.repo(), testSecret, time.Hour)
	ctx := context.Background()

	if _, err := uc.Register(ctx, RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "pw",
		Role: user.RoleHomeowner, FCMToken: "old-device",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := uc.Login(ctx, LoginInput{Email: "asha@example.com", Password: "pw", FCMToken: "new-device"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.User.FCMToken != "new-device" {
		t.Fatalf("fcm token = %s, want new-device", res.User.FCMToken)
	}
	if store.byEmail["asha@example.com"].FCMToken != "new-device" {
		t.Fatal("token refresh not persisted")
	}
}

func TestParseToken_RejectsTamperedToken(t *testing.T) {
	uc := NewUsecase(newMemUsers().repo(), testSecret, time.Hour)
	other := NewUsecase(newMemUsers().repo(), "another-secret", time.Hour)

	res, err := uc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "pw", Role: user.RoleHomeowner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := other.ParseToken(res.Token); err == nil {
		t.Fatal("token verified under the wrong secret")
	}
	if _, err := uc.ParseToken(res.Token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
	if _, err := uc.ParseToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestParseToken_RejectsExpired(t *testing.T) {
	store := newMemUsers()
	uc := NewUsecase(store.repo(), testSecret, -time.Minute)

	res, err := uc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "pw", Role: user.RoleHomeowner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := uc.ParseToken(res.Token); err == nil {
		t.Fatal("expired token accepted")
	}
}
