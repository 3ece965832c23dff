package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/application/session/sessiontest"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

const goodPassword = "Str0ngPassw0rd!"

type fakeUsers struct {
	byID map[uuid.UUID]*entity.User
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUsers) Update(_ context.Context, u *entity.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

type plainPasswords struct{}

func (plainPasswords) HashPassword(p string) (string, error) { return "hash:" + p, nil }

func (plainPasswords) VerifyPassword(h, p string) error {
	if h != "hash:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswords) ValidatePasswordStrength(p string) error {
	if len(p) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokens struct {
	issued  int
	revoked map[string]bool
	owners  map[string]uuid.UUID
}

func (f *fakeTokens) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string, _ bool) (*adapter.TokenPair, error) {
	f.issued++
	refresh := fmt.Sprintf("refresh-%d", f.issued)
	f.owners[refresh] = userID
	return &adapter.TokenPair{AccessToken: fmt.Sprintf("access-%d", f.issued), RefreshToken: refresh}, nil
}

func (f *fakeTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used")
}

func (f *fakeTokens) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	id, ok := f.owners[token]
	if !ok {
		return nil, errors.New("bad signature")
	}
	return &adapter.TokenClaims{UserID: id}, nil
}

func (f *fakeTokens) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !f.revoked[token], nil
}

func (f *fakeTokens) InvalidateRefreshToken(_ context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeTokens) InvalidateAllUserTokens(_ context.Context, userID uuid.UUID) error {
	for token, owner := range f.owners {
		if owner == userID {
			f.revoked[token] = true
		}
	}
	return nil
}

type fakeOneTime struct {
	ttl    time.Duration
	tokens map[string]*adapter.OneTimeToken
	used   map[string]bool
}

func newFakeOneTime(ttl time.Duration) *fakeOneTime {
	return &fakeOneTime{ttl: ttl, tokens: map[string]*adapter.OneTimeToken{}, used: map[string]bool{}}
}

func (f *fakeOneTime) Issue(_ context.Context, userID uuid.UUID, email string) (*adapter.OneTimeToken, error) {
	t := &adapter.OneTimeToken{Token: uuid.NewString(), UserID: userID, Email: email, ExpiresAt: testNow.Add(f.ttl)}
	f.tokens[t.Token] = t
	return t, nil
}

func (f *fakeOneTime) Lookup(_ context.Context, token string) (*adapter.OneTimeToken, error) {
	t, ok := f.tokens[token]
	if !ok || f.used[token] {
		return nil, errors.New("unknown")
	}
	return t, nil
}

func (f *fakeOneTime) Consume(_ context.Context, token string) error {
	f.used[token] = true
	return nil
}

type recordedEmails struct {
	resets   []adapter.QueuePasswordResetInput
	verifies []adapter.QueueVerificationInput
}

func (r *recordedEmails) QueuePasswordResetEmail(_ context.Context, in adapter.QueuePasswordResetInput) error {
	r.resets = append(r.resets, in)
	return nil
}

func (r *recordedEmails) QueueVerificationEmail(_ context.Context, in adapter.QueueVerificationInput) error {
	r.verifies = append(r.verifies, in)
	return nil
}

type fixture struct {
	deps   Deps
	users  *fakeUsers
	tokens *fakeTokens
	resets *fakeOneTime
	checks *fakeOneTime
	emails *recordedEmails
}

func newFixture() *fixture {
	f := &fixture{
		users:  &fakeUsers{byID: map[uuid.UUID]*entity.User{}},
		tokens: &fakeTokens{revoked: map[string]bool{}, owners: map[string]uuid.UUID{}},
		resets: newFakeOneTime(time.Hour),
		checks: newFakeOneTime(24 * time.Hour),
		emails: &recordedEmails{},
	}
	f.deps = Deps{
		Users:        f.users,
		Passwords:    plainPasswords{},
		Tokens:       f.tokens,
		ResetTokens:  f.resets,
		VerifyTokens: f.checks,
		Emails:       f.emails,
		Clock:        sessiontest.FixedClock{Time: testNow},
		AppBaseURL:   "https://planner.test",
	}
	return f
}

func (f *fixture) register(t *testing.T, email string) *Session {
	t.Helper()
	s, err := NewRegisterUserUseCase(f.deps).Execute(context.Background(), RegisterUserInput{
		Email:         email,
		Name:          "Ana",
		Password:      goodPassword,
		TermsAccepted: true,
	})
	require.NoError(t, err)
	return s
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected an AuthError, got %v", err)
	return authErr.Code
}

func TestRegister_CreatesUnverifiedUserAndQueuesVerification(t *testing.T) {
	f := newFixture()

	s := f.register(t, "  Ana@Example.com ")

	assert.Equal(t, "ana@example.com", s.User.Email)
	assert.False(t, s.User.IsVerified())
	assert.NotEmpty(t, s.AccessToken)
	require.Len(t, f.emails.verifies, 1)
	assert.True(t, strings.HasPrefix(f.emails.verifies[0].VerifyURL, "https://planner.test/verify-email?token="))
	assert.Equal(t, "24 hours", f.emails.verifies[0].ExpiresIn)
}

func TestRegister_Rejections(t *testing.T) {
	f := newFixture()
	f.register(t, "taken@example.com")

	tests := []struct {
		name  string
		input RegisterUserInput
		want  domainerror.AuthErrorCode
	}{
		{
			name:  "terms not accepted",
			input: RegisterUserInput{Email: "a@example.com", Password: goodPassword},
			want:  domainerror.ErrCodeTermsNotAccepted,
		},
		{
			name:  "malformed email",
			input: RegisterUserInput{Email: "not-an-email", Password: goodPassword, TermsAccepted: true},
			want:  domainerror.ErrCodeInvalidEmail,
		},
		{
			name:  "weak password",
			input: RegisterUserInput{Email: "a@example.com", Password: "short", TermsAccepted: true},
			want:  domainerror.ErrCodeWeakPassword,
		},
		{
			name:  "duplicate email",
			input: RegisterUserInput{Email: "TAKEN@example.com", Password: goodPassword, TermsAccepted: true},
			want:  domainerror.ErrCodeEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegisterUserUseCase(f.deps).Execute(context.Background(), tt.input)
			assert.Equal(t, tt.want, authCode(t, err))
		})
	}
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	f := newFixture()
	f.register(t, "ana@example.com")
	login := NewLoginUserUseCase(f.deps)

	_, unknown := login.Execute(context.Background(), LoginUserInput{Email: "nobody@example.com", Password: goodPassword})
	_, wrong := login.Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: "nope-nope"})

	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, unknown))
	assert.Equal(t, unknown.Error(), wrong.Error())

	s, err := login.Execute(context.Background(), LoginUserInput{Email: "ANA@example.com", Password: goodPassword})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", s.User.Email)
}

func TestRefresh_RotatesAndRejectsReuse(t *testing.T) {
	f := newFixture()
	s := f.register(t, "ana@example.com")
	refresh := NewRefreshTokenUseCase(f.deps)

	pair, err := refresh.Execute(context.Background(), RefreshTokenInput{RefreshToken: s.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, s.RefreshToken, pair.RefreshToken)

	_, err = refresh.Execute(context.Background(), RefreshTokenInput{RefreshToken: s.RefreshToken})
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
}

func TestLogout_AllDevicesRevokesEveryToken(t *testing.T) {
	f := newFixture()
	s := f.register(t, "ana@example.com")
	second, err := NewLoginUserUseCase(f.deps).Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: goodPassword})
	require.NoError(t, err)

	require.NoError(t, NewLogoutUserUseCase(f.deps).Execute(context.Background(), LogoutUserInput{UserID: s.User.ID, AllDevices: true}))

	assert.True(t, f.tokens.revoked[s.RefreshToken])
	assert.True(t, f.tokens.revoked[second.RefreshToken])
}

func TestForgotPassword_DoesNotRevealAccounts(t *testing.T) {
	f := newFixture()
	f.register(t, "ana@example.com")
	forgot := NewForgotPasswordUseCase(f.deps)

	msg, err := forgot.Execute(context.Background(), ForgotPasswordInput{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, msg)
	assert.Empty(t, f.emails.resets)

	msg, err = forgot.Execute(context.Background(), ForgotPasswordInput{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, msg)
	require.Len(t, f.emails.resets, 1)
	assert.Equal(t, "1 hour", f.emails.resets[0].ExpiresIn)

	_, err = forgot.Execute(context.Background(), ForgotPasswordInput{Email: "broken"})
	assert.Equal(t, domainerror.ErrCodeInvalidEmail, authCode(t, err))
}

func TestResetPassword_ChangesPasswordAndRevokesSessions(t *testing.T) {
	f := newFixture()
	s := f.register(t, "ana@example.com")
	token, err := f.resets.Issue(context.Background(), s.User.ID, s.User.Email)
	require.NoError(t, err)

	reset := NewResetPasswordUseCase(f.deps)
	require.NoError(t, reset.Execute(context.Background(), ResetPasswordInput{Token: token.Token, NewPassword: "An0therGoodOne"}))

	assert.Equal(t, "hash:An0therGoodOne", f.users.byID[s.User.ID].PasswordHash)
	assert.True(t, f.tokens.revoked[s.RefreshToken])

	err = reset.Execute(context.Background(), ResetPasswordInput{Token: token.Token, NewPassword: "YetAn0therOne"})
	assert.Equal(t, domainerror.ErrCodeInvalidResetToken, authCode(t, err))
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	f := newFixture()
	s := f.register(t, "ana@example.com")
	f.resets.tokens["old"] = &adapter.OneTimeToken{Token: "old", UserID: s.User.ID, Email: s.User.Email, ExpiresAt: testNow}

	err := NewResetPasswordUseCase(f.deps).Execute(context.Background(), ResetPasswordInput{Token: "old", NewPassword: "An0therGoodOne"})

	assert.Equal(t, domainerror.ErrCodeExpiredResetToken, authCode(t, err))
}

func TestVerifyEmail_MarksVerifiedOnce(t *testing.T) {
	f := newFixture()
	s := f.register(t, "ana@example.com")
	link := f.emails.verifies[0].VerifyURL
	token := link[strings.Index(link, "token=")+len("token="):]

	user, err := NewVerifyEmailUseCase(f.deps).Execute(context.Background(), VerifyEmailInput{Token: token})
	require.NoError(t, err)
	assert.True(t, user.IsVerified())

	err = NewResendVerificationUseCase(f.deps).Execute(context.Background(), s.User.ID)
	assert.Equal(t, domainerror.ErrCodeAlreadyVerified, authCode(t, err))
}

func TestVerifyEmail_RejectsTokenForOldAddress(t *testing.T) {
	f := newFixture()
	s := f.register(t, "ana@example.com")
	token, err := f.checks.Issue(context.Background(), s.User.ID, "old@example.com")
	require.NoError(t, err)

	_, err = NewVerifyEmailUseCase(f.deps).Execute(context.Background(), VerifyEmailInput{Token: token.Token})

	assert.Equal(t, domainerror.ErrCodeInvalidVerificationToken, authCode(t, err))
}

func TestDeleteAccount_RemovesUserAndDataset(t *testing.T) {
	f := newFixture()
	s := f.register(t, "ana@example.com")
	store := sessiontest.NewMemoryStore()
	income := decimal.NewFromInt(2000)
	data := entity.NewDefaultAppData()
	data.MonthlyIncome = &income
	store.Put(s.User.ID.String(), data)
	del := NewDeleteAccountUseCase(f.deps, session.NewWorkspace(store, f.deps.Clock))

	err := del.Execute(context.Background(), DeleteAccountInput{UserID: s.User.ID, Password: goodPassword, Confirmation: "delete"})
	assert.Equal(t, domainerror.ErrCodeInvalidConfirmation, authCode(t, err))

	err = del.Execute(context.Background(), DeleteAccountInput{UserID: s.User.ID, Password: "wrong-one", Confirmation: DeleteAccountConfirmation})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	require.NoError(t, del.Execute(context.Background(), DeleteAccountInput{UserID: s.User.ID, Password: goodPassword, Confirmation: DeleteAccountConfirmation}))
	assert.Empty(t, f.users.byID)
	assert.Nil(t, store.Get(s.User.ID.String()))
	assert.True(t, f.tokens.revoked[s.RefreshToken])

	_, err = NewGetCurrentUserUseCase(f.deps).Execute(context.Background(), s.User.ID)
	assert.Equal(t, domainerror.ErrCodeUserNotFound, authCode(t, err))
}
