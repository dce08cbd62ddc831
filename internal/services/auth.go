package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"facility-finder/internal/auth"
	"facility-finder/internal/config"
	"facility-finder/internal/logger"
	"facility-finder/internal/models"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLDAPDisabled       = errors.New("directory login is not configured")
	ErrInvalidRefresh     = errors.New("refresh token not found or revoked")
)

type AuthService struct {
	db   *bun.DB
	jwt  *auth.JWTManager
	cfg  *config.Config
	logr *logger.Logger
}

func NewAuthService(db *bun.DB, jwt *auth.JWTManager, cfg *config.Config, logr *logger.Logger) *AuthService {
	return &AuthService{db: db, jwt: jwt, cfg: cfg, logr: logr}
}

// HashPassword uses bcrypt
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type UserInfo struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Provider string   `json:"provider"`
	Roles    []string `json:"roles"`
}

func userInfo(u *models.User) *UserInfo {
	return &UserInfo{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Provider: u.Provider,
		Roles:    u.Roles,
	}
}

// LoginLocal checks an email and bcrypt password and opens a session.
func (s *AuthService) LoginLocal(ctx context.Context, email, password, deviceInfo string) (*auth.TokenPair, *UserInfo, error) {
	var u models.User
	err := s.db.NewSelect().Model(&u).Where("lower(email) = lower(?)", strings.TrimSpace(email)).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if u.PasswordHash == "" {
		return nil, nil, fmt.Errorf("account not configured for local login: %w", ErrInvalidCredentials)
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.openSession(ctx, &u, "local", deviceInfo)
	if err != nil {
		return nil, nil, err
	}
	return pair, userInfo(&u), nil
}

// LoginLDAP binds as the user against the directory, provisions a local
// account on first login and opens a session.
func (s *AuthService) LoginLDAP(ctx context.Context, username, password, deviceInfo string) (*auth.TokenPair, *UserInfo, error) {
	if !s.cfg.LDAPEnabled() {
		return nil, nil, ErrLDAPDisabled
	}
	username = ldapUsername(username)
	if username == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	ldap.DefaultTimeout = 10 * time.Second
	l, err := ldap.DialURL(s.cfg.LDAPServer)
	if err != nil {
		s.logr.Error("LDAP dial failed", zap.Error(err), zap.String("server", s.cfg.LDAPServer))
		return nil, nil, fmt.Errorf("ldap connection failed")
	}
	defer func() {
		if closeErr := l.Close(); closeErr != nil {
			s.logr.Debug("LDAP close error", zap.Error(closeErr))
		}
	}()
	l.SetTimeout(30 * time.Second)

	userDN := fmt.Sprintf(s.cfg.LDAPBindDNTemplate, ldap.EscapeDN(username))
	if err := l.Bind(userDN, password); err != nil {
		s.logr.Warn("LDAP bind failed", zap.String("username", username))
		return nil, nil, ErrInvalidCredentials
	}

	searchReq := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1,
		0,
		false,
		fmt.Sprintf("(|(uid=%s)(sAMAccountName=%s))", ldap.EscapeFilter(username), ldap.EscapeFilter(username)),
		[]string{"cn", "displayName", "mail", "memberOf"},
		nil,
	)
	sr, err := l.Search(searchReq)
	if err != nil {
		s.logr.Error("LDAP search failed", zap.Error(err), zap.String("username", username))
		return nil, nil, fmt.Errorf("user lookup failed")
	}
	if len(sr.Entries) == 0 {
		s.logr.Warn("LDAP: no entry found", zap.String("username", username))
		return nil, nil, ErrInvalidCredentials
	}

	entry := sr.Entries[0]
	mail := entry.GetAttributeValue("mail")
	if mail == "" {
		s.logr.Error("LDAP user missing email", zap.String("username", username))
		return nil, nil, fmt.Errorf("user account missing email")
	}
	name := entry.GetAttributeValue("displayName")
	if name == "" {
		name = entry.GetAttributeValue("cn")
	}
	if name == "" {
		name = username
	}
	roles := rolesFromGroups(entry.GetAttributeValues("memberOf"), s.cfg.LDAPAdminGroup)

	u, err := s.provisionLDAPUser(ctx, mail, name, roles)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.openSession(ctx, u, "ldap", deviceInfo)
	if err != nil {
		return nil, nil, err
	}

	s.logr.Info("LDAP login successful", zap.String("user_id", u.ID.String()), zap.String("username", username))
	return pair, userInfo(u), nil
}

func (s *AuthService) provisionLDAPUser(ctx context.Context, mail, name string, roles []string) (*models.User, error) {
	var u models.User
	err := s.db.NewSelect().Model(&u).Where("lower(email) = lower(?)", mail).Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		u = models.User{Email: mail, Provider: "ldap", Name: name, Roles: roles}
		if _, err := s.db.NewInsert().Model(&u).Returning("*").Exec(ctx); err != nil {
			s.logr.Error("failed to create user", zap.Error(err), zap.String("email", mail))
			return nil, fmt.Errorf("failed to create user account")
		}
		s.logr.Info("created LDAP user", zap.String("email", mail), zap.String("id", u.ID.String()))
	case err != nil:
		return nil, err
	default:
		u.Provider = "ldap"
		u.Name = name
		u.Roles = roles
		if _, err := s.db.NewUpdate().Model(&u).Column("provider", "name", "roles").WherePK().Exec(ctx); err != nil {
			return nil, err
		}
	}
	return &u, nil
}

// ldapUsername strips a trailing "@domain" so both forms of login work.
func ldapUsername(login string) string {
	login = strings.TrimSpace(login)
	if i := strings.LastIndex(login, "@"); i > 0 {
		login = login[:i]
	}
	return login
}

// rolesFromGroups grants admin when adminGroup is one of the memberOf DNs.
// An empty adminGroup makes every directory user an admin.
func rolesFromGroups(memberOf []string, adminGroup string) []string {
	if adminGroup == "" {
		return []string{models.RoleAdmin}
	}
	for _, g := range memberOf {
		if strings.EqualFold(g, adminGroup) {
			return []string{models.RoleAdmin}
		}
	}
	return []string{}
}

func (s *AuthService) openSession(ctx context.Context, u *models.User, method, deviceInfo string) (*auth.TokenPair, error) {
	now := time.Now().UTC()
	_, _ = s.db.NewUpdate().Model((*models.User)(nil)).Set("last_login_at = ?", now).Where("id = ?", u.ID).Exec(ctx)

	pair, err := s.jwt.GenerateTokenPair(auth.TokenSubject{
		UserID:       u.ID.String(),
		TokenVersion: u.TokenVersion,
		AuthMethod:   method,
		Roles:        u.Roles,
	}, s.cfg.AccessTokenTTL, s.cfg.RefreshTokenTTL)
	if err != nil {
		s.logr.Error("token generation failed", zap.Error(err), zap.String("user_id", u.ID.String()))
		return nil, fmt.Errorf("failed to generate tokens")
	}

	if err := s.storeRefreshToken(ctx, u.ID, pair, deviceInfo); err != nil {
		s.logr.Error("failed to store refresh token", zap.Error(err), zap.String("user_id", u.ID.String()))
		return nil, fmt.Errorf("failed to store session")
	}
	return pair, nil
}

// storeRefreshToken stores the refresh token hashed and keeps at most
// MaxSessions live sessions per user, evicting the oldest.
func (s *AuthService) storeRefreshToken(ctx context.Context, userID uuid.UUID, pair *auth.TokenPair, deviceInfo string) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*models.RefreshToken)(nil)).
			Where("user_id = ? AND expires_at < now()", userID).
			Exec(ctx); err != nil {
			return err
		}

		count, err := tx.NewSelect().Model((*models.RefreshToken)(nil)).
			Where("user_id = ? AND revoked = false AND expires_at > now()", userID).
			Count(ctx)
		if err != nil {
			return err
		}
		if excess := count - s.cfg.MaxSessions + 1; excess > 0 {
			if _, err := tx.NewDelete().Model((*models.RefreshToken)(nil)).
				Where("id IN (SELECT id FROM refresh_tokens WHERE user_id = ? AND revoked = false AND expires_at > now() ORDER BY created_at ASC LIMIT ?)", userID, excess).
				Exec(ctx); err != nil {
				return err
			}
		}

		rt := models.RefreshToken{
			UserID:    userID,
			JTI:       pair.RefreshJTI,
			TokenHash: auth.HashToken(pair.RefreshToken),
			CreatedAt: time.Now().UTC(),
			ExpiresAt: pair.RefreshExp,
		}
		if deviceInfo != "" {
			rt.DeviceInfo = &deviceInfo
		}
		_, err = tx.NewInsert().Model(&rt).Exec(ctx)
		return err
	})
}

// Refresh verifies a refresh token, revokes it and issues a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, deviceInfo string) (*auth.TokenPair, error) {
	claims, err := s.jwt.VerifyToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}
	if claims.Kind != auth.RefreshToken {
		return nil, fmt.Errorf("not a refresh token")
	}

	var rt models.RefreshToken
	err = s.db.NewSelect().Model(&rt).
		Where("jti = ? AND token_hash = ? AND revoked = false AND expires_at > now()", claims.ID, auth.HashToken(refreshToken)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	var u models.User
	if err := s.db.NewSelect().Model(&u).Where("id = ?", rt.UserID).Scan(ctx); err != nil {
		return nil, fmt.Errorf("user not found")
	}
	if u.TokenVersion != claims.Version {
		return nil, ErrInvalidRefresh
	}

	if _, err := s.db.NewUpdate().Model((*models.RefreshToken)(nil)).
		Set("revoked = true").
		Where("id = ?", rt.ID).
		Exec(ctx); err != nil {
		return nil, err
	}

	return s.openSession(ctx, &u, claims.AuthMethod, deviceInfo)
}

// Logout revokes the session behind a refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwt.VerifyToken(refreshToken)
	if err != nil {
		return err
	}
	_, err = s.db.NewUpdate().Model((*models.RefreshToken)(nil)).
		Set("revoked = true").
		Where("jti = ?", claims.ID).
		Exec(ctx)
	return err
}

// CheckTokenVersion reports whether tokenVersion is still current for the user.
func (s *AuthService) CheckTokenVersion(ctx context.Context, userID string, tokenVersion int) (bool, error) {
	var user models.User
	err := s.db.NewSelect().Model(&user).Column("token_version").Where("id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return user.TokenVersion == tokenVersion, nil
}
