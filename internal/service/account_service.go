//go:generate mockery --name AccountService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Account, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, token model.TokenInfo) error
	GetAccount(ctx context.Context, accountID uuid.UUID) (*model.Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}

// DefaultItemGranter は登録時に初期アイテムを付与します (CatalogService が実装)
type DefaultItemGranter interface {
	GrantDefaultItems(ctx context.Context, tx *gorm.DB, accountID uuid.UUID) (int, error)
}

// TokenRevoker はログアウトしたトークンを失効させます。
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

type accountService struct {
	db           *gorm.DB
	accountRepo  repository.AccountRepository
	progressRepo repository.ProgressRepository
	granter      DefaultItemGranter
	mailer       Mailer
	revoker      TokenRevoker
	cfg          *config.Config
}

// NewAccountService は AccountService を生成します。revoker が nil の場合、ログアウトはトークンを失効させない
func NewAccountService(
	db *gorm.DB,
	accountRepo repository.AccountRepository,
	progressRepo repository.ProgressRepository,
	granter DefaultItemGranter,
	mailer Mailer,
	revoker TokenRevoker,
	cfg *config.Config,
) AccountService {
	return &accountService{
		db:           db,
		accountRepo:  accountRepo,
		progressRepo: progressRepo,
		granter:      granter,
		mailer:       mailer,
		revoker:      revoker,
		cfg:          cfg,
	}
}

// Register はアカウントを作成し、進捗カウンタの作成と初期アイテムの付与までを1トランザクションで行います。
// 登録完了メールの送信失敗は登録を取り消さない。
func (s *accountService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Account, error) {
	logger := middleware.GetLogger(ctx)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", slog.Any("error", err))
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
	}

	account := model.NewAccount(req.Name, req.Email, string(hashedPassword))

	err = runInTx(ctx, s.db, func(tx *gorm.DB) error {
		_, err := s.accountRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", slog.String("email", req.Email))
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return internalError(err)
		}

		_, err = s.accountRepo.FindByName(ctx, tx, req.Name)
		if err == nil {
			logger.Warn("Account name already exists", slog.String("name", req.Name))
			return model.NewAppError("DUPLICATE_NAME", "そのユーザ名は既に使用されています。", "name", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return internalError(err)
		}

		if err := s.accountRepo.Create(ctx, tx, account); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during account creation (race condition)", slog.Any("error", err))
				return model.NewAppError("DUPLICATE_ENTRY", "指定された名前またはEmailは既に使用されています。", "name,email", model.ErrConflict)
			}
			return internalError(err)
		}

		if _, err := s.progressRepo.GetOrCreate(ctx, tx, account.AccountID); err != nil {
			return internalError(err)
		}

		granted, err := s.granter.GrantDefaultItems(ctx, tx, account.AccountID)
		if err != nil {
			return toAppError(err)
		}
		logger.Debug("Default items granted", slog.Int("count", granted))
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	subject, body := welcomeMail(account.Name)
	if err := s.mailer.Send(ctx, account.Email, subject, body); err != nil {
		logger.Warn("Failed to send welcome email", slog.Any("error", err), slog.String("account_id", account.AccountID.String()))
	}

	logger.Info("Account registered", slog.String("account_id", account.AccountID.String()))
	return account, nil
}

// Login はパスワードを検証し、アクセストークン (JWT) を発行します
func (s *accountService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("email", req.Email))
	authFailed := model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)

	account, err := s.accountRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: account not found")
			return nil, authFailed
		}
		return nil, internalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", slog.String("account_id", account.AccountID.String()))
		return nil, authFailed
	}

	now := time.Now()
	ttl := s.cfg.JWT.AccessTokenTTL
	claims := &model.JWTCustomClaims{
		Name: account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   account.AccountID.String(),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", slog.Any("error", err))
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", slog.String("account_id", account.AccountID.String()))
	return &model.LoginResponse{AccessToken: signedToken, ExpiresIn: int64(ttl.Seconds())}, nil
}

// Logout は現在のトークンを失効リストに登録します。
func (s *accountService) Logout(ctx context.Context, token model.TokenInfo) error {
	logger := middleware.GetLogger(ctx)

	if s.revoker == nil || token.ID == "" {
		logger.Info("Logout without token revocation")
		return nil
	}
	if err := s.revoker.Revoke(ctx, token.ID, time.Unix(token.ExpiresAt, 0)); err != nil {
		logger.Error("Failed to revoke token", slog.Any("error", err))
		return model.NewAppError("LOGOUT_FAILED", "ログアウト処理に失敗しました。", "", model.ErrTransient)
	}
	logger.Info("Token revoked", slog.String("jti", token.ID))
	return nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*model.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, s.db, accountID)
	if err != nil {
		return nil, lookupError(err)
	}
	return account, nil
}

// DeleteAccount はアカウントと、それに紐づく進捗・所有アイテム・プレイ記録などをすべて削除します
func (s *accountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := runInTx(ctx, s.db, func(tx *gorm.DB) error {
		return s.accountRepo.Delete(ctx, tx, accountID)
	})
	if err != nil {
		return lookupError(err)
	}

	logger.Info("Account deleted", slog.String("account_id", accountID.String()))
	return nil
}
