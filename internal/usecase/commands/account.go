package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"flashsale-scheduler/internal/domain/notification"
	"flashsale-scheduler/internal/domain/schedule"
	reqdto "flashsale-scheduler/internal/handler/dto/request"
	"flashsale-scheduler/internal/pkg/clock"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/pkg/jwt"
	"flashsale-scheduler/internal/pkg/password"
	"flashsale-scheduler/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type Session struct {
	AccessToken string
	UserName    string
	Marketplace bool
}

type AccountCommands interface {
	LocalLogin(ctx context.Context, req reqdto.LoginRequest) (*Session, error)
	MarketplaceAuthURL(state string) string
	ConnectMarketplace(ctx context.Context, code string) (*Session, error)
	Logout(ctx context.Context) error
	CurrentSession() (userName string, marketplace bool)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type accountUseCaseImpl struct {
	reconciler Reconciler
	source     shared.CatalogSource
	accounts   *shared.AccountState
	notifier   shared.Notifier
	passwords  *password.Checker
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAccountUseCase(
	reconciler Reconciler,
	source shared.CatalogSource,
	accounts *shared.AccountState,
	notifier shared.Notifier,
	passwords *password.Checker,
	jwtService *jwt.Service,
	clock clock.Clock,
	logger *slog.Logger,
) AccountCommands {
	return &accountUseCaseImpl{
		reconciler: reconciler,
		source:     source,
		accounts:   accounts,
		notifier:   notifier,
		passwords:  passwords,
		jwtService: jwtService,
		clock:      clock,
		logger:     logger,
	}
}

func (a *accountUseCaseImpl) LocalLogin(ctx context.Context, req reqdto.LoginRequest) (*Session, error) {
	if err := a.passwords.Check(req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	name, _, _ := strings.Cut(strings.TrimSpace(req.Email), "@")
	if name == "" {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(name, false)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	a.accounts.SignIn(name)

	a.notifier.Publish(ctx, notification.Account("Welcome", fmt.Sprintf("Signed in as %s.", name), a.clock.Now()))
	return &Session{AccessToken: token, UserName: name}, nil
}

func (a *accountUseCaseImpl) MarketplaceAuthURL(state string) string {
	return a.source.AuthURL(state)
}

// ConnectMarketplace links the seller account and replaces the catalog with the seller's items.
// Existing schedules target the previous catalog and are cleared.
func (a *accountUseCaseImpl) ConnectMarketplace(ctx context.Context, code string) (*Session, error) {
	account, err := a.source.Exchange(ctx, code)
	if err != nil {
		return nil, a.marketplaceFailure(ctx, "account link failed", err)
	}

	catalog, err := a.source.FetchCatalog(ctx, account)
	if err != nil {
		return nil, a.marketplaceFailure(ctx, "catalog fetch failed", err)
	}

	_, err = a.reconciler.Mutate(ctx, func(shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
		return shared.Snapshot{Schedules: schedule.NewSet(), Catalog: catalog}, nil, nil
	})
	if err != nil {
		return nil, err
	}
	a.accounts.Link(account)

	token, err := a.jwtService.GenerateToken(a.accounts.UserName(), true)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.logger.Info("marketplace account linked", "account_id", account.ID, "products", catalog.Len())
	a.notifier.Publish(ctx, notification.Account(
		"Marketplace linked",
		fmt.Sprintf("Imported %d products from your account.", catalog.Len()),
		a.clock.Now(),
	))

	return &Session{AccessToken: token, UserName: a.accounts.UserName(), Marketplace: true}, nil
}

// Logout drops the session and restores the demo catalog. Schedules are kept and may dangle.
func (a *accountUseCaseImpl) Logout(ctx context.Context) error {
	a.accounts.SignOut()

	demo := a.source.DemoCatalog()
	_, err := a.reconciler.Mutate(ctx, func(current shared.Snapshot) (shared.Snapshot, []notification.Event, error) {
		return shared.Snapshot{Schedules: current.Schedules, Catalog: demo}, nil, nil
	})
	return err
}

func (a *accountUseCaseImpl) CurrentSession() (string, bool) {
	_, linked := a.accounts.Marketplace()
	return a.accounts.UserName(), linked
}

func (a *accountUseCaseImpl) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return a.jwtService.ValidateToken(tokenString)
}

func (a *accountUseCaseImpl) marketplaceFailure(ctx context.Context, msg string, err error) error {
	a.logger.Warn(msg, "error", err)
	a.notifier.Publish(ctx, notification.Warning(
		"Marketplace unavailable",
		"We could not reach your marketplace account. Please try again.",
		a.clock.Now(),
	))
	return errs.Mark(errs.Wrap(err, msg), errs.ErrMarketplaceFailure)
}
