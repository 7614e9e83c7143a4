package marketplace

import (
	"context"
	"log/slog"
	"strings"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/usecase/shared"

	"golang.org/x/oauth2"
)

const demoNickname = "MercadoLibre_Seller"

// DemoSource simulates the marketplace: any authorization code links a demo account
// and status changes always succeed.
type DemoSource struct {
	oauth  *oauth2.Config
	logger *slog.Logger
}

func NewDemoSource(cfg config.MarketplaceConfig, logger *slog.Logger) *DemoSource {
	return &DemoSource{oauth: oauthConfig(cfg), logger: logger}
}

func (d *DemoSource) AuthURL(state string) string {
	return d.oauth.AuthCodeURL(state)
}

func (d *DemoSource) Exchange(ctx context.Context, code string) (shared.MarketplaceAccount, error) {
	if err := ctx.Err(); err != nil {
		return shared.MarketplaceAccount{}, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		code = "demo"
	}
	return shared.MarketplaceAccount{
		ID:       "demo",
		Nickname: demoNickname,
		Token:    "demo-token-" + code,
	}, nil
}

func (d *DemoSource) FetchCatalog(ctx context.Context, _ shared.MarketplaceAccount) (product.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return product.Catalog{}, err
	}
	return LinkedDemoCatalog(), nil
}

func (d *DemoSource) ToggleStatus(ctx context.Context, _ shared.MarketplaceAccount, productID string, next product.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.logger.Debug("demo status change", "product_id", productID, "status", next)
	return nil
}

func (d *DemoSource) DemoCatalog() product.Catalog {
	return DemoCatalog()
}

func oauthConfig(cfg config.MarketplaceConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.AuthURL,
			TokenURL:  cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
