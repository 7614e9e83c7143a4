package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	itemsBatchSize  = 20
	searchPageLimit = 50
)

var (
	ErrUnexpectedStatus = errs.New("unexpected marketplace response status")
	ErrMalformedPayload = errs.New("malformed marketplace payload")
)

// Client talks to the Mercado Libre style REST API with an OAuth2 bearer token.
type Client struct {
	oauth   *oauth2.Config
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.MarketplaceConfig, logger *slog.Logger) *Client {
	return &Client{
		oauth:   oauthConfig(cfg),
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

func (c *Client) Exchange(ctx context.Context, code string) (shared.MarketplaceAccount, error) {
	token, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return shared.MarketplaceAccount{}, errs.Wrap(err, "exchange authorization code")
	}

	account := shared.MarketplaceAccount{Token: token.AccessToken}
	body, err := c.do(ctx, account, http.MethodGet, "/users/me", nil)
	if err != nil {
		return shared.MarketplaceAccount{}, err
	}

	me := gjson.ParseBytes(body)
	if !me.Get("id").Exists() {
		return shared.MarketplaceAccount{}, errs.Wrap(ErrMalformedPayload, "users/me without id")
	}
	account.ID = me.Get("id").String()
	account.Nickname = me.Get("nickname").String()
	account.Email = me.Get("email").String()
	return account, nil
}

func (c *Client) FetchCatalog(ctx context.Context, account shared.MarketplaceAccount) (product.Catalog, error) {
	path := fmt.Sprintf("/users/%s/items/search?limit=%d", url.PathEscape(account.ID), searchPageLimit)
	body, err := c.do(ctx, account, http.MethodGet, path, nil)
	if err != nil {
		return product.Catalog{}, err
	}

	var ids []string
	for _, r := range gjson.GetBytes(body, "results").Array() {
		ids = append(ids, r.String())
	}

	items := make([]product.Product, 0, len(ids))
	for start := 0; start < len(ids); start += itemsBatchSize {
		end := min(start+itemsBatchSize, len(ids))
		batch, err := c.fetchItems(ctx, account, ids[start:end])
		if err != nil {
			return product.Catalog{}, err
		}
		items = append(items, batch...)
	}

	catalog, err := product.NewCatalog(items...)
	if err != nil {
		return product.Catalog{}, errs.Wrap(err, "build catalog")
	}
	return catalog, nil
}

func (c *Client) fetchItems(ctx context.Context, account shared.MarketplaceAccount, ids []string) ([]product.Product, error) {
	body, err := c.do(ctx, account, http.MethodGet, "/items?ids="+url.QueryEscape(strings.Join(ids, ",")), nil)
	if err != nil {
		return nil, err
	}

	var out []product.Product
	for _, entry := range gjson.ParseBytes(body).Array() {
		if code := entry.Get("code").Int(); code != 0 && code != http.StatusOK {
			c.logger.Warn("skipping unavailable item", "item_id", entry.Get("body.id").String(), "code", code)
			continue
		}
		p, err := parseItem(entry.Get("body"))
		if err != nil {
			c.logger.Warn("skipping malformed item", "error", err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// parseItem maps an item resource. original_price is only present on discounted listings;
// the engine owns current prices, so the undiscounted price becomes originalPrice.
func parseItem(item gjson.Result) (product.Product, error) {
	priceField := item.Get("original_price")
	if !priceField.Exists() || priceField.Type == gjson.Null {
		priceField = item.Get("price")
	}
	price, err := decimal.NewFromString(priceField.String())
	if err != nil {
		return product.Product{}, errs.Wrap(ErrMalformedPayload, "item price")
	}

	status := product.StatusPaused
	if item.Get("status").String() == string(product.StatusActive) {
		status = product.StatusActive
	}

	image := item.Get("secure_thumbnail").String()
	if image == "" {
		image = item.Get("thumbnail").String()
	}

	return product.NewProduct(
		item.Get("id").String(),
		product.Attributes{
			Title:     item.Get("title").String(),
			Category:  item.Get("category_id").String(),
			Image:     image,
			Permalink: item.Get("permalink").String(),
			Stock:     int(max(item.Get("available_quantity").Int(), 0)),
		},
		price,
		status,
	)
}

func (c *Client) ToggleStatus(ctx context.Context, account shared.MarketplaceAccount, productID string, next product.Status) error {
	payload, err := json.Marshal(map[string]string{"status": next.String()})
	if err != nil {
		return errs.Wrap(err, "encode status")
	}

	body, err := c.do(ctx, account, http.MethodPut, "/items/"+url.PathEscape(productID), payload)
	if err != nil {
		return err
	}

	if got := gjson.GetBytes(body, "status").String(); got != "" && got != next.String() {
		return errs.Wrap(ErrMalformedPayload, fmt.Sprintf("status is %q after update", got))
	}
	return nil
}

func (c *Client) DemoCatalog() product.Catalog {
	return DemoCatalog()
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.http)
}

func (c *Client) do(ctx context.Context, account shared.MarketplaceAccount, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := oauth2.NewClient(c.withHTTPClient(ctx), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: account.Token}))
	httpClient.Timeout = c.http.Timeout
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, method+" "+path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.Wrap(ErrUnexpectedStatus, fmt.Sprintf("%s %s: %d %s", method, path, resp.StatusCode, gjson.GetBytes(body, "message").String()))
	}
	return body, nil
}
