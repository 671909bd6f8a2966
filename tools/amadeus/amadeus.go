package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	sdk "github.com/asadbekGo/sky-price-bot"
)

var (
	ErrAuth           = errors.New("amadeus: credential exchange failed")
	ErrUpstream       = errors.New("amadeus: flight search failed")
	ErrOfferExpired   = errors.New("amadeus: offer expired or unavailable")
	ErrMalformedOffer = errors.New("amadeus: offer missing mandatory fields")
)

const (
	tokenTimeout  = 25 * time.Second
	searchTimeout = 35 * time.Second
	priceTimeout  = 40 * time.Second

	// refresh when less than this much validity remains
	tokenLeeway = 30 * time.Second

	// upstream omits expires_in on some sandbox environments
	defaultTokenLifetime = 1800
)

type accessToken struct {
	value     string
	expiresAt time.Time
}

// Client talks to the Amadeus self-service API. One instance per process;
// the token slot is not locked because requests are handled one at a time.
type Client struct {
	cfg    *sdk.Config
	logger *sdk.Logger
	token  accessToken
}

func NewClient(cfg *sdk.Config, logger *sdk.Logger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

// AccessToken returns the cached bearer token, exchanging credentials only
// when fewer than 30 seconds of validity remain.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.token.value != "" && time.Now().Before(c.token.expiresAt.Add(-tokenLeeway)) {
		return c.token.value, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	tokenCtx, cancel := context.WithTimeout(ctx, tokenTimeout)
	defer cancel()

	body, err := sdk.DoFormRequest(tokenCtx, c.cfg.BaseURL+"/v1/security/oauth2/token", form, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrAuth, c.logger.ErrorLog.Sprint(err.Error()))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return "", fmt.Errorf("%w: %s", ErrAuth, c.logger.ErrorLog.Sprint(err.Error()+", body: "+string(body)))
	}
	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("%w: %s", ErrAuth, c.logger.ErrorLog.Sprint("no access_token in response, body: "+string(body)))
	}
	if tokenResponse.ExpiresIn <= 0 {
		tokenResponse.ExpiresIn = defaultTokenLifetime
	}

	c.token = accessToken{
		value:     tokenResponse.AccessToken,
		expiresAt: time.Now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second),
	}

	return c.token.value, nil
}

// Search fetches raw candidate offers. A response without a data array is
// zero results, not an error.
func (c *Client) Search(ctx context.Context, criteria SearchCriteria) ([]RawOffer, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", criteria.Origin)
	params.Set("destinationLocationCode", criteria.Destination)
	params.Set("departureDate", criteria.Date)
	params.Set("adults", strconv.Itoa(criteria.Adults))
	params.Set("currencyCode", criteria.Currency)
	params.Set("max", strconv.Itoa(criteria.MaxResults))

	var headers = map[string]interface{}{"Authorization": "Bearer " + token}

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	body, err := sdk.DoRequest(searchCtx, c.cfg.BaseURL+"/v2/shopping/flight-offers?"+params.Encode(), http.MethodGet, nil, headers)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, c.logger.ErrorLog.Sprint(err.Error()))
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, c.logger.ErrorLog.Sprint(err.Error()+", body: "+string(body)))
	}

	offers := make([]RawOffer, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		offers = append(offers, RawOffer(item))
	}
	if criteria.MaxResults > 0 && len(offers) > criteria.MaxResults {
		offers = offers[:criteria.MaxResults]
	}

	return offers, nil
}

// Price re-confirms one search candidate with the provider. Search results
// are previews that can go stale, only a repriced offer may be shown.
func (c *Client) Price(ctx context.Context, offer RawOffer) (PricedOffer, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var payload = map[string]interface{}{
		"data": map[string]interface{}{
			"type":         "flight-offers-pricing",
			"flightOffers": []RawOffer{offer},
		},
	}

	var headers = map[string]interface{}{"Authorization": "Bearer " + token}

	priceCtx, cancel := context.WithTimeout(ctx, priceTimeout)
	defer cancel()

	body, err := sdk.DoRequest(priceCtx, c.cfg.BaseURL+"/v1/shopping/flight-offers/pricing", http.MethodPost, payload, headers)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOfferExpired, c.logger.ErrorLog.Sprint(err.Error()))
	}

	var envelope struct {
		Data struct {
			FlightOffers []json.RawMessage `json:"flightOffers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOfferExpired, c.logger.ErrorLog.Sprint(err.Error()+", body: "+string(body)))
	}
	if len(envelope.Data.FlightOffers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrOfferExpired, c.logger.ErrorLog.Sprint("pricing response has no flightOffers, body: "+string(body)))
	}

	return PricedOffer(envelope.Data.FlightOffers[0]), nil
}

// SearchConfirmed runs the full pipeline: search, reprice each candidate,
// normalize, sort by price. A candidate that fails repricing or normalization
// is dropped and the rest continue.
func (c *Client) SearchConfirmed(ctx context.Context, criteria SearchCriteria) ([]Offer, error) {
	raws, err := c.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	offers, err := c.confirm(ctx, raws, criteria.Currency)
	if err != nil {
		return nil, err
	}

	return SortByPrice(offers, 0), nil
}

// SearchGrouped is SearchConfirmed with the grouped-by-flight view, filtered
// to a single carrier when carrier is non-empty.
func (c *Client) SearchGrouped(ctx context.Context, criteria SearchCriteria, carrier string) ([]FlightGroup, error) {
	raws, err := c.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	offers, err := c.confirm(ctx, raws, criteria.Currency)
	if err != nil {
		return nil, err
	}

	return GroupByFlight(offers, carrier), nil
}

func (c *Client) confirm(ctx context.Context, raws []RawOffer, currency string) ([]Offer, error) {
	var (
		offers  = make([]Offer, 0, len(raws))
		dropped int
	)
	for _, raw := range raws {
		priced, err := c.Price(ctx, raw)
		if err != nil {
			if errors.Is(err, ErrAuth) {
				return nil, err
			}
			dropped++
			continue
		}

		offer, err := Normalize(priced, currency)
		if err != nil {
			dropped++
			continue
		}
		offers = append(offers, offer)
	}

	if dropped > 0 {
		c.logger.InfoLog.Sprintf("dropped %d of %d candidates", dropped, len(raws))
	}

	return offers, nil
}
