package bookmyforex

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
	"time"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/ports/providers"
)

const (
	DefaultBaseURL = "https://www.bookmyforex.com"

	rateCardPath   = "/api/secure/v1/get-full-rate-card"
	betterRatePath = "/api/secure/better-rate/v1/save-better-rate"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/145.0.0.0 Safari/537.36"

	// Guest contact sent with every better-rate request; the widget never forwards user details.
	guestEmail = "guest@bookmyforex.com"
	guestPhone = "9999999999"
	guestName  = "Guest User"
)

// Client talks to the BookMyForex public endpoints used by the website.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a Client. Options are applied in order.
func NewClient(opts ...func(*Client)) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithBaseURL(baseURL string) func(*Client) {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.BaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// Ensure Client implements the provider port
var _ providers.ForexProvider = (*Client)(nil)

type rateCardEnvelope struct {
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Result  json.RawMessage `json:"result"`
}

type copItem struct {
	CurrencyCode  string `json:"currency_code"`
	ProductCode   string `json:"product_code"`
	ForeignAmount string `json:"foreign_amount"`
	OrderType     string `json:"order_type"`
}

type betterRatePayload struct {
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Name           string    `json:"name"`
	Rate           string    `json:"rate"`
	DeviceTypeCode string    `json:"device_type_code"`
	OrderTypeCode  string    `json:"order_type_code"`
	CityCode       string    `json:"city_code"`
	LeadSourceCode string    `json:"lead_source_code"`
	CopList        []copItem `json:"cop_list"`
}

func (c *Client) setBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Accept-Language", "en-GB,en-US;q=0.9,en;q=0.8")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", DefaultBaseURL+"/")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
}

// FetchRateCard returns the full rate card for a provider city code.
// A non-array result is an empty card; a non-2xx status is an upstream error.
func (c *Client) FetchRateCard(ctx context.Context, providerCityCode string) ([]providers.RateRecord, error) {
	endpoint := c.BaseURL + rateCardPath + "?city_code=" + url.QueryEscape(providerCityCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate card request: %w", err)
	}
	c.setBrowserHeaders(req)
	req.Header.Set("Priority", "u=1, i")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("rate card request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, apperrors.NewUpstreamError("rate card non-2xx: %d: %s", resp.StatusCode, string(body))
	}

	var env rateCardEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode rate card: %v", err)
	}

	trimmed := bytes.TrimSpace(env.Result)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		slog.Default().Warn("Rate card result is not a list", slog.String("city_code", providerCityCode), slog.String("type", env.Type))
		return []providers.RateRecord{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode rate card records: %v", err)
	}

	records := make([]providers.RateRecord, 0, len(items))
	for i, item := range items {
		var rec providers.RateRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			slog.Default().Warn("Skipping malformed rate card record",
				slog.String("city_code", providerCityCode), slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveBetterRate posts a guest better-rate request and returns the raw answer.
// The status code is reported but does not make the call fail.
func (c *Client) SaveBetterRate(ctx context.Context, in providers.BetterRateRequest) (*providers.BetterRateReply, error) {
	payload := betterRatePayload{
		Email:          guestEmail,
		Phone:          guestPhone,
		Name:           guestName,
		Rate:           in.Rate.String(),
		DeviceTypeCode: "web",
		OrderTypeCode:  "B",
		CityCode:       in.CityCode,
		LeadSourceCode: "betterRate",
		CopList:        make([]copItem, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		payload.CopList = append(payload.CopList, copItem{
			CurrencyCode:  item.CurrencyCode,
			ProductCode:   item.ProductCode,
			ForeignAmount: item.ForeignAmount.String(),
			OrderType:     "B",
		})
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode better rate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+betterRatePath, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to build better rate request: %w", err)
	}
	c.setBrowserHeaders(req)
	req.Header.Set("Origin", DefaultBaseURL)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("better rate request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to read better rate response: %v", err)
	}

	return &providers.BetterRateReply{
		StatusCode:    resp.StatusCode,
		ResponseToken: resp.Header.Get("response_token"),
		Body:          body,
	}, nil
}
