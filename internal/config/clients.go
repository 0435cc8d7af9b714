package config

import (
	"errors"
	"slices"
)

var ErrUnknownClient = errors.New("unknown client")

const DefaultClient = "default"

type Feature string

const (
	FeatureTrading       Feature = "trading"
	FeaturePortfolio     Feature = "portfolio"
	FeatureNews          Feature = "news"
	FeatureAnalytics     Feature = "analytics"
	FeatureNotifications Feature = "notifications"
)

var AllFeatures = []Feature{FeatureTrading, FeaturePortfolio, FeatureNews, FeatureAnalytics, FeatureNotifications}

type Features struct {
	Trading       bool `json:"trading"`
	Portfolio     bool `json:"portfolio"`
	News          bool `json:"news"`
	Analytics     bool `json:"analytics"`
	Notifications bool `json:"notifications"`
}

type APIEndpoints struct {
	BaseURL    string `json:"base_url"`
	TradingURL string `json:"trading_url"`
	NewsURL    string `json:"news_url"`
}

type Trading struct {
	SupportedAssets         []string `json:"supported_assets"`
	MinTradeAmount          float64  `json:"min_trade_amount"`
	MaxTradeAmount          float64  `json:"max_trade_amount"`
	SupportedFiatCurrencies []string `json:"supported_fiat_currencies"`
}

type ThemeHints struct {
	DarkMode     bool `json:"dark_mode"`
	BorderRadius int  `json:"border_radius"`
	Spacing      int  `json:"spacing"`
}

type Legal struct {
	TermsURL     string `json:"terms_url"`
	PrivacyURL   string `json:"privacy_url"`
	SupportEmail string `json:"support_email"`
	CompanyName  string `json:"company_name"`
}

type AppStore struct {
	BundleID    string `json:"bundle_id"`
	Version     string `json:"version"`
	BuildNumber int    `json:"build_number"`
}

// Client is one white-label deployment of the shell.
type Client struct {
	AppName        string       `json:"app_name"`
	LogoURL        string       `json:"logo_url,omitempty"`
	PrimaryColor   string       `json:"primary_color"`
	SecondaryColor string       `json:"secondary_color"`
	AccentColor    string       `json:"accent_color"`
	Features       Features     `json:"features"`
	APIEndpoints   APIEndpoints `json:"api_endpoints"`
	Trading        Trading      `json:"trading"`
	Theme          ThemeHints   `json:"theme"`
	Legal          Legal        `json:"legal"`
	AppStore       AppStore     `json:"app_store"`
}

func (c Client) IsFeatureEnabled(f Feature) bool {
	switch f {
	case FeatureTrading:
		return c.Features.Trading
	case FeaturePortfolio:
		return c.Features.Portfolio
	case FeatureNews:
		return c.Features.News
	case FeatureAnalytics:
		return c.Features.Analytics
	case FeatureNotifications:
		return c.Features.Notifications
	}
	return false
}

// ValidAmount reports whether amount is within the client's trade limits.
func (c Client) ValidAmount(amount float64) bool {
	return amount >= c.Trading.MinTradeAmount && amount <= c.Trading.MaxTradeAmount
}

func (c Client) SupportsAsset(symbol string) bool {
	return slices.Contains(c.Trading.SupportedAssets, symbol)
}

func defaultClient() Client {
	return Client{
		AppName:        "StickerSmash",
		LogoURL:        "/assets/images/icon.png",
		PrimaryColor:   "#007AFF",
		SecondaryColor: "#34C759",
		AccentColor:    "#FF3B30",
		Features: Features{
			Trading:       true,
			Portfolio:     true,
			News:          true,
			Analytics:     true,
			Notifications: true,
		},
		APIEndpoints: APIEndpoints{
			BaseURL:    "https://api.default.com",
			TradingURL: "https://trading.default.com",
			NewsURL:    "https://news.default.com",
		},
		Trading: Trading{
			SupportedAssets:         []string{"BTC", "ETH", "ADA", "DOT"},
			MinTradeAmount:          10,
			MaxTradeAmount:          100000,
			SupportedFiatCurrencies: []string{"USD", "EUR", "GBP"},
		},
		Theme: ThemeHints{DarkMode: true, BorderRadius: 12, Spacing: 16},
		Legal: Legal{
			TermsURL:     "https://default.com/terms",
			PrivacyURL:   "https://default.com/privacy",
			SupportEmail: "support@default.com",
			CompanyName:  "Default Company Inc.",
		},
		AppStore: AppStore{BundleID: "com.default.stickersmash", Version: "1.0.0", BuildNumber: 1},
	}
}

// BuiltinClients returns a fresh copy of the shipped client table.
func BuiltinClients() map[string]Client {
	a := defaultClient()
	a.AppName = "CryptoTrader Pro"
	a.LogoURL = "/assets/images/client-a-logo.png"
	a.PrimaryColor, a.SecondaryColor, a.AccentColor = "#1E40AF", "#10B981", "#F59E0B"
	a.APIEndpoints = APIEndpoints{
		BaseURL:    "https://api.clienta.com",
		TradingURL: "https://trading.clienta.com",
		NewsURL:    "https://news.clienta.com",
	}
	a.Trading = Trading{
		SupportedAssets:         []string{"BTC", "ETH", "USDT", "BNB"},
		MinTradeAmount:          50,
		MaxTradeAmount:          50000,
		SupportedFiatCurrencies: []string{"USD", "EUR"},
	}
	a.Legal = Legal{
		TermsURL:     "https://clienta.com/terms",
		PrivacyURL:   "https://clienta.com/privacy",
		SupportEmail: "support@clienta.com",
		CompanyName:  "Client A Trading Ltd.",
	}
	a.AppStore = AppStore{BundleID: "com.clienta.cryptotrader", Version: "1.0.0", BuildNumber: 1}

	b := defaultClient()
	b.AppName = "InvestMate"
	b.LogoURL = "/assets/images/client-b-logo.png"
	b.PrimaryColor, b.SecondaryColor, b.AccentColor = "#7C3AED", "#06B6D4", "#EF4444"
	b.Features.News = false
	b.Features.Analytics = false
	b.APIEndpoints = APIEndpoints{
		BaseURL:    "https://api.clientb.com",
		TradingURL: "https://trading.clientb.com",
		NewsURL:    "https://news.clientb.com",
	}
	b.Trading = Trading{
		SupportedAssets:         []string{"BTC", "ETH", "ADA"},
		MinTradeAmount:          25,
		MaxTradeAmount:          25000,
		SupportedFiatCurrencies: []string{"USD", "GBP"},
	}
	b.Theme = ThemeHints{DarkMode: false, BorderRadius: 8, Spacing: 12}
	b.Legal = Legal{
		TermsURL:     "https://clientb.com/terms",
		PrivacyURL:   "https://clientb.com/privacy",
		SupportEmail: "help@clientb.com",
		CompanyName:  "Client B Investments Inc.",
	}
	b.AppStore = AppStore{BundleID: "com.clientb.investmate", Version: "1.0.0", BuildNumber: 1}

	return map[string]Client{
		DefaultClient: defaultClient(),
		"client-a":    a,
		"client-b":    b,
	}
}
