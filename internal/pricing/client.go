package pricing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/luooka/casebot/internal/domain"
)

// Remote API paths.
const (
	PathSearchSuggest = "/api/v1/search/suggest"
	PathGoodsInfo     = "/api/v1/info/good"
)

const requestTimeout = 20 * time.Second

// SearchMatch is one suggestion returned for a free-text query.
type SearchMatch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Client talks to the upstream search and goods endpoints.
type Client interface {
	Search(ctx context.Context, text string) ([]SearchMatch, error)
	GoodsInfo(ctx context.Context, id int64) (*Quote, error)
}

type restyClient struct {
	http *resty.Client
}

type searchResponse struct {
	Code int           `json:"code"`
	Data []SearchMatch `json:"data"`
}

type goodsResponse struct {
	Code int `json:"code"`
	Data struct {
		GoodsInfo struct {
			Name           string `json:"name"`
			BuffSellPrice  string `json:"buff_sell_price"`
			YyypSellPrice  string `json:"yyyp_sell_price"`
			SteamSellPrice string `json:"steam_sell_price"`
			Img            string `json:"img"`
			UpdatedAt      string `json:"updated_at"`
		} `json:"goods_info"`
	} `json:"data"`
}

// NewClient creates an upstream pricing client sharing the catalog API's
// authentication scheme.
func NewClient(host, apiToken string) Client {
	http := resty.New().
		SetBaseURL("https://"+host).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("ApiToken", apiToken)

	return &restyClient{http: http}
}

func (c *restyClient) Search(ctx context.Context, text string) ([]SearchMatch, error) {
	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("text", text).
		SetResult(&out).
		Get(PathSearchSuggest)
	if err != nil {
		return nil, fmt.Errorf("%w: search failed: %v", domain.ErrUpstreamFetch, err)
	}
	if resp.IsError() || out.Code != 200 {
		return nil, fmt.Errorf("%w: search returned code %d", domain.ErrUpstreamFetch, out.Code)
	}
	return out.Data, nil
}

func (c *restyClient) GoodsInfo(ctx context.Context, id int64) (*Quote, error) {
	var out goodsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		Get(PathGoodsInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: goods info failed: %v", domain.ErrUpstreamFetch, err)
	}
	if resp.IsError() || out.Code != 200 {
		return nil, fmt.Errorf("%w: goods info returned code %d", domain.ErrUpstreamFetch, out.Code)
	}

	g := out.Data.GoodsInfo
	yyyp := g.YyypSellPrice
	if yyyp == "" {
		yyyp = "无"
	}
	return &Quote{
		Name:      g.Name,
		Buff:      g.BuffSellPrice,
		YYYP:      yyyp,
		Steam:     g.SteamSellPrice,
		ImageURL:  g.Img,
		UpdatedAt: g.UpdatedAt,
	}, nil
}
