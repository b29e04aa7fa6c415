package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/luooka/casebot/internal/domain"
)

// RemoteContainer is one entry of the upstream container index.
type RemoteContainer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

// RemoteItem is one pool entry of a container detail response. Rln carries the
// upstream tier label.
type RemoteItem struct {
	ShortName string `json:"short_name"`
	Rln       string `json:"rln"`
	Img       string `json:"img"`
}

// Client fetches catalog data from the upstream item API.
type Client interface {
	FetchContainerList(ctx context.Context) ([]RemoteContainer, error)
	FetchContainerDetail(ctx context.Context, id int64) ([]RemoteItem, error)
}

type restyClient struct {
	http *resty.Client
}

type listResponse struct {
	Code int               `json:"code"`
	Data []RemoteContainer `json:"data"`
}

type detailResponse struct {
	Code int          `json:"code"`
	Data []RemoteItem `json:"data"`
}

// NewClient creates an upstream catalog client. The ApiToken header
// authenticates every call; transient failures retry with a fixed pause.
func NewClient(host, apiToken string) Client {
	http := resty.New().
		SetBaseURL("https://"+host).
		SetTimeout(RequestTimeout).
		SetRetryCount(RetryCount).
		SetRetryWaitTime(RetryWaitTime).
		SetRetryMaxWaitTime(RetryWaitTime).
		SetHeader("Content-Type", "application/json").
		SetHeader("ApiToken", apiToken)

	return &restyClient{http: http}
}

func (c *restyClient) FetchContainerList(ctx context.Context) ([]RemoteContainer, error) {
	var out listResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post(PathContainerList)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgFetchListFailed, domain.ErrUpstreamFetch, err)
	}
	if resp.IsError() || out.Code != 200 {
		return nil, fmt.Errorf("%w: "+ErrMsgUpstreamStatus, domain.ErrUpstreamFetch, out.Code)
	}
	return out.Data, nil
}

func (c *restyClient) FetchContainerDetail(ctx context.Context, id int64) ([]RemoteItem, error) {
	var out detailResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		Get(PathContainerDetail)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgFetchDetailFailed, domain.ErrUpstreamFetch, err)
	}
	if resp.IsError() || out.Code != 200 {
		return nil, fmt.Errorf("%w: "+ErrMsgUpstreamStatus, domain.ErrUpstreamFetch, out.Code)
	}
	return out.Data, nil
}
