package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fincarts/internal/client/session"
	"fincarts/internal/domain"
	"fincarts/internal/dto"
	apperrors "fincarts/internal/errors"
)

// SellerIDHeader carries the seller identity on action requests.
const SellerIDHeader = "X-Seller-Id"

// Client talks to the seller marketplace API. It reports failures and
// never retries; retrying is an operator decision.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sess       session.Session
	logger     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, sess session.Session, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		sess:       sess,
		logger:     logger,
	}
}

type OrdersQuery struct {
	Page   int
	Limit  int
	Status *domain.Status
}

// GetOrders fetches one page of the session seller's orders.
func (c *Client) GetOrders(ctx context.Context, q OrdersQuery) (*dto.OrdersData, error) {
	endpoint := fmt.Sprintf("%s/seller/order/get-orders/%s", c.baseURL, url.PathEscape(c.sess.SellerID))

	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != nil {
		params.Set("status", q.Status.String())
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewFetchError("building orders request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError("fetching orders page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewFetchError(
			fmt.Sprintf("orders endpoint returned status %d", resp.StatusCode), nil)
	}

	var body dto.OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewFetchError("decoding orders response", err)
	}
	if !body.Success {
		return nil, apperrors.NewFetchError(
			fmt.Sprintf("orders endpoint reported failure: %s", body.Message), nil)
	}

	c.logger.Debug("orders page fetched",
		zap.Int("page", body.Data.Pagination.Page),
		zap.Int("count", len(body.Data.Orders)))

	return &body.Data, nil
}

// PerformAction dispatches a single order action. The receipt URL is
// required only for the receipt action. The returned bool reports whether
// the response carried an authoritative status; when it did not, callers
// must leave local state unchanged.
func (c *Client) PerformAction(
	ctx context.Context,
	orderID string,
	action domain.Action,
	receiptURL string,
) (domain.Status, bool, error) {
	params := url.Values{}
	params.Set("action", string(action))
	params.Set("orderId", orderID)
	if receiptURL != "" {
		params.Set("receipt", receiptURL)
	}
	endpoint := fmt.Sprintf("%s/seller/order/order-action?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", false, apperrors.NewActionError(orderID, string(action), "building action request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(SellerIDHeader, c.sess.SellerID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, apperrors.NewActionError(orderID, string(action), "dispatching action", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false, apperrors.NewActionError(orderID, string(action),
			fmt.Sprintf("action endpoint returned status %d", resp.StatusCode), nil)
	}

	var body dto.ActionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", false, apperrors.NewActionError(orderID, string(action), "decoding action response", err)
	}
	if !body.Success {
		return "", false, apperrors.NewActionError(orderID, string(action),
			fmt.Sprintf("action endpoint reported failure: %s", body.Message), nil)
	}

	if body.Data.Order.Status == "" {
		// The server accepted the action but did not say where the order
		// landed. Local state must not drift from server truth.
		c.logger.Debug("action response without status",
			zap.String("orderId", orderID),
			zap.String("action", string(action)))
		return "", false, nil
	}

	status, err := domain.ParseStatus(body.Data.Order.Status)
	if err != nil {
		return "", false, apperrors.NewActionError(orderID, string(action), "parsing returned status", err)
	}

	return status, true, nil
}
