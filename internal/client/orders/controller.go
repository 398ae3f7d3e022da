package orders

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fincarts/internal/client/api"
	"fincarts/internal/client/upload"
	"fincarts/internal/domain"
	"fincarts/internal/dto"
	apperrors "fincarts/internal/errors"
)

type Fetcher interface {
	GetOrders(ctx context.Context, q api.OrdersQuery) (*dto.OrdersData, error)
}

type Dispatcher interface {
	PerformAction(ctx context.Context, orderID string, action domain.Action, receiptURL string) (domain.Status, bool, error)
}

type Uploader interface {
	Upload(ctx context.Context, base64Payload string, mediaType upload.MediaType) (string, error)
}

// MediaSource models the device picker. Pick returns a PermissionError
// when the camera or library permission is refused.
type MediaSource interface {
	Pick(ctx context.Context) (*upload.Media, error)
}

// Controller owns the order screen state: the in-memory order list, the
// active status filter, the page counter and the open detail reference.
// All mutation goes through its methods; fetch results for a superseded
// filter are discarded on arrival.
type Controller struct {
	fetcher    Fetcher
	dispatcher Dispatcher
	uploader   Uploader
	limit      int
	logger     *zap.Logger

	mu         sync.Mutex
	orders     []domain.Order
	summary    dto.Summary
	pagination dto.Pagination
	filter     *domain.Status
	page       int
	loaded     bool
	inFlight   bool
	generation uint64
	detail     *domain.Order
	stale      bool
}

func NewController(fetcher Fetcher, dispatcher Dispatcher, uploader Uploader, pageLimit int, logger *zap.Logger) *Controller {
	if pageLimit < 1 {
		pageLimit = 10
	}
	return &Controller{
		fetcher:    fetcher,
		dispatcher: dispatcher,
		uploader:   uploader,
		limit:      pageLimit,
		logger:     logger,
	}
}

// Refresh reloads page 1 for the active filter, replacing the list. Any
// fetch already in flight is superseded and its result dropped.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	filter := c.filter
	c.inFlight = true
	c.mu.Unlock()

	return c.finishFetch(ctx, gen, filter, 1, true)
}

// SetFilter switches the active status filter: the page counter resets to
// 1 and the list is replaced with the new filter's first page. A nil
// status means all orders.
func (c *Controller) SetFilter(ctx context.Context, status *domain.Status) error {
	c.mu.Lock()
	c.filter = status
	c.generation++
	gen := c.generation
	c.inFlight = true
	c.mu.Unlock()

	return c.finishFetch(ctx, gen, status, 1, true)
}

// RequestNextPage fetches the next page and appends it. It is a no-op
// when a page request is already in flight or the last page has been
// reached, so rapid repeated calls yield exactly one request.
func (c *Controller) RequestNextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil
	}

	target := 1
	replace := true
	if c.loaded {
		if c.page >= c.pagination.Pages {
			c.mu.Unlock()
			return nil
		}
		target = c.page + 1
		replace = false
	}

	gen := c.generation
	filter := c.filter
	c.inFlight = true
	c.mu.Unlock()

	return c.finishFetch(ctx, gen, filter, target, replace)
}

func (c *Controller) finishFetch(ctx context.Context, gen uint64, filter *domain.Status, page int, replace bool) error {
	data, err := c.fetcher.GetOrders(ctx, api.OrdersQuery{
		Page:   page,
		Limit:  c.limit,
		Status: filter,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// The filter changed while this request was outstanding. The
		// result belongs to the old filter and must not leak into the
		// fresh list.
		c.logger.Debug("discarding superseded fetch", zap.Int("page", page))
		return nil
	}

	c.inFlight = false
	if err != nil {
		return err
	}

	fetched := make([]domain.Order, 0, len(data.Orders))
	for _, d := range data.Orders {
		fetched = append(fetched, d.ToDomain())
	}

	if replace {
		c.orders = fetched
	} else {
		c.orders = append(c.orders, fetched...)
	}
	c.page = page
	c.pagination = data.Pagination
	c.summary = data.Summary
	c.loaded = true
	c.stale = false

	// An authoritative load also refreshes the open detail snapshot.
	if c.detail != nil {
		if fresh := c.findLocked(c.detail.ID); fresh != nil {
			snapshot := *fresh
			c.detail = &snapshot
		}
	}

	return nil
}

// AllowedActions returns the action buttons to render for an order. The
// result depends on the order's status and nothing else.
func (c *Controller) AllowedActions(orderID string) ([]domain.Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order := c.findLocked(orderID)
	if order == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s is not loaded", orderID))
	}

	return domain.AllowedActions(order.Status), nil
}

// PerformAction dispatches accept or decline for an order. On a success
// response carrying a status, the list entry and any open detail view are
// patched immediately and the cached data is flagged stale; the returned
// bool reports whether such a patch happened. On failure local state is
// untouched.
func (c *Controller) PerformAction(ctx context.Context, orderID string, action domain.Action) (domain.Status, bool, error) {
	if action == domain.ActionReceipt {
		return "", false, apperrors.NewValidationError("receipt uploads go through UploadReceipt", apperrors.ValidationDetail{
			Field:   "action",
			Message: "use UploadReceipt for the receipt action",
		})
	}

	if err := c.checkActionAllowed(orderID, action); err != nil {
		return "", false, err
	}

	return c.dispatch(ctx, orderID, action, "")
}

// UploadReceipt runs the full receipt flow: pick media, upload it to the
// asset host, then dispatch the receipt action with the hosted URL. A
// permission refusal or upload failure aborts before the action endpoint
// is ever called.
func (c *Controller) UploadReceipt(ctx context.Context, orderID string, src MediaSource) (domain.Status, bool, error) {
	if err := c.checkActionAllowed(orderID, domain.ActionReceipt); err != nil {
		return "", false, err
	}

	media, err := src.Pick(ctx)
	if err != nil {
		return "", false, err
	}

	receiptURL, err := c.uploader.Upload(ctx, media.Base64, media.Type)
	if err != nil {
		return "", false, err
	}

	return c.dispatch(ctx, orderID, domain.ActionReceipt, receiptURL)
}

func (c *Controller) checkActionAllowed(orderID string, action domain.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	order := c.findLocked(orderID)
	if order == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("order %s is not loaded", orderID))
	}
	if !domain.ActionAllowed(order.Status, action) {
		return apperrors.NewConflictError(
			fmt.Sprintf("action %s is not offered while order is %s", action, order.Status))
	}
	return nil
}

func (c *Controller) dispatch(ctx context.Context, orderID string, action domain.Action, receiptURL string) (domain.Status, bool, error) {
	status, hasStatus, err := c.dispatcher.PerformAction(ctx, orderID, action, receiptURL)
	if err != nil {
		return "", false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The next authoritative reload must come from the server even when
	// the response carried no status.
	c.stale = true

	if !hasStatus {
		// Display-only success: the seller sees a success notice but
		// local state does not drift from server truth.
		return "", false, nil
	}

	if order := c.findLocked(orderID); order != nil {
		order.Status = status
	}
	if c.detail != nil && c.detail.ID == orderID {
		c.detail.Status = status
	}

	c.logger.Debug("order patched optimistically",
		zap.String("orderId", orderID),
		zap.String("status", status.String()))

	return status, true, nil
}

// OpenDetail snapshots an order for the detail view.
func (c *Controller) OpenDetail(orderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	order := c.findLocked(orderID)
	if order == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("order %s is not loaded", orderID))
	}

	snapshot := *order
	c.detail = &snapshot
	return nil
}

func (c *Controller) CloseDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detail = nil
}

// Detail returns a copy of the open detail order, if any.
func (c *Controller) Detail() (domain.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detail == nil {
		return domain.Order{}, false
	}
	return *c.detail, true
}

// Orders returns a copy of the in-memory order list.
func (c *Controller) Orders() []domain.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *Controller) Summary() dto.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

func (c *Controller) Pagination() dto.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

func (c *Controller) Filter() *domain.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Stale reports whether an action has patched local state since the last
// authoritative load, meaning a reload will pick up server truth.
func (c *Controller) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale
}

func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *Controller) findLocked(orderID string) *domain.Order {
	for i := range c.orders {
		if c.orders[i].ID == orderID {
			return &c.orders[i]
		}
	}
	return nil
}
