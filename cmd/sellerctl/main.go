package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"fincarts/internal/client/api"
	"fincarts/internal/client/orders"
	"fincarts/internal/client/session"
	"fincarts/internal/client/upload"
	"fincarts/internal/config"
	"fincarts/internal/domain"
	"fincarts/internal/infrastructure/logger"
)

func main() {
	sellerID := flag.String("seller", "", "seller id for the session")
	statusFlag := flag.String("status", "", "status filter (pending, confirmed, processing, shipped, delivered, cancelled)")
	pages := flag.Int("pages", 1, "number of pages to fetch for list")
	orderID := flag.String("order", "", "order id for action/receipt")
	actionFlag := flag.String("action", "", "order action (accept or decline)")
	receiptFile := flag.String("file", "", "receipt image file for the receipt command")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	command := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	sess, err := session.New(*sellerID)
	if err != nil {
		log.Fatalf("starting session: %v (pass -seller)", err)
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	client := api.NewClient(cfg.API.BaseURL, httpClient, sess, zapLogger)
	uploader := upload.NewUploader(upload.DefaultBaseURL, cfg.Upload.CloudName, cfg.Upload.UploadPreset,
		&http.Client{Timeout: cfg.Upload.Timeout}, zapLogger)

	ctrl := orders.NewController(client, client, uploader, cfg.Orders.PageLimit, zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch command {
	case "list":
		runList(ctx, ctrl, *statusFlag, *pages)
	case "action":
		runAction(ctx, ctrl, *orderID, *actionFlag)
	case "receipt":
		runReceipt(ctx, ctrl, *orderID, *receiptFile)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  sellerctl -seller <id> list [-status <status>] [-pages <n>]
  sellerctl -seller <id> action -order <id> -action accept|decline
  sellerctl -seller <id> receipt -order <id> -file <image>`)
	os.Exit(2)
}

func runList(ctx context.Context, ctrl *orders.Controller, statusFlag string, pages int) {
	var filter *domain.Status
	if statusFlag != "" {
		parsed, err := domain.ParseStatus(statusFlag)
		if err != nil {
			log.Fatalf("invalid status: %v", err)
		}
		filter = &parsed
	}

	if err := ctrl.SetFilter(ctx, filter); err != nil {
		log.Fatalf("fetching orders: %v", err)
	}
	for i := 1; i < pages; i++ {
		if err := ctrl.RequestNextPage(ctx); err != nil {
			log.Fatalf("fetching page %d: %v", i+1, err)
		}
	}

	list := ctrl.Orders()
	pagination := ctrl.Pagination()
	summary := ctrl.Summary()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSTATUS\tAMOUNT\tCUSTOMER\tCREATED\tACTIONS")
	for _, o := range list {
		actions, _ := ctrl.AllowedActions(o.ID)
		names := make([]string, 0, len(actions))
		for _, a := range actions {
			names = append(names, string(a))
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
			o.OrderRef, o.Status, o.TotalAmount, o.Customer.FullName,
			o.CreatedAt.Format("2006-01-02"), strings.Join(names, ","))
	}
	w.Flush()

	fmt.Printf("\npage %d of %d (%d orders total, revenue %.2f)\n",
		pagination.Page, pagination.Pages, summary.TotalOrders, summary.TotalRevenue)
}

func runAction(ctx context.Context, ctrl *orders.Controller, orderID, actionFlag string) {
	if orderID == "" {
		usage()
	}
	action, err := domain.ParseAction(actionFlag)
	if err != nil || action == domain.ActionReceipt {
		log.Fatalf("action must be accept or decline")
	}

	if err := ctrl.Refresh(ctx); err != nil {
		log.Fatalf("fetching orders: %v", err)
	}

	status, updated, err := ctrl.PerformAction(ctx, orderID, action)
	if err != nil {
		log.Fatalf("order action failed: %v", err)
	}
	if updated {
		fmt.Printf("order %s is now %s\n", orderID, status)
	} else {
		fmt.Printf("order %s action accepted\n", orderID)
	}
}

func runReceipt(ctx context.Context, ctrl *orders.Controller, orderID, path string) {
	if orderID == "" || path == "" {
		usage()
	}

	if err := ctrl.Refresh(ctx); err != nil {
		log.Fatalf("fetching orders: %v", err)
	}

	status, updated, err := ctrl.UploadReceipt(ctx, orderID, fileMediaSource{path: path})
	if err != nil {
		log.Fatalf("receipt upload failed: %v", err)
	}
	if updated {
		fmt.Printf("receipt uploaded, order %s is now %s\n", orderID, status)
	} else {
		fmt.Printf("receipt uploaded for order %s\n", orderID)
	}
}

// fileMediaSource reads a local image file instead of a device picker.
type fileMediaSource struct {
	path string
}

func (s fileMediaSource) Pick(_ context.Context) (*upload.Media, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading media file: %w", err)
	}

	mediaType := upload.MediaImage
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".mp4", ".mov", ".webm":
		mediaType = upload.MediaVideo
	}

	return &upload.Media{
		Base64: base64.StdEncoding.EncodeToString(data),
		Type:   mediaType,
	}, nil
}
