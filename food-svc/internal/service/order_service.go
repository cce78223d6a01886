package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"foodapp/food-svc/internal/domain"
)

const sideEffectTimeout = 5 * time.Second

// Column limits: quantities are INTEGER, food ids SERIAL and totals NUMERIC(12, 2).
const (
	maxQuantity   = math.MaxInt32
	maxCatalogID  = math.MaxInt32
	maxOrderTotal = 1e10
)

type PlaceOrderInput struct {
	Items    []domain.CartItem
	Customer domain.Customer
	UserID   *int
}

type OrderService struct {
	foods     FoodLookup
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(foods FoodLookup, repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		foods:     foods,
		repo:      repo,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// PlaceOrder prices the cart from the catalog and stores the order. Client
// supplied prices are never consulted.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, validationError("No items")
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	ids := make([]int, 0, len(in.Items))
	seen := make(map[int]bool, len(in.Items))
	for _, it := range in.Items {
		if it.Qty < 0 || it.Qty > maxQuantity {
			return nil, validationError("Invalid quantity")
		}
		qty := it.Qty
		if qty == 0 {
			qty = 1
		}
		items = append(items, domain.OrderItem{FoodID: it.ID, Quantity: qty})
		// Ids outside the catalog key range cannot match a food; they stay unknown.
		if it.ID > 0 && it.ID <= maxCatalogID && !seen[it.ID] {
			seen[it.ID] = true
			ids = append(ids, it.ID)
		}
	}

	prices := make(map[int]float64, len(ids))
	if len(ids) > 0 {
		foods, err := s.foods.FoodsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to look up prices: %w", err)
		}
		for _, food := range foods {
			prices[food.ID] = food.Price
		}
	}
	total, unknown := PriceItems(items, prices)
	if total >= maxOrderTotal {
		return nil, validationError("Order total too large")
	}

	order := &domain.Order{
		UserID:   in.UserID,
		Items:    items,
		Customer: in.Customer,
		Total:    total,
		Status:   domain.OrderStatusPlaced,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if len(unknown) > 0 {
		log.Printf("[food-svc] WARNING: order %d references unknown foods %v, priced at 0", order.ID, unknown)
	}

	// The order is committed; receipt and event are best effort.
	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	s.attachQRCode(sideCtx, order.ID)
	s.publishPlaced(sideCtx, order)

	return order, nil
}

func (s *OrderService) attachQRCode(ctx context.Context, orderID int) {
	if s.qrEncoder == nil {
		return
	}
	qr, err := s.qrEncoder.Generate(orderID)
	if err != nil {
		log.Printf("[food-svc] WARNING: failed to generate QR code for order %d: %v", orderID, err)
		return
	}
	if err := s.repo.SaveQRCode(ctx, orderID, qr); err != nil {
		log.Printf("[food-svc] WARNING: failed to store QR code for order %d: %v", orderID, err)
	}
}

func (s *OrderService) publishPlaced(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	event := domain.OrderEvent{
		Type:      domain.EventOrderPlaced,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Items:     make([]domain.OrderEventItem, 0, len(order.Items)),
		Total:     order.Total,
		Timestamp: time.Now().UTC(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, domain.OrderEventItem{FoodID: item.FoodID, Quantity: item.Quantity})
	}

	if err := s.publisher.PublishOrder(ctx, event); err != nil {
		log.Printf("[food-svc] WARNING: failed to publish order %d: %v", order.ID, err)
	}
}

func (s *OrderService) MyOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFoundError("Order not found")
		}
		return nil, fmt.Errorf("failed to load QR code: %w", err)
	}

	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
		if err := s.repo.SaveQRCode(ctx, orderID, regenerated); err != nil {
			log.Printf("[food-svc] WARNING: failed to cache regenerated QR code for order %d: %v", orderID, err)
		}
		return regenerated, nil
	}
	if len(qr) == 0 {
		return nil, notFoundError("QR code not found")
	}
	return qr, nil
}
