package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("user not authenticated")
)

// CheckoutService transforma um snapshot do carrinho em pedido persistido.
// Cabeçalho e linhas entram numa única transação; quem chama só limpa o
// carrinho depois do sucesso, então uma falha aqui permite reenvio sem
// cobrança dupla.
type CheckoutService struct {
	orderRepo repositories.OrderRepository
	mailer    *Mailer
	userRepo  repositories.UserRepositoryImpl
	publisher *OrderPublisher
}

func NewCheckoutService(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepositoryImpl,
	mailer *Mailer,
	publisher *OrderPublisher,
) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		mailer:    mailer,
		publisher: publisher,
	}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, snap cart.Snapshot) (*models.Order, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if snap.Empty() {
		return nil, ErrEmptyCart
	}

	orderNumber := fmt.Sprintf("PED-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])

	order := &models.Order{
		OrderNumber:    orderNumber,
		UserID:         userID,
		Subtotal:       snap.Subtotal,
		DiscountAmount: snap.DiscountAmount,
		CouponCode:     snap.CouponCode,
		Total:          snap.Total,
		Status:         models.OrderStatusProcessing,
		OrderDate:      time.Now(),
	}

	items := make([]models.OrderItem, 0, len(snap.Items))
	for _, line := range snap.Items {
		items = append(items, models.OrderItem{
			ProductID:    line.Product.ID,
			VariantID:    line.VariantID,
			ProductName:  line.DisplayName(),
			ProductImage: line.Product.MainImage(),
			Qty:          line.Qty,
			Price:        line.UnitPrice,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, fmt.Errorf("failed to create order %s: %w", orderNumber, err)
	}
	order.OrderItems = items

	s.notify(ctx, order)

	return order, nil
}

// notify dispara integrações pós-pedido. Falhas aqui não desfazem o pedido,
// só vão para o log.
func (s *CheckoutService) notify(ctx context.Context, order *models.Order) {
	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			log.Printf("CheckoutService: falha ao publicar evento do pedido %s: %v", order.OrderNumber, err)
		}
	}

	if s.mailer == nil || s.userRepo == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil || user == nil {
		log.Printf("CheckoutService: usuário %s não encontrado para e-mail de confirmação: %v", order.UserID, err)
		return
	}
	subject := fmt.Sprintf("Pedido %s confirmado", order.OrderNumber)
	if err := s.mailer.SendHTMLEmail(user.Email, subject, BuildOrderConfirmationBody(order)); err != nil {
		log.Printf("CheckoutService: falha ao enviar confirmação do pedido %s: %v", order.OrderNumber, err)
	}
}
