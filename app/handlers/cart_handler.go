package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type CartHandler struct {
	carts       *cart.Store
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewCartHandler(carts *cart.Store, productRepo repositories.ProductRepositoryImpl, render *render.Render) *CartHandler {
	return &CartHandler{
		carts:       carts,
		productRepo: productRepo,
		render:      render,
	}
}

func (h *CartHandler) sessionCart(r *http.Request) *cart.Cart {
	return h.carts.GetOrCreate(helpers.GetCartIDFromContext(r.Context()))
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c := h.sessionCart(r)

	status := r.URL.Query().Get("status")
	message := r.URL.Query().Get("message")

	pageSpecificData := map[string]interface{}{
		"Title":          "Carrinho",
		"Items":          c.Items(),
		"TotalItems":     c.TotalItems(),
		"Subtotal":       c.Subtotal(),
		"CouponCode":     c.CouponCode(),
		"DiscountAmount": c.DiscountAmount(),
		"Total":          c.Total(),
		"Breadcrumbs":    []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Carrinho", URL: "/carrinho"}},
		"MessageStatus":  status,
		"Message":        message,
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "cart", datas)
}

func (h *CartHandler) AddItemCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Falha ao ler os dados", http.StatusBadRequest)
		return
	}

	productID := r.FormValue("product_id")
	variantID := r.FormValue("variant_id")
	action := r.FormValue("action")

	if productID == "" {
		http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Produto não informado."), http.StatusSeeOther)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("CartHandler.AddItemCart: produto %s não encontrado: %v", productID, err)
		http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Produto não encontrado."), http.StatusSeeOther)
		return
	}

	h.sessionCart(r).AddItem(product, variantID)

	switch action {
	case "buy":
		http.Redirect(w, r, fmt.Sprintf("/carrinho?status=success&message=%s", url.QueryEscape("Item adicionado ao carrinho!")), http.StatusSeeOther)
	default:
		http.Redirect(w, r, fmt.Sprintf("/produto/%s?status=success&message=%s", product.Slug, url.QueryEscape("Item adicionado ao carrinho!")), http.StatusSeeOther)
	}
}

func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	lineKey := r.FormValue("line_key")
	qtyStr := r.FormValue("qty")

	if lineKey == "" {
		http.Error(w, "Item inválido", http.StatusBadRequest)
		return
	}

	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		http.Redirect(w, r, "/carrinho?status=error&message="+url.QueryEscape("Quantidade inválida!"), http.StatusSeeOther)
		return
	}

	// Quantidade zero ou negativa remove a linha.
	h.sessionCart(r).UpdateQuantity(lineKey, qty)

	http.Redirect(w, r, "/carrinho?status=success&message="+url.QueryEscape("Carrinho atualizado!"), http.StatusSeeOther)
}

func (h *CartHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	lineKey := r.FormValue("line_key")
	if lineKey == "" {
		http.Error(w, "Item inválido", http.StatusBadRequest)
		return
	}

	h.sessionCart(r).RemoveItem(lineKey)

	http.Redirect(w, r, "/carrinho?status=success&message="+url.QueryEscape("Item removido do carrinho!"), http.StatusSeeOther)
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("coupon")

	c := h.sessionCart(r)
	c.SetCoupon(code)
	c.ApplyCoupon()

	if c.DiscountAmount().IsZero() {
		// Código desconhecido não é erro: só não há desconto.
		http.Redirect(w, r, "/carrinho?status=info&message="+url.QueryEscape("Nenhum desconto aplicado."), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/carrinho?status=success&message="+url.QueryEscape("Cupom aplicado!"), http.StatusSeeOther)
}

func (h *CartHandler) GetCartCount(w http.ResponseWriter, r *http.Request) {
	cartID := helpers.GetCartIDFromContext(r.Context())
	w.Write([]byte(strconv.Itoa(h.carts.TotalItems(cartID))))
}
