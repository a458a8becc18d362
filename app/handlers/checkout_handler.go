package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/services"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	carts       *cart.Store
	checkoutSvc *services.CheckoutService
	render      *render.Render
}

func NewCheckoutHandler(carts *cart.Store, checkoutSvc *services.CheckoutService, render *render.Render) *CheckoutHandler {
	return &CheckoutHandler{
		carts:       carts,
		checkoutSvc: checkoutSvc,
		render:      render,
	}
}

func (h *CheckoutHandler) CheckoutGet(w http.ResponseWriter, r *http.Request) {
	c := h.carts.GetOrCreate(helpers.GetCartIDFromContext(r.Context()))
	snap := c.Snapshot()

	if snap.Empty() {
		http.Redirect(w, r, "/produtos?status=info&message="+url.QueryEscape("Seu carrinho está vazio."), http.StatusSeeOther)
		return
	}

	pageSpecificData := map[string]interface{}{
		"Title":          "Checkout",
		"Items":          snap.Items,
		"Subtotal":       snap.Subtotal,
		"DiscountAmount": snap.DiscountAmount,
		"Total":          snap.Total,
		"Breadcrumbs":    []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Checkout", URL: "/checkout"}},
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "checkout", datas)
}

// CheckoutPost finaliza o pedido. O carrinho só é limpo depois que o serviço
// confirma a gravação; em caso de erro o estado fica intacto para nova
// tentativa.
func (h *CheckoutHandler) CheckoutPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Falha ao ler os dados", http.StatusBadRequest)
		return
	}

	form := helpers.CheckoutForm{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		CPF:       r.FormValue("cpf"),
		CEP:       r.FormValue("cep"),
		Street:    r.FormValue("street"),
		Number:    r.FormValue("number"),
		City:      r.FormValue("city"),
		State:     r.FormValue("state"),
	}
	if err := helpers.Validate.Struct(form); err != nil {
		log.Printf("CheckoutHandler.CheckoutPost: formulário inválido: %v", err)
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Confira os dados informados."), http.StatusSeeOther)
		return
	}

	userID := helpers.GetUserIDFromContext(r.Context())
	c := h.carts.GetOrCreate(helpers.GetCartIDFromContext(r.Context()))

	order, err := h.checkoutSvc.PlaceOrder(r.Context(), userID, c.Snapshot())
	if err != nil {
		log.Printf("CheckoutHandler.CheckoutPost: falha ao criar pedido para user %s: %v", userID, err)
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Erro ao criar pedido. Tente novamente."), http.StatusSeeOther)
		return
	}

	// Pedido confirmado: agora sim o carrinho pode ser esvaziado.
	c.Clear()
	c.SetOpen(false)

	log.Printf("✅ Pedido %s criado para user %s.", order.OrderNumber, userID)
	http.Redirect(w, r, "/minha-conta?status=success&message="+url.QueryEscape("Pedido "+order.OrderNumber+" criado com sucesso! 🎉"), http.StatusSeeOther)
}
