package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/breadcrumb"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type AccountHandler struct {
	userRepo  repositories.UserRepositoryImpl
	orderRepo repositories.OrderRepository
	render    *render.Render
}

func NewAccountHandler(userRepo repositories.UserRepositoryImpl, orderRepo repositories.OrderRepository, render *render.Render) *AccountHandler {
	return &AccountHandler{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		render:    render,
	}
}

// MyAccount mostra o perfil e o histórico de pedidos, do mais novo para o
// mais antigo.
func (h *AccountHandler) MyAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := helpers.GetUserIDFromContext(ctx)

	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("AccountHandler.MyAccount: usuário %s não encontrado: %v", userID, err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	orders, err := h.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Printf("AccountHandler.MyAccount: falha ao buscar pedidos do user %s: %v", userID, err)
	}

	pageSpecificData := map[string]interface{}{
		"Title":         "Minha Conta",
		"User":          user,
		"Orders":        orders,
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
		"Breadcrumbs":   []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Minha Conta", URL: "/minha-conta"}},
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "account", datas)
}

func (h *AccountHandler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]
	if orderNumber == "" {
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("Pedido não informado."), http.StatusSeeOther)
		return
	}

	order, err := h.orderRepo.FindByNumber(r.Context(), orderNumber)
	if err != nil {
		log.Printf("AccountHandler.OrderDetail: falha ao buscar pedido %s: %v", orderNumber, err)
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("Erro ao carregar pedido."), http.StatusSeeOther)
		return
	}
	if order == nil || order.UserID != helpers.GetUserIDFromContext(r.Context()) {
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("Pedido não encontrado."), http.StatusSeeOther)
		return
	}

	pageSpecificData := map[string]interface{}{
		"Title": "Pedido " + order.OrderNumber,
		"Order": order,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Minha Conta", URL: "/minha-conta"},
			{Name: order.OrderNumber, URL: "/minha-conta/pedidos/" + order.OrderNumber},
		},
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "order_detail", datas)
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Falha ao ler os dados", http.StatusBadRequest)
		return
	}

	newPassword := r.FormValue("new_password")
	confirm := r.FormValue("confirm_new_password")

	if len(newPassword) < 6 {
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("A nova senha deve ter pelo menos 6 caracteres."), http.StatusSeeOther)
		return
	}
	if newPassword != confirm {
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("As senhas não coincidem."), http.StatusSeeOther)
		return
	}

	userID := helpers.GetUserIDFromContext(r.Context())
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		log.Printf("AccountHandler.ChangePassword: falha ao gerar hash para user %s: %v", userID, err)
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("Erro ao alterar senha."), http.StatusSeeOther)
		return
	}

	if err := h.userRepo.UpdatePassword(r.Context(), userID, hash); err != nil {
		log.Printf("AccountHandler.ChangePassword: falha ao atualizar senha do user %s: %v", userID, err)
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("Erro ao alterar senha."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/minha-conta?status=success&message="+url.QueryEscape("Senha alterada com sucesso!"), http.StatusSeeOther)
}

func (h *AccountHandler) ChangeEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Falha ao ler os dados", http.StatusBadRequest)
		return
	}

	newEmail := r.FormValue("new_email")
	if err := helpers.Validate.Var(newEmail, "required,email"); err != nil {
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("E-mail inválido."), http.StatusSeeOther)
		return
	}

	userID := helpers.GetUserIDFromContext(r.Context())
	if err := h.userRepo.UpdateEmail(r.Context(), userID, newEmail); err != nil {
		log.Printf("AccountHandler.ChangeEmail: falha ao atualizar e-mail do user %s: %v", userID, err)
		http.Redirect(w, r, "/minha-conta?status=error&message="+url.QueryEscape("Erro ao atualizar e-mail."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/minha-conta?status=success&message="+url.QueryEscape("E-mail atualizado!"), http.StatusSeeOther)
}
