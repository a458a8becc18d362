package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	userRepo repositories.UserRepositoryImpl
	sessions sessions.SessionStore
	render   *render.Render
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, render *render.Render) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		sessions: sessionStore,
		render:   render,
	}
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if helpers.GetUserIDFromContext(r.Context()) != "" {
		http.Redirect(w, r, "/minha-conta", http.StatusSeeOther)
		return
	}

	pageSpecificData := map[string]interface{}{
		"Title":         "Entrar",
		"MessageStatus": r.URL.Query().Get("status"),
		"Message":       r.URL.Query().Get("message"),
	}
	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "login", datas)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Falha ao ler os dados", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	password := r.FormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("AuthHandler.LoginPost: falha ao buscar usuário %s: %v", email, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Erro ao entrar. Tente novamente."), http.StatusSeeOther)
		return
	}
	if user == nil || !helpers.ComparePassword(user.Password, password) {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("E-mail ou senha incorretos."), http.StatusSeeOther)
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.LoginPost: falha ao salvar sessão: %v", err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Erro ao iniciar sessão."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/minha-conta", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Falha ao ler os dados", http.StatusBadRequest)
		return
	}

	fullName := strings.TrimSpace(r.FormValue("full_name"))
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	if fullName == "" {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Preencha seu nome."), http.StatusSeeOther)
		return
	}
	if len(password) < 6 {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("A senha deve ter pelo menos 6 caracteres."), http.StatusSeeOther)
		return
	}
	if password != confirm {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("As senhas não coincidem."), http.StatusSeeOther)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("AuthHandler.RegisterPost: falha ao verificar e-mail %s: %v", email, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Erro ao cadastrar. Tente novamente."), http.StatusSeeOther)
		return
	}
	if existing != nil {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("E-mail já cadastrado."), http.StatusSeeOther)
		return
	}

	user := &models.User{
		FullName: fullName,
		Email:    email,
		Password: password,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("AuthHandler.RegisterPost: falha ao criar usuário %s: %v", email, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Erro ao cadastrar. Tente novamente."), http.StatusSeeOther)
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.RegisterPost: falha ao salvar sessão: %v", err)
	}

	http.Redirect(w, r, "/minha-conta?status=success&message="+url.QueryEscape("Cadastro realizado!"), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearUserID(w, r); err != nil {
		log.Printf("AuthHandler.Logout: falha ao limpar sessão: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
