package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/services"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/breadcrumb"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/sessions"
	"github.com/unrolled/render"
)

// FavoriteHandler alterna favoritos por produto. Logado, a lista mora no
// banco; visitante, na sessão do dispositivo.
type FavoriteHandler struct {
	favoritesSvc *services.FavoritesService
	productRepo  repositories.ProductRepositoryImpl
	sessions     sessions.SessionStore
	render       *render.Render
}

func NewFavoriteHandler(
	favoritesSvc *services.FavoritesService,
	productRepo repositories.ProductRepositoryImpl,
	sessionStore sessions.SessionStore,
	render *render.Render,
) *FavoriteHandler {
	return &FavoriteHandler{
		favoritesSvc: favoritesSvc,
		productRepo:  productRepo,
		sessions:     sessionStore,
		render:       render,
	}
}

func (h *FavoriteHandler) FavoritesGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := helpers.GetUserIDFromContext(ctx)

	var (
		productIDs []string
		err        error
	)
	if userID != "" {
		productIDs, err = h.favoritesSvc.ListProductIDs(ctx, userID)
		if err != nil {
			log.Printf("FavoriteHandler.FavoritesGet: falha ao listar favoritos do user %s: %v", userID, err)
			http.Error(w, "Falha ao carregar favoritos", http.StatusInternalServerError)
			return
		}
	} else {
		productIDs = h.sessions.GetLocalFavorites(r)
	}

	products, err := h.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		log.Printf("FavoriteHandler.FavoritesGet: falha ao buscar produtos favoritos: %v", err)
		http.Error(w, "Falha ao carregar favoritos", http.StatusInternalServerError)
		return
	}

	pageSpecificData := map[string]interface{}{
		"Title":       "Favoritos",
		"Products":    products,
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Favoritos", URL: "/favoritos"}},
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "favorites", datas)
}

func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Falha ao ler os dados", http.StatusBadRequest)
		return
	}

	productID := r.FormValue("product_id")
	if productID == "" {
		http.Error(w, "Produto inválido", http.StatusBadRequest)
		return
	}

	redirectTo := r.FormValue("redirect")
	if redirectTo == "" {
		redirectTo = "/favoritos"
	}

	userID := helpers.GetUserIDFromContext(r.Context())
	if userID != "" {
		if _, err := h.favoritesSvc.Toggle(r.Context(), userID, productID); err != nil {
			log.Printf("FavoriteHandler.ToggleFavorite: falha para user %s, produto %s: %v", userID, productID, err)
			http.Redirect(w, r, redirectTo+"?status=error&message="+url.QueryEscape("Erro ao atualizar favoritos."), http.StatusSeeOther)
			return
		}
	} else {
		next, _ := services.ToggleLocal(h.sessions.GetLocalFavorites(r), productID)
		if err := h.sessions.SetLocalFavorites(w, r, next); err != nil {
			log.Printf("FavoriteHandler.ToggleFavorite: falha ao salvar favoritos na sessão: %v", err)
		}
	}

	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}
