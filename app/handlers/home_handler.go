package handlers

import (
	"log"
	"net/http"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewHomeHandler(productRepo repositories.ProductRepositoryImpl, render *render.Render) *HomeHandler {
	return &HomeHandler{productRepo: productRepo, render: render}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bestsellers, err := h.productRepo.GetBestsellers(ctx, 8)
	if err != nil {
		log.Printf("HomeHandler.Home: falha ao buscar mais vendidos: %v", err)
	}

	newArrivals, err := h.productRepo.GetNewArrivals(ctx, 8)
	if err != nil {
		log.Printf("HomeHandler.Home: falha ao buscar novidades: %v", err)
	}

	pageSpecificData := map[string]interface{}{
		"Title":       "SITEBAUTY - Beleza e Cosméticos",
		"Bestsellers": bestsellers,
		"NewArrivals": newArrivals,
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "home", datas)
}
