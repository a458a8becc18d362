package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/breadcrumb"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const productsPerPage = 12

type ProductHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, render *render.Render) *ProductHandler {
	return &ProductHandler{productRepo: productRepo, render: render}
}

// ProductList lista o catálogo com paginação, filtro por categoria e busca
// por substring em nome, marca e descrição.
func (h *ProductHandler) ProductList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * productsPerPage

	categorySlug := mux.Vars(r)["category"]
	if categorySlug == "" {
		categorySlug = r.URL.Query().Get("categoria")
	}
	keyword := r.URL.Query().Get("busca")

	var (
		products []models.Product
		total    int64
	)

	switch {
	case keyword != "":
		products, total, err = h.productRepo.SearchProductsPaginated(ctx, keyword, productsPerPage, offset)
	case categorySlug != "":
		products, total, err = h.productRepo.GetByCategorySlugPaginated(ctx, categorySlug, productsPerPage, offset)
	default:
		products, total, err = h.productRepo.GetPaginated(ctx, productsPerPage, offset)
	}
	if err != nil {
		log.Printf("ProductHandler.ProductList: falha ao listar produtos: %v", err)
		http.Error(w, "Falha ao carregar produtos", http.StatusInternalServerError)
		return
	}

	totalPages := int((total + productsPerPage - 1) / productsPerPage)

	pageSpecificData := map[string]interface{}{
		"Title":       "Produtos",
		"Products":    products,
		"Keyword":     keyword,
		"Category":    categorySlug,
		"CurrentPage": page,
		"TotalPages":  totalPages,
		"Total":       total,
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Produtos", URL: "/produtos"}},
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "products", datas)
}

// ProductDetail mostra um produto pelo slug, com variantes quando existirem.
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("ProductHandler.ProductDetail: falha ao buscar produto %s: %v", slug, err)
		http.Error(w, "Falha ao carregar produto", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	status := r.URL.Query().Get("status")
	message := r.URL.Query().Get("message")

	pageSpecificData := map[string]interface{}{
		"Title":         product.Name,
		"Product":       product,
		"HasVariants":   product.HasVariants(),
		"MessageStatus": status,
		"Message":       message,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Produtos", URL: "/produtos"},
			{Name: product.Name, URL: "/produto/" + product.Slug},
		},
	}

	datas := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "product_detail", datas)
}
