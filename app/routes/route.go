package routes

import (
	"net/http"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/handlers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/middlewares"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/services"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/renderer"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Deps struct {
	DB           *gorm.DB
	SessionStore sessions.SessionStore
	Carts        *cart.Store
	Publisher    *services.OrderPublisher
	Mailer       *services.Mailer
	CSRFAuthKey  []byte
	Secure       bool
}

func NewRouter(deps Deps) http.Handler {
	router := newRouter(deps)
	csrfMiddleware := csrf.Protect(deps.CSRFAuthKey, csrf.Secure(deps.Secure), csrf.Path("/"))
	// A troca de método precisa acontecer antes do match de rota: o mux só
	// roda middlewares de Use depois de casar a rota, e um POST com
	// _method=PUT nunca casaria uma rota registrada como PUT.
	return csrfMiddleware(middlewares.MethodOverrideMiddleware(router))
}

func newRouter(deps Deps) *mux.Router {
	render := renderer.New()

	productRepo := repositories.NewProductRepository(deps.DB)
	userRepo := repositories.NewUserRepository(deps.DB)
	orderRepo := repositories.NewOrderRepository(deps.DB)
	favoriteRepo := repositories.NewFavoriteRepository(deps.DB)

	checkoutSvc := services.NewCheckoutService(orderRepo, userRepo, deps.Mailer, deps.Publisher)
	favoritesSvc := services.NewFavoritesService(favoriteRepo)

	homeHandler := handlers.NewHomeHandler(productRepo, render)
	productHandler := handlers.NewProductHandler(productRepo, render)
	cartHandler := handlers.NewCartHandler(deps.Carts, productRepo, render)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Carts, checkoutSvc, render)
	authHandler := handlers.NewAuthHandler(userRepo, deps.SessionStore, render)
	favoriteHandler := handlers.NewFavoriteHandler(favoritesSvc, productRepo, deps.SessionStore, render)
	accountHandler := handlers.NewAccountHandler(userRepo, orderRepo, render)

	router := mux.NewRouter()

	router.Use(middlewares.SessionContextMiddleware(deps.SessionStore))
	router.Use(middlewares.CartCountMiddleware(deps.Carts))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/produtos", productHandler.ProductList).Methods("GET")
	router.HandleFunc("/categoria/{category}", productHandler.ProductList).Methods("GET")
	router.HandleFunc("/produto/{slug}", productHandler.ProductDetail).Methods("GET")

	router.HandleFunc("/carrinho", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/carrinho", cartHandler.AddItemCart).Methods("POST")
	router.HandleFunc("/carrinho/item", cartHandler.UpdateCartItem).Methods("PUT")
	router.HandleFunc("/carrinho/item", cartHandler.DeleteCartItem).Methods("DELETE")
	router.HandleFunc("/carrinho/cupom", cartHandler.ApplyCoupon).Methods("POST")
	router.HandleFunc("/carrinho/count", cartHandler.GetCartCount).Methods("GET")

	router.HandleFunc("/favoritos", favoriteHandler.FavoritesGet).Methods("GET")
	router.HandleFunc("/favoritos", favoriteHandler.ToggleFavorite).Methods("POST")

	router.HandleFunc("/login", authHandler.LoginGet).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/cadastro", authHandler.RegisterPost).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	protected := router.NewRoute().Subrouter()
	protected.Use(middlewares.RequireLoginMiddleware)
	protected.HandleFunc("/checkout", checkoutHandler.CheckoutGet).Methods("GET")
	protected.HandleFunc("/checkout", checkoutHandler.CheckoutPost).Methods("POST")
	protected.HandleFunc("/minha-conta", accountHandler.MyAccount).Methods("GET")
	protected.HandleFunc("/minha-conta/pedidos/{orderNumber}", accountHandler.OrderDetail).Methods("GET")
	protected.HandleFunc("/minha-conta/senha", accountHandler.ChangePassword).Methods("POST")
	protected.HandleFunc("/minha-conta/email", accountHandler.ChangeEmail).Methods("POST")

	fs := http.FileServer(http.Dir("./public"))
	router.PathPrefix("/public/").Handler(http.StripPrefix("/public/", fs))

	return router
}
