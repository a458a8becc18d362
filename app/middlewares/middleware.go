package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/helpers"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/sessions"
)

// SessionContextMiddleware coloca o userID e o cart ID da sessão no contexto
// da requisição. O cart ID é criado na primeira visita.
func SessionContextMiddleware(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := store.GetUserID(r); userID != "" {
				ctx = context.WithValue(ctx, helpers.ContextKeyUserID, userID)
			}

			cartID, err := store.GetOrCreateCartID(w, r)
			if err != nil {
				log.Printf("SessionContextMiddleware: erro ao obter cart ID: %v", err)
			} else {
				ctx = context.WithValue(ctx, helpers.ContextKeyCartID, cartID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartCountMiddleware expõe a contagem de itens do carrinho da sessão para o
// layout (badge no cabeçalho).
func CartCountMiddleware(carts *cart.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := 0
			if cartID := helpers.GetCartIDFromContext(r.Context()); cartID != "" {
				count = carts.TotalItems(cartID)
			}

			ctx := context.WithValue(r.Context(), helpers.CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLoginMiddleware redireciona visitantes para o login. Operações de
// carrinho nunca passam por aqui; só checkout e conta.
func RequireLoginMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.GetUserIDFromContext(r.Context()) == "" {
			http.Redirect(w, r, "/login?status=warning&message="+url.QueryEscape("Você precisa estar logado."), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
