package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "sitebauty-session"

	userIDSessionKey    = "userID"
	cartIDSessionKey    = "cartID"
	favoritesSessionKey = "favorites"
)

type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error

	// GetOrCreateCartID garante um cart ID estável por sessão.
	GetOrCreateCartID(w http.ResponseWriter, r *http.Request) (string, error)
	GetCartID(r *http.Request) string

	// Favoritos do visitante (armazenamento local do dispositivo). A lista
	// remota do usuário logado fica no banco, não aqui.
	GetLocalFavorites(r *http.Request) []string
	SetLocalFavorites(w http.ResponseWriter, r *http.Request, productIDs []string) error

	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) (*sessions.Session, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("Error getting session: %v", err)
	}
	return session, nil
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	userID, ok := session.Values[userIDSessionKey].(string)
	if !ok {
		return ""
	}
	return userID
}

func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, userIDSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetCartID(r *http.Request) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	cartID, ok := session.Values[cartIDSessionKey].(string)
	if !ok {
		return ""
	}
	return cartID
}

func (c *CookieSessionStore) GetOrCreateCartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return "", err
	}

	if cartID, ok := session.Values[cartIDSessionKey].(string); ok && cartID != "" {
		return cartID, nil
	}

	newCartID := uuid.New().String()
	session.Values[cartIDSessionKey] = newCartID
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return newCartID, nil
}

func (c *CookieSessionStore) GetLocalFavorites(r *http.Request) []string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return nil
	}
	favorites, ok := session.Values[favoritesSessionKey].([]string)
	if !ok {
		return nil
	}
	return favorites
}

func (c *CookieSessionStore) SetLocalFavorites(w http.ResponseWriter, r *http.Request, productIDs []string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[favoritesSessionKey] = productIDs
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
