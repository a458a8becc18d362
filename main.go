package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cart"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/cmd"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/configs"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/routes"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/services"
	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/sessions"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("❌ Falha na conexão com o banco:", err)
	}
	log.Println("✅ Banco de dados conectado.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("❌ Falha ao carregar chaves de sessão:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Sessões inicializadas.")

	mailer := services.NewMailer(services.MailConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})

	var publisher *services.OrderPublisher
	if env.AmqpURL != "" {
		publisher, err = services.NewOrderPublisher(env.AmqpURL)
		if err != nil {
			log.Println("⚠️ RabbitMQ indisponível, eventos de pedido desativados:", err)
			publisher = nil
		} else {
			defer publisher.Close()
			log.Println("✅ Publicador de eventos conectado.")
		}
	}

	router := routes.NewRouter(routes.Deps{
		DB:           db,
		SessionStore: sessionStore,
		Carts:        cart.NewStore(),
		Publisher:    publisher,
		Mailer:       mailer,
		CSRFAuthKey:  keys.AuthKey,
		Secure:       env.AppEnv == "production",
	})

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Servidor ouvindo em %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("❌ Servidor encerrado:", err)
	}
}
