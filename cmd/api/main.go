package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/growthdesk/crm-backend/internal/directory"
	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/infra/database"
	"github.com/growthdesk/crm-backend/internal/infra/http/handlers"
	appmw "github.com/growthdesk/crm-backend/internal/infra/http/middleware"
	"github.com/growthdesk/crm-backend/internal/infra/mail"
	"github.com/growthdesk/crm-backend/internal/infra/queue"
	"github.com/growthdesk/crm-backend/internal/store"
)

func main() {
	godotenv.Load()

	// Sem credencial de banco não sobe nada: é o aviso bloqueante de
	// conectividade. O "retry" é o operador corrigir o .env e subir de novo.
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("❌ DATABASE_URL não configurada. Conecte o Postgres antes de subir o servidor.")
	}

	db, err := database.NewDBConnection(connString)
	if err != nil {
		log.Fatalf("❌ Sem conexão com o banco: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("❌ Migração falhou: %v", err)
	}

	ctx := context.Background()

	// RabbitMQ é opcional: sem ele o CRM funciona, só não manda aviso de
	// atribuição por email.
	var rabbitConn *amqp.Connection
	var producer queue.ProducerInterface
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"), host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatalf("❌ RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)

		// Worker: consome a fila de atribuições e dispara os emails
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// 1. Directory (os handlers de lead resolvem o responsável nela)
	dir, err := directory.Load(ctx, database.NewUserRepository(db))
	if err != nil {
		log.Fatalf("❌ Falha ao carregar usuários: %v", err)
	}

	// 2. Stores, um por tabela
	leads := store.New[entity.Lead, entity.LeadPatch](
		"leads", database.NewLeadRepository(db), entity.Lead.Merge, entity.Lead.SearchText,
	)
	partners := store.New[entity.Partner, entity.PartnerPatch](
		"partners", database.NewPartnerRepository(db), entity.Partner.Merge, entity.Partner.SearchText,
	)
	clients := store.New[entity.Client, entity.ClientPatch](
		"clients", database.NewClientRepository(db), entity.Client.Merge, entity.Client.SearchText,
	)
	interactions := store.New[entity.Interaction, entity.InteractionPatch](
		"interactions", database.NewInteractionRepository(db), entity.Interaction.Merge, entity.Interaction.SearchText,
	)

	// 3. Carga inicial. Falha não derruba o boot: a lista fica vazia até
	// um refresh ou evento do feed dar certo.
	if err := leads.Load(ctx); err != nil {
		log.Printf("⚠️ Carga inicial de leads falhou: %v", err)
	}
	if err := partners.Load(ctx); err != nil {
		log.Printf("⚠️ Carga inicial de partners falhou: %v", err)
	}
	if err := clients.Load(ctx); err != nil {
		log.Printf("⚠️ Carga inicial de clients falhou: %v", err)
	}
	if err := interactions.Load(ctx); err != nil {
		log.Printf("⚠️ Carga inicial de interactions falhou: %v", err)
	}

	// 4. Change feed: LISTEN crm_changes → reload total do store da tabela
	feed := database.NewChangeListener(connString)
	feed.OnEvent = appmw.RecordFeedEvent

	leads.Watch(ctx, feed)
	partners.Watch(ctx, feed)
	clients.Watch(ctx, feed)
	interactions.Watch(ctx, feed)

	if err := feed.Start(ctx); err != nil {
		log.Printf("⚠️ Change feed indisponível, sem atualização ao vivo: %v", err)
	}

	// 5. Handlers
	leadRes := handlers.NewLeadResource(leads, dir, producer)
	partnerRes := handlers.NewPartnerResource(partners)
	clientRes := handlers.NewClientResource(clients)
	interactionRes := handlers.NewInteractionResource(interactions)
	userHandler := handlers.NewUserHandler(dir)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(api chi.Router) {
		api.Route("/leads", leadRes.Mount)
		api.Route("/partners", partnerRes.Mount)
		api.Route("/clients", clientRes.Mount)
		api.Route("/interactions", interactionRes.Mount)
		api.Get("/users", userHandler.HandleList)
		api.Get("/users/{id}", userHandler.HandleGet)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 CRM backend rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
