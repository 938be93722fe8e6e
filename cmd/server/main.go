package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/ryzendominyx-cloud/finance-app/internal/advisor"
	"github.com/ryzendominyx-cloud/finance-app/internal/config"
	"github.com/ryzendominyx-cloud/finance-app/internal/database"
	"github.com/ryzendominyx-cloud/finance-app/internal/handlers"
	"github.com/ryzendominyx-cloud/finance-app/internal/logger"
	"github.com/ryzendominyx-cloud/finance-app/internal/market"
	"github.com/ryzendominyx-cloud/finance-app/internal/store"
	"github.com/ryzendominyx-cloud/finance-app/internal/voice"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	st := store.New(database.NewSnapshots(db))
	adv := advisor.NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel)

	sim := market.New(time.Now().UnixNano(), time.Second)
	sim.Start(ctx)
	defer sim.Stop()

	vc := voice.NewManager()
	defer vc.Close()

	h := handlers.New(st, adv, sim, vc)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Chat
	r.Post("/api/chat", h.Chat)
	r.Get("/api/chat/messages", h.ChatMessages)

	// Transactions
	r.Get("/api/transactions", h.ListTransactions)
	r.Post("/api/transactions", h.CreateTransaction)
	r.Put("/api/transactions/{id}", h.EditTransaction)
	r.Delete("/api/transactions/{id}", h.DeleteTransaction)

	// Habits
	r.Get("/api/habits", h.ListHabits)
	r.Post("/api/habits", h.CreateHabit)
	r.Post("/api/habits/{id}/toggle", h.ToggleHabit)

	// Investments
	r.Get("/api/investments", h.ListInvestments)
	r.Post("/api/investments", h.CreateInvestment)

	// Goals
	r.Get("/api/goals", h.ListGoals)
	r.Post("/api/goals", h.CreateGoal)
	r.Patch("/api/goals/{id}/progress", h.UpdateGoalProgress)
	r.Delete("/api/goals/{id}", h.DeleteGoal)

	// Gamification + reports
	r.Get("/api/progress", h.GetProgress)
	r.Get("/api/reports/summary", h.ReportSummary)
	r.Get("/api/tutorial", h.GetTutorial)
	r.Post("/api/tutorial/dismiss", h.DismissTutorial)

	// Trade simulator
	r.Get("/api/market/quote", h.MarketQuote)
	r.Post("/api/market/buy", h.MarketBuy)
	r.Post("/api/market/sell", h.MarketSell)

	// Live voice channel lifecycle
	r.Post("/api/voice/start", h.VoiceStart)
	r.Post("/api/voice/stop", h.VoiceStop)

	srv := &http.Server{Addr: ":" + cfg.ServerPort, Handler: r}

	go func() {
		log.Infof("Server starting on http://localhost:%s", cfg.ServerPort)
		for _, ip := range lanIPs() {
			log.Infof("LAN access: http://%s:%s", ip, cfg.ServerPort)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("Shutdown: %v", err)
	}
}

func lanIPs() []string {
	var ips []string
	ifaces, err := net.Interfaces()
	if err != nil {
		return ips
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil {
				continue
			}
			ip = ip.To4()
			if ip == nil {
				continue
			}
			ips = append(ips, ip.String())
		}
	}
	return ips
}
