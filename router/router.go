package router

import (
	"context"
	"fmt"
	"net/http"

	"nft-ticketing-backend/clock"
	"nft-ticketing-backend/config"
	"nft-ticketing-backend/event"
	"nft-ticketing-backend/factory"
	"nft-ticketing-backend/handler"
	"nft-ticketing-backend/locator"
	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/metrics"
	"nft-ticketing-backend/middleware"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/response"
	"nft-ticketing-backend/sale"
	"nft-ticketing-backend/staff"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

// Services is everything the HTTP layer is wired to.
type Services struct {
	Compiler  *sale.Compiler
	Events    *event.Service
	Tickets   *redemption.Service
	Codec     locator.ReferenceCodec
	Issuer    *locator.Issuer
	Staff     *staff.Authenticator
	Metrics   *metrics.Metrics
	RateLimit *middleware.RateLimiter
}

// Router returns the router for all the API handlers, built from configuration.
func Router(ctx context.Context, f factory.Factory) *mux.Router {
	return New(Build(ctx, f))
}

// Build constructs the services from viper configuration. Any misconfiguration
// is fatal.
func Build(ctx context.Context, f factory.Factory) Services {
	clk := clock.NewSystem()
	m := metrics.New()

	catalog, err := sale.LoadCatalog(viper.GetString(config.CatalogPath))
	if err != nil {
		logger.Fatalf(ctx, "router: error loading currency catalog: %+v", err)
	}
	policy, err := sale.PolicyByName(viper.GetString(config.CurrencyPolicy))
	if err != nil {
		logger.Fatalf(ctx, "router: %+v", err)
	}

	codec, err := locator.New(
		viper.GetString(config.LocatorScheme),
		viper.GetString(config.LocatorBaseURL),
		f.Secret(ctx, config.VaultLocatorKey, config.LocatorSecret),
		viper.GetDuration(config.LocatorTTL),
	)
	if err != nil {
		logger.Fatalf(ctx, "router: error creating locator: %+v", err)
	}

	auth, err := staff.New(
		viper.GetStringMapString(config.StaffTOTPSecrets),
		[]byte(f.Secret(ctx, config.VaultStaffKey, config.StaffSessionSecret)),
		viper.GetDuration(config.StaffSessionTTL),
		clk,
	)
	if err != nil {
		logger.Fatalf(ctx, "router: error creating staff authenticator: %+v", err)
	}

	tickets, events := f.Stores(ctx)
	logger.Infof(ctx, "router: using %s storage with %d payment methods", viper.GetString(config.StorageBackend), catalog.Len())

	return Services{
		Compiler:  sale.NewCompiler(catalog, sale.WithCurrencyPolicy(policy)),
		Events:    event.NewEvent(events, clk),
		Tickets:   redemption.NewService(tickets, clk, redemption.WithRecorder(m)),
		Codec:     codec,
		Issuer:    locator.NewIssuer(codec, viper.GetInt(config.QRSize)),
		Staff:     auth,
		Metrics:   m,
		RateLimit: middleware.NewRateLimiter(viper.GetFloat64(config.ValidateRPS), viper.GetInt(config.ValidateBurst)),
	}
}

func New(s Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	})

	r.Use(middleware.AccessLog)
	r.Use(middleware.SetContentTypeHeader)

	r.HandleFunc("/healthcheck", handler.Healthcheck).Methods(http.MethodGet)
	r.Handle("/metrics", s.Metrics.Handler()).Methods(http.MethodGet)
	baseRouter := r.PathPrefix("/v1").Subrouter()

	baseRouter.HandleFunc("/sale/compile", handler.CompileSale(s.Compiler, s.Metrics)).Methods(http.MethodPost)

	eventRouter := baseRouter.PathPrefix("/events").Subrouter()
	eventRouter.HandleFunc("", handler.CreateEvent(s.Events)).Methods(http.MethodPost)
	eventRouter.HandleFunc("/{eventID}", handler.GetEvent(s.Events)).Methods(http.MethodGet)
	eventRouter.HandleFunc("/{eventID}/sale", handler.EventSale(s.Events, s.Compiler, s.Metrics)).Methods(http.MethodGet)

	ticketRouter := baseRouter.PathPrefix("/tickets").Subrouter()
	ticketRouter.HandleFunc("", handler.RegisterTicket(s.Tickets, s.Issuer)).Methods(http.MethodPost)
	ticketRouter.HandleFunc("/{contractAddress}/{tokenID}/qr", handler.TicketQR(s.Tickets, s.Issuer)).Methods(http.MethodGet)

	validateRouter := baseRouter.PathPrefix("/validate").Subrouter()
	validateRouter.Use(s.RateLimit.Middleware)
	validateRouter.HandleFunc("", handler.LookupTicket(s.Codec, s.Tickets)).Methods(http.MethodGet)
	validateRouter.Handle("", middleware.RequireStaff(s.Staff)(handler.RedeemTicket(s.Codec, s.Tickets))).Methods(http.MethodPost)

	baseRouter.HandleFunc("/staff/session", handler.StaffSession(s.Staff)).Methods(http.MethodPost)

	return r
}
