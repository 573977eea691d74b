// CLI administrativa del canal de revendedores: el frente de texto sobre el
// mismo cliente (sesión, stores y guardia de rutas) que usaba el panel web.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tu-usuario/admin-revendedores/internal/application/guard"
	"github.com/tu-usuario/admin-revendedores/internal/application/session"
	"github.com/tu-usuario/admin-revendedores/internal/application/store"
	"github.com/tu-usuario/admin-revendedores/internal/domain"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/credentials"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/media"
	"github.com/tu-usuario/admin-revendedores/internal/notify"
	"github.com/tu-usuario/admin-revendedores/pkg/config"
	"github.com/tu-usuario/admin-revendedores/pkg/logger"
)

// app cableado completo del cliente.
type app struct {
	cfg *config.Config
	log *logger.Logger
	rec *notify.Recorder

	session   *session.Manager
	products  *store.Products
	orders    *store.Orders
	resellers *store.Resellers
	promos    *store.Promos
}

// sectionRoles roles requeridos por sección, el equivalente de la tabla de
// rutas del panel. Una sección sin entrada admite cualquier sesión.
var sectionRoles = map[string][]entity.Role{
	"orders":    {entity.RoleAdministrador, entity.RoleEditor},
	"resellers": {entity.RoleAdministrador, entity.RoleEditor},
	"promos":    {entity.RoleAdministrador, entity.RoleEditor},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	a := newApp(cfg, log)
	// La inicialización de la sesión se completa antes de evaluar cualquier
	// comando protegido.
	a.session.Init()

	err = a.run(context.Background(), os.Args[1], os.Args[2:])
	a.flushNotifications()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config, log *logger.Logger) *app {
	apiClient := api.New(cfg.API.BaseURL)
	creds := credentials.New(cfg.API.CredentialsFile())
	mgr := session.NewManager(apiClient, creds, log)
	rec := &notify.Recorder{}
	uploader := media.New(cfg.Media.UploadURL, cfg.Media.UploadPreset)

	return &app{
		cfg:       cfg,
		log:       log,
		rec:       rec,
		session:   mgr,
		products:  store.NewProducts(apiClient, mgr, rec, cfg.Search.Debounce()),
		orders:    store.NewOrders(apiClient, mgr, rec),
		resellers: store.NewResellers(apiClient, mgr, rec),
		promos:    store.NewPromos(apiClient, mgr, rec, uploader),
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		a.session.Logout()
		fmt.Println("sesión cerrada")
		return nil
	case "whoami":
		return a.cmdWhoami()
	case "register":
		return a.cmdRegister(ctx, args)
	case "forgot-password":
		return a.cmdForgotPassword(ctx, args)
	case "reset-password":
		return a.cmdResetPassword(ctx, args)
	case "products":
		return a.section(cmd, func() error { return a.cmdProducts(ctx, args) })
	case "orders":
		return a.section(cmd, func() error { return a.cmdOrders(ctx, args) })
	case "resellers":
		return a.section(cmd, func() error { return a.cmdResellers(ctx, args) })
	case "promos":
		return a.section(cmd, func() error { return a.cmdPromos(ctx, args) })
	default:
		usage()
		return fmt.Errorf("comando desconocido: %s", cmd)
	}
}

// section aplica la guardia de ruta antes de entrar a una sección protegida.
func (a *app) section(name string, fn func() error) error {
	sess, _ := a.session.Current()
	decision := guard.Evaluate(a.session.State(), sess, sectionRoles[name]...)
	switch decision.Kind {
	case guard.KindLoading:
		return domain.ErrSessionNotReady
	case guard.KindRedirect:
		if decision.Notice != "" {
			a.rec.Error(decision.Notice)
		}
		return fmt.Errorf("redirigido a %s", decision.Target)
	}
	return fn()
}

// flushNotifications vuelca a stderr las notificaciones acumuladas, el
// reemplazo de los avisos transitorios del panel.
func (a *app) flushNotifications() {
	for _, msg := range a.rec.Successes {
		fmt.Fprintln(os.Stderr, "✔", msg)
	}
	for _, msg := range a.rec.Errors {
		fmt.Fprintln(os.Stderr, "✘", msg)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `uso: admin <comando> [flags]

  login | logout | whoami | register | forgot-password | reset-password
  products   list | search | get | create | update | delete
  orders     list | get | set-status | set-items
  resellers  list | get | create | update | delete | reset-code
  promos     hero|videos|ads list | public | create | reorder | delete
             videos upload`)
}
