package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"rescue-animals/internal/domain/animals"
	"rescue-animals/internal/platform/logger"
	"rescue-animals/internal/platform/metrics"
	"rescue-animals/internal/ports/auth"
)

var ErrTooManyAttempts = errors.New("too many failed login attempts")

const defaultMaxLoginAttempts = 3

type Options struct {
	Service       *animals.Service
	Authenticator auth.Authenticator
	Logger        logger.Logger    // opcional
	Metrics       *metrics.Metrics // opcional

	In  io.Reader
	Out io.Writer

	MaxLoginAttempts int
}

// App es el driver interactivo: login y menús por rol sobre el core.
type App struct {
	svc         *animals.Service
	auth        auth.Authenticator
	log         logger.Logger
	metrics     *metrics.Metrics
	p           *Prompter
	out         io.Writer
	maxAttempts int
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	maxAttempts := opts.MaxLoginAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxLoginAttempts
	}
	return &App{
		svc:         opts.Service,
		auth:        opts.Authenticator,
		log:         log,
		metrics:     opts.Metrics,
		p:           NewPrompter(opts.In, opts.Out),
		out:         opts.Out,
		maxAttempts: maxAttempts,
	}
}

// Run pide login y muestra el menú del rol hasta que el usuario sale.
// Fin de la entrada equivale a salir.
func (a *App) Run(ctx context.Context) error {
	principal, err := a.login(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	ctx = auth.WithPrincipal(ctx, principal)

	switch principal.Role {
	case auth.RoleAdmin:
		err = a.loop(ctx, "Rescue Animal System Menu (ADMIN)", a.adminItems())
	case auth.RoleCustomer:
		err = a.loop(ctx, "Rescue Animal System Menu (CUSTOMER)", a.customerItems())
	default:
		return fmt.Errorf("unknown role %q", principal.Role)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	a.printf("Thanks for using Grazioso Salvare.\n")
	return nil
}

func (a *App) login(ctx context.Context) (auth.Principal, error) {
	a.printf("\n--- Login Required ---\n")

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		username, err := a.p.Optional("Username: ")
		if err != nil {
			return auth.Principal{}, err
		}
		password, err := a.p.Optional("Password: ")
		if err != nil {
			return auth.Principal{}, err
		}

		principal, err := a.auth.Authenticate(ctx, username, password)
		if err == nil {
			a.log.Info("login succeeded", map[string]any{"user": principal.Username, "role": string(principal.Role)})
			a.printf("\nLogin successful. Role: %s\n\n", principal.Role)
			return principal, nil
		}
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			return auth.Principal{}, err
		}

		a.metrics.IncrementLoginFailures()
		a.log.Warn("login failed", map[string]any{"user": username, "attempt": attempt})
		a.printf("Invalid credentials. Attempts remaining: %d\n\n", a.maxAttempts-attempt)
	}

	a.printf("Too many failed login attempts.\n")
	return auth.Principal{}, ErrTooManyAttempts
}

type menuItem struct {
	key   string
	label string
	need  auth.Capability
	run   func(ctx context.Context) error
}

func (a *App) loop(ctx context.Context, title string, items []menuItem) error {
	for {
		a.printf("\n%s\n", title)
		for _, it := range items {
			a.printf("[%s] %s\n", it.key, it.label)
		}
		a.printf("[q] Logout\n\n")

		choice, err := a.p.Optional("Enter a menu selection: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(choice, "q") {
			a.printf("\nLogging out...\n\n")
			return nil
		}

		item, ok := findItem(items, choice)
		if !ok {
			a.printf("\nInvalid choice. Try again.\n")
			continue
		}
		if !a.allowed(ctx, item.need) {
			a.printf("\nYou are not allowed to perform this action.\n")
			continue
		}
		if err := item.run(ctx); err != nil {
			return err
		}
	}
}

func findItem(items []menuItem, key string) (menuItem, bool) {
	for _, it := range items {
		if it.key == key {
			return it, true
		}
	}
	return menuItem{}, false
}

func (a *App) allowed(ctx context.Context, c auth.Capability) bool {
	p, ok := auth.PrincipalFrom(ctx)
	return ok && p.Role.Allows(c)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
