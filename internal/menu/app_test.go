package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"rescue-animals/internal/adapters/auth/local"
	"rescue-animals/internal/adapters/storage/memory"
	"rescue-animals/internal/domain/animals"
	"rescue-animals/internal/platform/metrics"
	"rescue-animals/internal/ports/auth"
	"rescue-animals/internal/seed"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type harness struct {
	svc     *animals.Service
	metrics *metrics.Metrics
	out     *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	repo := memory.NewAnimalRepo()
	_, err := seed.Load(context.Background(), repo)
	require.NoError(t, err)

	m := metrics.New()
	return &harness{
		svc:     animals.NewService(repo, animals.WithMetrics(m), animals.WithVetClearanceRequired(true)),
		metrics: m,
		out:     &bytes.Buffer{},
	}
}

func (h *harness) run(t *testing.T, lines ...string) error {
	t.Helper()
	users := local.NewStoreWithCost(bcrypt.MinCost)
	require.NoError(t, users.AddUser("admin", "AdminPass", auth.RoleAdmin))
	require.NoError(t, users.AddUser("customer", "CustomerPass", auth.RoleCustomer))

	app := New(Options{
		Service:       h.svc,
		Authenticator: users,
		Metrics:       h.metrics,
		In:            strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:           h.out,
	})
	return app.Run(context.Background())
}

func TestRun_AdminIntakeDog(t *testing.T) {
	h := newHarness(t)

	err := h.run(t,
		"admin", "AdminPass",
		"1", "Max", "Boxer", "MALE", "zero", "4", "-3", "30,5", "13-45-2020", "03-14-2021",
		"Canada", "phase 1", "Phase II", "Canada",
		"1", "max",
		"q",
	)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "Login successful. Role: admin")
	assert.Contains(t, out, "Invalid input. Please enter a whole number.")
	assert.Contains(t, out, "Value must be greater than zero.")
	assert.Contains(t, out, "Invalid date.")
	assert.Contains(t, out, "Invalid training status.")
	assert.Contains(t, out, "Max has been added.")
	assert.Contains(t, out, "This animal is already in our system.")
	assert.Contains(t, out, "Thanks for using Grazioso Salvare.")

	got, err := h.svc.FindByName(context.Background(), "Max")
	require.NoError(t, err)
	assert.Equal(t, 30.5, got.Weight)
	assert.Equal(t, animals.StatusPhaseII, got.TrainingStatus)
	assert.Equal(t, animals.GenderMale, got.Gender)
}

func TestRun_AdminIntakeMonkeyRejectsSpecies(t *testing.T) {
	h := newHarness(t)

	err := h.run(t,
		"admin", "AdminPass",
		"2", "Kong", "Gorilla",
		"2", "Abu", "capuchin", "male", "2", "4.2", "06-01-2022", "Brazil", "intake", "Brazil", "10", "30", "35",
		"q",
	)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "We do not accept this species.")
	assert.Contains(t, out, "Abu has been added.")

	abu, err := h.svc.FindByName(context.Background(), "abu")
	require.NoError(t, err)
	assert.Equal(t, "Capuchin", abu.Monkey.Species)

	ok, err := h.svc.Exists(context.Background(), "Kong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_AdminAdvanceTraining(t *testing.T) {
	h := newHarness(t)

	err := h.run(t,
		"admin", "AdminPass",
		"3", "george", "n",
		"3", "George", "y",
		"3", "rex", "n",
		"3", "Rex", "y",
		"3", "Bella",
		"3", "Nobody",
		"q",
	)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "George is currently in 'intake'.")
	assert.Contains(t, out, "Advance Rex to next status? (y/n)")
	assert.NotContains(t, out, "george is currently")
	assert.Contains(t, out, "Cannot advance. Animal must be vet-cleared to begin training.")
	assert.Contains(t, out, "George is now vet-cleared and advanced from intake to Phase I.")
	assert.Contains(t, out, "No changes made.")
	assert.Contains(t, out, "Rex advanced from Phase I to Phase II.")
	assert.Contains(t, out, "Bella is already 'in service' and cannot advance further.")
	assert.Contains(t, out, "Nobody not found.")

	rex, err := h.svc.FindByName(context.Background(), "Rex")
	require.NoError(t, err)
	assert.Equal(t, animals.StatusPhaseII, rex.TrainingStatus)
}

func TestRun_AdminListsAndStats(t *testing.T) {
	h := newHarness(t)

	err := h.run(t,
		"admin", "AdminPass",
		"4", "5", "6", "8", "9",
		"q",
	)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, tableHeader)
	assert.Contains(t, out, "Spot | German Shepherd | intake | false | United States | United States")
	assert.Contains(t, out, "Yoda | Squirrel Monkey | intake | false | Canada | Canada")
	assert.Contains(t, out, "rescue_auth_login_failures_total = 0")
	assert.Contains(t, out, "Invalid choice. Try again.")
}

func TestRun_CustomerSearchAndReserve(t *testing.T) {
	h := newHarness(t)

	err := h.run(t,
		"customer", "CustomerPass",
		"2", "", "", "yes", "canada", "",
		"2", "", "", "", "", "Peru",
		"3", "lola",
		"3", "Lola",
		"3", "Spot",
		"3", "Fido",
		"1",
		"q",
	)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "Bella | Chihuahua | in service | true | Canada | Canada")
	assert.Contains(t, out, "No animals to display.")
	assert.Contains(t, out, "Lola has been reserved.")
	assert.Contains(t, out, "Lola is already reserved.")
	assert.Contains(t, out, "Spot is not eligible for reservation until it is in service.")
	assert.Contains(t, out, "Fido not found. Please try again.")
	assert.NotContains(t, out, "Lola | Tamarin | in service | false")

	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.Reservations.WithLabelValues("reserved")))
}

func TestRun_CustomerCannotReachAdminActions(t *testing.T) {
	h := newHarness(t)

	err := h.run(t,
		"customer", "CustomerPass",
		"8",
		"q",
	)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "Invalid choice. Try again.")
	assert.NotContains(t, out, "System Statistics")
}

func TestRun_TooManyFailedLogins(t *testing.T) {
	h := newHarness(t)

	err := h.run(t,
		"admin", "nope",
		"admin", "still nope",
		"customer", "AdminPass",
	)
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	out := h.out.String()
	assert.Contains(t, out, "Attempts remaining: 0")
	assert.Contains(t, out, "Too many failed login attempts.")
	assert.Equal(t, float64(3), testutil.ToFloat64(h.metrics.LoginFailures))
}

func TestRun_EndOfInputLogsOut(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "admin", "AdminPass", "4")
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Thanks for using Grazioso Salvare.")
}

func TestAllowed_RequiresPrincipal(t *testing.T) {
	a := New(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}})

	assert.False(t, a.allowed(context.Background(), auth.CapList))

	ctx := auth.WithPrincipal(context.Background(), auth.Principal{Username: "customer", Role: auth.RoleCustomer})
	assert.True(t, a.allowed(ctx, auth.CapReserve))
	assert.False(t, a.allowed(ctx, auth.CapIntake))
}
