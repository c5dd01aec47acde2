package views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestWizard_ServiceStepEscapesAndDelays(t *testing.T) {
	html := render(t, Wizard(WizardView{
		WorkerUUID:     "w-1",
		WorkerName:     "João <Barbeiro>",
		Step:           domain.StepService,
		Services:       []domain.Service{{ID: 42, Name: "Corte & Barba", Price: 45, DurationMinutes: 50}},
		SelectionDelay: 300 * time.Millisecond,
	}))

	assert.Contains(t, html, `data-step="service"`)
	assert.Contains(t, html, "João &lt;Barbeiro&gt;")
	assert.Contains(t, html, "Corte &amp; Barba")
	assert.Contains(t, html, "R$ 45,00 · 50 min")
	assert.Contains(t, html, `hx-trigger="submit delay:300ms"`)
	assert.Contains(t, html, `action="/book/w-1/select"`)
	assert.Contains(t, html, `name="value" value="42"`)
}

func TestWizard_TimeStepStates(t *testing.T) {
	base := WizardView{
		WorkerUUID: "w-1",
		Step:       domain.StepTime,
		Selection:  domain.Selection{ServiceID: 42, Date: "2025-03-10"},
	}

	notWorking := base
	assert.Contains(t, render(t, Wizard(notWorking)), MsgNotWorking)

	failed := base
	failed.SlotsError = true
	assert.Contains(t, render(t, Wizard(failed)), MsgSlotsError)

	empty := base
	empty.IsWorking = true
	assert.Contains(t, render(t, Wizard(empty)), MsgNoSlots)

	withSlots := base
	withSlots.IsWorking = true
	withSlots.Slots = []types.TimeString{"14:30"}
	html := render(t, Wizard(withSlots))
	assert.Contains(t, html, `action="/book/w-1/select?date=2025-03-10&amp;serviceID=42"`)
	assert.Contains(t, html, `name="value" value="14:30"`)
}

func TestWizard_ConfirmStep(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	v := WizardView{
		WorkerUUID:    "w-1",
		Step:          domain.StepConfirm,
		Selection:     domain.Selection{ServiceID: 42, Date: "2025-03-10", Time: "14:30"},
		ScheduledAt:   time.Date(2025, 3, 10, 14, 30, 0, 0, loc),
		Authenticated: true,
		Error:         MsgSlotUnavailable,
	}

	html := render(t, Wizard(v))
	assert.Contains(t, html, "segunda-feira, 10 de março de 2025 às 14:30")
	assert.Contains(t, html, `data-scheduled-at="2025-03-10T14:30:00"`)
	assert.Contains(t, html, MsgSlotUnavailable)
	assert.Contains(t, html, `id="confirm-form"`)
	assert.Contains(t, html, `action="/book/w-1/confirm?date=2025-03-10&amp;serviceID=42&amp;time=14%3A30"`)

	v.Authenticated = false
	v.Error = ""
	html = render(t, Wizard(v))
	assert.Contains(t, html, `id="registration-form"`)
	assert.NotContains(t, html, `id="confirm-form"`)

	v.Registration = &RegistrationView{RegistrationID: "reg-1", MaskedPhone: "*********4321"}
	html = render(t, Wizard(v))
	assert.Contains(t, html, `id="verification-form"`)
	assert.Contains(t, html, `name="registrationID" value="reg-1"`)
}

func TestPage_WrapsBody(t *testing.T) {
	html := render(t, Page("Agendar", NotFound("Barbeiro não encontrado")))

	assert.Contains(t, html, `<html lang="pt-BR">`)
	assert.Contains(t, html, "htmx.org")
	assert.Contains(t, html, "wizard:history-back")
	assert.Contains(t, html, "Barbeiro não encontrado")
}

func TestFormat(t *testing.T) {
	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "seg, 10 mar", DayLabel(d))
	assert.Equal(t, "R$ 1234,50", Price(1234.5))
	assert.Equal(t, "1h30", Duration(90))
	assert.Equal(t, "1h", Duration(60))
	assert.Equal(t, "", Duration(0))
}
