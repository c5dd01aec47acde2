package views

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

// Тексты состояний мастера записи
const (
	MsgSlotUnavailable = "Horário indisponível. Escolha outro horário."
	MsgNoSlots         = "Sem horários disponíveis para este dia."
	MsgNotWorking      = "O profissional não atende neste dia."
	MsgSlotsError      = "Erro ao carregar horários. Tente novamente."
)

// DayOption день в списке выбора даты
type DayOption struct {
	Date    string // YYYY-MM-DD
	Time    time.Time
	IsToday bool
}

// WizardView данные для отрисовки мастера записи
type WizardView struct {
	WorkerUUID     string
	WorkerName     string
	Step           domain.Step
	Selection      domain.Selection
	Services       []domain.Service
	Service        *domain.Service
	Days           []DayOption
	IsWorking      bool
	Slots          []types.TimeString
	SlotsError     bool
	ScheduledAt    time.Time
	Authenticated  bool
	SelectionDelay time.Duration

	// Error сообщение над формой подтверждения (например 409)
	Error string
	// Registration форма регистрации или ввода кода на шаге подтверждения
	Registration *RegistrationView
}

// RegistrationView состояние встроенной регистрации
type RegistrationView struct {
	Name           string
	Phone          string
	RegistrationID string // заполнен после отправки кода
	MaskedPhone    string
	SignIn         bool // номер уже зарегистрирован, код нужен для входа
	FieldErrors    map[string]string
	Error          string
}

// Verifying true, когда код уже отправлен
func (r *RegistrationView) Verifying() bool {
	return r != nil && r.RegistrationID != ""
}

// BookedView подтвержденная запись
type BookedView struct {
	WorkerUUID      string
	WorkerName      string
	ServiceName     string
	AppointmentUUID string
	ScheduledAt     time.Time
	Rescheduled     bool
}

// WizardURL адрес страницы мастера с состоянием в query
func WizardURL(workerUUID string, q url.Values) string {
	u := "/book/" + url.PathEscape(workerUUID)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func actionURL(workerUUID, action string, q url.Values) string {
	u := "/book/" + url.PathEscape(workerUUID) + "/" + action
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// WizardPage полная страница мастера записи
func WizardPage(v WizardView) templ.Component {
	return Page(pageTitle(v), Wizard(v))
}

// Wizard фрагмент #wizard; htmx заменяет его целиком при каждом переходе
func Wizard(v WizardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildWizardHTML(v))
		return err
	})
}

// BookedPage полная страница подтвержденной записи
func BookedPage(v BookedView) templ.Component {
	return Page("Agendamento confirmado", Booked(v))
}

// Booked фрагмент подтвержденной записи
func Booked(v BookedView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Agendamento confirmado!"
		if v.Rescheduled {
			title = "Reagendamento confirmado!"
		}

		var b strings.Builder
		b.WriteString(`<div id="wizard"><section id="booking-success" class="py-8 text-center">`)
		b.WriteString(`<h1 class="text-xl font-semibold">` + title + `</h1>`)
		summary := v.ServiceName
		if v.WorkerName != "" {
			summary += " com " + v.WorkerName
		}
		fmt.Fprintf(&b, `<p class="mt-2">%s</p>`, templ.EscapeString(summary))
		fmt.Fprintf(&b, `<p class="mt-1 text-neutral-600" data-scheduled-at="%s">%s</p>`,
			v.ScheduledAt.Format(domain.ScheduledAtFormat), templ.EscapeString(LongDate(v.ScheduledAt)))
		b.WriteString(`</section></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func pageTitle(v WizardView) string {
	if v.WorkerName == "" {
		return "Agendar"
	}
	return "Agendar com " + v.WorkerName
}

func buildWizardHTML(v WizardView) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id="wizard" data-step="%s">`, v.Step)
	fmt.Fprintf(&b, `<header class="mb-4"><p class="text-sm text-neutral-500">%s</p>`, templ.EscapeString(v.WorkerName))
	if v.Selection.IsReschedule() {
		b.WriteString(`<p class="text-xs text-amber-700">Reagendamento</p>`)
	}
	b.WriteString(`</header>`)

	switch v.Step {
	case domain.StepDate:
		writeDateStep(&b, v)
	case domain.StepTime:
		writeTimeStep(&b, v)
	case domain.StepConfirm:
		writeConfirmStep(&b, v)
	default:
		writeServiceStep(&b, v)
	}

	writeBackButton(&b, v)

	b.WriteString(`</div>`)
	return b.String()
}

func writeServiceStep(b *strings.Builder, v WizardView) {
	b.WriteString(`<h1 class="text-lg font-semibold">Escolha o serviço</h1>`)
	if len(v.Services) == 0 {
		b.WriteString(`<p class="mt-4 text-sm text-neutral-500">Nenhum serviço disponível.</p>`)
		return
	}

	b.WriteString(`<ul id="services" class="mt-4 space-y-2">`)
	for _, s := range v.Services {
		b.WriteString(`<li>`)
		sub := Price(s.Price)
		if d := Duration(s.DurationMinutes); d != "" {
			sub += " · " + d
		}
		writeOption(b, v, "service", strconv.FormatInt(s.ID, 10), s.Name, sub, s.ID == v.Selection.ServiceID)
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

func writeDateStep(b *strings.Builder, v WizardView) {
	b.WriteString(`<h1 class="text-lg font-semibold">Escolha a data</h1>`)
	writeServiceSummary(b, v)

	b.WriteString(`<ul id="days" class="mt-4 grid grid-cols-3 gap-2">`)
	for _, d := range v.Days {
		label := DayLabel(d.Time)
		sub := ""
		if d.IsToday {
			sub = "Hoje"
		}
		b.WriteString(`<li>`)
		writeOption(b, v, "date", d.Date, label, sub, d.Date == v.Selection.Date)
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

func writeTimeStep(b *strings.Builder, v WizardView) {
	b.WriteString(`<h1 class="text-lg font-semibold">Escolha o horário</h1>`)
	writeServiceSummary(b, v)

	switch {
	case v.SlotsError:
		writeNotice(b, "slots-error", MsgSlotsError)
	case !v.IsWorking:
		writeNotice(b, "not-working", MsgNotWorking)
	case len(v.Slots) == 0:
		writeNotice(b, "no-slots", MsgNoSlots)
	default:
		b.WriteString(`<ul id="slots" class="mt-4 grid grid-cols-4 gap-2">`)
		for _, s := range v.Slots {
			b.WriteString(`<li>`)
			writeOption(b, v, "time", s.String(), s.String(), "", s == v.Selection.Time)
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
	}
}

func writeConfirmStep(b *strings.Builder, v WizardView) {
	if v.Selection.IsReschedule() {
		b.WriteString(`<h1 class="text-lg font-semibold">Confirme o reagendamento</h1>`)
	} else {
		b.WriteString(`<h1 class="text-lg font-semibold">Confirme seu agendamento</h1>`)
	}
	writeServiceSummary(b, v)
	fmt.Fprintf(b, `<p id="scheduled-at" class="mt-2" data-scheduled-at="%s">%s</p>`,
		v.ScheduledAt.Format(domain.ScheduledAtFormat), templ.EscapeString(LongDate(v.ScheduledAt)))

	if v.Error != "" {
		fmt.Fprintf(b, `<p id="wizard-error" role="alert" class="mt-4 rounded bg-red-50 p-3 text-sm text-red-700">%s</p>`,
			templ.EscapeString(v.Error))
	}

	reg := v.Registration
	if reg == nil && !v.Authenticated {
		reg = &RegistrationView{}
	}

	switch {
	case reg.Verifying():
		writeVerificationForm(b, v, reg)
	case reg != nil:
		writeRegistrationForm(b, v, reg)
	default:
		target := templ.EscapeString(actionURL(v.WorkerUUID, "confirm", v.Selection.Query()))
		label := "Confirmar agendamento"
		if v.Selection.IsReschedule() {
			label = "Confirmar reagendamento"
		}
		fmt.Fprintf(b, `<form id="confirm-form" class="mt-6" method="post" action="%s" hx-post="%s" hx-target="#wizard" hx-swap="outerHTML" hx-disabled-elt="find button">`, target, target)
		fmt.Fprintf(b, `<button type="submit" class="w-full rounded bg-neutral-900 py-3 font-semibold text-white">%s</button></form>`, label)
	}
}

func writeRegistrationForm(b *strings.Builder, v WizardView, reg *RegistrationView) {
	target := templ.EscapeString(actionURL(v.WorkerUUID, "register", v.Selection.Query()))

	fmt.Fprintf(b, `<form id="registration-form" class="mt-6 space-y-3" method="post" action="%s" hx-post="%s" hx-target="#wizard" hx-swap="outerHTML" hx-disabled-elt="find button">`, target, target)
	b.WriteString(`<p class="text-sm text-neutral-600">Para concluir, informe seu nome e celular. Enviaremos um código por SMS.</p>`)
	if reg.Error != "" {
		fmt.Fprintf(b, `<p role="alert" class="text-sm text-red-700">%s</p>`, templ.EscapeString(reg.Error))
	}
	writeInput(b, "name", "Nome", "text", "name", reg.Name, reg.FieldErrors["name"])
	writeInput(b, "phone", "Celular", "tel", "tel", reg.Phone, reg.FieldErrors["phone"])
	b.WriteString(`<button type="submit" class="w-full rounded bg-neutral-900 py-3 font-semibold text-white">Receber código</button></form>`)
}

func writeVerificationForm(b *strings.Builder, v WizardView, reg *RegistrationView) {
	target := templ.EscapeString(actionURL(v.WorkerUUID, "verify", v.Selection.Query()))

	fmt.Fprintf(b, `<form id="verification-form" class="mt-6 space-y-3" method="post" action="%s" hx-post="%s" hx-target="#wizard" hx-swap="outerHTML" hx-disabled-elt="find button">`, target, target)
	fmt.Fprintf(b, `<input type="hidden" name="registrationID" value="%s"/><input type="hidden" name="maskedPhone" value="%s"/>`,
		templ.EscapeString(reg.RegistrationID), templ.EscapeString(reg.MaskedPhone))
	if reg.SignIn {
		b.WriteString(`<input type="hidden" name="signIn" value="1"/>`)
		fmt.Fprintf(b, `<p class="text-sm text-neutral-600">Este celular já possui cadastro. Enviamos um código para %s para você entrar.</p>`,
			templ.EscapeString(reg.MaskedPhone))
	} else {
		fmt.Fprintf(b, `<p class="text-sm text-neutral-600">Enviamos um código para %s.</p>`, templ.EscapeString(reg.MaskedPhone))
	}
	if reg.Error != "" {
		fmt.Fprintf(b, `<p role="alert" class="text-sm text-red-700">%s</p>`, templ.EscapeString(reg.Error))
	}
	writeInput(b, "code", "Código", "text", "one-time-code", "", reg.FieldErrors["code"])
	b.WriteString(`<button type="submit" class="w-full rounded bg-neutral-900 py-3 font-semibold text-white">Confirmar código</button></form>`)
}

func writeInput(b *strings.Builder, name, label, kind, autocomplete, value, fieldErr string) {
	fmt.Fprintf(b, `<label class="block text-sm font-medium" for="%s">%s</label>`, name, label)
	fmt.Fprintf(b, `<input id="%s" name="%s" type="%s" autocomplete="%s" value="%s" required class="mt-1 w-full rounded border px-3 py-2"/>`,
		name, name, kind, autocomplete, templ.EscapeString(value))
	if fieldErr != "" {
		fmt.Fprintf(b, `<p id="%s-error" class="text-xs text-red-700">%s</p>`, name, templ.EscapeString(fieldErr))
	}
}

func writeServiceSummary(b *strings.Builder, v WizardView) {
	if v.Service == nil {
		return
	}
	fmt.Fprintf(b, `<p id="selected-service" class="mt-1 text-sm text-neutral-600">%s · %s</p>`,
		templ.EscapeString(v.Service.Name), Price(v.Service.Price))
}

func writeNotice(b *strings.Builder, id, message string) {
	fmt.Fprintf(b, `<p id="%s" class="mt-4 text-sm text-neutral-500">%s</p>`, id, message)
}

// writeOption форма выбора одного значения. Переход выполняется после SelectionDelay,
// чтобы пользователь успел увидеть выделение; без JS форма отправляется обычным POST.
func writeOption(b *strings.Builder, v WizardView, action, value, label, sublabel string, selected bool) {
	target := templ.EscapeString(actionURL(v.WorkerUUID, "select", v.Selection.Query()))

	fmt.Fprintf(b, `<form method="post" action="%s" hx-post="%s" hx-target="#wizard" hx-swap="outerHTML" hx-trigger="submit delay:%dms">`,
		target, target, v.SelectionDelay.Milliseconds())
	fmt.Fprintf(b, `<input type="hidden" name="action" value="%s"/><input type="hidden" name="value" value="%s"/>`,
		action, templ.EscapeString(value))

	class := "w-full rounded border px-3 py-2 text-left"
	if selected {
		class += " border-neutral-900 bg-neutral-100"
	}
	fmt.Fprintf(b, `<button type="submit" class="%s" aria-pressed="%t">%s`, class, selected, templ.EscapeString(label))
	if sublabel != "" {
		fmt.Fprintf(b, `<span class="block text-xs text-neutral-500">%s</span>`, templ.EscapeString(sublabel))
	}
	b.WriteString(`</button></form>`)
}

func writeBackButton(b *strings.Builder, v WizardView) {
	target := templ.EscapeString(actionURL(v.WorkerUUID, "back", v.Selection.Query()))
	fmt.Fprintf(b, `<form class="mt-6" method="post" action="%s" hx-post="%s" hx-target="#wizard" hx-swap="outerHTML">`, target, target)
	b.WriteString(`<button type="submit" class="text-sm text-neutral-600 underline">Voltar</button></form>`)
}
