package handlers

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
)

// Заголовки htmx
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXReplaceURL = "HX-Replace-Url"
	HeaderHXTrigger    = "HX-Trigger"
	HeaderHXReswap     = "HX-Reswap"
)

// EventHistoryBack событие, по которому страница выполняет history.back()
const EventHistoryBack = "wizard:history-back"

// IsHTMX проверяет, что запрос отправлен htmx
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// Render отрисовывает templ компонент с заданным статусом
func Render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return component.Render(r.Context(), w)
}

// ReplaceURL переводит браузер на target без новой записи в истории.
// htmx получает фрагмент через render и заголовок HX-Replace-Url, обычная форма - 303.
// render сам отвечает за запись ошибки в ответ.
func ReplaceURL(w http.ResponseWriter, r *http.Request, target string, render func()) {
	if !IsHTMX(r) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	w.Header().Set(HeaderHXReplaceURL, target)
	render()
}

// HistoryBack просит браузер вернуться на предыдущую страницу.
// Без htmx используется Referer. Если его нет или он указывает на ту же страницу,
// с которой отправлена форма (POST /x/back пришел со страницы /x), используется fallback.
func HistoryBack(w http.ResponseWriter, r *http.Request, fallback string) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXTrigger, EventHistoryBack)
		w.Header().Set(HeaderHXReswap, "none")
		w.WriteHeader(http.StatusOK)
		return
	}

	target := r.Referer()
	if target == "" || isOriginPage(target, r) {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// isOriginPage проверяет, что referer ведет на страницу, отправившую действие
func isOriginPage(referer string, r *http.Request) bool {
	u, err := url.Parse(referer)
	if err != nil {
		return true
	}
	if u.Host != "" && u.Host != r.Host {
		return false
	}

	page := path.Dir(r.URL.Path)
	return u.Path == page || u.Path == r.URL.Path || strings.HasPrefix(u.Path, page+"/")
}
