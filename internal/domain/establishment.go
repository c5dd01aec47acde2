package domain

// Service услуга, которую мастер оказывает в заведении (worker-establishment-service)
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// Worker мастер и его услуги
type Worker struct {
	UUID            string
	Name            string
	EstablishmentID int64
	Services        []Service
}

// FindService ищет услугу мастера по ID
func (w *Worker) FindService(id int64) (Service, bool) {
	for _, s := range w.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Establishment барбершоп
type Establishment struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	PlanID  *int64
}

// Plan тарифный план подписки
type Plan struct {
	ID           int64
	Name         string
	PriceMonthly float64
	MaxWorkers   int
}

// Checkout данные экрана оформления подписки
type Checkout struct {
	Establishment Establishment
	Plans         []Plan
}
