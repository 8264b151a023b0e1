package http

import (
	"net/http"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/calendar"
)

type CalendarHandler interface {
	Holidays(w http.ResponseWriter, r *http.Request)
	WeekInfo(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	oracle          calendar.Oracle
	scheduleService schedule.ScheduleService
}

func NewCalendarHandler(oracle calendar.Oracle, scheduleService schedule.ScheduleService) CalendarHandler {
	return &calendarHandlerImpl{
		oracle:          oracle,
		scheduleService: scheduleService,
	}
}

type holidayEntry struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// Holidays lists the public holidays in [start, end]. The range defaults
// to the current calendar year and is capped at two years.
func (h *calendarHandlerImpl) Holidays(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location())

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "start must be in YYYY-MM-DD format", nil)
			return
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "end must be in YYYY-MM-DD format", nil)
			return
		}
		end = parsed
	}

	if end.Before(start) {
		response.BadRequest(w, "end must not be before start", nil)
		return
	}
	if end.Sub(start) > 2*365*24*time.Hour {
		response.BadRequest(w, "range must not exceed two years", nil)
		return
	}

	holidays := []holidayEntry{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if name, ok := h.oracle.HolidayName(d); ok {
			holidays = append(holidays, holidayEntry{
				Date: d.Format("2006-01-02"),
				Name: name,
			})
		}
	}

	response.Success(w, holidays)
}

// WeekInfo returns the per-day breakdown and required shift count for the
// week containing week_start (any date in the week works).
func (h *calendarHandlerImpl) WeekInfo(w http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("week_start")
	if weekStart == "" {
		response.BadRequest(w, "week_start is required", nil)
		return
	}

	summary, err := h.scheduleService.WeekInfo(r.Context(), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
