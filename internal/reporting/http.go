package reporting

import (
	"net/http"
	"time"

	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/internal/platform/validate"
)

// Handler serves the analytics dashboard and the report builder. Its
// endpoints are registered inside the admin router, which owns the role gate.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// parseWindow reads the optional from/to query parameters as dates.
func parseWindow(request *http.Request) (time.Time, time.Time, error) {
	var from, to time.Time
	queryValues := request.URL.Query()

	if raw := queryValues.Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, validate.RequiredError(FieldFrom, "must be a YYYY-MM-DD date")
		}
		from = parsed
	}
	if raw := queryValues.Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, validate.RequiredError(FieldTo, "must be a YYYY-MM-DD date")
		}
		to = parsed
	}

	return from, to, nil
}

func (handler *Handler) Analytics(writer http.ResponseWriter, request *http.Request) {
	from, to, err := parseWindow(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	analytics, err := handler.service.Analytics(request.Context(), from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, analytics)
}

func (handler *Handler) Report(writer http.ResponseWriter, request *http.Request) {
	from, to, err := parseWindow(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reportType := ReportType(request.URL.Query().Get("type"))

	report, err := handler.service.Build(request.Context(), reportType, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}
