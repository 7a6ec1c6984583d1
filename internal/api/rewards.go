package rewards

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	models "github.com/glkeru/loyalty/rewards/internal/models"
	service "github.com/glkeru/loyalty/rewards/internal/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	customerNotFound = "Customer does not exist"
)

type RewardsHandler struct {
	router *mux.Router
	serv   *service.RewardsService
	logger *zap.Logger
}

type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewHandler(serv *service.RewardsService, logger *zap.Logger) *RewardsHandler {
	router := mux.NewRouter()
	handler := &RewardsHandler{router, serv, logger}
	router.Use(MiddlewareLog(logger))
	router.HandleFunc("/rewards/calculate", handler.CalculateHandler).Methods(http.MethodPost)
	router.HandleFunc("/rewards/customer", handler.GetCustomerHandler).Methods(http.MethodGet)
	router.HandleFunc("/rewards/customers", handler.GetAllCustomersHandler).Methods(http.MethodGet)
	router.HandleFunc("/rewards/tiers", handler.GetTiersHandler).Methods(http.MethodGet)
	router.HandleFunc("/rewards/tier", handler.GetTierHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (r *RewardsHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	r.router.ServeHTTP(w, res)
}

func (r *RewardsHandler) Log(msg string, service string, err error) {
	r.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Расчет и сохранение наград
func (r *RewardsHandler) CalculateHandler(w http.ResponseWriter, req *http.Request) {
	email, err := argument(req, "email")
	if err != nil {
		r.Log("Arguments", "CalculateHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	orderTotal, err := argument(req, "order_total")
	if err != nil {
		r.Log("Arguments", "CalculateHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := r.serv.Snapshot(req.Context(), email, orderTotal)
	if err != nil {
		r.Log("Snapshot", "CalculateHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	r.writeSuccess(w, record)
}

// Награды клиента
func (r *RewardsHandler) GetCustomerHandler(w http.ResponseWriter, req *http.Request) {
	email, err := argument(req, "email")
	if err != nil {
		r.Log("Arguments", "GetCustomerHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := r.serv.Customer(req.Context(), email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			r.writeError(w, http.StatusNotFound, customerNotFound)
			return
		}
		r.Log("DB get", "GetCustomerHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	r.writeSuccess(w, record)
}

// Награды всех клиентов
func (r *RewardsHandler) GetAllCustomersHandler(w http.ResponseWriter, req *http.Request) {
	records, err := r.serv.Customers(req.Context())
	if err != nil {
		r.Log("DB get", "GetAllCustomersHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	r.writeSuccess(w, records)
}

// Таблица уровней
func (r *RewardsHandler) GetTiersHandler(w http.ResponseWriter, req *http.Request) {
	tiers, err := r.serv.Tiers(req.Context())
	if err != nil {
		r.Log("DB get", "GetTiersHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	r.writeSuccess(w, tiers)
}

// Уровень для произвольной суммы баллов
func (r *RewardsHandler) GetTierHandler(w http.ResponseWriter, req *http.Request) {
	value, err := argument(req, "points")
	if err != nil {
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	points, err := strconv.Atoi(value)
	if err != nil {
		r.writeError(w, http.StatusBadRequest, (&models.ValidationError{Field: "points", Msg: "not an integer"}).Error())
		return
	}

	position, err := r.serv.TierFor(req.Context(), points)
	if err != nil {
		r.Log("TierFor", "GetTierHandler", err)
		r.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	r.writeSuccess(w, position)
}

// Аргумент из query или form-тела; при повторе берется последний
func argument(req *http.Request, name string) (string, error) {
	err := req.ParseForm()
	if err != nil {
		return "", &models.ValidationError{Msg: err.Error()}
	}
	values, ok := req.Form[name]
	if !ok || len(values) == 0 {
		return "", models.MissingArgument(name)
	}
	return values[len(values)-1], nil
}

func (r *RewardsHandler) writeSuccess(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusOK, &SuccessResponse{Status: statusSuccess, Data: data})
}

func (r *RewardsHandler) writeError(w http.ResponseWriter, code int, message string) {
	r.writeJSON(w, code, &ErrorResponse{Status: statusError, Message: message})
}

func (r *RewardsHandler) writeJSON(w http.ResponseWriter, code int, response any) {
	j, err := json.Marshal(response)
	if err != nil {
		r.Log("Marshal", "writeJSON", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}
