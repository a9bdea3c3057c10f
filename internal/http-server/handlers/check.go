package handlers

import (
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/nglmq/imei"
	"github.com/nglmq/imei/internal/middleware/logger"
	"go.uber.org/zap"
	"net/http"
)

type CheckRequest struct {
	IMEI string `json:"imei" validate:"required"`
}

type BatchCheckRequest struct {
	IMEIs []string `json:"imeis" validate:"required,min=1,dive,required"`
}

type CheckResponse struct {
	IMEI  string `json:"imei"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func checkOne(number string) CheckResponse {
	resp := CheckResponse{IMEI: number}

	if err := imei.Check(number); err != nil {
		resp.Error = err.Error()
		return resp
	}

	resp.Valid = true
	return resp
}

func writeJSON(w http.ResponseWriter, v any) {
	response, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(response)
}

func CheckHandle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Info("invalid check request", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := validator.New().Struct(req); err != nil {
			logger.Log.Info("check request failed validation", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, checkOne(req.IMEI))
	}
}

func CheckBatchHandle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchCheckRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Info("invalid batch check request", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := validator.New().Struct(req); err != nil {
			logger.Log.Info("batch check request failed validation", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results := make([]CheckResponse, 0, len(req.IMEIs))
		for _, number := range req.IMEIs {
			results = append(results, checkOne(number))
		}

		writeJSON(w, results)
	}
}

func NumberCheckHandle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")
		if number == "" {
			http.Error(w, "No IMEI provided", http.StatusBadRequest)
			return
		}

		writeJSON(w, checkOne(number))
	}
}
