package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
	"github.com/SALI676/booking-dolphin-spa201/internal/idgen"
	"github.com/SALI676/booking-dolphin-spa201/internal/middleware"
	"github.com/SALI676/booking-dolphin-spa201/internal/notification"
	"github.com/SALI676/booking-dolphin-spa201/internal/repository"
	"github.com/SALI676/booking-dolphin-spa201/internal/router"
	"github.com/SALI676/booking-dolphin-spa201/internal/service"
	"github.com/SALI676/booking-dolphin-spa201/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// setupApp wires the real components against a temp bookings file, with the
// Telegram notifier disabled (empty token).
func setupApp(t *testing.T) (http.Handler, string) {
	t.Helper()
	log := newTestLogger(t)

	path := filepath.Join(t.TempDir(), "bookings.json")
	store := storage.NewFile(path, log)
	repo := repository.NewBookingRepo(store, store.Load())

	notifier, err := notification.NewTelegramNotifier("", 0, log)
	require.NoError(t, err)

	svc := service.NewBookingService(repo, notifier, idgen.NewMillis(), log)
	h := NewHandler(svc)

	r := router.InitRouter("test", h,
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.CORS(),
	)

	return r, path
}

func TestBookingFlow(t *testing.T) {
	r, path := setupApp(t)

	// create
	body := []byte(`{"service":"Massage","duration":"60min","price":"$80","name":"Jane","phone":"555-1234","datetime":"2024-03-05T14:30:00","pressure":"Firm"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.BookedOn)
	assert.Equal(t, "Massage", created.Service)
	assert.Equal(t, "Jane", created.Name)
	require.NotNil(t, created.Pressure)
	assert.Equal(t, "Firm", *created.Pressure)

	// list contains exactly the created record
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booking", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed []domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])

	// the persisted file mirrors the in-memory collection
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted []domain.Booking
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, listed, persisted)

	// delete
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/booking/"+formatID(created.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	// list is empty again, and the file followed
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booking", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	// deleting again is a 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/booking/"+formatID(created.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingFlow_RejectedCreateLeavesStoreUntouched(t *testing.T) {
	r, path := setupApp(t)

	body := []byte(`{"service":"Massage","duration":"60min","price":"$80","name":"Jane","datetime":"2024-03-05T14:30:00"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields."}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booking", nil))
	assert.JSONEq(t, `[]`, w.Body.String())

	// nothing was ever persisted
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestBookingFlow_SurvivesRestart(t *testing.T) {
	log := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "bookings.json")

	store := storage.NewFile(path, log)
	repo := repository.NewBookingRepo(store, store.Load())
	notifier, err := notification.NewTelegramNotifier("", 0, log)
	require.NoError(t, err)
	svc := service.NewBookingService(repo, notifier, idgen.NewMillis(), log)
	r := router.InitRouter("test", NewHandler(svc))

	body := []byte(`{"service":"Facial","duration":"30min","price":"$50","name":"Bob","phone":"555-9876","datetime":"2024-04-01T10:00:00"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// a fresh stack over the same file sees the booking
	store2 := storage.NewFile(path, log)
	repo2 := repository.NewBookingRepo(store2, store2.Load())
	svc2 := service.NewBookingService(repo2, notifier, idgen.NewMillis(), log)
	r2 := router.InitRouter("test", NewHandler(svc2))

	w = httptest.NewRecorder()
	r2.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booking", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed []domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Bob", listed[0].Name)
}

func TestBookingFlow_CORSHeaders(t *testing.T) {
	r, _ := setupApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/booking", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
